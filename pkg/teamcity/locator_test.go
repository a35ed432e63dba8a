package teamcity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Daghis/tcapi/pkg/teamcity"
)

func TestLocator_With(t *testing.T) {
	t.Parallel()

	loc := teamcity.NewLocator().
		With("state", "running").
		With("number", "42")

	assert.Equal(t, "state:running,number:42", loc.String())
}

func TestLocator_WithEscapesMetacharacters(t *testing.T) {
	t.Parallel()

	loc := teamcity.NewLocator().With("number", "1.2-rc:3")

	assert.Equal(t, "number:(1.2-rc:3)", loc.String())
}

func TestLocator_WithNested(t *testing.T) {
	t.Parallel()

	loc := teamcity.NewLocator().
		WithNested("buildType", teamcity.NewLocator().With("id", "MyProject_Build")).
		With("state", "finished")

	assert.Equal(t, "buildType:(id:MyProject_Build),state:finished", loc.String())
}

func TestLocator_WithCountClampsToMaximum(t *testing.T) {
	t.Parallel()

	loc := teamcity.NewLocator().WithCount(5000)

	assert.Equal(t, "count:1000", loc.String())
}

func TestLocator_WithCountKeepsSmallValues(t *testing.T) {
	t.Parallel()

	loc := teamcity.NewLocator().WithCount(50)

	assert.Equal(t, "count:50", loc.String())
}

func TestLocator_WithStartClampsNegative(t *testing.T) {
	t.Parallel()

	loc := teamcity.NewLocator().WithStart(-5)

	assert.Equal(t, "start:0", loc.String())
}

func TestLocator_Clone(t *testing.T) {
	t.Parallel()

	original := teamcity.NewLocator().With("state", "finished")

	clone := original.Clone()
	clone.WithCount(10)

	assert.Equal(t, "state:finished", original.String())
	assert.Equal(t, "state:finished,count:10", clone.String())
}

func TestLocator_IsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, teamcity.NewLocator().IsEmpty())
	assert.False(t, teamcity.NewLocator().With("id", "x").IsEmpty())
}

func TestBuildLocatorForID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "id:12345", teamcity.BuildLocatorForID(12345))
}

func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()

	params := teamcity.NewQueryParams().
		WithLocator(teamcity.NewLocator().With("state", "queued")).
		WithFields("id", "number", "status")

	values := params.ToValues()
	assert.Equal(t, "state:queued", values.Get("locator"))
	assert.Equal(t, "id,number,status", values.Get("fields"))
}

func TestQueryParams_ToValuesEmptyLocator(t *testing.T) {
	t.Parallel()

	params := teamcity.NewQueryParams()

	values := params.ToValues()
	assert.Empty(t, values.Get("locator"))
}
