package teamcity_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Daghis/tcapi/pkg/teamcity"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &teamcity.APIError{StatusCode: http.StatusNotFound, Message: "no such build"}
	assert.Equal(t, "no such build (status 404)", err.Error())

	err = &teamcity.APIError{StatusCode: http.StatusBadGateway}
	assert.Equal(t, "TeamCity API error (status 502)", err.Error())
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, teamcity.IsNotFound(&teamcity.APIError{StatusCode: http.StatusNotFound}))
	assert.True(t, teamcity.IsNotFound(fmt.Errorf("wrapped: %w",
		&teamcity.APIError{StatusCode: http.StatusNotFound})))
	assert.True(t, teamcity.IsNotFound(fmt.Errorf("%w: number \"9\"", teamcity.ErrBuildNotFound)))
	assert.False(t, teamcity.IsNotFound(&teamcity.APIError{StatusCode: http.StatusForbidden}))
	assert.False(t, teamcity.IsNotFound(errors.New("other")))
}

func TestIsAccessDenied(t *testing.T) {
	t.Parallel()

	assert.True(t, teamcity.IsAccessDenied(&teamcity.APIError{StatusCode: http.StatusForbidden}))
	assert.False(t, teamcity.IsAccessDenied(&teamcity.APIError{StatusCode: http.StatusNotFound}))
	assert.False(t, teamcity.IsAccessDenied(errors.New("other")))
}

func TestIsUnauthorized(t *testing.T) {
	t.Parallel()

	assert.True(t, teamcity.IsUnauthorized(&teamcity.APIError{StatusCode: http.StatusUnauthorized}))
	assert.False(t, teamcity.IsUnauthorized(&teamcity.APIError{StatusCode: http.StatusForbidden}))
}

func TestIsAmbiguous(t *testing.T) {
	t.Parallel()

	ambiguous := &teamcity.AmbiguousBuildError{Number: "77", MatchIDs: []int64{1, 2}}
	assert.True(t, teamcity.IsAmbiguous(ambiguous))
	assert.True(t, teamcity.IsAmbiguous(fmt.Errorf("wrapped: %w", ambiguous)))
	assert.False(t, teamcity.IsAmbiguous(errors.New("other")))
}

func TestIsUpstreamUnavailable(t *testing.T) {
	t.Parallel()

	assert.True(t, teamcity.IsUpstreamUnavailable(&teamcity.APIError{StatusCode: http.StatusBadGateway}))
	assert.True(t, teamcity.IsUpstreamUnavailable(&teamcity.APIError{StatusCode: http.StatusInternalServerError}))
	assert.False(t, teamcity.IsUpstreamUnavailable(&teamcity.APIError{StatusCode: http.StatusNotFound}))
}

func TestAmbiguousBuildError_Error(t *testing.T) {
	t.Parallel()

	err := &teamcity.AmbiguousBuildError{Number: "77", MatchIDs: []int64{101, 102, 103}}
	assert.Contains(t, err.Error(), "\"77\"")
	assert.Contains(t, err.Error(), "3 builds")
}

func TestBuild_IsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, (&teamcity.Build{State: teamcity.BuildStateQueued}).IsTerminal())
	assert.False(t, (&teamcity.Build{State: teamcity.BuildStateRunning}).IsTerminal())
	assert.True(t, (&teamcity.Build{State: teamcity.BuildStateFinished}).IsTerminal())
	assert.True(t, (&teamcity.Build{State: teamcity.BuildStateDeleted}).IsTerminal())

	// A canceled build is terminal regardless of the reported state
	assert.True(t, (&teamcity.Build{
		State:        teamcity.BuildStateRunning,
		CanceledInfo: &teamcity.CanceledInfo{Text: "canceled"},
	}).IsTerminal())
}
