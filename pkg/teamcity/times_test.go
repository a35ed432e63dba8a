package teamcity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daghis/tcapi/pkg/teamcity"
)

func TestParseTime(t *testing.T) {
	t.Parallel()

	parsed, err := teamcity.ParseTime("20240115T102030+0000")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 20, 30, 0, time.UTC), parsed.UTC())
}

func TestParseTime_WithOffset(t *testing.T) {
	t.Parallel()

	parsed, err := teamcity.ParseTime("20240115T102030+0200")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 8, 20, 30, 0, time.UTC), parsed.UTC())
}

func TestParseTime_Invalid(t *testing.T) {
	t.Parallel()

	_, err := teamcity.ParseTime("2024-01-15 10:20:30")
	require.Error(t, err)
}

func TestTimeToEpochMillis(t *testing.T) {
	t.Parallel()

	millis := teamcity.TimeToEpochMillis("20240115T102030+0000")
	require.NotNil(t, millis)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 20, 30, 0, time.UTC).UnixMilli(), *millis)
}

func TestTimeToEpochMillis_EmptyAndInvalid(t *testing.T) {
	t.Parallel()

	assert.Nil(t, teamcity.TimeToEpochMillis(""))
	assert.Nil(t, teamcity.TimeToEpochMillis("garbage"))
}

func TestDurationMillis(t *testing.T) {
	t.Parallel()

	duration := teamcity.DurationMillis("20240115T100000+0000", "20240115T100205+0000")
	require.NotNil(t, duration)
	assert.Equal(t, int64(125000), *duration)
}

func TestDurationMillis_MissingEndpoint(t *testing.T) {
	t.Parallel()

	assert.Nil(t, teamcity.DurationMillis("20240115T100000+0000", ""))
	assert.Nil(t, teamcity.DurationMillis("", "20240115T100205+0000"))
}
