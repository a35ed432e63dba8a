package teamcity

import (
	"fmt"
	"time"
)

// TimeFormat is the compact timestamp format the server uses, e.g.
// "20240115T102030+0000".
const TimeFormat = "20060102T150405-0700"

// ParseTime parses a server timestamp.
func ParseTime(value string) (time.Time, error) {
	parsed, err := time.Parse(TimeFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", value, err)
	}

	return parsed, nil
}

// TimeToEpochMillis converts a server timestamp to epoch milliseconds.
// Returns nil for an empty or unparseable value; a missing timestamp is not
// an error, it just yields no field.
func TimeToEpochMillis(value string) *int64 {
	if value == "" {
		return nil
	}

	parsed, err := ParseTime(value)
	if err != nil {
		return nil
	}

	millis := parsed.UnixMilli()

	return &millis
}

// DurationMillis computes finish − start in milliseconds when both
// timestamps are present and parseable.
func DurationMillis(startDate, finishDate string) *int64 {
	start := TimeToEpochMillis(startDate)
	finish := TimeToEpochMillis(finishDate)

	if start == nil || finish == nil {
		return nil
	}

	duration := *finish - *start

	return &duration
}
