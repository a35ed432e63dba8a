package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Daghis/tcapi/pkg/teamcity"
)

// BuildStatusClient implements teamcity.BuildStatusClient. Lookups are
// cache-first; only terminal builds are written back, so a queued or running
// build is always re-fetched.
type BuildStatusClient struct {
	builds   teamcity.BuildsClient
	tests    teamcity.TestOccurrencesClient
	problems teamcity.ProblemOccurrencesClient
	cache    *teamcity.ResultCache
}

// NewBuildStatusClient creates a new build status client.
func NewBuildStatusClient(
	builds teamcity.BuildsClient,
	tests teamcity.TestOccurrencesClient,
	problems teamcity.ProblemOccurrencesClient,
	cache *teamcity.ResultCache,
) *BuildStatusClient {
	return &BuildStatusClient{builds: builds, tests: tests, problems: problems, cache: cache}
}

// Get implements teamcity.BuildStatusClient.Get.
func (c *BuildStatusClient) Get(ctx context.Context, opts *teamcity.BuildStatusOptions) (*teamcity.BuildStatus, error) {
	buildID, err := resolveBuildID(ctx, c.builds, opts.BuildRef)
	if err != nil {
		return nil, err
	}

	key := c.cache.Key(fmt.Sprintf("status/%d", buildID), map[string]string{
		"tests":    strconv.FormatBool(opts.IncludeTests),
		"problems": strconv.FormatBool(opts.IncludeProblems),
	})

	if !opts.ForceRefresh {
		if data, ok := c.cache.Get(ctx, key); ok {
			var cached teamcity.BuildStatus
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	build, err := c.builds.Get(ctx, buildID)
	if err != nil {
		return nil, err
	}

	status := normalizeBuildStatus(build)

	if opts.IncludeTests {
		summary, err := c.tests.SummaryForBuild(ctx, buildID)
		if err != nil {
			return nil, fmt.Errorf("fetching test summary of build %d: %w", buildID, err)
		}

		status.Tests = summary
	}

	if opts.IncludeProblems {
		count, err := c.countProblems(ctx, buildID)
		if err != nil {
			return nil, fmt.Errorf("fetching problems of build %d: %w", buildID, err)
		}

		status.ProblemCount = &count
	}

	// Cacheability is decided against the state just fetched, never a state
	// remembered from an earlier lookup.
	if build.IsTerminal() {
		if data, err := json.Marshal(status); err == nil {
			_ = c.cache.Set(ctx, key, data)
		}
	}

	return status, nil
}

// CacheStats implements teamcity.BuildStatusClient.CacheStats.
func (c *BuildStatusClient) CacheStats() teamcity.CacheStats {
	return c.cache.Stats()
}

func (c *BuildStatusClient) countProblems(ctx context.Context, buildID int64) (int, error) {
	result, err := c.problems.ListAll(ctx, ProblemOccurrencesLocator(buildID), nil)
	if err != nil {
		return 0, err
	}

	return len(result.Items), nil
}

// normalizeBuildStatus maps a raw build to its normalized status: compact
// upstream timestamps become epoch milliseconds and duration is derived from
// start/finish when both are present.
func normalizeBuildStatus(build *teamcity.Build) *teamcity.BuildStatus {
	return &teamcity.BuildStatus{
		ID:                 build.ID,
		Number:             build.Number,
		BuildTypeID:        build.BuildTypeID,
		State:              build.State,
		Status:             build.Status,
		StatusText:         build.StatusText,
		BranchName:         build.BranchName,
		WebURL:             build.WebURL,
		Canceled:           build.CanceledInfo != nil,
		PercentageComplete: build.PercentageComplete,
		QueuedAt:           teamcity.TimeToEpochMillis(build.QueuedDate),
		StartedAt:          teamcity.TimeToEpochMillis(build.StartDate),
		FinishedAt:         teamcity.TimeToEpochMillis(build.FinishDate),
		DurationMs:         teamcity.DurationMillis(build.StartDate, build.FinishDate),
	}
}
