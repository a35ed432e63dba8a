package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Daghis/tcapi/pkg/teamcity"
)

// BuildResultsClient implements teamcity.BuildResultsClient. It composes the
// normalized status with whichever extended sections were requested; each
// Include flag participates in the cache key so a narrow result never
// satisfies a wider request.
type BuildResultsClient struct {
	builds  teamcity.BuildsClient
	changes teamcity.ChangesClient
	tests   teamcity.TestOccurrencesClient
	cache   *teamcity.ResultCache
}

// NewBuildResultsClient creates a new build results client.
func NewBuildResultsClient(
	builds teamcity.BuildsClient,
	changes teamcity.ChangesClient,
	tests teamcity.TestOccurrencesClient,
	cache *teamcity.ResultCache,
) *BuildResultsClient {
	return &BuildResultsClient{builds: builds, changes: changes, tests: tests, cache: cache}
}

// Get implements teamcity.BuildResultsClient.Get.
func (c *BuildResultsClient) Get(ctx context.Context, opts *teamcity.BuildResultsOptions) (*teamcity.BuildResults, error) {
	buildID, err := resolveBuildID(ctx, c.builds, opts.BuildRef)
	if err != nil {
		return nil, err
	}

	key := c.cache.Key(fmt.Sprintf("results/%d", buildID), map[string]string{
		"artifacts":    strconv.FormatBool(opts.IncludeArtifacts),
		"statistics":   strconv.FormatBool(opts.IncludeStatistics),
		"changes":      strconv.FormatBool(opts.IncludeChanges),
		"dependencies": strconv.FormatBool(opts.IncludeDependencies),
		"tests":        strconv.FormatBool(opts.IncludeTests),
	})

	if !opts.ForceRefresh {
		if data, ok := c.cache.Get(ctx, key); ok {
			var cached teamcity.BuildResults
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	build, err := c.builds.Get(ctx, buildID)
	if err != nil {
		return nil, err
	}

	results := &teamcity.BuildResults{BuildStatus: *normalizeBuildStatus(build)}

	if err := c.fillSections(ctx, buildID, build, opts, results); err != nil {
		return nil, err
	}

	if build.IsTerminal() {
		if data, err := json.Marshal(results); err == nil {
			_ = c.cache.Set(ctx, key, data)
		}
	}

	return results, nil
}

// CacheStats implements teamcity.BuildResultsClient.CacheStats.
func (c *BuildResultsClient) CacheStats() teamcity.CacheStats {
	return c.cache.Stats()
}

func (c *BuildResultsClient) fillSections(
	ctx context.Context,
	buildID int64,
	build *teamcity.Build,
	opts *teamcity.BuildResultsOptions,
	results *teamcity.BuildResults,
) error {
	if opts.IncludeArtifacts {
		artifacts, err := c.builds.Artifacts(ctx, buildID)
		if err != nil {
			return fmt.Errorf("fetching artifacts of build %d: %w", buildID, err)
		}

		results.Artifacts = artifacts.File
	}

	if opts.IncludeStatistics {
		statistics, err := c.builds.Statistics(ctx, buildID)
		if err != nil {
			return fmt.Errorf("fetching statistics of build %d: %w", buildID, err)
		}

		results.Statistics = propertiesToMap(statistics)
	}

	if opts.IncludeChanges {
		changes, err := c.fetchChanges(ctx, buildID)
		if err != nil {
			return fmt.Errorf("fetching changes of build %d: %w", buildID, err)
		}

		results.Changes = changes
	}

	if opts.IncludeDependencies && build.SnapshotDeps != nil {
		results.Dependencies = make([]teamcity.BuildStatus, 0, len(build.SnapshotDeps.Build))
		for i := range build.SnapshotDeps.Build {
			results.Dependencies = append(results.Dependencies, *normalizeBuildStatus(&build.SnapshotDeps.Build[i]))
		}
	}

	if opts.IncludeTests {
		if err := c.fillTests(ctx, buildID, results); err != nil {
			return err
		}
	}

	return nil
}

func (c *BuildResultsClient) fillTests(ctx context.Context, buildID int64, results *teamcity.BuildResults) error {
	summary, err := c.tests.SummaryForBuild(ctx, buildID)
	if err != nil {
		return fmt.Errorf("fetching test summary of build %d: %w", buildID, err)
	}

	results.Tests = summary

	if summary.Failed == 0 {
		return nil
	}

	failed, err := c.tests.ListAll(ctx, FailedTestsLocator(buildID), nil)
	if err != nil {
		return fmt.Errorf("fetching failed tests of build %d: %w", buildID, err)
	}

	results.FailedTests = failed.Items

	return nil
}

func (c *BuildResultsClient) fetchChanges(ctx context.Context, buildID int64) ([]teamcity.Change, error) {
	loc := teamcity.NewLocator().
		WithNested("build", teamcity.NewLocator().WithInt("id", int(buildID)))

	result, err := c.changes.ListAll(ctx, loc, nil)
	if err != nil {
		return nil, err
	}

	return result.Items, nil
}

func propertiesToMap(properties *teamcity.PropertyList) map[string]string {
	if properties == nil || len(properties.Property) == 0 {
		return nil
	}

	values := make(map[string]string, len(properties.Property))
	for _, property := range properties.Property {
		values[property.Name] = property.Value
	}

	return values
}
