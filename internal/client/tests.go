package client

import (
	"context"

	internalhttp "github.com/Daghis/tcapi/internal/http"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// TestOccurrencesClient implements teamcity.TestOccurrencesClient.
type TestOccurrencesClient struct {
	httpClient *internalhttp.Client
}

// NewTestOccurrencesClient creates a new test occurrences client.
func NewTestOccurrencesClient(httpClient *internalhttp.Client) *TestOccurrencesClient {
	return &TestOccurrencesClient{httpClient: httpClient}
}

// Get implements teamcity.TestOccurrencesClient.Get.
func (c *TestOccurrencesClient) Get(ctx context.Context, id string) (*teamcity.TestOccurrence, error) {
	path := "/app/rest/testOccurrences/" + id

	return getJSON[teamcity.TestOccurrence](ctx, c.httpClient, path, nil, "test occurrence")
}

// List implements teamcity.TestOccurrencesClient.List.
func (c *TestOccurrencesClient) List(ctx context.Context, loc *teamcity.Locator, req teamcity.PageRequest) (*teamcity.PageResult[teamcity.TestOccurrence], error) {
	return c.pageFunc(loc)(ctx, req)
}

// ListAll implements teamcity.TestOccurrencesClient.ListAll.
func (c *TestOccurrencesClient) ListAll(ctx context.Context, loc *teamcity.Locator, opts *teamcity.FetchAllOptions) (*teamcity.FetchAllResult[teamcity.TestOccurrence], error) {
	return teamcity.FetchAllPages(ctx, c.pageFunc(loc), opts)
}

// SummaryForBuild implements teamcity.TestOccurrencesClient.SummaryForBuild.
// The per-outcome counters live on the list envelope, so one minimal page
// projected down to the counter fields is enough regardless of how many
// tests the build ran.
func (c *TestOccurrencesClient) SummaryForBuild(ctx context.Context, buildID int64) (*teamcity.TestSummary, error) {
	loc := teamcity.NewLocator().
		WithNested("build", teamcity.NewLocator().WithInt("id", int(buildID))).
		WithCount(1)

	envelope, err := getJSON[teamcity.TestOccurrenceList](ctx, c.httpClient, "/app/rest/testOccurrences",
		listQuery(loc, "count", "passed", "failed", "ignored", "muted"), "test summary")
	if err != nil {
		return nil, err
	}

	return &teamcity.TestSummary{
		Count:   envelope.Count,
		Passed:  envelope.Passed,
		Failed:  envelope.Failed,
		Ignored: envelope.Ignored,
		Muted:   envelope.Muted,
	}, nil
}

func (c *TestOccurrencesClient) pageFunc(loc *teamcity.Locator) teamcity.PageFunc[teamcity.TestOccurrence] {
	return teamcity.NewPageFetcher(
		func(ctx context.Context, req teamcity.PageRequest) (*teamcity.TestOccurrenceList, error) {
			return loadListPage[teamcity.TestOccurrenceList](ctx, c.httpClient, "/app/rest/testOccurrences", loc, req, "test occurrences list")
		},
		func(envelope *teamcity.TestOccurrenceList) []teamcity.TestOccurrence { return envelope.TestOccurrence },
		nil,
	)
}

// FailedTestsLocator builds the locator selecting failed tests of a build.
func FailedTestsLocator(buildID int64) *teamcity.Locator {
	return teamcity.NewLocator().
		WithNested("build", teamcity.NewLocator().WithInt("id", int(buildID))).
		With("status", "FAILURE")
}
