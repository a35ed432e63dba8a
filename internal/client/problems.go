package client

import (
	"context"

	internalhttp "github.com/Daghis/tcapi/internal/http"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// ProblemsClient implements teamcity.ProblemsClient.
type ProblemsClient struct {
	httpClient *internalhttp.Client
}

// NewProblemsClient creates a new problems client.
func NewProblemsClient(httpClient *internalhttp.Client) *ProblemsClient {
	return &ProblemsClient{httpClient: httpClient}
}

// List implements teamcity.ProblemsClient.List.
func (c *ProblemsClient) List(ctx context.Context, loc *teamcity.Locator, req teamcity.PageRequest) (*teamcity.PageResult[teamcity.Problem], error) {
	return c.pageFunc(loc)(ctx, req)
}

// ListAll implements teamcity.ProblemsClient.ListAll.
func (c *ProblemsClient) ListAll(ctx context.Context, loc *teamcity.Locator, opts *teamcity.FetchAllOptions) (*teamcity.FetchAllResult[teamcity.Problem], error) {
	return teamcity.FetchAllPages(ctx, c.pageFunc(loc), opts)
}

func (c *ProblemsClient) pageFunc(loc *teamcity.Locator) teamcity.PageFunc[teamcity.Problem] {
	return teamcity.NewPageFetcher(
		func(ctx context.Context, req teamcity.PageRequest) (*teamcity.ProblemList, error) {
			return loadListPage[teamcity.ProblemList](ctx, c.httpClient, "/app/rest/problems", loc, req, "problems list")
		},
		func(envelope *teamcity.ProblemList) []teamcity.Problem { return envelope.Problem },
		nil,
	)
}

// ProblemOccurrencesClient implements teamcity.ProblemOccurrencesClient.
type ProblemOccurrencesClient struct {
	httpClient *internalhttp.Client
}

// NewProblemOccurrencesClient creates a new problem occurrences client.
func NewProblemOccurrencesClient(httpClient *internalhttp.Client) *ProblemOccurrencesClient {
	return &ProblemOccurrencesClient{httpClient: httpClient}
}

// List implements teamcity.ProblemOccurrencesClient.List.
func (c *ProblemOccurrencesClient) List(ctx context.Context, loc *teamcity.Locator, req teamcity.PageRequest) (*teamcity.PageResult[teamcity.ProblemOccurrence], error) {
	return c.pageFunc(loc)(ctx, req)
}

// ListAll implements teamcity.ProblemOccurrencesClient.ListAll.
func (c *ProblemOccurrencesClient) ListAll(ctx context.Context, loc *teamcity.Locator, opts *teamcity.FetchAllOptions) (*teamcity.FetchAllResult[teamcity.ProblemOccurrence], error) {
	return teamcity.FetchAllPages(ctx, c.pageFunc(loc), opts)
}

func (c *ProblemOccurrencesClient) pageFunc(loc *teamcity.Locator) teamcity.PageFunc[teamcity.ProblemOccurrence] {
	return teamcity.NewPageFetcher(
		func(ctx context.Context, req teamcity.PageRequest) (*teamcity.ProblemOccurrenceList, error) {
			return loadListPage[teamcity.ProblemOccurrenceList](ctx, c.httpClient, "/app/rest/problemOccurrences", loc, req, "problem occurrences list")
		},
		func(envelope *teamcity.ProblemOccurrenceList) []teamcity.ProblemOccurrence {
			return envelope.ProblemOccurrence
		},
		nil,
	)
}

// ProblemOccurrencesLocator builds the locator selecting a build's problem
// occurrences.
func ProblemOccurrencesLocator(buildID int64) *teamcity.Locator {
	return teamcity.NewLocator().
		WithNested("build", teamcity.NewLocator().WithInt("id", int(buildID)))
}
