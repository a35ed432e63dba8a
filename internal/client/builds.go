package client

import (
	"context"
	"fmt"

	internalhttp "github.com/Daghis/tcapi/internal/http"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// BuildsClient implements teamcity.BuildsClient.
type BuildsClient struct {
	httpClient *internalhttp.Client
}

// NewBuildsClient creates a new builds client.
func NewBuildsClient(httpClient *internalhttp.Client) *BuildsClient {
	return &BuildsClient{httpClient: httpClient}
}

// Get implements teamcity.BuildsClient.Get.
func (c *BuildsClient) Get(ctx context.Context, id int64) (*teamcity.Build, error) {
	return c.GetByLocator(ctx, teamcity.BuildLocatorForID(id))
}

// GetByLocator implements teamcity.BuildsClient.GetByLocator.
func (c *BuildsClient) GetByLocator(ctx context.Context, locator string) (*teamcity.Build, error) {
	path := "/app/rest/builds/" + locator

	return getJSON[teamcity.Build](ctx, c.httpClient, path, nil, "build")
}

// List implements teamcity.BuildsClient.List.
func (c *BuildsClient) List(ctx context.Context, loc *teamcity.Locator, req teamcity.PageRequest) (*teamcity.PageResult[teamcity.Build], error) {
	return c.pageFunc(loc)(ctx, req)
}

// ListAll implements teamcity.BuildsClient.ListAll.
func (c *BuildsClient) ListAll(ctx context.Context, loc *teamcity.Locator, opts *teamcity.FetchAllOptions) (*teamcity.FetchAllResult[teamcity.Build], error) {
	return teamcity.FetchAllPages(ctx, c.pageFunc(loc), opts)
}

// Statistics implements teamcity.BuildsClient.Statistics.
func (c *BuildsClient) Statistics(ctx context.Context, id int64) (*teamcity.PropertyList, error) {
	path := fmt.Sprintf("/app/rest/builds/id:%d/statistics", id)

	return getJSON[teamcity.PropertyList](ctx, c.httpClient, path, nil, "build statistics")
}

// Artifacts implements teamcity.BuildsClient.Artifacts.
func (c *BuildsClient) Artifacts(ctx context.Context, id int64) (*teamcity.ArtifactFileList, error) {
	path := fmt.Sprintf("/app/rest/builds/id:%d/artifacts/children", id)

	return getJSON[teamcity.ArtifactFileList](ctx, c.httpClient, path, nil, "build artifacts")
}

func (c *BuildsClient) pageFunc(loc *teamcity.Locator) teamcity.PageFunc[teamcity.Build] {
	return teamcity.NewPageFetcher(
		func(ctx context.Context, req teamcity.PageRequest) (*teamcity.BuildList, error) {
			return loadListPage[teamcity.BuildList](ctx, c.httpClient, "/app/rest/builds", loc, req, "builds list")
		},
		func(envelope *teamcity.BuildList) []teamcity.Build { return envelope.Build },
		nil,
	)
}
