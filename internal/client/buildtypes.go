package client

import (
	"context"
	"fmt"

	internalhttp "github.com/Daghis/tcapi/internal/http"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// BuildTypesClient implements teamcity.BuildTypesClient.
type BuildTypesClient struct {
	httpClient *internalhttp.Client
}

// NewBuildTypesClient creates a new build types client.
func NewBuildTypesClient(httpClient *internalhttp.Client) *BuildTypesClient {
	return &BuildTypesClient{httpClient: httpClient}
}

// Get implements teamcity.BuildTypesClient.Get.
func (c *BuildTypesClient) Get(ctx context.Context, id string) (*teamcity.BuildType, error) {
	path := fmt.Sprintf("/app/rest/buildTypes/id:%s", id)

	return getJSON[teamcity.BuildType](ctx, c.httpClient, path, nil, "build type")
}

// List implements teamcity.BuildTypesClient.List.
func (c *BuildTypesClient) List(ctx context.Context, loc *teamcity.Locator, req teamcity.PageRequest) (*teamcity.PageResult[teamcity.BuildType], error) {
	return c.pageFunc(loc)(ctx, req)
}

// ListAll implements teamcity.BuildTypesClient.ListAll.
func (c *BuildTypesClient) ListAll(ctx context.Context, loc *teamcity.Locator, opts *teamcity.FetchAllOptions) (*teamcity.FetchAllResult[teamcity.BuildType], error) {
	return teamcity.FetchAllPages(ctx, c.pageFunc(loc), opts)
}

func (c *BuildTypesClient) pageFunc(loc *teamcity.Locator) teamcity.PageFunc[teamcity.BuildType] {
	return teamcity.NewPageFetcher(
		func(ctx context.Context, req teamcity.PageRequest) (*teamcity.BuildTypeList, error) {
			return loadListPage[teamcity.BuildTypeList](ctx, c.httpClient, "/app/rest/buildTypes", loc, req, "build types list")
		},
		func(envelope *teamcity.BuildTypeList) []teamcity.BuildType { return envelope.BuildType },
		nil,
	)
}
