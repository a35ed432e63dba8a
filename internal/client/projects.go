package client

import (
	"context"
	"fmt"

	internalhttp "github.com/Daghis/tcapi/internal/http"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// ProjectsClient implements teamcity.ProjectsClient.
type ProjectsClient struct {
	httpClient *internalhttp.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *internalhttp.Client) *ProjectsClient {
	return &ProjectsClient{httpClient: httpClient}
}

// Get implements teamcity.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, id string) (*teamcity.Project, error) {
	path := fmt.Sprintf("/app/rest/projects/id:%s", id)

	return getJSON[teamcity.Project](ctx, c.httpClient, path, nil, "project")
}

// List implements teamcity.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, loc *teamcity.Locator, req teamcity.PageRequest) (*teamcity.PageResult[teamcity.Project], error) {
	return c.pageFunc(loc)(ctx, req)
}

// ListAll implements teamcity.ProjectsClient.ListAll.
func (c *ProjectsClient) ListAll(ctx context.Context, loc *teamcity.Locator, opts *teamcity.FetchAllOptions) (*teamcity.FetchAllResult[teamcity.Project], error) {
	return teamcity.FetchAllPages(ctx, c.pageFunc(loc), opts)
}

func (c *ProjectsClient) pageFunc(loc *teamcity.Locator) teamcity.PageFunc[teamcity.Project] {
	return teamcity.NewPageFetcher(
		func(ctx context.Context, req teamcity.PageRequest) (*teamcity.ProjectList, error) {
			return loadListPage[teamcity.ProjectList](ctx, c.httpClient, "/app/rest/projects", loc, req, "projects list")
		},
		func(envelope *teamcity.ProjectList) []teamcity.Project { return envelope.Project },
		nil,
	)
}
