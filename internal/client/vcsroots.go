package client

import (
	"context"
	"fmt"

	internalhttp "github.com/Daghis/tcapi/internal/http"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// VCSRootsClient implements teamcity.VCSRootsClient.
type VCSRootsClient struct {
	httpClient *internalhttp.Client
}

// NewVCSRootsClient creates a new VCS roots client.
func NewVCSRootsClient(httpClient *internalhttp.Client) *VCSRootsClient {
	return &VCSRootsClient{httpClient: httpClient}
}

// Get implements teamcity.VCSRootsClient.Get.
func (c *VCSRootsClient) Get(ctx context.Context, id string) (*teamcity.VCSRoot, error) {
	path := fmt.Sprintf("/app/rest/vcs-roots/id:%s", id)

	return getJSON[teamcity.VCSRoot](ctx, c.httpClient, path, nil, "VCS root")
}

// List implements teamcity.VCSRootsClient.List.
func (c *VCSRootsClient) List(ctx context.Context, loc *teamcity.Locator, req teamcity.PageRequest) (*teamcity.PageResult[teamcity.VCSRoot], error) {
	return c.pageFunc(loc)(ctx, req)
}

// ListAll implements teamcity.VCSRootsClient.ListAll.
func (c *VCSRootsClient) ListAll(ctx context.Context, loc *teamcity.Locator, opts *teamcity.FetchAllOptions) (*teamcity.FetchAllResult[teamcity.VCSRoot], error) {
	return teamcity.FetchAllPages(ctx, c.pageFunc(loc), opts)
}

func (c *VCSRootsClient) pageFunc(loc *teamcity.Locator) teamcity.PageFunc[teamcity.VCSRoot] {
	return teamcity.NewPageFetcher(
		func(ctx context.Context, req teamcity.PageRequest) (*teamcity.VCSRootList, error) {
			return loadListPage[teamcity.VCSRootList](ctx, c.httpClient, "/app/rest/vcs-roots", loc, req, "VCS roots list")
		},
		func(envelope *teamcity.VCSRootList) []teamcity.VCSRoot { return envelope.VCSRoot },
		nil,
	)
}

// UsersClient implements teamcity.UsersClient.
type UsersClient struct {
	httpClient *internalhttp.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *internalhttp.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// Get implements teamcity.UsersClient.Get. The locator is a single-user
// locator such as "username:jane" or "id:12".
func (c *UsersClient) Get(ctx context.Context, locator string) (*teamcity.User, error) {
	path := "/app/rest/users/" + locator

	return getJSON[teamcity.User](ctx, c.httpClient, path, nil, "user")
}

// List implements teamcity.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, loc *teamcity.Locator, req teamcity.PageRequest) (*teamcity.PageResult[teamcity.User], error) {
	return c.pageFunc(loc)(ctx, req)
}

// ListAll implements teamcity.UsersClient.ListAll.
func (c *UsersClient) ListAll(ctx context.Context, loc *teamcity.Locator, opts *teamcity.FetchAllOptions) (*teamcity.FetchAllResult[teamcity.User], error) {
	return teamcity.FetchAllPages(ctx, c.pageFunc(loc), opts)
}

func (c *UsersClient) pageFunc(loc *teamcity.Locator) teamcity.PageFunc[teamcity.User] {
	return teamcity.NewPageFetcher(
		func(ctx context.Context, req teamcity.PageRequest) (*teamcity.UserList, error) {
			return loadListPage[teamcity.UserList](ctx, c.httpClient, "/app/rest/users", loc, req, "users list")
		},
		func(envelope *teamcity.UserList) []teamcity.User { return envelope.User },
		nil,
	)
}

// ChangesClient implements teamcity.ChangesClient.
type ChangesClient struct {
	httpClient *internalhttp.Client
}

// NewChangesClient creates a new changes client.
func NewChangesClient(httpClient *internalhttp.Client) *ChangesClient {
	return &ChangesClient{httpClient: httpClient}
}

// Get implements teamcity.ChangesClient.Get.
func (c *ChangesClient) Get(ctx context.Context, id int64) (*teamcity.Change, error) {
	path := fmt.Sprintf("/app/rest/changes/id:%d", id)

	return getJSON[teamcity.Change](ctx, c.httpClient, path, nil, "change")
}

// List implements teamcity.ChangesClient.List.
func (c *ChangesClient) List(ctx context.Context, loc *teamcity.Locator, req teamcity.PageRequest) (*teamcity.PageResult[teamcity.Change], error) {
	return c.pageFunc(loc)(ctx, req)
}

// ListAll implements teamcity.ChangesClient.ListAll.
func (c *ChangesClient) ListAll(ctx context.Context, loc *teamcity.Locator, opts *teamcity.FetchAllOptions) (*teamcity.FetchAllResult[teamcity.Change], error) {
	return teamcity.FetchAllPages(ctx, c.pageFunc(loc), opts)
}

func (c *ChangesClient) pageFunc(loc *teamcity.Locator) teamcity.PageFunc[teamcity.Change] {
	return teamcity.NewPageFetcher(
		func(ctx context.Context, req teamcity.PageRequest) (*teamcity.ChangeList, error) {
			return loadListPage[teamcity.ChangeList](ctx, c.httpClient, "/app/rest/changes", loc, req, "changes list")
		},
		func(envelope *teamcity.ChangeList) []teamcity.Change { return envelope.Change },
		nil,
	)
}
