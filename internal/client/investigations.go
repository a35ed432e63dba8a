package client

import (
	"context"

	internalhttp "github.com/Daghis/tcapi/internal/http"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// InvestigationsClient implements teamcity.InvestigationsClient.
type InvestigationsClient struct {
	httpClient *internalhttp.Client
}

// NewInvestigationsClient creates a new investigations client.
func NewInvestigationsClient(httpClient *internalhttp.Client) *InvestigationsClient {
	return &InvestigationsClient{httpClient: httpClient}
}

// List implements teamcity.InvestigationsClient.List.
func (c *InvestigationsClient) List(ctx context.Context, loc *teamcity.Locator, req teamcity.PageRequest) (*teamcity.PageResult[teamcity.Investigation], error) {
	return c.pageFunc(loc)(ctx, req)
}

// ListAll implements teamcity.InvestigationsClient.ListAll.
func (c *InvestigationsClient) ListAll(ctx context.Context, loc *teamcity.Locator, opts *teamcity.FetchAllOptions) (*teamcity.FetchAllResult[teamcity.Investigation], error) {
	return teamcity.FetchAllPages(ctx, c.pageFunc(loc), opts)
}

func (c *InvestigationsClient) pageFunc(loc *teamcity.Locator) teamcity.PageFunc[teamcity.Investigation] {
	return teamcity.NewPageFetcher(
		func(ctx context.Context, req teamcity.PageRequest) (*teamcity.InvestigationList, error) {
			return loadListPage[teamcity.InvestigationList](ctx, c.httpClient, "/app/rest/investigations", loc, req, "investigations list")
		},
		func(envelope *teamcity.InvestigationList) []teamcity.Investigation { return envelope.Investigation },
		nil,
	)
}

// MutesClient implements teamcity.MutesClient.
type MutesClient struct {
	httpClient *internalhttp.Client
}

// NewMutesClient creates a new mutes client.
func NewMutesClient(httpClient *internalhttp.Client) *MutesClient {
	return &MutesClient{httpClient: httpClient}
}

// List implements teamcity.MutesClient.List.
func (c *MutesClient) List(ctx context.Context, loc *teamcity.Locator, req teamcity.PageRequest) (*teamcity.PageResult[teamcity.Mute], error) {
	return c.pageFunc(loc)(ctx, req)
}

// ListAll implements teamcity.MutesClient.ListAll.
func (c *MutesClient) ListAll(ctx context.Context, loc *teamcity.Locator, opts *teamcity.FetchAllOptions) (*teamcity.FetchAllResult[teamcity.Mute], error) {
	return teamcity.FetchAllPages(ctx, c.pageFunc(loc), opts)
}

func (c *MutesClient) pageFunc(loc *teamcity.Locator) teamcity.PageFunc[teamcity.Mute] {
	return teamcity.NewPageFetcher(
		func(ctx context.Context, req teamcity.PageRequest) (*teamcity.MuteList, error) {
			return loadListPage[teamcity.MuteList](ctx, c.httpClient, "/app/rest/mutes", loc, req, "mutes list")
		},
		func(envelope *teamcity.MuteList) []teamcity.Mute { return envelope.Mute },
		nil,
	)
}
