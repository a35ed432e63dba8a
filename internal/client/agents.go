package client

import (
	"context"
	"fmt"

	internalhttp "github.com/Daghis/tcapi/internal/http"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// AgentsClient implements teamcity.AgentsClient.
type AgentsClient struct {
	httpClient *internalhttp.Client
}

// NewAgentsClient creates a new agents client.
func NewAgentsClient(httpClient *internalhttp.Client) *AgentsClient {
	return &AgentsClient{httpClient: httpClient}
}

// Get implements teamcity.AgentsClient.Get.
func (c *AgentsClient) Get(ctx context.Context, id int64) (*teamcity.Agent, error) {
	path := fmt.Sprintf("/app/rest/agents/id:%d", id)

	return getJSON[teamcity.Agent](ctx, c.httpClient, path, nil, "agent")
}

// List implements teamcity.AgentsClient.List.
func (c *AgentsClient) List(ctx context.Context, loc *teamcity.Locator, req teamcity.PageRequest) (*teamcity.PageResult[teamcity.Agent], error) {
	return c.pageFunc(loc)(ctx, req)
}

// ListAll implements teamcity.AgentsClient.ListAll.
func (c *AgentsClient) ListAll(ctx context.Context, loc *teamcity.Locator, opts *teamcity.FetchAllOptions) (*teamcity.FetchAllResult[teamcity.Agent], error) {
	return teamcity.FetchAllPages(ctx, c.pageFunc(loc), opts)
}

func (c *AgentsClient) pageFunc(loc *teamcity.Locator) teamcity.PageFunc[teamcity.Agent] {
	return teamcity.NewPageFetcher(
		func(ctx context.Context, req teamcity.PageRequest) (*teamcity.AgentList, error) {
			return loadListPage[teamcity.AgentList](ctx, c.httpClient, "/app/rest/agents", loc, req, "agents list")
		},
		func(envelope *teamcity.AgentList) []teamcity.Agent { return envelope.Agent },
		nil,
	)
}

// AgentPoolsClient implements teamcity.AgentPoolsClient.
type AgentPoolsClient struct {
	httpClient *internalhttp.Client
}

// NewAgentPoolsClient creates a new agent pools client.
func NewAgentPoolsClient(httpClient *internalhttp.Client) *AgentPoolsClient {
	return &AgentPoolsClient{httpClient: httpClient}
}

// Get implements teamcity.AgentPoolsClient.Get.
func (c *AgentPoolsClient) Get(ctx context.Context, id int64) (*teamcity.AgentPool, error) {
	path := fmt.Sprintf("/app/rest/agentPools/id:%d", id)

	return getJSON[teamcity.AgentPool](ctx, c.httpClient, path, nil, "agent pool")
}

// List implements teamcity.AgentPoolsClient.List.
func (c *AgentPoolsClient) List(ctx context.Context, loc *teamcity.Locator, req teamcity.PageRequest) (*teamcity.PageResult[teamcity.AgentPool], error) {
	return c.pageFunc(loc)(ctx, req)
}

// ListAll implements teamcity.AgentPoolsClient.ListAll.
func (c *AgentPoolsClient) ListAll(ctx context.Context, loc *teamcity.Locator, opts *teamcity.FetchAllOptions) (*teamcity.FetchAllResult[teamcity.AgentPool], error) {
	return teamcity.FetchAllPages(ctx, c.pageFunc(loc), opts)
}

func (c *AgentPoolsClient) pageFunc(loc *teamcity.Locator) teamcity.PageFunc[teamcity.AgentPool] {
	return teamcity.NewPageFetcher(
		func(ctx context.Context, req teamcity.PageRequest) (*teamcity.AgentPoolList, error) {
			return loadListPage[teamcity.AgentPoolList](ctx, c.httpClient, "/app/rest/agentPools", loc, req, "agent pools list")
		},
		func(envelope *teamcity.AgentPoolList) []teamcity.AgentPool { return envelope.AgentPool },
		nil,
	)
}
