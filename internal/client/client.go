package client

import (
	"context"
	"time"

	"github.com/Daghis/tcapi/internal/auth"
	internalhttp "github.com/Daghis/tcapi/internal/http"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// Client implements the teamcity.Client interface.
type Client struct {
	httpClient *internalhttp.Client
	baseURL    string
	logger     teamcity.Logger

	// Resource clients
	projects           teamcity.ProjectsClient
	buildTypes         teamcity.BuildTypesClient
	builds             teamcity.BuildsClient
	agents             teamcity.AgentsClient
	agentPools         teamcity.AgentPoolsClient
	vcsRoots           teamcity.VCSRootsClient
	users              teamcity.UsersClient
	changes            teamcity.ChangesClient
	testOccurrences    teamcity.TestOccurrencesClient
	problems           teamcity.ProblemsClient
	problemOccurrences teamcity.ProblemOccurrencesClient
	investigations     teamcity.InvestigationsClient
	mutes              teamcity.MutesClient
	logs               teamcity.LogsClient
	buildStatus        teamcity.BuildStatusClient
	buildResults       teamcity.BuildResultsClient
}

// New creates a new TeamCity API client from the config.
func New(config *teamcity.Config) (*Client, error) {
	if config == nil {
		return nil, teamcity.ErrConfigRequired
	}

	if config.ServerURL == "" {
		return nil, teamcity.ErrServerURLRequired
	}

	credentials := createCredentialProvider(config)
	httpClient := internalhttp.NewClient(config.ServerURL, credentials, createHTTPOptions(config)...)

	backend, err := teamcity.NewCacheFromConfig(config.Cache)
	if err != nil {
		return nil, err
	}

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.ServerURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients(backend, config)

	return client, nil
}

func createCredentialProvider(config *teamcity.Config) auth.CredentialProvider {
	switch {
	case config.Token != "":
		return auth.NewTokenProvider(config.Token)
	case config.Username != "":
		return auth.NewBasicProvider(config.Username, config.Password)
	default:
		return auth.NewGuestProvider()
	}
}

func createHTTPOptions(config *teamcity.Config) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 || config.RetryWaitMin > 0 || config.RetryWaitMax > 0 {
		opts = append(opts, internalhttp.WithRetryConfig(
			config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return opts
}

// initializeResourceClients wires up all resource clients and the composite
// orchestrators. The status and results caches share one backend; their keys
// are prefixed per resource kind, their TTLs differ.
func (c *Client) initializeResourceClients(backend teamcity.Cache, config *teamcity.Config) {
	c.projects = NewProjectsClient(c.httpClient)
	c.buildTypes = NewBuildTypesClient(c.httpClient)
	c.builds = NewBuildsClient(c.httpClient)
	c.agents = NewAgentsClient(c.httpClient)
	c.agentPools = NewAgentPoolsClient(c.httpClient)
	c.vcsRoots = NewVCSRootsClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.changes = NewChangesClient(c.httpClient)
	c.testOccurrences = NewTestOccurrencesClient(c.httpClient)
	c.problems = NewProblemsClient(c.httpClient)
	c.problemOccurrences = NewProblemOccurrencesClient(c.httpClient)
	c.investigations = NewInvestigationsClient(c.httpClient)
	c.mutes = NewMutesClient(c.httpClient)
	c.logs = NewLogsClient(c.httpClient, c.builds)

	statusCache := teamcity.NewResultCache(backend, ttlOrDefault(config.StatusTTL, teamcity.DefaultStatusTTL))
	resultsCache := teamcity.NewResultCache(backend, ttlOrDefault(config.ResultsTTL, teamcity.DefaultResultsTTL))

	c.buildStatus = NewBuildStatusClient(c.builds, c.testOccurrences, c.problemOccurrences, statusCache)
	c.buildResults = NewBuildResultsClient(c.builds, c.changes, c.testOccurrences, resultsCache)
}

func ttlOrDefault(ttl, fallback time.Duration) time.Duration {
	if ttl > 0 {
		return ttl
	}

	return fallback
}

// Projects returns the projects client.
func (c *Client) Projects() teamcity.ProjectsClient { return c.projects }

// BuildTypes returns the build configurations client.
func (c *Client) BuildTypes() teamcity.BuildTypesClient { return c.buildTypes }

// Builds returns the builds client.
func (c *Client) Builds() teamcity.BuildsClient { return c.builds }

// Agents returns the agents client.
func (c *Client) Agents() teamcity.AgentsClient { return c.agents }

// AgentPools returns the agent pools client.
func (c *Client) AgentPools() teamcity.AgentPoolsClient { return c.agentPools }

// VCSRoots returns the VCS roots client.
func (c *Client) VCSRoots() teamcity.VCSRootsClient { return c.vcsRoots }

// Users returns the users client.
func (c *Client) Users() teamcity.UsersClient { return c.users }

// Changes returns the changes client.
func (c *Client) Changes() teamcity.ChangesClient { return c.changes }

// TestOccurrences returns the test occurrences client.
func (c *Client) TestOccurrences() teamcity.TestOccurrencesClient { return c.testOccurrences }

// Problems returns the problems client.
func (c *Client) Problems() teamcity.ProblemsClient { return c.problems }

// ProblemOccurrences returns the problem occurrences client.
func (c *Client) ProblemOccurrences() teamcity.ProblemOccurrencesClient { return c.problemOccurrences }

// Investigations returns the investigations client.
func (c *Client) Investigations() teamcity.InvestigationsClient { return c.investigations }

// Mutes returns the mutes client.
func (c *Client) Mutes() teamcity.MutesClient { return c.mutes }

// Logs returns the build log client.
func (c *Client) Logs() teamcity.LogsClient { return c.logs }

// BuildStatus returns the composite build status client.
func (c *Client) BuildStatus() teamcity.BuildStatusClient { return c.buildStatus }

// BuildResults returns the composite build results client.
func (c *Client) BuildResults() teamcity.BuildResultsClient { return c.buildResults }

// GetServerInfo fetches the server's version information.
func (c *Client) GetServerInfo(ctx context.Context) (*teamcity.ServerInfo, error) {
	return getJSON[teamcity.ServerInfo](ctx, c.httpClient, "/app/rest/server", nil, "server info")
}
