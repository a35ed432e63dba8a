package client

import (
	internalhttp "github.com/Daghis/tcapi/internal/http"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// NewTestClient creates a client against the given base URL with a default
// memory cache, for tests.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients(teamcity.NewMemoryCache(teamcity.DefaultCacheMaxSize), &teamcity.Config{})

	return client
}
