// Package tcclient provides the main entry point for creating TeamCity API clients
package tcclient

import (
	"strings"

	"github.com/Daghis/tcapi/internal/client"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// New creates a new TeamCity API client.
func New(config *teamcity.Config) (teamcity.Client, error) {
	if config == nil {
		return nil, teamcity.ErrConfigRequired
	}

	if config.ServerURL == "" {
		return nil, teamcity.ErrServerURLRequired
	}

	config.ServerURL = normalizeServerURL(config.ServerURL)

	c, err := client.New(config)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// normalizeServerURL trims a trailing slash and defaults the scheme to https.
func normalizeServerURL(serverURL string) string {
	serverURL = strings.TrimSuffix(serverURL, "/")
	if !strings.HasPrefix(serverURL, "http://") && !strings.HasPrefix(serverURL, "https://") {
		serverURL = "https://" + serverURL
	}

	return serverURL
}

// NewWithEndpoint creates a new client with just a server URL (guest access).
func NewWithEndpoint(serverURL string) (teamcity.Client, error) {
	return New(&teamcity.Config{
		ServerURL: serverURL,
	})
}

// NewWithToken creates a new client with a server URL and access token.
func NewWithToken(serverURL, token string) (teamcity.Client, error) {
	return New(&teamcity.Config{
		ServerURL: serverURL,
		Token:     token,
	})
}

// NewWithPassword creates a new client using username/password authentication.
func NewWithPassword(serverURL, username, password string) (teamcity.Client, error) {
	return New(&teamcity.Config{
		ServerURL: serverURL,
		Username:  username,
		Password:  password,
	})
}
