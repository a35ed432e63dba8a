package tcclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daghis/tcapi/pkg/tcclient"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &teamcity.Config{
			ServerURL: "https://teamcity.example.com",
		}

		client, err := tcclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		client, err := tcclient.New(nil)
		require.ErrorIs(t, err, teamcity.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("requires server URL", func(t *testing.T) {
		t.Parallel()

		client, err := tcclient.New(&teamcity.Config{})
		require.ErrorIs(t, err, teamcity.ErrServerURLRequired)
		assert.Nil(t, client)
	})

	t.Run("defaults scheme to https", func(t *testing.T) {
		t.Parallel()

		config := &teamcity.Config{ServerURL: "teamcity.example.com/"}

		client, err := tcclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "https://teamcity.example.com", config.ServerURL)
	})
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	client, err := tcclient.NewWithEndpoint("https://teamcity.example.com")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := tcclient.NewWithToken("https://teamcity.example.com", "test-token")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewWithPassword(t *testing.T) {
	t.Parallel()

	client, err := tcclient.NewWithPassword("https://teamcity.example.com", "username", "password")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/app/rest/server":
			info := teamcity.ServerInfo{
				Version:     "2024.03",
				BuildNumber: "157558",
			}
			_ = json.NewEncoder(writer).Encode(info)
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := tcclient.NewWithToken(server.URL, "test-token")
	require.NoError(t, err)

	info, err := client.GetServerInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024.03", info.Version)
	assert.Equal(t, "157558", info.BuildNumber)
}
