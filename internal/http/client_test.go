package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daghis/tcapi/internal/auth"
	internalhttp "github.com/Daghis/tcapi/internal/http"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

func TestClient_GetSendsBearerToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/app/rest/server", request.URL.Path)
		assert.Equal(t, "Bearer secret", request.Header.Get("Authorization"))
		assert.Equal(t, "application/json", request.Header.Get("Accept"))

		_, _ = writer.Write([]byte(`{"version":"2024.03"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, auth.NewTokenProvider("secret"))

	resp, err := client.Get(context.Background(), "/app/rest/server", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "2024.03")
}

func TestClient_BasicAuthUsesHTTPAuthPrefix(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/httpAuth/app/rest/server", request.URL.Path)

		username, password, ok := request.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "user", username)
		assert.Equal(t, "pass", password)

		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, auth.NewBasicProvider("user", "pass"))

	_, err := client.Get(context.Background(), "/app/rest/server", nil)
	require.NoError(t, err)
}

func TestClient_GuestAuthUsesGuestPrefix(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/guestAuth/app/rest/server", request.URL.Path)
		assert.Empty(t, request.Header.Get("Authorization"))

		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, auth.NewGuestProvider())

	_, err := client.Get(context.Background(), "/app/rest/server", nil)
	require.NoError(t, err)
}

func TestClient_QueryParameters(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "state:running,count:10,start:0", request.URL.Query().Get("locator"))

		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	query := url.Values{}
	query.Set("locator", "state:running,count:10,start:0")

	_, err := client.Get(context.Background(), "/app/rest/builds", query)
	require.NoError(t, err)
}

func TestClient_ErrorStatusBecomesAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusForbidden)
		_, _ = writer.Write([]byte("Access denied\n"))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	resp, err := client.Get(context.Background(), "/app/rest/projects", nil)
	require.Error(t, err)

	apiErr := &teamcity.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "Access denied", apiErr.Message)

	// The response travels with the error for callers that want the raw body
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestClient_GetTextSetsAcceptHeader(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "text/plain", request.Header.Get("Accept"))

		_, _ = writer.Write([]byte("log line\n"))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	resp, err := client.GetText(context.Background(), "/downloadBuildLog.html", nil)
	require.NoError(t, err)
	assert.Equal(t, "log line\n", string(resp.Body))
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var attempts int

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		attempts++
		if attempts < 3 {
			writer.WriteHeader(http.StatusBadGateway)

			return
		}

		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

	resp, err := client.Get(context.Background(), "/app/rest/server", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, attempts)
}

func TestClient_UserAgentOverride(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "custom-agent/2.0", request.Header.Get("User-Agent"))

		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithUserAgent("custom-agent/2.0"))

	_, err := client.Get(context.Background(), "/app/rest/server", nil)
	require.NoError(t, err)
}
