package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daghis/tcapi/pkg/teamcity"
)

func TestBuildsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/app/rest/builds/id:123", request.URL.Path)
		assert.Equal(t, http.MethodGet, request.Method)

		_ = json.NewEncoder(writer).Encode(teamcity.Build{
			ID:     123,
			Number: "42",
			State:  teamcity.BuildStateFinished,
			Status: "SUCCESS",
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	build, err := client.Builds().Get(context.Background(), 123)
	require.NoError(t, err)
	assert.Equal(t, int64(123), build.ID)
	assert.Equal(t, "42", build.Number)
	assert.Equal(t, "SUCCESS", build.Status)
}

func TestBuildsClient_GetNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		_, _ = writer.Write([]byte("Could not find the entity requested"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Builds().Get(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, teamcity.IsNotFound(err))
}

func TestBuildsClient_ListMergesCursorIntoLocator(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/app/rest/builds", request.URL.Path)
		assert.Equal(t, "state:finished,count:20,start:40", request.URL.Query().Get("locator"))

		_ = json.NewEncoder(writer).Encode(teamcity.BuildList{
			Count: 1,
			Build: []teamcity.Build{{ID: 1, Number: "1"}},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	loc := teamcity.NewLocator().With("state", "finished")

	page, err := client.Builds().List(context.Background(), loc, teamcity.PageRequest{Start: 40, Count: 20})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	// The caller's locator is not mutated by pagination
	assert.Equal(t, "state:finished", loc.String())
}

func TestBuildsClient_ListAll(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		locator := request.URL.Query().Get("locator")

		envelope := teamcity.BuildList{}
		if locator == "count:2,start:0" {
			envelope.Build = []teamcity.Build{{ID: 1}, {ID: 2}}
		} else if locator == "count:2,start:2" {
			envelope.Build = []teamcity.Build{{ID: 3}}
		}

		envelope.Count = len(envelope.Build)

		_ = json.NewEncoder(writer).Encode(envelope)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	result, err := client.Builds().ListAll(context.Background(), nil,
		&teamcity.FetchAllOptions{PageSize: 2})
	require.NoError(t, err)

	require.Len(t, result.Items, 3)
	assert.Equal(t, int64(1), result.Items[0].ID)
	assert.Equal(t, int64(3), result.Items[2].ID)
	assert.Equal(t, 2, result.Pages)
	assert.False(t, result.Truncated)
}

func TestBuildsClient_Statistics(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/app/rest/builds/id:123/statistics", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(teamcity.PropertyList{
			Count:    1,
			Property: []teamcity.Property{{Name: "BuildDuration", Value: "12345"}},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	statistics, err := client.Builds().Statistics(context.Background(), 123)
	require.NoError(t, err)
	require.Len(t, statistics.Property, 1)
	assert.Equal(t, "BuildDuration", statistics.Property[0].Name)
}

func TestBuildsClient_Artifacts(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/app/rest/builds/id:123/artifacts/children", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(teamcity.ArtifactFileList{
			Count: 1,
			File:  []teamcity.ArtifactFile{{Name: "app.jar", Size: 2048}},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	artifacts, err := client.Builds().Artifacts(context.Background(), 123)
	require.NoError(t, err)
	require.Len(t, artifacts.File, 1)
	assert.Equal(t, "app.jar", artifacts.File[0].Name)
}
