package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daghis/tcapi/pkg/teamcity"
)

type resultsServerState struct {
	buildGets int
}

func newResultsServer(t *testing.T, state *resultsServerState) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/app/rest/builds/id:42", func(writer http.ResponseWriter, request *http.Request) {
		state.buildGets++

		_, _ = writer.Write([]byte(`{
			"id": 42,
			"number": "7",
			"buildTypeId": "BT_X",
			"state": "finished",
			"status": "FAILURE",
			"startDate": "20240115T100100+0000",
			"finishDate": "20240115T100500+0000",
			"snapshot-dependencies": {"count":1,"build":[
				{"id":41,"number":"6","buildTypeId":"BT_DEP","state":"finished","status":"SUCCESS"}
			]}
		}`))
	})
	mux.HandleFunc("/app/rest/builds/id:42/artifacts/children", func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{"count":2,"file":[
			{"name":"app.jar","size":1024},
			{"name":"report.html","size":2048}
		]}`))
	})
	mux.HandleFunc("/app/rest/builds/id:42/statistics", func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{"count":2,"property":[
			{"name":"BuildDuration","value":"240000"},
			{"name":"ArtifactsSize","value":"3072"}
		]}`))
	})
	mux.HandleFunc("/app/rest/changes", func(writer http.ResponseWriter, request *http.Request) {
		assert.Contains(t, request.URL.Query().Get("locator"), "build:(id:42)")

		_, _ = writer.Write([]byte(`{"count":1,"change":[
			{"id":5001,"version":"abc123","username":"dev","comment":"fix flaky test"}
		]}`))
	})
	mux.HandleFunc("/app/rest/testOccurrences", func(writer http.ResponseWriter, request *http.Request) {
		if strings.Contains(request.URL.Query().Get("locator"), "status:FAILURE") {
			_, _ = writer.Write([]byte(`{"count":1,"testOccurrence":[
				{"id":"build:42,id:9","name":"TestThing","status":"FAILURE","duration":125}
			]}`))

			return
		}

		_, _ = writer.Write([]byte(`{"count":10,"passed":9,"failed":1}`))
	})

	return httptest.NewServer(mux)
}

func TestBuildResultsClient_StatusOnly(t *testing.T) {
	t.Parallel()

	state := &resultsServerState{}
	server := newResultsServer(t, state)
	defer server.Close()

	client := NewTestClient(server.URL)

	results, err := client.BuildResults().Get(context.Background(), &teamcity.BuildResultsOptions{
		BuildRef: teamcity.BuildRef{BuildID: 42},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), results.ID)
	assert.Equal(t, "FAILURE", results.Status)
	assert.Empty(t, results.Artifacts)
	assert.Empty(t, results.Statistics)
	assert.Empty(t, results.Changes)
	assert.Empty(t, results.Dependencies)
	assert.Empty(t, results.FailedTests)
}

func TestBuildResultsClient_AllSections(t *testing.T) {
	t.Parallel()

	state := &resultsServerState{}
	server := newResultsServer(t, state)
	defer server.Close()

	client := NewTestClient(server.URL)

	results, err := client.BuildResults().Get(context.Background(), &teamcity.BuildResultsOptions{
		BuildRef:            teamcity.BuildRef{BuildID: 42},
		IncludeArtifacts:    true,
		IncludeStatistics:   true,
		IncludeChanges:      true,
		IncludeDependencies: true,
		IncludeTests:        true,
	})
	require.NoError(t, err)

	require.Len(t, results.Artifacts, 2)
	assert.Equal(t, "app.jar", results.Artifacts[0].Name)

	assert.Equal(t, map[string]string{
		"BuildDuration": "240000",
		"ArtifactsSize": "3072",
	}, results.Statistics)

	require.Len(t, results.Changes, 1)
	assert.Equal(t, "abc123", results.Changes[0].Version)

	require.Len(t, results.Dependencies, 1)
	assert.Equal(t, int64(41), results.Dependencies[0].ID)
	assert.Equal(t, "SUCCESS", results.Dependencies[0].Status)

	require.NotNil(t, results.Tests)
	assert.Equal(t, 1, results.Tests.Failed)
	require.Len(t, results.FailedTests, 1)
	assert.Equal(t, "TestThing", results.FailedTests[0].Name)
}

func TestBuildResultsClient_CachesTerminalResults(t *testing.T) {
	t.Parallel()

	state := &resultsServerState{}
	server := newResultsServer(t, state)
	defer server.Close()

	client := NewTestClient(server.URL)
	opts := &teamcity.BuildResultsOptions{BuildRef: teamcity.BuildRef{BuildID: 42}}

	first, err := client.BuildResults().Get(context.Background(), opts)
	require.NoError(t, err)

	second, err := client.BuildResults().Get(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, state.buildGets)
}

func TestBuildResultsClient_OptionFlagsSeparateCacheEntries(t *testing.T) {
	t.Parallel()

	state := &resultsServerState{}
	server := newResultsServer(t, state)
	defer server.Close()

	client := NewTestClient(server.URL)
	ref := teamcity.BuildRef{BuildID: 42}

	narrow, err := client.BuildResults().Get(context.Background(),
		&teamcity.BuildResultsOptions{BuildRef: ref})
	require.NoError(t, err)
	assert.Empty(t, narrow.Artifacts)

	wide, err := client.BuildResults().Get(context.Background(),
		&teamcity.BuildResultsOptions{BuildRef: ref, IncludeArtifacts: true})
	require.NoError(t, err)
	assert.Len(t, wide.Artifacts, 2)

	assert.Equal(t, 2, state.buildGets)
}
