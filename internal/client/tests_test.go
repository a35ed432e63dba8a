package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daghis/tcapi/pkg/teamcity"
)

func TestTestOccurrencesClient_SummaryForBuild(t *testing.T) {
	t.Parallel()

	var gotLocator, gotFields string

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, "/app/rest/testOccurrences", request.URL.Path)
		gotLocator = request.URL.Query().Get("locator")
		gotFields = request.URL.Query().Get("fields")

		_, _ = writer.Write([]byte(`{"count":12,"passed":9,"failed":2,"ignored":1,"muted":0}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	summary, err := client.TestOccurrences().SummaryForBuild(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, "build:(id:42),count:1", gotLocator)
	// Only the envelope counters are requested, never the occurrence array
	assert.Equal(t, "count,passed,failed,ignored,muted", gotFields)

	assert.Equal(t, 12, summary.Count)
	assert.Equal(t, 9, summary.Passed)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 1, summary.Ignored)
	assert.Equal(t, 0, summary.Muted)
}

func TestTestOccurrencesClient_ListOmitsFieldProjection(t *testing.T) {
	t.Parallel()

	var hasFields bool

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hasFields = request.URL.Query().Has("fields")

		_, _ = writer.Write([]byte(`{"count":0,"testOccurrence":[]}`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.TestOccurrences().List(context.Background(), nil, teamcity.PageRequest{Count: 10})
	require.NoError(t, err)

	// Full listings want the complete representation
	assert.False(t, hasFields)
}
