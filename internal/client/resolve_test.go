package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daghis/tcapi/pkg/teamcity"
)

func buildListHandler(t *testing.T, handler func(locator string) teamcity.BuildList) http.HandlerFunc {
	t.Helper()

	return func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/app/rest/builds", request.URL.Path)

		envelope := handler(request.URL.Query().Get("locator"))
		envelope.Count = len(envelope.Build)

		_ = json.NewEncoder(writer).Encode(envelope)
	}
}

func TestResolveBuildID_DirectID(t *testing.T) {
	t.Parallel()

	// No HTTP call may happen for a direct id
	client := NewTestClient("http://127.0.0.1:0")

	id, err := resolveBuildID(context.Background(), client.Builds(), teamcity.BuildRef{BuildID: 42})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestResolveBuildID_EmptyRef(t *testing.T) {
	t.Parallel()

	client := NewTestClient("http://127.0.0.1:0")

	_, err := resolveBuildID(context.Background(), client.Builds(), teamcity.BuildRef{})
	require.ErrorIs(t, err, teamcity.ErrBuildRefRequired)
}

func TestResolveBuildID_UniqueNumber(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(buildListHandler(t, func(locator string) teamcity.BuildList {
		assert.Contains(t, locator, "number:101")

		return teamcity.BuildList{Build: []teamcity.Build{{ID: 555, Number: "101"}}}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	id, err := resolveBuildID(context.Background(), client.Builds(), teamcity.BuildRef{BuildNumber: "101"})
	require.NoError(t, err)
	assert.Equal(t, int64(555), id)
}

func TestResolveBuildID_AmbiguousNumber(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(buildListHandler(t, func(locator string) teamcity.BuildList {
		return teamcity.BuildList{Build: []teamcity.Build{
			{ID: 201, Number: "77"},
			{ID: 202, Number: "77"},
		}}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := resolveBuildID(context.Background(), client.Builds(), teamcity.BuildRef{BuildNumber: "77"})
	require.Error(t, err)
	assert.True(t, teamcity.IsAmbiguous(err))

	ambiguous := &teamcity.AmbiguousBuildError{}
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, []int64{201, 202}, ambiguous.MatchIDs)
}

func TestResolveBuildID_BuildTypeDisambiguates(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(buildListHandler(t, func(locator string) teamcity.BuildList {
		assert.Contains(t, locator, "buildType:(id:BT_X)")
		assert.Contains(t, locator, "number:77")

		return teamcity.BuildList{Build: []teamcity.Build{{ID: 201, Number: "77"}}}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	id, err := resolveBuildID(context.Background(), client.Builds(),
		teamcity.BuildRef{BuildNumber: "77", BuildTypeID: "BT_X"})
	require.NoError(t, err)
	assert.Equal(t, int64(201), id)
}

func TestResolveBuildID_RecentBuildsFallback(t *testing.T) {
	t.Parallel()

	var requests []string

	server := httptest.NewServer(buildListHandler(t, func(locator string) teamcity.BuildList {
		requests = append(requests, locator)

		// The direct number query finds nothing; the recent-builds scan
		// turns up a hidden build with the wanted number.
		if strings.Contains(locator, "number:") {
			return teamcity.BuildList{}
		}

		return teamcity.BuildList{Build: []teamcity.Build{
			{ID: 900, Number: "57"},
			{ID: 899, Number: "56"},
			{ID: 898, Number: "55"},
		}}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	id, err := resolveBuildID(context.Background(), client.Builds(),
		teamcity.BuildRef{BuildNumber: "56", BuildTypeID: "BT_X"})
	require.NoError(t, err)
	assert.Equal(t, int64(899), id)

	require.Len(t, requests, 2)
	assert.Contains(t, requests[1], "defaultFilter:false")
	assert.Contains(t, requests[1], "count:100")
}

func TestResolveBuildID_NoFallbackWithoutBuildType(t *testing.T) {
	t.Parallel()

	var calls int

	server := httptest.NewServer(buildListHandler(t, func(locator string) teamcity.BuildList {
		calls++

		return teamcity.BuildList{}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := resolveBuildID(context.Background(), client.Builds(), teamcity.BuildRef{BuildNumber: "9"})
	require.ErrorIs(t, err, teamcity.ErrBuildNotFound)
	assert.Equal(t, 1, calls)
}

func TestResolveBuildID_NotFoundAfterFallback(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(buildListHandler(t, func(locator string) teamcity.BuildList {
		if strings.Contains(locator, "number:") {
			return teamcity.BuildList{}
		}

		return teamcity.BuildList{Build: []teamcity.Build{{ID: 900, Number: "57"}}}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := resolveBuildID(context.Background(), client.Builds(),
		teamcity.BuildRef{BuildNumber: "56", BuildTypeID: "BT_X"})
	require.ErrorIs(t, err, teamcity.ErrBuildNotFound)
	assert.True(t, teamcity.IsNotFound(err))
}
