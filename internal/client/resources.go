package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	internalhttp "github.com/Daghis/tcapi/internal/http"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// pageLocator merges cursor dimensions into a copy of the caller's locator.
// The caller's locator is never mutated.
func pageLocator(loc *teamcity.Locator, req teamcity.PageRequest) *teamcity.Locator {
	merged := teamcity.NewLocator()
	if loc != nil {
		merged = loc.Clone()
	}

	req = req.Normalize()

	return merged.WithCount(req.Count).WithStart(req.Start)
}

// listQuery builds the query values for a list request: the locator filter
// plus an optional field projection trimming the representation to what the
// caller will actually read.
func listQuery(loc *teamcity.Locator, fields ...string) url.Values {
	return teamcity.NewQueryParams().
		WithLocator(loc).
		WithFields(fields...).
		ToValues()
}

// getJSON fetches a path and decodes the JSON response into T.
func getJSON[T any](ctx context.Context, httpClient *internalhttp.Client, path string, query url.Values, what string) (*T, error) {
	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", what, err)
	}

	var result T

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", what, err)
	}

	return &result, nil
}

// loadListPage fetches one page of a listing envelope for the given path.
// The envelope's count echoes the page size, not the total of all matching
// items, so resource clients pass nil total extractors into NewPageFetcher.
func loadListPage[E any](ctx context.Context, httpClient *internalhttp.Client, path string, loc *teamcity.Locator, req teamcity.PageRequest, what string) (*E, error) {
	return getJSON[E](ctx, httpClient, path, listQuery(pageLocator(loc, req)), what)
}
