package teamcity

import (
	"context"
	"fmt"
)

// PageRequest addresses one page of a listing with the server's cursor
// dimensions.
type PageRequest struct {
	Start int
	Count int
}

// Normalize clamps the request to valid bounds: start >= 0, 0 < count <=
// MaxPageSize.
func (r PageRequest) Normalize() PageRequest {
	if r.Start < 0 {
		r.Start = 0
	}

	if r.Count <= 0 {
		r.Count = DefaultPageSize
	}

	if r.Count > MaxPageSize {
		r.Count = MaxPageSize
	}

	return r
}

// DefaultPageSize is used when a request does not specify a count.
const DefaultPageSize = 100

// PageResult holds one fetched page. TotalCount, when the server reports it,
// counts all matching items and is informational only; exhaustion is detected
// from short or empty pages, never from TotalCount.
type PageResult[T any] struct {
	Items      []T
	TotalCount *int
}

// PageFunc fetches a single page. Implementations issue exactly one upstream
// call per invocation.
type PageFunc[T any] func(ctx context.Context, req PageRequest) (*PageResult[T], error)

// LoadFunc fetches the raw list envelope for one page.
type LoadFunc[E any] func(ctx context.Context, req PageRequest) (*E, error)

// NewPageFetcher binds a single-page envelope loader to a pair of injected
// extractors. Envelopes nest their item arrays under per-resource keys, so
// extraction cannot be shared; everything else about fetching a page can. An
// envelope whose array key is absent extracts to nil, which downstream
// pagination treats as end of data rather than an error.
func NewPageFetcher[E, T any](load LoadFunc[E], items func(*E) []T, total func(*E) *int) PageFunc[T] {
	return func(ctx context.Context, req PageRequest) (*PageResult[T], error) {
		req = req.Normalize()

		envelope, err := load(ctx, req)
		if err != nil {
			return nil, err
		}

		result := &PageResult[T]{}

		if envelope != nil {
			result.Items = items(envelope)

			if total != nil {
				result.TotalCount = total(envelope)
			}
		}

		return result, nil
	}
}

// FetchAllOptions controls FetchAllPages.
type FetchAllOptions struct {
	// PageSize is the count requested per page.
	PageSize int

	// MaxPages bounds the number of pages fetched. Zero means no budget:
	// fetch until a short or empty page signals exhaustion.
	MaxPages int
}

// DefaultFetchAllOptions returns options with the default page size and no
// page budget.
func DefaultFetchAllOptions() *FetchAllOptions {
	return &FetchAllOptions{PageSize: DefaultPageSize}
}

// FetchAllResult is the aggregate of an auto-fetch-all run.
type FetchAllResult[T any] struct {
	// Items preserves upstream page order and within-page order. No
	// deduplication or re-sorting is performed.
	Items []T

	// Pages is the number of upstream calls issued.
	Pages int

	// Truncated is true when the run stopped because MaxPages was reached.
	// A truncated listing must never be presented as the complete set.
	Truncated bool

	// TotalCount is the server-reported total from the last page that
	// carried one, for reporting only.
	TotalCount *int
}

// FetchAllPages drives a PageFunc from start 0 until exhaustion or the page
// budget, aggregating items in order. Pages are fetched sequentially to keep
// upstream load bounded and ordering deterministic. An error on any page
// aborts the whole run; no partial results are returned, so a caller can
// never mistake a truncated-by-failure listing for a complete one.
func FetchAllPages[T any](ctx context.Context, fetch PageFunc[T], opts *FetchAllOptions) (*FetchAllResult[T], error) {
	if opts == nil {
		opts = DefaultFetchAllOptions()
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	result := &FetchAllResult[T]{}
	start := 0

	for {
		page, err := fetch(ctx, PageRequest{Start: start, Count: pageSize})
		if err != nil {
			return nil, fmt.Errorf("fetching page at start %d: %w", start, err)
		}

		result.Pages++
		result.Items = append(result.Items, page.Items...)

		if page.TotalCount != nil {
			result.TotalCount = page.TotalCount
		}

		if len(page.Items) < pageSize {
			// Short or empty page: the listing is exhausted.
			return result, nil
		}

		if opts.MaxPages > 0 && result.Pages >= opts.MaxPages {
			result.Truncated = true

			return result, nil
		}

		start += pageSize
	}
}
