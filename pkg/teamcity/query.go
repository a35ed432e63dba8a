package teamcity

import (
	"net/url"
	"strings"
)

// MaxPageSize is the server-side maximum for the count dimension. Requests
// asking for more are clamped before they reach the wire.
const MaxPageSize = 1000

// QueryParams represents query parameters for list requests: the locator
// filter expression and an optional field-projection string.
type QueryParams struct {
	Locator *Locator
	Fields  []string
}

// NewQueryParams creates a new empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{Locator: NewLocator()}
}

// WithLocator replaces the locator.
func (q *QueryParams) WithLocator(loc *Locator) *QueryParams {
	q.Locator = loc

	return q
}

// WithFields appends field-projection entries.
func (q *QueryParams) WithFields(fields ...string) *QueryParams {
	q.Fields = append(q.Fields, fields...)

	return q
}

// ToValues converts the params to URL query values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Locator != nil && !q.Locator.IsEmpty() {
		values.Set("locator", q.Locator.String())
	}

	if len(q.Fields) > 0 {
		values.Set("fields", strings.Join(q.Fields, ","))
	}

	return values
}
