package teamcity

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error returned by the TeamCity REST API. The status
// code is the upstream HTTP status; callers branch on it through the Is*
// helpers rather than by parsing the message text.
type APIError struct {
	StatusCode int    `json:"statusCode" yaml:"statusCode"`
	Message    string `json:"message"    yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("TeamCity API error (status %d)", e.StatusCode)
	}

	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// AmbiguousBuildError reports that a human-supplied build number matched more
// than one build and no build type was given to disambiguate.
type AmbiguousBuildError struct {
	Number   string
	MatchIDs []int64
}

// Error implements the error interface.
func (e *AmbiguousBuildError) Error() string {
	return fmt.Sprintf("build number %q matches %d builds; specify a build type to disambiguate",
		e.Number, len(e.MatchIDs))
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrServerURLRequired  = errors.New("server URL is required")
	ErrBuildNotFound      = errors.New("build not found")
	ErrBuildRefRequired   = errors.New("either a build ID or a build number is required")
	ErrStartLineNegative  = errors.New("start line must not be negative")
	ErrCacheDisabled      = errors.New("cache disabled")
	ErrCacheKeyNotFound   = errors.New("key not found")
	ErrCacheEntryExpired  = errors.New("entry expired")
	ErrNATSConfigRequired = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCache   = errors.New("unsupported cache type")
)

// IsNotFound checks whether the error is an upstream 404 on a direct lookup.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return errors.Is(err, ErrBuildNotFound)
}

// IsAccessDenied checks whether the error is an upstream 403.
func IsAccessDenied(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusForbidden
	}

	return false
}

// IsUnauthorized checks whether the error is an upstream 401.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsAmbiguous checks whether the error reports an ambiguous build number.
func IsAmbiguous(err error) bool {
	ambErr := &AmbiguousBuildError{}

	return errors.As(err, &ambErr)
}

// IsUpstreamUnavailable checks whether the error is a server-side (5xx)
// failure. Retrying is the transport's concern; this layer only classifies.
func IsUpstreamUnavailable(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}

	return false
}
