package teamcity

import (
	"context"
	"time"
)

// ProjectsClient accesses projects.
type ProjectsClient interface {
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, loc *Locator, req PageRequest) (*PageResult[Project], error)
	ListAll(ctx context.Context, loc *Locator, opts *FetchAllOptions) (*FetchAllResult[Project], error)
}

// BuildTypesClient accesses build configurations.
type BuildTypesClient interface {
	Get(ctx context.Context, id string) (*BuildType, error)
	List(ctx context.Context, loc *Locator, req PageRequest) (*PageResult[BuildType], error)
	ListAll(ctx context.Context, loc *Locator, opts *FetchAllOptions) (*FetchAllResult[BuildType], error)
}

// BuildsClient accesses builds and their per-build sub-resources.
type BuildsClient interface {
	Get(ctx context.Context, id int64) (*Build, error)
	GetByLocator(ctx context.Context, locator string) (*Build, error)
	List(ctx context.Context, loc *Locator, req PageRequest) (*PageResult[Build], error)
	ListAll(ctx context.Context, loc *Locator, opts *FetchAllOptions) (*FetchAllResult[Build], error)
	Statistics(ctx context.Context, id int64) (*PropertyList, error)
	Artifacts(ctx context.Context, id int64) (*ArtifactFileList, error)
}

// AgentsClient accesses build agents.
type AgentsClient interface {
	Get(ctx context.Context, id int64) (*Agent, error)
	List(ctx context.Context, loc *Locator, req PageRequest) (*PageResult[Agent], error)
	ListAll(ctx context.Context, loc *Locator, opts *FetchAllOptions) (*FetchAllResult[Agent], error)
}

// AgentPoolsClient accesses agent pools.
type AgentPoolsClient interface {
	Get(ctx context.Context, id int64) (*AgentPool, error)
	List(ctx context.Context, loc *Locator, req PageRequest) (*PageResult[AgentPool], error)
	ListAll(ctx context.Context, loc *Locator, opts *FetchAllOptions) (*FetchAllResult[AgentPool], error)
}

// VCSRootsClient accesses version control roots.
type VCSRootsClient interface {
	Get(ctx context.Context, id string) (*VCSRoot, error)
	List(ctx context.Context, loc *Locator, req PageRequest) (*PageResult[VCSRoot], error)
	ListAll(ctx context.Context, loc *Locator, opts *FetchAllOptions) (*FetchAllResult[VCSRoot], error)
}

// UsersClient accesses server users.
type UsersClient interface {
	Get(ctx context.Context, locator string) (*User, error)
	List(ctx context.Context, loc *Locator, req PageRequest) (*PageResult[User], error)
	ListAll(ctx context.Context, loc *Locator, opts *FetchAllOptions) (*FetchAllResult[User], error)
}

// ChangesClient accesses VCS changes.
type ChangesClient interface {
	Get(ctx context.Context, id int64) (*Change, error)
	List(ctx context.Context, loc *Locator, req PageRequest) (*PageResult[Change], error)
	ListAll(ctx context.Context, loc *Locator, opts *FetchAllOptions) (*FetchAllResult[Change], error)
}

// TestOccurrencesClient accesses per-build test runs.
type TestOccurrencesClient interface {
	Get(ctx context.Context, id string) (*TestOccurrence, error)
	List(ctx context.Context, loc *Locator, req PageRequest) (*PageResult[TestOccurrence], error)
	ListAll(ctx context.Context, loc *Locator, opts *FetchAllOptions) (*FetchAllResult[TestOccurrence], error)
	SummaryForBuild(ctx context.Context, buildID int64) (*TestSummary, error)
}

// ProblemsClient accesses build problem definitions.
type ProblemsClient interface {
	List(ctx context.Context, loc *Locator, req PageRequest) (*PageResult[Problem], error)
	ListAll(ctx context.Context, loc *Locator, opts *FetchAllOptions) (*FetchAllResult[Problem], error)
}

// ProblemOccurrencesClient accesses build problem occurrences.
type ProblemOccurrencesClient interface {
	List(ctx context.Context, loc *Locator, req PageRequest) (*PageResult[ProblemOccurrence], error)
	ListAll(ctx context.Context, loc *Locator, opts *FetchAllOptions) (*FetchAllResult[ProblemOccurrence], error)
}

// InvestigationsClient accesses failure investigations.
type InvestigationsClient interface {
	List(ctx context.Context, loc *Locator, req PageRequest) (*PageResult[Investigation], error)
	ListAll(ctx context.Context, loc *Locator, opts *FetchAllOptions) (*FetchAllResult[Investigation], error)
}

// MutesClient accesses test/problem mutes.
type MutesClient interface {
	List(ctx context.Context, loc *Locator, req PageRequest) (*PageResult[Mute], error)
	ListAll(ctx context.Context, loc *Locator, opts *FetchAllOptions) (*FetchAllResult[Mute], error)
}

// BuildRef identifies a build either by internal id or by its human-readable
// number, optionally scoped to a build type for disambiguation.
type BuildRef struct {
	BuildID     int64
	BuildNumber string
	BuildTypeID string
}

// BuildLogOptions controls a log read. Exactly one addressing scheme is
// used: Tail, explicit StartLine/LineCount, or 1-based Page/PageSize.
type BuildLogOptions struct {
	BuildRef

	Tail      bool
	StartLine *int
	LineCount int
	Page      int
	PageSize  int
}

// LogsClient reads build logs as line-indexed chunks.
type LogsClient interface {
	Read(ctx context.Context, opts *BuildLogOptions) (*LogChunk, error)
}

// TestSummary aggregates test outcomes for a build.
type TestSummary struct {
	Count   int `json:"count"             yaml:"count"`
	Passed  int `json:"passed,omitempty"  yaml:"passed,omitempty"`
	Failed  int `json:"failed,omitempty"  yaml:"failed,omitempty"`
	Ignored int `json:"ignored,omitempty" yaml:"ignored,omitempty"`
	Muted   int `json:"muted,omitempty"   yaml:"muted,omitempty"`
}

// BuildStatus is the normalized composite status of a build. Upstream
// compact timestamps become epoch milliseconds; duration is finish − start
// when both are known.
type BuildStatus struct {
	ID                 int64        `json:"id"                           yaml:"id"`
	Number             string       `json:"number,omitempty"             yaml:"number,omitempty"`
	BuildTypeID        string       `json:"buildTypeId,omitempty"        yaml:"buildTypeId,omitempty"`
	State              string       `json:"state"                        yaml:"state"`
	Status             string       `json:"status,omitempty"             yaml:"status,omitempty"`
	StatusText         string       `json:"statusText,omitempty"         yaml:"statusText,omitempty"`
	BranchName         string       `json:"branchName,omitempty"         yaml:"branchName,omitempty"`
	WebURL             string       `json:"webUrl,omitempty"             yaml:"webUrl,omitempty"`
	Canceled           bool         `json:"canceled,omitempty"           yaml:"canceled,omitempty"`
	PercentageComplete int          `json:"percentageComplete,omitempty" yaml:"percentageComplete,omitempty"`
	QueuedAt           *int64       `json:"queuedAt,omitempty"           yaml:"queuedAt,omitempty"`
	StartedAt          *int64       `json:"startedAt,omitempty"          yaml:"startedAt,omitempty"`
	FinishedAt         *int64       `json:"finishedAt,omitempty"         yaml:"finishedAt,omitempty"`
	DurationMs         *int64       `json:"durationMs,omitempty"         yaml:"durationMs,omitempty"`
	Tests              *TestSummary `json:"tests,omitempty"              yaml:"tests,omitempty"`
	ProblemCount       *int         `json:"problemCount,omitempty"       yaml:"problemCount,omitempty"`
}

// BuildStatusOptions controls a composite status lookup.
type BuildStatusOptions struct {
	BuildRef

	IncludeTests    bool
	IncludeProblems bool

	// ForceRefresh bypasses the cache read. The write-back still obeys the
	// cacheability predicate.
	ForceRefresh bool
}

// BuildStatusClient resolves and normalizes a build's status.
type BuildStatusClient interface {
	Get(ctx context.Context, opts *BuildStatusOptions) (*BuildStatus, error)
	CacheStats() CacheStats
}

// BuildResults is the normalized composite outcome of a build: the status
// plus whichever extended sections were requested.
type BuildResults struct {
	BuildStatus `yaml:",inline"`

	Artifacts    []ArtifactFile    `json:"artifacts,omitempty"    yaml:"artifacts,omitempty"`
	Statistics   map[string]string `json:"statistics,omitempty"   yaml:"statistics,omitempty"`
	Changes      []Change          `json:"changes,omitempty"      yaml:"changes,omitempty"`
	Dependencies []BuildStatus     `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	FailedTests  []TestOccurrence  `json:"failedTests,omitempty"  yaml:"failedTests,omitempty"`
}

// BuildResultsOptions controls a composite results lookup. Every flag that
// changes the computed value participates in the cache key.
type BuildResultsOptions struct {
	BuildRef

	IncludeArtifacts    bool
	IncludeStatistics   bool
	IncludeChanges      bool
	IncludeDependencies bool
	IncludeTests        bool
	ForceRefresh        bool
}

// BuildResultsClient resolves and normalizes a build's composite results.
type BuildResultsClient interface {
	Get(ctx context.Context, opts *BuildResultsOptions) (*BuildResults, error)
	CacheStats() CacheStats
}

// Client is the full TeamCity API surface.
type Client interface {
	Projects() ProjectsClient
	BuildTypes() BuildTypesClient
	Builds() BuildsClient
	Agents() AgentsClient
	AgentPools() AgentPoolsClient
	VCSRoots() VCSRootsClient
	Users() UsersClient
	Changes() ChangesClient
	TestOccurrences() TestOccurrencesClient
	Problems() ProblemsClient
	ProblemOccurrences() ProblemOccurrencesClient
	Investigations() InvestigationsClient
	Mutes() MutesClient
	Logs() LogsClient
	BuildStatus() BuildStatusClient
	BuildResults() BuildResultsClient

	GetServerInfo(ctx context.Context) (*ServerInfo, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a teamcity.Client.
//
// Authentication: a Token is sent as a Bearer token. Username/Password falls
// back to basic auth against the /httpAuth prefix. With neither set, guest
// access is used.
//
// Retries for transient failures (5xx, 429, connection errors) live in the
// HTTP transport and are tuned with RetryMax/RetryWaitMin/RetryWaitMax;
// nothing above the transport retries.
type Config struct {
	// ServerURL is the base URL of the TeamCity server,
	// e.g. "https://teamcity.example.com".
	ServerURL string

	// Token is a TeamCity access token used as a Bearer token.
	Token string

	// Username and Password select basic auth when Token is empty.
	Username string
	Password string

	// HTTPTimeout is the per-request timeout; prefer context deadlines.
	HTTPTimeout time.Duration

	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug enables request/response logging when a Logger is provided.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Cache configures the composite-result cache backend. Nil selects the
	// default in-process memory cache.
	Cache *CacheConfig

	// StatusTTL and ResultsTTL override the composite-result TTLs. Zero
	// selects DefaultStatusTTL / DefaultResultsTTL.
	StatusTTL  time.Duration
	ResultsTTL time.Duration
}
