package teamcity

// Project represents a TeamCity project.
type Project struct {
	ID              string       `json:"id"                        yaml:"id"`
	Name            string       `json:"name"                      yaml:"name"`
	ParentProjectID string       `json:"parentProjectId,omitempty" yaml:"parentProjectId,omitempty"`
	Description     string       `json:"description,omitempty"     yaml:"description,omitempty"`
	Archived        bool         `json:"archived,omitempty"        yaml:"archived,omitempty"`
	Href            string       `json:"href,omitempty"            yaml:"href,omitempty"`
	WebURL          string       `json:"webUrl,omitempty"          yaml:"webUrl,omitempty"`
	BuildTypes      *BuildTypes  `json:"buildTypes,omitempty"      yaml:"buildTypes,omitempty"`
	Projects        *ProjectList `json:"projects,omitempty"        yaml:"projects,omitempty"`
}

// BuildType represents a build configuration.
type BuildType struct {
	ID          string   `json:"id"                    yaml:"id"`
	Name        string   `json:"name"                  yaml:"name"`
	ProjectID   string   `json:"projectId,omitempty"   yaml:"projectId,omitempty"`
	ProjectName string   `json:"projectName,omitempty" yaml:"projectName,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Paused      bool     `json:"paused,omitempty"      yaml:"paused,omitempty"`
	Href        string   `json:"href,omitempty"        yaml:"href,omitempty"`
	WebURL      string   `json:"webUrl,omitempty"      yaml:"webUrl,omitempty"`
	Project     *Project `json:"project,omitempty"     yaml:"project,omitempty"`
}

// BuildTypes is the nested buildTypes envelope found inside projects.
type BuildTypes struct {
	Count     int         `json:"count"              yaml:"count"`
	BuildType []BuildType `json:"buildType,omitempty" yaml:"buildType,omitempty"`
}

// Build lifecycle states reported by the server.
const (
	BuildStateQueued   = "queued"
	BuildStateRunning  = "running"
	BuildStateFinished = "finished"
	BuildStateDeleted  = "deleted"
)

// Build represents a build, queued or otherwise.
type Build struct {
	ID          int64  `json:"id"                    yaml:"id"`
	BuildTypeID string `json:"buildTypeId,omitempty" yaml:"buildTypeId,omitempty"`
	Number      string `json:"number,omitempty"      yaml:"number,omitempty"`
	Status      string `json:"status,omitempty"      yaml:"status,omitempty"`
	State       string `json:"state,omitempty"       yaml:"state,omitempty"`
	BranchName  string `json:"branchName,omitempty"  yaml:"branchName,omitempty"`
	Personal    bool   `json:"personal,omitempty"    yaml:"personal,omitempty"`
	Href        string `json:"href,omitempty"        yaml:"href,omitempty"`
	WebURL      string `json:"webUrl,omitempty"      yaml:"webUrl,omitempty"`
	StatusText  string `json:"statusText,omitempty"  yaml:"statusText,omitempty"`

	// Timestamps in the server's compact format, e.g. "20240115T102030+0000".
	QueuedDate string `json:"queuedDate,omitempty" yaml:"queuedDate,omitempty"`
	StartDate  string `json:"startDate,omitempty"  yaml:"startDate,omitempty"`
	FinishDate string `json:"finishDate,omitempty" yaml:"finishDate,omitempty"`

	PercentageComplete int            `json:"percentageComplete,omitempty"    yaml:"percentageComplete,omitempty"`
	BuildTypeRef       *BuildType     `json:"buildType,omitempty"             yaml:"buildType,omitempty"`
	Agent              *Agent         `json:"agent,omitempty"                 yaml:"agent,omitempty"`
	Triggered          *TriggeredInfo `json:"triggered,omitempty"             yaml:"triggered,omitempty"`
	CanceledInfo       *CanceledInfo  `json:"canceledInfo,omitempty"          yaml:"canceledInfo,omitempty"`
	SnapshotDeps       *BuildList     `json:"snapshot-dependencies,omitempty" yaml:"snapshot-dependencies,omitempty"`
}

// IsTerminal reports whether the build has reached a state after which its
// status no longer changes. Canceled builds carry canceledInfo and are
// terminal regardless of state.
func (b *Build) IsTerminal() bool {
	if b == nil {
		return false
	}

	if b.CanceledInfo != nil {
		return true
	}

	return b.State == BuildStateFinished || b.State == BuildStateDeleted
}

// TriggeredInfo describes what triggered a build.
type TriggeredInfo struct {
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	Date string `json:"date,omitempty" yaml:"date,omitempty"`
	User *User  `json:"user,omitempty" yaml:"user,omitempty"`
}

// CanceledInfo is present on canceled builds.
type CanceledInfo struct {
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Text      string `json:"text,omitempty"      yaml:"text,omitempty"`
	User      *User  `json:"user,omitempty"      yaml:"user,omitempty"`
}

// Agent represents a build agent.
type Agent struct {
	ID         int64      `json:"id"                   yaml:"id"`
	Name       string     `json:"name,omitempty"       yaml:"name,omitempty"`
	TypeID     int64      `json:"typeId,omitempty"     yaml:"typeId,omitempty"`
	Connected  bool       `json:"connected,omitempty"  yaml:"connected,omitempty"`
	Enabled    bool       `json:"enabled,omitempty"    yaml:"enabled,omitempty"`
	Authorized bool       `json:"authorized,omitempty" yaml:"authorized,omitempty"`
	Href       string     `json:"href,omitempty"       yaml:"href,omitempty"`
	WebURL     string     `json:"webUrl,omitempty"     yaml:"webUrl,omitempty"`
	Pool       *AgentPool `json:"pool,omitempty"       yaml:"pool,omitempty"`
}

// AgentPool represents an agent pool.
type AgentPool struct {
	ID       int64  `json:"id"                 yaml:"id"`
	Name     string `json:"name,omitempty"     yaml:"name,omitempty"`
	Href     string `json:"href,omitempty"     yaml:"href,omitempty"`
	MaxAgents *int  `json:"maxAgents,omitempty" yaml:"maxAgents,omitempty"`
}

// VCSRoot represents a version control root.
type VCSRoot struct {
	ID      string   `json:"id"                yaml:"id"`
	Name    string   `json:"name,omitempty"    yaml:"name,omitempty"`
	VCSName string   `json:"vcsName,omitempty" yaml:"vcsName,omitempty"`
	Href    string   `json:"href,omitempty"    yaml:"href,omitempty"`
	Project *Project `json:"project,omitempty" yaml:"project,omitempty"`
}

// User represents a server user.
type User struct {
	ID       int64  `json:"id,omitempty"       yaml:"id,omitempty"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Name     string `json:"name,omitempty"     yaml:"name,omitempty"`
	Email    string `json:"email,omitempty"    yaml:"email,omitempty"`
	Href     string `json:"href,omitempty"     yaml:"href,omitempty"`
}

// Change represents a VCS change (commit).
type Change struct {
	ID       int64  `json:"id"                 yaml:"id"`
	Version  string `json:"version,omitempty"  yaml:"version,omitempty"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Date     string `json:"date,omitempty"     yaml:"date,omitempty"`
	Comment  string `json:"comment,omitempty"  yaml:"comment,omitempty"`
	Href     string `json:"href,omitempty"     yaml:"href,omitempty"`
	WebURL   string `json:"webUrl,omitempty"   yaml:"webUrl,omitempty"`
	User     *User  `json:"user,omitempty"     yaml:"user,omitempty"`
}

// TestOccurrence represents a single test run within a build.
type TestOccurrence struct {
	ID       string `json:"id"                 yaml:"id"`
	Name     string `json:"name,omitempty"     yaml:"name,omitempty"`
	Status   string `json:"status,omitempty"   yaml:"status,omitempty"`
	Duration int64  `json:"duration,omitempty" yaml:"duration,omitempty"`
	Muted    bool   `json:"muted,omitempty"    yaml:"muted,omitempty"`
	Ignored  bool   `json:"ignored,omitempty"  yaml:"ignored,omitempty"`
	Details  string `json:"details,omitempty"  yaml:"details,omitempty"`
	Href     string `json:"href,omitempty"     yaml:"href,omitempty"`
	Build    *Build `json:"build,omitempty"    yaml:"build,omitempty"`
}

// Problem represents a known build problem definition.
type Problem struct {
	ID       string `json:"id"                 yaml:"id"`
	Type     string `json:"type,omitempty"     yaml:"type,omitempty"`
	Identity string `json:"identity,omitempty" yaml:"identity,omitempty"`
	Href     string `json:"href,omitempty"     yaml:"href,omitempty"`
}

// ProblemOccurrence represents a build problem occurrence in a specific build.
type ProblemOccurrence struct {
	ID       string   `json:"id"                 yaml:"id"`
	Type     string   `json:"type,omitempty"     yaml:"type,omitempty"`
	Identity string   `json:"identity,omitempty" yaml:"identity,omitempty"`
	Details  string   `json:"details,omitempty"  yaml:"details,omitempty"`
	Href     string   `json:"href,omitempty"     yaml:"href,omitempty"`
	Problem  *Problem `json:"problem,omitempty"  yaml:"problem,omitempty"`
	Build    *Build   `json:"build,omitempty"    yaml:"build,omitempty"`
}

// Investigation represents an assigned investigation of a failure.
type Investigation struct {
	ID       string `json:"id"                 yaml:"id"`
	State    string `json:"state,omitempty"    yaml:"state,omitempty"`
	Href     string `json:"href,omitempty"     yaml:"href,omitempty"`
	Assignee *User  `json:"assignee,omitempty" yaml:"assignee,omitempty"`
}

// Mute represents a muted test or problem.
type Mute struct {
	ID   int64  `json:"id"             yaml:"id"`
	Href string `json:"href,omitempty" yaml:"href,omitempty"`
}

// ArtifactFile represents one entry of a build's artifact listing.
type ArtifactFile struct {
	Name             string `json:"name"                       yaml:"name"`
	FullName         string `json:"fullName,omitempty"         yaml:"fullName,omitempty"`
	Size             int64  `json:"size,omitempty"             yaml:"size,omitempty"`
	ModificationTime string `json:"modificationTime,omitempty" yaml:"modificationTime,omitempty"`
}

// Property is a generic name/value pair used by statistics and parameters.
type Property struct {
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// ServerInfo represents the /app/rest/server response.
type ServerInfo struct {
	Version      string `json:"version,omitempty"      yaml:"version,omitempty"`
	VersionMajor int    `json:"versionMajor,omitempty" yaml:"versionMajor,omitempty"`
	VersionMinor int    `json:"versionMinor,omitempty" yaml:"versionMinor,omitempty"`
	BuildNumber  string `json:"buildNumber,omitempty"  yaml:"buildNumber,omitempty"`
	StartTime    string `json:"startTime,omitempty"    yaml:"startTime,omitempty"`
	CurrentTime  string `json:"currentTime,omitempty"  yaml:"currentTime,omitempty"`
	WebURL       string `json:"webUrl,omitempty"       yaml:"webUrl,omitempty"`
}

// List envelopes. The server nests each resource list under a key named
// after the resource, alongside count/href cursors. Resource clients pass
// the matching extractor into NewPageFetcher.

// ProjectList is the projects list envelope.
type ProjectList struct {
	Count    int       `json:"count"              yaml:"count"`
	Href     string    `json:"href,omitempty"     yaml:"href,omitempty"`
	NextHref string    `json:"nextHref,omitempty" yaml:"nextHref,omitempty"`
	Project  []Project `json:"project,omitempty"  yaml:"project,omitempty"`
}

// BuildTypeList is the buildTypes list envelope.
type BuildTypeList struct {
	Count     int         `json:"count"               yaml:"count"`
	Href      string      `json:"href,omitempty"      yaml:"href,omitempty"`
	NextHref  string      `json:"nextHref,omitempty"  yaml:"nextHref,omitempty"`
	BuildType []BuildType `json:"buildType,omitempty" yaml:"buildType,omitempty"`
}

// BuildList is the builds list envelope.
type BuildList struct {
	Count    int     `json:"count"              yaml:"count"`
	Href     string  `json:"href,omitempty"     yaml:"href,omitempty"`
	NextHref string  `json:"nextHref,omitempty" yaml:"nextHref,omitempty"`
	Build    []Build `json:"build,omitempty"    yaml:"build,omitempty"`
}

// AgentList is the agents list envelope.
type AgentList struct {
	Count    int     `json:"count"              yaml:"count"`
	Href     string  `json:"href,omitempty"     yaml:"href,omitempty"`
	NextHref string  `json:"nextHref,omitempty" yaml:"nextHref,omitempty"`
	Agent    []Agent `json:"agent,omitempty"    yaml:"agent,omitempty"`
}

// AgentPoolList is the agent pools list envelope.
type AgentPoolList struct {
	Count     int         `json:"count"               yaml:"count"`
	Href      string      `json:"href,omitempty"      yaml:"href,omitempty"`
	NextHref  string      `json:"nextHref,omitempty"  yaml:"nextHref,omitempty"`
	AgentPool []AgentPool `json:"agentPool,omitempty" yaml:"agentPool,omitempty"`
}

// VCSRootList is the vcs-roots list envelope.
type VCSRootList struct {
	Count    int       `json:"count"              yaml:"count"`
	Href     string    `json:"href,omitempty"     yaml:"href,omitempty"`
	NextHref string    `json:"nextHref,omitempty" yaml:"nextHref,omitempty"`
	VCSRoot  []VCSRoot `json:"vcs-root,omitempty" yaml:"vcs-root,omitempty"`
}

// UserList is the users list envelope.
type UserList struct {
	Count    int    `json:"count"              yaml:"count"`
	Href     string `json:"href,omitempty"     yaml:"href,omitempty"`
	NextHref string `json:"nextHref,omitempty" yaml:"nextHref,omitempty"`
	User     []User `json:"user,omitempty"     yaml:"user,omitempty"`
}

// ChangeList is the changes list envelope.
type ChangeList struct {
	Count    int      `json:"count"              yaml:"count"`
	Href     string   `json:"href,omitempty"     yaml:"href,omitempty"`
	NextHref string   `json:"nextHref,omitempty" yaml:"nextHref,omitempty"`
	Change   []Change `json:"change,omitempty"   yaml:"change,omitempty"`
}

// TestOccurrenceList is the testOccurrences list envelope.
type TestOccurrenceList struct {
	Count          int              `json:"count"                    yaml:"count"`
	Href           string           `json:"href,omitempty"           yaml:"href,omitempty"`
	NextHref       string           `json:"nextHref,omitempty"       yaml:"nextHref,omitempty"`
	Passed         int              `json:"passed,omitempty"         yaml:"passed,omitempty"`
	Failed         int              `json:"failed,omitempty"         yaml:"failed,omitempty"`
	Ignored        int              `json:"ignored,omitempty"        yaml:"ignored,omitempty"`
	Muted          int              `json:"muted,omitempty"          yaml:"muted,omitempty"`
	TestOccurrence []TestOccurrence `json:"testOccurrence,omitempty" yaml:"testOccurrence,omitempty"`
}

// ProblemList is the problems list envelope.
type ProblemList struct {
	Count    int       `json:"count"              yaml:"count"`
	Href     string    `json:"href,omitempty"     yaml:"href,omitempty"`
	NextHref string    `json:"nextHref,omitempty" yaml:"nextHref,omitempty"`
	Problem  []Problem `json:"problem,omitempty"  yaml:"problem,omitempty"`
}

// ProblemOccurrenceList is the problemOccurrences list envelope.
type ProblemOccurrenceList struct {
	Count             int                 `json:"count"                       yaml:"count"`
	Href              string              `json:"href,omitempty"              yaml:"href,omitempty"`
	NextHref          string              `json:"nextHref,omitempty"          yaml:"nextHref,omitempty"`
	ProblemOccurrence []ProblemOccurrence `json:"problemOccurrence,omitempty" yaml:"problemOccurrence,omitempty"`
}

// InvestigationList is the investigations list envelope.
type InvestigationList struct {
	Count         int             `json:"count"                   yaml:"count"`
	Href          string          `json:"href,omitempty"          yaml:"href,omitempty"`
	NextHref      string          `json:"nextHref,omitempty"      yaml:"nextHref,omitempty"`
	Investigation []Investigation `json:"investigation,omitempty" yaml:"investigation,omitempty"`
}

// MuteList is the mutes list envelope.
type MuteList struct {
	Count    int    `json:"count"              yaml:"count"`
	Href     string `json:"href,omitempty"     yaml:"href,omitempty"`
	NextHref string `json:"nextHref,omitempty" yaml:"nextHref,omitempty"`
	Mute     []Mute `json:"mute,omitempty"     yaml:"mute,omitempty"`
}

// ArtifactFileList is the artifact children envelope.
type ArtifactFileList struct {
	Count int            `json:"count"          yaml:"count"`
	File  []ArtifactFile `json:"file,omitempty" yaml:"file,omitempty"`
}

// PropertyList is the statistics/properties envelope.
type PropertyList struct {
	Count    int        `json:"count"              yaml:"count"`
	Property []Property `json:"property,omitempty" yaml:"property,omitempty"`
}
