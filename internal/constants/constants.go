package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination and display limits.
const (
	// StandardPageSize is the common page size for list commands.
	StandardPageSize = 50

	// RecentBuildsWindow is the number of most-recent builds scanned when a
	// direct number locator finds nothing.
	RecentBuildsWindow = 100

	// DefaultLogPageSize is the default number of log lines per page.
	DefaultLogPageSize = 500
)

// Output formatting.
const (
	// OutputIndentSize is the indent used for structured command output.
	OutputIndentSize = 2
)
