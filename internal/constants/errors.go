package constants

import "errors"

// Static errors shared by the CLI commands.
var (
	// ErrServerRequired indicates no server URL could be resolved from
	// flags, environment, or the saved config.
	ErrServerRequired = errors.New("server URL is required (use --server, TC_SERVER, or 'tc login')")

	// ErrBuildRefRequired indicates a command needs a build id or build
	// number and got neither.
	ErrBuildRefRequired = errors.New("a build id or build number is required")
)
