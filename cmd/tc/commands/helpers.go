package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Daghis/tcapi/internal/constants"
	"github.com/Daghis/tcapi/pkg/tcclient"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// CreateClient builds a teamcity client from the effective configuration:
// flags override environment, environment overrides the config file.
func CreateClient() (teamcity.Client, error) {
	serverURL := viper.GetString("server")
	if serverURL == "" {
		return nil, constants.ErrServerRequired
	}

	return tcclient.New(&teamcity.Config{
		ServerURL: serverURL,
		Token:     viper.GetString("token"),
		Username:  viper.GetString("username"),
		Password:  viper.GetString("password"),
		Debug:     viper.GetBool("verbose"),
	})
}

// StandardJSONRenderer encodes data as indented JSON to stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer encodes data as YAML to stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(constants.OutputIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// fetchOptions maps the shared --all/--per-page/--max-pages flags onto the
// paging options used by the list commands.
func fetchOptions(perPage, maxPages int) *teamcity.FetchAllOptions {
	return &teamcity.FetchAllOptions{
		PageSize: perPage,
		MaxPages: maxPages,
	}
}

// parseBuildRef interprets an argument as an internal id when numeric would
// be ambiguous; explicit flags always win.
func parseBuildRef(arg, buildNumber, buildTypeID string, useNumber bool) (teamcity.BuildRef, error) {
	ref := teamcity.BuildRef{
		BuildNumber: buildNumber,
		BuildTypeID: buildTypeID,
	}

	if arg != "" {
		if useNumber {
			ref.BuildNumber = arg
		} else if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
			ref.BuildID = id
		} else {
			ref.BuildNumber = arg
		}
	}

	if ref.BuildID == 0 && ref.BuildNumber == "" {
		return ref, constants.ErrBuildRefRequired
	}

	return ref, nil
}

// formatEpochMillis renders an epoch-milliseconds pointer for table output.
func formatEpochMillis(millis *int64) string {
	if millis == nil {
		return NotAvailable
	}

	return time.UnixMilli(*millis).Format("2006-01-02 15:04:05")
}

// formatDurationMillis renders a duration-in-milliseconds pointer for table
// output.
func formatDurationMillis(millis *int64) string {
	if millis == nil {
		return NotAvailable
	}

	return (time.Duration(*millis) * time.Millisecond).String()
}

// truncatedNote prints the page budget warning after a bounded fetch-all.
func truncatedNote(truncated bool) {
	if truncated {
		fmt.Fprintln(os.Stderr, "Warning: page budget reached, results are incomplete")
	}
}
