package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Daghis/tcapi/pkg/teamcity"
)

// NewResultsCommand creates the results command.
func NewResultsCommand() *cobra.Command {
	var (
		buildNumber  string
		buildTypeID  string
		artifacts    bool
		statistics   bool
		changes      bool
		dependencies bool
		tests        bool
		forceRefresh bool
	)

	cmd := &cobra.Command{
		Use:   "results [BUILD_ID_OR_NUMBER]",
		Short: "Show a build's composite results",
		Long: `Show a build's composite results: the normalized status plus whichever of
artifacts, statistics, changes, snapshot dependencies, and failed tests were
requested. Finished builds are served from a short-lived cache; use
--refresh to bypass it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}

			ref, err := parseBuildRef(arg, buildNumber, buildTypeID, cmd.Flags().Changed("number"))
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			results, err := client.BuildResults().Get(context.Background(), &teamcity.BuildResultsOptions{
				BuildRef:            ref,
				IncludeArtifacts:    artifacts,
				IncludeStatistics:   statistics,
				IncludeChanges:      changes,
				IncludeDependencies: dependencies,
				IncludeTests:        tests,
				ForceRefresh:        forceRefresh,
			})
			if err != nil {
				return fmt.Errorf("failed to get build results: %w", err)
			}

			return outputBuildResults(results)
		},
	}

	cmd.Flags().StringVar(&buildNumber, "number", "", "build number (instead of internal id)")
	cmd.Flags().StringVar(&buildTypeID, "buildtype", "", "build configuration id, disambiguates --number")
	cmd.Flags().BoolVar(&artifacts, "artifacts", false, "include artifacts")
	cmd.Flags().BoolVar(&statistics, "statistics", false, "include build statistics")
	cmd.Flags().BoolVar(&changes, "changes", false, "include VCS changes")
	cmd.Flags().BoolVar(&dependencies, "dependencies", false, "include snapshot dependencies")
	cmd.Flags().BoolVar(&tests, "tests", false, "include test summary and failed tests")
	cmd.Flags().BoolVar(&forceRefresh, "refresh", false, "bypass the cache")

	return cmd
}

func outputBuildResults(results *teamcity.BuildResults) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(results)
	case OutputFormatYAML:
		return StandardYAMLRenderer(results)
	default:
		return renderBuildResultsTables(results)
	}
}

func renderBuildResultsTables(results *teamcity.BuildResults) error {
	if err := renderBuildStatusTable(&results.BuildStatus); err != nil {
		return err
	}

	if len(results.Artifacts) > 0 {
		fmt.Println("\nArtifacts:")

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Size")

		for _, artifact := range results.Artifacts {
			_ = table.Append(artifact.Name, strconv.FormatInt(artifact.Size, 10))
		}

		_ = table.Render()
	}

	if len(results.Changes) > 0 {
		fmt.Println("\nChanges:")

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Version", "User", "Comment")

		for _, change := range results.Changes {
			_ = table.Append(change.Version, change.Username, change.Comment)
		}

		_ = table.Render()
	}

	if len(results.Dependencies) > 0 {
		fmt.Println("\nDependencies:")

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Number", "Build Type", "State", "Status")

		for _, dependency := range results.Dependencies {
			_ = table.Append(strconv.FormatInt(dependency.ID, 10), dependency.Number,
				dependency.BuildTypeID, dependency.State, dependency.Status)
		}

		_ = table.Render()
	}

	if len(results.FailedTests) > 0 {
		fmt.Println("\nFailed tests:")

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Status", "Duration")

		for _, test := range results.FailedTests {
			_ = table.Append(test.Name, test.Status, strconv.FormatInt(test.Duration, 10))
		}

		_ = table.Render()
	}

	if len(results.Statistics) > 0 {
		fmt.Println("\nStatistics:")

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Key", "Value")

		for key, value := range results.Statistics {
			_ = table.Append(key, value)
		}

		_ = table.Render()
	}

	return nil
}
