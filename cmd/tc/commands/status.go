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

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	var (
		buildNumber     string
		buildTypeID     string
		includeTests    bool
		includeProblems bool
		forceRefresh    bool
	)

	cmd := &cobra.Command{
		Use:   "status [BUILD_ID_OR_NUMBER]",
		Short: "Show a build's status",
		Long: `Show a build's normalized status: state, outcome, timing, and optionally
test and problem summaries. Finished builds are served from a short-lived
cache; use --refresh to bypass it.`,
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

			status, err := client.BuildStatus().Get(context.Background(), &teamcity.BuildStatusOptions{
				BuildRef:        ref,
				IncludeTests:    includeTests,
				IncludeProblems: includeProblems,
				ForceRefresh:    forceRefresh,
			})
			if err != nil {
				return fmt.Errorf("failed to get build status: %w", err)
			}

			return outputBuildStatus(status)
		},
	}

	cmd.Flags().StringVar(&buildNumber, "number", "", "build number (instead of internal id)")
	cmd.Flags().StringVar(&buildTypeID, "buildtype", "", "build configuration id, disambiguates --number")
	cmd.Flags().BoolVar(&includeTests, "tests", false, "include the test summary")
	cmd.Flags().BoolVar(&includeProblems, "problems", false, "include the problem count")
	cmd.Flags().BoolVar(&forceRefresh, "refresh", false, "bypass the cache")

	return cmd
}

func outputBuildStatus(status *teamcity.BuildStatus) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(status)
	case OutputFormatYAML:
		return StandardYAMLRenderer(status)
	default:
		return renderBuildStatusTable(status)
	}
}

func renderBuildStatusTable(status *teamcity.BuildStatus) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", strconv.FormatInt(status.ID, 10))
	_ = table.Append("Number", status.Number)
	_ = table.Append("Build Type", status.BuildTypeID)
	_ = table.Append("State", status.State)
	_ = table.Append("Status", status.Status)
	_ = table.Append("Status Text", status.StatusText)
	_ = table.Append("Branch", status.BranchName)
	_ = table.Append("Canceled", strconv.FormatBool(status.Canceled))
	_ = table.Append("Queued", formatEpochMillis(status.QueuedAt))
	_ = table.Append("Started", formatEpochMillis(status.StartedAt))
	_ = table.Append("Finished", formatEpochMillis(status.FinishedAt))
	_ = table.Append("Duration", formatDurationMillis(status.DurationMs))

	if status.Tests != nil {
		_ = table.Append("Tests", fmt.Sprintf("%d total, %d passed, %d failed, %d ignored",
			status.Tests.Count, status.Tests.Passed, status.Tests.Failed, status.Tests.Ignored))
	}

	if status.ProblemCount != nil {
		_ = table.Append("Problems", strconv.Itoa(*status.ProblemCount))
	}

	_ = table.Render()

	return nil
}
