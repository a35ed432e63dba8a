package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Daghis/tcapi/internal/constants"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// NewBuildsCommand creates the builds command group.
func NewBuildsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "builds",
		Aliases: []string{"build"},
		Short:   "Manage builds",
		Long:    "List and inspect TeamCity builds",
	}

	cmd.AddCommand(newBuildsListCommand())
	cmd.AddCommand(newBuildsGetCommand())

	return cmd
}

func newBuildsListCommand() *cobra.Command {
	var (
		allPages    bool
		perPage     int
		maxPages    int
		buildTypeID string
		state       string
		branch      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List builds",
		Long:  "List builds, optionally filtered by build configuration, state, or branch",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := teamcity.NewLocator()
			if buildTypeID != "" {
				loc.WithNested("buildType", teamcity.NewLocator().With("id", buildTypeID))
			}

			if state != "" {
				loc.With("state", state)
			}

			if branch != "" {
				loc.With("branch", branch)
			}

			if loc.IsEmpty() {
				loc = nil
			}

			return runBuildsListCommand(loc, allPages, perPage, maxPages)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "page budget for --all (0 = unlimited)")
	cmd.Flags().StringVar(&buildTypeID, "buildtype", "", "filter by build configuration id")
	cmd.Flags().StringVar(&state, "state", "", "filter by state (queued, running, finished)")
	cmd.Flags().StringVar(&branch, "branch", "", "filter by branch")

	return cmd
}

func runBuildsListCommand(loc *teamcity.Locator, allPages bool, perPage, maxPages int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var builds []teamcity.Build

	if allPages {
		result, err := client.Builds().ListAll(ctx, loc, fetchOptions(perPage, maxPages))
		if err != nil {
			return fmt.Errorf("failed to list builds: %w", err)
		}

		builds = result.Items

		truncatedNote(result.Truncated)
	} else {
		page, err := client.Builds().List(ctx, loc, teamcity.PageRequest{Count: perPage})
		if err != nil {
			return fmt.Errorf("failed to list builds: %w", err)
		}

		builds = page.Items
	}

	return outputBuilds(builds)
}

func outputBuilds(builds []teamcity.Build) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(builds)
	case OutputFormatYAML:
		return StandardYAMLRenderer(builds)
	default:
		return renderBuildTable(builds)
	}
}

func renderBuildTable(builds []teamcity.Build) error {
	if len(builds) == 0 {
		_, _ = os.Stdout.WriteString("No builds found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Number", "Build Type", "State", "Status", "Branch")

	for _, build := range builds {
		_ = table.Append(strconv.FormatInt(build.ID, 10), build.Number,
			build.BuildTypeID, build.State, build.Status, build.BranchName)
	}

	_ = table.Render()

	return nil
}

func newBuildsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BUILD_ID",
		Short: "Get a build",
		Long:  "Get a single build by its internal id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buildID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid build id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			build, err := client.Builds().Get(context.Background(), buildID)
			if err != nil {
				return fmt.Errorf("failed to get build: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(build)
			case OutputFormatYAML:
				return StandardYAMLRenderer(build)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", strconv.FormatInt(build.ID, 10))
				_ = table.Append("Number", build.Number)
				_ = table.Append("Build Type", build.BuildTypeID)
				_ = table.Append("State", build.State)
				_ = table.Append("Status", build.Status)
				_ = table.Append("Status Text", build.StatusText)
				_ = table.Append("Branch", build.BranchName)
				_ = table.Append("Web URL", build.WebURL)
				_ = table.Render()
			}

			return nil
		},
	}
}
