package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Daghis/tcapi/internal/constants"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// NewBuildTypesCommand creates the build configurations command group.
func NewBuildTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "buildtypes",
		Aliases: []string{"buildtype", "bt"},
		Short:   "Manage build configurations",
		Long:    "List and inspect TeamCity build configurations",
	}

	cmd.AddCommand(newBuildTypesListCommand())
	cmd.AddCommand(newBuildTypesGetCommand())

	return cmd
}

func newBuildTypesListCommand() *cobra.Command {
	var (
		allPages  bool
		perPage   int
		maxPages  int
		projectID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List build configurations",
		Long:  "List build configurations, optionally filtered by project",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildTypesListCommand(allPages, perPage, maxPages, projectID)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "page budget for --all (0 = unlimited)")
	cmd.Flags().StringVar(&projectID, "project", "", "filter by project id")

	return cmd
}

func runBuildTypesListCommand(allPages bool, perPage, maxPages int, projectID string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var loc *teamcity.Locator
	if projectID != "" {
		loc = teamcity.NewLocator().
			WithNested("project", teamcity.NewLocator().With("id", projectID))
	}

	var buildTypes []teamcity.BuildType

	if allPages {
		result, err := client.BuildTypes().ListAll(ctx, loc, fetchOptions(perPage, maxPages))
		if err != nil {
			return fmt.Errorf("failed to list build configurations: %w", err)
		}

		buildTypes = result.Items

		truncatedNote(result.Truncated)
	} else {
		page, err := client.BuildTypes().List(ctx, loc, teamcity.PageRequest{Count: perPage})
		if err != nil {
			return fmt.Errorf("failed to list build configurations: %w", err)
		}

		buildTypes = page.Items
	}

	return outputBuildTypes(buildTypes)
}

func outputBuildTypes(buildTypes []teamcity.BuildType) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(buildTypes)
	case OutputFormatYAML:
		return StandardYAMLRenderer(buildTypes)
	default:
		return renderBuildTypeTable(buildTypes)
	}
}

func renderBuildTypeTable(buildTypes []teamcity.BuildType) error {
	if len(buildTypes) == 0 {
		_, _ = os.Stdout.WriteString("No build configurations found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Project", "Paused")

	for _, buildType := range buildTypes {
		paused := ""
		if buildType.Paused {
			paused = "yes"
		}

		_ = table.Append(buildType.ID, buildType.Name, buildType.ProjectName, paused)
	}

	_ = table.Render()

	return nil
}

func newBuildTypesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BUILD_TYPE_ID",
		Short: "Get a build configuration",
		Long:  "Get a single build configuration by its id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			buildType, err := client.BuildTypes().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get build configuration: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(buildType)
			case OutputFormatYAML:
				return StandardYAMLRenderer(buildType)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", buildType.ID)
				_ = table.Append("Name", buildType.Name)
				_ = table.Append("Project", buildType.ProjectName)
				_ = table.Append("Description", buildType.Description)
				_ = table.Append("Web URL", buildType.WebURL)
				_ = table.Render()
			}

			return nil
		},
	}
}
