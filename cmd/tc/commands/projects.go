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

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
		Long:    "List and inspect TeamCity projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var (
		allPages bool
		perPage  int
		maxPages int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List all projects on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsListCommand(allPages, perPage, maxPages)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "page budget for --all (0 = unlimited)")

	return cmd
}

func runProjectsListCommand(allPages bool, perPage, maxPages int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var projects []teamcity.Project

	if allPages {
		result, err := client.Projects().ListAll(ctx, nil, fetchOptions(perPage, maxPages))
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		projects = result.Items

		truncatedNote(result.Truncated)
	} else {
		page, err := client.Projects().List(ctx, nil, teamcity.PageRequest{Count: perPage})
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		projects = page.Items
	}

	return outputProjects(projects)
}

func outputProjects(projects []teamcity.Project) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(projects)
	case OutputFormatYAML:
		return StandardYAMLRenderer(projects)
	default:
		return renderProjectTable(projects)
	}
}

func renderProjectTable(projects []teamcity.Project) error {
	if len(projects) == 0 {
		_, _ = os.Stdout.WriteString("No projects found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Parent", "Archived")

	for _, project := range projects {
		archived := ""
		if project.Archived {
			archived = "yes"
		}

		_ = table.Append(project.ID, project.Name, project.ParentProjectID, archived)
	}

	_ = table.Render()

	return nil
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_ID",
		Short: "Get a project",
		Long:  "Get a single project by its id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			project, err := client.Projects().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(project)
			case OutputFormatYAML:
				return StandardYAMLRenderer(project)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", project.ID)
				_ = table.Append("Name", project.Name)
				_ = table.Append("Parent", project.ParentProjectID)
				_ = table.Append("Description", project.Description)
				_ = table.Append("Web URL", project.WebURL)
				_ = table.Render()
			}

			return nil
		},
	}
}
