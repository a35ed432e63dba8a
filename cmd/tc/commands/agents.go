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

// NewAgentsCommand creates the agents command group.
func NewAgentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "agents",
		Aliases: []string{"agent"},
		Short:   "Manage build agents",
		Long:    "List and inspect TeamCity build agents and agent pools",
	}

	cmd.AddCommand(newAgentsListCommand())
	cmd.AddCommand(newAgentPoolsListCommand())

	return cmd
}

func newAgentsListCommand() *cobra.Command {
	var (
		allPages bool
		perPage  int
		maxPages int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List build agents",
		Long:  "List all build agents known to the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAgentsListCommand(allPages, perPage, maxPages)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "page budget for --all (0 = unlimited)")

	return cmd
}

func runAgentsListCommand(allPages bool, perPage, maxPages int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var agents []teamcity.Agent

	if allPages {
		result, err := client.Agents().ListAll(ctx, nil, fetchOptions(perPage, maxPages))
		if err != nil {
			return fmt.Errorf("failed to list agents: %w", err)
		}

		agents = result.Items

		truncatedNote(result.Truncated)
	} else {
		page, err := client.Agents().List(ctx, nil, teamcity.PageRequest{Count: perPage})
		if err != nil {
			return fmt.Errorf("failed to list agents: %w", err)
		}

		agents = page.Items
	}

	return outputAgents(agents)
}

func outputAgents(agents []teamcity.Agent) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(agents)
	case OutputFormatYAML:
		return StandardYAMLRenderer(agents)
	default:
		return renderAgentTable(agents)
	}
}

func renderAgentTable(agents []teamcity.Agent) error {
	if len(agents) == 0 {
		_, _ = os.Stdout.WriteString("No agents found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Connected", "Enabled", "Authorized")

	for _, agent := range agents {
		_ = table.Append(strconv.FormatInt(agent.ID, 10), agent.Name,
			strconv.FormatBool(agent.Connected),
			strconv.FormatBool(agent.Enabled),
			strconv.FormatBool(agent.Authorized))
	}

	_ = table.Render()

	return nil
}

func newAgentPoolsListCommand() *cobra.Command {
	var (
		allPages bool
		perPage  int
		maxPages int
	)

	cmd := &cobra.Command{
		Use:   "pools",
		Short: "List agent pools",
		Long:  "List all agent pools on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAgentPoolsListCommand(allPages, perPage, maxPages)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "page budget for --all (0 = unlimited)")

	return cmd
}

func runAgentPoolsListCommand(allPages bool, perPage, maxPages int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var pools []teamcity.AgentPool

	if allPages {
		result, err := client.AgentPools().ListAll(ctx, nil, fetchOptions(perPage, maxPages))
		if err != nil {
			return fmt.Errorf("failed to list agent pools: %w", err)
		}

		pools = result.Items

		truncatedNote(result.Truncated)
	} else {
		page, err := client.AgentPools().List(ctx, nil, teamcity.PageRequest{Count: perPage})
		if err != nil {
			return fmt.Errorf("failed to list agent pools: %w", err)
		}

		pools = page.Items
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(pools)
	case OutputFormatYAML:
		return StandardYAMLRenderer(pools)
	default:
		if len(pools) == 0 {
			_, _ = os.Stdout.WriteString("No agent pools found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Max Agents")

		for _, pool := range pools {
			maxAgents := NotAvailable
			if pool.MaxAgents != nil {
				maxAgents = strconv.Itoa(*pool.MaxAgents)
			}

			_ = table.Append(strconv.FormatInt(pool.ID, 10), pool.Name, maxAgents)
		}

		_ = table.Render()

		return nil
	}
}
