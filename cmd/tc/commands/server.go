package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewServerCommand creates the server command group.
func NewServerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Inspect the TeamCity server",
		Long:  "Display information about the connected TeamCity server",
	}

	cmd.AddCommand(newServerInfoCommand())

	return cmd
}

func newServerInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display server information",
		Long:  "Display the server's version and build number",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			info, err := client.GetServerInfo(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get server info: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(info)
			case OutputFormatYAML:
				return StandardYAMLRenderer(info)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Version", info.Version)
				_ = table.Append("Build", info.BuildNumber)
				_ = table.Append("Started", info.StartTime)
				_ = table.Render()
			}

			return nil
		},
	}
}
