package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Daghis/tcapi/internal/constants"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// NewLogsCommand creates the logs command.
func NewLogsCommand() *cobra.Command {
	var (
		buildNumber string
		buildTypeID string
		tail        bool
		startLine   int
		lineCount   int
		page        int
		pageSize    int
	)

	cmd := &cobra.Command{
		Use:   "logs [BUILD_ID_OR_NUMBER]",
		Short: "Read a build log",
		Long: `Read a build's log as line chunks.

By default the first page is shown. Use --tail for the last lines, --page
to step through pages, or --start-line for an explicit cursor. A numeric
argument is an internal build id; use --number to force interpretation as a
build number, combined with --buildtype when the number is ambiguous.`,
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

			opts := &teamcity.BuildLogOptions{
				BuildRef:  ref,
				Tail:      tail,
				LineCount: lineCount,
				Page:      page,
				PageSize:  pageSize,
			}

			if cmd.Flags().Changed("start-line") {
				opts.StartLine = &startLine
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			chunk, err := client.Logs().Read(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to read build log: %w", err)
			}

			return outputLogChunk(chunk)
		},
	}

	cmd.Flags().StringVar(&buildNumber, "number", "", "build number (instead of internal id)")
	cmd.Flags().StringVar(&buildTypeID, "buildtype", "", "build configuration id, disambiguates --number")
	cmd.Flags().BoolVar(&tail, "tail", false, "show the last lines of the log")
	cmd.Flags().IntVar(&startLine, "start-line", 0, "0-based line to start from")
	cmd.Flags().IntVar(&lineCount, "lines", 0, "number of lines to show")
	cmd.Flags().IntVar(&page, "page", 0, "1-based page to show")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.DefaultLogPageSize, "lines per page")

	return cmd
}

func outputLogChunk(chunk *teamcity.LogChunk) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(chunk)
	case OutputFormatYAML:
		return StandardYAMLRenderer(chunk)
	default:
		for _, line := range chunk.Lines {
			fmt.Println(line)
		}

		if chunk.HasMore {
			if chunk.NextStartLine != nil {
				fmt.Fprintf(os.Stderr, "... %d of %d lines shown (next start line: %d)\n",
					len(chunk.Lines), chunk.TotalLines, *chunk.NextStartLine)
			} else {
				fmt.Fprintf(os.Stderr, "... %d of %d lines shown\n",
					len(chunk.Lines), chunk.TotalLines)
			}
		}

		return nil
	}
}
