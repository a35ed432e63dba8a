package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Daghis/tcapi/internal/constants"
	internalhttp "github.com/Daghis/tcapi/internal/http"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// LogsClient implements teamcity.LogsClient. The full log text is fetched
// once per read and served as line-indexed chunks; the server has no
// line-oriented log endpoint to delegate to.
type LogsClient struct {
	httpClient *internalhttp.Client
	builds     teamcity.BuildsClient
}

// NewLogsClient creates a new logs client.
func NewLogsClient(httpClient *internalhttp.Client, builds teamcity.BuildsClient) *LogsClient {
	return &LogsClient{httpClient: httpClient, builds: builds}
}

// Read implements teamcity.LogsClient.Read.
func (c *LogsClient) Read(ctx context.Context, opts *teamcity.BuildLogOptions) (*teamcity.LogChunk, error) {
	buildID, err := resolveBuildID(ctx, c.builds, opts.BuildRef)
	if err != nil {
		return nil, err
	}

	lines, err := c.fetchLogLines(ctx, buildID)
	if err != nil {
		return nil, err
	}

	if opts.Tail {
		return tailChunk(buildID, lines, opts.LineCount), nil
	}

	return pagedChunk(buildID, lines, opts)
}

func (c *LogsClient) fetchLogLines(ctx context.Context, buildID int64) ([]string, error) {
	query := url.Values{}
	query.Set("buildId", strconv.FormatInt(buildID, 10))
	query.Set("plain", "true")

	resp, err := c.httpClient.GetText(ctx, "/downloadBuildLog.html", query)
	if err != nil {
		return nil, fmt.Errorf("downloading log of build %d: %w", buildID, err)
	}

	return teamcity.SplitLogLines(string(resp.Body)), nil
}

func tailChunk(buildID int64, lines []string, lineCount int) *teamcity.LogChunk {
	if lineCount <= 0 {
		lineCount = constants.DefaultLogPageSize
	}

	total := len(lines)

	start := total - lineCount
	if start < 0 {
		start = 0
	}

	return &teamcity.LogChunk{
		Mode:       teamcity.LogModeTail,
		BuildID:    buildID,
		Lines:      lines[start:],
		StartLine:  start,
		TotalLines: total,
		HasMore:    start > 0,
	}
}

func pagedChunk(buildID int64, lines []string, opts *teamcity.BuildLogOptions) (*teamcity.LogChunk, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = constants.DefaultLogPageSize
	}

	lineCount := opts.LineCount
	if lineCount <= 0 {
		lineCount = pageSize
	}

	var startLine int

	switch {
	case opts.StartLine != nil:
		startLine = *opts.StartLine
		if startLine < 0 {
			return nil, teamcity.ErrStartLineNegative
		}
	case opts.Page > 0:
		startLine = teamcity.StartLineForPage(opts.Page, pageSize)
		lineCount = pageSize
	default:
		startLine = 0
	}

	total := len(lines)

	end := startLine + lineCount
	if end > total {
		end = total
	}

	chunk := &teamcity.LogChunk{
		Mode:       teamcity.LogModePage,
		BuildID:    buildID,
		StartLine:  startLine,
		TotalLines: total,
		Page:       teamcity.PageForStartLine(startLine, pageSize),
		PageSize:   pageSize,
	}

	if startLine < total {
		chunk.Lines = lines[startLine:end]
	}

	if startLine+len(chunk.Lines) < total {
		next := startLine + len(chunk.Lines)
		chunk.NextStartLine = &next
		chunk.HasMore = true

		nextPage := teamcity.PageForStartLine(next, pageSize)
		chunk.NextPage = &nextPage
	}

	if chunk.Page > 1 {
		prevPage := chunk.Page - 1
		chunk.PrevPage = &prevPage
	}

	return chunk, nil
}
