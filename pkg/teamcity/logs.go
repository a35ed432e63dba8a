package teamcity

import (
	"strings"
)

// Log read modes reported in LogChunk.
const (
	LogModePage = "page"
	LogModeTail = "tail"
)

// LogChunk is a line-indexed slice of a build log.
type LogChunk struct {
	Lines      []string `json:"lines"                yaml:"lines"`
	StartLine  int      `json:"startLine"            yaml:"startLine"`
	TotalLines int      `json:"totalLines"           yaml:"totalLines"`

	// NextStartLine is present iff startLine + len(lines) < totalLines.
	NextStartLine *int `json:"nextStartLine,omitempty" yaml:"nextStartLine,omitempty"`

	Mode     string `json:"mode"               yaml:"mode"`
	BuildID  int64  `json:"buildId"            yaml:"buildId"`
	HasMore  bool   `json:"hasMore"            yaml:"hasMore"`
	Page     int    `json:"page,omitempty"     yaml:"page,omitempty"`
	PageSize int    `json:"pageSize,omitempty" yaml:"pageSize,omitempty"`
	NextPage *int   `json:"nextPage,omitempty" yaml:"nextPage,omitempty"`
	PrevPage *int   `json:"prevPage,omitempty" yaml:"prevPage,omitempty"`
}

// SplitLogLines normalizes all line-ending variants to "\n" and splits the
// text into lines. A trailing empty line produced by a final terminator is
// dropped so that line counts match what a human sees.
func SplitLogLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// StartLineForPage converts a 1-based page and page size to a 0-based start
// line.
func StartLineForPage(page, pageSize int) int {
	if page < 1 {
		page = 1
	}

	return (page - 1) * pageSize
}

// PageForStartLine converts a 0-based start line back to the 1-based page
// containing it. Round-trips with StartLineForPage regardless of which
// addressing scheme the caller used.
func PageForStartLine(startLine, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}

	return startLine/pageSize + 1
}
