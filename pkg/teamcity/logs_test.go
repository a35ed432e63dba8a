package teamcity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Daghis/tcapi/pkg/teamcity"
)

func TestSplitLogLines(t *testing.T) {
	t.Parallel()

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, teamcity.SplitLogLines(""))
	})

	t.Run("unix line endings", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"a", "b", "c"}, teamcity.SplitLogLines("a\nb\nc"))
	})

	t.Run("trailing terminator dropped", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"a", "b"}, teamcity.SplitLogLines("a\nb\n"))
	})

	t.Run("windows line endings", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"a", "b"}, teamcity.SplitLogLines("a\r\nb\r\n"))
	})

	t.Run("bare carriage returns", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"a", "b"}, teamcity.SplitLogLines("a\rb"))
	})

	t.Run("interior blank lines survive", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"a", "", "b"}, teamcity.SplitLogLines("a\n\nb\n"))
	})
}

func TestStartLineForPage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, teamcity.StartLineForPage(1, 500))
	assert.Equal(t, 500, teamcity.StartLineForPage(2, 500))
	assert.Equal(t, 1000, teamcity.StartLineForPage(3, 500))

	// Page below 1 is treated as the first page
	assert.Equal(t, 0, teamcity.StartLineForPage(0, 500))
}

func TestPageForStartLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, teamcity.PageForStartLine(0, 500))
	assert.Equal(t, 1, teamcity.PageForStartLine(499, 500))
	assert.Equal(t, 2, teamcity.PageForStartLine(500, 500))
	assert.Equal(t, 3, teamcity.PageForStartLine(1000, 500))
}

func TestPageStartLineRoundTrip(t *testing.T) {
	t.Parallel()

	for page := 1; page <= 10; page++ {
		start := teamcity.StartLineForPage(page, 250)
		assert.Equal(t, page, teamcity.PageForStartLine(start, 250))
	}
}
