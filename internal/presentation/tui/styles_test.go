package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/gddgraph/internal/presentation/tui"
)

func TestStyles_NoColor(t *testing.T) {
	s := tui.NewStyles(&bytes.Buffer{}, true)

	for _, got := range []string{
		s.Critical("broken"),
		s.Warning("careful"),
		s.OK("fine"),
		s.Heading("title"),
		s.Faint("aside"),
	} {
		assert.NotContains(t, got, "\x1b[", "plain output must not carry escape codes")
	}
	assert.Equal(t, "broken", s.Critical("broken"))
}

func TestNewRenderer_Plain(t *testing.T) {
	render, err := tui.NewRenderer(tui.RenderOptions{Plain: true, Width: 60})
	require.NoError(t, err)

	out, err := render("# Report\n\nAll clear.\n")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "Report"))
	assert.True(t, strings.Contains(out, "All clear."))
}
