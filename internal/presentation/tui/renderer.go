package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// RenderOptions controls terminal markdown rendering.
type RenderOptions struct {
	// Width wraps text at the given column. Zero keeps glamour's default.
	Width int
	// Plain disables colors, for pipes and --no-color.
	Plain bool
}

// NewRenderer returns a function that renders markdown using glamour.
// Colored output picks a light or dark theme from the terminal background.
func NewRenderer(opts RenderOptions) (func(string) (string, error), error) {
	rendererOpts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if opts.Plain {
		rendererOpts = []glamour.TermRendererOption{
			glamour.WithStandardStyle("notty"),
			glamour.WithColorProfile(termenv.Ascii),
		}
	}
	if opts.Width > 0 {
		rendererOpts = append(rendererOpts, glamour.WithWordWrap(opts.Width))
	}

	r, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
