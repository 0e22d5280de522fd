// Package tui holds terminal presentation helpers.
package tui

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles colors CLI output by severity.
type Styles struct {
	out *termenv.Output
}

// NewStyles detects the color profile of w. With noColor the output is plain ASCII.
func NewStyles(w io.Writer, noColor bool) *Styles {
	if noColor {
		return &Styles{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
	}
	return &Styles{out: termenv.NewOutput(w)}
}

// Critical renders blocking problems.
func (s *Styles) Critical(text string) string {
	return s.out.String(text).Foreground(s.out.Color("#ef4444")).Bold().String()
}

// Warning renders advisory problems.
func (s *Styles) Warning(text string) string {
	return s.out.String(text).Foreground(s.out.Color("#f59e0b")).String()
}

// OK renders success lines.
func (s *Styles) OK(text string) string {
	return s.out.String(text).Foreground(s.out.Color("#22c55e")).String()
}

// Heading renders section titles.
func (s *Styles) Heading(text string) string {
	return s.out.String(text).Foreground(s.out.Color("#818cf8")).Bold().String()
}

// Faint renders secondary details.
func (s *Styles) Faint(text string) string {
	return s.out.String(text).Faint().String()
}
