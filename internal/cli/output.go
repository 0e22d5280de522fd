package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/aretw0/gddgraph/internal/presentation/report"
	"github.com/aretw0/gddgraph/internal/presentation/tui"
	"github.com/aretw0/gddgraph/pkg/domain"
)

// validationJSON is the machine-readable form of a validation pass.
type validationJSON struct {
	Status   string                   `json:"status"`
	Critical int                      `json:"critical"`
	Warnings int                      `json:"warnings"`
	Issues   *domain.ValidationIssues `json:"issues"`
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func (a *App) printResolution(root string, res *domain.ResolutionResult) {
	fmt.Fprintln(a.out, a.styles.Heading(fmt.Sprintf("Dependency chain for '%s':", root)))
	for _, link := range res.Chain {
		fmt.Fprintf(a.out, "  %s%s\n", strings.Repeat("  ", link.Depth), link.Name)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, a.styles.Heading(fmt.Sprintf("Documents (%d):", len(res.Docs))))
	for _, doc := range res.Docs {
		fmt.Fprintf(a.out, "  %s\n", doc)
	}
}

func (a *App) printIssues(issues *domain.ValidationIssues, section string) {
	for _, c := range domain.Categories() {
		findings := issues.Findings(c)
		title := fmt.Sprintf("%s (%d)", c.Title(), len(findings))
		switch {
		case len(findings) == 0:
			fmt.Fprintln(a.out, a.styles.OK("✔ "+title))
			continue
		case c.Severity() == domain.SeverityCritical:
			fmt.Fprintln(a.out, a.styles.Critical("✖ "+title))
		default:
			fmt.Fprintln(a.out, a.styles.Warning("⚠ "+title))
		}
		for _, f := range findings {
			fmt.Fprintf(a.out, "    - %s\n", report.Describe(c, f, section))
		}
	}
	fmt.Fprintln(a.out)

	switch report.Status(issues) {
	case report.StatusCritical:
		fmt.Fprintln(a.out, a.styles.Critical(fmt.Sprintf("Validation failed: %d critical, %d warnings.",
			issues.CriticalCount(), issues.WarningCount())))
	case report.StatusWarning:
		fmt.Fprintln(a.out, a.styles.Warning(fmt.Sprintf("Graph is valid with %d warnings.", issues.WarningCount())))
	default:
		fmt.Fprintln(a.out, a.styles.OK("Graph is valid! ✅"))
	}
}

// renderMarkdown renders markdown for the terminal, wrapping at its width.
func (a *App) renderMarkdown(markdown string) (string, error) {
	opts := tui.RenderOptions{Plain: a.opts.NoColor}
	if f, ok := a.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			opts.Width = width
		}
	} else {
		opts.Plain = true
	}

	render, err := tui.NewRenderer(opts)
	if err != nil {
		return "", err
	}
	return render(markdown)
}
