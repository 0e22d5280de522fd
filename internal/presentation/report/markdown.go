// Package report renders validation results as a markdown document.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/gddgraph/internal/agents"
	"github.com/aretw0/gddgraph/pkg/domain"
	"github.com/aretw0/gddgraph/pkg/ports"
)

// Overall statuses shown in the report header.
const (
	StatusHealthy  = "HEALTHY"
	StatusWarning  = "WARNING"
	StatusCritical = "CRITICAL"
)

// Options carries what the report needs beyond the findings themselves.
// The agents matrix is built from Graph, Docs and Parser.
type Options struct {
	Graph  *domain.Graph
	Docs   ports.DocumentSource
	Parser *agents.Parser
	// GeneratedAt is printed in the header when non-zero.
	GeneratedAt time.Time
}

// Status derives the overall status from the finding severities.
func Status(issues *domain.ValidationIssues) string {
	switch {
	case issues.HasCritical():
		return StatusCritical
	case issues.WarningCount() > 0:
		return StatusWarning
	default:
		return StatusHealthy
	}
}

// Generate renders the report. issues is only read.
func Generate(issues *domain.ValidationIssues, opts Options) string {
	if opts.Parser == nil {
		opts.Parser = agents.NewParser()
	}

	var sb strings.Builder
	sb.WriteString("# GDD Validation Report\n\n")
	if !opts.GeneratedAt.IsZero() {
		fmt.Fprintf(&sb, "**Generated:** %s\n", opts.GeneratedAt.UTC().Format(time.RFC3339))
	}
	fmt.Fprintf(&sb, "**Status:** %s\n\n", Status(issues))

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Severity | Findings |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Critical | %d |\n", issues.CriticalCount())
	fmt.Fprintf(&sb, "| Warning | %d |\n", issues.WarningCount())
	if opts.Graph != nil {
		fmt.Fprintf(&sb, "\nNodes validated: %d\n", opts.Graph.Len())
	}

	sb.WriteString("\n## Validation Results\n")
	for _, c := range domain.Categories() {
		fmt.Fprintf(&sb, "\n### %s (%s)\n\n", c.Title(), c.Severity())
		findings := issues.Findings(c)
		if len(findings) == 0 {
			sb.WriteString("All clear.\n")
			continue
		}
		for _, f := range findings {
			sb.WriteString("- " + Describe(c, f, opts.Parser.Title()) + "\n")
		}
	}

	if opts.Graph != nil && opts.Docs != nil {
		sb.WriteString("\n## Agents Matrix\n\n")
		sb.WriteString("| Node | Document | Agents |\n|---|---|---|\n")
		for _, node := range opts.Graph.Nodes() {
			doc, cell := agentsCell(node, opts.Docs, opts.Parser)
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", escapeCell(node.Name), escapeCell(doc), cell)
		}
	}

	return sb.String()
}

// Describe renders one finding as a single line. title is the agents section heading.
func Describe(c domain.Category, f domain.Finding, title string) string {
	switch c {
	case domain.CategoryCircularDeps:
		return fmt.Sprintf("`%s`: cycle closes at `%s` (%s)", f.Node, f.Subject, strings.Join(f.Path, " -> "))
	case domain.CategoryMissingDeps:
		return fmt.Sprintf("`%s` depends on undeclared node `%s`", f.Node, f.Subject)
	case domain.CategoryMissingDocs:
		return fmt.Sprintf("`%s`: `%s` (%s)", f.Node, f.Doc, f.Reason)
	case domain.CategoryMissingAgentsSection:
		return fmt.Sprintf("`%s`: `%s` has no \"%s\" section", f.Node, f.Doc, title)
	case domain.CategoryDuplicateAgents:
		return fmt.Sprintf("`%s`: `%s` lists `%s` more than once", f.Node, f.Doc, f.Subject)
	case domain.CategoryInvalidAgents:
		return fmt.Sprintf("`%s`: `%s` lists unknown agent `%s`", f.Node, f.Doc, f.Subject)
	}
	return fmt.Sprintf("`%s`", f.Node)
}

// agentsCell re-parses the first document of node.
func agentsCell(node domain.NodeDefinition, docs ports.DocumentSource, parser *agents.Parser) (string, string) {
	doc, ok := node.FirstDoc()
	if !ok {
		return "-", "_no docs_"
	}
	exists, err := docs.Exists(doc)
	if err != nil || !exists {
		return doc, "_document missing_"
	}
	text, err := docs.ReadText(doc)
	if err != nil {
		return doc, "_unreadable_"
	}
	res := parser.Parse(text)
	switch {
	case res.MissingSection:
		return doc, "_no agents section_"
	case len(res.Agents) == 0:
		return doc, "_none listed_"
	}
	return doc, escapeCell(strings.Join(domain.Dedupe(res.Agents), ", "))
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
