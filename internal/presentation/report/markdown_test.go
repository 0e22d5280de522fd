package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/gddgraph/internal/agents"
	"github.com/aretw0/gddgraph/internal/presentation/report"
	"github.com/aretw0/gddgraph/pkg/adapters/memory"
	"github.com/aretw0/gddgraph/pkg/domain"
	"github.com/aretw0/gddgraph/pkg/dsl"
)

func fixture(t *testing.T) report.Options {
	t.Helper()
	b := dsl.New()
	b.Add("shield").Docs("shield.md")
	b.Add("queue").Docs("queue.md")
	b.Add("ghosted").Docs("gone.md")
	b.Add("bare")

	docs := memory.NewDocuments(map[string]string{
		"shield.md": "## Agentes Relevantes\n\n- Guardian\n- Test Engineer\n- Guardian\n",
		"queue.md":  "# Queue\n",
	})
	return report.Options{Graph: b.MustGraph(), Docs: docs, Parser: agents.NewParser()}
}

func TestStatus(t *testing.T) {
	issues := domain.NewValidationIssues()
	assert.Equal(t, report.StatusHealthy, report.Status(issues))

	issues.Add(domain.CategoryInvalidAgents, domain.Finding{Node: "a", Subject: "X"})
	assert.Equal(t, report.StatusWarning, report.Status(issues))

	issues.Add(domain.CategoryMissingDeps, domain.Finding{Node: "a", Subject: "ghost"})
	assert.Equal(t, report.StatusCritical, report.Status(issues))
}

func TestGenerate_AllClear(t *testing.T) {
	out := report.Generate(domain.NewValidationIssues(), fixture(t))

	assert.Contains(t, out, "**Status:** HEALTHY")
	assert.Contains(t, out, "| Critical | 0 |")
	assert.Contains(t, out, "| Warning | 0 |")
	assert.Equal(t, len(domain.Categories()), strings.Count(out, "All clear."))
	for _, c := range domain.Categories() {
		assert.Contains(t, out, "### "+c.Title())
	}
	assert.NotContains(t, out, "**Generated:**")
}

func TestGenerate_Findings(t *testing.T) {
	issues := domain.NewValidationIssues()
	issues.Add(domain.CategoryCircularDeps, domain.Finding{Node: "a", Subject: "a", Path: []string{"a", "b", "a"}})
	issues.Add(domain.CategoryMissingDeps, domain.Finding{Node: "a", Subject: "ghost"})
	issues.Add(domain.CategoryDuplicateAgents, domain.Finding{Node: "shield", Doc: "shield.md", Subject: "Guardian"})

	out := report.Generate(issues, fixture(t))

	assert.Contains(t, out, "**Status:** CRITICAL")
	assert.Contains(t, out, "| Critical | 2 |")
	assert.Contains(t, out, "| Warning | 1 |")
	assert.Contains(t, out, "- `a`: cycle closes at `a` (a -> b -> a)")
	assert.Contains(t, out, "- `a` depends on undeclared node `ghost`")
	assert.Contains(t, out, "- `shield`: `shield.md` lists `Guardian` more than once")
	assert.Equal(t, 3, strings.Count(out, "All clear."))

	// The aggregate must not be touched.
	assert.Len(t, issues.CircularDeps, 1)
	assert.Empty(t, issues.MissingDocs)
}

func TestGenerate_AgentsMatrix(t *testing.T) {
	out := report.Generate(domain.NewValidationIssues(), fixture(t))

	require.Contains(t, out, "## Agents Matrix")
	assert.Contains(t, out, "| shield | shield.md | Guardian, Test Engineer |")
	assert.Contains(t, out, "| queue | queue.md | _no agents section_ |")
	assert.Contains(t, out, "| ghosted | gone.md | _document missing_ |")
	assert.Contains(t, out, "| bare | - | _no docs_ |")
}

func TestGenerate_MatrixReadsDocuments(t *testing.T) {
	opts := fixture(t)
	// Findings claim shield has no section; the matrix must reflect the document instead.
	issues := domain.NewValidationIssues()
	issues.Add(domain.CategoryMissingAgentsSection, domain.Finding{Node: "shield", Doc: "shield.md"})

	out := report.Generate(issues, opts)
	assert.Contains(t, out, "| shield | shield.md | Guardian, Test Engineer |")
}

func TestGenerate_Timestamp(t *testing.T) {
	opts := fixture(t)
	opts.GeneratedAt = time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC)

	out := report.Generate(domain.NewValidationIssues(), opts)
	assert.Contains(t, out, "**Generated:** 2025-03-04T10:30:00Z")
}

func TestGenerate_WithoutGraph(t *testing.T) {
	out := report.Generate(domain.NewValidationIssues(), report.Options{})
	assert.NotContains(t, out, "Agents Matrix")
	assert.Contains(t, out, "## Summary")
}
