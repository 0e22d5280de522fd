package gddgraph_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/gddgraph"
	"github.com/aretw0/gddgraph/internal/testutils"
	"github.com/aretw0/gddgraph/pkg/adapters/memory"
	"github.com/aretw0/gddgraph/pkg/domain"
	"github.com/aretw0/gddgraph/pkg/dsl"
)

const systemMap = `features:
  auth:
    depends_on: [database, cache]
    docs: [docs/nodes/auth.md, docs/shared.md]
    priority: critical
  database:
    docs: [docs/nodes/database.md, docs/shared.md]
  cache:
    depends_on: [database]
    docs: [docs/nodes/cache.md]
    status: planned
`

const agentsDoc = "# Node\n\n## Agentes Relevantes\n\n- Orchestrator\n- Backend Developer\n"

func projectFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"docs/system-map.yaml":   systemMap,
		"docs/nodes/auth.md":     agentsDoc,
		"docs/nodes/database.md": agentsDoc,
		"docs/nodes/cache.md":    agentsDoc,
		"docs/shared.md":         agentsDoc,
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func TestEngine_Resolve(t *testing.T) {
	eng, err := gddgraph.New("", gddgraph.WithFs(projectFs(t)))
	require.NoError(t, err)

	res, err := eng.Resolve("auth")
	require.NoError(t, err)

	assert.Equal(t, []domain.ChainLink{
		{Name: "auth", Depth: 0},
		{Name: "database", Depth: 1},
		{Name: "cache", Depth: 1},
		{Name: "database", Depth: 2},
	}, res.Chain)
	assert.Equal(t, []string{
		"docs/nodes/database.md",
		"docs/shared.md",
		"docs/nodes/cache.md",
		"docs/nodes/auth.md",
	}, res.Docs)

	_, err = eng.Resolve("billing")
	assert.ErrorIs(t, err, domain.ErrNodeNotFound)
}

func TestEngine_ValidateClean(t *testing.T) {
	eng, err := gddgraph.New("", gddgraph.WithFs(projectFs(t)))
	require.NoError(t, err)

	issues := eng.Validate()
	assert.True(t, issues.Clean(), "unexpected findings: %+v", issues)
}

func TestEngine_ValidateFindings(t *testing.T) {
	fs := projectFs(t)
	require.NoError(t, fs.Remove("docs/nodes/cache.md"))
	require.NoError(t, afero.WriteFile(fs, "docs/nodes/database.md", []byte("# Database\n"), 0o644))

	eng, err := gddgraph.New("", gddgraph.WithFs(fs))
	require.NoError(t, err)

	issues := eng.Validate()
	require.Len(t, issues.MissingDocs, 1)
	assert.Equal(t, "docs/nodes/cache.md", issues.MissingDocs[0].Doc)
	require.Len(t, issues.MissingAgentsSection, 1)
	assert.Equal(t, "database", issues.MissingAgentsSection[0].Node)
	assert.True(t, issues.HasCritical())
}

func TestEngine_CustomMapAndRoster(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "graph.yaml", []byte("features:\n  a:\n    docs: [a.md]\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "a.md", []byte("## Crew\n- Navigator\n- Orchestrator\n"), 0o644))

	eng, err := gddgraph.New("",
		gddgraph.WithFs(fs),
		gddgraph.WithMapPath("graph.yaml"),
		gddgraph.WithAgentsSection("Crew"),
		gddgraph.WithRoster("Navigator"),
	)
	require.NoError(t, err)
	assert.Equal(t, "graph.yaml", eng.MapPath())

	issues := eng.Validate()
	require.Len(t, issues.InvalidAgents, 1)
	assert.Equal(t, "Orchestrator", issues.InvalidAgents[0].Subject)
	assert.Empty(t, issues.MissingAgentsSection)
}

func TestEngine_LoadFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "docs/system-map.yaml", []byte("features: [oops"), 0o644))

	_, err := gddgraph.New("", gddgraph.WithFs(fs))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGraphSourceLoad)

	_, err = gddgraph.New("", gddgraph.WithFs(afero.NewMemMapFs()))
	assert.ErrorIs(t, err, domain.ErrGraphSourceLoad)
}

func TestEngine_RequiresPath(t *testing.T) {
	_, err := gddgraph.New("")
	assert.Error(t, err)
}

func TestEngine_InjectedCollaborators(t *testing.T) {
	b := dsl.New()
	b.Add("a").DependsOn("b")
	b.Add("b").DependsOn("a")
	loader, err := b.Build()
	require.NoError(t, err)

	var resolved []string
	eng, err := gddgraph.New("",
		gddgraph.WithLoader(loader),
		gddgraph.WithDocuments(memory.NewDocuments(nil)),
		gddgraph.WithHooks(domain.Hooks{OnResolve: func(e *domain.ResolveEvent) {
			resolved = append(resolved, e.Root)
		}}),
	)
	require.NoError(t, err)

	_, err = eng.Resolve("a")
	var cycle *domain.CircularDependencyError
	require.True(t, errors.As(err, &cycle))
	assert.Equal(t, "a", cycle.Name)

	issues := eng.Validate()
	assert.Len(t, issues.CircularDeps, 2)
	assert.Equal(t, []string{"a", "a", "b"}, resolved)
}

func TestEngine_DiagramAndReport(t *testing.T) {
	eng, err := gddgraph.New("", gddgraph.WithFs(projectFs(t)))
	require.NoError(t, err)

	diagram := eng.Diagram()
	assert.Contains(t, diagram, "auth[\"auth\"]:::critical")
	assert.Contains(t, diagram, "cache[\"cache\"]:::planned")
	assert.Contains(t, diagram, "auth --> database")

	issues := eng.Validate()
	out := eng.Report(issues, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	assert.Contains(t, out, "**Status:** HEALTHY")
	assert.Contains(t, out, "**Generated:** 2025-01-02T03:04:05Z")
	assert.Contains(t, out, "| auth | docs/nodes/auth.md | Orchestrator, Backend Developer |")

	assert.Equal(t, 3, eng.Inspect().Len())
}

func TestEngine_OSProject(t *testing.T) {
	repoPath := testutils.SetupTestProject(t, map[string]string{
		"docs/system-map.yaml": "features:\n  solo:\n    docs: [docs/solo.md]\n",
		"docs/solo.md":         agentsDoc,
	})

	eng, err := gddgraph.New(repoPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(repoPath), eng.Name)

	res, err := eng.Resolve("solo")
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/solo.md"}, res.Docs)
	assert.True(t, eng.Validate().Clean())
}

func TestEngine_WatchRequiresWatchableSource(t *testing.T) {
	eng, err := gddgraph.New("", gddgraph.WithFs(projectFs(t)))
	require.NoError(t, err)

	_, err = eng.Watch(t.Context())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "watch"))
}
