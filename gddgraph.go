package gddgraph

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/aretw0/gddgraph/internal/agents"
	"github.com/aretw0/gddgraph/internal/presentation/graph"
	"github.com/aretw0/gddgraph/internal/presentation/report"
	"github.com/aretw0/gddgraph/internal/resolver"
	"github.com/aretw0/gddgraph/internal/validator"
	"github.com/aretw0/gddgraph/pkg/adapters/fsdocs"
	"github.com/aretw0/gddgraph/pkg/adapters/yamlmap"
	"github.com/aretw0/gddgraph/pkg/domain"
	"github.com/aretw0/gddgraph/pkg/ports"
)

// DefaultMapPath is the graph source location relative to the project root.
const DefaultMapPath = "docs/system-map.yaml"

// Engine is the high-level entry point for the gddgraph library.
// It loads the graph once and wires the resolver, validator and generators around it.
type Engine struct {
	Name string

	mapPath   string
	fs        afero.Fs
	loader    ports.GraphLoader
	docs      ports.DocumentSource
	hooks     domain.Hooks
	logger    *slog.Logger
	section   string
	roster    []string
	graph     *domain.Graph
	parser    *agents.Parser
	resolver  *resolver.Resolver
	validator *validator.Validator
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom GraphLoader, bypassing the YAML graph source.
func WithLoader(l ports.GraphLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithDocuments injects a custom DocumentSource, bypassing the project filesystem.
func WithDocuments(d ports.DocumentSource) Option {
	return func(e *Engine) {
		e.docs = d
	}
}

// WithFs reads the project from fsys instead of the OS. Paths are relative to its root.
func WithFs(fsys afero.Fs) Option {
	return func(e *Engine) {
		e.fs = fsys
	}
}

// WithMapPath sets the graph source path, relative to the project root.
func WithMapPath(path string) Option {
	return func(e *Engine) {
		if path != "" {
			e.mapPath = path
		}
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithAgentsSection overrides the heading of the agents section.
func WithAgentsSection(title string) Option {
	return func(e *Engine) {
		e.section = title
	}
}

// WithRoster overrides the recognized agent names.
func WithRoster(names ...string) Option {
	return func(e *Engine) {
		e.roster = names
	}
}

// New initializes an Engine for the project at repoPath and loads its graph.
// If both WithLoader and WithDocuments are provided, repoPath may be empty.
// A graph source that cannot be loaded yields an error matching domain.ErrGraphSourceLoad.
func New(repoPath string, opts ...Option) (*Engine, error) {
	eng := &Engine{mapPath: DefaultMapPath}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.docs == nil || (eng.loader == nil && eng.fs == nil) {
		if err := eng.initFilesystem(repoPath); err != nil {
			return nil, err
		}
	}
	if eng.loader == nil {
		eng.loader = yamlmap.New(eng.fs)
	}
	if eng.Name == "" && repoPath != "" {
		eng.Name = filepath.Base(repoPath)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("graph", eng.Name)
	}

	g, err := eng.loader.Load(eng.mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}
	eng.graph = g
	eng.logger.Debug("Graph loaded", "map", eng.mapPath, "nodes", g.Len())

	var parserOpts []agents.Option
	if eng.section != "" {
		parserOpts = append(parserOpts, agents.WithSectionTitle(eng.section))
	}
	if len(eng.roster) > 0 {
		parserOpts = append(parserOpts, agents.WithRoster(agents.NewRoster(eng.roster...)))
	}
	eng.parser = agents.NewParser(parserOpts...)

	eng.resolver = resolver.New(g, resolver.WithHooks(eng.hooks))
	eng.validator = validator.New(eng.resolver, eng.docs, eng.parser,
		validator.WithLogger(eng.logger),
		validator.WithHooks(eng.hooks),
	)
	return eng, nil
}

// initFilesystem backs missing collaborators with the project directory.
func (e *Engine) initFilesystem(repoPath string) error {
	if e.fs != nil {
		if e.docs == nil {
			e.docs = fsdocs.New(e.fs)
		}
		return nil
	}
	if repoPath == "" {
		return fmt.Errorf("repoPath is required when no custom loader and documents are provided")
	}
	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	e.Name = filepath.Base(absPath)

	src := fsdocs.NewOS(absPath)
	e.fs = src.Fs()
	if e.docs == nil {
		e.docs = src
	}
	return nil
}

// Resolve returns the dependency chain and documents of the named node.
func (e *Engine) Resolve(name string) (*domain.ResolutionResult, error) {
	return e.resolver.Resolve(name)
}

// Validate checks the whole graph and returns every finding.
func (e *Engine) Validate() *domain.ValidationIssues {
	return e.validator.Validate()
}

// Diagram renders the graph as a Mermaid flowchart.
func (e *Engine) Diagram() string {
	return graph.GenerateMermaid(e.graph)
}

// Report renders issues as markdown. A zero generatedAt omits the timestamp.
func (e *Engine) Report(issues *domain.ValidationIssues, generatedAt time.Time) string {
	return report.Generate(issues, report.Options{
		Graph:       e.graph,
		Docs:        e.docs,
		Parser:      e.parser,
		GeneratedAt: generatedAt,
	})
}

// Inspect returns the loaded graph. The graph is immutable.
func (e *Engine) Inspect() *domain.Graph {
	return e.graph
}

// AgentsSection returns the heading that opens the agents section of node documents.
func (e *Engine) AgentsSection() string {
	return e.parser.Title()
}

// MapPath returns the graph source path the engine was loaded from.
func (e *Engine) MapPath() string {
	return e.mapPath
}

// Watch returns a channel that signals when the graph source or a document changes.
// Returns error if the document source does not support watching.
func (e *Engine) Watch(ctx context.Context) (<-chan string, error) {
	if w, ok := e.docs.(ports.Watchable); ok {
		return w.Watch(ctx)
	}
	return nil, fmt.Errorf("current document source does not support watching")
}
