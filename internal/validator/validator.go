// Package validator checks graph-wide invariants of the feature graph.
package validator

import (
	"errors"
	"io"
	"log/slog"

	"github.com/aretw0/gddgraph/internal/agents"
	"github.com/aretw0/gddgraph/internal/resolver"
	"github.com/aretw0/gddgraph/pkg/domain"
	"github.com/aretw0/gddgraph/pkg/ports"
)

// Validator runs every check over the whole graph in one pass.
type Validator struct {
	resolver *resolver.Resolver
	docs     ports.DocumentSource
	parser   *agents.Parser
	logger   *slog.Logger
	hooks    domain.Hooks
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets a structured logger for per-node debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(v *Validator) {
		v.hooks = hooks
	}
}

// New creates a Validator. The graph is taken from r.
func New(r *resolver.Resolver, docs ports.DocumentSource, parser *agents.Parser, opts ...Option) *Validator {
	v := &Validator{
		resolver: r,
		docs:     docs,
		parser:   parser,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks every node, in declaration order, and returns all findings.
// Graph-content defects never produce an error; the pass always completes.
func (v *Validator) Validate() *domain.ValidationIssues {
	g := v.resolver.Graph()
	issues := domain.NewValidationIssues()

	for _, node := range g.Nodes() {
		v.checkCycles(node, issues)
		v.checkDependencies(g, node, issues)
		v.checkDocs(node, issues)
	}

	v.logger.Info("Validation finished",
		"nodes", g.Len(),
		"critical", issues.CriticalCount(),
		"warnings", issues.WarningCount(),
	)
	v.hooks.Validated(&domain.ValidateEvent{Nodes: g.Len(), Issues: issues})
	return issues
}

// checkCycles resolves node as a root. A cycle yields one finding per root,
// so a cycle of k nodes is reported k times.
func (v *Validator) checkCycles(node domain.NodeDefinition, issues *domain.ValidationIssues) {
	_, err := v.resolver.Resolve(node.Name)
	var cycle *domain.CircularDependencyError
	if errors.As(err, &cycle) {
		v.logger.Debug("Circular dependency", "root", node.Name, "node", cycle.Name)
		issues.Add(domain.CategoryCircularDeps, domain.Finding{
			Node:    node.Name,
			Subject: cycle.Name,
			Path:    cycle.Path,
		})
	}
	// NodeNotFound is reported by checkDependencies for the referencing node.
}

func (v *Validator) checkDependencies(g *domain.Graph, node domain.NodeDefinition, issues *domain.ValidationIssues) {
	for _, dep := range node.DependsOn {
		if g.Has(dep) {
			continue
		}
		v.logger.Debug("Missing dependency", "node", node.Name, "dependency", dep)
		issues.Add(domain.CategoryMissingDeps, domain.Finding{
			Node:    node.Name,
			Subject: dep,
		})
	}
}

func (v *Validator) checkDocs(node domain.NodeDefinition, issues *domain.ValidationIssues) {
	for _, doc := range node.Docs {
		text, reason := v.read(doc)
		if reason != "" {
			v.logger.Debug("Missing doc", "node", node.Name, "doc", doc, "reason", reason)
			issues.Add(domain.CategoryMissingDocs, domain.Finding{
				Node:   node.Name,
				Doc:    doc,
				Reason: reason,
			})
			continue
		}

		res := v.parser.Parse(text)
		if res.MissingSection {
			issues.Add(domain.CategoryMissingAgentsSection, domain.Finding{Node: node.Name, Doc: doc})
			continue
		}
		for _, agent := range res.Duplicates {
			issues.Add(domain.CategoryDuplicateAgents, domain.Finding{Node: node.Name, Doc: doc, Subject: agent})
		}
		for _, agent := range res.Invalid {
			issues.Add(domain.CategoryInvalidAgents, domain.Finding{Node: node.Name, Doc: doc, Subject: agent})
		}
	}
}

// read returns the document text, or a non-empty reason when it cannot be used.
func (v *Validator) read(doc string) (string, string) {
	ok, err := v.docs.Exists(doc)
	if err != nil {
		return "", err.Error()
	}
	if !ok {
		return "", "file not found"
	}
	text, err := v.docs.ReadText(doc)
	if err != nil {
		return "", err.Error()
	}
	return text, ""
}
