// Package resolver computes the transitive documentation set of a feature node.
package resolver

import (
	"github.com/aretw0/gddgraph/pkg/domain"
)

// Resolver walks the feature graph. It holds only the immutable graph, so a single
// Resolver can serve concurrent Resolve calls.
type Resolver struct {
	graph *domain.Graph
	hooks domain.Hooks
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(r *Resolver) {
		r.hooks = hooks
	}
}

// New creates a Resolver over g.
func New(g *domain.Graph, opts ...Option) *Resolver {
	r := &Resolver{graph: g}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Graph returns the graph being resolved.
func (r *Resolver) Graph() *domain.Graph {
	return r.graph
}

// frame is one entry of the explicit traversal stack.
type frame struct {
	node  domain.NodeDefinition
	depth int
	next  int // index of the next dependency to visit
}

// traversal is the per-call state. It is never shared between calls.
type traversal struct {
	graph  *domain.Graph
	active map[string]bool // in-progress nodes (on the current path)
	stack  []frame
	chain  []domain.ChainLink
	docs   []string
}

// Resolve returns the dependency chain and deduplicated documents for name.
//
// Traversal is depth-first in declared dependency order. The chain is recorded
// pre-order while documents are collected post-order, so dependencies' documents
// precede the node's own. A node repeated on the current path is a cycle; a node
// reached again through an independent path (diamond) is traversed again.
func (r *Resolver) Resolve(name string) (*domain.ResolutionResult, error) {
	res, err := r.resolve(name)
	event := &domain.ResolveEvent{Root: name, Err: err}
	if res != nil {
		event.ChainLength = len(res.Chain)
		event.DocCount = len(res.Docs)
	}
	r.hooks.Resolved(event)
	return res, err
}

func (r *Resolver) resolve(name string) (*domain.ResolutionResult, error) {
	t := &traversal{
		graph:  r.graph,
		active: make(map[string]bool),
	}

	if err := t.enter(name, 0, ""); err != nil {
		return nil, err
	}

	for len(t.stack) > 0 {
		top := &t.stack[len(t.stack)-1]
		if top.next < len(top.node.DependsOn) {
			dep := top.node.DependsOn[top.next]
			top.next++
			if err := t.enter(dep, top.depth+1, top.node.Name); err != nil {
				return nil, err
			}
			continue
		}
		t.leave()
	}

	return &domain.ResolutionResult{
		Docs:  domain.Dedupe(t.docs),
		Chain: t.chain,
	}, nil
}

// enter pushes name onto the path.
func (t *traversal) enter(name string, depth int, parent string) error {
	if t.active[name] {
		return &domain.CircularDependencyError{Name: name, Path: append(t.path(), name)}
	}
	node, ok := t.graph.Node(name)
	if !ok {
		return &domain.NodeNotFoundError{Name: name, ReferencedBy: parent}
	}
	t.active[name] = true
	t.chain = append(t.chain, domain.ChainLink{Name: name, Depth: depth})
	t.stack = append(t.stack, frame{node: node, depth: depth})
	return nil
}

// leave pops the top node once all its dependencies are done.
func (t *traversal) leave() {
	top := t.stack[len(t.stack)-1]
	t.docs = append(t.docs, top.node.Docs...)
	delete(t.active, top.node.Name)
	t.stack = t.stack[:len(t.stack)-1]
}

func (t *traversal) path() []string {
	names := make([]string, 0, len(t.stack)+1)
	for _, f := range t.stack {
		names = append(names, f.node.Name)
	}
	return names
}
