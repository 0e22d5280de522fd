package dsl

import (
	"fmt"

	"github.com/aretw0/gddgraph/pkg/adapters/memory"
	"github.com/aretw0/gddgraph/pkg/domain"
)

// Builder manages the graph construction.
// Nodes keep the order in which they were first added.
type Builder struct {
	order []*NodeBuilder
	nodes map[string]*NodeBuilder
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{
		nodes: make(map[string]*NodeBuilder),
	}
}

// Add creates a new node in the graph.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(name string) *NodeBuilder {
	if nb, ok := b.nodes[name]; ok {
		return nb
	}
	nb := &NodeBuilder{
		node: domain.NodeDefinition{
			Name: name,
		},
	}
	b.nodes[name] = nb
	b.order = append(b.order, nb)
	return nb
}

// Graph compiles the declared nodes into a domain.Graph.
func (b *Builder) Graph() (*domain.Graph, error) {
	defs := make([]domain.NodeDefinition, 0, len(b.order))
	for _, nb := range b.order {
		defs = append(defs, nb.Build())
	}
	return domain.NewGraph(defs...)
}

// MustGraph is like Graph but panics on error. Intended for tests.
func (b *Builder) MustGraph() *domain.Graph {
	g, err := b.Graph()
	if err != nil {
		panic(err)
	}
	return g
}

// Build compiles the graph into a memory loader.
func (b *Builder) Build() (*memory.Loader, error) {
	g, err := b.Graph()
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return memory.NewFromGraph(g), nil
}
