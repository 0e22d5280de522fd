package domain

import (
	"fmt"
	"slices"
)

// Graph is the immutable feature graph.
// It keeps the declaration order of the graph source, which drives validation,
// diagram and report ordering.
type Graph struct {
	order []string
	nodes map[string]NodeDefinition
}

// NewGraph builds a Graph from node definitions in declaration order.
// Defaults are applied and slices are copied; duplicate or empty names are rejected.
func NewGraph(defs ...NodeDefinition) (*Graph, error) {
	g := &Graph{
		order: make([]string, 0, len(defs)),
		nodes: make(map[string]NodeDefinition, len(defs)),
	}
	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("node missing name")
		}
		if _, exists := g.nodes[def.Name]; exists {
			return nil, fmt.Errorf("duplicate node %q", def.Name)
		}
		g.order = append(g.order, def.Name)
		g.nodes[def.Name] = def.Clone().WithDefaults()
	}
	return g, nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.order)
}

// Names returns node names in declaration order.
func (g *Graph) Names() []string {
	return slices.Clone(g.order)
}

// Has reports whether name is declared.
func (g *Graph) Has(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Node returns a copy of the named node definition.
func (g *Graph) Node(name string) (NodeDefinition, bool) {
	n, ok := g.nodes[name]
	if !ok {
		return NodeDefinition{}, false
	}
	return n.Clone(), true
}

// Nodes returns copies of all node definitions in declaration order.
func (g *Graph) Nodes() []NodeDefinition {
	out := make([]NodeDefinition, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.nodes[name].Clone())
	}
	return out
}
