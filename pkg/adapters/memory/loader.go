package memory

import (
	"fmt"

	"github.com/aretw0/gddgraph/pkg/domain"
)

// Loader implements ports.GraphLoader using an in-memory node list.
// The path argument of Load is ignored.
type Loader struct {
	graph *domain.Graph
}

// NewFromNodes creates a new Loader from domain objects in declaration order.
func NewFromNodes(nodes ...domain.NodeDefinition) (*Loader, error) {
	g, err := domain.NewGraph(nodes...)
	if err != nil {
		return nil, fmt.Errorf("failed to build graph: %w", err)
	}
	return &Loader{graph: g}, nil
}

// NewFromGraph wraps an existing graph.
func NewFromGraph(g *domain.Graph) *Loader {
	return &Loader{graph: g}
}

// Load returns the in-memory graph.
func (l *Loader) Load(path string) (*domain.Graph, error) {
	return l.graph, nil
}
