package ports

import "github.com/aretw0/gddgraph/pkg/domain"

// GraphLoader defines how the engine retrieves the feature graph.
// This allows the graph source (YAML file, Memory) to be decoupled.
type GraphLoader interface {
	// Load reads and parses the graph source at path.
	// Malformed or unreadable input returns a *domain.LoadError.
	Load(path string) (*domain.Graph, error)
}
