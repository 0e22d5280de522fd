// Package yamlmap loads the feature graph from a system-map YAML file.
package yamlmap

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/gddgraph/pkg/domain"
)

const (
	// FeaturesKey is the top-level key holding node definitions.
	FeaturesKey = "features"
	// LegacyNodesKey is accepted when FeaturesKey is absent.
	LegacyNodesKey = "nodes"
)

// Loader implements ports.GraphLoader for YAML system maps.
type Loader struct {
	fs afero.Fs
}

// New creates a Loader reading from fsys.
func New(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys}
}

// Load reads and parses the graph source at path.
func (l *Loader) Load(path string) (*domain.Graph, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, &domain.LoadError{Path: path, Err: err}
	}
	g, err := Parse(data)
	if err != nil {
		return nil, &domain.LoadError{Path: path, Err: err}
	}
	return g, nil
}

// Parse decodes a system map document, preserving the declaration order of nodes.
func Parse(data []byte) (*domain.Graph, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty graph source")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("graph source must be a mapping (line %d)", root.Line)
	}

	features := lookupKey(root, FeaturesKey)
	if features == nil {
		features = lookupKey(root, LegacyNodesKey)
	}
	if features == nil {
		return nil, fmt.Errorf("missing top-level %q key", FeaturesKey)
	}

	defs, err := decodeFeatures(features)
	if err != nil {
		return nil, err
	}
	return domain.NewGraph(defs...)
}

func lookupKey(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func decodeFeatures(features *yaml.Node) ([]domain.NodeDefinition, error) {
	if isNull(features) {
		return nil, nil
	}
	if features.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%q must be a mapping (line %d)", FeaturesKey, features.Line)
	}

	defs := make([]domain.NodeDefinition, 0, len(features.Content)/2)
	for i := 0; i+1 < len(features.Content); i += 2 {
		key, value := features.Content[i], features.Content[i+1]
		meta, err := decodeNode(value)
		if err != nil {
			return nil, fmt.Errorf("node %q (line %d): %w", key.Value, key.Line, err)
		}
		defs = append(defs, domain.NodeDefinition{
			Name:      key.Value,
			DependsOn: meta.DependsOn,
			Docs:      meta.Docs,
			Priority:  domain.Priority(meta.Priority),
			Status:    domain.Status(meta.Status),
		})
	}
	return defs, nil
}

func decodeNode(value *yaml.Node) (NodeMetadata, error) {
	var meta NodeMetadata
	if isNull(value) {
		return meta, nil
	}

	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return meta, fmt.Errorf("node body must be a mapping: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &meta,
		TagName: "mapstructure",
	})
	if err != nil {
		return meta, err
	}
	if err := decoder.Decode(raw); err != nil {
		return meta, err
	}
	return meta, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
