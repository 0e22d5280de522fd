package tests

import (
	"testing"

	"github.com/aretw0/gddgraph/pkg/domain"
	"github.com/aretw0/gddgraph/pkg/ports"
)

// GraphLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.GraphLoader.
// The loader must return want (in order) when loading path.
func GraphLoaderContractTest(t *testing.T, loader ports.GraphLoader, path string, want []domain.NodeDefinition) {
	t.Helper()

	// 1. Test Load (Success)
	t.Run("Load_Success", func(t *testing.T) {
		g, err := loader.Load(path)
		if err != nil {
			t.Fatalf("unexpected error loading %s: %v", path, err)
		}
		if g.Len() != len(want) {
			t.Fatalf("expected %d nodes, got %d", len(want), g.Len())
		}
		names := g.Names()
		for i, def := range want {
			if names[i] != def.Name {
				t.Errorf("order mismatch at %d. got %q, want %q", i, names[i], def.Name)
			}
			got, ok := g.Node(def.Name)
			if !ok {
				t.Fatalf("node %s missing from graph", def.Name)
			}
			expected := def.WithDefaults()
			if got.Priority != expected.Priority || got.Status != expected.Status {
				t.Errorf("metadata mismatch for %s. got %s/%s, want %s/%s",
					def.Name, got.Priority, got.Status, expected.Priority, expected.Status)
			}
			if len(got.DependsOn) != len(def.DependsOn) || len(got.Docs) != len(def.Docs) {
				t.Errorf("shape mismatch for %s. got %v %v, want %v %v",
					def.Name, got.DependsOn, got.Docs, def.DependsOn, def.Docs)
			}
		}
	})

	// 2. Test immutability of returned definitions
	t.Run("Load_Immutable", func(t *testing.T) {
		g, err := loader.Load(path)
		if err != nil {
			t.Fatalf("unexpected error loading %s: %v", path, err)
		}
		for _, name := range g.Names() {
			n, _ := g.Node(name)
			if len(n.DependsOn) == 0 {
				continue
			}
			n.DependsOn[0] = "mutated"
			again, _ := g.Node(name)
			if again.DependsOn[0] == "mutated" {
				t.Errorf("graph node %s was mutated through a returned copy", name)
			}
		}
	})
}

// DocumentSourceContractTest verifies if an adapter complies with ports.DocumentSource.
// present maps existing document paths to their expected text.
func DocumentSourceContractTest(t *testing.T, src ports.DocumentSource, present map[string]string) {
	t.Helper()

	t.Run("Exists_And_Read", func(t *testing.T) {
		for path, expected := range present {
			ok, err := src.Exists(path)
			if err != nil {
				t.Fatalf("unexpected error checking %s: %v", path, err)
			}
			if !ok {
				t.Fatalf("expected %s to exist", path)
			}
			text, err := src.ReadText(path)
			if err != nil {
				t.Fatalf("unexpected error reading %s: %v", path, err)
			}
			if text != expected {
				t.Errorf("content mismatch for %s. got %q, want %q", path, text, expected)
			}
		}
	})

	t.Run("Missing", func(t *testing.T) {
		ok, err := src.Exists("docs/non-existent-node.md")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected missing document to not exist")
		}
		if _, err := src.ReadText("docs/non-existent-node.md"); err == nil {
			t.Error("expected error reading missing document, got nil")
		}
	})
}
