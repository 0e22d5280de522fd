package memory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/gddgraph/pkg/adapters/memory"
	"github.com/aretw0/gddgraph/pkg/domain"
	contract "github.com/aretw0/gddgraph/pkg/ports/tests"
)

func TestInMemoryLoader_Contract(t *testing.T) {
	nodes := []domain.NodeDefinition{
		{Name: "shield", DependsOn: []string{"queue"}, Docs: []string{"docs/nodes/shield.md"}, Priority: domain.PriorityCritical},
		{Name: "queue", Docs: []string{"docs/nodes/queue.md"}},
	}

	loader, err := memory.NewFromNodes(nodes...)
	require.NoError(t, err)

	contract.GraphLoaderContractTest(t, loader, "ignored.yaml", nodes)
}

func TestInMemoryLoader_Duplicate(t *testing.T) {
	_, err := memory.NewFromNodes(domain.NodeDefinition{Name: "a"}, domain.NodeDefinition{Name: "a"})
	assert.Error(t, err)
}

func TestInMemoryDocuments_Contract(t *testing.T) {
	files := map[string]string{
		"docs/nodes/shield.md": "# Shield",
		"docs/nodes/queue.md":  "# Queue",
	}
	contract.DocumentSourceContractTest(t, memory.NewDocuments(files), files)
}

func TestInMemoryDocuments_Failure(t *testing.T) {
	docs := memory.NewDocuments(map[string]string{"a.md": "x"})
	boom := errors.New("permission denied")
	docs.Failures["a.md"] = boom

	ok, err := docs.Exists("a.md")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = docs.ReadText("a.md")
	assert.ErrorIs(t, err, boom)
}
