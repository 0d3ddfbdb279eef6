package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelis/bom/pkg/domain/entities"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "bom.json", `{
		"components": [
			{"id": "A", "description": "assembly", "cost": "0"},
			{"id": "B", "description": "bracket", "cost": "2", "uom": "EA"},
			{"id": "C", "description": "cover", "cost": "3"}
		],
		"bom_items": [
			{"parent_id": "A", "child_id": "B", "quantity": "2"},
			{"parent_id": "A", "child_id": "C", "quantity": "1"}
		]
	}`)

	repo, err := Load(path)
	require.NoError(t, err)

	component, err := repo.GetComponent("B")
	require.NoError(t, err)
	assert.Equal(t, "2", component.Cost.String())
	assert.Equal(t, "EA", component.UnitOfMeasure)

	children := repo.ChildrenOf("A")
	require.Len(t, children, 2)
	assert.Equal(t, entities.ComponentID("B"), children[0].ChildID)
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "bom.csv", "parent,child,quantity,cost\nA,B,2,2\nA,C,1,3\nB,D,4,\n")

	repo, err := Load(path)
	require.NoError(t, err)

	// A was synthesized with a zero cost, B got the cost from its row.
	a, err := repo.GetComponent("A")
	require.NoError(t, err)
	assert.True(t, a.Cost.IsZero())

	b, err := repo.GetComponent("B")
	require.NoError(t, err)
	assert.Equal(t, "2", b.Cost.String())

	d, err := repo.GetComponent("D")
	require.NoError(t, err)
	assert.True(t, d.Cost.IsZero())

	children := repo.ChildrenOf("B")
	require.Len(t, children, 1)
	assert.Equal(t, "4", children[0].QtyPer.String())
}

func TestLoadErrors(t *testing.T) {
	t.Run("unknown extension", func(t *testing.T) {
		path := writeFile(t, "bom.txt", "whatever")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("bad quantity", func(t *testing.T) {
		path := writeFile(t, "bom.csv", "parent,child,quantity\nA,B,zero\n")
		_, err := Load(path)
		require.ErrorIs(t, err, entities.ErrInvalidQuantity)
	})

	t.Run("duplicate edge rejected", func(t *testing.T) {
		path := writeFile(t, "bom.csv", "parent,child,quantity\nA,B,1\nA,B,2\n")
		_, err := Load(path)
		require.ErrorIs(t, err, entities.ErrDuplicateEdge)
	})

	t.Run("bad header", func(t *testing.T) {
		path := writeFile(t, "bom.csv", "from,to,qty\nA,B,1\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
}
