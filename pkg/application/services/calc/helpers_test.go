package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/avelis/bom/pkg/domain/entities"
	"github.com/avelis/bom/pkg/infrastructure/repositories/memory"
)

func addComponent(t *testing.T, repo *memory.Repository, id string, cost string) {
	t.Helper()
	c, err := entities.NewComponent(entities.ComponentID(id), "Component "+id, decimal.RequireFromString(cost), "EA")
	require.NoError(t, err)
	require.NoError(t, repo.AddComponent(*c))
}

func addLine(t *testing.T, repo *memory.Repository, parent, child, qty string) {
	t.Helper()
	item, err := entities.NewBomItem(entities.ComponentID(parent), entities.ComponentID(child), decimal.RequireFromString(qty), 0)
	require.NoError(t, err)
	require.NoError(t, repo.AddItem(*item))
}

// rocketRepo builds the shared multi-level fixture:
//
//	ROCKET -> STAGE (qty 2) -> ENGINE (qty 9) -> TURBOPUMP (qty 1)
//	ROCKET -> FAIRING (qty 1)
//	STAGE  -> TANK (qty 2)
func rocketRepo(t *testing.T) *memory.Repository {
	t.Helper()
	repo := memory.NewRepository(16, 16)

	addComponent(t, repo, "ROCKET", "0")
	addComponent(t, repo, "STAGE", "1000")
	addComponent(t, repo, "ENGINE", "500")
	addComponent(t, repo, "TURBOPUMP", "120.5")
	addComponent(t, repo, "TANK", "300")
	addComponent(t, repo, "FAIRING", "750")

	addLine(t, repo, "ROCKET", "STAGE", "2")
	addLine(t, repo, "ROCKET", "FAIRING", "1")
	addLine(t, repo, "STAGE", "ENGINE", "9")
	addLine(t, repo, "STAGE", "TANK", "2")
	addLine(t, repo, "ENGINE", "TURBOPUMP", "1")

	return repo
}

func quantityOf(t *testing.T, result *ExplosionResult, id string) decimal.Decimal {
	t.Helper()
	for _, item := range result.Items {
		if item.ComponentID == entities.ComponentID(id) {
			return item.TotalQuantity
		}
	}
	t.Fatalf("component %s not present in explosion result", id)
	return decimal.Zero
}
