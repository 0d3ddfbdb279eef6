package calc

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/avelis/bom/pkg/domain/entities"
	"github.com/avelis/bom/pkg/domain/repositories"
)

// Coster computes rolled-up costs: a component's unit cost is its own
// direct cost plus, for every child, the child's unit cost times the
// quantity per unit.
type Coster struct {
	repo repositories.Repository
}

// NewCoster creates a coster over a repository snapshot.
func NewCoster(repo repositories.Repository) *Coster {
	return &Coster{repo: repo}
}

// TotalCost computes quantity * UnitCost(id).
func (c *Coster) TotalCost(id entities.ComponentID, quantity decimal.Decimal) (decimal.Decimal, error) {
	if !quantity.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: requested quantity must be positive, got %s",
			entities.ErrInvalidQuantity, quantity)
	}
	unit, err := c.UnitCost(id)
	if err != nil {
		return decimal.Zero, err
	}
	return quantity.Mul(unit), nil
}

// UnitCost computes the rolled-up cost of one unit of a component.
// A diamond-shaped graph would recompute shared subtrees many times,
// so unit costs are memoized per call; the memo is discarded when the
// call returns because the repository may mutate between calls.
func (c *Coster) UnitCost(id entities.ComponentID) (decimal.Decimal, error) {
	memo := make(map[entities.ComponentID]decimal.Decimal)
	onPath := make(map[entities.ComponentID]bool)
	return c.unitCost(id, memo, onPath)
}

func (c *Coster) unitCost(
	id entities.ComponentID,
	memo map[entities.ComponentID]decimal.Decimal,
	onPath map[entities.ComponentID]bool,
) (decimal.Decimal, error) {
	if cost, ok := memo[id]; ok {
		return cost, nil
	}
	if onPath[id] {
		return decimal.Zero, fmt.Errorf("%w: %s revisited on its own ancestry path",
			entities.ErrCycleDetected, id)
	}

	component, err := c.repo.GetComponent(id)
	if err != nil {
		return decimal.Zero, err
	}

	onPath[id] = true
	total := component.Cost
	for _, line := range c.repo.ChildrenOf(id) {
		childUnit, err := c.unitCost(line.ChildID, memo, onPath)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(childUnit.Mul(line.QtyPer))
	}
	delete(onPath, id)

	memo[id] = total
	return total, nil
}

// CostDrivers breaks a component's unit cost down by descendant: each
// driver's cost is the descendant's direct cost times its exploded
// per-unit quantity, so drivers plus the root's own direct cost sum to
// the unit cost. Sorted by cost descending, then by ID.
func (c *Coster) CostDrivers(id entities.ComponentID) ([]CostDriver, error) {
	unit, err := c.UnitCost(id)
	if err != nil {
		return nil, err
	}

	flat, err := NewExploder(c.repo).Flatten(id)
	if err != nil {
		return nil, err
	}

	hundred := decimal.NewFromInt(100)
	drivers := make([]CostDriver, 0, len(flat))
	for descendantID, qty := range flat {
		component, err := c.repo.GetComponent(descendantID)
		if err != nil {
			return nil, err
		}
		cost := component.Cost.Mul(qty)

		percentage := decimal.Zero
		if unit.IsPositive() {
			percentage = cost.Div(unit).Mul(hundred)
		}
		drivers = append(drivers, CostDriver{
			ComponentID: descendantID,
			Cost:        cost,
			Percentage:  percentage,
		})
	}

	sort.Slice(drivers, func(i, j int) bool {
		if !drivers[i].Cost.Equal(drivers[j].Cost) {
			return drivers[i].Cost.GreaterThan(drivers[j].Cost)
		}
		return drivers[i].ComponentID < drivers[j].ComponentID
	})
	return drivers, nil
}
