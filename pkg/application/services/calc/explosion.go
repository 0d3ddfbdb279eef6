package calc

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/avelis/bom/pkg/domain/entities"
	"github.com/avelis/bom/pkg/domain/repositories"
)

// Exploder computes the consolidated multi-level bill of all
// descendant components required to build a quantity of a root.
type Exploder struct {
	repo repositories.Repository
}

// NewExploder creates an exploder over a repository snapshot.
func NewExploder(repo repositories.Repository) *Exploder {
	return &Exploder{repo: repo}
}

// Explode performs a depth-first traversal from root, carrying an
// accumulated multiplier. A component reached via several paths (a
// diamond) accumulates every contribution; a component revisited on
// its own ancestry path is a fatal ErrCycleDetected with no partial
// result.
func (e *Exploder) Explode(rootID entities.ComponentID, quantity decimal.Decimal) (*ExplosionResult, error) {
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("%w: requested quantity must be positive, got %s",
			entities.ErrInvalidQuantity, quantity)
	}
	if _, err := e.repo.GetComponent(rootID); err != nil {
		return nil, err
	}

	totals := make(map[entities.ComponentID]decimal.Decimal)
	levels := make(map[entities.ComponentID]int)
	onPath := map[entities.ComponentID]bool{rootID: true}

	if err := e.walk(rootID, quantity, 1, onPath, totals, levels); err != nil {
		return nil, err
	}

	items := make([]ExplosionItem, 0, len(totals))
	maxDepth := 0
	for id, total := range totals {
		items = append(items, ExplosionItem{
			ComponentID:   id,
			TotalQuantity: total,
			Level:         levels[id],
		})
		if levels[id] > maxDepth {
			maxDepth = levels[id]
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ComponentID < items[j].ComponentID })

	return &ExplosionResult{
		RootID:       rootID,
		RequestedQty: quantity,
		Items:        items,
		MaxDepth:     maxDepth,
	}, nil
}

func (e *Exploder) walk(
	parentID entities.ComponentID,
	multiplier decimal.Decimal,
	depth int,
	onPath map[entities.ComponentID]bool,
	totals map[entities.ComponentID]decimal.Decimal,
	levels map[entities.ComponentID]int,
) error {
	for _, line := range e.repo.ChildrenOf(parentID) {
		childID := line.ChildID
		if onPath[childID] {
			return fmt.Errorf("%w: %s -> %s", entities.ErrCycleDetected, parentID, childID)
		}
		if _, err := e.repo.GetComponent(childID); err != nil {
			return fmt.Errorf("exploding %s: %w", parentID, err)
		}

		contribution := multiplier.Mul(line.QtyPer)
		totals[childID] = totals[childID].Add(contribution)
		if depth > levels[childID] {
			levels[childID] = depth
		}

		onPath[childID] = true
		if err := e.walk(childID, contribution, depth+1, onPath, totals, levels); err != nil {
			return err
		}
		delete(onPath, childID)
	}
	return nil
}

// ExplodeSingleLevel expands only the direct children of a component,
// scaled by the requested quantity.
func (e *Exploder) ExplodeSingleLevel(rootID entities.ComponentID, quantity decimal.Decimal) ([]ExplosionItem, error) {
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("%w: requested quantity must be positive, got %s",
			entities.ErrInvalidQuantity, quantity)
	}
	if _, err := e.repo.GetComponent(rootID); err != nil {
		return nil, err
	}

	lines := e.repo.ChildrenOf(rootID)
	items := make([]ExplosionItem, 0, len(lines))
	for _, line := range lines {
		if _, err := e.repo.GetComponent(line.ChildID); err != nil {
			return nil, fmt.Errorf("exploding %s: %w", rootID, err)
		}
		items = append(items, ExplosionItem{
			ComponentID:   line.ChildID,
			TotalQuantity: quantity.Mul(line.QtyPer),
			Level:         1,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ComponentID < items[j].ComponentID })
	return items, nil
}

// Flatten returns the fully exploded per-unit quantities as a plain
// component→quantity mapping.
func (e *Exploder) Flatten(rootID entities.ComponentID) (map[entities.ComponentID]decimal.Decimal, error) {
	result, err := e.Explode(rootID, decimal.NewFromInt(1))
	if err != nil {
		return nil, err
	}
	return result.Quantities(), nil
}
