package calc

import (
	"github.com/shopspring/decimal"

	"github.com/avelis/bom/pkg/domain/entities"
)

// ExplosionItem is one consolidated row of an exploded BOM.
type ExplosionItem struct {
	ComponentID entities.ComponentID `json:"component_id"`
	// TotalQuantity is the quantity required across every path by
	// which the component is reached.
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	// Level is the deepest BOM level at which the component appears
	// (1 = direct child of the root).
	Level int `json:"level"`
}

// ExplosionResult is the consolidated multi-level bill for a root
// component. Items are sorted by component ID so output is stable
// regardless of traversal order; the root itself is not listed.
type ExplosionResult struct {
	RootID       entities.ComponentID `json:"root_id"`
	RequestedQty decimal.Decimal      `json:"requested_quantity"`
	Items        []ExplosionItem      `json:"items"`
	MaxDepth     int                  `json:"max_depth"`
}

// Quantities returns the result as a plain component→quantity mapping.
func (r *ExplosionResult) Quantities() map[entities.ComponentID]decimal.Decimal {
	out := make(map[entities.ComponentID]decimal.Decimal, len(r.Items))
	for _, item := range r.Items {
		out[item.ComponentID] = item.TotalQuantity
	}
	return out
}

// CostDriver reports how much one descendant contributes to the unit
// cost of the component it was computed for.
type CostDriver struct {
	ComponentID entities.ComponentID `json:"component_id"`
	// Cost is the descendant's direct cost multiplied by its exploded
	// per-unit quantity.
	Cost decimal.Decimal `json:"cost"`
	// Percentage is Cost as a share of the root's total unit cost.
	Percentage decimal.Decimal `json:"percentage"`
}
