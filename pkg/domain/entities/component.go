package entities

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ComponentID represents a unique component identifier
type ComponentID string

// Component represents a part or assembly in the component graph.
// Cost is the direct unit cost attributable to the component itself,
// exclusive of its children.
type Component struct {
	ID            ComponentID
	Description   string
	Cost          decimal.Decimal
	UnitOfMeasure string
}

// NewComponent creates a validated Component
func NewComponent(id ComponentID, description string, cost decimal.Decimal, uom string) (*Component, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("component ID cannot be empty")
	}
	if cost.IsNegative() {
		return nil, fmt.Errorf("%w: direct cost must be non-negative, got %s", ErrInvalidQuantity, cost)
	}
	if uom == "" {
		uom = "EA"
	}

	return &Component{
		ID:            id,
		Description:   description,
		Cost:          cost,
		UnitOfMeasure: uom,
	}, nil
}

// BomItem represents a single usage edge in a Bill of Materials:
// QtyPer units of the child are consumed to build one unit of the parent.
type BomItem struct {
	ID       uuid.UUID
	ParentID ComponentID
	ChildID  ComponentID
	QtyPer   decimal.Decimal
	Sequence int
}

// NewBomItem creates a validated BomItem
func NewBomItem(parentID, childID ComponentID, qtyPer decimal.Decimal, sequence int) (*BomItem, error) {
	if string(parentID) == "" {
		return nil, fmt.Errorf("parent component ID cannot be empty")
	}
	if string(childID) == "" {
		return nil, fmt.Errorf("child component ID cannot be empty")
	}
	if parentID == childID {
		return nil, fmt.Errorf("%w: %s", ErrSelfReference, parentID)
	}
	if !qtyPer.IsPositive() {
		return nil, fmt.Errorf("%w: quantity per must be positive, got %s", ErrInvalidQuantity, qtyPer)
	}
	if sequence <= 0 {
		sequence = 10
	}

	return &BomItem{
		ID:       uuid.New(),
		ParentID: parentID,
		ChildID:  childID,
		QtyPer:   qtyPer,
		Sequence: sequence,
	}, nil
}
