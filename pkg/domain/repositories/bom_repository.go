package repositories

import "github.com/avelis/bom/pkg/domain/entities"

// Repository provides access to the component graph: the set of
// components and the parent→child usage edges between them. It is the
// sole owner of graph state; the calculation engines are read-only
// consumers of one Repository snapshot.
type Repository interface {
	// AddComponent inserts a component, overwriting any prior record
	// with the same ID.
	AddComponent(component entities.Component) error

	// AddItem inserts a usage edge. A second edge for the same
	// (parent, child) pair fails with ErrDuplicateEdge. The edge's
	// child need not exist yet; queries reaching a missing component
	// fail with ErrNotFound.
	AddItem(item entities.BomItem) error

	// GetComponent returns the component for an ID, or ErrNotFound.
	GetComponent(id entities.ComponentID) (*entities.Component, error)

	// ChildrenOf returns the usage edges whose parent is id, in
	// insertion order. Empty slice if none.
	ChildrenOf(id entities.ComponentID) []entities.BomItem

	// ParentsOf returns the IDs of components that directly consume
	// id, in insertion order. Empty slice if none.
	ParentsOf(id entities.ComponentID) []entities.ComponentID

	// Components returns every registered component ID.
	Components() []entities.ComponentID

	// AllItems returns every usage edge in insertion order.
	AllItems() []entities.BomItem
}
