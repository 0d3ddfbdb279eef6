package memory

import (
	"fmt"
	"sync"

	"github.com/avelis/bom/pkg/domain/entities"
	"github.com/avelis/bom/pkg/domain/repositories"
)

// Repository provides an in-memory component graph implementation.
// Edges are stored once in a flat slice; the forward and reverse
// indices hold positions into it and are updated together under the
// same lock, so an edge parent→child appears in exactly one place in
// each index.
type Repository struct {
	mu sync.RWMutex

	components map[entities.ComponentID]entities.Component
	bomLines   []entities.BomItem

	// childIndexes maps a parent to the positions of its outgoing edges.
	childIndexes map[entities.ComponentID][]int

	// parentIndexes maps a child to the positions of its incoming edges.
	parentIndexes map[entities.ComponentID][]int

	// linePairs tracks occupied (parent, child) pairs for duplicate rejection.
	linePairs map[linePair]struct{}
}

type linePair struct {
	parent entities.ComponentID
	child  entities.ComponentID
}

// NewRepository creates an in-memory repository sized for the expected
// number of components and BOM lines.
func NewRepository(expectedComponents, expectedBOMLines int) *Repository {
	return &Repository{
		components:    make(map[entities.ComponentID]entities.Component, expectedComponents),
		bomLines:      make([]entities.BomItem, 0, expectedBOMLines),
		childIndexes:  make(map[entities.ComponentID][]int, expectedComponents),
		parentIndexes: make(map[entities.ComponentID][]int, expectedComponents),
		linePairs:     make(map[linePair]struct{}, expectedBOMLines),
	}
}

// Verify interface compliance
var _ repositories.Repository = (*Repository)(nil)

// AddComponent inserts a component, overwriting any prior record with
// the same ID.
func (r *Repository) AddComponent(component entities.Component) error {
	if string(component.ID) == "" {
		return fmt.Errorf("component ID cannot be empty")
	}
	if component.Cost.IsNegative() {
		return fmt.Errorf("%w: direct cost must be non-negative, got %s",
			entities.ErrInvalidQuantity, component.Cost)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.components[component.ID] = component
	return nil
}

// AddItem inserts a usage edge and updates both adjacency indices.
// A failed insert leaves the repository unchanged.
func (r *Repository) AddItem(item entities.BomItem) error {
	if item.ParentID == item.ChildID {
		return fmt.Errorf("%w: %s", entities.ErrSelfReference, item.ParentID)
	}
	if !item.QtyPer.IsPositive() {
		return fmt.Errorf("%w: quantity per must be positive, got %s",
			entities.ErrInvalidQuantity, item.QtyPer)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	pair := linePair{parent: item.ParentID, child: item.ChildID}
	if _, exists := r.linePairs[pair]; exists {
		return fmt.Errorf("%w: %s -> %s", entities.ErrDuplicateEdge, item.ParentID, item.ChildID)
	}

	index := len(r.bomLines)
	r.bomLines = append(r.bomLines, item)
	r.childIndexes[item.ParentID] = append(r.childIndexes[item.ParentID], index)
	r.parentIndexes[item.ChildID] = append(r.parentIndexes[item.ChildID], index)
	r.linePairs[pair] = struct{}{}
	return nil
}

// GetComponent returns the component for an ID, or ErrNotFound.
func (r *Repository) GetComponent(id entities.ComponentID) (*entities.Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	component, exists := r.components[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", entities.ErrNotFound, id)
	}
	return &component, nil
}

// ChildrenOf returns the usage edges whose parent is id, in insertion order.
func (r *Repository) ChildrenOf(id entities.ComponentID) []entities.BomItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	indexes := r.childIndexes[id]
	lines := make([]entities.BomItem, 0, len(indexes))
	for _, index := range indexes {
		lines = append(lines, r.bomLines[index])
	}
	return lines
}

// ParentsOf returns the IDs of components that directly consume id, in
// insertion order.
func (r *Repository) ParentsOf(id entities.ComponentID) []entities.ComponentID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	indexes := r.parentIndexes[id]
	parents := make([]entities.ComponentID, 0, len(indexes))
	for _, index := range indexes {
		parents = append(parents, r.bomLines[index].ParentID)
	}
	return parents
}

// Components returns every registered component ID.
func (r *Repository) Components() []entities.ComponentID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]entities.ComponentID, 0, len(r.components))
	for id := range r.components {
		ids = append(ids, id)
	}
	return ids
}

// AllItems returns every usage edge in insertion order.
func (r *Repository) AllItems() []entities.BomItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := make([]entities.BomItem, len(r.bomLines))
	copy(lines, r.bomLines)
	return lines
}
