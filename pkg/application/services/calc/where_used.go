package calc

import (
	"sort"

	"github.com/avelis/bom/pkg/domain/entities"
	"github.com/avelis/bom/pkg/domain/repositories"
)

// WhereUsedAnalyzer answers which components consume a given component.
type WhereUsedAnalyzer struct {
	repo repositories.Repository
}

// NewWhereUsedAnalyzer creates an analyzer over a repository snapshot.
func NewWhereUsedAnalyzer(repo repositories.Repository) *WhereUsedAnalyzer {
	return &WhereUsedAnalyzer{repo: repo}
}

// Direct returns the immediate parents of a component, sorted by ID.
// A component with no parents yields an empty slice; an unknown ID
// fails with ErrNotFound.
func (w *WhereUsedAnalyzer) Direct(id entities.ComponentID) ([]entities.ComponentID, error) {
	if _, err := w.repo.GetComponent(id); err != nil {
		return nil, err
	}

	parents := w.repo.ParentsOf(id)
	sorted := make([]entities.ComponentID, len(parents))
	copy(sorted, parents)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted, nil
}

// Transitive returns every ancestor of a component at any depth,
// sorted by ID. The upward walk tracks visited components, so cyclic
// edge data terminates instead of looping.
func (w *WhereUsedAnalyzer) Transitive(id entities.ComponentID) ([]entities.ComponentID, error) {
	if _, err := w.repo.GetComponent(id); err != nil {
		return nil, err
	}

	visited := map[entities.ComponentID]bool{id: true}
	queue := []entities.ComponentID{id}
	ancestors := make([]entities.ComponentID, 0)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, parent := range w.repo.ParentsOf(current) {
			if visited[parent] {
				continue
			}
			visited[parent] = true
			ancestors = append(ancestors, parent)
			queue = append(queue, parent)
		}
	}

	sort.Slice(ancestors, func(i, j int) bool { return ancestors[i] < ancestors[j] })
	return ancestors, nil
}

// RootAssemblies returns only the top-level assemblies (ancestors that
// are not themselves consumed by anything), sorted by ID. Empty for a
// component used nowhere.
func (w *WhereUsedAnalyzer) RootAssemblies(id entities.ComponentID) ([]entities.ComponentID, error) {
	ancestors, err := w.Transitive(id)
	if err != nil {
		return nil, err
	}

	roots := make([]entities.ComponentID, 0, len(ancestors))
	for _, ancestor := range ancestors {
		if len(w.repo.ParentsOf(ancestor)) == 0 {
			roots = append(roots, ancestor)
		}
	}
	return roots, nil
}
