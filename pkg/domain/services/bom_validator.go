package services

import (
	"fmt"

	"github.com/avelis/bom/pkg/domain/entities"
)

// BomValidator provides validation for BOM structure integrity across
// the whole edge set. It is an offline lint: the calculation engines
// carry their own traversal-time cycle check regardless.
type BomValidator struct{}

// NewBomValidator creates a new BOM validator
func NewBomValidator() *BomValidator {
	return &BomValidator{}
}

// ValidationResult contains the results of BOM validation
type ValidationResult struct {
	HasCycles      bool
	CyclePaths     [][]entities.ComponentID
	DuplicateLines []entities.BomItem
	DanglingRefs   []entities.ComponentID
	Errors         []string
}

// Validate performs structural validation on a set of components and
// BOM lines: cycle detection, duplicate (parent, child) pairs, and
// edges referencing components that were never added.
func (v *BomValidator) Validate(componentIDs []entities.ComponentID, bomLines []entities.BomItem) *ValidationResult {
	result := &ValidationResult{
		CyclePaths:     make([][]entities.ComponentID, 0),
		DuplicateLines: make([]entities.BomItem, 0),
		DanglingRefs:   make([]entities.ComponentID, 0),
		Errors:         make([]string, 0),
	}

	adjacencyMap := v.buildAdjacencyMap(bomLines)

	cycles := v.detectCycles(adjacencyMap)
	result.HasCycles = len(cycles) > 0
	result.CyclePaths = cycles

	result.DuplicateLines = v.detectDuplicateLines(bomLines)
	result.DanglingRefs = v.detectDanglingRefs(componentIDs, bomLines)

	for _, cycle := range result.CyclePaths {
		result.Errors = append(result.Errors, fmt.Sprintf("BOM cycle detected: %v", cycle))
	}
	if len(result.DuplicateLines) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Found %d duplicate BOM lines", len(result.DuplicateLines)))
	}
	for _, id := range result.DanglingRefs {
		result.Errors = append(result.Errors, fmt.Sprintf("BOM line references unknown component: %s", id))
	}

	return result
}

// buildAdjacencyMap creates a map of parent -> children relationships
func (v *BomValidator) buildAdjacencyMap(bomLines []entities.BomItem) map[entities.ComponentID][]entities.ComponentID {
	adjacencyMap := make(map[entities.ComponentID][]entities.ComponentID)

	for _, line := range bomLines {
		children := adjacencyMap[line.ParentID]

		// Avoid duplicate children in adjacency list
		found := false
		for _, child := range children {
			if child == line.ChildID {
				found = true
				break
			}
		}

		if !found {
			adjacencyMap[line.ParentID] = append(children, line.ChildID)
		}
	}

	return adjacencyMap
}

// detectCycles uses DFS to find cycles in the BOM structure
func (v *BomValidator) detectCycles(adjacencyMap map[entities.ComponentID][]entities.ComponentID) [][]entities.ComponentID {
	visited := make(map[entities.ComponentID]bool)
	recursionStack := make(map[entities.ComponentID]bool)
	cycles := make([][]entities.ComponentID, 0)

	for parent := range adjacencyMap {
		if !visited[parent] {
			path := make([]entities.ComponentID, 0)
			v.dfsDetectCycle(parent, adjacencyMap, visited, recursionStack, path, &cycles)
		}
	}

	return cycles
}

// dfsDetectCycle performs depth-first search to detect cycles
func (v *BomValidator) dfsDetectCycle(
	current entities.ComponentID,
	adjacencyMap map[entities.ComponentID][]entities.ComponentID,
	visited map[entities.ComponentID]bool,
	recursionStack map[entities.ComponentID]bool,
	path []entities.ComponentID,
	cycles *[][]entities.ComponentID,
) {
	visited[current] = true
	recursionStack[current] = true
	path = append(path, current)

	for _, child := range adjacencyMap[current] {
		if !visited[child] {
			v.dfsDetectCycle(child, adjacencyMap, visited, recursionStack, path, cycles)
		} else if recursionStack[child] {
			// Found a back edge - extract the cycle path
			cycleStart := -1
			for i, id := range path {
				if id == child {
					cycleStart = i
					break
				}
			}

			if cycleStart != -1 {
				cycle := make([]entities.ComponentID, 0, len(path)-cycleStart+1)
				cycle = append(cycle, path[cycleStart:]...)
				cycle = append(cycle, child) // Close the cycle
				*cycles = append(*cycles, cycle)
			}
		}
	}

	recursionStack[current] = false
}

// detectDuplicateLines finds BOM lines sharing a (parent, child) pair
func (v *BomValidator) detectDuplicateLines(bomLines []entities.BomItem) []entities.BomItem {
	seen := make(map[string]entities.BomItem)
	duplicates := make([]entities.BomItem, 0)

	for _, line := range bomLines {
		key := fmt.Sprintf("%s|%s", line.ParentID, line.ChildID)

		if existingLine, exists := seen[key]; exists {
			duplicates = append(duplicates, line)
			duplicates = append(duplicates, existingLine)
		} else {
			seen[key] = line
		}
	}

	return duplicates
}

// detectDanglingRefs finds edge endpoints that are not registered components
func (v *BomValidator) detectDanglingRefs(componentIDs []entities.ComponentID, bomLines []entities.BomItem) []entities.ComponentID {
	known := make(map[entities.ComponentID]bool, len(componentIDs))
	for _, id := range componentIDs {
		known[id] = true
	}

	reported := make(map[entities.ComponentID]bool)
	dangling := make([]entities.ComponentID, 0)
	for _, line := range bomLines {
		for _, id := range []entities.ComponentID{line.ParentID, line.ChildID} {
			if !known[id] && !reported[id] {
				reported[id] = true
				dangling = append(dangling, id)
			}
		}
	}

	return dangling
}
