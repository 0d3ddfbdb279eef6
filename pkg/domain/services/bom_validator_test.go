package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/avelis/bom/pkg/domain/entities"
)

func line(parent, child string, qty int64) entities.BomItem {
	return entities.BomItem{
		ParentID: entities.ComponentID(parent),
		ChildID:  entities.ComponentID(child),
		QtyPer:   decimal.NewFromInt(qty),
	}
}

func ids(names ...string) []entities.ComponentID {
	out := make([]entities.ComponentID, len(names))
	for i, n := range names {
		out[i] = entities.ComponentID(n)
	}
	return out
}

func TestBomValidator_CleanGraph(t *testing.T) {
	validator := NewBomValidator()

	result := validator.Validate(
		ids("A", "B", "C"),
		[]entities.BomItem{line("A", "B", 2), line("A", "C", 1)},
	)

	if result.HasCycles {
		t.Error("Expected no cycles in clean graph")
	}
	if len(result.DuplicateLines) != 0 {
		t.Errorf("Expected no duplicates, got %d", len(result.DuplicateLines))
	}
	if len(result.DanglingRefs) != 0 {
		t.Errorf("Expected no dangling references, got %v", result.DanglingRefs)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Expected no errors, got %v", result.Errors)
	}
}

func TestBomValidator_DetectsCycle(t *testing.T) {
	validator := NewBomValidator()

	result := validator.Validate(
		ids("A", "B", "C"),
		[]entities.BomItem{line("A", "B", 1), line("B", "C", 1), line("C", "A", 1)},
	)

	if !result.HasCycles {
		t.Fatal("Expected cycle to be detected")
	}
	if len(result.CyclePaths) == 0 {
		t.Fatal("Expected at least one cycle path")
	}

	cycle := result.CyclePaths[0]
	if cycle[0] != cycle[len(cycle)-1] {
		t.Errorf("Expected cycle path to close on itself, got %v", cycle)
	}
}

func TestBomValidator_DiamondIsNotCycle(t *testing.T) {
	validator := NewBomValidator()

	// A -> B -> D and A -> C -> D share D but contain no cycle.
	result := validator.Validate(
		ids("A", "B", "C", "D"),
		[]entities.BomItem{line("A", "B", 1), line("A", "C", 1), line("B", "D", 1), line("C", "D", 1)},
	)

	if result.HasCycles {
		t.Errorf("Diamond reported as cycle: %v", result.CyclePaths)
	}
}

func TestBomValidator_DetectsDuplicatesAndDangling(t *testing.T) {
	validator := NewBomValidator()

	result := validator.Validate(
		ids("A", "B"),
		[]entities.BomItem{line("A", "B", 1), line("A", "B", 3), line("A", "GHOST", 1)},
	)

	if len(result.DuplicateLines) != 2 {
		t.Errorf("Expected duplicate pair to be reported twice, got %d lines", len(result.DuplicateLines))
	}
	if len(result.DanglingRefs) != 1 || result.DanglingRefs[0] != "GHOST" {
		t.Errorf("Expected GHOST as dangling reference, got %v", result.DanglingRefs)
	}
	if len(result.Errors) == 0 {
		t.Error("Expected validation errors to be reported")
	}
}
