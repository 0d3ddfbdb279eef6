package entities

import "errors"

// Error kinds surfaced by the engine. Callers classify failures with
// errors.Is; wrapped messages carry the offending component or edge.
var (
	// ErrNotFound indicates a referenced component ID is unknown.
	ErrNotFound = errors.New("component not found")

	// ErrInvalidQuantity indicates a zero, negative, or unparseable
	// decimal for a quantity or cost field.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrSelfReference indicates an edge whose parent equals its child.
	ErrSelfReference = errors.New("component cannot consume itself")

	// ErrCycleDetected indicates a traversal revisited a component on
	// its own ancestry path.
	ErrCycleDetected = errors.New("cycle detected in BOM")

	// ErrDuplicateEdge indicates a second usage edge for the same
	// (parent, child) pair. Duplicate edges are rejected, never merged.
	ErrDuplicateEdge = errors.New("duplicate BOM line")
)
