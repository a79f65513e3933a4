package inspect

import "errors"

// Sentinel errors for inspection.
var (
	// ErrNilTree is returned when the tree, its arena, or its root is missing.
	ErrNilTree = errors.New("inspect: tree is nil or has no root")

	// ErrHandleNotFound indicates a handle that is not a vertex of the graph.
	ErrHandleNotFound = errors.New("inspect: handle not found")

	// ErrInvariant is wrapped by every violation reported by Verify.
	ErrInvariant = errors.New("inspect: invariant violated")
)
