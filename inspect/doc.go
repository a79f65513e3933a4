// Package inspect analyzes generated trees: it builds the reference graph
// between arena slots, measures nesting depth, finds circular and shared
// references, verifies the generator's invariants and renders trees for
// humans.
//
// What
//
//   - Build(tree): directed Graph, one vertex per slot, one edge per
//     reference (data property value or array element).
//   - Depth(tree): breadth-first levels from the root; the root is level 1.
//   - DetectCycles(tree): depth-first search with three-color marking;
//     every back edge closes a cycle, including an array holding itself.
//   - Shared(tree): slots referenced more than once, or the root when
//     anything references it.
//   - Verify(tree, cfg): every invariant the configuration promises, with
//     all violations combined into one error (go.uber.org/multierr).
//   - Format(tree): deterministic multi-line dump with <ref *N> labels and
//     [Circular *N] / [Ref *N] markers.
//
// Complexity (V = slots, E = references)
//
//   - Build, Depth, Shared, Format: O(V + E)
//   - DetectCycles: O(V + E + C·L) for C cycles of average length L
//   - Verify: O(V + E + total string length)
//
// Errors
//
//   - ErrNilTree         tree (or its arena) is nil, or the root is missing.
//   - ErrHandleNotFound  a handle is not a vertex of the graph.
//   - ErrInvariant       wrapped by every violation Verify reports.
package inspect
