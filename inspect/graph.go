// graph.go - reference graph over the slots of one tree.
//
// The graph mirrors the adjacency-list layout of a directed graph: vertices
// are arena handles, edges point from a composite to each value it
// references, in definition order. Dangling references (handles outside the
// arena) are kept as edges to absent vertices so Verify can report them;
// traversals skip them.

package inspect

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/esfuzz/value"
)

// Edge is one reference from a composite slot to a nested value.
type Edge struct {
	From value.Handle
	To   value.Handle
	// Label is the property name for objects or "[i]" for array elements.
	Label string
}

// Graph is the directed reference graph of one tree.
type Graph struct {
	root     value.Handle
	size     int
	adj      [][]Edge // adjacency list indexed by handle
	inDegree []int
}

// Build constructs the reference graph of t.
// Returns ErrNilTree if t, its arena or its root is missing.
// Complexity: O(V + E).
func Build(t *value.Tree) (*Graph, error) {
	if t == nil || t.Arena == nil || !t.Arena.Contains(t.Root) {
		return nil, ErrNilTree
	}
	n := t.Arena.Len()
	g := &Graph{
		root:     t.Root,
		size:     n,
		adj:      make([][]Edge, n),
		inDegree: make([]int, n),
	}
	for i := 0; i < n; i++ {
		h := value.Handle(i)
		v, _ := t.Arena.At(h)
		g.adj[i] = outgoing(h, v)
		for _, e := range g.adj[i] {
			if g.HasVertex(e.To) {
				g.inDegree[e.To]++
			}
		}
	}
	return g, nil
}

// outgoing lists the labelled references held by the slot h.
func outgoing(h value.Handle, v *value.Value) []Edge {
	switch v.Kind {
	case value.KindObject, value.KindFunction:
		var out []Edge
		for _, p := range v.Object.Properties() {
			if p.Data != nil {
				out = append(out, Edge{From: h, To: p.Data.Value, Label: p.Name.Text()})
			}
		}
		return out
	case value.KindArray:
		if v.Array == nil {
			return nil
		}
		out := make([]Edge, 0, len(v.Array.Elements))
		for i, c := range v.Array.Elements {
			out = append(out, Edge{From: h, To: c, Label: "[" + strconv.Itoa(i) + "]"})
		}
		return out
	default:
		return nil
	}
}

// Root returns the handle of the root value.
func (g *Graph) Root() value.Handle { return g.root }

// HasVertex reports whether h is a slot of the graph.
func (g *Graph) HasVertex(h value.Handle) bool {
	return h >= 0 && int(h) < g.size
}

// Vertices returns every handle in ascending order.
func (g *Graph) Vertices() []value.Handle {
	out := make([]value.Handle, g.size)
	for i := range out {
		out[i] = value.Handle(i)
	}
	return out
}

// Edges returns every edge ordered by source handle, then definition order.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, es := range g.adj {
		out = append(out, es...)
	}
	return out
}

// Neighbors returns the edges leaving h in definition order.
func (g *Graph) Neighbors(h value.Handle) ([]Edge, error) {
	if !g.HasVertex(h) {
		return nil, fmt.Errorf("Neighbors(%d): %w", h, ErrHandleNotFound)
	}
	return slices.Clone(g.adj[h]), nil
}

// NeighborIDs returns the distinct resolvable handles referenced by h, in
// first-reference order.
func (g *Graph) NeighborIDs(h value.Handle) ([]value.Handle, error) {
	if !g.HasVertex(h) {
		return nil, fmt.Errorf("NeighborIDs(%d): %w", h, ErrHandleNotFound)
	}
	out := make([]value.Handle, 0, len(g.adj[h]))
	for _, e := range g.adj[h] {
		if g.HasVertex(e.To) && !slices.Contains(out, e.To) {
			out = append(out, e.To)
		}
	}
	return out, nil
}

// InDegree returns the number of references to h.
func (g *Graph) InDegree(h value.Handle) int {
	if !g.HasVertex(h) {
		return 0
	}
	return g.inDegree[h]
}
