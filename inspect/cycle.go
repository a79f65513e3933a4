// cycle.go - circular reference detection.
//
// DetectCycles runs a depth-first search from the root with three-color
// marking. A reference to a Gray slot (one still on the recursion stack) is a
// back edge and closes a cycle; the cycle is recorded as the stack segment
// from that slot to the current one, closed by repeating the first handle.
// Cycles are canonicalized to their minimal rotation and deduplicated.
//
// Complexity:
//   - Time:   O(V + E + C·L)
//   - Memory: O(V + L_max)

package inspect

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/esfuzz/value"
)

// Visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

// DetectCycles reports whether t contains a circular reference and lists
// every distinct cycle reachable from the root, each closed as
// [h0, h1, ..., h0]. A self-reference is reported as [h, h].
func DetectCycles(t *value.Tree) (bool, [][]value.Handle, error) {
	g, err := Build(t)
	if err != nil {
		return false, nil, err
	}

	c := &cycleFinder{
		graph: g,
		state: make([]int, g.size),
		path:  make([]value.Handle, 0, g.size),
		seen:  make(map[string]struct{}),
	}
	c.visit(g.root)

	if len(c.cycles) == 0 {
		return false, nil, nil
	}
	slices.SortFunc(c.cycles, compareCycles)
	return true, c.cycles, nil
}

// cycleFinder holds the DFS state.
type cycleFinder struct {
	graph  *Graph
	state  []int
	path   []value.Handle
	seen   map[string]struct{}
	cycles [][]value.Handle
}

func (c *cycleFinder) visit(h value.Handle) {
	c.state[h] = Gray
	c.path = append(c.path, h)

	nbrs, _ := c.graph.NeighborIDs(h)
	for _, nbr := range nbrs {
		switch c.state[nbr] {
		case White:
			c.visit(nbr)
		case Gray:
			c.record(nbr)
		}
	}

	c.path = c.path[:len(c.path)-1]
	c.state[h] = Black
}

// record stores the cycle that starts at start and ends at the top of path.
func (c *cycleFinder) record(start value.Handle) {
	idx := slices.Index(c.path, start)
	seq := slices.Clone(c.path[idx:])

	canon := minimalRotation(seq)
	sig := signature(canon)
	if _, dup := c.seen[sig]; dup {
		return
	}
	c.seen[sig] = struct{}{}
	c.cycles = append(c.cycles, append(canon, canon[0]))
}

// minimalRotation rotates seq so that its smallest handle comes first.
// References are directed, so reversed orders are distinct cycles.
func minimalRotation(seq []value.Handle) []value.Handle {
	best := 0
	for i := range seq {
		if seq[i] < seq[best] {
			best = i
		}
	}
	out := make([]value.Handle, 0, len(seq)+1)
	out = append(out, seq[best:]...)
	return append(out, seq[:best]...)
}

// signature renders a cycle as a comparable key.
func signature(seq []value.Handle) string {
	b := make([]byte, 0, len(seq)*4)
	for _, h := range seq {
		b = append(b, byte(h>>24), byte(h>>16), byte(h>>8), byte(h))
	}
	return string(b)
}

// compareCycles orders cycles lexicographically by handle sequence.
func compareCycles(a, b []value.Handle) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return int(a[i] - b[i])
		}
	}
	return len(a) - len(b)
}

// Shared returns, in ascending order, the slots that are referenced more
// than once, plus the root when anything references it. These are exactly
// the values a generator handed out more than once.
func Shared(t *value.Tree) ([]value.Handle, error) {
	g, err := Build(t)
	if err != nil {
		return nil, err
	}
	var out []value.Handle
	for _, h := range g.Vertices() {
		d := g.InDegree(h)
		if d >= 2 || (h == g.root && d >= 1) {
			out = append(out, h)
		}
	}
	return out, nil
}
