// walk.go - breadth-first levels over the reference graph.

package inspect

import (
	"github.com/katalvlaran/esfuzz/value"
)

// queueItem pairs a handle with its level.
type queueItem struct {
	h     value.Handle
	level int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *Graph
	queue   []queueItem
	visited []bool
	levels  map[value.Handle]int
	order   []value.Handle
}

// Levels returns the BFS level of every slot reachable from the root (the
// root is level 1) together with the visit order. A slot reachable along
// several paths gets its shortest one.
// Complexity: O(V + E) time, O(V) memory.
func Levels(t *value.Tree) (map[value.Handle]int, []value.Handle, error) {
	g, err := Build(t)
	if err != nil {
		return nil, nil, err
	}
	w := &walker{
		graph:   g,
		queue:   make([]queueItem, 0, g.size),
		visited: make([]bool, g.size),
		levels:  make(map[value.Handle]int, g.size),
		order:   make([]value.Handle, 0, g.size),
	}
	w.enqueue(g.root, 1)
	w.loop()
	return w.levels, w.order, nil
}

// Depth returns the nesting depth of t: the largest BFS level. An atomic
// root has depth 1.
func Depth(t *value.Tree) (int, error) {
	levels, _, err := Levels(t)
	if err != nil {
		return 0, err
	}
	deepest := 0
	for _, l := range levels {
		deepest = max(deepest, l)
	}
	return deepest, nil
}

// enqueue marks h visited at level l and appends it to the queue.
func (w *walker) enqueue(h value.Handle, l int) {
	w.visited[h] = true
	w.levels[h] = l
	w.queue = append(w.queue, queueItem{h: h, level: l})
}

// loop processes the queue until empty.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.order = append(w.order, item.h)

		// NeighborIDs only fails for unknown handles, and item.h is known.
		nbrs, _ := w.graph.NeighborIDs(item.h)
		for _, nbr := range nbrs {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.level+1)
			}
		}
	}
}
