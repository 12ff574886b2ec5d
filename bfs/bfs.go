package bfs

import (
	"github.com/katalvlaran/jumppath/gridgraph"
	"github.com/katalvlaran/jumppath/traverse"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph      *gridgraph.Graph
	walk       *traverse.Walker
	queue      []gridgraph.Pos
	head       int
	discovered map[gridgraph.Pos]bool
	parent     map[gridgraph.Pos]gridgraph.Pos
}

// BFS searches g from g.Start to g.Goal breadth-first.
// Returns the fewest-jumps path, or nil if the goal is unreachable.
// Returns traverse.ErrGraphNil or traverse.ErrOptionViolation for invalid
// input, and the context, budget or OnVisit error if the search is aborted.
func BFS(g *gridgraph.Graph, opts ...traverse.Option) (gridgraph.Path, error) {
	walk, err := traverse.Start(g, opts...)
	if err != nil {
		return nil, err
	}

	n := g.Len()
	w := &walker{
		graph:      g,
		walk:       walk,
		queue:      make([]gridgraph.Pos, 0, n),
		discovered: make(map[gridgraph.Pos]bool, n),
		parent:     make(map[gridgraph.Pos]gridgraph.Pos, n),
	}
	// Seed queue with start (no parent)
	w.enqueue(g.Start, g.Start)
	reached, err := w.loop()
	if err != nil {
		return nil, err
	}

	return gridgraph.Reconstruct(w.parent, g.Start, g.Goal, reached), nil
}

// enqueue marks p discovered, records its parent and appends it to the queue.
func (w *walker) enqueue(p, from gridgraph.Pos) {
	w.discovered[p] = true
	if p != w.graph.Start {
		w.parent[p] = from
	}
	w.queue = append(w.queue, p)
}

// loop processes the queue until the goal is dequeued, the queue empties,
// or the walker aborts.
func (w *walker) loop() (bool, error) {
	for w.head < len(w.queue) {
		p := w.queue[w.head]
		w.head++

		if err := w.walk.Visit(p); err != nil {
			return false, err
		}
		node := w.graph.Node(p)
		if node.IsGoal {
			return true, nil
		}
		// first time seen?
		for _, e := range node.Edges {
			if !w.discovered[e.To] {
				w.enqueue(e.To, p)
			}
		}
	}
	return false, nil
}
