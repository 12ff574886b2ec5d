package dfs

import (
	"github.com/katalvlaran/jumppath/gridgraph"
	"github.com/katalvlaran/jumppath/traverse"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph     *gridgraph.Graph
	walk      *traverse.Walker
	stack     []gridgraph.Pos
	finalized map[gridgraph.Pos]bool
	parent    map[gridgraph.Pos]gridgraph.Pos
}

// DFS searches g from g.Start to g.Goal depth-first.
// Returns the path, or nil if the goal is unreachable.
func DFS(g *gridgraph.Graph, opts ...traverse.Option) (gridgraph.Path, error) {
	walk, err := traverse.Start(g, opts...)
	if err != nil {
		return nil, err
	}

	n := g.Len()
	w := &dfsWalker{
		graph:     g,
		walk:      walk,
		stack:     make([]gridgraph.Pos, 0, n),
		finalized: make(map[gridgraph.Pos]bool, n),
		parent:    make(map[gridgraph.Pos]gridgraph.Pos, n),
	}
	reached, err := w.run()
	if err != nil {
		return nil, err
	}

	return gridgraph.Reconstruct(w.parent, g.Start, g.Goal, reached), nil
}

// run pops until the goal is popped or the stack is empty.
func (w *dfsWalker) run() (bool, error) {
	w.stack = append(w.stack, w.graph.Start)
	for len(w.stack) > 0 {
		top := len(w.stack) - 1
		pos := w.stack[top]
		w.stack = w.stack[:top]

		// stale duplicate of an already expanded node
		if w.finalized[pos] {
			continue
		}
		if err := w.walk.Visit(pos); err != nil {
			return false, err
		}
		node := w.graph.Node(pos)
		if node.IsGoal {
			return true, nil
		}
		w.finalized[pos] = true
		w.push(node)
	}

	return false, nil
}

// push stacks the neighbours of node in reverse edge order and records the
// first-seen parent of each.
func (w *dfsWalker) push(node *gridgraph.Node) {
	for i := len(node.Edges) - 1; i >= 0; i-- {
		nbr := node.Edges[i].To
		if w.finalized[nbr] {
			continue
		}
		w.stack = append(w.stack, nbr)
		if _, seen := w.parent[nbr]; !seen && nbr != w.graph.Start {
			w.parent[nbr] = node.Pos
		}
	}
}
