package ucs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/jumppath/gridgraph"
	"github.com/katalvlaran/jumppath/internal/pqueue"
	"github.com/katalvlaran/jumppath/traverse"
)

var (
	// ErrNilCost is returned when Search is called without a cost function.
	ErrNilCost = errors.New("ucs: cost function is nil")

	// ErrNegativeCost is returned when the cost function prices a jump below zero.
	ErrNegativeCost = errors.New("ucs: negative jump cost")
)

// entry is a queued partial route ending at pos.
type entry struct {
	pos  gridgraph.Pos
	path gridgraph.Path
}

// ByDistance runs Search with gridgraph.CostDistance.
func ByDistance(g *gridgraph.Graph, opts ...traverse.Option) (gridgraph.Path, error) {
	return Search(g, gridgraph.CostDistance, opts...)
}

// ByJumps runs Search with gridgraph.CostJumps.
func ByJumps(g *gridgraph.Graph, opts ...traverse.Option) (gridgraph.Path, error) {
	return Search(g, gridgraph.CostJumps, opts...)
}

// ByValue runs Search with gridgraph.CostValue.
func ByValue(g *gridgraph.Graph, opts ...traverse.Option) (gridgraph.Path, error) {
	return Search(g, gridgraph.CostValue, opts...)
}

// Search runs uniform-cost search on g with the given jump price.
// Returns the cheapest path, or nil if the goal is unreachable.
func Search(g *gridgraph.Graph, cost gridgraph.CostFunc, opts ...traverse.Option) (gridgraph.Path, error) {
	walk, err := traverse.Start(g, opts...)
	if err != nil {
		return nil, err
	}
	if cost == nil {
		return nil, ErrNilCost
	}

	finalized := make(map[gridgraph.Pos]bool, g.Len())
	pq := pqueue.New[int, entry](g.Len())
	pq.Push(0, entry{pos: g.Start, path: gridgraph.Path{g.Start}})

	for pq.Len() > 0 {
		cur, cumulative, _ := pq.Pop()
		// stale entry: a cheaper route already finalized this node
		if finalized[cur.pos] {
			continue
		}
		finalized[cur.pos] = true
		if err := walk.Visit(cur.pos); err != nil {
			return nil, err
		}

		node := g.Node(cur.pos)
		if node.IsGoal {
			return cur.path, nil
		}
		for _, e := range node.Edges {
			if finalized[e.To] {
				continue
			}
			to := g.Node(e.To)
			step := cost(node, e, to)
			if step < 0 {
				return nil, fmt.Errorf("%w: %v→%v costs %d", ErrNegativeCost, cur.pos, e.To, step)
			}
			next := make(gridgraph.Path, len(cur.path)+1)
			copy(next, cur.path)
			next[len(cur.path)] = e.To
			pq.Push(cumulative+step, entry{pos: e.To, path: next})
		}
	}

	return nil, nil
}
