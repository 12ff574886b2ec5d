package astar

import (
	"errors"

	"github.com/katalvlaran/jumppath/gridgraph"
	"github.com/katalvlaran/jumppath/internal/pqueue"
	"github.com/katalvlaran/jumppath/traverse"
)

// ErrNilEstimator is returned when Search is called without an Estimator.
var ErrNilEstimator = errors.New("astar: estimator is nil")

// Estimator returns h for the destination of e, reached from `from`.
type Estimator func(g *gridgraph.Graph, from *gridgraph.Node, e gridgraph.Edge) float64

// NodeEstimate uses the destination node's precomputed Heuristic.
func NodeEstimate(g *gridgraph.Graph, _ *gridgraph.Node, e gridgraph.Edge) float64 {
	return g.Node(e.To).Heuristic
}

// EdgeHintEstimate uses the per-edge Hint taken from the heuristic matrix.
func EdgeHintEstimate(_ *gridgraph.Graph, _ *gridgraph.Node, e gridgraph.Edge) float64 {
	return float64(e.Hint)
}

// AStar runs Search with NodeEstimate.
func AStar(g *gridgraph.Graph, opts ...traverse.Option) (gridgraph.Path, error) {
	return Search(g, NodeEstimate, opts...)
}

// Search finds a least-total-length path from g.Start to g.Goal, guided by est.
// Returns nil if the goal is unreachable.
//
// A popped node is final and is never relaxed again. That is exact for
// consistent estimates such as NodeEstimate; with EdgeHintEstimate a node
// closed early through a worse route stays closed, so the result may not be
// the shortest path.
func Search(g *gridgraph.Graph, est Estimator, opts ...traverse.Option) (gridgraph.Path, error) {
	walk, err := traverse.Start(g, opts...)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, ErrNilEstimator
	}

	gScore := map[gridgraph.Pos]int{g.Start: 0}
	parent := make(map[gridgraph.Pos]gridgraph.Pos)
	finalized := make(map[gridgraph.Pos]bool, g.Len())
	open := pqueue.New[float64, gridgraph.Pos](g.Len())
	open.Push(0, g.Start)

	for open.Len() > 0 {
		u, _, _ := open.Pop()
		if finalized[u] {
			continue
		}
		finalized[u] = true
		if err := walk.Visit(u); err != nil {
			return nil, err
		}

		node := g.Node(u)
		if node.IsGoal {
			return gridgraph.Reconstruct(parent, g.Start, g.Goal, true), nil
		}
		for _, e := range node.Edges {
			v := e.To
			if finalized[v] {
				continue
			}
			tentative := gScore[u] + e.Length
			if old, seen := gScore[v]; seen && tentative >= old {
				continue
			}
			gScore[v] = tentative
			if v != g.Start {
				parent[v] = u
			}
			open.Push(float64(tentative)+est(g, node, e), v)
		}
	}

	return nil, nil
}
