// Package dijkstra implements Dijkstra's shortest-path algorithm on jump grids.
//
// Notes on implementation choices:
//
//   - Jump lengths are non-negative by construction (gridgraph.Build rejects
//     negative cells), so no negative-weight pre-scan is needed.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
package dijkstra

import (
	"math"

	"github.com/katalvlaran/jumppath/gridgraph"
	"github.com/katalvlaran/jumppath/internal/pqueue"
	"github.com/katalvlaran/jumppath/traverse"
)

// Unreachable is the distance reported by Distances for cells that cannot be
// reached from Start.
const Unreachable = math.MaxInt

// Dijkstra computes a least-total-length path from g.Start to g.Goal.
// Returns nil if the goal is unreachable.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *gridgraph.Graph, opts ...traverse.Option) (gridgraph.Path, error) {
	r, err := newRunner(g, true, opts...)
	if err != nil {
		return nil, err
	}
	reached, err := r.process()
	if err != nil {
		return nil, err
	}

	return gridgraph.Reconstruct(r.prev, g.Start, g.Goal, reached), nil
}

// Distances computes the least total jump length from g.Start to every cell.
//
// Returns:
//
//   - dist: map from position to minimum distance (Unreachable if unreachable).
//   - prev: prev[v] == u means a shortest path to v goes through u. Start
//     and unreachable cells have no entry.
func Distances(g *gridgraph.Graph, opts ...traverse.Option) (map[gridgraph.Pos]int, map[gridgraph.Pos]gridgraph.Pos, error) {
	r, err := newRunner(g, false, opts...)
	if err != nil {
		return nil, nil, err
	}
	if _, err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g          *gridgraph.Graph                  // The input graph; read-only within Dijkstra.
	walk       *traverse.Walker                  // Cancellation, hooks and budget.
	stopAtGoal bool                              // Stop as soon as the goal is finalized.
	dist       map[gridgraph.Pos]int             // Current best distance from Start.
	prev       map[gridgraph.Pos]gridgraph.Pos   // Predecessor on the shortest path.
	visited    map[gridgraph.Pos]bool            // Tracks if a node's distance is finalized.
	pq         *pqueue.Queue[int, gridgraph.Pos] // Min-heap for lazy priority queue.
}

// newRunner validates input and sets up initial distances: +∞ everywhere,
// 0 at Start, with Start pushed onto the heap.
func newRunner(g *gridgraph.Graph, stopAtGoal bool, opts ...traverse.Option) (*runner, error) {
	walk, err := traverse.Start(g, opts...)
	if err != nil {
		return nil, err
	}

	V := g.Len()
	r := &runner{
		g:          g,
		walk:       walk,
		stopAtGoal: stopAtGoal,
		dist:       make(map[gridgraph.Pos]int, V),
		prev:       make(map[gridgraph.Pos]gridgraph.Pos, V),
		visited:    make(map[gridgraph.Pos]bool, V),
		pq:         pqueue.New[int, gridgraph.Pos](V),
	}
	for _, p := range g.Positions() {
		r.dist[p] = Unreachable
	}
	r.dist[g.Start] = 0
	r.pq.Push(0, g.Start)

	return r, nil
}

// process is the core loop. It repeatedly extracts the node with the minimum
// distance and relaxes its outgoing edges. It reports whether the goal was
// finalized.
func (r *runner) process() (bool, error) {
	for r.pq.Len() > 0 {
		u, _, _ := r.pq.Pop()

		// Already finalized: skip stale heap entry.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		if err := r.walk.Visit(u); err != nil {
			return false, err
		}

		node := r.g.Node(u)
		if node.IsGoal && r.stopAtGoal {
			return true, nil
		}
		r.relax(node)
	}

	return r.visited[r.g.Goal], nil
}

// relax attempts to improve the distance of every neighbour of node.
// Assumes dist[node] is final.
func (r *runner) relax(node *gridgraph.Node) {
	u := node.Pos
	for _, e := range node.Edges {
		v := e.To
		newDist := r.dist[u] + e.Length

		// Strictly better only: equal distances keep the first predecessor.
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if v != r.g.Start {
			r.prev[v] = u
		}
		r.pq.Push(newDist, v)
	}
}
