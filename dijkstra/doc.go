// Package dijkstra provides Dijkstra's shortest-path algorithm on a jump grid,
// where the weight of an edge is its jump length.
//
// Overview:
//
//   - Dijkstra computes the least total jump length from Start to Goal and
//     returns one path achieving it.
//   - Distances computes the least total jump length from Start to every cell,
//     plus the predecessor map, without stopping at the goal.
//   - Both rely on a min-heap that always expands the next-closest node.
//
// Algorithm:
//
//   - dist[Start] = 0, dist[v] = +∞ for every other node.
//   - Pop the closest node; stale heap entries of already finalized nodes are
//     skipped (lazy decrease-key). If the node is the goal, stop: weights are
//     non-negative, so its distance is final.
//   - Relax each outgoing edge: if dist[u] + length < dist[v], update dist[v]
//     and prev[v], and push v with the improved key.
//   - Ties among equal keys go to the entry pushed first.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is finalized at most once (V extractions).
//   - Each relaxation may push one heap entry (up to E pushes).
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case heap entries under lazy decrease-key.
//
// Error handling:
//
//   - traverse.ErrGraphNil, traverse.ErrOptionViolation: invalid input.
//   - traverse.ErrBudgetExceeded, context errors, OnVisit errors: aborted search.
//
// A goal that is never reached, or that ends without a recorded predecessor,
// yields a nil Path and a nil error.
//
// Thread safety:
//
//   - The Graph is only read, so concurrent calls on one Graph are safe.
package dijkstra
