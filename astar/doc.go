// Package astar implements A* search over a jump grid, minimizing the total
// jump length of the returned path.
//
// What:
//
//   - Nodes are expanded in order of f = g + h, where g is the best known
//     total jump length from Start and h estimates the remaining length.
//   - A node is finalized when popped; stale heap entries are skipped.
//   - A neighbour's g-score is replaced only when it has none yet or the new
//     one is strictly smaller.
//
// The estimate h comes from an Estimator:
//
//   - NodeEstimate (used by AStar) reads Node.Heuristic, chosen at Build
//     time with gridgraph.WithHeuristic.
//   - EdgeHintEstimate reads Edge.Hint, filled from the matrix passed to
//     gridgraph.WithHeuristicMatrix.
//
// The result has the same total length as Dijkstra's whenever the estimate
// never overstates the remaining length and never drops by more than an
// edge's length across that edge. Every gridgraph.HeuristicKind satisfies
// both. Per-edge hints are taken as given.
//
// Complexity:
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V)
//
// An unreachable goal yields a nil Path and a nil error.
package astar
