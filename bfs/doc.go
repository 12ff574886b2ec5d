// Package bfs implements breadth-first search over a jump grid.
//
// BFS explores nodes in order of increasing jump count from the start, so the
// path it returns has the fewest jumps among all start→goal paths. Edge
// lengths are ignored.
//
// Algorithm:
//
//   - Mark the root discovered and enqueue it.
//   - Dequeue a node; if it is the goal, stop.
//   - Otherwise enqueue every undiscovered neighbour, marking it discovered
//     and recording the current node as its parent. Parents are never
//     overwritten.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for the queue, discovered set and parent map.
//
// Options (package traverse): WithContext, WithOnVisit, WithMaxExpansions.
//
// An unreachable goal yields a nil Path and a nil error.
package bfs
