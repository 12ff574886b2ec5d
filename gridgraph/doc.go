// Package gridgraph turns a rectangular matrix of jump lengths into a
// directed graph and provides the path helpers shared by every search
// strategy of jumppath.
//
// What:
//
//   - A cell (r,c) holding jump length L links to the four cells exactly L
//     steps away along each axis: (r-L,c), (r+L,c), (r,c-L), (r,c+L).
//     Targets outside the matrix are dropped. A cell holding 0 is a dead end.
//   - Graph owns every Node in an arena keyed by Pos; an Edge names its
//     destination by Pos instead of holding a pointer to it.
//   - Reconstruct rebuilds a start→goal Path from a parent map.
//   - CostFunc values (CostDistance, CostJumps, CostValue) price a single
//     jump; Graph.PathCost sums them over a Path.
//
// Why:
//
//   - Jump puzzles: "can I reach the goal, and in how many jumps?"
//   - A small, deterministic playground to compare DFS, BFS, uniform-cost
//     search, Dijkstra and A* on the same graph.
//
// Complexity:
//
//   - Build:       O(R×C) time, O(R×C) memory (at most four edges per cell).
//   - Reconstruct: O(len(path)).
//   - Reachable:   O(R×C) time and memory.
//
// Options:
//
//   - WithHeuristic(kind): precompute Node.Heuristic for A*.
//   - WithHeuristicMatrix(h): fill Edge.Hint with h[dest.Row][dest.Col].
//
// Errors:
//
// Every construction error wraps ErrInvalidConfig:
//
//   - ErrEmptyGrid: matrix has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeJump: a cell holds a negative jump length.
//   - ErrOutOfBounds: start or goal lies outside the matrix.
//   - ErrHeuristicShape: the hint matrix does not match the grid shape.
//
// An unreachable goal is not an error: searches return a nil Path.
package gridgraph
