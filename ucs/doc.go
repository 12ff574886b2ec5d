// Package ucs implements uniform-cost search over a jump grid, parameterized
// by the price of a single jump.
//
// Three instances are provided:
//
//   - ByDistance: a jump costs its length (gridgraph.CostDistance).
//   - ByJumps:    a jump costs 1 (gridgraph.CostJumps).
//   - ByValue:    a jump costs the destination cell's value (gridgraph.CostValue).
//
// Search accepts any other gridgraph.CostFunc with non-negative results.
//
// Algorithm:
//
//   - A min-priority queue is seeded with (0, root, [root]).
//   - The cheapest entry is popped; ties go to the entry queued first.
//   - A node is finalized when popped; later entries for it are skipped.
//   - If the node is the goal, the entry's path is the answer.
//   - Otherwise every not-finalized neighbour is queued with the cumulative
//     cost and the path extended by that neighbour.
//
// Entries carry their full path, so no parent map is needed, at the price of
// O(path length) memory per queued entry.
//
// Complexity:
//
//   - Time:   O(E log E) heap operations plus path copies.
//   - Memory: O(E × L) where L is the longest queued path.
//
// An unreachable goal yields a nil Path and a nil error.
package ucs
