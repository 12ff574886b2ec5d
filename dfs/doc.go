// Package dfs implements stack-based depth-first search over a jump grid.
//
// DFS answers "is the goal reachable, and along which path?" without any
// optimality guarantee in cost or jump count.
//
// Algorithm:
//
//   - Push the root. Pop a node; if it is the goal, stop.
//   - Otherwise, if it is not finalized yet, finalize it and push every
//     not-finalized neighbour in reverse edge order, so that neighbours are
//     explored in edge order (up, down, left, right).
//   - The first time a neighbour is seen, its parent is recorded; later
//     sightings never overwrite it.
//   - The path is rebuilt with gridgraph.Reconstruct.
//
// Complexity:
//
//   - Time:   O(V + E); a node may sit on the stack several times but is
//     expanded once.
//   - Memory: O(V + E) for the stack, finalized set and parent map.
//
// Options (package traverse):
//
//   - WithContext(ctx)        cancellation.
//   - WithOnVisit(fn)         called on every expansion; error aborts.
//   - WithMaxExpansions(n)    external expansion budget.
//
// Errors:
//
//   - traverse.ErrGraphNil, traverse.ErrOptionViolation, traverse.ErrBudgetExceeded,
//     the context error, or any OnVisit error.
//
// An unreachable goal yields a nil Path and a nil error.
package dfs
