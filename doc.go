// Package jumppath finds paths through jump grids.
//
// A jump grid is a rectangular matrix of non-negative integers. A cell
// holding L connects to the four cells exactly L steps away along each axis
// that lie inside the grid; a cell holding 0 is a dead end. Given a start and
// a goal cell, jumppath searches the resulting directed graph with one of
// several interchangeable strategies.
//
// Under the hood, everything is organized in subpackages:
//
//	gridgraph/ — graph builder, Pos/Node/Edge, Path, cost functions, heuristics
//	traverse/  — shared search options: context, OnVisit hook, expansion budget
//	dfs/       — depth-first search
//	bfs/       — breadth-first search (fewest jumps)
//	ucs/       — uniform-cost search by distance, jumps or landing value
//	dijkstra/  — Dijkstra (least total jump length) and full distance maps
//	astar/     — A* with node heuristics or per-edge hints
//	strategy/  — the closed set of strategy names and their dispatch
//	builder/   — uniform and seeded random jump matrices
//	jumpfile/  — the plain-text problem format
//	config/    — TOML configuration
//	render/    — result lines and terminal grid pictures
//
// Every strategy returns a nil Path with a nil error when the goal cannot be
// reached; errors are reserved for bad input, cancellation and budgets.
//
// Quick example:
//
//	g, _ := gridgraph.Build([][]int{{1, 1}, {1, 0}}, gridgraph.Pos{}, gridgraph.Pos{Row: 1, Col: 1})
//	p, _ := bfs.BFS(g)
//	fmt.Println(p) // [(0, 0), (1, 0), (1, 1)]
//
// The jumppath command (cmd/jumppath) reads problem files and prints one
// result line per strategy.
package jumppath
