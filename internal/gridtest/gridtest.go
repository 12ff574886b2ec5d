// Package gridtest provides fixtures and brute-force reference answers for
// the strategy tests. It is imported only from _test.go files.
package gridtest

import (
	"math"
	"testing"

	"github.com/katalvlaran/jumppath/gridgraph"
)

// Scenario is a named grid with start and goal.
type Scenario struct {
	Name        string
	Grid        [][]int
	Start, Goal gridgraph.Pos
	Reachable   bool
}

// Scenarios returns the shared fixtures:
//
//   - Single:   1×1 grid, start == goal.
//   - Ones:     3×3 grid of ones, (0,0) → (2,2).
//   - Isolated: goal cell that no jump lands on.
//   - Detour:   a cheap long route versus an expensive short one.
//   - Trap:     start jumps only into dead ends.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:      "Single",
			Grid:      [][]int{{0}},
			Start:     gridgraph.Pos{},
			Goal:      gridgraph.Pos{},
			Reachable: true,
		},
		{
			Name:      "Ones",
			Grid:      [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
			Start:     gridgraph.Pos{Row: 0, Col: 0},
			Goal:      gridgraph.Pos{Row: 2, Col: 2},
			Reachable: true,
		},
		{
			// Every cell holds 2 on a 3×3 grid: (1,1) is never a jump target.
			Name:      "Isolated",
			Grid:      [][]int{{2, 2, 2}, {2, 0, 2}, {2, 2, 2}},
			Start:     gridgraph.Pos{Row: 0, Col: 0},
			Goal:      gridgraph.Pos{Row: 1, Col: 1},
			Reachable: false,
		},
		{
			// Fewest jumps: (0,0)→(1,0)→(1,4)→(0,4), 3 jumps, length 6.
			// Shortest length: along row 0, 4 jumps, length 4, value cost 3.
			Name: "Detour",
			Grid: [][]int{
				{1, 1, 1, 1, 0},
				{4, 0, 0, 0, 1},
			},
			Start:     gridgraph.Pos{Row: 0, Col: 0},
			Goal:      gridgraph.Pos{Row: 0, Col: 4},
			Reachable: true,
		},
		{
			Name:      "Trap",
			Grid:      [][]int{{1, 0, 5}, {0, 3, 3}},
			Start:     gridgraph.Pos{Row: 0, Col: 0},
			Goal:      gridgraph.Pos{Row: 1, Col: 2},
			Reachable: false,
		},
	}
}

// Build constructs the scenario graph or fails the test.
func (s Scenario) Build(t testing.TB, opts ...gridgraph.Option) *gridgraph.Graph {
	t.Helper()
	g, err := gridgraph.Build(s.Grid, s.Start, s.Goal, opts...)
	if err != nil {
		t.Fatalf("%s: Build error: %v", s.Name, err)
	}
	return g
}

// Unreachable is returned by MinCost when the goal cannot be reached.
const Unreachable = math.MaxInt

// MinCost returns the least total cost from Start to Goal under cost using
// plain Bellman-Ford relaxation, independent of every strategy under test.
func MinCost(g *gridgraph.Graph, cost gridgraph.CostFunc) int {
	dist := map[gridgraph.Pos]int{g.Start: 0}
	positions := g.Positions()
	for round := 0; round < len(positions); round++ {
		changed := false
		for _, p := range positions {
			d, ok := dist[p]
			if !ok {
				continue
			}
			from := g.Node(p)
			for _, e := range from.Edges {
				nd := d + cost(from, e, g.Node(e.To))
				if cur, ok := dist[e.To]; !ok || nd < cur {
					dist[e.To] = nd
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	if d, ok := dist[g.Goal]; ok {
		return d
	}
	return Unreachable
}

// CheckPath fails the test unless p is a valid Start→Goal path of g.
func CheckPath(t testing.TB, g *gridgraph.Graph, p gridgraph.Path) {
	t.Helper()
	if err := g.ValidatePath(p); err != nil {
		t.Fatalf("invalid path %v: %v", p, err)
	}
}

// Lookup returns the scenario called name, or panics if there is none.
func Lookup(name string) Scenario {
	for _, s := range Scenarios() {
		if s.Name == name {
			return s
		}
	}
	panic("gridtest: unknown scenario " + name)
}
