package strategy_test

import (
	"fmt"

	"github.com/katalvlaran/jumppath/gridgraph"
	"github.com/katalvlaran/jumppath/strategy"
)

// ExampleRunAll prints the jump count of every strategy on a two-road grid.
func ExampleRunAll() {
	grid := [][]int{
		{1, 1, 1, 1, 0},
		{4, 0, 0, 0, 1},
	}
	g, _ := gridgraph.Build(grid, gridgraph.Pos{}, gridgraph.Pos{Row: 0, Col: 4},
		gridgraph.WithHeuristic(gridgraph.HeuristicScaled))

	results, err := strategy.RunAll(g, strategy.All())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range results {
		fmt.Printf("%-15s %d\n", r.Name, r.Path.Jumps())
	}
	// Output:
	// dfs             3
	// ucs_by_distance 4
	// ucs_by_jumps    3
	// ucs_by_value    4
	// bfs             3
	// dijkstra        4
	// a_star          4
}
