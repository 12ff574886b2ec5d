package ucs_test

import (
	"fmt"

	"github.com/katalvlaran/jumppath/gridgraph"
	"github.com/katalvlaran/jumppath/ucs"
)

// ExampleSearch compares the three cost models on the same grid:
//
//	1 1 1 1 0
//	4 0 0 0 1
//
// By distance and by value the top road wins; by jumps the bottom detour does.
func ExampleSearch() {
	grid := [][]int{
		{1, 1, 1, 1, 0},
		{4, 0, 0, 0, 1},
	}
	g, err := gridgraph.Build(grid, gridgraph.Pos{Row: 0, Col: 0}, gridgraph.Pos{Row: 0, Col: 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	byDistance, _ := ucs.ByDistance(g)
	byJumps, _ := ucs.ByJumps(g)
	byValue, _ := ucs.ByValue(g)
	fmt.Println("distance:", byDistance)
	fmt.Println("jumps:   ", byJumps)
	fmt.Println("value:   ", byValue)
	// Output:
	// distance: [(0, 0), (0, 1), (0, 2), (0, 3), (0, 4)]
	// jumps:    [(0, 0), (1, 0), (1, 4), (0, 4)]
	// value:    [(0, 0), (0, 1), (0, 2), (0, 3), (0, 4)]
}
