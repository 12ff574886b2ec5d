package astar_test

import (
	"testing"

	"github.com/katalvlaran/jumppath/astar"
	"github.com/katalvlaran/jumppath/builder"
	"github.com/katalvlaran/jumppath/gridgraph"
)

// BenchmarkAStar compares heuristic kinds on the same seeded 300×300 grid.
func BenchmarkAStar(b *testing.B) {
	const n = 300
	grid, err := builder.Random(n, n, builder.WithSeed(11), builder.WithMaxJump(6))
	if err != nil {
		b.Fatal(err)
	}
	for _, kind := range []gridgraph.HeuristicKind{gridgraph.HeuristicNone, gridgraph.HeuristicScaled, gridgraph.HeuristicManhattan} {
		g, err := gridgraph.Build(grid, gridgraph.Pos{}, gridgraph.Pos{Row: n - 1, Col: n - 1}, gridgraph.WithHeuristic(kind))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(kind.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = astar.AStar(g)
			}
		})
	}
}
