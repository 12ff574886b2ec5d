package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jumppath/astar"
	"github.com/katalvlaran/jumppath/builder"
	"github.com/katalvlaran/jumppath/dijkstra"
	"github.com/katalvlaran/jumppath/gridgraph"
	"github.com/katalvlaran/jumppath/internal/gridtest"
	"github.com/katalvlaran/jumppath/traverse"
)

var kinds = []gridgraph.HeuristicKind{
	gridgraph.HeuristicNone,
	gridgraph.HeuristicScaled,
	gridgraph.HeuristicManhattan,
}

func TestAStar_Errors(t *testing.T) {
	_, err := astar.AStar(nil)
	assert.ErrorIs(t, err, traverse.ErrGraphNil)

	g := gridtest.Lookup("Ones").Build(t)
	_, err = astar.Search(g, nil)
	assert.ErrorIs(t, err, astar.ErrNilEstimator)

	_, err = astar.AStar(g, traverse.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, traverse.ErrOptionViolation)
}

// TestAStar_Scenarios checks validity and distance optimality on every
// fixture for every heuristic kind.
func TestAStar_Scenarios(t *testing.T) {
	for _, sc := range gridtest.Scenarios() {
		for _, kind := range kinds {
			t.Run(sc.Name+"/"+kind.String(), func(t *testing.T) {
				g := sc.Build(t, gridgraph.WithHeuristic(kind))
				p, err := astar.AStar(g)
				require.NoError(t, err)
				if !sc.Reachable {
					assert.Nil(t, p)
					return
				}
				gridtest.CheckPath(t, g, p)
				cost, err := g.PathCost(p, gridgraph.CostDistance)
				require.NoError(t, err)
				assert.Equal(t, gridtest.MinCost(g, gridgraph.CostDistance), cost)
			})
		}
	}
}

func TestAStar_StartIsGoal(t *testing.T) {
	g := gridtest.Lookup("Single").Build(t, gridgraph.WithHeuristic(gridgraph.HeuristicScaled))
	p, err := astar.AStar(g)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Path{{Row: 0, Col: 0}}, p)
	assert.Equal(t, 0, p.Jumps())
}

// TestAStar_MatchesDijkstra compares total length against Dijkstra on
// seeded random grids.
func TestAStar_MatchesDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		grid, err := builder.Random(8, 6, builder.WithSeed(seed), builder.WithMaxJump(5), builder.WithDeadEndProbability(0.1))
		require.NoError(t, err)
		for _, kind := range kinds {
			g, err := gridgraph.Build(grid, gridgraph.Pos{Row: 7, Col: 0}, gridgraph.Pos{Row: 0, Col: 5}, gridgraph.WithHeuristic(kind))
			require.NoError(t, err)

			want, err := dijkstra.Dijkstra(g)
			require.NoError(t, err)
			got, err := astar.AStar(g)
			require.NoError(t, err)

			if want == nil {
				assert.Nil(t, got, "seed %d %v", seed, kind)
				continue
			}
			require.NotNil(t, got, "seed %d %v", seed, kind)
			wc, _ := g.PathCost(want, gridgraph.CostDistance)
			gc, err := g.PathCost(got, gridgraph.CostDistance)
			require.NoError(t, err)
			assert.Equal(t, wc, gc, "seed %d %v", seed, kind)
		}
	}
}

// TestAStar_ExpandsFewerNodes walks a single row of ones: with a distance
// estimate the search never turns away from the goal.
func TestAStar_ExpandsFewerNodes(t *testing.T) {
	row, err := builder.Uniform(1, 9, 1)
	require.NoError(t, err)

	expansions := func(kind gridgraph.HeuristicKind) int {
		g, err := gridgraph.Build(row, gridgraph.Pos{Col: 4}, gridgraph.Pos{Col: 8}, gridgraph.WithHeuristic(kind))
		require.NoError(t, err)
		steps := 0
		p, err := astar.AStar(g, traverse.WithOnVisit(func(_ gridgraph.Pos, step int) error {
			steps = step
			return nil
		}))
		require.NoError(t, err)
		require.Len(t, p, 5)
		return steps
	}

	assert.Equal(t, 9, expansions(gridgraph.HeuristicNone))
	assert.Equal(t, 5, expansions(gridgraph.HeuristicManhattan))
	assert.Equal(t, 5, expansions(gridgraph.HeuristicScaled))
}

func TestEdgeHintEstimate(t *testing.T) {
	sc := gridtest.Lookup("Detour")
	zero := make([][]int, len(sc.Grid))
	for i := range zero {
		zero[i] = make([]int, len(sc.Grid[i]))
	}
	g := sc.Build(t, gridgraph.WithHeuristicMatrix(zero))

	p, err := astar.Search(g, astar.EdgeHintEstimate)
	require.NoError(t, err)
	cost, err := g.PathCost(p, gridgraph.CostDistance)
	require.NoError(t, err)
	assert.Equal(t, 4, cost)

	// A large hint on (0, 1) pushes the search onto the bottom road.
	zero[0][1] = 100
	g = sc.Build(t, gridgraph.WithHeuristicMatrix(zero))
	p, err = astar.Search(g, astar.EdgeHintEstimate)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Path{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 4}, {Row: 0, Col: 4}}, p)
}
