package strategy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jumppath/builder"
	"github.com/katalvlaran/jumppath/gridgraph"
	"github.com/katalvlaran/jumppath/internal/gridtest"
	"github.com/katalvlaran/jumppath/strategy"
	"github.com/katalvlaran/jumppath/traverse"
)

func TestParse(t *testing.T) {
	for _, n := range strategy.All() {
		got, err := strategy.Parse(string(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}

	got, err := strategy.Parse(" UCS-By-Jumps ")
	require.NoError(t, err)
	assert.Equal(t, strategy.UCSByJumps, got)

	_, err = strategy.Parse("greedy")
	assert.ErrorIs(t, err, strategy.ErrUnknownStrategy)
	assert.ErrorIs(t, err, gridgraph.ErrInvalidConfig)
}

func TestParseAll(t *testing.T) {
	names, err := strategy.ParseAll(nil)
	require.NoError(t, err)
	assert.Equal(t, strategy.All(), names)

	names, err = strategy.ParseAll([]string{"bfs", "dfs"})
	require.NoError(t, err)
	assert.Equal(t, []strategy.Name{strategy.BFS, strategy.DFS}, names)

	_, err = strategy.ParseAll([]string{"bfs", "nope"})
	assert.ErrorIs(t, err, strategy.ErrUnknownStrategy)
}

func TestWidth(t *testing.T) {
	assert.Equal(t, len("ucs_by_distance"), strategy.Width(strategy.All()))
	assert.Equal(t, 0, strategy.Width(nil))
}

func TestRun_Unknown(t *testing.T) {
	g := gridtest.Lookup("Single").Build(t)
	_, err := strategy.Run(g, strategy.Name("nope"))
	assert.ErrorIs(t, err, strategy.ErrUnknownStrategy)
}

// TestRunAll_Scenarios checks no-path agreement and validity across every
// strategy, plus the start==goal and 3×3 ones shapes.
func TestRunAll_Scenarios(t *testing.T) {
	for _, sc := range gridtest.Scenarios() {
		t.Run(sc.Name, func(t *testing.T) {
			g := sc.Build(t, gridgraph.WithHeuristic(gridgraph.HeuristicScaled))
			results, err := strategy.RunAll(g, strategy.All())
			require.NoError(t, err)
			require.Len(t, results, len(strategy.All()))

			for i, r := range results {
				assert.Equal(t, strategy.All()[i], r.Name)
				if !sc.Reachable {
					assert.Nil(t, r.Path, r.Name)
					continue
				}
				gridtest.CheckPath(t, g, r.Path)
			}
		})
	}
}

func TestRunAll_StartIsGoal(t *testing.T) {
	g := gridtest.Lookup("Single").Build(t)
	results, err := strategy.RunAll(g, strategy.All())
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, gridgraph.Path{{Row: 0, Col: 0}}, r.Path, r.Name)
	}
}

func TestRunAll_OnesJumps(t *testing.T) {
	g := gridtest.Lookup("Ones").Build(t, gridgraph.WithHeuristic(gridgraph.HeuristicScaled))
	results, err := strategy.RunAll(g, strategy.All())
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, 4, r.Path.Jumps(), r.Name)
	}
}

// TestRunAll_Deterministic runs everything twice on random grids.
func TestRunAll_Deterministic(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		grid, err := builder.Random(6, 6, builder.WithSeed(seed), builder.WithMaxJump(3))
		require.NoError(t, err)
		g, err := gridgraph.Build(grid, gridgraph.Pos{}, gridgraph.Pos{Row: 5, Col: 5}, gridgraph.WithHeuristic(gridgraph.HeuristicScaled))
		require.NoError(t, err)

		first, err := strategy.RunAll(g, strategy.All())
		require.NoError(t, err)
		second, err := strategy.RunAll(g, strategy.All())
		require.NoError(t, err)
		for i := range first {
			assert.Equal(t, first[i].Path, second[i].Path, "seed %d %s", seed, first[i].Name)
		}
	}
}

func TestRunAll_StopsOnError(t *testing.T) {
	g := gridtest.Lookup("Ones").Build(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := strategy.RunAll(g, strategy.All(), traverse.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}
