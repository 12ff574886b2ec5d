// Package strategy maps the closed set of search strategy names to their
// implementations, in the order results are reported.
//
// Names are validated once, at the boundary (Parse, config.Validate); Run
// never sees a free-form string.
package strategy

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/jumppath/astar"
	"github.com/katalvlaran/jumppath/bfs"
	"github.com/katalvlaran/jumppath/dfs"
	"github.com/katalvlaran/jumppath/dijkstra"
	"github.com/katalvlaran/jumppath/gridgraph"
	"github.com/katalvlaran/jumppath/traverse"
	"github.com/katalvlaran/jumppath/ucs"
)

// ErrUnknownStrategy is returned for a name outside All().
var ErrUnknownStrategy = fmt.Errorf("%w: unknown strategy", gridgraph.ErrInvalidConfig)

// Name identifies a search strategy.
type Name string

// Strategy names, in report order.
const (
	DFS           Name = "dfs"
	UCSByDistance Name = "ucs_by_distance"
	UCSByJumps    Name = "ucs_by_jumps"
	UCSByValue    Name = "ucs_by_value"
	BFS           Name = "bfs"
	Dijkstra      Name = "dijkstra"
	AStar         Name = "a_star"
)

// Func is the common signature of every strategy.
type Func func(g *gridgraph.Graph, opts ...traverse.Option) (gridgraph.Path, error)

var funcs = map[Name]Func{
	DFS:           dfs.DFS,
	UCSByDistance: ucs.ByDistance,
	UCSByJumps:    ucs.ByJumps,
	UCSByValue:    ucs.ByValue,
	BFS:           bfs.BFS,
	Dijkstra:      dijkstra.Dijkstra,
	AStar:         astar.AStar,
}

// All returns every strategy name in report order.
func All() []Name {
	return []Name{DFS, UCSByDistance, UCSByJumps, UCSByValue, BFS, Dijkstra, AStar}
}

// Parse converts s to a Name. Matching ignores case and surrounding spaces;
// "-" is accepted in place of "_".
func Parse(s string) (Name, error) {
	n := Name(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if _, ok := funcs[n]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownStrategy, s)
	}
	return n, nil
}

// ParseAll parses every name in ss, keeping their order. An empty list
// yields All().
func ParseAll(ss []string) ([]Name, error) {
	if len(ss) == 0 {
		return All(), nil
	}
	names := make([]Name, 0, len(ss))
	for _, s := range ss {
		n, err := Parse(s)
		if err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, nil
}

// Width returns the length of the longest name in names, used to pad
// report lines.
func Width(names []Name) int {
	w := 0
	for _, n := range names {
		w = max(w, len(n))
	}
	return w
}

// Run executes the strategy called name on g.
func Run(g *gridgraph.Graph, name Name, opts ...traverse.Option) (gridgraph.Path, error) {
	fn, ok := funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownStrategy, string(name))
	}
	return fn(g, opts...)
}

// Result is the outcome of one strategy in RunAll.
type Result struct {
	Name    Name
	Path    gridgraph.Path // nil when no path exists
	Elapsed time.Duration
}

// RunAll runs each strategy in names on g in order. It stops at the first
// error, returning the results gathered so far alongside it.
func RunAll(g *gridgraph.Graph, names []Name, opts ...traverse.Option) ([]Result, error) {
	results := make([]Result, 0, len(names))
	for _, n := range names {
		began := time.Now()
		p, err := Run(g, n, opts...)
		if err != nil {
			return results, fmt.Errorf("%s: %w", n, err)
		}
		results = append(results, Result{Name: n, Path: p, Elapsed: time.Since(began)})
	}
	return results, nil
}
