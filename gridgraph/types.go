// Package gridgraph defines core types, options, and cost functions
// for the gridgraph subpackage of github.com/katalvlaran/jumppath.
package gridgraph

import (
	"fmt"
	"strings"
)

// Pos identifies a cell by row and column. Two nodes with equal Pos are the
// same node.
type Pos struct {
	Row, Col int
}

// String renders the position the way paths are printed: "(r, c)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Manhattan returns |p.Row-q.Row| + |p.Col-q.Col|.
func (p Pos) Manhattan(q Pos) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// Edge is a directed jump owned by its source node.
type Edge struct {
	To     Pos // destination key into the Graph arena
	Length int // jump distance, equal to the source cell's value
	Hint   int // legacy per-edge heuristic, 0 unless WithHeuristicMatrix was used
}

// Node is a single cell of the grid. Nodes are read-only once Build returns;
// search strategies keep their own visited/parent state.
type Node struct {
	Pos       Pos
	Value     int     // jump length stored in the cell
	Heuristic float64 // estimate to Goal, 0 unless built WithHeuristic
	IsGoal    bool
	Edges     []Edge // in order: up, down, left, right
}

// HeuristicKind selects how Node.Heuristic is precomputed.
type HeuristicKind int

const (
	// HeuristicNone leaves every Node.Heuristic at 0 (A* degrades to Dijkstra).
	HeuristicNone HeuristicKind = iota
	// HeuristicScaled divides the Manhattan distance to Goal by (MaxJump-1),
	// with the divisor clamped to at least 1.
	HeuristicScaled
	// HeuristicManhattan uses the plain Manhattan distance to Goal.
	HeuristicManhattan
)

var heuristicNames = map[HeuristicKind]string{
	HeuristicNone:      "none",
	HeuristicScaled:    "scaled",
	HeuristicManhattan: "manhattan",
}

// String returns the configuration name of k.
func (k HeuristicKind) String() string {
	if s, ok := heuristicNames[k]; ok {
		return s
	}
	return fmt.Sprintf("HeuristicKind(%d)", int(k))
}

// ParseHeuristic maps a configuration name ("none", "scaled", "manhattan")
// to its HeuristicKind. Matching is case-insensitive.
func ParseHeuristic(name string) (HeuristicKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, s := range heuristicNames {
		if s == name {
			return k, nil
		}
	}
	return HeuristicNone, fmt.Errorf("%w: unknown heuristic %q", ErrInvalidConfig, name)
}

// Options configures Build.
type Options struct {
	// Heuristic selects how Node.Heuristic is filled.
	Heuristic HeuristicKind
	// HintMatrix, if non-nil, provides Edge.Hint for every edge by destination cell.
	HintMatrix [][]int
}

// Option configures Build via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with no heuristic and no hint matrix.
func DefaultOptions() Options {
	return Options{
		Heuristic:  HeuristicNone,
		HintMatrix: nil,
	}
}

// WithHeuristic precomputes Node.Heuristic using kind.
// Panics on an unknown kind.
func WithHeuristic(kind HeuristicKind) Option {
	if _, ok := heuristicNames[kind]; !ok {
		panic(fmt.Sprintf("gridgraph: WithHeuristic(%d): unknown kind", int(kind)))
	}
	return func(o *Options) {
		o.Heuristic = kind
	}
}

// WithHeuristicMatrix fills Edge.Hint from h, indexed by destination cell.
// The shape of h is checked by Build (ErrHeuristicShape).
func WithHeuristicMatrix(h [][]int) Option {
	return func(o *Options) {
		o.HintMatrix = h
	}
}

// CostFunc prices a single jump from one node to another along e.
type CostFunc func(from *Node, e Edge, to *Node) int

// CostDistance charges the jump length.
func CostDistance(_ *Node, e Edge, _ *Node) int { return e.Length }

// CostJumps charges 1 per jump.
func CostJumps(_ *Node, _ Edge, _ *Node) int { return 1 }

// CostValue charges the destination cell's value.
func CostValue(_ *Node, _ Edge, to *Node) int { return to.Value }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
