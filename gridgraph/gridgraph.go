package gridgraph

import (
	"fmt"
	"strconv"
	"strings"
)

// Graph is the jump graph of a rectangular matrix. It owns every Node in an
// arena keyed by Pos and is immutable once built, so a single Graph may be
// searched concurrently by independent strategies.
type Graph struct {
	Start, Goal Pos
	MaxJump     int // largest cell value in the matrix

	rows, cols int
	matrix     [][]int
	nodes      map[Pos]*Node
	root       *Node
	heuristic  HeuristicKind
}

// Build constructs a Graph from a non-empty, rectangular matrix of
// non-negative jump lengths. The input is deep-copied.
//
// Every cell becomes a Node. For each cell (i,j) with value L > 0 an Edge of
// Length L is appended towards each in-bounds cell among (i-L,j), (i+L,j),
// (i,j-L), (i,j+L), in that order.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrNegativeJump, ErrOutOfBounds or
// ErrHeuristicShape; all of them wrap ErrInvalidConfig.
// Complexity: O(R×C) time and memory.
func Build(matrix [][]int, start, goal Pos, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(matrix), len(matrix[0])
	cells := make([][]int, rows)
	maxJump := 0
	for i, row := range matrix {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), cols)
		}
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell (%d, %d) = %d", ErrNegativeJump, i, j, v)
			}
			if v > maxJump {
				maxJump = v
			}
		}
		// Deep copy to prevent external mutation
		cells[i] = make([]int, cols)
		copy(cells[i], row)
	}
	if o.HintMatrix != nil && !sameShape(o.HintMatrix, rows, cols) {
		return nil, ErrHeuristicShape
	}

	g := &Graph{
		Start:     start,
		Goal:      goal,
		MaxJump:   maxJump,
		rows:      rows,
		cols:      cols,
		matrix:    cells,
		nodes:     make(map[Pos]*Node, rows*cols),
		heuristic: o.Heuristic,
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, rows, cols)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v in %dx%d grid", ErrOutOfBounds, goal, rows, cols)
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			node := g.node(Pos{i, j})
			length := cells[i][j]
			if length == 0 {
				continue
			}
			for _, d := range jumpOffsets(length) {
				to := Pos{i + d[0], j + d[1]}
				if !g.InBounds(to) {
					continue
				}
				g.node(to)
				e := Edge{To: to, Length: length}
				if o.HintMatrix != nil {
					e.Hint = o.HintMatrix[to.Row][to.Col]
				}
				node.Edges = append(node.Edges, e)
			}
		}
	}
	g.root = g.nodes[start]

	return g, nil
}

// node returns the arena entry for p, creating it on first use.
func (g *Graph) node(p Pos) *Node {
	if n, ok := g.nodes[p]; ok {
		return n
	}
	n := &Node{
		Pos:       p,
		Value:     g.matrix[p.Row][p.Col],
		Heuristic: g.estimate(p),
		IsGoal:    p == g.Goal,
	}
	g.nodes[p] = n

	return n
}

// jumpOffsets lists the four cardinal offsets of magnitude l: up, down, left, right.
func jumpOffsets(l int) [4][2]int {
	return [4][2]int{{-l, 0}, {l, 0}, {0, -l}, {0, l}}
}

func sameShape(m [][]int, rows, cols int) bool {
	if len(m) != rows {
		return false
	}
	for _, row := range m {
		if len(row) != cols {
			return false
		}
	}
	return true
}

// Root returns the node at Start.
func (g *Graph) Root() *Node { return g.root }

// Node returns the node at p, or nil if p is outside the grid.
func (g *Graph) Node(p Pos) *Node { return g.nodes[p] }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Graph) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Rows returns the number of matrix rows.
func (g *Graph) Rows() int { return g.rows }

// Cols returns the number of matrix columns.
func (g *Graph) Cols() int { return g.cols }

// Len returns the number of nodes in the arena.
func (g *Graph) Len() int { return len(g.nodes) }

// Heuristic returns the kind used to fill Node.Heuristic.
func (g *Graph) Heuristic() HeuristicKind { return g.heuristic }

// Value returns the jump length stored at p. p must be in bounds.
func (g *Graph) Value(p Pos) int { return g.matrix[p.Row][p.Col] }

// Matrix returns a copy of the source matrix.
func (g *Graph) Matrix() [][]int {
	out := make([][]int, g.rows)
	for i, row := range g.matrix {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Positions returns every node position in row-major order.
func (g *Graph) Positions() []Pos {
	out := make([]Pos, 0, len(g.nodes))
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			if _, ok := g.nodes[Pos{i, j}]; ok {
				out = append(out, Pos{i, j})
			}
		}
	}
	return out
}

// String dumps the header line and the matrix in the input file layout:
// "rows cols startRow startCol goalRow goalCol" followed by one line per row.
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d %d %d %d %d", g.rows, g.cols, g.Start.Row, g.Start.Col, g.Goal.Row, g.Goal.Col)
	for _, row := range g.matrix {
		sb.WriteByte('\n')
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}
