// Package render formats search results for the terminal.
//
// Line reproduces the classic one-line report:
//
//	ucs_by_jumps    : {3}[(0, 0), (1, 0), (1, 4), (0, 4)]
//	dfs             : {0}None
//
// Grid draws a matrix with the start, goal and path cells marked. Markers
// are plain brackets, so the picture survives a renderer without colour.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/jumppath/gridgraph"
)

var (
	colorCyan  = lipgloss.Color("36")  // path
	colorGreen = lipgloss.Color("35")  // start
	colorRed   = lipgloss.Color("167") // goal
	colorWhite = lipgloss.Color("255") // plain cells
	colorDim   = lipgloss.Color("240") // dead ends
)

// Line formats one strategy result: the name left-justified to pad, the jump
// count in braces, then the path (or None).
func Line(name string, p gridgraph.Path, pad int) string {
	return fmt.Sprintf("%-*s : {%d}%v", pad, name, p.Jumps(), p)
}

// styles holds the per-renderer cell styles.
type styles struct {
	path, start, goal, plain, dead lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		path:  r.NewStyle().Foreground(colorCyan).Bold(true),
		start: r.NewStyle().Foreground(colorGreen).Bold(true),
		goal:  r.NewStyle().Foreground(colorRed).Bold(true),
		plain: r.NewStyle().Foreground(colorWhite),
		dead:  r.NewStyle().Foreground(colorDim),
	}
}

// Grid draws g's matrix, one line per row. Every cell takes the same width.
// Cells on p are wrapped in [ ]; start and goal cells off p in ( ).
// A nil r uses lipgloss.DefaultRenderer().
func Grid(r *lipgloss.Renderer, g *gridgraph.Graph, p gridgraph.Path) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	st := newStyles(r)

	onPath := make(map[gridgraph.Pos]bool, len(p))
	for _, pos := range p {
		onPath[pos] = true
	}
	width := len(strconv.Itoa(g.MaxJump))

	lines := make([]string, g.Rows())
	for row := range lines {
		var sb strings.Builder
		for col := 0; col < g.Cols(); col++ {
			pos := gridgraph.Pos{Row: row, Col: col}
			v := g.Value(pos)
			cell := fmt.Sprintf("%*d", width, v)

			var style lipgloss.Style
			switch {
			case pos == g.Start:
				style = st.start
			case pos == g.Goal:
				style = st.goal
			case onPath[pos]:
				style = st.path
			case v == 0:
				style = st.dead
			default:
				style = st.plain
			}

			switch {
			case onPath[pos]:
				cell = "[" + cell + "]"
			case pos == g.Start || pos == g.Goal:
				cell = "(" + cell + ")"
			default:
				cell = " " + cell + " "
			}
			sb.WriteString(style.Render(cell))
		}
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}
