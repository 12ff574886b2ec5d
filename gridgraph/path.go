package gridgraph

import (
	"fmt"
	"strings"
)

// Path is an ordered sequence of positions from Start to Goal inclusive.
// A nil Path is the uniform "no path" signal of every search strategy.
type Path []Pos

// Jumps returns the number of edges in p (len(p)-1), or 0 for an absent path.
func (p Path) Jumps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// String renders p as "[(r, c), (r, c), ...]", or "None" when p is absent.
func (p Path) String() string {
	if p == nil {
		return "None"
	}
	parts := make([]string, len(p))
	for i, pos := range p {
		parts[i] = pos.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Reconstruct walks parent links back from goal to start and returns the
// path in start→goal order.
//
// The result is nil when reached is false, or when goal differs from start
// and has no recorded parent. start itself must not appear as a key in
// parent. A broken chain (a link missing before start, or a cycle) also
// yields nil.
// Complexity: O(len(path)).
func Reconstruct(parent map[Pos]Pos, start, goal Pos, reached bool) Path {
	if !reached {
		return nil
	}
	if goal == start {
		return Path{start}
	}
	if _, ok := parent[goal]; !ok {
		return nil
	}
	// build reversed path
	path := Path{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok || len(path) > len(parent) {
			return nil
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// ValidatePath checks that p starts at Start, ends at Goal, and that every
// consecutive pair is joined by an edge of g. It returns ErrInvalidPath with
// context on the first violation.
func (g *Graph) ValidatePath(p Path) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if p[0] != g.Start {
		return fmt.Errorf("%w: starts at %v, want %v", ErrInvalidPath, p[0], g.Start)
	}
	if last := p[len(p)-1]; last != g.Goal {
		return fmt.Errorf("%w: ends at %v, want %v", ErrInvalidPath, last, g.Goal)
	}
	for i := 1; i < len(p); i++ {
		if _, ok := g.edge(p[i-1], p[i]); !ok {
			return fmt.Errorf("%w: no edge %v→%v at step %d", ErrInvalidPath, p[i-1], p[i], i)
		}
	}
	return nil
}

// PathCost sums cost over every jump of p. The path must be valid.
func (g *Graph) PathCost(p Path, cost CostFunc) (int, error) {
	if err := g.ValidatePath(p); err != nil {
		return 0, err
	}
	total := 0
	for i := 1; i < len(p); i++ {
		e, _ := g.edge(p[i-1], p[i])
		total += cost(g.nodes[p[i-1]], e, g.nodes[p[i]])
	}
	return total, nil
}

// edge returns the first edge from→to, if any.
func (g *Graph) edge(from, to Pos) (Edge, bool) {
	n, ok := g.nodes[from]
	if !ok {
		return Edge{}, false
	}
	for _, e := range n.Edges {
		if e.To == to {
			return e, true
		}
	}
	return Edge{}, false
}
