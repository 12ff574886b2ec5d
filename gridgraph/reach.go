package gridgraph

// Reachable returns every position reachable from `from` by following edges,
// including `from` itself, in discovery (breadth-first) order.
// Returns nil if from is outside the grid.
//
// Time:   O(R·C), at most four edges per cell.
// Memory: O(R·C) for seen flags and output.
func (g *Graph) Reachable(from Pos) []Pos {
	if !g.InBounds(from) {
		return nil
	}
	seen := make([]bool, g.rows*g.cols)
	seen[g.index(from)] = true
	queue := []Pos{from}

	for qi := 0; qi < len(queue); qi++ {
		for _, e := range g.nodes[queue[qi]].Edges {
			vi := g.index(e.To)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, e.To)
			}
		}
	}
	return queue
}

// CanReach reports whether Goal is reachable from Start.
func (g *Graph) CanReach() bool {
	for _, p := range g.Reachable(g.Start) {
		if p == g.Goal {
			return true
		}
	}
	return false
}

// index maps p to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *Graph) index(p Pos) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Pos.
// Complexity: O(1).
func (g *Graph) Coordinate(idx int) Pos {
	return Pos{Row: idx / g.cols, Col: idx % g.cols}
}
