package gridgraph

// estimate computes the heuristic of p towards Goal for the graph's kind.
//
// Every edge costs exactly the Manhattan displacement it covers, so the
// Manhattan distance to Goal never overstates the remaining edge-length cost.
// Dividing it by any divisor ≥ 1 keeps that property. HeuristicScaled uses
// MaxJump-1 as the divisor; it is clamped to 1 because a grid whose largest
// jump is 0 or 1 would otherwise divide by zero or a negative number.
func (g *Graph) estimate(p Pos) float64 {
	switch g.heuristic {
	case HeuristicScaled:
		return float64(p.Manhattan(g.Goal)) / float64(ScaledDivisor(g.MaxJump))
	case HeuristicManhattan:
		return float64(p.Manhattan(g.Goal))
	default:
		return 0
	}
}

// ScaledDivisor returns max(maxJump-1, 1), the divisor used by HeuristicScaled.
func ScaledDivisor(maxJump int) int {
	if maxJump-1 < 1 {
		return 1
	}
	return maxJump - 1
}
