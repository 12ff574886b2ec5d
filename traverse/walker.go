package traverse

import (
	"fmt"

	"github.com/katalvlaran/jumppath/gridgraph"
)

// Walker tracks the expansions of a single search run. Each strategy creates
// its own Walker; it is not safe for concurrent use.
type Walker struct {
	opts  Options
	steps int
}

// Start validates g and opts and returns a Walker for one search run.
// Returns ErrGraphNil or ErrOptionViolation.
func Start(g *gridgraph.Graph, opts ...Option) (*Walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Walker{opts: o}, nil
}

// Visit records the expansion of p. It returns the context error once the
// context is done, ErrBudgetExceeded past the budget, or the OnVisit error.
func (w *Walker) Visit(p gridgraph.Pos) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.MaxExpansions > 0 && w.steps >= w.opts.MaxExpansions {
		return fmt.Errorf("%w: %d expansions at %v", ErrBudgetExceeded, w.steps, p)
	}
	w.steps++
	if err := w.opts.OnVisit(p, w.steps); err != nil {
		return fmt.Errorf("traverse: OnVisit error at %v: %w", p, err)
	}
	return nil
}

// Steps returns the number of expansions recorded so far.
func (w *Walker) Steps() int { return w.steps }
