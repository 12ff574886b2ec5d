// Package traverse holds the options and bookkeeping shared by every search
// strategy: cancellation, a visit hook, and an optional expansion budget.
//
// None of these change what a strategy returns when it runs to completion;
// they only let a host observe a search or stop it from outside.
package traverse

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/jumppath/gridgraph"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to a strategy.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrBudgetExceeded is returned when a search expands more nodes than
	// allowed by WithMaxExpansions.
	ErrBudgetExceeded = errors.New("traverse: expansion budget exceeded")
)

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. negative budget), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by every strategy.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called each time a node is expanded, with the running
	// expansion count (1-based). Returning an error aborts the search.
	OnVisit func(p gridgraph.Pos, step int) error

	// MaxExpansions, if > 0, aborts the search with ErrBudgetExceeded once
	// that many nodes have been expanded without reaching the goal.
	// A value of 0 disables the limit.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnVisit
//   - no expansion budget (MaxExpansions == 0)
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnVisit:       func(gridgraph.Pos, int) error { return nil },
		MaxExpansions: 0,
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on every expansion; returning an
// error from it stops the search.
func WithOnVisit(fn func(p gridgraph.Pos, step int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxExpansions bounds the number of expanded nodes.
//
//	n > 0: abort after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
