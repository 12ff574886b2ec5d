// SPDX-License-Identifier: MIT
// Package: jumppath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w (see builderErrorf).
//   • Option constructors panic on meaningless input; constructors never do.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates that rows or cols is below the allowed minimum.
// Usage: if errors.Is(err, ErrTooSmall) { /* report invalid size */ }.
var ErrTooSmall = errors.New("builder: dimension too small")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without WithSeed or WithRand.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf prefixes a sentinel with the constructor name and detail,
// keeping the sentinel reachable through errors.Is.
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
