// SPDX-License-Identifier: MIT
// Package: jumppath/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil   (Random refuses to run without one)
//   • maxJump  = 3
//   • deadEnd  = 0.0   (no forced zero cells)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng     *rand.Rand // RNG for Random; nil means “no randomness”.
	maxJump int        // ≥ 1
	deadEnd float64    // in [0,1]
}

// Named defaults and bounds.
const (
	defaultMaxJump = 3
	minProbability = 0.0
	maxProbability = 1.0
	minDim         = 1
)

// newBuilderConfig starts from the defaults and applies opts in order;
// later options override earlier ones.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		maxJump: defaultMaxJump,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
