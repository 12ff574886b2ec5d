// SPDX-License-Identifier: MIT
// Package: jumppath/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless input.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// before the matrix is generated.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for Random.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxJump sets the largest jump length Random may draw.
// Panics if n < 1.
func WithMaxJump(n int) BuilderOption {
	if n < 1 {
		panic(fmt.Sprintf("builder: WithMaxJump(%d), want ≥ 1", n))
	}
	return func(c *builderConfig) {
		c.maxJump = n
	}
}

// WithDeadEndProbability sets the chance that a random cell holds 0.
// Panics if p is outside [0, 1].
func WithDeadEndProbability(p float64) BuilderOption {
	if p < minProbability || p > maxProbability {
		panic(fmt.Sprintf("builder: WithDeadEndProbability(%v) outside [0,1]", p))
	}
	return func(c *builderConfig) {
		c.deadEnd = p
	}
}
