// Package builder generates jump matrices for tests, benchmarks, examples,
// and the `jumppath generate` command.
//
// The package offers the following components:
//
//   - Constructors:
//     – Uniform:  every cell holds the same jump length.
//     – Random:   seeded random jump lengths with optional dead ends.
//   - Options (BuilderOption):
//     – WithSeed, WithRand:       RNG source for Random (required).
//     – WithMaxJump:              upper bound of a random jump, ≥ 1.
//     – WithDeadEndProbability:   chance in [0,1] that a cell holds 0.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; invalid sizes and a missing RNG surface as
//     sentinel errors (ErrTooSmall, ErrNeedRandSource).
//   - Determinism: the same seed and options yield the same matrix.
//
// The matrices are plain [][]int values, ready for gridgraph.Build.
package builder
