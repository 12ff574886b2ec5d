// SPDX-License-Identifier: MIT
// Package: jumppath/builder
//
// impl_random.go — Random(rows, cols, opts...).
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooSmall).
//   • An RNG is required (WithSeed/WithRand), else ErrNeedRandSource.
//   • Each cell, in row-major order, first draws a dead-end roll: with
//     probability deadEnd it holds 0. Otherwise it holds a uniform draw from
//     [1, maxJump].
//
// Determinism:
//   • Fixed RNG state and options yield the same matrix.
//   • With deadEnd == 0 the dead-end roll is skipped, so no draws are spent
//     on it.

package builder

const methodRandom = "Random"

// Random returns a rows×cols matrix of random jump lengths.
// Complexity: O(rows·cols) time and space.
func Random(rows, cols int, opts ...BuilderOption) ([][]int, error) {
	if err := validateDims(methodRandom, rows, cols); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandom, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	m := make([][]int, rows)
	for r := range m {
		m[r] = make([]int, cols)
		for c := range m[r] {
			if cfg.deadEnd > 0 && cfg.rng.Float64() < cfg.deadEnd {
				continue
			}
			m[r][c] = 1 + cfg.rng.Intn(cfg.maxJump)
		}
	}

	return m, nil
}
