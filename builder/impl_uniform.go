// SPDX-License-Identifier: MIT
// Package: jumppath/builder
//
// impl_uniform.go — Uniform(rows, cols, v).

package builder

const methodUniform = "Uniform"

// Uniform returns a rows×cols matrix with every cell set to v.
// rows, cols ≥ 1 (else ErrTooSmall). v < 0 is passed through; gridgraph.Build
// rejects it.
// Complexity: O(rows·cols) time and space.
func Uniform(rows, cols, v int) ([][]int, error) {
	if err := validateDims(methodUniform, rows, cols); err != nil {
		return nil, err
	}

	m := make([][]int, rows)
	for r := range m {
		m[r] = make([]int, cols)
		for c := range m[r] {
			m[r][c] = v
		}
	}

	return m, nil
}

// validateDims ensures rows and cols are both ≥ minDim.
func validateDims(method string, rows, cols int) error {
	if rows < minDim || cols < minDim {
		return builderErrorf(method, ErrTooSmall, "rows=%d, cols=%d (each must be ≥ %d)", rows, cols, minDim)
	}

	return nil
}
