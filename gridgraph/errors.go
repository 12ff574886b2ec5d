package gridgraph

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the umbrella for every construction error. Callers that
// only care about "bad input, do not retry" can test errors.Is(err, ErrInvalidConfig).
var ErrInvalidConfig = errors.New("gridgraph: invalid configuration")

var (
	// ErrEmptyGrid indicates the input matrix has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: input grid must have at least one row and one column", ErrInvalidConfig)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidConfig)
	// ErrNegativeJump indicates a cell holding a negative jump length.
	ErrNegativeJump = fmt.Errorf("%w: jump lengths must be non-negative", ErrInvalidConfig)
	// ErrOutOfBounds indicates a start or goal coordinate outside the matrix.
	ErrOutOfBounds = fmt.Errorf("%w: coordinate out of bounds", ErrInvalidConfig)
	// ErrHeuristicShape indicates a hint matrix whose shape differs from the grid.
	ErrHeuristicShape = fmt.Errorf("%w: heuristic matrix shape mismatch", ErrInvalidConfig)
)

// ErrInvalidPath is returned by Graph.ValidatePath and Graph.PathCost when a
// path does not follow the graph's edges from Start to Goal.
var ErrInvalidPath = errors.New("gridgraph: invalid path")
