package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jumppath/builder"
	"github.com/katalvlaran/jumppath/gridgraph"
	"github.com/katalvlaran/jumppath/jumpfile"
)

const (
	defaultRows     = 5
	defaultCols     = 5
	defaultMaxJump  = 3
	defaultDeadEnds = 0.1

	maxCount = 10000
	maxDim   = 1000
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	rows, cols int
	count      int
	seed       int64
	maxJump    int
	deadEnds   float64
}

func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		rows:     defaultRows,
		cols:     defaultCols,
		count:    1,
		maxJump:  defaultMaxJump,
		deadEnds: defaultDeadEnds,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write random problems in the solve input format",
		Long: `Generate writes random problems to standard output. Each problem starts in the
top-left corner and ends in the bottom-right one, whose cell holds 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = time.Now().UnixNano()
			}
			problems, err := generate(opts)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("generated problems", "count", len(problems), "seed", opts.seed)
			return jumpfile.Write(cmd.OutOrStdout(), problems)
		},
	}

	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "rows per grid")
	cmd.Flags().IntVar(&opts.cols, "cols", opts.cols, "columns per grid")
	cmd.Flags().IntVarP(&opts.count, "count", "n", opts.count, "number of problems")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().IntVar(&opts.maxJump, "max-jump", opts.maxJump, "largest jump length")
	cmd.Flags().Float64Var(&opts.deadEnds, "dead-ends", opts.deadEnds, "probability that a cell holds 0")

	return cmd
}

// generate validates opts before handing them to builder, whose option
// constructors panic on out-of-range values.
func generate(opts generateOpts) ([]jumpfile.Problem, error) {
	if opts.count < 1 {
		return nil, fmt.Errorf("%w: --count must be ≥ 1, got %d", gridgraph.ErrInvalidConfig, opts.count)
	}
	if opts.count > maxCount {
		return nil, fmt.Errorf("%w: --count must be ≤ %d, got %d", gridgraph.ErrInvalidConfig, maxCount, opts.count)
	}
	if opts.rows > maxDim || opts.cols > maxDim {
		return nil, fmt.Errorf("%w: grid must be at most %d×%d, got %d×%d",
			gridgraph.ErrInvalidConfig, maxDim, maxDim, opts.rows, opts.cols)
	}
	if opts.maxJump < 1 {
		return nil, fmt.Errorf("%w: --max-jump must be ≥ 1, got %d", gridgraph.ErrInvalidConfig, opts.maxJump)
	}
	if opts.deadEnds < 0 || opts.deadEnds > 1 {
		return nil, fmt.Errorf("%w: --dead-ends must be in [0,1], got %v", gridgraph.ErrInvalidConfig, opts.deadEnds)
	}

	rng := rand.New(rand.NewSource(opts.seed))
	var problems []jumpfile.Problem
	for i := 0; i < opts.count; i++ {
		m, err := builder.Random(opts.rows, opts.cols,
			builder.WithRand(rng),
			builder.WithMaxJump(opts.maxJump),
			builder.WithDeadEndProbability(opts.deadEnds),
		)
		if err != nil {
			return nil, err
		}
		goal := gridgraph.Pos{Row: opts.rows - 1, Col: opts.cols - 1}
		m[goal.Row][goal.Col] = 0
		problems = append(problems, jumpfile.Problem{Matrix: m, Goal: goal})
	}
	return problems, nil
}
