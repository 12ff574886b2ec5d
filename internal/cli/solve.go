package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/jumppath/config"
	"github.com/katalvlaran/jumppath/gridgraph"
	"github.com/katalvlaran/jumppath/jumpfile"
	"github.com/katalvlaran/jumppath/render"
	"github.com/katalvlaran/jumppath/strategy"
	"github.com/katalvlaran/jumppath/traverse"
)

// stdinName selects standard input as the problem source.
const stdinName = "-"

// solveOpts holds the command-line flags for the solve command. Each one
// overrides the matching config key only when set.
type solveOpts struct {
	strategies    []string // --strategy, repeatable
	heuristic     string   // --heuristic
	grid          bool     // --grid
	noColor       bool     // --no-color
	maxExpansions int      // --max-expansions
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Run search strategies over every problem in a file",
		Long: `Solve reads problem blocks (header "rows cols startRow startCol goalRow goalCol",
then the rows) until a line holding 0, and prints one result line per strategy.
Without a file argument the config "input" key is used; "-" or no input at all
reads standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("strategy") {
				cfg.Strategies = opts.strategies
			}
			if flags.Changed("heuristic") {
				cfg.Heuristic = opts.heuristic
			}
			if flags.Changed("grid") {
				cfg.Render.Grid = opts.grid
			}
			if flags.Changed("no-color") {
				cfg.Render.Color = !opts.noColor
			}
			if flags.Changed("max-expansions") {
				cfg.MaxExpansions = opts.maxExpansions
			}
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runSolve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.strategies, "strategy", "s", nil, "strategy to run (repeatable, default all)")
	cmd.Flags().StringVar(&opts.heuristic, "heuristic", "", "A* heuristic: none, scaled (default), manhattan")
	cmd.Flags().BoolVar(&opts.grid, "grid", false, "draw each grid with the path found")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable styled output")
	cmd.Flags().IntVar(&opts.maxExpansions, "max-expansions", 0, "abort a search after this many expansions (0 = unlimited)")

	return cmd
}

// runSolve parses the input named by cfg and reports every strategy on every
// problem to out.
func runSolve(ctx context.Context, in io.Reader, out io.Writer, cfg config.Config) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	names, err := cfg.StrategyNames()
	if err != nil {
		return err
	}
	kind, err := cfg.HeuristicKind()
	if err != nil {
		return err
	}

	var problems []jumpfile.Problem
	if cfg.Input == "" || cfg.Input == stdinName {
		logger.Debug("reading problems", "from", "stdin")
		problems, err = jumpfile.Parse(in)
	} else {
		logger.Debug("reading problems", "from", cfg.Input)
		problems, err = jumpfile.ParseFile(cfg.Input)
	}
	if err != nil {
		return err
	}

	u := newUI(lipgloss.NewRenderer(out), cfg.Render.Color)
	pad := strategy.Width(names)
	for i, p := range problems {
		g, err := p.Graph(gridgraph.WithHeuristic(kind))
		if err != nil {
			return fmt.Errorf("problem %d: %w", i+1, err)
		}
		logger.Debug("built graph", "problem", i+1, "rows", g.Rows(), "cols", g.Cols(), "maxJump", g.MaxJump)

		fmt.Fprintln(out, g.String())
		fmt.Fprintln(out)
		if err := solveOne(ctx, out, u, g, names, pad, cfg); err != nil {
			return fmt.Errorf("problem %d: %w", i+1, err)
		}
		fmt.Fprintln(out)
	}

	prog.done("solved", "problems", len(problems), "strategies", len(names))
	return nil
}

// solveOne runs each strategy on g and prints its result line, plus the
// grid picture when enabled. A search that exhausts its budget is reported
// and does not stop the others.
func solveOne(ctx context.Context, out io.Writer, u ui, g *gridgraph.Graph, names []strategy.Name, pad int, cfg config.Config) error {
	logger := loggerFromContext(ctx)
	for _, name := range names {
		expanded := 0
		prog := newProgress(logger)
		p, err := strategy.Run(g, name,
			traverse.WithContext(ctx),
			traverse.WithMaxExpansions(cfg.MaxExpansions),
			traverse.WithOnVisit(func(_ gridgraph.Pos, step int) error {
				expanded = step
				return nil
			}),
		)
		switch {
		case errors.Is(err, traverse.ErrBudgetExceeded):
			logger.Warn("search aborted", "strategy", name, "maxExpansions", cfg.MaxExpansions)
			fmt.Fprintf(out, "%-*s : %s\n", pad, name, u.dim.Render("budget exceeded"))
			continue
		case err != nil:
			return fmt.Errorf("%s: %w", name, err)
		}
		logger.Debug("search finished", "strategy", name, "expanded", expanded, "jumps", p.Jumps(), "elapsed", prog.elapsed())

		fmt.Fprintln(out, render.Line(string(name), p, pad))
		if cfg.Render.Grid {
			fmt.Fprintln(out, render.Grid(u.r, g, p))
		}
	}
	return nil
}
