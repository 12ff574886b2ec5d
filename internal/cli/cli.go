// Package cli implements the jumppath command-line interface.
//
// # Commands
//
//   - solve: run search strategies over every problem of an input file
//   - strategies: list strategy names in report order
//   - generate: write random problems in the input format
//   - config: print the effective configuration as TOML
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/jumppath/config"
)

const appName = "jumppath"

// Log levels for callers of New and Execute.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version, usually
// from values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose    bool
	configPath string
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Jumppath finds paths through jump grids",
		Long:          `Jumppath reads grids whose cells hold jump lengths and reports the paths found by DFS, BFS, uniform-cost search, Dijkstra and A*.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML configuration file")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.strategiesCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.configCommand())

	return root
}

// loadConfig returns the file named by --config, or the defaults. The
// configured log level applies unless --verbose was given.
func (c *CLI) loadConfig(ctx context.Context) (config.Config, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return config.Config{}, err
		}
		loggerFromContext(ctx).Debug("loaded config", "path", c.configPath)
	}
	if !c.verbose {
		lvl, err := cfg.LogLevel()
		if err != nil {
			return config.Config{}, err
		}
		c.SetLogLevel(lvl)
	}
	return cfg, nil
}

// Execute runs the jumppath CLI with logging to w at level and returns the
// first command error.
func Execute(ctx context.Context, w io.Writer, level log.Level) error {
	return New(w, level).RootCommand().ExecuteContext(ctx)
}
