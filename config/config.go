// Package config loads the jumppath TOML configuration file.
//
// TOML format:
//
//	input          = "input.txt"
//	strategies     = ["dfs", "bfs", "a_star"]
//	heuristic      = "scaled"
//	max_expansions = 0
//
//	[log]
//	level = "info"
//
//	[render]
//	grid  = true
//	color = true
//
// Keys left out keep their Default values. Unknown keys are rejected.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/jumppath/gridgraph"
	"github.com/katalvlaran/jumppath/strategy"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = fmt.Errorf("%w: config", gridgraph.ErrInvalidConfig)

// Config is the top-level TOML structure.
type Config struct {
	Input         string   `toml:"input"`
	Strategies    []string `toml:"strategies"`
	Heuristic     string   `toml:"heuristic"`
	MaxExpansions int      `toml:"max_expansions"`
	Log           Log      `toml:"log"`
	Render        Render   `toml:"render"`
}

// Log configures the command's logger.
type Log struct {
	Level string `toml:"level"`
}

// Render configures result output.
type Render struct {
	Grid  bool `toml:"grid"`  // draw each grid with its path
	Color bool `toml:"color"` // style output; ignored when stdout is not a terminal
}

// Default returns the configuration used when no file is given: every
// strategy in report order, the scaled heuristic, no budget.
func Default() Config {
	names := strategy.All()
	ss := make([]string, len(names))
	for i, n := range names {
		ss[i] = string(n)
	}
	return Config{
		Strategies: ss,
		Heuristic:  gridgraph.HeuristicScaled.String(),
		Log:        Log{Level: "info"},
		Render:     Render{Color: true},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config file %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field that has a closed set of values.
func (c Config) Validate() error {
	if _, err := c.StrategyNames(); err != nil {
		return err
	}
	if _, err := c.HeuristicKind(); err != nil {
		return err
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions = %d, want ≥ 0", ErrInvalid, c.MaxExpansions)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// StrategyNames parses Strategies; an empty list means every strategy.
func (c Config) StrategyNames() ([]strategy.Name, error) {
	return strategy.ParseAll(c.Strategies)
}

// HeuristicKind parses Heuristic; empty means gridgraph.HeuristicScaled.
func (c Config) HeuristicKind() (gridgraph.HeuristicKind, error) {
	if c.Heuristic == "" {
		return gridgraph.HeuristicScaled, nil
	}
	return gridgraph.ParseHeuristic(c.Heuristic)
}

// LogLevel parses Log.Level; empty means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return lvl, nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
