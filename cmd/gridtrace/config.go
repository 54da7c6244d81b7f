package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/logging"
)

// Config holds the command-line parameters.
type Config struct {
	Algo      string
	GridFile  string
	Rows      int
	Cols      int
	Walls     float64
	Mud       float64
	Seed      int64
	Speed     int
	Replay    bool
	Tree      bool
	LogLevel  string
	LogFormat string
}

// NewConfig returns a Config populated with defaults: a mixed 10×10 maze
// searched with bfs.
func NewConfig() *Config {
	return &Config{
		Algo:      "bfs",
		Rows:      10,
		Cols:      10,
		Walls:     grid.MixedWallProb,
		Mud:       grid.MixedMudProb,
		Seed:      42,
		Speed:     90,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Algo, "algo", c.Algo, "search strategy: bfs, dfs or ucs")
	fs.StringVar(&c.GridFile, "grid", c.GridFile, "ASCII grid file (. # ~ 2-9 S E); generates a maze when empty")
	fs.IntVar(&c.Rows, "rows", c.Rows, "rows of a generated maze")
	fs.IntVar(&c.Cols, "cols", c.Cols, "columns of a generated maze")
	fs.Float64Var(&c.Walls, "walls", c.Walls, "wall probability of a generated maze")
	fs.Float64Var(&c.Mud, "mud", c.Mud, "mud probability of a generated maze")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for maze generation")
	fs.IntVar(&c.Speed, "speed", c.Speed, "replay speed 0-100")
	fs.BoolVar(&c.Replay, "replay", c.Replay, "animate the search in the terminal")
	fs.BoolVar(&c.Tree, "tree", c.Tree, "print the search tree")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "text or json")
}

var errConfig = errors.New("gridtrace: bad flag")

// Validate checks values the flag package cannot.
func (c *Config) Validate() error {
	if c.GridFile == "" && (c.Rows <= 0 || c.Cols <= 0) {
		return fmt.Errorf("%w: -rows and -cols must be positive", errConfig)
	}
	if c.Speed < 0 || c.Speed > 100 {
		return fmt.Errorf("%w: -speed %d outside 0-100", errConfig, c.Speed)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: -log-format %q", errConfig, c.LogFormat)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}
