package grid

import (
	"fmt"
	"math/rand"
	"time"
)

// Maze presets used by the simulator's generate buttons.
const (
	WallsOnlyWallProb = 0.25
	MixedWallProb     = 0.20
	MixedMudProb      = 0.15
)

// MazeOption customizes RandomMaze.
type MazeOption func(*mazeConfig)

type mazeConfig struct {
	rng *rand.Rand
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) MazeOption {
	if r == nil {
		panic("grid: WithRand(nil)")
	}
	return func(c *mazeConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG for reproducible mazes.
func WithSeed(seed int64) MazeOption {
	return func(c *mazeConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// RandomMaze clears the grid and redraws every non-endpoint cell:
// wall with probability wallProb, mud with probability mudProb,
// empty otherwise. Trials run row-major so a fixed seed always yields
// the same maze.
func (g *Grid) RandomMaze(wallProb, mudProb float64, opts ...MazeOption) error {
	if wallProb < 0 || wallProb > 1 || mudProb < 0 || mudProb > 1 || wallProb+mudProb > 1 {
		return fmt.Errorf("%w: walls=%.3f mud=%.3f", ErrInvalidProbability, wallProb, mudProb)
	}
	cfg := mazeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.ClearAll()
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Pos{r, c}
			if g.IsEndpoint(p) {
				continue
			}
			x := cfg.rng.Float64()
			switch {
			case x < wallProb:
				g.cells[r][c] = CellOf(Wall)
			case x < wallProb+mudProb:
				g.cells[r][c] = CellOf(Mud)
			}
		}
	}

	return nil
}
