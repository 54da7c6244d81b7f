package simulator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/logging"
	"github.com/katalvlaran/gridtrace/render"
	"github.com/katalvlaran/gridtrace/replay"
	"github.com/katalvlaran/gridtrace/search"
	"github.com/katalvlaran/gridtrace/trace"
)

// Simulator is not safe for concurrent use; drive it from the goroutine
// that ticks its scheduler.
type Simulator struct {
	grid   *grid.Grid
	runner *search.Runner
	sched  replay.Scheduler
	extra  replay.Observer
	log    logging.Logger
	rng    *rand.Rand

	algo    string
	speed   int
	running bool

	player *replay.Player
	board  *render.Board
	tree   *render.Tree
}

// New builds a Simulator with a fresh grid carrying default endpoints.
func New(opts ...Option) (*Simulator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g, err := grid.NewGrid(o.Rows, o.Cols)
	if err != nil {
		return nil, err
	}
	if o.Runner == nil {
		o.Runner = search.NewRunner(search.WithLogger(o.Logger))
	}
	if _, err := o.Runner.Registry().Lookup(o.Algorithm); err != nil {
		return nil, err
	}
	if o.Scheduler == nil {
		o.Scheduler = replay.NewFrameScheduler(time.Now)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Simulator{
		grid:   g,
		runner: o.Runner,
		sched:  o.Scheduler,
		extra:  o.Observer,
		log:    o.Logger,
		rng:    o.Rand,
		algo:   o.Algorithm,
		speed:  o.Speed,
	}, nil
}

// Running reports whether a simulation is in progress.
func (s *Simulator) Running() bool { return s.running }

// Algorithm returns the selected strategy name.
func (s *Simulator) Algorithm() string { return s.algo }

// Algorithms lists the selectable strategy names.
func (s *Simulator) Algorithms() []string { return s.runner.Registry().Names() }

// Speed returns the replay speed.
func (s *Simulator) Speed() int { return s.speed }

// Grid returns a snapshot of the current grid.
func (s *Simulator) Grid() *grid.State { return s.grid.Snapshot() }

// Player returns the active replay, or nil before the first start.
func (s *Simulator) Player() *replay.Player { return s.player }

// Board returns the board presenter of the last simulation, or nil.
func (s *Simulator) Board() *render.Board { return s.board }

// Tree returns the tree presenter of the last simulation, or nil.
func (s *Simulator) Tree() *render.Tree { return s.tree }

// Stats returns the running replay statistics.
func (s *Simulator) Stats() trace.Stats {
	if s.player == nil {
		return trace.Stats{}
	}
	return s.player.Stats()
}

// SelectAlgorithm switches the strategy and clears the previous overlay.
func (s *Simulator) SelectAlgorithm(name string) error {
	if s.running {
		return ErrRunning
	}
	if _, err := s.runner.Registry().Lookup(name); err != nil {
		return err
	}
	s.algo = name
	s.clearSimulation()

	return nil
}

// SetSpeed changes the speed of the current and future replays, clamped
// to [0, replay.MaxSpeed].
func (s *Simulator) SetSpeed(speed int) {
	if speed < 0 {
		speed = 0
	}
	if speed > replay.MaxSpeed {
		speed = replay.MaxSpeed
	}
	s.speed = speed
	if s.player != nil {
		s.player.SetSpeed(speed)
	}
}

// Start runs the selected strategy on a snapshot of the grid and begins
// the replay.
func (s *Simulator) Start(ctx context.Context) error {
	if s.running {
		return ErrRunning
	}
	st := s.grid.Snapshot()
	_, okStart := st.Start()
	_, okEnd := st.End()
	if !okStart || !okEnd {
		s.log.Warn("simulation refused", "reason", "missing endpoint")
		return ErrMissingEndpoint
	}

	tr, err := s.runner.Run(ctx, s.algo, st)
	if err != nil {
		return fmt.Errorf("simulator: %s: %w", s.algo, err)
	}

	s.clearSimulation()
	s.board = render.NewBoard(st)
	s.tree = render.NewTree()
	s.player = replay.NewPlayer(tr, st,
		replay.WithObserver(replay.Multi(s.board, s.tree, s.extra)),
		replay.WithScheduler(s.sched),
		replay.WithLogger(s.log),
		replay.WithSpeed(s.speed),
		replay.WithOnFinish(s.finish),
	)
	s.running = true
	s.log.Info("simulation started", "algorithm", s.algo, "trace", tr.ID, "steps", tr.Len())
	s.player.Start()

	return nil
}

func (s *Simulator) finish() {
	s.running = false
	s.log.Info("simulation finished", "algorithm", s.algo, "explored", s.Stats().Explored)
}

// TogglePause pauses or resumes the replay.
func (s *Simulator) TogglePause() {
	if s.player != nil {
		s.player.TogglePause()
	}
}

// StepForward applies one replay step; see replay.Player.StepForward.
func (s *Simulator) StepForward() bool {
	if s.player == nil {
		return false
	}
	return s.player.StepForward()
}

// StepBackward undoes one replay step. Stepping back from a finished
// replay makes the simulation running again.
func (s *Simulator) StepBackward() bool {
	if s.player == nil {
		return false
	}
	ok := s.player.StepBackward()
	s.resume()

	return ok
}

// Seek jumps the replay to cursor k.
func (s *Simulator) Seek(k int) {
	if s.player == nil {
		return
	}
	s.player.Seek(k)
	s.resume()
}

func (s *Simulator) resume() {
	if s.player.State() != replay.Finished && !s.running {
		s.running = true
		s.log.Debug("simulation resumed", "cursor", s.player.Cursor())
	}
}

// ClearSimulation drops the replay and its overlay, keeping the grid.
func (s *Simulator) ClearSimulation() error {
	if s.running {
		return ErrRunning
	}
	s.clearSimulation()
	return nil
}

func (s *Simulator) clearSimulation() {
	if s.player != nil {
		s.player.Stop()
	}
	s.player = nil
	if s.board != nil {
		s.board.OnReset()
	}
	if s.tree != nil {
		s.tree.OnReset()
	}
	if s.extra != nil {
		s.extra.OnReset()
		s.extra.OnStats(trace.Stats{})
	}
}

// edit runs fn on the grid unless a simulation runs, then drops the stale
// overlay.
func (s *Simulator) edit(fn func(*grid.Grid) error) error {
	if s.running {
		return ErrRunning
	}
	if err := fn(s.grid); err != nil {
		return err
	}
	s.clearSimulation()
	s.board, s.tree = nil, nil

	return nil
}

// Paint applies tool at p.
func (s *Simulator) Paint(p grid.Pos, tool grid.Tool) error {
	return s.edit(func(g *grid.Grid) error { return g.Paint(p, tool) })
}

// SetStart moves the start marker.
func (s *Simulator) SetStart(p grid.Pos) error {
	return s.edit(func(g *grid.Grid) error { return g.SetStart(p) })
}

// SetEnd moves the end marker.
func (s *Simulator) SetEnd(p grid.Pos) error {
	return s.edit(func(g *grid.Grid) error { return g.SetEnd(p) })
}

// ClearAll erases walls and mud, keeping endpoints.
func (s *Simulator) ClearAll() error {
	return s.edit(func(g *grid.Grid) error {
		g.ClearAll()
		return nil
	})
}

// GenerateMaze redraws the grid at random; see grid.Grid.RandomMaze.
func (s *Simulator) GenerateMaze(wallProb, mudProb float64) error {
	return s.edit(func(g *grid.Grid) error {
		return g.RandomMaze(wallProb, mudProb, grid.WithRand(s.rng))
	})
}

// GenerateWalls draws a walls-only maze (25 % walls).
func (s *Simulator) GenerateWalls() error {
	return s.GenerateMaze(grid.WallsOnlyWallProb, 0)
}

// GenerateMixed draws a maze of 20 % walls and 15 % mud.
func (s *Simulator) GenerateMixed() error {
	return s.GenerateMaze(grid.MixedWallProb, grid.MixedMudProb)
}

// LoadGrid replaces the grid with a copy of st.
func (s *Simulator) LoadGrid(st *grid.State) error {
	return s.edit(func(g *grid.Grid) error {
		*g = *grid.FromState(st)
		return nil
	})
}
