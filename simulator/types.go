// Package simulator is the control surface of gridtrace: it owns the
// editable grid, runs the selected strategy and drives a replay.Player
// with board and tree presenters attached.
//
// It mirrors the buttons of a path-finding visualiser. Editing and
// algorithm selection are refused while a simulation runs; a simulation
// stops running when its replay finishes.
package simulator

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/gridtrace/bfs"
	"github.com/katalvlaran/gridtrace/logging"
	"github.com/katalvlaran/gridtrace/replay"
	"github.com/katalvlaran/gridtrace/search"
)

var (
	// ErrRunning is returned for edits and starts during a simulation.
	ErrRunning = errors.New("simulator: simulation running")
	// ErrMissingEndpoint is returned by Start when start or end is unset.
	ErrMissingEndpoint = errors.New("simulator: start and end must both be set")
)

// Default grid size of a new simulator.
const (
	DefaultRows = 10
	DefaultCols = 10
)

// Option configures a Simulator.
type Option func(*Options)

// Options holds Simulator parameters and collaborators.
type Options struct {
	Rows, Cols int
	Algorithm  string
	Speed      int
	Runner     *search.Runner
	Scheduler  replay.Scheduler
	Observer   replay.Observer
	Logger     logging.Logger
	Rand       *rand.Rand
}

// DefaultOptions returns a 10×10 bfs simulator at speed 50.
func DefaultOptions() Options {
	return Options{
		Rows:      DefaultRows,
		Cols:      DefaultCols,
		Algorithm: bfs.Name,
		Speed:     replay.DefaultSpeed,
		Logger:    logging.NoOpLogger{},
	}
}

// WithSize sets the initial grid size.
func WithSize(rows, cols int) Option {
	return func(o *Options) { o.Rows, o.Cols = rows, cols }
}

// WithAlgorithm sets the initial strategy name; New validates it.
func WithAlgorithm(name string) Option {
	return func(o *Options) { o.Algorithm = name }
}

// WithSpeed sets the initial replay speed.
func WithSpeed(s int) Option {
	return func(o *Options) { o.Speed = s }
}

// WithRunner sets the search runner.
func WithRunner(r *search.Runner) Option {
	return func(o *Options) { o.Runner = r }
}

// WithScheduler sets the replay scheduler.
func WithScheduler(s replay.Scheduler) Option {
	return func(o *Options) { o.Scheduler = s }
}

// WithObserver attaches an extra presenter next to the board and tree.
func WithObserver(obs replay.Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRand makes maze generation reproducible.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}
