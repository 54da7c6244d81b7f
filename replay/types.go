// Package replay turns a finished trace.Trace into a controllable
// animation: play, pause, single-step forward and backward, seek and
// variable speed.
//
// The replay runs over the virtual sequence events ++ path. The cursor
// counts applied steps; the running statistics always equal what StatsAt
// derives from scratch for the same cursor.
//
// A Player is single-threaded. Time comes from a Scheduler, so the same
// Player is driven by a FrameScheduler in tests, by ebiten's Update in the
// GUI and by a Loop in the terminal.
package replay

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/logging"
	"github.com/katalvlaran/gridtrace/trace"
)

// Timing constants of the playback loop.
const (
	// MaxSpeed is the top of the speed scale; it also enables bursts.
	MaxSpeed = 100
	// DefaultSpeed is the initial speed of a Player.
	DefaultSpeed = 50
	// BaseDelay is the frame delay at speed 0.
	BaseDelay = 500 * time.Millisecond
	// DelayPerSpeed is subtracted from BaseDelay per speed unit.
	DelayPerSpeed = 5 * time.Millisecond
	// BurstSteps are applied per frame at MaxSpeed; otherwise one.
	BurstSteps = 5
	// FinishGrace separates reaching the end from the finish callback.
	FinishGrace = 50 * time.Millisecond
)

// State is the playback state.
type State uint8

const (
	// Idle: created or stopped, no loop pending.
	Idle State = iota
	// Playing: the loop advances the cursor on every due frame.
	Playing
	// Paused: the cursor moves only through explicit stepping or seeking.
	Paused
	// Finished: the cursor reached the end of the sequence.
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Role classifies a replay step for presenters.
type Role uint8

const (
	RoleRoot Role = iota
	RoleFrontier
	RoleExplore
	RolePath
)

func (r Role) String() string {
	switch r {
	case RoleRoot:
		return "root"
	case RoleFrontier:
		return "frontier"
	case RoleExplore:
		return "explore"
	case RolePath:
		return "path"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// Step is one entry of the virtual sequence events ++ path.
// Event is the zero value for path steps; PathIndex is -1 for event steps.
type Step struct {
	Index     int
	Role      Role
	Event     trace.Event
	Node      grid.Pos
	PathIndex int
}

// Observer receives replay notifications. OnReset precedes a full redraw;
// OnStep follows every applied step, then OnStats with the updated totals.
type Observer interface {
	OnReset()
	OnStep(Step)
	OnStats(trace.Stats)
}

// CostLookup yields the cost of entering a cell. *grid.State satisfies it.
type CostLookup interface {
	Cost(p grid.Pos) int
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) OnReset() {}
func (NopObserver) OnStep(Step) {}
func (NopObserver) OnStats(trace.Stats) {}

// Funcs adapts plain functions to Observer. Nil fields are skipped.
type Funcs struct {
	Reset func()
	Step  func(Step)
	Stats func(trace.Stats)
}

func (f Funcs) OnReset() {
	if f.Reset != nil {
		f.Reset()
	}
}

func (f Funcs) OnStep(s Step) {
	if f.Step != nil {
		f.Step(s)
	}
}

func (f Funcs) OnStats(st trace.Stats) {
	if f.Stats != nil {
		f.Stats(st)
	}
}

type multi []Observer

// Multi fans notifications out to every observer in order.
func Multi(obs ...Observer) Observer {
	out := make(multi, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}

func (m multi) OnReset() {
	for _, o := range m {
		o.OnReset()
	}
}

func (m multi) OnStep(s Step) {
	for _, o := range m {
		o.OnStep(s)
	}
}

func (m multi) OnStats(st trace.Stats) {
	for _, o := range m {
		o.OnStats(st)
	}
}

// Option configures a Player.
type Option func(*Options)

// Options holds Player collaborators.
type Options struct {
	Observer  Observer
	Scheduler Scheduler
	Logger    logging.Logger
	Speed     int
	// OnFinish runs FinishGrace after playback reaches the end, provided
	// the cursor is still at the end by then.
	OnFinish func()
}

// DefaultOptions returns a Player configuration with no observer, a
// wall-clock FrameScheduler nobody ticks, and DefaultSpeed.
func DefaultOptions() Options {
	return Options{
		Observer:  NopObserver{},
		Scheduler: NewFrameScheduler(time.Now),
		Logger:    logging.NoOpLogger{},
		Speed:     DefaultSpeed,
	}
}

// WithObserver sets the observer; combine several with Multi.
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		if o != nil {
			opts.Observer = o
		}
	}
}

// WithScheduler sets the time source and frame queue.
func WithScheduler(s Scheduler) Option {
	return func(opts *Options) {
		if s != nil {
			opts.Scheduler = s
		}
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(l logging.Logger) Option {
	return func(opts *Options) {
		if l != nil {
			opts.Logger = l
		}
	}
}

// WithSpeed sets the initial speed, clamped to [0, MaxSpeed].
func WithSpeed(s int) Option {
	return func(opts *Options) { opts.Speed = clampSpeed(s) }
}

// WithOnFinish sets the finish callback.
func WithOnFinish(fn func()) Option {
	return func(opts *Options) { opts.OnFinish = fn }
}

func clampSpeed(s int) int {
	if s < 0 {
		return 0
	}
	if s > MaxSpeed {
		return MaxSpeed
	}
	return s
}

// Delay returns the frame delay for speed: max(0, BaseDelay − speed·DelayPerSpeed).
func Delay(speed int) time.Duration {
	d := BaseDelay - time.Duration(clampSpeed(speed))*DelayPerSpeed
	if d < 0 {
		return 0
	}
	return d
}

// Burst returns how many steps one due frame applies at speed.
func Burst(speed int) int {
	if speed >= MaxSpeed {
		return BurstSteps
	}
	return 1
}
