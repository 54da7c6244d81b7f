package replay

import (
	"time"

	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/logging"
	"github.com/katalvlaran/gridtrace/trace"
)

// Player replays one trace. It is not safe for concurrent use.
type Player struct {
	tr    *trace.Trace
	costs CostLookup
	obs   Observer
	sched Scheduler
	log   logging.Logger
	speed int

	onFinish func()

	state     State
	cursor    int
	stats     trace.Stats
	lastFrame time.Time

	frame  Handle
	finish Handle
}

// unitCost prices every cell at 1.
type unitCost struct{}

func (unitCost) Cost(grid.Pos) int { return 1 }

// NewPlayer prepares tr for replay. costs prices path cells; pass the
// grid.State the trace was computed on; nil prices every cell at 1.
func NewPlayer(tr *trace.Trace, costs CostLookup, opts ...Option) *Player {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if tr == nil {
		tr = trace.New("")
	}
	if costs == nil {
		costs = unitCost{}
	}

	return &Player{
		tr:       tr,
		costs:    costs,
		obs:      o.Observer,
		sched:    o.Scheduler,
		log:      o.Logger,
		speed:    o.Speed,
		onFinish: o.OnFinish,
	}
}

// Trace returns the trace being replayed.
func (p *Player) Trace() *trace.Trace { return p.tr }

// Len is the length of the virtual sequence events ++ path.
func (p *Player) Len() int { return p.tr.Len() }

// Cursor is the number of steps applied.
func (p *Player) Cursor() int { return p.cursor }

// Stats returns the running statistics at the cursor.
func (p *Player) Stats() trace.Stats { return p.stats }

// State returns the playback state.
func (p *Player) State() State { return p.state }

// Speed returns the current speed.
func (p *Player) Speed() int { return p.speed }

// SetSpeed changes the speed, clamped to [0, MaxSpeed]. It takes effect on
// the next frame.
func (p *Player) SetSpeed(s int) { p.speed = clampSpeed(s) }

// Start rewinds to 0, clears statistics and presenters, and plays. At
// MaxSpeed the first burst is applied immediately.
func (p *Player) Start() {
	p.cancel()
	p.cursor = 0
	p.stats = trace.Stats{}
	p.obs.OnReset()
	p.obs.OnStats(p.stats)
	p.setState(Playing)
	p.lastFrame = p.sched.Now()
	p.tick()
}

// StepForward pauses and applies the step at the cursor. Reaching the end
// finishes playback. It reports whether a step was applied.
func (p *Player) StepForward() bool {
	p.pause()
	if p.cursor >= p.Len() {
		return false
	}
	p.apply(p.cursor)
	p.cursor++
	if p.cursor >= p.Len() {
		p.end()
	}

	return true
}

// StepBackward pauses, moves the cursor back one and rebuilds every
// presenter and statistic from index 0. A finished player becomes paused
// so that stepping forward works again. It reports whether the cursor moved.
func (p *Player) StepBackward() bool {
	p.pause()
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	p.redraw(p.cursor)
	if p.state == Finished {
		p.setState(Paused)
	}

	return true
}

// Seek pauses and rebuilds the display for cursor k, clamped to
// [0, Len()]. Seeking to the end finishes playback.
func (p *Player) Seek(k int) {
	if k < 0 {
		k = 0
	}
	if k > p.Len() {
		k = p.Len()
	}
	p.pause()
	p.cursor = k
	p.redraw(k)
	switch {
	case k == p.Len():
		p.end()
	case p.state == Finished:
		p.setState(Paused)
	}
}

// TogglePause switches between Playing and Paused. Idle and Finished
// players are left alone.
func (p *Player) TogglePause() {
	switch p.state {
	case Playing:
		p.Pause()
	case Paused:
		p.Resume()
	}
}

// Pause stops the loop at the current cursor.
func (p *Player) Pause() {
	if p.state == Playing {
		p.pause()
	}
}

// Resume restarts the loop from the cursor of a paused player.
func (p *Player) Resume() {
	if p.state != Paused {
		return
	}
	p.setState(Playing)
	p.lastFrame = p.sched.Now()
	p.tick()
}

// Stop cancels the loop and any pending finish callback and returns the
// player to Idle, keeping cursor and statistics. Stop is idempotent.
func (p *Player) Stop() {
	p.cancel()
	p.setState(Idle)
}

func (p *Player) cancel() {
	if p.frame != nil {
		p.frame.Cancel()
		p.frame = nil
	}
	if p.finish != nil {
		p.finish.Cancel()
		p.finish = nil
	}
}

// pause leaves Finished alone and turns anything else into Paused.
func (p *Player) pause() {
	if p.frame != nil {
		p.frame.Cancel()
		p.frame = nil
	}
	if p.state != Finished {
		p.setState(Paused)
	}
}

func (p *Player) tick() {
	p.frame = nil
	if p.state != Playing {
		return
	}
	now := p.sched.Now()
	if now.Sub(p.lastFrame) >= Delay(p.speed) {
		p.lastFrame = now
		for n := Burst(p.speed); n > 0 && p.cursor < p.Len(); n-- {
			p.apply(p.cursor)
			p.cursor++
		}
		if p.cursor >= p.Len() {
			p.end()
			return
		}
	}
	p.frame = p.sched.Schedule(p.tick)
}

// end marks playback finished and arms the finish callback.
func (p *Player) end() {
	p.setState(Finished)
	if p.finish != nil {
		p.finish.Cancel()
	}
	p.finish = p.sched.After(FinishGrace, func() {
		p.finish = nil
		if p.cursor >= p.Len() && p.onFinish != nil {
			p.onFinish()
		}
	})
}

func (p *Player) apply(i int) {
	s, ok := StepAt(p.tr, i)
	if !ok {
		return
	}
	accumulate(&p.stats, s, p.costs)
	p.obs.OnStep(s)
	p.obs.OnStats(p.stats)
}

// redraw resets presenters and statistics and replays steps 0..k-1.
func (p *Player) redraw(k int) {
	p.stats = trace.Stats{}
	p.obs.OnReset()
	for i := 0; i < k; i++ {
		p.apply(i)
	}
	p.obs.OnStats(p.stats)
}

func (p *Player) setState(s State) {
	if p.state == s {
		return
	}
	p.log.Debug("replay state", "trace", p.tr.ID, "from", p.state, "to", s, "cursor", p.cursor)
	p.state = s
}
