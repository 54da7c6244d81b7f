package replay

import (
	"context"
	"errors"
	"time"
)

// DefaultFrame is the Loop tick interval, roughly one display frame.
const DefaultFrame = 16 * time.Millisecond

// ErrLoopStopped is returned by Do once Run has returned.
var ErrLoopStopped = errors.New("replay: loop stopped")

// Loop drives a FrameScheduler from a time.Ticker on a single goroutine.
// Every scheduled callback and every Do closure runs on that goroutine, so
// a Player attached to the Loop's scheduler needs no locking as long as
// callers reach it only through Do.
type Loop struct {
	sched *FrameScheduler
	frame time.Duration
	do    chan func()
	done  chan struct{}
}

// NewLoop builds a Loop ticking every frame (DefaultFrame if ≤ 0).
func NewLoop(frame time.Duration) *Loop {
	if frame <= 0 {
		frame = DefaultFrame
	}
	return &Loop{
		sched: NewFrameScheduler(time.Now),
		frame: frame,
		do:    make(chan func()),
		done:  make(chan struct{}),
	}
}

// Scheduler returns the scheduler to hand to a Player.
func (l *Loop) Scheduler() *FrameScheduler { return l.sched }

// Run ticks until ctx is cancelled and returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	tk := time.NewTicker(l.frame)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.do:
			fn()
		case <-tk.C:
			l.sched.Tick()
		}
	}
}

// Do runs fn on the loop goroutine and waits for it to return.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	ran := make(chan struct{})
	wrapped := func() {
		defer close(ran)
		fn()
	}
	select {
	case l.do <- wrapped:
	case <-l.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	<-ran

	return nil
}
