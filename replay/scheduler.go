package replay

import (
	"sort"
	"time"
)

// Handle cancels a scheduled callback. Cancel after the callback ran is a
// no-op.
type Handle interface {
	Cancel()
}

// Scheduler is the Player's time source and frame queue.
type Scheduler interface {
	// Now returns the scheduler's current time.
	Now() time.Time
	// Schedule runs fn on the next frame.
	Schedule(fn func()) Handle
	// After runs fn on the first frame at or after Now()+d.
	After(d time.Duration, fn func()) Handle
}

type task struct {
	fn        func()
	at        time.Time
	seq       uint64
	cancelled bool
}

func (t *task) Cancel() { t.cancelled = true }

// FrameScheduler is a pollable Scheduler: nothing runs until Tick. Frame
// tasks scheduled during a Tick run on the following Tick. It is not safe
// for concurrent use; drive it from one goroutine (a Loop, or ebiten's
// Update).
type FrameScheduler struct {
	now    func() time.Time
	frame  []*task
	timers []*task
	seq    uint64
}

// NewFrameScheduler builds a FrameScheduler reading time from now. A nil
// now means time.Now.
func NewFrameScheduler(now func() time.Time) *FrameScheduler {
	if now == nil {
		now = time.Now
	}
	return &FrameScheduler{now: now}
}

// Now implements Scheduler.
func (f *FrameScheduler) Now() time.Time { return f.now() }

// Schedule implements Scheduler.
func (f *FrameScheduler) Schedule(fn func()) Handle {
	t := f.newTask(fn, time.Time{})
	f.frame = append(f.frame, t)
	return t
}

// After implements Scheduler.
func (f *FrameScheduler) After(d time.Duration, fn func()) Handle {
	t := f.newTask(fn, f.now().Add(d))
	f.timers = append(f.timers, t)
	return t
}

func (f *FrameScheduler) newTask(fn func(), at time.Time) *task {
	f.seq++
	return &task{fn: fn, at: at, seq: f.seq}
}

// Pending reports how many uncancelled tasks wait to run.
func (f *FrameScheduler) Pending() int {
	n := 0
	for _, t := range f.frame {
		if !t.cancelled {
			n++
		}
	}
	for _, t := range f.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Tick runs due timers in deadline order, then every frame task queued
// before this call. It returns the number of callbacks run.
func (f *FrameScheduler) Tick() int {
	now := f.now()
	ran := 0

	var due, later []*task
	for _, t := range f.timers {
		switch {
		case t.cancelled:
		case !t.at.After(now):
			due = append(due, t)
		default:
			later = append(later, t)
		}
	}
	f.timers = later
	sort.Slice(due, func(i, j int) bool {
		if due[i].at.Equal(due[j].at) {
			return due[i].seq < due[j].seq
		}
		return due[i].at.Before(due[j].at)
	})
	for _, t := range due {
		if !t.cancelled {
			t.cancelled = true
			t.fn()
			ran++
		}
	}

	batch := f.frame
	f.frame = nil
	for _, t := range batch {
		if !t.cancelled {
			t.cancelled = true
			t.fn()
			ran++
		}
	}

	return ran
}
