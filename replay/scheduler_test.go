package replay_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridtrace/replay"
)

// clock is a manual time source.
type clock struct{ t time.Time }

func newClock() *clock { return &clock{t: time.Unix(1_700_000_000, 0)} }

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFrameScheduler_FrameTasksRunNextTick(t *testing.T) {
	fs := replay.NewFrameScheduler(newClock().now)
	var order []string
	fs.Schedule(func() {
		order = append(order, "a")
		fs.Schedule(func() { order = append(order, "c") })
	})
	fs.Schedule(func() { order = append(order, "b") })

	assert.Equal(t, 2, fs.Tick())
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, 1, fs.Pending())
	assert.Equal(t, 1, fs.Tick())
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 0, fs.Tick())
}

func TestFrameScheduler_After(t *testing.T) {
	c := newClock()
	fs := replay.NewFrameScheduler(c.now)
	var order []int
	fs.After(30*time.Millisecond, func() { order = append(order, 30) })
	fs.After(10*time.Millisecond, func() { order = append(order, 10) })
	h := fs.After(20*time.Millisecond, func() { order = append(order, 20) })
	h.Cancel()

	c.advance(5 * time.Millisecond)
	fs.Tick()
	assert.Empty(t, order)

	c.advance(30 * time.Millisecond)
	fs.Tick()
	assert.Equal(t, []int{10, 30}, order)
	assert.Equal(t, 0, fs.Pending())
	h.Cancel()
}

func TestLoop_DoAndStop(t *testing.T) {
	l := replay.NewLoop(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()

	n := 0
	require.NoError(t, l.Do(context.Background(), func() { n++ }))
	require.NoError(t, l.Do(context.Background(), func() { n++ }))
	assert.Equal(t, 2, n)

	fired := make(chan struct{})
	require.NoError(t, l.Do(context.Background(), func() {
		l.Scheduler().After(2*time.Millisecond, func() { close(fired) })
	}))
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}

	cancel()
	assert.ErrorIs(t, <-errc, context.Canceled)
	assert.ErrorIs(t, l.Do(context.Background(), func() {}), replay.ErrLoopStopped)
}
