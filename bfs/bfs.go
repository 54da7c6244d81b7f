// Package bfs implements breadth-first search on a grid.State and records
// the search as a replayable trace.
//
// BFS explores positions in non-decreasing hop distance from the start.
// Positions are marked visited when they are discovered, so each one is
// reported as frontier at most once and explored at most once. Cell weights
// are ignored: the reported path cost equals its hop count.
package bfs

import (
	"github.com/katalvlaran/gridtrace/frontier"
	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/trace"
)

// walker encapsulates mutable BFS state for one invocation.
type walker struct {
	st      *grid.State
	opts    Options
	queue   frontier.Queue[grid.Pos]
	visited []bool
	rec     *trace.Recorder
}

// Run executes breadth-first search from the start to the end of st.
//
// A missing start or end yields an empty trace and no error. An unreachable
// end yields a trace with an empty path and zero cost and length.
// Returns ErrGridNil for a nil state, or the context error (with the
// partial trace) when cancelled.
func Run(st *grid.State, opts ...Option) (*trace.Trace, error) {
	if st == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start, okStart := st.Start()
	end, okEnd := st.End()
	if !okStart || !okEnd {
		return trace.New(Name), nil
	}

	w := &walker{
		st:      st,
		opts:    o,
		visited: make([]bool, st.Rows()*st.Cols()),
		rec:     trace.NewRecorder(Name, o.OnEvent),
	}
	found, err := w.loop(start, end)
	if err != nil {
		return w.rec.Trace(), err
	}

	return w.rec.Finish(start, end, found, trace.UnitCost), nil
}

// loop processes the queue until the end is explored, the queue drains,
// or the context is cancelled.
func (w *walker) loop(start, end grid.Pos) (bool, error) {
	w.visited[w.st.Index(start)] = true
	w.queue.Enqueue(start)
	w.rec.Root(start)

	for !w.queue.Empty() {
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		cur, _ := w.queue.Dequeue()
		w.rec.Explore(cur)
		if cur == end {
			return true, nil
		}
		for _, nb := range w.st.Neighbors(cur) {
			if w.visited[w.st.Index(nb.Pos)] {
				continue
			}
			// visited at discovery: no position enters the queue twice
			w.visited[w.st.Index(nb.Pos)] = true
			w.rec.SetParent(nb.Pos, cur)
			w.rec.Frontier(nb.Pos, cur)
			w.queue.Enqueue(nb.Pos)
		}
	}

	return false, nil
}
