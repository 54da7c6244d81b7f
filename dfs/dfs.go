// Package dfs implements iterative depth-first search on a grid.State and
// records it as a replayable trace.
//
// The search mirrors recursive DFS with an explicit stack of
// (candidate, parent) pairs:
//
//   - A position is marked visited when it is popped, not when it is pushed,
//     so the same position may be pushed (and reported as frontier) several
//     times before it is explored. Already-visited pops are discarded
//     without an event.
//   - Neighbours are pushed in reverse enumeration order so that the first
//     direction (up) is the one popped next.
//
// Explore events are unique per position; Frontier events may repeat.
// Path cost equals hop count.
package dfs

import (
	"github.com/katalvlaran/gridtrace/frontier"
	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/trace"
)

// candidate is a stack entry: a position and the position that pushed it.
type candidate struct {
	pos       grid.Pos
	parent    grid.Pos
	hasParent bool
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	st      *grid.State
	opts    Options
	stack   frontier.Stack[candidate]
	visited []bool
	rec     *trace.Recorder
}

// Run performs depth-first search from the start to the end of st.
// A missing endpoint yields an empty trace; an unreachable end yields an
// empty path. Returns ErrGridNil for a nil state or the context error,
// along with the partial trace, when cancelled.
func Run(st *grid.State, opts ...Option) (*trace.Trace, error) {
	if st == nil {
		return nil, ErrGridNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	start, okStart := st.Start()
	end, okEnd := st.End()
	if !okStart || !okEnd {
		return trace.New(Name), nil
	}

	w := &dfsWalker{
		st:      st,
		opts:    dopts,
		visited: make([]bool, st.Rows()*st.Cols()),
		rec:     trace.NewRecorder(Name, dopts.OnEvent),
	}
	found, err := w.traverse(start, end)
	if err != nil {
		return w.rec.Trace(), err
	}

	return w.rec.Finish(start, end, found, trace.UnitCost), nil
}

func (w *dfsWalker) traverse(start, end grid.Pos) (bool, error) {
	w.stack.Push(candidate{pos: start})
	w.rec.Root(start)

	for !w.stack.Empty() {
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		c, _ := w.stack.Pop()
		idx := w.st.Index(c.pos)
		// stale: reached by another branch since it was pushed
		if w.visited[idx] {
			continue
		}
		w.visited[idx] = true
		if c.hasParent {
			w.rec.SetParent(c.pos, c.parent)
		}
		w.rec.Explore(c.pos)
		if c.pos == end {
			return true, nil
		}

		nbs := w.st.Neighbors(c.pos)
		for i := len(nbs) - 1; i >= 0; i-- {
			n := nbs[i].Pos
			if w.visited[w.st.Index(n)] {
				continue
			}
			w.rec.Frontier(n, c.pos)
			w.stack.Push(candidate{pos: n, parent: c.pos, hasParent: true})
		}
	}

	return false, nil
}
