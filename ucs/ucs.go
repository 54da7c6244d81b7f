// Package ucs implements uniform-cost search on a grid.State and records it
// as a replayable trace.
//
// Notes on implementation choices:
//
//   - The frontier is a stable min-priority queue keyed by cumulative cost;
//     among equal costs the earliest push pops first.
//   - Lazy decrease-key: an improved cost pushes a new entry and leaves the
//     old one in place. Entries whose key exceeds the best known cost are
//     discarded when popped, without emitting an event.
//   - Relaxation uses strict "<", so equal-cost alternatives never replace
//     an existing parent.
//   - The reported path cost is the sum of the costs of the cells entered
//     after the start; the length is the hop count.
package ucs

import (
	"math"

	"github.com/katalvlaran/gridtrace/frontier"
	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/trace"
)

// runner holds the mutable state for a single UCS execution.
type runner struct {
	st   *grid.State
	opts Options
	best []int // best known cumulative cost per row-major index
	pq   frontier.Priority[grid.Pos]
	rec  *trace.Recorder
}

// Run computes a minimum-cost path from the start to the end of st.
//
// Returns:
//
//   - an empty trace when the start or end is missing;
//   - a trace with an empty path and zero cost/length when the end is
//     unreachable;
//   - ErrGridNil for a nil state;
//   - the context error together with the partial trace when cancelled.
func Run(st *grid.State, opts ...Option) (*trace.Trace, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if st == nil {
		return nil, ErrGridNil
	}

	start, okStart := st.Start()
	end, okEnd := st.End()
	if !okStart || !okEnd {
		return trace.New(Name), nil
	}

	r := &runner{
		st:   st,
		opts: cfg,
		best: make([]int, st.Rows()*st.Cols()),
		rec:  trace.NewRecorder(Name, cfg.OnEvent),
	}
	r.init(start)
	found, err := r.process(end)
	if err != nil {
		return r.rec.Trace(), err
	}

	return r.rec.Finish(start, end, found, st.Cost), nil
}

// init marks every cost unbounded, seeds the start at 0 and records the root.
func (r *runner) init(start grid.Pos) {
	for i := range r.best {
		r.best[i] = math.MaxInt
	}
	r.best[r.st.Index(start)] = 0
	r.pq.Push(start, 0)
	r.rec.RootCost(start, 0)
}

// process pops the cheapest entry until the end is explored or the
// frontier drains.
func (r *runner) process(end grid.Pos) (bool, error) {
	for !r.pq.Empty() {
		select {
		case <-r.opts.Ctx.Done():
			return false, r.opts.Ctx.Err()
		default:
		}

		cur, cost, _ := r.pq.Pop()
		// stale entry from an earlier, worse push
		if cost > r.best[r.st.Index(cur)] {
			continue
		}
		r.rec.Explore(cur)
		if cur == end {
			return true, nil
		}
		r.relax(cur, cost)
	}

	return false, nil
}

// relax tries to improve every neighbour of cur, reached at cost.
func (r *runner) relax(cur grid.Pos, cost int) {
	for _, nb := range r.st.Neighbors(cur) {
		newCost := cost + nb.Cost
		idx := r.st.Index(nb.Pos)
		if newCost >= r.best[idx] {
			continue
		}
		r.best[idx] = newCost
		r.rec.SetParent(nb.Pos, cur)
		r.rec.FrontierCost(nb.Pos, cur, nb.Cost, newCost)
		// duplicates allowed; the staleness check in process filters them
		r.pq.Push(nb.Pos, newCost)
	}
}
