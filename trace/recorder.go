package trace

import "github.com/katalvlaran/gridtrace/grid"

// Recorder accumulates events for a strategy run. It owns the parent map
// used for path reconstruction; the map lives only as long as the run.
type Recorder struct {
	t       *Trace
	parent  map[grid.Pos]grid.Pos
	onEvent func(Event)
}

// NewRecorder starts a trace for the named algorithm. onEvent, if non-nil,
// is called after each event is appended.
func NewRecorder(algorithm string, onEvent func(Event)) *Recorder {
	return &Recorder{
		t:       New(algorithm),
		parent:  make(map[grid.Pos]grid.Pos),
		onEvent: onEvent,
	}
}

func (r *Recorder) emit(e Event) {
	r.t.Events = append(r.t.Events, e)
	if r.onEvent != nil {
		r.onEvent(e)
	}
}

// Root records the start node.
func (r *Recorder) Root(n grid.Pos) {
	r.emit(Event{Kind: Root, Node: n})
}

// RootCost records the start node with a cumulative cost.
func (r *Recorder) RootCost(n grid.Pos, cumulative int) {
	r.emit(Event{Kind: Root, Node: n, CumulativeCost: cumulative, Costed: true})
}

// Frontier records the discovery of n from parent.
func (r *Recorder) Frontier(n, parent grid.Pos) {
	r.emit(Event{Kind: Frontier, Node: n, Parent: parent, HasParent: true})
}

// FrontierCost records the discovery of n from parent with its step and
// cumulative cost.
func (r *Recorder) FrontierCost(n, parent grid.Pos, step, cumulative int) {
	r.emit(Event{
		Kind: Frontier, Node: n, Parent: parent, HasParent: true,
		StepCost: step, CumulativeCost: cumulative, Costed: true,
	})
}

// Explore records the finalization of n and bumps the explored count.
func (r *Recorder) Explore(n grid.Pos) {
	r.emit(Event{Kind: Explore, Node: n})
	r.t.Stats.Explored++
}

// SetParent records that child was reached from parent, replacing any
// earlier link.
func (r *Recorder) SetParent(child, parent grid.Pos) {
	r.parent[child] = parent
}

// Finish reconstructs the path from start to end when found is true and
// fills in the final stats. cost maps each path position after the start
// to the cost of stepping onto it.
func (r *Recorder) Finish(start, end grid.Pos, found bool, cost func(grid.Pos) int) *Trace {
	if !found {
		return r.t
	}
	r.t.Path = Walk(r.parent, start, end)
	r.t.Stats.Length = len(r.t.Path) - 1
	for _, p := range r.t.Path[1:] {
		r.t.Stats.Cost += cost(p)
	}

	return r.t
}

// Trace returns the trace built so far.
func (r *Recorder) Trace() *Trace { return r.t }

// Walk follows parent links back from end to start and returns the path
// in start→end order. The walk stops early at a node without a parent.
func Walk(parent map[grid.Pos]grid.Pos, start, end grid.Pos) []grid.Pos {
	path := []grid.Pos{end}
	for cur := end; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// UnitCost charges one per hop, ignoring cell weights.
func UnitCost(grid.Pos) int { return 1 }
