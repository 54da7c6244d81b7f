package replay

import "github.com/katalvlaran/gridtrace/trace"

// StepAt resolves index i of the virtual sequence events ++ path.
// ok is false when i is out of range.
func StepAt(tr *trace.Trace, i int) (s Step, ok bool) {
	if i < 0 || i >= tr.Len() {
		return Step{}, false
	}
	if i < len(tr.Events) {
		e := tr.Events[i]
		return Step{Index: i, Role: roleOf(e.Kind), Event: e, Node: e.Node, PathIndex: -1}, true
	}
	pi := i - len(tr.Events)

	return Step{Index: i, Role: RolePath, Node: tr.Path[pi], PathIndex: pi}, true
}

func roleOf(k trace.Kind) Role {
	switch k {
	case trace.Frontier:
		return RoleFrontier
	case trace.Explore:
		return RoleExplore
	default:
		return RoleRoot
	}
}

// accumulate folds one step into st.
func accumulate(st *trace.Stats, s Step, costs CostLookup) {
	switch s.Role {
	case RoleExplore:
		st.Explored++
	case RolePath:
		// the start cell is free
		if s.PathIndex > 0 {
			st.Length++
			st.Cost += costs.Cost(s.Node)
		}
	}
}

// StatsAt derives the running statistics after the first k steps from
// scratch. k is clamped to [0, tr.Len()].
//
// The replayed cost always sums cell costs along the path. For a ucs trace
// StatsAt(tr, st, tr.Len()) therefore equals tr.Stats; for bfs and dfs the
// two differ on weighted paths, since those strategies report hop counts.
func StatsAt(tr *trace.Trace, costs CostLookup, k int) trace.Stats {
	if k > tr.Len() {
		k = tr.Len()
	}
	var st trace.Stats
	for i := 0; i < k; i++ {
		s, _ := StepAt(tr, i)
		accumulate(&st, s, costs)
	}

	return st
}
