package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/trace"
)

func pos(r, c int) grid.Pos { return grid.Pos{Row: r, Col: c} }

func TestNew_Empty(t *testing.T) {
	a := trace.New("bfs")
	b := trace.New("bfs")
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Empty(t, a.Events)
	assert.Empty(t, a.Path)
	assert.Equal(t, trace.Stats{}, a.Stats)
	assert.False(t, a.Found())
	assert.Equal(t, 0, a.Len())
}

func TestWalk(t *testing.T) {
	parent := map[grid.Pos]grid.Pos{
		pos(0, 1): pos(0, 0),
		pos(0, 2): pos(0, 1),
		pos(1, 2): pos(0, 2),
	}
	assert.Equal(t,
		[]grid.Pos{pos(0, 0), pos(0, 1), pos(0, 2), pos(1, 2)},
		trace.Walk(parent, pos(0, 0), pos(1, 2)))
	assert.Equal(t, []grid.Pos{pos(3, 3)}, trace.Walk(parent, pos(3, 3), pos(3, 3)))
}

func TestRecorder_Finish(t *testing.T) {
	var seen []trace.Kind
	r := trace.NewRecorder("ucs", func(e trace.Event) { seen = append(seen, e.Kind) })
	r.RootCost(pos(0, 0), 0)
	r.Explore(pos(0, 0))
	r.FrontierCost(pos(0, 1), pos(0, 0), 5, 5)
	r.SetParent(pos(0, 1), pos(0, 0))
	r.Explore(pos(0, 1))

	costs := map[grid.Pos]int{pos(0, 1): 5}
	tr := r.Finish(pos(0, 0), pos(0, 1), true, func(p grid.Pos) int { return costs[p] })

	assert.Equal(t, []trace.Kind{trace.Root, trace.Explore, trace.Frontier, trace.Explore}, seen)
	assert.Equal(t, []grid.Pos{pos(0, 0), pos(0, 1)}, tr.Path)
	assert.Equal(t, trace.Stats{Explored: 2, Cost: 5, Length: 1}, tr.Stats)
	assert.Equal(t, 6, tr.Len())
	assert.Equal(t, 2, tr.Count(trace.Explore))
	assert.Equal(t, []grid.Pos{pos(0, 1)}, tr.Nodes(trace.Frontier))
}

func TestRecorder_NotFound(t *testing.T) {
	r := trace.NewRecorder("bfs", nil)
	r.Root(pos(0, 0))
	r.Explore(pos(0, 0))
	tr := r.Finish(pos(0, 0), pos(5, 5), false, trace.UnitCost)

	require.NotNil(t, tr.Path)
	assert.Empty(t, tr.Path)
	assert.Equal(t, trace.Stats{Explored: 1}, tr.Stats)
}

func TestEvent_String(t *testing.T) {
	cases := []struct {
		ev   trace.Event
		want string
	}{
		{trace.Event{Kind: trace.Root, Node: pos(2, 0)}, "root (2,0)"},
		{trace.Event{Kind: trace.Root, Node: pos(2, 0), Costed: true}, "root (2,0)=0"},
		{trace.Event{Kind: trace.Explore, Node: pos(1, 1)}, "explore (1,1)"},
		{trace.Event{Kind: trace.Frontier, Node: pos(1, 2), Parent: pos(1, 1), HasParent: true}, "frontier (1,2)<-(1,1)"},
		{trace.Event{Kind: trace.Frontier, Node: pos(1, 2), Parent: pos(1, 1), HasParent: true,
			StepCost: 5, CumulativeCost: 7, Costed: true}, "frontier (1,2)<-(1,1) +5=7"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.ev.String())
	}
	assert.Equal(t, "kind(9)", trace.Kind(9).String())
}
