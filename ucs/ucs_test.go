package ucs_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/internal/gridtest"
	"github.com/katalvlaran/gridtrace/trace"
	"github.com/katalvlaran/gridtrace/ucs"
)

var p = gridtest.P

func TestUCS_NilGrid(t *testing.T) {
	_, err := ucs.Run(nil)
	assert.ErrorIs(t, err, ucs.ErrGridNil)
}

func TestUCS_MissingStart(t *testing.T) {
	tr, err := ucs.Run(grid.MustParse("..E\n"))
	require.NoError(t, err)
	assert.Empty(t, tr.Events)
	assert.Equal(t, ucs.Name, tr.Algorithm)
}

func TestUCS_Scenarios(t *testing.T) {
	open := gridtest.Open(5, 5, p(2, 0), p(2, 4))
	cases := []struct {
		name   string
		st     *grid.State
		cost   int
		length int
		avoid  bool
	}{
		{"open", open, 4, 4, false},
		{"wall", gridtest.Paint(open, grid.ToolWall, p(2, 2)), 6, 6, true},
		// direct route through mud costs 1+5+1+1 = 8, the detour 6
		{"mud", gridtest.Paint(open, grid.ToolMud, p(2, 2)), 6, 6, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := ucs.Run(tc.st)
			require.NoError(t, err)
			assert.Equal(t, tc.cost, tr.Stats.Cost)
			assert.Equal(t, tc.length, tr.Stats.Length)
			assert.Equal(t, tc.cost, gridtest.PathCost(tc.st, tr.Path))
			if tc.avoid {
				assert.NotContains(t, tr.Path, p(2, 2))
			}
		})
	}
}

// TestUCS_CostedEvents pins the cost annotations of root and frontier events.
func TestUCS_CostedEvents(t *testing.T) {
	st := grid.MustParse("S~\n.E\n")
	tr, err := ucs.Run(st)
	require.NoError(t, err)

	got := make([]string, len(tr.Events))
	for i, e := range tr.Events {
		got[i] = e.String()
	}
	assert.Equal(t, []string{
		"root (0,0)=0",
		"explore (0,0)",
		"frontier (0,1)<-(0,0) +5=5",
		"frontier (1,0)<-(0,0) +1=1",
		"explore (1,0)",
		"frontier (1,1)<-(1,0) +1=2",
		"explore (1,1)",
	}, got)
	assert.Equal(t, trace.Stats{Explored: 3, Cost: 2, Length: 2}, tr.Stats)
}

// TestUCS_StartNotReopened checks that the start, known at cost 0, is never
// relaxed again by its neighbours.
func TestUCS_StartNotReopened(t *testing.T) {
	st := gridtest.Open(3, 3, p(1, 1), p(0, 0))
	tr, err := ucs.Run(st)
	require.NoError(t, err)
	for _, e := range tr.Events {
		if e.Kind == trace.Frontier {
			assert.NotEqual(t, p(1, 1), e.Node)
		}
	}
}

func TestUCS_OptimalOnRandomGrids(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 300; i++ {
		rows, cols := 1+rng.Intn(6), 2+rng.Intn(5)
		st := gridtest.Random(rng, rows, cols, 0.25, 0.3)
		tr, err := ucs.Run(st)
		require.NoError(t, err)

		want, ok := gridtest.MinCost(st)
		if !ok {
			assert.Empty(t, tr.Path, "grid:\n%s", st)
			assert.Zero(t, tr.Stats.Cost)
			continue
		}
		assert.Equal(t, want, tr.Stats.Cost, "grid:\n%s", st)
		assert.Equal(t, want, gridtest.PathCost(st, tr.Path))
		assert.Equal(t, len(tr.Path)-1, tr.Stats.Length)
		assert.True(t, gridtest.Contiguous(tr.Path))

		// explore order is non-decreasing in cost
		last := -1
		costs := map[grid.Pos]int{}
		for _, e := range tr.Events {
			if e.Costed {
				if c, seen := costs[e.Node]; !seen || e.CumulativeCost < c {
					costs[e.Node] = e.CumulativeCost
				}
			}
			if e.Kind == trace.Explore {
				assert.GreaterOrEqual(t, costs[e.Node], last)
				last = costs[e.Node]
			}
		}
	}
}

func TestUCS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tr, err := ucs.Run(gridtest.Open(4, 4, p(0, 0), p(3, 3)), ucs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, tr.Events, 1)
}

func BenchmarkUCS_Maze(b *testing.B) {
	g, err := grid.NewGrid(60, 80)
	require.NoError(b, err)
	require.NoError(b, g.RandomMaze(grid.MixedWallProb, grid.MixedMudProb, grid.WithSeed(1)))
	st := g.Snapshot()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ucs.Run(st)
	}
}
