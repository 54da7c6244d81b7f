package search_test

import (
	"bytes"
	"context"
	"math/rand"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/internal/gridtest"
	"github.com/katalvlaran/gridtrace/logging"
	"github.com/katalvlaran/gridtrace/search"
	"github.com/katalvlaran/gridtrace/trace"
)

var p = gridtest.P

func TestRegistry_Builtins(t *testing.T) {
	r := search.NewRegistry()
	assert.Equal(t, []string{"bfs", "dfs", "ucs"}, r.Names())

	_, err := r.Lookup("astar")
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
	assert.Contains(t, err.Error(), "astar")

	err = r.Register("bfs", func(context.Context, *grid.State) (*trace.Trace, error) { return nil, nil })
	assert.ErrorIs(t, err, search.ErrDuplicateStrategy)
	assert.Error(t, r.Register("nil", nil))
}

func TestRegistry_Custom(t *testing.T) {
	r := search.NewRegistry()
	called := false
	require.NoError(t, r.Register("noop", func(context.Context, *grid.State) (*trace.Trace, error) {
		called = true
		return trace.New("noop"), nil
	}))
	fn, err := r.Lookup("noop")
	require.NoError(t, err)
	tr, err := fn(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "noop", tr.Algorithm)
}

func TestRunner_UnknownStrategy(t *testing.T) {
	var buf bytes.Buffer
	r := search.NewRunner(search.WithLogger(logging.NewLogger(logging.Config{Output: &buf})))
	before := counter(t, "gridtrace_search_runs_total", map[string]string{"algorithm": "none", "outcome": search.OutcomeUnknown})

	tr, err := r.Run(context.Background(), "zigzag", gridtest.Open(3, 3, p(0, 0), p(2, 2)))
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
	assert.Contains(t, buf.String(), "search refused")
	assert.Equal(t, before+1, counter(t, "gridtrace_search_runs_total", map[string]string{"algorithm": "none", "outcome": search.OutcomeUnknown}))
}

func TestRunner_RecordsOutcome(t *testing.T) {
	r := search.NewRunner()
	cases := []struct {
		st      *grid.State
		outcome string
	}{
		{gridtest.Open(3, 3, p(0, 0), p(2, 2)), search.OutcomeFound},
		{grid.MustParse("S#E\n"), search.OutcomeUnreachable},
		{grid.MustParse("S..\n"), search.OutcomeNoEndpoints},
	}
	for _, tc := range cases {
		labels := map[string]string{"algorithm": "ucs", "outcome": tc.outcome}
		before := counter(t, "gridtrace_search_runs_total", labels)
		_, err := r.Run(context.Background(), "ucs", tc.st)
		require.NoError(t, err)
		assert.Equal(t, before+1, counter(t, "gridtrace_search_runs_total", labels), tc.outcome)
	}
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tr, err := search.NewRunner().Run(ctx, "bfs", gridtest.Open(4, 4, p(0, 0), p(3, 3)))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, tr)
	assert.False(t, tr.Found())
}

func TestRunner_LogsStats(t *testing.T) {
	var buf bytes.Buffer
	r := search.NewRunner(search.WithLogger(logging.NewLogger(logging.Config{Output: &buf})))
	tr, err := r.Run(context.Background(), "bfs", gridtest.Open(5, 5, p(2, 0), p(2, 4)))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "search finished")
	assert.Contains(t, out, "trace="+tr.ID)
	assert.Contains(t, out, "cost=4")
}

// TestStrategies_Agree runs all three strategies on the same random grids:
// they agree on reachability, BFS has the fewest hops and UCS the lowest
// true cost.
func TestStrategies_Agree(t *testing.T) {
	r := search.NewRunner()
	rng := rand.New(rand.NewSource(23))
	for i := 0; i < 200; i++ {
		st := gridtest.Random(rng, 2+rng.Intn(5), 2+rng.Intn(5), 0.25, 0.25)
		got := map[string]*trace.Trace{}
		for _, name := range r.Registry().Names() {
			tr, err := r.Run(context.Background(), name, st)
			require.NoError(t, err)
			assert.Equal(t, name, tr.Algorithm)
			got[name] = tr
		}
		b, d, u := got["bfs"], got["dfs"], got["ucs"]
		assert.Equal(t, b.Found(), d.Found(), "grid:\n%s", st)
		assert.Equal(t, b.Found(), u.Found(), "grid:\n%s", st)
		if !b.Found() {
			continue
		}
		assert.LessOrEqual(t, b.Stats.Length, d.Stats.Length)
		assert.LessOrEqual(t, b.Stats.Length, u.Stats.Length)
		assert.LessOrEqual(t, u.Stats.Cost, gridtest.PathCost(st, b.Path))
		assert.LessOrEqual(t, u.Stats.Cost, gridtest.PathCost(st, d.Path))
		assert.NotEqual(t, b.ID, u.ID)
	}
}

// counter reads a counter value from the default registry; 0 if absent.
func counter(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	mfs, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}
