package simulator_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/internal/gridtest"
	"github.com/katalvlaran/gridtrace/replay"
	"github.com/katalvlaran/gridtrace/search"
	"github.com/katalvlaran/gridtrace/simulator"
	"github.com/katalvlaran/gridtrace/trace"
)

var p = gridtest.P

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newSim(t *testing.T, opts ...simulator.Option) (*simulator.Simulator, *replay.FrameScheduler, *clock) {
	t.Helper()
	c := &clock{t: time.Unix(0, 0)}
	fs := replay.NewFrameScheduler(c.now)
	opts = append([]simulator.Option{
		simulator.WithScheduler(fs),
		simulator.WithRand(rand.New(rand.NewSource(1))),
	}, opts...)
	s, err := simulator.New(opts...)
	require.NoError(t, err)
	return s, fs, c
}

// drain plays the replay to the end and past the finish grace.
func drain(s *simulator.Simulator, fs *replay.FrameScheduler, c *clock) {
	for i := 0; i < 10_000 && s.Running(); i++ {
		c.t = c.t.Add(replay.FinishGrace)
		fs.Tick()
	}
}

func TestNew_Defaults(t *testing.T) {
	s, _, _ := newSim(t)
	st := s.Grid()
	assert.Equal(t, 10, st.Rows())
	assert.Equal(t, 10, st.Cols())
	start, ok := st.Start()
	require.True(t, ok)
	assert.Equal(t, p(5, 2), start)
	end, ok := st.End()
	require.True(t, ok)
	assert.Equal(t, p(5, 8), end)
	assert.Equal(t, "bfs", s.Algorithm())
	assert.Equal(t, []string{"bfs", "dfs", "ucs"}, s.Algorithms())
	assert.Equal(t, replay.DefaultSpeed, s.Speed())
	assert.False(t, s.Running())
	assert.Nil(t, s.Player())
	assert.Equal(t, trace.Stats{}, s.Stats())

	_, err := simulator.New(simulator.WithAlgorithm("astar"))
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
	_, err = simulator.New(simulator.WithSize(0, 3))
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestSimulator_RunToFinish(t *testing.T) {
	s, fs, c := newSim(t, simulator.WithAlgorithm("ucs"), simulator.WithSpeed(100))
	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.Running())
	assert.ErrorIs(t, s.Start(context.Background()), simulator.ErrRunning)

	drain(s, fs, c)
	assert.False(t, s.Running())
	assert.Equal(t, replay.Finished, s.Player().State())
	// open 10×10 grid, (5,2) → (5,8)
	assert.Equal(t, 6, s.Stats().Cost)
	assert.Equal(t, 6, s.Stats().Length)
	assert.Equal(t, s.Stats(), s.Board().Stats())
	assert.Positive(t, s.Tree().Len())
}

func TestSimulator_EditingRefusedWhileRunning(t *testing.T) {
	s, _, _ := newSim(t)
	require.NoError(t, s.Start(context.Background()))

	assert.ErrorIs(t, s.Paint(p(0, 0), grid.ToolWall), simulator.ErrRunning)
	assert.ErrorIs(t, s.SetStart(p(0, 0)), simulator.ErrRunning)
	assert.ErrorIs(t, s.SetEnd(p(0, 0)), simulator.ErrRunning)
	assert.ErrorIs(t, s.ClearAll(), simulator.ErrRunning)
	assert.ErrorIs(t, s.GenerateWalls(), simulator.ErrRunning)
	assert.ErrorIs(t, s.ClearSimulation(), simulator.ErrRunning)
	assert.ErrorIs(t, s.SelectAlgorithm("dfs"), simulator.ErrRunning)
	assert.Equal(t, grid.Empty, s.Grid().Cell(p(0, 0)).Kind)
}

func TestSimulator_MissingEndpoint(t *testing.T) {
	s, _, _ := newSim(t)
	st := grid.MustParse("S...\n....\n")
	require.NoError(t, s.LoadGrid(st))
	assert.ErrorIs(t, s.Start(context.Background()), simulator.ErrMissingEndpoint)
	assert.False(t, s.Running())
}

func TestSimulator_SelectAlgorithm(t *testing.T) {
	s, _, _ := newSim(t)
	assert.ErrorIs(t, s.SelectAlgorithm("greedy"), search.ErrUnknownStrategy)
	assert.Equal(t, "bfs", s.Algorithm())
	require.NoError(t, s.SelectAlgorithm("dfs"))
	assert.Equal(t, "dfs", s.Algorithm())
}

func TestSimulator_StepControls(t *testing.T) {
	s, fs, c := newSim(t, simulator.WithSpeed(100))
	assert.False(t, s.StepForward(), "no simulation yet")
	assert.False(t, s.StepBackward())

	require.NoError(t, s.Start(context.Background()))
	drain(s, fs, c)
	require.False(t, s.Running())
	n := s.Player().Len()

	// stepping back from a finished replay resumes the simulation
	assert.True(t, s.StepBackward())
	assert.True(t, s.Running())
	assert.Equal(t, n-1, s.Player().Cursor())
	assert.Equal(t, replay.StatsAt(s.Player().Trace(), s.Grid(), n-1), s.Stats())

	s.Seek(3)
	assert.Equal(t, 3, s.Player().Cursor())
	s.SetSpeed(50)
	s.TogglePause()
	assert.Equal(t, replay.Playing, s.Player().State())
	s.TogglePause()
	assert.Equal(t, replay.Paused, s.Player().State())

	assert.True(t, s.StepForward())
	assert.Equal(t, 4, s.Player().Cursor())

	s.Seek(n)
	drain(s, fs, c)
	assert.False(t, s.Running())
	require.NoError(t, s.ClearSimulation())
	assert.Nil(t, s.Player())
	assert.Equal(t, trace.Stats{}, s.Board().Stats())
}

func TestSimulator_SetSpeed(t *testing.T) {
	s, _, _ := newSim(t)
	s.SetSpeed(140)
	assert.Equal(t, 100, s.Speed())
	require.NoError(t, s.Start(context.Background()))
	s.SetSpeed(-2)
	assert.Equal(t, 0, s.Speed())
	assert.Equal(t, 0, s.Player().Speed())
}

func TestSimulator_GenerateMaze(t *testing.T) {
	s, _, _ := newSim(t)
	start, _ := s.Grid().Start()
	end, _ := s.Grid().End()

	require.NoError(t, s.GenerateMixed())
	st := s.Grid()
	walls, mud := 0, 0
	for r := 0; r < st.Rows(); r++ {
		for c := 0; c < st.Cols(); c++ {
			switch st.Cell(p(r, c)).Kind {
			case grid.Wall:
				walls++
			case grid.Mud:
				mud++
			}
		}
	}
	assert.Positive(t, walls)
	assert.Positive(t, mud)
	gotStart, _ := st.Start()
	gotEnd, _ := st.End()
	assert.Equal(t, start, gotStart)
	assert.Equal(t, end, gotEnd)

	require.NoError(t, s.GenerateWalls())
	assert.ErrorIs(t, s.GenerateMaze(0.8, 0.5), grid.ErrInvalidProbability)

	require.NoError(t, s.ClearAll())
	require.NoError(t, s.Paint(p(0, 0), grid.ToolMud))
	assert.Equal(t, grid.Mud, s.Grid().Cell(p(0, 0)).Kind)
}

func TestSimulator_ExtraObserver(t *testing.T) {
	var steps, resets int
	obs := replay.Funcs{
		Reset: func() { resets++ },
		Step:  func(replay.Step) { steps++ },
	}
	s, _, _ := newSim(t, simulator.WithObserver(obs))
	require.NoError(t, s.Start(context.Background()))
	s.StepForward()
	s.StepForward()
	assert.Equal(t, 2, steps)
	assert.Positive(t, resets)
}
