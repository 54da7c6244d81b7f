//go:build ebiten

package viewer

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/logging"
	"github.com/katalvlaran/gridtrace/replay"
	"github.com/katalvlaran/gridtrace/simulator"
)

// statusHeight is the text strip under the grid.
const statusHeight = 32

// Game adapts a simulator.Simulator to the ebiten.Game interface.
//
// Keys: Space start/pause, ←/→ step, ↑/↓ speed, 1-3 strategy, W walls
// maze, M mixed maze, C clear overlay, X clear grid, Q quit.
// Mouse: left wall, right mud, middle erase; with Shift set start, with
// Ctrl set end.
type Game struct {
	sim   *simulator.Simulator
	sched *replay.FrameScheduler
	log   logging.Logger
	scale int

	img  *ebiten.Image
	buf  []byte
	note string
}

// New builds the simulator for cfg and wraps it in a Game.
func New(cfg *Config, log logging.Logger) (*Game, error) {
	sched := replay.NewFrameScheduler(time.Now)
	sim, err := simulator.New(
		simulator.WithSize(cfg.Rows, cfg.Cols),
		simulator.WithAlgorithm(cfg.Algo),
		simulator.WithSpeed(cfg.Speed),
		simulator.WithScheduler(sched),
		simulator.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	return &Game{
		sim:   sim,
		sched: sched,
		log:   logging.OrNop(log),
		scale: cfg.Scale,
		img:   ebiten.NewImage(cfg.Cols, cfg.Rows),
		buf:   make([]byte, 4*cfg.Rows*cfg.Cols),
	}, nil
}

// Update handles input and advances the replay by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.keys()
	g.mouse()
	g.sched.Tick()
	return nil
}

func (g *Game) keys() {
	s := g.sim
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if s.Player() == nil || (!s.Running() && s.Player().State() == replay.Finished) {
			g.report(s.Start(context.Background()))
		} else {
			s.TogglePause()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		s.StepForward()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		s.StepBackward()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		s.SetSpeed(s.Speed() + 10)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		s.SetSpeed(s.Speed() - 10)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		g.report(s.SelectAlgorithm("bfs"))
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		g.report(s.SelectAlgorithm("dfs"))
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		g.report(s.SelectAlgorithm("ucs"))
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		g.report(s.GenerateWalls())
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.report(s.GenerateMixed())
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.report(s.ClearSimulation())
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.report(s.ClearAll())
	}
}

func (g *Game) mouse() {
	var tool grid.Tool
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		tool = grid.ToolWall
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		tool = grid.ToolMud
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		tool = grid.ToolErase
	default:
		return
	}
	x, y := ebiten.CursorPosition()
	p := grid.Pos{Row: y / g.scale, Col: x / g.scale}
	st := g.sim.Grid()
	if !st.InBounds(p) {
		return
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyShift):
		g.report(g.sim.SetStart(p))
	case ebiten.IsKeyPressed(ebiten.KeyControl):
		g.report(g.sim.SetEnd(p))
	case st.Cell(p).Kind == grid.Start || st.Cell(p).Kind == grid.End:
	default:
		g.report(g.sim.Paint(p, tool))
	}
}

// report keeps the last error as the status note.
func (g *Game) report(err error) {
	if err != nil {
		g.note = err.Error()
		g.log.Warn("action refused", "error", err)
		return
	}
	g.note = ""
}

// Draw renders the grid, overlay and status strip.
func (g *Game) Draw(screen *ebiten.Image) {
	st := g.sim.Grid()
	FillRGBA(g.buf, st, g.sim.Board())
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)

	stats := g.sim.Stats()
	state := "idle"
	if p := g.sim.Player(); p != nil {
		state = p.State().String()
	}
	msg := fmt.Sprintf("%s  %s  speed %d  explored %d  cost %d  length %d",
		g.sim.Algorithm(), state, g.sim.Speed(), stats.Explored, stats.Cost, stats.Length)
	if g.note != "" {
		msg += "\n" + g.note
	}
	ebitenutil.DebugPrintAt(screen, msg, 4, st.Rows()*g.scale+2)
}

// Layout returns the logical screen size.
func (g *Game) Layout(int, int) (int, int) {
	st := g.sim.Grid()
	return st.Cols() * g.scale, st.Rows()*g.scale + statusHeight
}
