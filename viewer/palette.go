// Package viewer is the optional ebiten front end of the simulator. The
// GUI itself needs the ebiten build tag; the pixel mapping and the
// configuration are tag-free so they can be tested headless.
package viewer

import (
	"flag"
	"image/color"

	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/render"
)

// Palette colours, one per visual cell class.
var (
	ColorEmpty    = color.RGBA{0xf4, 0xf4, 0xf5, 0xff}
	ColorWall     = color.RGBA{0x27, 0x27, 0x2a, 0xff}
	ColorMud      = color.RGBA{0x8b, 0x5a, 0x2b, 0xff}
	ColorStart    = color.RGBA{0x16, 0xa3, 0x4a, 0xff}
	ColorEnd      = color.RGBA{0xdc, 0x26, 0x26, 0xff}
	ColorFrontier = color.RGBA{0x67, 0xe8, 0xf9, 0xff}
	ColorExplored = color.RGBA{0x3b, 0x82, 0xf6, 0xff}
	ColorPath     = color.RGBA{0xfa, 0xcc, 0x15, 0xff}
)

// CellColor returns the colour of p: the overlay when the board marks
// it, the cell kind otherwise. board may be nil for a bare grid.
func CellColor(st *grid.State, board *render.Board, p grid.Pos) color.RGBA {
	if board != nil {
		switch board.Mark(p) {
		case render.MarkFrontier:
			return ColorFrontier
		case render.MarkExplored:
			return ColorExplored
		case render.MarkPath:
			return ColorPath
		}
	}
	switch st.Cell(p).Kind {
	case grid.Wall:
		return ColorWall
	case grid.Mud:
		return ColorMud
	case grid.Start:
		return ColorStart
	case grid.End:
		return ColorEnd
	default:
		return ColorEmpty
	}
}

// FillRGBA writes one RGBA pixel per cell of st into buf, row-major.
// buf must hold 4·rows·cols bytes.
func FillRGBA(buf []byte, st *grid.State, board *render.Board) {
	for r := 0; r < st.Rows(); r++ {
		for c := 0; c < st.Cols(); c++ {
			col := CellColor(st, board, grid.Pos{Row: r, Col: c})
			base := (r*st.Cols() + c) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// Config represents the command-line parameters of the GUI.
type Config struct {
	Rows  int
	Cols  int
	Scale int
	Algo  string
	Speed int
	Seed  int64
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{Rows: 20, Cols: 30, Scale: 24, Algo: "bfs", Speed: 50, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.StringVar(&c.Algo, "algo", c.Algo, "initial strategy: bfs, dfs or ucs")
	fs.IntVar(&c.Speed, "speed", c.Speed, "replay speed 0-100")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for maze generation")
}
