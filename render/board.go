// Package render holds headless presenters for a replay: a cell board and
// a search tree. Both implement replay.Observer and render to text; the
// GUI viewer reads their state to paint pixels.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/replay"
	"github.com/katalvlaran/gridtrace/trace"
)

// Mark is the search overlay of one cell.
type Mark uint8

const (
	MarkNone Mark = iota
	MarkFrontier
	MarkExplored
	MarkPath
)

func (m Mark) String() string {
	switch m {
	case MarkFrontier:
		return "frontier"
	case MarkExplored:
		return "explored"
	case MarkPath:
		return "path"
	default:
		return "none"
	}
}

// Overlay glyphs drawn over passable cells.
const (
	GlyphFrontier = '+'
	GlyphExplored = 'o'
	GlyphPath     = '*'
)

var (
	wallStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	mudStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	endpointStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	frontierStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	exploredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	pathStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	statsStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Board tracks per-cell overlay marks and the running stats of a replay.
// Endpoints never take a mark, so they keep their glyph.
type Board struct {
	st    *grid.State
	marks []Mark
	stats trace.Stats
}

var _ replay.Observer = (*Board)(nil)

// NewBoard returns an unmarked board over st.
func NewBoard(st *grid.State) *Board {
	return &Board{st: st, marks: make([]Mark, st.Rows()*st.Cols())}
}

// State returns the grid the board draws.
func (b *Board) State() *grid.State { return b.st }

// Mark returns the overlay at p.
func (b *Board) Mark(p grid.Pos) Mark {
	if !b.st.InBounds(p) {
		return MarkNone
	}
	return b.marks[b.st.Index(p)]
}

// Stats returns the last stats notification.
func (b *Board) Stats() trace.Stats { return b.stats }

// OnReset clears every mark and the stats.
func (b *Board) OnReset() {
	for i := range b.marks {
		b.marks[i] = MarkNone
	}
	b.stats = trace.Stats{}
}

// OnStep marks the step's cell: frontier only on an unmarked cell,
// explored over frontier, path over anything.
func (b *Board) OnStep(s replay.Step) {
	if !b.st.InBounds(s.Node) || b.isEndpoint(s.Node) {
		return
	}
	i := b.st.Index(s.Node)
	switch s.Role {
	case replay.RoleFrontier:
		if b.marks[i] == MarkNone {
			b.marks[i] = MarkFrontier
		}
	case replay.RoleExplore:
		if b.marks[i] != MarkPath {
			b.marks[i] = MarkExplored
		}
	case replay.RolePath:
		b.marks[i] = MarkPath
	}
}

// OnStats stores the running totals.
func (b *Board) OnStats(st trace.Stats) { b.stats = st }

func (b *Board) isEndpoint(p grid.Pos) bool {
	if s, ok := b.st.Start(); ok && s == p {
		return true
	}
	if e, ok := b.st.End(); ok && e == p {
		return true
	}
	return false
}

// Glyph returns the character drawn at p: the overlay glyph when marked,
// the ASCII cell glyph otherwise.
func (b *Board) Glyph(p grid.Pos) rune {
	switch b.Mark(p) {
	case MarkFrontier:
		return GlyphFrontier
	case MarkExplored:
		return GlyphExplored
	case MarkPath:
		return GlyphPath
	}
	return grid.Glyph(b.st.Cell(p))
}

// Plain renders the board without styling, one row per line, followed by
// the stats line.
func (b *Board) Plain() string { return b.render(false) }

// String renders the board with terminal colours.
func (b *Board) String() string { return b.render(true) }

func (b *Board) render(styled bool) string {
	var sb strings.Builder
	for r := 0; r < b.st.Rows(); r++ {
		for c := 0; c < b.st.Cols(); c++ {
			p := grid.Pos{Row: r, Col: c}
			g := string(b.Glyph(p))
			if styled {
				g = b.style(p).Render(g)
			}
			sb.WriteString(g)
		}
		sb.WriteByte('\n')
	}
	line := StatsLine(b.stats)
	if styled {
		line = statsStyle.Render(line)
	}
	sb.WriteString(line)
	sb.WriteByte('\n')

	return sb.String()
}

func (b *Board) style(p grid.Pos) lipgloss.Style {
	switch b.Mark(p) {
	case MarkFrontier:
		return frontierStyle
	case MarkExplored:
		return exploredStyle
	case MarkPath:
		return pathStyle
	}
	switch b.st.Cell(p).Kind {
	case grid.Wall:
		return wallStyle
	case grid.Mud:
		return mudStyle
	case grid.Start, grid.End:
		return endpointStyle
	default:
		return emptyStyle
	}
}

// StatsLine formats stats as "explored=E cost=C length=L".
func StatsLine(st trace.Stats) string {
	return fmt.Sprintf("explored=%d cost=%d length=%d", st.Explored, st.Cost, st.Length)
}
