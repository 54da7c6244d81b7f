package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Glyphs of the ASCII grid format. Digits '2'..'9' denote mud with that cost.
const (
	GlyphEmpty = '.'
	GlyphWall  = '#'
	GlyphMud   = '~'
	GlyphStart = 'S'
	GlyphEnd   = 'E'
)

// Parse reads an ASCII grid, one row per line. Blank lines and lines
// starting with "//" are ignored; trailing whitespace is trimmed.
func Parse(r io.Reader) (*State, error) {
	var (
		cells      [][]Cell
		start, end *Pos
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		row := make([]Cell, 0, len(line))
		for col, ch := range []rune(line) {
			p := Pos{len(cells), col}
			switch {
			case ch == GlyphEmpty:
				row = append(row, CellOf(Empty))
			case ch == GlyphWall:
				row = append(row, CellOf(Wall))
			case ch == GlyphMud:
				row = append(row, CellOf(Mud))
			case ch >= '2' && ch <= '9':
				row = append(row, Cell{Kind: Mud, Cost: int(ch - '0')})
			case ch == GlyphStart:
				start = &p
				row = append(row, CellOf(Start))
			case ch == GlyphEnd:
				end = &p
				row = append(row, CellOf(End))
			default:
				return nil, fmt.Errorf("%w %q at %s", ErrBadGlyph, ch, p)
			}
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}

	return NewState(cells, start, end)
}

// ParseString is Parse over a string literal.
func ParseString(s string) (*State, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is ParseString that panics on error; meant for tests and examples.
func MustParse(s string) *State {
	st, err := ParseString(s)
	if err != nil {
		panic(err)
	}

	return st
}

// Glyph returns the ASCII glyph for c.
func Glyph(c Cell) rune {
	switch c.Kind {
	case Wall:
		return GlyphWall
	case Start:
		return GlyphStart
	case End:
		return GlyphEnd
	case Mud:
		if c.Cost >= 2 && c.Cost <= 9 && c.Cost != CostMud {
			return rune('0' + c.Cost)
		}
		return GlyphMud
	default:
		return GlyphEmpty
	}
}

// String renders the state in the ASCII grid format accepted by Parse.
func (s *State) String() string {
	var b strings.Builder
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			b.WriteRune(Glyph(s.cells[r][c]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
