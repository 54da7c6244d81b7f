package grid

// Tool selects what Paint writes into a cell.
type Tool int

const (
	// ToolWall paints an impassable wall.
	ToolWall Tool = iota
	// ToolMud paints a mud cell with CostMud.
	ToolMud
	// ToolErase resets a cell to empty.
	ToolErase
)

// Grid is the mutable counterpart of State, used by editing collaborators.
// It is not safe for concurrent use.
type Grid struct {
	rows, cols int
	cells      [][]Cell
	start, end *Pos
}

// NewGrid allocates an all-empty rows×cols grid with the default endpoints
// (rows/2, cols/5) and (rows/2, cols*4/5).
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{rows: rows, cols: cols, cells: make([][]Cell, rows)}
	for r := range g.cells {
		g.cells[r] = make([]Cell, cols)
		for c := range g.cells[r] {
			g.cells[r][c] = CellOf(Empty)
		}
	}
	mid := rows / 2
	_ = g.SetStart(Pos{mid, cols / 5})
	_ = g.SetEnd(Pos{mid, cols * 4 / 5})

	return g, nil
}

// FromState returns an editable copy of s.
func FromState(s *State) *Grid {
	g := &Grid{rows: s.rows, cols: s.cols, cells: make([][]Cell, s.rows)}
	for r := range s.cells {
		g.cells[r] = make([]Cell, s.cols)
		copy(g.cells[r], s.cells[r])
	}
	if p, ok := s.Start(); ok {
		g.start = &p
	}
	if p, ok := s.End(); ok {
		g.end = &p
	}

	return g
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// Cell returns the cell at p. p must be in bounds.
func (g *Grid) Cell(p Pos) Cell { return g.cells[p.Row][p.Col] }

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// IsEndpoint reports whether p is the current start or end.
func (g *Grid) IsEndpoint(p Pos) bool {
	return (g.start != nil && *g.start == p) || (g.end != nil && *g.end == p)
}

// SetStart moves the start marker to p. The previous start cell becomes
// empty. Placing the start on the end is refused.
func (g *Grid) SetStart(p Pos) error {
	return g.moveEndpoint(&g.start, g.end, p, Start)
}

// SetEnd moves the end marker to p. The previous end cell becomes empty.
// Placing the end on the start is refused.
func (g *Grid) SetEnd(p Pos) error {
	return g.moveEndpoint(&g.end, g.start, p, End)
}

func (g *Grid) moveEndpoint(slot **Pos, other *Pos, p Pos, k Kind) error {
	if !g.InBounds(p) {
		return fmtPosErr(ErrOutOfBounds, p)
	}
	if other != nil && *other == p {
		return fmtPosErr(ErrEndpoint, p)
	}
	if old := *slot; old != nil {
		g.cells[old.Row][old.Col] = CellOf(Empty)
	}
	g.cells[p.Row][p.Col] = CellOf(k)
	np := p
	*slot = &np

	return nil
}

// ClearStart removes the start marker, leaving an empty cell.
func (g *Grid) ClearStart() {
	if g.start != nil {
		g.cells[g.start.Row][g.start.Col] = CellOf(Empty)
		g.start = nil
	}
}

// ClearEnd removes the end marker, leaving an empty cell.
func (g *Grid) ClearEnd() {
	if g.end != nil {
		g.cells[g.end.Row][g.end.Col] = CellOf(Empty)
		g.end = nil
	}
}

// Paint applies tool at p. Endpoints are never overwritten.
func (g *Grid) Paint(p Pos, tool Tool) error {
	if !g.InBounds(p) {
		return fmtPosErr(ErrOutOfBounds, p)
	}
	if g.IsEndpoint(p) {
		return fmtPosErr(ErrEndpoint, p)
	}
	switch tool {
	case ToolWall:
		g.cells[p.Row][p.Col] = CellOf(Wall)
	case ToolMud:
		g.cells[p.Row][p.Col] = CellOf(Mud)
	default:
		g.cells[p.Row][p.Col] = CellOf(Empty)
	}

	return nil
}

// SetCost overrides the traversal cost of a passable, non-endpoint cell.
// Costs above CostEmpty turn the cell into mud.
func (g *Grid) SetCost(p Pos, cost int) error {
	if !g.InBounds(p) {
		return fmtPosErr(ErrOutOfBounds, p)
	}
	if g.IsEndpoint(p) {
		return fmtPosErr(ErrEndpoint, p)
	}
	if cost <= 0 {
		return fmtPosErr(ErrBadCost, p)
	}
	k := Mud
	if cost == CostEmpty {
		k = Empty
	}
	g.cells[p.Row][p.Col] = Cell{Kind: k, Cost: cost}

	return nil
}

// ClearAll resets every non-endpoint cell to empty.
func (g *Grid) ClearAll() {
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.IsEndpoint(Pos{r, c}) {
				continue
			}
			g.cells[r][c] = CellOf(Empty)
		}
	}
}

// Snapshot returns an immutable State of the current grid.
func (g *Grid) Snapshot() *State {
	// NewState cannot fail here: the table is rectangular and non-empty,
	// endpoints are in bounds and passable costs are positive.
	s, _ := NewState(g.cells, g.start, g.end)

	return s
}
