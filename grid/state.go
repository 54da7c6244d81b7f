// Package grid models the weighted cell grid that the search strategies run on.
//
// Two types share the cell model:
//
//   - State: an immutable snapshot (rows, cols, cells, optional start/end)
//     handed to a search invocation. Nothing in the search core mutates it.
//   - Grid: the mutable editor used by collaborators (painting walls and mud,
//     moving endpoints, generating random mazes). Grid.Snapshot produces a State.
//
// Neighbours are enumerated orthogonally in the fixed order up, right, down,
// left; walls and out-of-bounds cells are skipped.
package grid

// State is an immutable snapshot of a grid. Build one with NewState,
// Parse or Grid.Snapshot.
type State struct {
	rows, cols int
	cells      [][]Cell
	start, end Pos
	hasStart   bool
	hasEnd     bool
}

// NewState constructs a State from a non-empty, rectangular cell table.
// The table is deep-copied. start and end may be nil to leave the
// endpoint unset; when given they must lie inside the grid.
// Complexity: O(rows×cols).
func NewState(cells [][]Cell, start, end *Pos) (*State, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	cp := make([][]Cell, rows)
	for r, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		cp[r] = make([]Cell, cols)
		copy(cp[r], row)
		for c, cell := range row {
			if cell.Passable() && cell.Cost <= 0 {
				return nil, fmtPosErr(ErrBadCost, Pos{r, c})
			}
		}
	}
	s := &State{rows: rows, cols: cols, cells: cp}
	if start != nil {
		if !s.InBounds(*start) {
			return nil, fmtPosErr(ErrOutOfBounds, *start)
		}
		s.start, s.hasStart = *start, true
	}
	if end != nil {
		if !s.InBounds(*end) {
			return nil, fmtPosErr(ErrOutOfBounds, *end)
		}
		s.end, s.hasEnd = *end, true
	}

	return s, nil
}

// Rows returns the row count.
func (s *State) Rows() int { return s.rows }

// Cols returns the column count.
func (s *State) Cols() int { return s.cols }

// Start returns the start position and whether it is set.
func (s *State) Start() (Pos, bool) { return s.start, s.hasStart }

// End returns the end position and whether it is set.
func (s *State) End() (Pos, bool) { return s.end, s.hasEnd }

// InBounds reports whether p lies within the grid.
func (s *State) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < s.rows && p.Col >= 0 && p.Col < s.cols
}

// Cell returns the cell at p. p must be in bounds.
func (s *State) Cell(p Pos) Cell { return s.cells[p.Row][p.Col] }

// Cost returns the traversal cost of the cell at p, or 0 when p is
// out of bounds.
func (s *State) Cost(p Pos) int {
	if !s.InBounds(p) {
		return 0
	}

	return s.cells[p.Row][p.Col].Cost
}

// Neighbors returns the passable cells orthogonally adjacent to p,
// in the order up, right, down, left.
func (s *State) Neighbors(p Pos) []Neighbor {
	out := make([]Neighbor, 0, len(offsets4))
	for _, d := range offsets4 {
		n := Pos{p.Row + d.Row, p.Col + d.Col}
		if !s.InBounds(n) {
			continue
		}
		cell := s.cells[n.Row][n.Col]
		if !cell.Passable() {
			continue
		}
		out = append(out, Neighbor{Pos: n, Cost: cell.Cost})
	}

	return out
}

// Index maps p to a row-major index: row*cols + col.
func (s *State) Index(p Pos) int { return p.Row*s.cols + p.Col }

// Coordinate converts a row-major index back to a position.
func (s *State) Coordinate(idx int) Pos { return Pos{idx / s.cols, idx % s.cols} }
