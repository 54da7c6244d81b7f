// Package grid defines the cell model, sentinel errors and options
// for the grid subpackage of github.com/katalvlaran/gridtrace.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrEndpoint indicates an edit that would overwrite the start or end cell.
	ErrEndpoint = errors.New("grid: cannot overwrite an endpoint")
	// ErrBadGlyph indicates an unknown character in an ASCII grid.
	ErrBadGlyph = errors.New("grid: unknown glyph")
	// ErrInvalidProbability indicates a maze probability outside [0,1].
	ErrInvalidProbability = errors.New("grid: probability must lie in [0,1]")
	// ErrBadCost indicates a non-positive traversal cost on a passable cell.
	ErrBadCost = errors.New("grid: passable cells need a positive cost")
)

// Default traversal costs per kind. Walls carry no cost: they are impassable.
const (
	CostEmpty = 1
	CostMud   = 5
	CostWall  = 0
)

// Kind classifies a cell.
type Kind uint8

const (
	// Empty is a plain passable cell.
	Empty Kind = iota
	// Wall is impassable.
	Wall
	// Mud is passable but expensive.
	Mud
	// Start marks the search origin.
	Start
	// End marks the search goal.
	End
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Mud:
		return "mud"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Pos addresses a cell by row and column.
type Pos struct {
	Row, Col int
}

// String formats the position as "(r,c)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is one grid square.
type Cell struct {
	Kind Kind
	Cost int
}

// Passable reports whether a search may enter the cell.
func (c Cell) Passable() bool { return c.Kind != Wall }

// CellOf returns a cell of kind k with its default cost.
func CellOf(k Kind) Cell {
	switch k {
	case Wall:
		return Cell{Kind: Wall, Cost: CostWall}
	case Mud:
		return Cell{Kind: Mud, Cost: CostMud}
	default:
		return Cell{Kind: k, Cost: CostEmpty}
	}
}

// Neighbor is a passable cell adjacent to another one, with the cost
// of stepping onto it.
type Neighbor struct {
	Pos  Pos
	Cost int
}

// offsets4 lists the orthogonal moves in the fixed enumeration order:
// up, right, down, left.
var offsets4 = [4]Pos{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

func fmtPosErr(err error, p Pos) error {
	return fmt.Errorf("%w: %s", err, p)
}
