// Package maze defines the grid model, sentinel errors, and coordinate types
// shared by the search and render packages of github.com/katalvlaran/mazewalk.
package maze

import (
	"errors"
)

// Sentinel errors for maze construction and analysis.
var (
	// ErrEmptyGrid indicates the input has no rows or an empty first row.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing rune lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrOutOfBounds indicates a cell argument lies outside the grid.
	ErrOutOfBounds = errors.New("maze: cell out of bounds")
)

// WallRune marks a wall cell in textual mazes. Every other rune is open.
const WallRune = '#'

// Point is a bare coordinate. Two cells are the same cell iff their Points are equal.
type Point struct {
	X, Y int
}

// Cell is one square of the maze. Cells are values and never change after parsing.
type Cell struct {
	X, Y int  // Coordinates within the grid
	Wall bool // True if the cell is impassable
}

// Point returns the cell's coordinates.
func (c Cell) Point() Point {
	return Point{X: c.X, Y: c.Y}
}

// Same reports whether c and o occupy the same coordinates.
// The Wall flag is ignored.
func (c Cell) Same(o Cell) bool {
	return c.X == o.X && c.Y == o.Y
}

// Grid is a rectangular maze. It is immutable once built.
// Width and Height define dimensions; cells are stored row-major.
type Grid struct {
	Width, Height int
	cells         []Cell
}

// successorOffsets is the fixed expansion order: up, down, left, right.
var successorOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
