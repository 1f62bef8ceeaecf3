package maze

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

//go:embed mazes/default.txt
var defaultMaze string

// Parse builds a Grid from textual rows. Row index is y, rune index is x.
// WallRune marks a wall; any other rune is open.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if any row's rune count differs from the first.
// Complexity: O(W×H) time and memory.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyGrid
	}
	w, h := utf8.RuneCountInString(rows[0]), len(rows)
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, n, w)
		}
	}
	cells := make([]Cell, 0, w*h)
	for y, row := range rows {
		x := 0
		for _, r := range row {
			cells = append(cells, Cell{X: x, Y: y, Wall: r == WallRune})
			x++
		}
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// MustParse is like Parse but panics on error. Intended for literal mazes.
func MustParse(rows []string) *Grid {
	g, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Load reads one row per line from r and parses them.
// A trailing "\r" is stripped and trailing blank lines are ignored.
func Load(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: reading rows: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return Parse(rows)
}

// Default returns the embedded demo maze.
func Default() *Grid {
	g, err := Load(strings.NewReader(defaultMaze))
	if err != nil {
		panic(fmt.Sprintf("maze: embedded default maze is invalid: %v", err))
	}
	return g
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Node returns the cell at (x,y). The boolean is false when (x,y) is
// outside the grid; an absent cell is not an error.
func (g *Grid) Node(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[g.index(x, y)], true
}

// Successors returns the open orthogonal neighbors of c in the order
// up, down, left, right. Diagonals are never produced.
func (g *Grid) Successors(c Cell) []Cell {
	out := make([]Cell, 0, len(successorOffsets))
	for _, d := range successorOffsets {
		n, ok := g.Node(c.X+d[0], c.Y+d[1])
		if !ok || n.Wall {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Cells returns every cell in row-major order. The slice is a copy.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Walls returns the wall cells in row-major order.
func (g *Grid) Walls() []Cell {
	return g.filter(true)
}

// Open returns the passable cells in row-major order.
func (g *Grid) Open() []Cell {
	return g.filter(false)
}

func (g *Grid) filter(wall bool) []Cell {
	var out []Cell
	for _, c := range g.cells {
		if c.Wall == wall {
			out = append(out, c)
		}
	}
	return out
}

// LastOpen returns the open cell closest to the bottom-right corner,
// scanning rows from the bottom and columns from the right.
// The boolean is false if the grid has no open cells.
func (g *Grid) LastOpen() (Cell, bool) {
	for i := len(g.cells) - 1; i >= 0; i-- {
		if !g.cells[i].Wall {
			return g.cells[i], true
		}
	}
	return Cell{}, false
}

// String renders the grid back to text, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[g.index(x, y)].Wall {
				b.WriteRune(WallRune)
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}
