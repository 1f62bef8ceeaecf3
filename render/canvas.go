package render

import (
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/mazewalk/maze"
)

// Canvas is a raster surface sized to the grid.
type Canvas struct {
	dc   *gg.Context
	size int
}

// NewCanvas allocates a Width*cellSize × Height*cellSize canvas.
// A non-positive cellSize selects DefaultCellSize.
func NewCanvas(g *maze.Grid, cellSize int) *Canvas {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Canvas{
		dc:   gg.NewContext(g.Width*cellSize, g.Height*cellSize),
		size: cellSize,
	}
}

// PaintCells draws each cell as a filled square at
// (x*size+inset, y*size+inset) with side size-2*inset.
func (c *Canvas) PaintCells(cells []maze.Cell, fill string, inset float64) {
	if len(cells) == 0 {
		return
	}
	s := float64(c.size)
	c.dc.SetHexColor(fill)
	for _, cell := range cells {
		c.dc.DrawRectangle(float64(cell.X)*s+inset, float64(cell.Y)*s+inset, s-2*inset, s-2*inset)
	}
	c.dc.Fill()
}

// CellSize returns the side of one cell in pixels.
func (c *Canvas) CellSize() int { return c.size }

// Bounds returns the canvas size in pixels.
func (c *Canvas) Bounds() (w, h int) {
	return c.dc.Width(), c.dc.Height()
}

// Image returns the canvas image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// EncodePNG writes the canvas to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}
