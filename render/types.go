package render

import (
	"errors"

	"github.com/katalvlaran/mazewalk/maze"
)

// DefaultCellSize is the side of one cell in pixels.
const DefaultCellSize = 15

// Sentinel errors for rendering.
var (
	// ErrPainterNil is returned when a Renderer is built without a Painter.
	ErrPainterNil = errors.New("render: painter is nil")
	// ErrFrame wraps a failure to write one animation frame.
	ErrFrame = errors.New("render: writing frame failed")
)

// Painter fills a set of cells with one colour. fill is a CSS-style hex
// colour ("#f00", "#ff00ff"); inset shrinks each square by that many
// pixels on every side.
type Painter interface {
	PaintCells(cells []maze.Cell, fill string, inset float64)
}

// Flusher is implemented by surfaces that emit one frame per step.
type Flusher interface {
	Flush(step int) error
}

// StatusSink receives the final status text once per run.
type StatusSink interface {
	WriteStatus(status string) error
}

// Palette is the fill colour of each snapshot layer.
type Palette struct {
	Wall, Open, Explored, Frontier, Path string
	// PathInset is the border left around path cells.
	PathInset float64
}

// DefaultPalette: red walls, white open, blue explored, magenta frontier,
// yellow path inset by 3 pixels.
func DefaultPalette() Palette {
	return Palette{
		Wall:      "#f00",
		Open:      "#fff",
		Explored:  "#00f",
		Frontier:  "#f0f",
		Path:      "#ff0",
		PathInset: 3,
	}
}
