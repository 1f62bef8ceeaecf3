package render

import (
	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/search"
)

// Renderer applies snapshots to a Painter in layer order:
// walls, open, explored, frontier, path.
type Renderer struct {
	painter  Painter
	palette  Palette
	flushers []Flusher
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithPalette overrides DefaultPalette.
func WithPalette(p Palette) RendererOption {
	return func(r *Renderer) { r.palette = p }
}

// WithFlushers registers surfaces flushed after every rendered snapshot.
func WithFlushers(fs ...Flusher) RendererOption {
	return func(r *Renderer) {
		for _, f := range fs {
			if f != nil {
				r.flushers = append(r.flushers, f)
			}
		}
	}
}

// NewRenderer returns a Renderer painting onto p.
// Returns ErrPainterNil if p is nil.
func NewRenderer(p Painter, opts ...RendererOption) (*Renderer, error) {
	if p == nil {
		return nil, ErrPainterNil
	}
	r := &Renderer{painter: p, palette: DefaultPalette()}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Palette returns the colours in use.
func (r *Renderer) Palette() Palette { return r.palette }

// Render paints one snapshot. Later layers cover earlier ones.
func (r *Renderer) Render(s search.Snapshot) {
	r.painter.PaintCells(s.Walls, r.palette.Wall, 0)
	r.painter.PaintCells(s.Open, r.palette.Open, 0)
	r.painter.PaintCells(s.Explored, r.palette.Explored, 0)
	r.painter.PaintCells(s.Frontier, r.palette.Frontier, 0)
	r.painter.PaintCells(s.Path, r.palette.Path, r.palette.PathInset)
}

// Frame renders s and flushes every registered surface.
// The first flush error is returned; remaining surfaces are still flushed.
func (r *Renderer) Frame(s search.Snapshot) error {
	r.Render(s)
	var first error
	for _, f := range r.flushers {
		if err := f.Flush(s.Step); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// OnStep adapts Frame for search.WithOnStep.
func (r *Renderer) OnStep() func(search.Snapshot) error {
	return r.Frame
}

// multi fans PaintCells out to several painters.
type multi []Painter

// Multi returns a Painter that paints on every non-nil p in order.
func Multi(ps ...Painter) Painter {
	out := make(multi, 0, len(ps))
	for _, p := range ps {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (m multi) PaintCells(cells []maze.Cell, fill string, inset float64) {
	for _, p := range m {
		p.PaintCells(cells, fill, inset)
	}
}
