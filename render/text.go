package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/katalvlaran/mazewalk/maze"
)

// glyph is how one fill colour is drawn in text.
type glyph struct {
	r    rune
	ansi string
}

// Text draws frames as ASCII art, one rune per cell.
// Fills from the palette map to '#', '.', 'o', '+' and '*';
// unknown fills are drawn as '?'.
type Text struct {
	w      io.Writer
	width  int
	height int
	frame  []rune
	color  []string
	glyphs map[string]glyph
	ansi   bool
}

// NewText returns a text surface for g writing to w. ANSI colour is
// enabled when w is a terminal.
func NewText(w io.Writer, g *maze.Grid, p Palette) *Text {
	t := &Text{
		w:      w,
		width:  g.Width,
		height: g.Height,
		frame:  make([]rune, g.Width*g.Height),
		color:  make([]string, g.Width*g.Height),
		glyphs: map[string]glyph{
			p.Wall:     {'#', "\x1b[31m"},
			p.Open:     {'.', "\x1b[37m"},
			p.Explored: {'o', "\x1b[34m"},
			p.Frontier: {'+', "\x1b[35m"},
			p.Path:     {'*', "\x1b[33m"},
		},
		ansi: isTerminal(w),
	}
	for i := range t.frame {
		t.frame[i] = ' '
	}
	return t
}

// SetColor forces ANSI colour on or off.
func (t *Text) SetColor(on bool) { t.ansi = on }

// PaintCells sets the glyph of every in-range cell. inset is ignored.
func (t *Text) PaintCells(cells []maze.Cell, fill string, _ float64) {
	gl, ok := t.glyphs[fill]
	if !ok {
		gl = glyph{r: '?'}
	}
	for _, c := range cells {
		if c.X < 0 || c.X >= t.width || c.Y < 0 || c.Y >= t.height {
			continue
		}
		i := c.Y*t.width + c.X
		t.frame[i] = gl.r
		t.color[i] = gl.ansi
	}
}

// Flush writes the current frame under a "step N" header.
func (t *Text) Flush(step int) error {
	bw := bufio.NewWriter(t.w)
	fmt.Fprintf(bw, "step %d\n", step)
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			i := y*t.width + x
			if t.ansi && t.color[i] != "" {
				bw.WriteString(t.color[i])
				bw.WriteRune(t.frame[i])
				bw.WriteString("\x1b[0m")
				continue
			}
			bw.WriteRune(t.frame[i])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// String returns the current frame without colour.
func (t *Text) String() string {
	out := make([]rune, 0, (t.width+1)*t.height)
	for y := 0; y < t.height; y++ {
		out = append(out, t.frame[y*t.width:(y+1)*t.width]...)
		out = append(out, '\n')
	}
	return string(out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
