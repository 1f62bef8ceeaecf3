package render

import (
	"fmt"
	"os"
	"path/filepath"
)

// FrameRecorder saves the canvas as a numbered PNG after every step:
// dir/frame-00001.png, dir/frame-00002.png, ...
type FrameRecorder struct {
	canvas *Canvas
	dir    string
	count  int
}

// NewFrameRecorder creates dir if needed and returns a recorder for c.
func NewFrameRecorder(c *Canvas, dir string) (*FrameRecorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating %q: %v", ErrFrame, dir, err)
	}
	return &FrameRecorder{canvas: c, dir: dir}, nil
}

// FramePath returns the file name used for step.
func (f *FrameRecorder) FramePath(step int) string {
	return filepath.Join(f.dir, fmt.Sprintf("frame-%05d.png", step))
}

// Flush writes the current canvas for step.
func (f *FrameRecorder) Flush(step int) error {
	path := f.FramePath(step)
	if err := f.canvas.SavePNG(path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFrame, path, err)
	}
	f.count++
	return nil
}

// Count is the number of frames written so far.
func (f *FrameRecorder) Count() int { return f.count }
