// Package render draws search progress.
//
// What:
//
//   - Canvas: fogleman/gg raster, one square per cell, saved as PNG.
//   - Text: ASCII frames with optional ANSI colour on terminals.
//   - Renderer: paints a search.Snapshot layer by layer and flushes
//     frame surfaces; OnStep plugs it into search.WithOnStep.
//   - FrameRecorder: numbered PNG frames of the animation.
//   - WriterSink: the final status line.
//
// Layer order and default colours: walls #f00, open #fff, explored #00f,
// frontier #f0f, path #ff0 inset by 3 pixels.
//
// Errors:
//
//   - ErrPainterNil: NewRenderer without a painter.
//   - ErrFrame: a frame could not be written.
package render
