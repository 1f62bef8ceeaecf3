package render

import (
	"fmt"
	"io"
)

// WriterSink writes the status as one line to W.
type WriterSink struct {
	W io.Writer
}

// WriteStatus implements StatusSink.
func (s WriterSink) WriteStatus(status string) error {
	_, err := fmt.Fprintln(s.W, status)
	return err
}
