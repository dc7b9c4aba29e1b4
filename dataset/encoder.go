package dataset

import (
	"bufio"
	"io"
	"strings"
)

// Encoder writes comma separated rows with every field double quoted and
// CRLF line endings. encoding/csv only quotes fields that need it, which the
// simulator's reader does not expect.
type Encoder struct {
	w *bufio.Writer
}

// NewEncoder returns an Encoder that buffers writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Write encodes one row.
func (e *Encoder) Write(fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := e.w.WriteByte(','); err != nil {
				return err
			}
		}
		if err := e.w.WriteByte('"'); err != nil {
			return err
		}
		if _, err := e.w.WriteString(strings.ReplaceAll(field, `"`, `""`)); err != nil {
			return err
		}
		if err := e.w.WriteByte('"'); err != nil {
			return err
		}
	}
	_, err := e.w.WriteString("\r\n")
	return err
}

// Flush writes any buffered data to the underlying writer.
func (e *Encoder) Flush() error {
	return e.w.Flush()
}
