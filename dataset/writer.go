package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/alanwang67/requestgen/workload"
)

// Writer generates a fixed number of records and stores them in a file.
type Writer struct {
	Path      string
	Rows      int
	Generator *workload.Generator
	Stdout    io.Writer             // receives the outcome message
	Observe   func(workload.Record) // called for every record written, may be nil
}

// New creates a Writer that reports to os.Stdout.
func New(path string, rows int, g *workload.Generator) *Writer {
	return &Writer{
		Path:      path,
		Rows:      rows,
		Generator: g,
		Stdout:    os.Stdout,
	}
}

// Encode writes the header followed by w.Rows generated records to out.
func (w *Writer) Encode(out io.Writer) error {
	enc := NewEncoder(out)

	if err := enc.Write(workload.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := 0; i < w.Rows; i++ {
		rec := w.Generator.Next()
		if err := enc.Write(rec.Fields()); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
		if w.Observe != nil {
			w.Observe(rec)
		}
	}

	return enc.Flush()
}

// WriteFile truncates or creates w.Path and encodes the dataset into it.
// The file is closed on every path; a partially written file is left behind
// on failure.
func (w *Writer) WriteFile() (err error) {
	f, err := os.Create(w.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	log.Debugf("writing %d rows to %s", w.Rows, w.Path)
	return w.Encode(f)
}

// Run writes the dataset and prints the outcome to w.Stdout. The returned
// error is the same failure that was reported, so callers only need it to
// pick an exit status.
func (w *Writer) Run() error {
	if err := w.WriteFile(); err != nil {
		fmt.Fprintf(w.Stdout, "Error: Failed to generate '%s': %v!\n", w.Path, err)
		return fmt.Errorf("generating %s: %w", w.Path, err)
	}

	fmt.Fprintf(w.Stdout, "Success! Generated %d rows of requests to the file: '%s'.\n", w.Rows, w.Path)
	return nil
}
