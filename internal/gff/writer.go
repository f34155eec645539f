package gff

import (
	"bufio"
	"io"
)

// Writer emits records as newline-terminated tab-delimited lines.
type Writer struct {
	w     *bufio.Writer
	count int
}

// NewWriter wraps w in a buffered record writer. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 64*1024)}
}

// Write emits one record.
func (w *Writer) Write(rec Record) error {
	for i, field := range rec.Fields() {
		if i > 0 {
			if err := w.w.WriteByte('\t'); err != nil {
				return err
			}
		}
		if _, err := w.w.WriteString(field); err != nil {
			return err
		}
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	w.count++
	return nil
}

// WriteAll emits records in order, stopping at the first error.
func (w *Writer) WriteAll(recs []Record) error {
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int {
	return w.count
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
