package gff

import (
	"errors"
	"fmt"
)

// MalformedRecordError reports an input line that cannot be interpreted.
// Line is 1-based; zero means the position is unknown.
type MalformedRecordError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Text)
}

// IsMalformed reports whether err wraps a MalformedRecordError.
func IsMalformed(err error) bool {
	var target *MalformedRecordError
	return errors.As(err, &target)
}

// Malformed builds a MalformedRecordError positioned at rec.
func Malformed(rec Record, format string, args ...any) error {
	return &MalformedRecordError{
		Line:   rec.Line,
		Text:   rec.String(),
		Reason: fmt.Sprintf(format, args...),
	}
}
