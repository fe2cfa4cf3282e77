package parser

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrIncomplete reports that the input ended before a token was complete.
	// It is not a format error: retry from the same start once more input is
	// available.
	ErrIncomplete = errors.New("reached end before token was completely parsed")
	// ErrUnexpectedEOF reports a construct left unterminated at the true end
	// of the stream.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrMalformed is the cause of every SyntaxError.
	ErrMalformed = errors.New("malformed markup")
)

// SyntaxError reports a byte that has no transition in the state it was
// found in. Line and Column are 1-based.
type SyntaxError struct {
	State    string
	Expected string
	Found    byte
	Line     int
	Column   int
}

// Error formats the error with the expected set and the location.
func (e *SyntaxError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("expecting %s, found %q at %d,%d", e.Expected, e.Found, e.Line, e.Column)
}

// Unwrap exposes ErrMalformed.
func (e *SyntaxError) Unwrap() error {
	return ErrMalformed
}
