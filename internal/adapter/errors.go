// Package adapter contains the stream, storage and transport adapters used by
// the scalefit workflow.
package adapter

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/scalefit/internal/model"
)

var (
	// ErrFormat marks a malformed case stream. It aborts the whole batch.
	ErrFormat = errors.New("file hasn't got a right format")
	// ErrStream marks an I/O failure on the input or output stream.
	ErrStream = errors.New("stream error")
)

// FormatError describes the line of the case stream that could not be parsed.
type FormatError struct {
	Line   int    // 1-based line number
	Field  string // what the line was expected to hold
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Field, e.Reason)
	}

	return fmt.Sprintf("line %d: %s: %q %s", e.Line, e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrFormat.
func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// StreamError wraps an underlying read, write or open failure.
type StreamError struct {
	Op   string
	Path m.Path
	Err  error
}

func (e *StreamError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both ErrStream and the underlying cause.
func (e *StreamError) Unwrap() []error {
	return []error{ErrStream, e.Err}
}
