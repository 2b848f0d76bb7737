package adapter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	m "github.com/mouse-blink/scalefit/internal/model"
)

// noKeyLabel is printed for a case that fits no key.
const noKeyLabel = "None"

// ResultWriter emits one formatted line per case.
type ResultWriter interface {
	Write(result m.CaseResult) error
	Flush() error
}

type lineResultWriter struct {
	w *bufio.Writer
}

// NewResultWriter writes "Case #<i>: ..." lines to w. Output is buffered
// until Flush.
func NewResultWriter(w io.Writer) ResultWriter {
	return &lineResultWriter{w: bufio.NewWriter(w)}
}

func (rw *lineResultWriter) Write(result m.CaseResult) error {
	if _, err := rw.w.WriteString(FormatResult(result) + "\n"); err != nil {
		return &StreamError{Op: "write", Err: err}
	}

	return nil
}

func (rw *lineResultWriter) Flush() error {
	if err := rw.w.Flush(); err != nil {
		return &StreamError{Op: "flush", Err: err}
	}

	return nil
}

// FormatResult renders a case as "Case #<i>: <labels...>", "Case #<i>: None"
// or, for a rejected case, "Case #<i>: Error: <reason>".
func FormatResult(result m.CaseResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Case #%d:", result.Index)

	switch {
	case result.Err != nil:
		b.WriteString(" Error: ")
		b.WriteString(result.Err.Error())
	case len(result.Labels) == 0:
		b.WriteString(" " + noKeyLabel)
	default:
		for _, label := range result.Labels {
			b.WriteString(" ")
			b.WriteString(label)
		}
	}

	return b.String()
}
