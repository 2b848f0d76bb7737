package adapter

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	m "github.com/mouse-blink/scalefit/internal/model"
)

const maxLineSize = 1 << 20

// CaseReader yields the cases of a batch in input order. Next returns io.EOF
// once every announced case has been read. Errors are sticky.
type CaseReader interface {
	Next() (m.Case, error)
}

type lineCaseReader struct {
	scanner *bufio.Scanner
	line    int
	total   int
	read    int
	err     error
}

// NewCaseReader reads the line-oriented case format:
//
//	<ncases>
//	<nnotes>
//	<space separated notes>   (only when nnotes != 0)
//	...
func NewCaseReader(r io.Reader) CaseReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &lineCaseReader{scanner: scanner, total: -1}
}

func (r *lineCaseReader) Next() (m.Case, error) {
	if r.err != nil {
		return m.Case{}, r.err
	}

	c, err := r.next()
	if err != nil {
		r.err = err
		return m.Case{}, err
	}

	return c, nil
}

func (r *lineCaseReader) next() (m.Case, error) {
	if r.total < 0 {
		total, err := r.readCount("case count")
		if err != nil {
			return m.Case{}, err
		}

		r.total = total
		slog.Debug("case stream header read", "cases", total)
	}

	if r.read >= r.total {
		return m.Case{}, io.EOF
	}

	index := r.read + 1

	declared, err := r.readCount(fmt.Sprintf("note count of case #%d", index))
	if err != nil {
		return m.Case{}, err
	}

	c := m.Case{Index: index}

	if declared != 0 {
		text, err := r.readLine(fmt.Sprintf("notes of case #%d", index))
		if err != nil {
			return m.Case{}, err
		}

		c.Tokens = strings.Fields(text)
		if len(c.Tokens) != declared {
			slog.Warn("note count mismatch", "case", index, "line", r.line, "declared", declared, "found", len(c.Tokens))
		}
	}

	r.read++

	return c, nil
}

func (r *lineCaseReader) readCount(field string) (int, error) {
	text, err := r.readLine(field)
	if err != nil {
		return 0, err
	}

	value := strings.TrimSpace(text)

	n, convErr := strconv.Atoi(value)
	if convErr != nil {
		return 0, &FormatError{Line: r.line, Field: field, Value: value, Reason: "is not an integer"}
	}

	if n < 0 {
		return 0, &FormatError{Line: r.line, Field: field, Value: value, Reason: "is negative"}
	}

	return n, nil
}

func (r *lineCaseReader) readLine(field string) (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", &StreamError{Op: "read", Err: err}
		}

		return "", &FormatError{Line: r.line + 1, Field: field, Reason: "unexpected end of input"}
	}

	r.line++

	text := r.scanner.Text()
	if r.line == 1 {
		text = strings.TrimPrefix(text, "\ufeff")
	}

	return text, nil
}
