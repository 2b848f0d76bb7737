package adapter

import (
	"io"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/scalefit/internal/model"
)

// StreamFSAdapter hides direct os access from the workflow so the batch logic
// can run against in-memory streams in tests.
type StreamFSAdapter interface {
	// OpenInput opens the case stream. m.StdStream (or an empty path) selects stdin.
	OpenInput(path m.Path) (io.ReadCloser, error)

	// CreateOutput creates or truncates the result stream, creating parent
	// directories. m.StdStream (or an empty path) selects stdout.
	CreateOutput(path m.Path) (io.WriteCloser, error)

	// ReadFile loads a whole file, e.g. an expected-output file.
	ReadFile(path m.Path) ([]byte, error)
}

// LocalStreamFSAdapter is the os-backed StreamFSAdapter.
type LocalStreamFSAdapter struct {
	stdin  io.Reader
	stdout io.Writer
}

// NewLocalStreamFSAdapter constructs an adapter that maps m.StdStream to the
// given standard streams.
func NewLocalStreamFSAdapter(stdin io.Reader, stdout io.Writer) *LocalStreamFSAdapter {
	return &LocalStreamFSAdapter{stdin: stdin, stdout: stdout}
}

// OpenInput opens path for reading.
func (a *LocalStreamFSAdapter) OpenInput(path m.Path) (io.ReadCloser, error) {
	if isStdStream(path) {
		return io.NopCloser(a.stdin), nil
	}

	f, err := os.Open(string(path))
	if err != nil {
		return nil, &StreamError{Op: "open", Path: path, Err: err}
	}

	return f, nil
}

// CreateOutput opens path for writing.
func (a *LocalStreamFSAdapter) CreateOutput(path m.Path) (io.WriteCloser, error) {
	if isStdStream(path) {
		return nopWriteCloser{a.stdout}, nil
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return nil, &StreamError{Op: "create", Path: path, Err: err}
	}

	f, err := os.Create(string(path))
	if err != nil {
		return nil, &StreamError{Op: "create", Path: path, Err: err}
	}

	return f, nil
}

// ReadFile loads file contents from disk.
func (a *LocalStreamFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, &StreamError{Op: "read", Path: path, Err: err}
	}

	return data, nil
}

func isStdStream(path m.Path) bool {
	return path == "" || path == m.StdStream
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
