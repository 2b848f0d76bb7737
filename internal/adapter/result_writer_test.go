package adapter

import (
	"bytes"
	"errors"
	"testing"

	m "github.com/mouse-blink/scalefit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name   string
		result m.CaseResult
		want   string
	}{
		{"keys", m.CaseResult{Index: 1, Labels: []string{"MC", "mA"}}, "Case #1: MC mA"},
		{"none", m.CaseResult{Index: 2}, "Case #2: None"},
		{"error", m.CaseResult{Index: 3, Err: errors.New(`unrecognized note "H"`)}, `Case #3: Error: unrecognized note "H"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResult(tt.result))
		})
	}
}

func TestResultWriter_BuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer

	w := NewResultWriter(&buf)
	require.NoError(t, w.Write(m.CaseResult{Index: 1, Labels: []string{"MC", "mA"}}))
	require.NoError(t, w.Write(m.CaseResult{Index: 2}))
	assert.Empty(t, buf.String())

	require.NoError(t, w.Flush())
	assert.Equal(t, "Case #1: MC mA\nCase #2: None\n", buf.String())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestResultWriter_FlushErrorIsStreamError(t *testing.T) {
	w := NewResultWriter(brokenWriter{})
	require.NoError(t, w.Write(m.CaseResult{Index: 1}))

	err := w.Flush()
	require.ErrorIs(t, err, ErrStream)
	assert.Contains(t, err.Error(), "disk full")
}
