package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/scalefit/internal/adapter"
	"github.com/mouse-blink/scalefit/internal/domain"
	m "github.com/mouse-blink/scalefit/internal/model"
)

func newTestRunCmd() (*bytes.Buffer, func(args ...string) error) {
	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})

	stderr := &bytes.Buffer{}
	cmd.SetErr(stderr)

	return stderr, func(args ...string) error {
		cmd.SetArgs(append([]string{"run"}, args...))
		return cmd.Execute()
	}
}

func TestRunCmd_Defaults(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	stderr, execute := newTestRunCmd()

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Input == m.StdStream &&
			args.Output == m.StdStream &&
			args.Threads == 1 &&
			args.Report == "" &&
			args.Expect == ""
	})).Return(m.Report{}, nil).Once()

	require.NoError(t, execute())
	assert.Contains(t, stderr.String(), runSuccessMessage)
}

func TestRunCmd_FlagsArePassedThrough(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	_, execute := newTestRunCmd()

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Input == m.Path("cases.txt") &&
			args.Output == m.Path("results.txt") &&
			args.Threads == 4 &&
			args.Report == m.Path("run.yaml") &&
			args.Expect == m.Path("expected.txt")
	})).Return(m.Report{}, nil).Once()

	require.NoError(t, execute("cases.txt", "-o", "results.txt", "-p", "4", "--report", "run.yaml", "--expect", "expected.txt"))
}

func TestRunCmd_FormatError(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	stderr, execute := newTestRunCmd()

	formatErr := &adapter.FormatError{Line: 2, Field: "note count of case #1", Value: "x", Reason: "is not an integer"}
	mockWorkflow.On("Run", mock.Anything, mock.Anything).Return(m.Report{}, formatErr).Once()

	err := execute("cases.txt")
	require.ErrorIs(t, err, adapter.ErrFormat)
	assert.Contains(t, stderr.String(), "file hasn't got a right format")
	assert.NotContains(t, stderr.String(), runSuccessMessage)
	assert.NotContains(t, stderr.String(), "Usage:")
}

func TestRunCmd_RejectedCases(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	stderr, execute := newTestRunCmd()

	caseErr := fmt.Errorf("case #2: %w", &domain.UnrecognizedNoteError{Token: "H"})
	mockWorkflow.On("Run", mock.Anything, mock.Anything).Return(m.Report{}, caseErr).Once()

	err := execute()
	require.ErrorIs(t, err, domain.ErrUnrecognizedNote)
	assert.Contains(t, stderr.String(), runRejectedMessage)
}

func TestRunCmd_OtherErrors(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	stderr, execute := newTestRunCmd()

	mockWorkflow.On("Run", mock.Anything, mock.Anything).
		Return(m.Report{}, fmt.Errorf("%w: expected.txt", domain.ErrMismatch)).Once()

	err := execute("--expect", "expected.txt")
	require.ErrorIs(t, err, domain.ErrMismatch)
	assert.NotContains(t, stderr.String(), runSuccessMessage)
}

func TestRunCmd_TooManyArgs(t *testing.T) {
	useMockWorkflow(t)
	_, execute := newTestRunCmd()

	require.Error(t, execute("a.txt", "b.txt"))
}

func TestReportRunOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"success", nil, runSuccessMessage},
		{"format", &adapter.FormatError{Line: 1, Field: "case count", Reason: "unexpected end of input"}, adapter.ErrFormat.Error()},
		{"rejected", errors.Join(&domain.UnrecognizedNoteError{Token: "Z"}), runRejectedMessage},
		{"stream", &adapter.StreamError{Op: "read", Err: errors.New("broken pipe")}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRunCmd()
			stderr := &bytes.Buffer{}
			cmd.SetErr(stderr)

			err := reportRunOutcome(cmd, tt.err)
			assert.Equal(t, tt.err, err)
			assert.Equal(t, tt.want, stripNewline(stderr.String()))
		})
	}
}

func stripNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		return s[:len(s)-1]
	}

	return s
}
