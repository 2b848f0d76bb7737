package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/scalefit/internal/domain"
	m "github.com/mouse-blink/scalefit/internal/model"
)

func TestAnalyzeCmd_PassesPathsAndReport(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newAnalyzeCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Analyze", mock.Anything, mock.MatchedBy(func(args domain.AnalyzeArgs) bool {
		return len(args.Paths) == 2 &&
			args.Paths[0] == m.Path("a.mid") &&
			args.Paths[1] == m.Path("b.mid") &&
			args.Report == m.Path("midi.yaml")
	})).Return(m.Report{}, nil).Once()

	cmd.SetArgs([]string{"analyze", "a.mid", "b.mid", "--report", "midi.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestAnalyzeCmd_Errors(t *testing.T) {
	t.Run("requires a file", func(t *testing.T) {
		useMockWorkflow(t)

		cmd := newRootCmd()
		cmd.AddCommand(newAnalyzeCmd())
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		cmd.SetArgs([]string{"analyze"})
		require.Error(t, cmd.Execute())
	})

	t.Run("workflow failure is returned", func(t *testing.T) {
		mockWorkflow := useMockWorkflow(t)
		readErr := errors.New("not a midi file")

		cmd := newRootCmd()
		cmd.AddCommand(newAnalyzeCmd())
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		mockWorkflow.On("Analyze", mock.Anything, mock.Anything).Return(m.Report{}, readErr).Once()

		cmd.SetArgs([]string{"analyze", "notes.txt"})
		require.ErrorIs(t, cmd.Execute(), readErr)
	})
}
