package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/scalefit/internal/domain"
	m "github.com/mouse-blink/scalefit/internal/model"
)

func TestViewCmd_RootReportFlagIsPassedThrough(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Report == m.Path("./reports/run.yaml")
	})).Return(nil)

	cmd.SetArgs([]string{"view", "--report", "./reports/run.yaml"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestViewCmd_RequiresReportPath(t *testing.T) {
	useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"view"})
	err := cmd.Execute()
	require.ErrorIs(t, err, errNoReportPath)
}

func TestViewCmd_PositionalArgsAreRejected(t *testing.T) {
	useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"view", "./run.yaml"})
	err := cmd.Execute()
	require.Error(t, err)
}
