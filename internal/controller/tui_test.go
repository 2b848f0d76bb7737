package controller

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/scalefit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longReport(n int) m.Report {
	report := m.Report{RunID: "run-long"}
	for i := 1; i <= n; i++ {
		c := m.CaseReport{Index: i, Notes: []string{"C", "E", "G"}, Keys: []string{"MC", "mA"}}
		report.Cases = append(report.Cases, c)
		report.Summary.Add(c)
	}

	return report
}

func TestTUI_DisplayReport_ShortReportPrintsDirectly(t *testing.T) {
	cmd, out, _ := newTestCmd()
	ui := NewTUI(cmd)
	ui.runProgram = func(tea.Model) error {
		t.Fatal("pager must not start for a short report")
		return nil
	}

	require.NoError(t, ui.DisplayReport(context.Background(), sampleReport()))
	assert.Contains(t, out.String(), "scalefit report run-1")
	assert.Contains(t, out.String(), "MC mA")
}

func TestTUI_DisplayReport_LongReportUsesPager(t *testing.T) {
	cmd, out, _ := newTestCmd()
	ui := NewTUI(cmd)

	var started tea.Model

	ui.runProgram = func(model tea.Model) error {
		started = model
		return nil
	}

	require.NoError(t, ui.DisplayReport(context.Background(), longReport(50)))
	require.NotNil(t, started)
	assert.Empty(t, out.String())
}

func TestTUI_DisplayRunSummaryAndRejections(t *testing.T) {
	cmd, _, status := newTestCmd()
	ui := NewTUI(cmd)

	ui.DisplayCaseResult(context.Background(), m.CaseResult{Index: 2, Err: fmt.Errorf(`unrecognized note "X"`)})
	require.NoError(t, ui.DisplayRunSummary(context.Background(), sampleReport()))

	assert.Contains(t, status.String(), "case #2 rejected")
	assert.Contains(t, status.String(), "MATCHED")
}

func TestReportModel_Navigation(t *testing.T) {
	model := newReportModel(longReport(50))
	assert.True(t, model.needsPagination())
	assert.Equal(t, "loading report…", model.View())

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 15})
	model = updated.(reportModel)
	require.True(t, model.ready)
	assert.Contains(t, model.View(), "scalefit report run-long")
	assert.Equal(t, 0, model.viewport.YOffset)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	model = updated.(reportModel)
	assert.True(t, model.viewport.AtBottom())

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	model = updated.(reportModel)
	assert.True(t, model.viewport.AtTop())

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	model = updated.(reportModel)
	assert.True(t, model.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, model.View())
}
