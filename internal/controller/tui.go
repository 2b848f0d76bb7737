package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/scalefit/internal/model"
	"github.com/spf13/cobra"
)

// pageLines is the longest report printed without the pager.
const pageLines = 20

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))

	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// TUI implements UI with styled output and an interactive pager for long
// reports. Per-case and mismatch output is shared with SimpleUI.
type TUI struct {
	*SimpleUI
	runProgram func(tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	t := &TUI{SimpleUI: NewSimpleUI(cmd)}
	t.runProgram = func(model tea.Model) error {
		program := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout()), tea.WithAltScreen())
		_, err := program.Run()

		return err
	}

	return t
}

// DisplayCaseResult highlights rejected cases.
func (t *TUI) DisplayCaseResult(ctx context.Context, result m.CaseResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if result.Err != nil {
		t.statusf("%s\n", rejectedStyle.Render(fmt.Sprintf("✗ case #%d rejected: %v", result.Index, result.Err)))
	}
}

// DisplayRunSummary prints the run totals inside a box.
func (t *TUI) DisplayRunSummary(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body := strings.TrimRight(renderSummaryTable(report), "\n")
	t.statusf("\n%s\n", summaryStyle.Render(body))

	return nil
}

// DisplayReport pages through long reports and prints short ones directly.
func (t *TUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newReportModel(report)
	if !model.needsPagination() {
		t.printf("%s\n%s", titleStyle.Render(model.title), model.content)
		return nil
	}

	return t.runProgram(model)
}

type reportKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Top  key.Binding
	End  key.Binding
	Quit key.Binding
}

func (k reportKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.End, k.Quit}
}

func (k reportKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var reportKeys = reportKeyMap{
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	End:  key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// reportModel is the Bubble Tea model of the report pager.
type reportModel struct {
	title    string
	content  string
	viewport viewport.Model
	help     help.Model
	ready    bool
	quitting bool
}

func newReportModel(report m.Report) reportModel {
	title := fmt.Sprintf("scalefit report %s", report.RunID)
	if report.RunID == "" {
		title = "scalefit report"
	}

	return reportModel{
		title:   title,
		content: renderReportTable(report),
		help:    help.New(),
	}
}

func (rm reportModel) lineCount() int {
	return strings.Count(rm.content, "\n")
}

func (rm reportModel) needsPagination() bool {
	return rm.lineCount() > pageLines
}

func (rm reportModel) Init() tea.Cmd {
	return nil
}

func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - rm.chromeHeight()
		if height < 1 {
			height = 1
		}

		if !rm.ready {
			rm.viewport = viewport.New(msg.Width, height)
			rm.viewport.SetContent(rm.content)
			rm.ready = true
		} else {
			rm.viewport.Width = msg.Width
			rm.viewport.Height = height
		}

		return rm, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, reportKeys.Quit):
			rm.quitting = true
			return rm, tea.Quit
		case key.Matches(msg, reportKeys.Top):
			rm.viewport.GotoTop()
			return rm, nil
		case key.Matches(msg, reportKeys.End):
			rm.viewport.GotoBottom()
			return rm, nil
		}
	}

	var cmd tea.Cmd
	rm.viewport, cmd = rm.viewport.Update(msg)

	return rm, cmd
}

func (rm reportModel) chromeHeight() int {
	return lipgloss.Height(titleStyle.Render(rm.title)) + 2
}

func (rm reportModel) View() string {
	if rm.quitting {
		return ""
	}

	if !rm.ready {
		return "loading report…"
	}

	footer := footerStyle.Render(fmt.Sprintf("%3.f%% · %s", rm.viewport.ScrollPercent()*100, rm.help.View(reportKeys)))

	return fmt.Sprintf("%s\n%s\n%s", titleStyle.Render(rm.title), rm.viewport.View(), footer)
}
