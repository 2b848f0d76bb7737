package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	m "github.com/mouse-blink/scalefit/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain text and tables. Results of a run may be
// going to stdout, so progress and summaries are written to stderr.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayCaseResult reports rejected cases.
func (s *SimpleUI) DisplayCaseResult(ctx context.Context, result m.CaseResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if result.Err != nil {
		s.statusf("case #%d rejected: %v\n", result.Index, result.Err)
	}
}

// DisplayRunSummary prints the run totals as a table.
func (s *SimpleUI) DisplayRunSummary(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.statusf("\n%s", renderSummaryTable(report))

	return nil
}

// DisplayReport prints one table row per case.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderReportTable(report))

	return nil
}

// DisplayMismatch prints the unified diff.
func (s *SimpleUI) DisplayMismatch(ctx context.Context, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.statusf("output differs from expected:\n%s", diff)
}

func renderSummaryTable(report m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Cases", "Matched", "None", "Errors"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.Append([]string{
		fmt.Sprintf("%d", report.Summary.Cases),
		fmt.Sprintf("%d", report.Summary.Matched),
		fmt.Sprintf("%d", report.Summary.Unmatched),
		fmt.Sprintf("%d", report.Summary.Failed),
	})
	table.Render()

	return tableBuffer.String()
}

func renderReportTable(report m.Report) string {
	var tableBuffer bytes.Buffer

	withSource := false

	for _, c := range report.Cases {
		if c.Source != "" {
			withSource = true
			break
		}
	}

	header := []string{"Case", "Notes", "Keys"}
	if withSource {
		header = []string{"Case", "Source", "Notes", "Keys"}
	}

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment(make([]int, len(header)))

	for _, c := range report.Cases {
		row := []string{fmt.Sprintf("#%d", c.Index), strings.Join(c.Notes, " "), keysCell(c)}
		if withSource {
			row = []string{row[0], string(c.Source), row[1], row[2]}
		}

		table.Append(row)
	}

	footer := make([]string, len(header))
	footer[0] = fmt.Sprintf("Total %d", report.Summary.Cases)
	footer[len(footer)-1] = fmt.Sprintf("%d matched, %d none, %d errors",
		report.Summary.Matched, report.Summary.Unmatched, report.Summary.Failed)
	table.SetFooter(footer)

	table.Render()

	return tableBuffer.String()
}

func keysCell(c m.CaseReport) string {
	switch {
	case c.Error != "":
		return "Error: " + c.Error
	case len(c.Keys) == 0:
		return "None"
	default:
		return strings.Join(c.Keys, " ")
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) statusf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
