// Package controller renders run progress, summaries and saved reports.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	m "github.com/mouse-blink/scalefit/internal/model"
	"github.com/spf13/cobra"
)

// UI displays the outcome of scalefit runs. Implementations can use
// different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayCaseResult is called once per case, in input order.
	DisplayCaseResult(ctx context.Context, result m.CaseResult)
	// DisplayRunSummary shows the totals of a finished run.
	DisplayRunSummary(ctx context.Context, report m.Report) error
	// DisplayReport shows every case of a report.
	DisplayReport(ctx context.Context, report m.Report) error
	// DisplayMismatch shows the diff between expected and produced output.
	DisplayMismatch(ctx context.Context, diff string)
}

// NewUI returns a TUI when useTTY is set and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
