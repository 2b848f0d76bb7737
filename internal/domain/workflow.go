// Package domain holds the scale-finding rules and the batch workflow built on them.
package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/scalefit/internal/adapter"
	"github.com/mouse-blink/scalefit/internal/controller"
	m "github.com/mouse-blink/scalefit/internal/model"
	"github.com/mouse-blink/scalefit/pkg/spill"
)

// ErrMismatch is returned when the produced output differs from the expected file.
var ErrMismatch = errors.New("output does not match expected")

// RunArgs contains the arguments of a batch run.
type RunArgs struct {
	Input    m.Path
	Output   m.Path
	Threads  int
	Report   m.Path // where to save the run report; skipped when empty
	Expect   m.Path // expected output to compare against; skipped when empty
	SpillDir string // directory for buffered case reports; os.TempDir() when empty
}

// ViewArgs contains the arguments for viewing a saved report.
type ViewArgs struct {
	Report m.Path
}

// AnalyzeArgs contains the arguments for analysing MIDI files.
type AnalyzeArgs struct {
	Paths  []m.Path
	Report m.Path
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	// Run solves every case of the input stream and writes one line per case.
	// Format and stream errors abort the batch; rejected cases do not and are
	// returned joined once the batch completes.
	Run(ctx context.Context, args RunArgs) (m.Report, error)
	// View displays a previously saved report.
	View(ctx context.Context, args ViewArgs) error
	// Analyze treats each MIDI file as one case. Directory arguments are
	// expanded first; unreadable files become failed cases.
	Analyze(ctx context.Context, args AnalyzeArgs) (m.Report, error)
}

type workflow struct {
	adapter.StreamFSAdapter
	adapter.ReportStore
	adapter.MIDIAdapter
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.StreamFSAdapter,
	reportStore adapter.ReportStore,
	midiAdapter adapter.MIDIAdapter,
	ui controller.UI,
) Workflow {
	return &workflow{
		StreamFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		MIDIAdapter:     midiAdapter,
		UI:              ui,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) (m.Report, error) {
	report := m.Report{
		RunID:     uuid.NewString(),
		Input:     args.Input,
		Output:    args.Output,
		StartedAt: time.Now(),
	}

	slog.Info("run started", "run", report.RunID, "input", args.Input, "output", args.Output, "threads", args.Threads)

	in, err := w.OpenInput(args.Input)
	if err != nil {
		return report, fmt.Errorf("open input: %w", err)
	}
	defer closeLogged(in, args.Input)

	out, err := w.CreateOutput(args.Output)
	if err != nil {
		return report, fmt.Errorf("create output: %w", err)
	}
	defer closeLogged(out, args.Output)

	var produced bytes.Buffer

	dst := io.Writer(out)
	if args.Expect != "" {
		dst = io.MultiWriter(out, &produced)
	}

	spilled, err := spill.New[m.CaseReport](args.SpillDir)
	if err != nil {
		return report, fmt.Errorf("buffer case reports: %w", err)
	}
	defer closeLogged(spilled, m.Path(spilled.Path()))

	writer := adapter.NewResultWriter(dst)

	caseErrs, runErr := w.runPipeline(ctx, adapter.NewCaseReader(in), writer, spilled, args.Threads)
	if err := writer.Flush(); err != nil && runErr == nil {
		runErr = err
	}

	if err := collectReport(&report, spilled); err != nil && runErr == nil {
		runErr = err
	}

	report.FinishedAt = time.Now()

	if runErr != nil {
		slog.Error("run aborted", "run", report.RunID, "cases", report.Summary.Cases, "error", runErr)
		return report, runErr
	}

	slog.Info("run finished", "run", report.RunID, "cases", report.Summary.Cases,
		"matched", report.Summary.Matched, "failed", report.Summary.Failed)

	if args.Report != "" {
		if err := w.SaveReport(args.Report, report); err != nil {
			return report, fmt.Errorf("save report: %w", err)
		}
	}

	if err := w.DisplayRunSummary(ctx, report); err != nil {
		return report, err
	}

	if args.Expect != "" {
		if err := w.compareOutput(ctx, args.Expect, produced.String()); err != nil {
			return report, err
		}
	}

	return report, errors.Join(caseErrs...)
}

// runPipeline reads cases sequentially, solves up to threads of them at once
// and emits results strictly in case order. Cases read before a format error
// are still emitted.
func (w *workflow) runPipeline(
	ctx context.Context,
	reader adapter.CaseReader,
	writer adapter.ResultWriter,
	spilled spill.FileSpill[m.CaseReport],
	threads int,
) ([]error, error) {
	if threads < 1 {
		threads = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan m.CaseResult, threads)

	var readErr error

	go func() {
		defer close(results)

		var group errgroup.Group

		group.SetLimit(threads)

		readErr = dispatchCases(ctx, reader, &group, results)

		_ = group.Wait()
	}()

	var (
		caseErrs []error
		emitErr  error
	)

	pending := make(map[int]m.CaseResult)
	next := 1

	for result := range results {
		pending[result.Index] = result

		for {
			ready, ok := pending[next]
			if !ok {
				break
			}

			delete(pending, next)
			next++

			if emitErr != nil {
				continue
			}

			if err := w.emit(ctx, ready, writer, spilled); err != nil {
				emitErr = err
				cancel()

				continue
			}

			if ready.Err != nil {
				caseErrs = append(caseErrs, fmt.Errorf("case #%d: %w", ready.Index, ready.Err))
			}
		}
	}

	if emitErr != nil {
		return caseErrs, emitErr
	}

	return caseErrs, readErr
}

func dispatchCases(ctx context.Context, reader adapter.CaseReader, group *errgroup.Group, results chan<- m.CaseResult) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}

		group.Go(func() error {
			results <- SolveCase(c)
			return nil
		})
	}
}

func (w *workflow) emit(ctx context.Context, result m.CaseResult, writer adapter.ResultWriter, spilled spill.FileSpill[m.CaseReport]) error {
	if err := writer.Write(result); err != nil {
		return err
	}

	if err := spilled.Append(caseReport(result)); err != nil {
		return fmt.Errorf("buffer case #%d: %w", result.Index, err)
	}

	w.DisplayCaseResult(ctx, result)

	return nil
}

func caseReport(result m.CaseResult) m.CaseReport {
	c := m.CaseReport{
		Index: result.Index,
		Notes: result.Notes.Names(),
		Keys:  result.Labels,
	}

	if result.Err != nil {
		c.Error = result.Err.Error()
	}

	return c
}

func collectReport(report *m.Report, spilled spill.FileSpill[m.CaseReport]) error {
	report.Cases = make([]m.CaseReport, 0, spilled.Len())

	return spilled.Range(func(_ uint64, c m.CaseReport) error {
		report.Cases = append(report.Cases, c)
		report.Summary.Add(c)

		return nil
	})
}

func (w *workflow) compareOutput(ctx context.Context, expectPath m.Path, produced string) error {
	expected, err := w.ReadFile(expectPath)
	if err != nil {
		return fmt.Errorf("read expected output: %w", err)
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(trimOutput(string(expected))),
		B:        difflib.SplitLines(trimOutput(produced)),
		FromFile: string(expectPath),
		ToFile:   "produced",
		Context:  2,
	})
	if err != nil {
		return fmt.Errorf("diff output: %w", err)
	}

	if diff == "" {
		slog.Debug("output matches expected", "path", expectPath)
		return nil
	}

	w.DisplayMismatch(ctx, diff)

	return fmt.Errorf("%w: %s", ErrMismatch, expectPath)
}

func trimOutput(s string) string {
	return strings.TrimRight(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	return w.DisplayReport(ctx, report)
}

func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) (m.Report, error) {
	report := m.Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}

	paths, err := w.ExpandPaths(args.Paths)
	if err != nil {
		return report, fmt.Errorf("resolve midi paths: %w", err)
	}

	var errs []error

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		c := m.CaseReport{Index: i + 1, Source: path}

		used, err := w.ReadPitchClasses(path)
		if err != nil {
			slog.Warn("midi file rejected", "path", path, "error", err)

			c.Error = err.Error()
			errs = append(errs, err)
		} else {
			c.Notes = used.Names()
			c.Keys = CompatibleKeys(used)
		}

		report.Cases = append(report.Cases, c)
		report.Summary.Add(c)
	}

	report.FinishedAt = time.Now()

	if args.Report != "" {
		if err := w.SaveReport(args.Report, report); err != nil {
			return report, fmt.Errorf("save report: %w", err)
		}
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		return report, err
	}

	return report, errors.Join(errs...)
}

func closeLogged(c io.Closer, path m.Path) {
	if err := c.Close(); err != nil {
		slog.Error("Failed to close", "path", path, "error", err)
	}
}
