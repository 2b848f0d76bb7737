package domain

import (
	"log/slog"

	m "github.com/mouse-blink/scalefit/internal/model"
)

// ProcessCase normalizes the raw note tokens of one case and returns the
// sorted labels of every compatible key. An empty result means no key fits.
func ProcessCase(tokens []string) ([]string, error) {
	_, labels, err := solveTokens(tokens)
	return labels, err
}

// SolveCase runs the case through the solver. Batch callers tie a failure to
// the case with CaseResult.Index.
func SolveCase(c m.Case) m.CaseResult {
	used, labels, err := solveTokens(c.Tokens)
	if err != nil {
		slog.Warn("case rejected", "case", c.Index, "error", err)
		return m.CaseResult{Index: c.Index, Err: err}
	}

	slog.Debug("case solved", "case", c.Index, "notes", used.String(), "keys", len(labels))

	return m.CaseResult{Index: c.Index, Notes: used, Labels: labels}
}

func solveTokens(tokens []string) (m.PitchSet, []string, error) {
	used, err := NormalizeAll(tokens)
	if err != nil {
		return 0, nil, err
	}

	return used, CompatibleKeys(used), nil
}

// KeyFinder answers single-case queries for callers outside the batch flow.
type KeyFinder struct{}

// NewKeyFinder constructs a KeyFinder.
func NewKeyFinder() *KeyFinder {
	return &KeyFinder{}
}

// Find normalizes tokens and returns the canonical notes used with the compatible keys.
func (KeyFinder) Find(tokens []string) ([]string, []string, error) {
	used, labels, err := solveTokens(tokens)
	if err != nil {
		return nil, nil, err
	}

	return used.Names(), labels, nil
}
