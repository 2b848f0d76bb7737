package model

import "time"

// Path represents a file system path. "-" stands for the standard streams.
type Path string

// StdStream is the Path used for stdin or stdout.
const StdStream Path = "-"

// CaseReport is the persisted form of a CaseResult.
type CaseReport struct {
	Index  int      `yaml:"index"`
	Source Path     `yaml:"source,omitempty"`
	Notes  []string `yaml:"notes"`
	Keys   []string `yaml:"keys"`
	Error  string   `yaml:"error,omitempty"`
}

// Summary aggregates the outcome of a run.
type Summary struct {
	Cases     int `yaml:"cases"`
	Matched   int `yaml:"matched"`   // cases with at least one compatible key
	Unmatched int `yaml:"unmatched"` // cases reported as None
	Failed    int `yaml:"failed"`    // cases with a per-case error
}

// Report describes one run of the batch.
type Report struct {
	RunID      string       `yaml:"run_id"`
	Input      Path         `yaml:"input"`
	Output     Path         `yaml:"output,omitempty"`
	StartedAt  time.Time    `yaml:"started_at"`
	FinishedAt time.Time    `yaml:"finished_at"`
	Summary    Summary      `yaml:"summary"`
	Cases      []CaseReport `yaml:"cases"`
}

// Add records a case in the summary.
func (s *Summary) Add(c CaseReport) {
	s.Cases++

	switch {
	case c.Error != "":
		s.Failed++
	case len(c.Keys) == 0:
		s.Unmatched++
	default:
		s.Matched++
	}
}
