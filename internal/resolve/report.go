// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the on-disk record of one resolution run: the settings used,
// every title's outcome, and summary counts. Written when the researcher
// asks for a run report alongside the bibliography file.
type Report struct {
	Settings ReportSettings `yaml:"settings"`
	Titles   []ReportEntry  `yaml:"titles"`
	Summary  ReportSummary  `yaml:"summary"`
}

// ReportSettings stores the pipeline settings that produced the run.
type ReportSettings struct {
	Workers     int     `yaml:"workers"`
	MaxAttempts int     `yaml:"max_attempts"`
	Rate        float64 `yaml:"rate"`
	Burst       int     `yaml:"burst"`
}

// ReportEntry stores one title's outcome.
type ReportEntry struct {
	Position int    `yaml:"position"`
	Title    string `yaml:"title"`
	Status   string `yaml:"status"`
	Attempts int    `yaml:"attempts,omitempty"`
	DOI      string `yaml:"doi,omitempty"`
	Reason   string `yaml:"reason,omitempty"`
	Error    string `yaml:"error,omitempty"`
}

// ReportSummary stores run statistics and a timestamp.
type ReportSummary struct {
	Total     int       `yaml:"total"`
	Resolved  int       `yaml:"resolved"`
	NotFound  int       `yaml:"not_found"`
	Failed    int       `yaml:"failed"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteReport saves a YAML run report to path. Titles without a recorded
// outcome (an interrupted run) are listed with status "unprocessed".
func WriteReport(path string, titles []string, results *Results, settings ReportSettings) error {
	entries := make([]ReportEntry, len(titles))
	for i, t := range titles {
		entries[i] = ReportEntry{Position: i, Title: t, Status: "unprocessed"}
	}
	for _, e := range results.Snapshot() {
		entry := &entries[e.Pos]
		entry.Status = string(e.Outcome.Status)
		entry.Attempts = e.Outcome.Attempts
		if e.Outcome.Candidate != nil {
			entry.DOI = e.Outcome.Candidate.DOI
		}
		entry.Reason = string(e.Outcome.Reason)
		if e.Outcome.Err != nil {
			entry.Error = e.Outcome.Err.Error()
		}
	}

	s := results.Summary()
	report := Report{
		Settings: settings,
		Titles:   entries,
		Summary: ReportSummary{
			Total:     len(titles),
			Resolved:  s.Resolved,
			NotFound:  s.NotFound,
			Failed:    s.Failed,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
