package hugo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"git.home.luguber.info/inful/docsite/internal/metrics"
)

// ReportFile is written into the output directory after a successful run.
const ReportFile = "build-report.json"

// Report captures what a generation run did.
type Report struct {
	Start          time.Time
	End            time.Time
	OutputDir      string
	Theme          string
	Files          []string // written files, relative to OutputDir
	Sections       int      // sidebar sections
	StageDurations map[StageName]time.Duration
	StageResults   map[StageName]StageErrorKind // absent for successful stages
	Warnings       []error
	Errors         []error
	Outcome        metrics.OutcomeLabel
}

func newReport(outputDir, theme string) *Report {
	return &Report{
		Start:          time.Now(),
		OutputDir:      outputDir,
		Theme:          theme,
		StageDurations: make(map[StageName]time.Duration),
		StageResults:   make(map[StageName]StageErrorKind),
	}
}

func (r *Report) recordStage(name StageName, d time.Duration, se *StageError) {
	r.StageDurations[name] = d
	if se == nil {
		return
	}
	r.StageResults[name] = se.Kind
	if se.Kind == StageErrorWarning {
		r.Warnings = append(r.Warnings, se)
	} else {
		r.Errors = append(r.Errors, se)
	}
}

func (r *Report) addFile(rel string) {
	rel = filepath.ToSlash(rel)
	if !slices.Contains(r.Files, rel) {
		r.Files = append(r.Files, rel)
	}
}

func (r *Report) finish() {
	r.End = time.Now()
	slices.Sort(r.Files)
	r.deriveOutcome()
}

// deriveOutcome sets Outcome based on recorded errors and warnings.
func (r *Report) deriveOutcome() {
	switch {
	case len(r.Errors) > 0:
		r.Outcome = metrics.OutcomeFailed
		for _, kind := range r.StageResults {
			if kind == StageErrorCanceled {
				r.Outcome = metrics.OutcomeCanceled
			}
		}
	case len(r.Warnings) > 0:
		r.Outcome = metrics.OutcomeWarning
	default:
		r.Outcome = metrics.OutcomeSuccess
	}
}

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration { return r.End.Sub(r.Start) }

// Summary returns a human-readable single-line summary.
func (r *Report) Summary() string {
	return fmt.Sprintf("theme=%s files=%d sections=%d duration=%s warnings=%d errors=%d stages=%d outcome=%s",
		r.Theme, len(r.Files), r.Sections, r.Duration().Truncate(time.Millisecond),
		len(r.Warnings), len(r.Errors), len(r.StageDurations), r.Outcome)
}

type reportJSON struct {
	Start          time.Time        `json:"start"`
	End            time.Time        `json:"end"`
	Theme          string           `json:"theme"`
	Files          []string         `json:"files"`
	Sections       int              `json:"sections"`
	StageDurations map[string]int64 `json:"stage_durations_ms"`
	Warnings       []string         `json:"warnings"`
	Outcome        string           `json:"outcome"`
}

// Persist writes the report as JSON into the output directory, atomically.
func (r *Report) Persist() error {
	out := reportJSON{
		Start:          r.Start,
		End:            r.End,
		Theme:          r.Theme,
		Files:          r.Files,
		Sections:       r.Sections,
		StageDurations: make(map[string]int64, len(r.StageDurations)),
		Warnings:       make([]string, 0, len(r.Warnings)),
		Outcome:        string(r.Outcome),
	}
	for k, v := range r.StageDurations {
		out.StageDurations[string(k)] = v.Milliseconds()
	}
	for _, w := range r.Warnings {
		out.Warnings = append(out.Warnings, w.Error())
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report json: %w", err)
	}
	path := filepath.Join(r.OutputDir, ReportFile)
	tmp := path + ".tmp"
	// #nosec G306 -- report is not secret
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp report: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("atomic rename report: %w", err)
	}
	return nil
}
