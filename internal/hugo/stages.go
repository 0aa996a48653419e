package hugo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
)

// StageName is a strongly-typed identifier for a generation stage.
type StageName string

const (
	StagePrepare        StageName = "prepare"
	StageResolveSidebar StageName = "resolve_sidebar"
	StageEditLink       StageName = "resolve_edit_link"
	StageConfig         StageName = "config"
	StageStyles         StageName = "styles"
	StageWidgets        StageName = "widgets"
	StageData           StageName = "data"
)

// Stage is a discrete unit of work in site generation.
type Stage func(ctx context.Context, st *state) error

type stageDef struct {
	name StageName
	fn   Stage
}

// StageErrorKind enumerates structured stage error categories.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"    // Generation must abort.
	StageErrorWarning  StageErrorKind = "warning"  // Non-fatal; record and continue.
	StageErrorCanceled StageErrorKind = "canceled" // Context cancellation.
)

// StageError is a structured error carrying its kind and the failing stage.
type StageError struct {
	Kind  StageErrorKind
	Stage StageName
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

func newFatalStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorFatal, Stage: stage, Err: err}
}

func newWarnStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorWarning, Stage: stage, Err: err}
}

func newCanceledStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorCanceled, Stage: stage, Err: err}
}

var resultLabels = map[StageErrorKind]metrics.ResultLabel{
	StageErrorFatal:    metrics.ResultFatal,
	StageErrorWarning:  metrics.ResultWarning,
	StageErrorCanceled: metrics.ResultCanceled,
}

// runStages executes stages in order, checking for cancellation between them.
// Warnings are recorded and skipped over; the first fatal or canceled stage
// stops the run and is returned.
func runStages(ctx context.Context, st *state, stages []stageDef) error {
	rec := st.generator.recorder
	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			se := newCanceledStageError(s.name, err)
			st.report.recordStage(s.name, 0, se)
			rec.IncStageResult(string(s.name), metrics.ResultCanceled)
			return se
		}

		t0 := time.Now()
		err := s.fn(ctx, st)
		dur := time.Since(t0)
		rec.ObserveStageDuration(string(s.name), dur)

		if err == nil {
			st.report.recordStage(s.name, dur, nil)
			rec.IncStageResult(string(s.name), metrics.ResultSuccess)
			slog.Debug("Stage completed", logfields.Stage(string(s.name)), logfields.DurationMS(float64(dur.Microseconds())/1000))
			continue
		}

		var se *StageError
		if !errors.As(err, &se) {
			se = newFatalStageError(s.name, err)
		}
		st.report.recordStage(s.name, dur, se)
		rec.IncStageResult(string(s.name), resultLabels[se.Kind])
		if se.Kind == StageErrorWarning {
			slog.Warn("Stage completed with warning", logfields.Stage(string(s.name)), logfields.Error(se.Err))
			continue
		}
		return se
	}
	return nil
}
