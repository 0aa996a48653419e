package metrics

import (
	"testing"
	"time"
)

// The noop recorder must satisfy the interface and accept any input.
func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveStageDuration("config", time.Millisecond)
	r.ObserveGenerationDuration(time.Second)
	r.IncStageResult("config", ResultFatal)
	r.IncGenerationOutcome(OutcomeCanceled)
	r.IncColorParseFailure("theme.primary_color")
	r.IncWatchTrigger("config")
}

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)
