package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStageDuration("config", 150*time.Millisecond)
	pr.ObserveGenerationDuration(500 * time.Millisecond)
	pr.IncStageResult("config", ResultSuccess)
	pr.IncStageResult("config", ResultSuccess)
	pr.IncGenerationOutcome(OutcomeSuccess)
	pr.IncColorParseFailure("live2d.primary_color")
	pr.IncWatchTrigger("config")

	mfs, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(mfs))
	counters := map[string]float64{}
	for _, mf := range mfs {
		names = append(names, mf.GetName())
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				counters[mf.GetName()] += c.GetValue()
			}
		}
	}
	assert.ElementsMatch(t, []string{
		"docsite_stage_duration_seconds",
		"docsite_generation_duration_seconds",
		"docsite_stage_results_total",
		"docsite_generation_outcomes_total",
		"docsite_color_parse_failures_total",
		"docsite_watch_triggers_total",
	}, names)

	assert.InDelta(t, 2, counters["docsite_stage_results_total"], 0)
	assert.InDelta(t, 1, counters["docsite_color_parse_failures_total"], 0)
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.ObserveStageDuration("x", time.Second)
		pr.IncGenerationOutcome(OutcomeFailed)
		pr.IncWatchTrigger("docs")
	})
}

func TestHTTPHandler(t *testing.T) {
	reg := prom.NewRegistry()
	NewPrometheusRecorder(reg).IncGenerationOutcome(OutcomeWarning)

	srv := httptest.NewServer(HTTPHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `docsite_generation_outcomes_total{outcome="warning"} 1`), string(body))
}
