package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline stage labels
const (
	StageTranscribe = "transcribe"
	StageExtract    = "extract"
	StageRender     = "render"
)

// Metrics contains all Prometheus metrics for the site generator.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Pipeline metrics
	PipelineRuns       *prometheus.CounterVec
	StageDuration      *prometheus.HistogramVec
	ExtractionDegraded *prometheus.CounterVec

	// HTTP API metrics
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates all metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PipelineRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "v2s_pipeline_runs_total",
			Help: "Total number of site generation runs by input kind and outcome",
		}, []string{"input", "outcome"}),
		StageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "v2s_stage_duration_seconds",
			Help:    "Time spent in each pipeline stage",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"stage"}),
		ExtractionDegraded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "v2s_extraction_degraded_total",
			Help: "Extractions that fell back to the default record, by reason",
		}, []string{"reason"}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "v2s_http_requests_total",
			Help: "Total number of HTTP API requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "v2s_http_request_duration_seconds",
			Help:    "HTTP API request duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// ObserveStage records how long a pipeline stage took
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// RecordRun counts a finished pipeline run
func (m *Metrics) RecordRun(input, outcome string) {
	if m == nil {
		return
	}
	m.PipelineRuns.WithLabelValues(input, outcome).Inc()
}

// RecordDegraded counts an extraction that used the default record
func (m *Metrics) RecordDegraded(reason string) {
	if m == nil {
		return
	}
	m.ExtractionDegraded.WithLabelValues(reason).Inc()
}

// RecordHTTP counts a served HTTP request
func (m *Metrics) RecordHTTP(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
