package extractor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the extraction engine.
type Metrics struct {
	Registry           *prometheus.Registry
	ExtractionsTotal   *prometheus.CounterVec
	FailuresTotal      *prometheus.CounterVec
	ExtractionDuration prometheus.Histogram
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	extractions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extractor_extractions_total",
			Help: "Completed extractions by outcome and extraction source.",
		},
		[]string{"outcome", "source"},
	)
	failures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extractor_failures_total",
			Help: "Extractions that produced no result, by reason.",
		},
		[]string{"reason"},
	)
	duration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "extractor_duration_seconds",
			Help:    "Wall time of one extraction, fetch included.",
			Buckets: prometheus.DefBuckets,
		},
	)

	registry.MustRegister(extractions, failures, duration)

	return &Metrics{
		Registry:           registry,
		ExtractionsTotal:   extractions,
		FailuresTotal:      failures,
		ExtractionDuration: duration,
	}
}

// ObserveExtraction records a completed extraction.
func (m *Metrics) ObserveExtraction(outcome Outcome, source string, d time.Duration) {
	if m == nil {
		return
	}
	m.ExtractionsTotal.WithLabelValues(string(outcome), source).Inc()
	m.ExtractionDuration.Observe(d.Seconds())
}

// IncFailure records an extraction that produced no result.
func (m *Metrics) IncFailure(reason string) {
	if m == nil {
		return
	}
	m.FailuresTotal.WithLabelValues(reason).Inc()
}
