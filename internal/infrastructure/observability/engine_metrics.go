package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus counters for the report engine's downgrade points, scraped from /metrics.
var (
	// ReportsTotal tracks generated reports by outcome (ok, degraded, rejected, unavailable)
	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "inspection_report",
			Subsystem: "engine",
			Name:      "reports_total",
			Help:      "Total number of report generation attempts by outcome",
		},
		[]string{"outcome"},
	)

	// QueryFallbacksTotal tracks named queries that settled to an empty collection because they failed
	QueryFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "inspection_report",
			Subsystem: "gatherer",
			Name:      "query_fallbacks_total",
			Help:      "Total number of named queries downgraded to an empty collection",
		},
		[]string{"query", "reason"},
	)

	// SectionFailuresTotal tracks sections replaced by an error placeholder
	SectionFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "inspection_report",
			Subsystem: "assembler",
			Name:      "section_failures_total",
			Help:      "Total number of sections replaced by an error placeholder",
		},
		[]string{"section"},
	)

	// SkippedPayloadReadingsTotal tracks legacy task readings dropped during extraction
	SkippedPayloadReadingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "inspection_report",
			Subsystem: "temperature",
			Name:      "skipped_payload_readings_total",
			Help:      "Total number of legacy task payload readings skipped as malformed",
		},
		[]string{"shape", "reason"},
	)

	// GenerationDuration tracks end-to-end report generation duration in seconds
	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "inspection_report",
			Subsystem: "engine",
			Name:      "generation_duration_seconds",
			Help:      "Duration of report generation in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30},
		},
	)
)
