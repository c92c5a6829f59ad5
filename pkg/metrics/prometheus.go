// Package metrics provides Prometheus metrics for the astro-climate
// scoring engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the scoring engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Core scoring metrics.
	evaluationsTotal     prometheus.Counter
	configurationsScored prometheus.Counter
	evaluationDuration   prometheus.Histogram

	// Meter metrics.
	meterEvaluations  *prometheus.CounterVec
	meterDuration     prometheus.Histogram
	quietReadings     prometheus.Counter
	retroAdjustments  prometheus.Counter
	topContributorAbs prometheus.Histogram

	// Quality metrics.
	contractViolations prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "astroclimate",
		subsystem: "engine",
		// Millisecond buckets sized for in-memory scoring work.
		histogramBuckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default).
	auto := promauto.With(m.registry)

	m.evaluationsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluations_total",
		Help:      "Total number of full scoring evaluations",
	})

	m.configurationsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "configurations_scored_total",
		Help:      "Total number of configuration records scored",
	})

	m.evaluationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluation_duration_milliseconds",
		Help:      "Duration of a full evaluation (global score plus all meters)",
		Buckets:   m.histogramBuckets,
	})

	m.meterEvaluations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "meter_evaluations_total",
		Help:      "Meter evaluations by resulting state label",
	}, []string{"meter", "state"})

	m.meterDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "meter_duration_milliseconds",
		Help:      "Duration of a single meter evaluation",
		Buckets:   m.histogramBuckets,
	})

	m.quietReadings = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "quiet_readings_total",
		Help:      "Meter evaluations whose filtered subset was empty",
	})

	m.retroAdjustments = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "retrograde_adjustments_total",
		Help:      "Meter readings adjusted for a retrograde transiting body",
	})

	m.topContributorAbs = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "top_contributor_intensity",
		Help:      "Absolute intensity of the strongest contribution per evaluation",
		Buckets:   []float64{1, 2.5, 5, 10, 25, 50, 100},
	})

	m.contractViolations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "contract_violations_total",
		Help:      "Evaluations rejected for malformed upstream configurations",
	})
}

// RecordEvaluation increments the evaluations counter.
func RecordEvaluation() {
	globalManager.evaluationsTotal.Inc()
}

// RecordConfigurationsScored adds to the scored-configurations counter.
func RecordConfigurationsScored(count int) {
	globalManager.configurationsScored.Add(float64(count))
}

// RecordEvaluationDuration records a full-evaluation duration in milliseconds.
func RecordEvaluationDuration(durationMs float64) {
	globalManager.evaluationDuration.Observe(durationMs)
}

// RecordMeterEvaluation counts one meter evaluation by resulting state.
func RecordMeterEvaluation(meter, state string) {
	globalManager.meterEvaluations.WithLabelValues(meter, state).Inc()
}

// RecordMeterDuration records a single meter evaluation duration in milliseconds.
func RecordMeterDuration(durationMs float64) {
	globalManager.meterDuration.Observe(durationMs)
}

// RecordQuietReading increments the quiet-readings counter.
func RecordQuietReading() {
	globalManager.quietReadings.Inc()
}

// RecordRetroAdjustment increments the retrograde-adjustments counter.
func RecordRetroAdjustment() {
	globalManager.retroAdjustments.Inc()
}

// RecordTopContributorIntensity records the absolute intensity of the
// strongest contribution in an evaluation.
func RecordTopContributorIntensity(absIntensity float64) {
	globalManager.topContributorAbs.Observe(absIntensity)
}

// RecordContractViolation increments the contract-violations counter.
func RecordContractViolation() {
	globalManager.contractViolations.Inc()
}

// Registry returns the registry metrics are registered on, for callers that
// expose or scrape them.
func Registry() *prometheus.Registry {
	return customRegistry
}
