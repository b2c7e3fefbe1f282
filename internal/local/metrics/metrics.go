package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the local coverage module.
type Metrics struct {
	// Scorecard cache lookups by outcome ("hit", "miss")
	CacheLookups *prometheus.CounterVec

	// Cache lookup latency by backend
	CacheLookupLatency *prometheus.HistogramVec

	// Invalidations by trigger ("signal_added", "config_updated", "manual")
	Invalidations *prometheus.CounterVec

	// Full recompute latency (config + signals + persist)
	ComputeLatency prometheus.Histogram

	// Computed scores, applicable projects only
	Scores prometheus.Histogram

	// Computed scorecards by applicability status
	Applicability *prometheus.CounterVec

	// Gaps emitted by gap type and severity
	Gaps *prometheus.CounterVec

	// Issues published to the pipeline by outcome
	IssuesPublished *prometheus.CounterVec
}

// New creates a Metrics instance registered with the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the module metrics on reg. Tests pass a fresh
// prometheus.NewRegistry() to avoid duplicate registration panics.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "beacon_local_coverage_cache_lookups_total",
			Help: "Scorecard cache lookups by outcome",
		}, []string{"outcome"}),

		CacheLookupLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "beacon_local_coverage_cache_lookup_duration_seconds",
			Help:    "Duration of scorecard cache lookups by backend",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"backend"}),

		Invalidations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "beacon_local_coverage_invalidations_total",
			Help: "Scorecard cache invalidations by trigger",
		}, []string{"trigger"}),

		ComputeLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "beacon_local_coverage_compute_duration_seconds",
			Help:    "Duration of a full scorecard recompute including persistence",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),

		Scores: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "beacon_local_coverage_score",
			Help:    "Distribution of computed local coverage scores",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),

		Applicability: f.NewCounterVec(prometheus.CounterOpts{
			Name: "beacon_local_coverage_scorecards_total",
			Help: "Computed scorecards by applicability status",
		}, []string{"applicability"}),

		Gaps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "beacon_local_coverage_gaps_total",
			Help: "Coverage gaps emitted by gap type and severity",
		}, []string{"gap_type", "severity"}),

		IssuesPublished: f.NewCounterVec(prometheus.CounterOpts{
			Name: "beacon_local_issues_published_total",
			Help: "Local issues handed to the issue pipeline by outcome",
		}, []string{"outcome"}),
	}
}

// RecordCacheHit records a cache hit.
func (m *Metrics) RecordCacheHit() {
	if m != nil {
		m.CacheLookups.WithLabelValues("hit").Inc()
	}
}

// RecordCacheMiss records a cache miss.
func (m *Metrics) RecordCacheMiss() {
	if m != nil {
		m.CacheLookups.WithLabelValues("miss").Inc()
	}
}

// ObserveCacheLookup records how long a store lookup took.
func (m *Metrics) ObserveCacheLookup(backend string, d time.Duration) {
	if m != nil {
		m.CacheLookupLatency.WithLabelValues(backend).Observe(d.Seconds())
	}
}

// IncrementInvalidation records a cache invalidation.
func (m *Metrics) IncrementInvalidation(trigger string) {
	if m != nil {
		m.Invalidations.WithLabelValues(trigger).Inc()
	}
}

// ObserveCompute records a recompute and its result.
func (m *Metrics) ObserveCompute(d time.Duration, applicability string, score *int) {
	if m == nil {
		return
	}
	m.ComputeLatency.Observe(d.Seconds())
	m.Applicability.WithLabelValues(applicability).Inc()
	if score != nil {
		m.Scores.Observe(float64(*score))
	}
}

// IncrementGap records an emitted gap.
func (m *Metrics) IncrementGap(gapType, severity string) {
	if m != nil {
		m.Gaps.WithLabelValues(gapType, severity).Inc()
	}
}

// AddIssuesPublished records the outcome of a publish batch.
func (m *Metrics) AddIssuesPublished(outcome string, n int) {
	if m != nil {
		m.IssuesPublished.WithLabelValues(outcome).Add(float64(n))
	}
}
