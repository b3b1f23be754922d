// Package jobs provides Prometheus metrics for scheduled background work.
package jobs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Job type label values.
const (
	JobTypeReviewRefresh = "review_refresh"
)

// Status label values for job completion.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusSkipped = "skipped"
)

// Metrics counts job outcomes and observes durations. All operations are
// safe for concurrent use and nil-safe, so callers may run without metrics.
type Metrics struct {
	jobsTotal    *prometheus.CounterVec
	jobsDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors without registering them; call Register
// with the target registry.
func NewMetrics() *Metrics {
	return &Metrics{
		jobsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "background_jobs_total",
				Help: "Total number of background job executions by type and status",
			},
			[]string{"job_type", "status"},
		),
		jobsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "background_jobs_duration_seconds",
				Help:    "Histogram of background job duration in seconds by job type",
				Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
			},
			[]string{"job_type"},
		),
	}
}

// Register registers all collectors with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.jobsTotal, m.jobsDuration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// RecordOutcome counts one job execution with the given status.
func (m *Metrics) RecordOutcome(jobType, status string) {
	if m == nil {
		return
	}
	m.jobsTotal.WithLabelValues(jobType, status).Inc()
}

// ObserveDuration records how long one job execution took.
func (m *Metrics) ObserveDuration(jobType string, d time.Duration) {
	if m == nil {
		return
	}
	m.jobsDuration.WithLabelValues(jobType).Observe(d.Seconds())
}
