package batch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lexidiff/diff"
)

// metrics holds the optional Prometheus instruments of a batch. A nil
// receiver is a no-op, so callers without a registerer pay nothing.
type metrics struct {
	runs      *prometheus.CounterVec
	exhausted *prometheus.CounterVec
	duration  prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		return nil
	}
	m := &metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lexidiff",
			Subsystem: "batch",
			Name:      "runs_total",
			Help:      "Differentiation runs executed, by policy.",
		}, []string{"policy"}),
		exhausted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lexidiff",
			Subsystem: "batch",
			Name:      "runs_exhausted_total",
			Help:      "Runs that hit the level cap without terminating, by policy.",
		}, []string{"policy"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lexidiff",
			Subsystem: "batch",
			Name:      "pair_duration_seconds",
			Help:      "Wall time to fully evaluate one seed pair.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	reg.MustRegister(m.runs, m.exhausted, m.duration)

	return m
}

func (m *metrics) observeRun(p diff.Policy, r *diff.Result) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(p.String()).Inc()
	if r.Status == diff.StatusExhausted {
		m.exhausted.WithLabelValues(p.String()).Inc()
	}
}

func (m *metrics) observeDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.duration.Observe(d.Seconds())
}
