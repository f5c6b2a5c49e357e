// SPDX-License-Identifier: MIT

// Package telemetry records engine outcomes (trim, refine, magnetic search)
// as Prometheus metrics. Engines depend only on the Recorder interface; the
// default is Nop so that library use stays metric-free unless a caller opts in.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by all engines.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

// Operation labels.
const (
	OpTrim     = "trim"
	OpRefine   = "refine"
	OpMagnetic = "magnetic"
	OpIdealize = "idealize"
)

// Recorder receives one observation per engine invocation.
type Recorder interface {
	Observe(op, outcome string, elapsed time.Duration)
}

// Nop discards every observation.
type Nop struct{}

// Observe implements Recorder.
func (Nop) Observe(string, string, time.Duration) {}

// Prometheus is a Recorder backed by a counter and a histogram vector.
type Prometheus struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ Recorder = (*Prometheus)(nil)

// NewPrometheus registers the lvsym collectors on reg and returns a Recorder.
// Passing a dedicated registry keeps tests and multiple engines independent.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	f := promauto.With(reg)

	return &Prometheus{
		total: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvsym_operations_total",
			Help: "Total symmetry engine invocations by operation and outcome",
		}, []string{"op", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvsym_operation_duration_seconds",
			Help:    "Symmetry engine invocation latency",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"op"}),
	}
}

// Observe implements Recorder.
func (p *Prometheus) Observe(op, outcome string, elapsed time.Duration) {
	p.total.WithLabelValues(op, outcome).Inc()
	p.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// Outcome maps an error to its outcome label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeFailed
	}

	return OutcomeOK
}
