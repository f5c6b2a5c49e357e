// SPDX-License-Identifier: MIT
// Package cell: functional options for Trim.
//
// Design goals:
//   - Deterministic behavior: the tolerance schedule is fully given by
//     (symprec, ReduceRate, MaxAttempts).
//   - Safe by construction: constructors panic only on nonsensical values.

package cell

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsym/telemetry"
)

const (
	// DefaultReduceRate multiplies the trimming tolerance after each attempt
	// whose overlap classes are not a clean, uniform partition.
	DefaultReduceRate = 0.95

	// DefaultMaxAttempts bounds the tolerance reduction schedule.
	DefaultMaxAttempts = 100

	// snapEpsilon is the slack for snapping the cell→trimmed transformation
	// to an integer matrix.
	snapEpsilon = 1e-6

	// volumeRatioEpsilon is the slack on |det cell| / |det trimmed| being an
	// integer. It absorbs the strain between a measured cell and an idealized
	// target lattice.
	volumeRatioEpsilon = 1e-2
)

const (
	panicReduceRateInvalid  = "cell: WithReduceRate: rate must be in (0,1)"
	panicMaxAttemptsInvalid = "cell: WithMaxAttempts: attempts must be >= 1"
)

// Options configures Trim.
type Options struct {
	ReduceRate  float64
	MaxAttempts int
	Logger      *zap.Logger
	Recorder    telemetry.Recorder
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults with a no-op logger and
// recorder.
func DefaultOptions() Options {
	return Options{
		ReduceRate:  DefaultReduceRate,
		MaxAttempts: DefaultMaxAttempts,
		Logger:      zap.NewNop(),
		Recorder:    telemetry.Nop{},
	}
}

// WithReduceRate sets the tolerance reduction factor, 0 < rate < 1.
func WithReduceRate(rate float64) Option {
	if math.IsNaN(rate) || rate <= 0 || rate >= 1 {
		panic(panicReduceRateInvalid)
	}

	return func(o *Options) { o.ReduceRate = rate }
}

// WithMaxAttempts sets the number of tolerances tried before giving up.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic(panicMaxAttemptsInvalid)
	}

	return func(o *Options) { o.MaxAttempts = n }
}

// WithLogger routes debug events (tolerance reductions) to l. nil keeps the
// no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder reports each Trim outcome to r. nil keeps the no-op recorder.
func WithRecorder(r telemetry.Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
