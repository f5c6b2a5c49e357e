// SPDX-License-Identifier: MIT

package spin

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvsym/telemetry"
)

// Options configures Operations and IdealizedCell.
type Options struct {
	Logger   *zap.Logger
	Recorder telemetry.Recorder
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns no-op logging and metrics.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop(), Recorder: telemetry.Nop{}}
}

// WithLogger routes debug events (dropped operations) to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder reports each invocation outcome to r.
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
