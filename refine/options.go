// SPDX-License-Identifier: MIT

package refine

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvsym/refdata"
	"github.com/katalvlaran/lvsym/telemetry"
)

// Options configures Refine and FindSimilarBravaisLattice.
type Options struct {
	Logger   *zap.Logger
	Recorder telemetry.Recorder
	// Table overrides the embedded reference table when non-nil.
	Table *refdata.Table
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns no-op logging and metrics and the embedded table.
func DefaultOptions() Options {
	return Options{
		Logger:   zap.NewNop(),
		Recorder: telemetry.Nop{},
	}
}

// WithLogger routes debug events (rejected Wyckoff candidates) to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder reports each Refine outcome to r.
func WithRecorder(r telemetry.Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// WithTable uses t instead of the embedded reference table.
func WithTable(t *refdata.Table) Option {
	return func(o *Options) {
		if t != nil {
			o.Table = t
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

func (o Options) lookup(number int) (*refdata.Group, error) {
	t := o.Table
	if t == nil {
		var err error
		if t, err = refdata.Default(); err != nil {
			return nil, err
		}
	}

	return t.Lookup(number)
}
