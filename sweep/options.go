// SPDX-License-Identifier: MIT

package sweep

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsym/cell"
	"github.com/katalvlaran/lvsym/refine"
)

const panicConcurrencyInvalid = "sweep: WithConcurrency: n must be >= 1"

// Options configures a sweep.
type Options struct {
	// Concurrency bounds the invocations in flight (default GOMAXPROCS).
	Concurrency int
	Logger      *zap.Logger
	Cell        []cell.Option
	Refine      []refine.Option
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns GOMAXPROCS concurrency and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Concurrency: runtime.GOMAXPROCS(0),
		Logger:      zap.NewNop(),
	}
}

// WithConcurrency sets the number of parallel invocations, n >= 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *Options) { o.Concurrency = n }
}

// WithLogger logs one debug line per invocation.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCellOptions forwards opts to every cell.Trim call.
func WithCellOptions(opts ...cell.Option) Option {
	return func(o *Options) { o.Cell = append(o.Cell, opts...) }
}

// WithRefineOptions forwards opts to every refine.Refine call.
func WithRefineOptions(opts ...refine.Option) Option {
	return func(o *Options) { o.Refine = append(o.Refine, opts...) }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
