// SPDX-License-Identifier: MIT

package orbit

import (
	"context"
	"errors"
)

// Sentinel errors.
var (
	// ErrPermutationSize is returned when a permutation's length differs from
	// the atom count.
	ErrPermutationSize = errors.New("orbit: permutation length mismatch")

	// ErrPermutationRange is returned for entries outside [0, n).
	ErrPermutationRange = errors.New("orbit: permutation entry out of range")

	// ErrStartOutOfRange is returned when Walk starts outside [0, n).
	ErrStartOutOfRange = errors.New("orbit: start atom out of range")
)

// Options configures a walk.
type Options struct {
	// Ctx allows cancellation of large walks.
	Ctx context.Context

	// FilterPermutation skips permutation k when it returns false, so the
	// walk runs under the subgroup generated by the remaining ones.
	FilterPermutation func(k int) bool

	// OnVisit is called once per orbit member in visit order.
	OnVisit func(atom, depth int)
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns background context, no filtering and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:               context.Background(),
		FilterPermutation: func(int) bool { return true },
		OnVisit:           func(int, int) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFilterPermutation restricts the walk to permutations accepted by fn.
func WithFilterPermutation(fn func(k int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterPermutation = fn
		}
	}
}

// WithOnVisit installs a visit hook.
func WithOnVisit(fn func(atom, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result describes one orbit.
type Result struct {
	// Order lists the members in visit order, the start atom first.
	Order []int
	// Depth[i] is the number of permutation steps from the start, or -1 when
	// atom i is outside the orbit.
	Depth []int
	// Parent[i] is the member i was reached from (-1 for the start and
	// non-members).
	Parent []int
	// Via[i] is the index of the permutation that reached i (-1 likewise).
	Via []int
}

// Contains reports whether atom i belongs to the orbit.
func (r *Result) Contains(i int) bool { return i >= 0 && i < len(r.Depth) && r.Depth[i] >= 0 }
