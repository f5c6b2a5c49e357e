// SPDX-License-Identifier: MIT

package spin

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsym/mat3"
)

// SiteTensors is a flat per-atom tensor field. Atom i owns
// Values[i*Components() : (i+1)*Components()].
type SiteTensors struct {
	Rank   int
	Values []float64
}

// NewSiteTensors allocates a zero field of the given rank for n atoms.
func NewSiteTensors(n, rank int) (SiteTensors, error) {
	if rank != 0 && rank != 1 {
		return SiteTensors{}, fmt.Errorf("spin.NewSiteTensors: rank %d: %w", rank, ErrTensorRank)
	}
	if n < 0 {
		return SiteTensors{}, fmt.Errorf("spin.NewSiteTensors: %d atoms: %w", n, ErrTensorSize)
	}
	t := SiteTensors{Rank: rank}
	t.Values = make([]float64, n*t.Components())

	return t, nil
}

// Components returns the number of values per atom.
func (t SiteTensors) Components() int {
	if t.Rank == 1 {
		return 3
	}

	return 1
}

// Len returns the number of atoms covered.
func (t SiteTensors) Len() int { return len(t.Values) / t.Components() }

// At returns atom i's components; the slice aliases Values.
func (t SiteTensors) At(i int) []float64 {
	k := t.Components()

	return t.Values[i*k : (i+1)*k : (i+1)*k]
}

// Set copies v into atom i's components.
func (t SiteTensors) Set(i int, v ...float64) { copy(t.At(i), v) }

// Clone returns an independent copy.
func (t SiteTensors) Clone() SiteTensors {
	out := SiteTensors{Rank: t.Rank, Values: make([]float64, len(t.Values))}
	copy(out.Values, t.Values)

	return out
}

func (t SiteTensors) validate(n int) error {
	if t.Rank != 0 && t.Rank != 1 {
		return ErrTensorRank
	}
	if len(t.Values) != n*t.Components() {
		return fmt.Errorf("%w: %d values for %d atoms of rank %d", ErrTensorSize, len(t.Values), n, t.Rank)
	}
	for _, v := range t.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value", ErrTensorSize)
		}
	}

	return nil
}

// action is the linear map an operation induces on one site tensor.
type action struct {
	rank  int
	scale float64  // s·d
	rot   mat3.Mat // R_c, rank 1 only
}

func newAction(rank int, rot mat3.Mat, det int, timeReversal, isAxial bool) action {
	a := action{rank: rank, scale: 1, rot: rot}
	if timeReversal {
		a.scale = -1
	}
	if rank == 1 && isAxial {
		a.scale *= float64(det)
	}

	return a
}

// apply writes the image of m into dst.
func (a action) apply(dst, m []float64) {
	if a.rank == 0 {
		dst[0] = a.scale * m[0]
		return
	}
	v := mat3.MulVec(a.rot, mat3.Vec{m[0], m[1], m[2]}).Scale(a.scale)
	copy(dst, v[:])
}

// matches reports whether the action maps every atom's tensor onto its
// image atom's tensor within tol (∞-norm).
func (a action) matches(t SiteTensors, perm []int, tol float64) bool {
	buf := make([]float64, t.Components())
	for i, j := range perm {
		a.apply(buf, t.At(i))
		target := t.At(j)
		for c := range buf {
			if math.Abs(buf[c]-target[c]) > tol {
				return false
			}
		}
	}

	return true
}
