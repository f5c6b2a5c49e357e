// SPDX-License-Identifier: MIT
// Package cell - overlap detector.
//
// Purpose:
//   - Decide whether two fractional positions describe the same site modulo
//     lattice translations, within an absolute Cartesian tolerance.
//   - Provide bulk "any overlap" scans used as a post-condition of Trim.
//
// Numeric policy:
//   - d = a − b; d_k −= round(d_k) on periodic axes only; |L·d| <= symprec.
//   - Inclusive comparison keeps the predicate reflexive; math.Round is odd,
//     so the predicate is symmetric in (a, b).
//
// Complexity quicksheet:
//   - pair predicates O(1); AnyOverlap* O(n²).

package cell

import (
	"math"

	"github.com/katalvlaran/lvsym/mat3"
)

// MinimumImage reduces a fractional difference to its nearest periodic image
// along every axis except aperiodicAxis (Periodic wraps all three).
func MinimumImage(d mat3.Vec, aperiodicAxis int) mat3.Vec {
	for k := 0; k < 3; k++ {
		if k == aperiodicAxis {
			continue
		}
		d[k] -= math.Round(d[k])
	}

	return d
}

// IsOverlap reports whether a and b coincide modulo lattice translations.
func IsOverlap(a, b mat3.Vec, lattice mat3.Mat, symprec float64) bool {
	d := MinimumImage(a.Sub(b), Periodic)

	return mat3.MulVec(lattice, d).Norm() <= symprec
}

// IsOverlapWithSameType is IsOverlap gated on typeA == typeB. A type mismatch
// returns false before any arithmetic.
func IsOverlapWithSameType(a, b mat3.Vec, typeA, typeB int, lattice mat3.Mat, symprec float64) bool {
	if typeA != typeB {
		return false
	}

	return IsOverlap(a, b, lattice, symprec)
}

// LayerIsOverlap is IsOverlap for layer cells: only the two periodicAxes are
// wrapped, the remaining coordinate difference is compared as is.
func LayerIsOverlap(a, b mat3.Vec, lattice mat3.Mat, periodicAxes [2]int, symprec float64) bool {
	d := a.Sub(b)
	for _, k := range periodicAxes {
		d[k] -= math.Round(d[k])
	}

	return mat3.MulVec(lattice, d).Norm() <= symprec
}

// LayerIsOverlapWithSameType is LayerIsOverlap gated on typeA == typeB.
func LayerIsOverlapWithSameType(a, b mat3.Vec, typeA, typeB int, lattice mat3.Mat, periodicAxes [2]int, symprec float64) bool {
	if typeA != typeB {
		return false
	}

	return LayerIsOverlap(a, b, lattice, periodicAxes, symprec)
}

// AnyOverlap reports whether any two distinct atoms of c coincide, regardless
// of type. Layer cells are scanned with the layer predicate.
func AnyOverlap(c *Cell, symprec float64) bool {
	if c.IsLayer() {
		return LayerAnyOverlap(c, c.PeriodicAxes(), symprec)
	}
	n := c.Size()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if IsOverlap(c.Positions[i], c.Positions[j], c.Lattice, symprec) {
				return true
			}
		}
	}

	return false
}

// AnyOverlapWithSameType reports whether any two distinct atoms of the same
// type coincide.
func AnyOverlapWithSameType(c *Cell, symprec float64) bool {
	if c.IsLayer() {
		return LayerAnyOverlapWithSameType(c, c.PeriodicAxes(), symprec)
	}
	n := c.Size()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if IsOverlapWithSameType(c.Positions[i], c.Positions[j], c.Types[i], c.Types[j], c.Lattice, symprec) {
				return true
			}
		}
	}

	return false
}

// LayerAnyOverlap is AnyOverlap with an explicit pair of periodic axes.
func LayerAnyOverlap(c *Cell, periodicAxes [2]int, symprec float64) bool {
	n := c.Size()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if LayerIsOverlap(c.Positions[i], c.Positions[j], c.Lattice, periodicAxes, symprec) {
				return true
			}
		}
	}

	return false
}

// LayerAnyOverlapWithSameType is AnyOverlapWithSameType with an explicit pair
// of periodic axes.
func LayerAnyOverlapWithSameType(c *Cell, periodicAxes [2]int, symprec float64) bool {
	n := c.Size()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if LayerIsOverlapWithSameType(c.Positions[i], c.Positions[j], c.Types[i], c.Types[j], c.Lattice, periodicAxes, symprec) {
				return true
			}
		}
	}

	return false
}

// overlapsIn dispatches to the periodic or layer predicate for one pair.
func overlapsIn(a, b mat3.Vec, lattice mat3.Mat, aperiodicAxis int, symprec float64) bool {
	if aperiodicAxis == Periodic {
		return IsOverlap(a, b, lattice, symprec)
	}

	return LayerIsOverlap(a, b, lattice, PeriodicAxesOf(aperiodicAxis), symprec)
}

// FindOverlap returns the index of the first atom of c with type typ that
// overlaps p, or -1. Layer cells use the layer predicate.
func FindOverlap(c *Cell, p mat3.Vec, typ int, symprec float64) int {
	for j := range c.Positions {
		if c.Types[j] != typ {
			continue
		}
		if overlapsIn(p, c.Positions[j], c.Lattice, c.AperiodicAxis, symprec) {
			return j
		}
	}

	return -1
}
