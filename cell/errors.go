// SPDX-License-Identifier: MIT
// Package cell: sentinel errors. Every failure is returned as (nil, err) with
// one of these sentinels wrapped by a call-site tag; callers use errors.Is.

package cell

import (
	"errors"
	"fmt"
)

var (
	// ErrNilCell is returned when a nil *Cell is passed.
	ErrNilCell = errors.New("cell: cell is nil")

	// ErrEmptyCell is returned when a cell of size < 1 is requested.
	ErrEmptyCell = errors.New("cell: size must be > 0")

	// ErrSizeMismatch signals parallel arrays (types, positions, mapping) whose
	// lengths disagree with the cell size.
	ErrSizeMismatch = errors.New("cell: size mismatch")

	// ErrDegenerateLattice is returned for lattices with (near) zero volume or
	// non-finite entries.
	ErrDegenerateLattice = errors.New("cell: degenerate lattice")

	// ErrNonFinite signals a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("cell: NaN or Inf coordinate")

	// ErrAperiodicAxis is returned for an aperiodic axis outside {-1,0,1,2}.
	ErrAperiodicAxis = errors.New("cell: aperiodic axis must be -1, 0, 1 or 2")

	// ErrTolerance is returned for a non-positive or non-finite symprec.
	ErrTolerance = errors.New("cell: tolerance must be finite and > 0")

	// ErrLatticeNotSubmultiple is returned when the trimmed lattice is not a
	// sublattice of the structure: the volume ratio is not an integer N, N
	// does not divide the atom count, or atoms lack their N translation images.
	ErrLatticeNotSubmultiple = errors.New("cell: trimmed lattice is not a sublattice of the structure")

	// ErrOverlapInconsistent is returned when no tolerance in the reduction
	// schedule partitions the atoms into uniform overlap classes.
	ErrOverlapInconsistent = errors.New("cell: overlap classes inconsistent")

	// ErrTrimOverlap is returned when the trimmed cell still contains
	// coinciding atoms at the requested tolerance.
	ErrTrimOverlap = errors.New("cell: trimmed cell still has overlapping atoms")
)

// cellErrorf wraps err with a uniform "cell.<method>" tag.
func cellErrorf(method string, err error) error {
	return fmt.Errorf("cell.%s: %w", method, err)
}
