// SPDX-License-Identifier: MIT
// Package refine: sentinel errors.

package refine

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSpacegroup is returned when the space group is nil.
	ErrNilSpacegroup = errors.New("refine: space group is nil")

	// ErrNilCell is returned when the primitive or original cell is nil.
	ErrNilCell = errors.New("refine: cell is nil")

	// ErrAperiodicCell is returned for layer cells; refinement needs full
	// three-dimensional periodicity.
	ErrAperiodicCell = errors.New("refine: layer cells are not supported")

	// ErrMappingSize is returned when the mapping length differs from the
	// original cell size.
	ErrMappingSize = errors.New("refine: mapping length mismatch")

	// ErrMappingRange is returned when a mapping entry is not a primitive atom.
	ErrMappingRange = errors.New("refine: mapping entry out of range")

	// ErrTolerance is returned for a non-positive or non-finite symprec.
	ErrTolerance = errors.New("refine: tolerance must be finite and > 0")

	// ErrDegenerateLattice is returned for singular or non-finite lattices.
	ErrDegenerateLattice = errors.New("refine: degenerate lattice")

	// ErrLatticeSystem is returned for space-group numbers outside 1..230.
	ErrLatticeSystem = errors.New("refine: no lattice system for space group number")

	// ErrCentering is returned when the lattice-point count of the Bravais
	// cell disagrees with the group's centering.
	ErrCentering = errors.New("refine: lattice points inconsistent with centering")

	// ErrSymmetryMismatch is returned when a reference operation maps some
	// atom onto no atom of the same type.
	ErrSymmetryMismatch = errors.New("refine: operation is not a symmetry of the structure")

	// ErrOrderMismatch is returned when orbit size times site-symmetry order
	// differs from the group order.
	ErrOrderMismatch = errors.New("refine: orbit and site symmetry inconsistent with group order")

	// ErrWyckoffMismatch is returned when an orbit matches no Wyckoff position.
	ErrWyckoffMismatch = errors.New("refine: no Wyckoff position matches orbit")

	// ErrInconsistent is returned when the assembled structure fails its
	// self-consistency check.
	ErrInconsistent = errors.New("refine: inconsistent exact structure")
)

// refineErrorf wraps err with a uniform "refine.<method>" tag.
func refineErrorf(method string, err error) error {
	return fmt.Errorf("refine.%s: %w", method, err)
}
