// SPDX-License-Identifier: MIT
// Package spin: sentinel errors.

package spin

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSymmetry is returned when the ordinary or magnetic symmetry is nil.
	ErrNilSymmetry = errors.New("spin: symmetry is nil")

	// ErrNilCell is returned when the cell is nil.
	ErrNilCell = errors.New("spin: cell is nil")

	// ErrTensorRank is returned for tensor ranks other than 0 and 1.
	ErrTensorRank = errors.New("spin: tensor rank must be 0 or 1")

	// ErrTensorSize is returned when the tensor values do not cover the cell.
	ErrTensorSize = errors.New("spin: tensor values do not match cell size")

	// ErrTolerance is returned for a non-positive or non-finite tolerance.
	ErrTolerance = errors.New("spin: tolerance must be finite and > 0")

	// ErrPermutationSize is returned when permutations do not match the
	// operations or the cell.
	ErrPermutationSize = errors.New("spin: permutations do not match operations")

	// ErrNoMagneticSymmetry is returned when no operation survives or the
	// identity is not among the survivors.
	ErrNoMagneticSymmetry = errors.New("spin: no magnetic symmetry")

	// ErrPrimitiveLattice is returned when the pure translations do not span
	// a lattice of the expected volume.
	ErrPrimitiveLattice = errors.New("spin: cannot build primitive lattice")
)

// spinErrorf wraps err with a uniform "spin.<method>" tag.
func spinErrorf(method string, err error) error {
	return fmt.Errorf("spin.%s: %w", method, err)
}
