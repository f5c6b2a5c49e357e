// SPDX-License-Identifier: MIT
// Package mat3: sentinel error set.
// All routines return these sentinels (optionally wrapped with a call-site tag);
// callers match them with errors.Is.

package mat3

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned when a matrix determinant is below DefaultEpsilon.
	ErrSingular = errors.New("mat3: singular matrix")

	// ErrNonFinite signals a NaN or ±Inf entry where finite values are required.
	ErrNonFinite = errors.New("mat3: NaN or Inf encountered")

	// ErrNotUnimodular is returned when an integer matrix has |det| != 1 and
	// therefore has no integer inverse.
	ErrNotUnimodular = errors.New("mat3: integer matrix is not unimodular")

	// ErrNotInteger is returned when a real matrix cannot be snapped to integers.
	ErrNotInteger = errors.New("mat3: matrix is not integral within eps")
)

// mat3Errorf wraps an underlying sentinel with the operation tag.
func mat3Errorf(tag string, err error) error {
	return fmt.Errorf("mat3.%s: %w", tag, err)
}
