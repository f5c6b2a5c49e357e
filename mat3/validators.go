// SPDX-License-Identifier: MIT
// Package: mat3
//
// Purpose:
//   - Single source of truth for the finiteness and degeneracy guards that
//     every lattice-consuming routine runs before arithmetic.
//   - Return plain sentinels so call sites can wrap uniformly.

package mat3

import "math"

// ValidateFinite returns ErrNonFinite when any entry of m is NaN or ±Inf.
// Complexity: O(1).
func ValidateFinite(m Mat) error {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.IsNaN(m[i][j]) || math.IsInf(m[i][j], 0) {
				return ErrNonFinite
			}
		}
	}

	return nil
}

// ValidateNonDegenerate returns ErrNonFinite or ErrSingular for lattices that
// cannot be inverted.
// AI-Hints: call before any refinement or trimming stage that inverts m.
func ValidateNonDegenerate(m Mat) error {
	if err := ValidateFinite(m); err != nil {
		return err
	}
	if Volume(m) < DefaultEpsilon {
		return ErrSingular
	}

	return nil
}
