// SPDX-License-Identifier: MIT

package mat3

import "math"

// maxReduceSweeps bounds the pairwise reduction loop; real lattices converge
// in a handful of sweeps.
const maxReduceSweeps = 100

// ReduceBasis returns a shorter, right-handed basis of the lattice spanned by
// the columns of m.
// Implementation:
//   - Stage 1: repeat pairwise size reduction b_i ← b_i − round(b_i·b_j / b_j·b_j)·b_j
//     over all ordered pairs (i≠j) until a full sweep changes nothing.
//   - Stage 2: order columns by non-decreasing length (stable).
//   - Stage 3: negate all columns when the determinant is negative.
//
// The transformation is unimodular at every step, so the spanned lattice and
// the cell volume are preserved.
//
// Complexity: O(sweeps) with sweeps <= maxReduceSweeps.
func ReduceBasis(m Mat) Mat {
	b := [3]Vec{m.Column(0), m.Column(1), m.Column(2)}

	for sweep := 0; sweep < maxReduceSweeps; sweep++ {
		changed := false
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if i == j {
					continue
				}
				den := b[j].Dot(b[j])
				if den < DefaultEpsilon {
					continue
				}
				mu := math.Round(b[i].Dot(b[j]) / den)
				if mu == 0 {
					continue
				}
				b[i] = b[i].Sub(b[j].Scale(mu))
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// insertion sort by length keeps equal-length vectors in original order
	for i := 1; i < 3; i++ {
		for k := i; k > 0 && b[k].Norm() < b[k-1].Norm()-DefaultEpsilon; k-- {
			b[k], b[k-1] = b[k-1], b[k]
		}
	}

	r := FromColumns(b[0], b[1], b[2])
	if Det(r) < 0 {
		r = Scale(r, -1)
	}

	return r
}
