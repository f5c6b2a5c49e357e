// SPDX-License-Identifier: MIT
// Package mat3 - closed-form 3×3 kernels.
//
// Determinism & Policy:
//   - Fixed i→j→k loop orders; no pivoting, no hidden allocation.
//   - Singularity is judged against DefaultEpsilon on the determinant.
//
// Complexity quicksheet:
//   - Every kernel is O(1) (27 multiply-adds at most).

package mat3

import "math"

const (
	opInverse = "Inverse"
	opSnap    = "SnapToInt"
)

// Mul returns a·b.
func Mul(a, b Mat) Mat {
	var r Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}

	return r
}

// MulVec returns m·v.
func MulVec(m Mat, v Vec) Vec {
	return Vec{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Transpose returns mᵀ.
func Transpose(m Mat) Mat {
	var r Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}

	return r
}

// Add returns a + b.
func Add(a, b Mat) Mat {
	var r Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = a[i][j] + b[i][j]
		}
	}

	return r
}

// Sub returns a − b.
func Sub(a, b Mat) Mat {
	var r Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = a[i][j] - b[i][j]
		}
	}

	return r
}

// Scale returns s·m.
func Scale(m Mat, s float64) Mat {
	var r Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = s * m[i][j]
		}
	}

	return r
}

// Det returns the determinant of m (rule of Sarrus).
func Det(m Mat) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) +
		m[0][1]*(m[1][2]*m[2][0]-m[1][0]*m[2][2]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Volume returns |det m|, the cell volume of a column lattice.
func Volume(m Mat) float64 { return math.Abs(Det(m)) }

// Metric returns the metric tensor G = mᵀ·m of a column lattice.
// G[i][j] is the inner product of basis vectors i and j.
func Metric(m Mat) Mat { return Mul(Transpose(m), m) }

// FrobeniusNorm returns sqrt(Σ m[i][j]²).
func FrobeniusNorm(m Mat) float64 {
	var s float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s += m[i][j] * m[i][j]
		}
	}

	return math.Sqrt(s)
}

// Inverse returns m⁻¹ via the adjugate.
// MAIN DESCRIPTION:
//   - Closed-form inverse for non-degenerate 3×3 matrices.
//
// Implementation:
//   - Stage 1: validate finiteness and |det| >= DefaultEpsilon.
//   - Stage 2: build the cofactor matrix, transpose and divide by det.
//
// Errors:
//   - ErrNonFinite, ErrSingular (wrapped with the "Inverse" tag).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Lattices are validated by cell.Set before reaching here; a singular
//     result therefore means a caller passed an unvalidated matrix.
func Inverse(m Mat) (Mat, error) {
	if err := ValidateFinite(m); err != nil {
		return Mat{}, mat3Errorf(opInverse, err)
	}
	det := Det(m)
	if math.Abs(det) < DefaultEpsilon {
		return Mat{}, mat3Errorf(opInverse, ErrSingular)
	}

	var r Mat
	r[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) / det
	r[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) / det
	r[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) / det
	r[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) / det
	r[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) / det
	r[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) / det
	r[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) / det
	r[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) / det
	r[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) / det

	return r, nil
}

// SnapToInt rounds m to the nearest integer matrix when every entry lies
// within eps of an integer, and reports ErrNotInteger otherwise.
func SnapToInt(m Mat, eps float64) (IMat, error) {
	var r IMat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rounded := math.Round(m[i][j])
			if math.Abs(m[i][j]-rounded) > eps {
				return IMat{}, mat3Errorf(opSnap, ErrNotInteger)
			}
			r[i][j] = int(rounded)
		}
	}

	return r, nil
}

// AlmostEqual reports whether every entry of a and b differs by at most eps.
func AlmostEqual(a, b Mat, eps float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(a[i][j]-b[i][j]) > eps {
				return false
			}
		}
	}

	return true
}
