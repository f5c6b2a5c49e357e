// SPDX-License-Identifier: MIT

package mat3

import "math"

// DefaultEpsilon is the absolute tolerance used by singularity checks and by
// integer snapping of transformation matrices.
const DefaultEpsilon = 1e-10

// Vec is a 3-vector (fractional or Cartesian, depending on context).
type Vec [3]float64

// Mat is a real 3×3 matrix in row-major order.
type Mat [3][3]float64

// IMat is an integer 3×3 matrix in row-major order (rotation parts of
// symmetry operations, unimodular basis changes).
type IMat [3][3]int

// Identity returns the real identity matrix.
func Identity() Mat {
	return Mat{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// IIdentity returns the integer identity matrix.
func IIdentity() IMat {
	return IMat{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Diag returns diag(a, b, c).
func Diag(a, b, c float64) Mat {
	return Mat{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}

// FromColumns builds a matrix whose columns are a, b and c.
func FromColumns(a, b, c Vec) Mat {
	return Mat{
		{a[0], b[0], c[0]},
		{a[1], b[1], c[1]},
		{a[2], b[2], c[2]},
	}
}

// Column returns column j of m.
func (m Mat) Column(j int) Vec {
	return Vec{m[0][j], m[1][j], m[2][j]}
}

// Float converts an integer matrix to a real one.
func (m IMat) Float() Mat {
	var r Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = float64(m[i][j])
		}
	}

	return r
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec { return Vec{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Sub returns v − w.
func (v Vec) Sub(w Vec) Vec { return Vec{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Scale returns s·v.
func (v Vec) Scale(s float64) Vec { return Vec{s * v[0], s * v[1], s * v[2]} }

// Dot returns the Euclidean inner product.
func (v Vec) Dot(w Vec) float64 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Cross returns v × w.
func (v Vec) Cross(w Vec) Vec {
	return Vec{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Round rounds every component to the nearest integer (half away from zero).
// Round(-x) == -Round(x), which keeps minimum-image differences antisymmetric.
func (v Vec) Round() Vec {
	return Vec{math.Round(v[0]), math.Round(v[1]), math.Round(v[2])}
}

// MaxAbs returns the largest absolute component.
func (v Vec) MaxAbs() float64 {
	return math.Max(math.Abs(v[0]), math.Max(math.Abs(v[1]), math.Abs(v[2])))
}

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vec) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// Wrap maps every component into [0,1). Values that round up to 1.0 after
// the subtraction are folded back to 0.
func (v Vec) Wrap() Vec {
	var r Vec
	for i, x := range v {
		y := x - math.Floor(x)
		if y >= 1 {
			y = 0
		}
		r[i] = y
	}

	return r
}
