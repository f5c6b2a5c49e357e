// SPDX-License-Identifier: MIT

package mat3

const opIInverse = "IInverse"

// IMul returns a·b over the integers.
func IMul(a, b IMat) IMat {
	var r IMat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}

	return r
}

// IMulVec returns m·v for an integer matrix acting on a real vector.
func IMulVec(m IMat, v Vec) Vec {
	return Vec{
		float64(m[0][0])*v[0] + float64(m[0][1])*v[1] + float64(m[0][2])*v[2],
		float64(m[1][0])*v[0] + float64(m[1][1])*v[1] + float64(m[1][2])*v[2],
		float64(m[2][0])*v[0] + float64(m[2][1])*v[1] + float64(m[2][2])*v[2],
	}
}

// ITranspose returns mᵀ.
func ITranspose(m IMat) IMat {
	var r IMat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}

	return r
}

// IDet returns the determinant of an integer matrix.
func IDet(m IMat) int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) +
		m[0][1]*(m[1][2]*m[2][0]-m[1][0]*m[2][2]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// ITrace returns the trace of an integer matrix.
func ITrace(m IMat) int { return m[0][0] + m[1][1] + m[2][2] }

// IInverse returns the integer inverse of a unimodular matrix.
func IInverse(m IMat) (IMat, error) {
	det := IDet(m)
	if det != 1 && det != -1 {
		return IMat{}, mat3Errorf(opIInverse, ErrNotUnimodular)
	}

	var r IMat
	r[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * det
	r[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * det
	r[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * det
	r[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * det
	r[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * det
	r[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * det
	r[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * det
	r[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * det
	r[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * det

	return r, nil
}

// IsIdentity reports whether m is the integer identity.
func (m IMat) IsIdentity() bool { return m == IIdentity() }
