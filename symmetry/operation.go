// SPDX-License-Identifier: MIT

package symmetry

import (
	"math"

	"github.com/katalvlaran/lvsym/mat3"
)

// DefaultEpsilon compares translation parts of operations modulo 1.
const DefaultEpsilon = 1e-8

// Operation is a space-group operation x' = Rotation·x + Translation in a
// fractional basis.
type Operation struct {
	Rotation    mat3.IMat
	Translation mat3.Vec
}

// Identity returns the identity operation.
func Identity() Operation {
	return Operation{Rotation: mat3.IIdentity()}
}

// Translation returns the pure translation by t.
func Translation(t mat3.Vec) Operation {
	return Operation{Rotation: mat3.IIdentity(), Translation: t}
}

// Apply returns R·p + t.
func (op Operation) Apply(p mat3.Vec) mat3.Vec {
	return mat3.IMulVec(op.Rotation, p).Add(op.Translation)
}

// Compose returns op∘other, i.e. the operation applying other first.
func (op Operation) Compose(other Operation) Operation {
	return Operation{
		Rotation:    mat3.IMul(op.Rotation, other.Rotation),
		Translation: mat3.IMulVec(op.Rotation, other.Translation).Add(op.Translation),
	}
}

// Inverse returns (R⁻¹, −R⁻¹·t).
func (op Operation) Inverse() (Operation, error) {
	inv, err := mat3.IInverse(op.Rotation)
	if err != nil {
		return Operation{}, symErrorf("Inverse", ErrNotInvertible)
	}

	return Operation{
		Rotation:    inv,
		Translation: mat3.IMulVec(inv, op.Translation).Scale(-1),
	}, nil
}

// Normalize returns op with its translation wrapped into [0,1). Components
// within DefaultEpsilon of 1 are folded to 0.
func (op Operation) Normalize() Operation {
	t := op.Translation.Wrap()
	for k := range t {
		if 1-t[k] < DefaultEpsilon {
			t[k] = 0
		}
	}
	op.Translation = t

	return op
}

// Equal reports whether op and other have the same rotation and translations
// that agree modulo 1 within eps.
func (op Operation) Equal(other Operation, eps float64) bool {
	if op.Rotation != other.Rotation {
		return false
	}
	d := op.Translation.Sub(other.Translation)
	for k := range d {
		if math.Abs(d[k]-math.Round(d[k])) > eps {
			return false
		}
	}

	return true
}

// IsIdentityRotation reports whether the rotation part is the identity.
func (op Operation) IsIdentityRotation() bool { return op.Rotation.IsIdentity() }

// IsIdentity reports whether op is the identity modulo lattice translations.
func (op Operation) IsIdentity(eps float64) bool { return op.Equal(Identity(), eps) }

// CartesianRotation returns L·R·L⁻¹, the rotation part in Cartesian
// coordinates for a column lattice L.
func (op Operation) CartesianRotation(lattice mat3.Mat) (mat3.Mat, error) {
	inv, err := mat3.Inverse(lattice)
	if err != nil {
		return mat3.Mat{}, err
	}

	return mat3.Mul(mat3.Mul(lattice, op.Rotation.Float()), inv), nil
}
