// SPDX-License-Identifier: MIT

package symmetry

import "github.com/katalvlaran/lvsym/mat3"

// Symmetry is an ordered list of operations expressed in one basis.
type Symmetry struct {
	Operations []Operation
}

// New returns a Symmetry holding a copy of ops.
func New(ops []Operation) *Symmetry {
	s := &Symmetry{Operations: make([]Operation, len(ops))}
	copy(s.Operations, ops)

	return s
}

// Size returns the number of operations.
func (s *Symmetry) Size() int { return len(s.Operations) }

// Clone returns an independent copy.
func (s *Symmetry) Clone() *Symmetry {
	if s == nil {
		return nil
	}

	return New(s.Operations)
}

// PureTranslations returns the translation parts of operations whose
// rotation is the identity, in operation order.
func (s *Symmetry) PureTranslations() []mat3.Vec {
	var out []mat3.Vec
	for _, op := range s.Operations {
		if op.IsIdentityRotation() {
			out = append(out, op.Translation)
		}
	}

	return out
}

// Contains reports whether op is in s modulo lattice translations.
func (s *Symmetry) Contains(op Operation, eps float64) bool {
	return s.indexOf(op, eps) >= 0
}

func (s *Symmetry) indexOf(op Operation, eps float64) int {
	for i, o := range s.Operations {
		if o.Equal(op, eps) {
			return i
		}
	}

	return -1
}

// IsGroup reports whether s is a group modulo lattice translations: the
// identity is present, every product is present, and so is every inverse.
// Complexity: O(n³) for n operations.
func IsGroup(s *Symmetry, eps float64) bool {
	if s == nil || s.Size() == 0 {
		return false
	}
	if !s.Contains(Identity(), eps) {
		return false
	}
	for _, a := range s.Operations {
		inv, err := a.Inverse()
		if err != nil || !s.Contains(inv, eps) {
			return false
		}
		for _, b := range s.Operations {
			if !s.Contains(a.Compose(b), eps) {
				return false
			}
		}
	}

	return true
}

// MagneticOperation is an operation combined with time reversal when
// TimeReversal is true.
type MagneticOperation struct {
	Operation
	TimeReversal bool
}

// MagneticSymmetry is an ordered list of magnetic operations. The operations
// with TimeReversal == false form an ordinary space group.
type MagneticSymmetry struct {
	Operations []MagneticOperation
}

// NewMagnetic returns a MagneticSymmetry holding a copy of ops.
func NewMagnetic(ops []MagneticOperation) *MagneticSymmetry {
	m := &MagneticSymmetry{Operations: make([]MagneticOperation, len(ops))}
	copy(m.Operations, ops)

	return m
}

// Size returns the number of magnetic operations.
func (m *MagneticSymmetry) Size() int { return len(m.Operations) }

// Clone returns an independent copy.
func (m *MagneticSymmetry) Clone() *MagneticSymmetry {
	if m == nil {
		return nil
	}

	return NewMagnetic(m.Operations)
}

// NonMagnetic returns the time-reversal-free operations as a Symmetry.
func (m *MagneticSymmetry) NonMagnetic() *Symmetry {
	var ops []Operation
	for _, op := range m.Operations {
		if !op.TimeReversal {
			ops = append(ops, op.Operation)
		}
	}

	return New(ops)
}

// CountTimeReversal returns the number of time-reversed operations.
func (m *MagneticSymmetry) CountTimeReversal() int {
	n := 0
	for _, op := range m.Operations {
		if op.TimeReversal {
			n++
		}
	}

	return n
}
