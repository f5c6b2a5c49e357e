// SPDX-License-Identifier: MIT

package symmetry

import "github.com/katalvlaran/lvsym/mat3"

// Spacegroup is the outcome of a space-group search on a primitive cell.
//
// BravaisLattice is the conventional basis (columns) expressed in the input
// Cartesian frame, and OriginShift is the position of the conventional origin
// in that basis; together they map primitive fractional coordinates x_p onto
// conventional ones x_c = B⁻¹·L_p·x_p + OriginShift.
type Spacegroup struct {
	Number         int
	HallNumber     int
	Symbol         string
	Choice         string
	Centering      Centering
	BravaisLattice mat3.Mat
	OriginShift    mat3.Vec
}

// Clone returns a copy of sg.
func (sg *Spacegroup) Clone() *Spacegroup {
	if sg == nil {
		return nil
	}
	c := *sg

	return &c
}
