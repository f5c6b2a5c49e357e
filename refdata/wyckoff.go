// SPDX-License-Identifier: MIT

package refdata

import (
	"fmt"

	"github.com/katalvlaran/lvsym/mat3"
	"github.com/katalvlaran/lvsym/pointgroup"
	"github.com/katalvlaran/lvsym/symmetry"
)

// WyckoffPosition is one Wyckoff position of a reference group. The
// representative triplet is stored as the affine map v ↦ Linear·v + Offset
// over the free parameters v = (x, y, z).
type WyckoffPosition struct {
	Letter       string
	Multiplicity int
	SiteSymmetry pointgroup.SiteSymbol
	Class        pointgroup.Class
	Coordinates  string
	Linear       mat3.Mat
	Offset       mat3.Vec

	// normal is (LinearᵀLinear)⁻¹ with unit diagonal on unused parameters.
	normal mat3.Mat
}

func buildWyckoff(wy wyckoffYAML) (WyckoffPosition, error) {
	if wy.Letter == "" || wy.Multiplicity < 1 {
		return WyckoffPosition{}, ErrInvalidEntry
	}
	sym, err := pointgroup.NewSiteSymbol(wy.SiteSymmetry)
	if err != nil {
		return WyckoffPosition{}, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	class, err := sym.Class()
	if err != nil {
		return WyckoffPosition{}, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	lin, off, err := symmetry.ParseAffine(wy.Coordinates)
	if err != nil {
		return WyckoffPosition{}, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}

	normal := mat3.Metric(lin)
	for j := 0; j < 3; j++ {
		if lin[0][j] == 0 && lin[1][j] == 0 && lin[2][j] == 0 {
			normal[j][j] = 1
		}
	}
	inv, err := mat3.Inverse(normal)
	if err != nil {
		return WyckoffPosition{}, fmt.Errorf("%w: dependent parameters in %q", ErrInvalidEntry, wy.Coordinates)
	}

	return WyckoffPosition{
		Letter:       wy.Letter,
		Multiplicity: wy.Multiplicity,
		SiteSymmetry: sym,
		Class:        class,
		Coordinates:  wy.Coordinates,
		Linear:       lin,
		Offset:       off,
		normal:       inv,
	}, nil
}

// Contains reports whether fractional position p lies on the representative
// triplet modulo lattice translations: the free parameters are fitted by
// least squares for every shift in {-1,0,1}³ and the Cartesian residual
// under lattice is compared against symprec.
func (w WyckoffPosition) Contains(p mat3.Vec, lattice mat3.Mat, symprec float64) bool {
	base := p.Sub(w.Offset)
	linT := mat3.Transpose(w.Linear)
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			for k := -1; k <= 1; k++ {
				d := base.Add(mat3.Vec{float64(i), float64(j), float64(k)})
				v := mat3.MulVec(w.normal, mat3.MulVec(linT, d))
				r := mat3.MulVec(w.Linear, v).Sub(d)
				if mat3.MulVec(lattice, r).Norm() <= symprec {
					return true
				}
			}
		}
	}

	return false
}

// Free reports whether the triplet has at least one free parameter.
func (w WyckoffPosition) Free() bool { return w.Linear != mat3.Mat{} }
