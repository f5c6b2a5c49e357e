// SPDX-License-Identifier: MIT

package refine

import (
	"fmt"

	"github.com/katalvlaran/lvsym/cell"
	"github.com/katalvlaran/lvsym/mat3"
	"github.com/katalvlaran/lvsym/pointgroup"
	"github.com/katalvlaran/lvsym/symmetry"
)

// ExactStructure is the idealized structure produced by Refine. Per-atom
// slices have length Bravais.Size() unless noted.
type ExactStructure struct {
	// Bravais is the idealized conventional cell in the standard orientation.
	Bravais *cell.Cell
	// Symmetry holds the reference operations in the conventional basis.
	Symmetry *symmetry.Symmetry
	// Wyckoffs holds letter indices (0 = 'a').
	Wyckoffs            []int
	SiteSymmetrySymbols []pointgroup.SiteSymbol
	// EquivalentAtoms maps each atom to the lowest index of its orbit.
	EquivalentAtoms []int
	// CrystallographicOrbits labels orbits under the coset representatives
	// of the lattice translations; a refinement of EquivalentAtoms.
	CrystallographicOrbits []int
	// StdMappingToPrimitive indexes the primitive cell passed to Refine.
	StdMappingToPrimitive []int
	// Rotation maps the input Cartesian frame onto the standardized one.
	Rotation mat3.Mat
	// Transformation maps primitive onto conventional fractional
	// coordinates: x_c = Transformation·x_p + OriginShift.
	Transformation mat3.Mat
	OriginShift    mat3.Vec
	// InputEquivalentAtoms and InputWyckoffs have the original cell's length.
	InputEquivalentAtoms []int
	InputWyckoffs        []int
	SpacegroupNumber     int
}

// Validate checks the invariants every returned structure satisfies:
// consistent lengths, idempotent orbit representatives, and identical labels
// within a crystallographic orbit.
func (ex *ExactStructure) Validate() error {
	if ex == nil || ex.Bravais == nil || ex.Symmetry == nil {
		return ErrInconsistent
	}
	n := ex.Bravais.Size()
	for name, l := range map[string]int{
		"wyckoffs":                 len(ex.Wyckoffs),
		"site_symmetry_symbols":    len(ex.SiteSymmetrySymbols),
		"equivalent_atoms":         len(ex.EquivalentAtoms),
		"crystallographic_orbits":  len(ex.CrystallographicOrbits),
		"std_mapping_to_primitive": len(ex.StdMappingToPrimitive),
	} {
		if l != n {
			return fmt.Errorf("%w: %s has %d entries, want %d", ErrInconsistent, name, l, n)
		}
	}
	if len(ex.InputEquivalentAtoms) != len(ex.InputWyckoffs) {
		return fmt.Errorf("%w: input arrays differ in length", ErrInconsistent)
	}
	for i := 0; i < n; i++ {
		e, o := ex.EquivalentAtoms[i], ex.CrystallographicOrbits[i]
		if e < 0 || e >= n || ex.EquivalentAtoms[e] != e {
			return fmt.Errorf("%w: equivalent_atoms[%d] = %d is not a representative", ErrInconsistent, i, e)
		}
		if o < 0 || o >= n || ex.CrystallographicOrbits[o] != o {
			return fmt.Errorf("%w: crystallographic_orbits[%d] = %d is not a representative", ErrInconsistent, i, o)
		}
		if ex.Wyckoffs[i] != ex.Wyckoffs[o] || ex.SiteSymmetrySymbols[i] != ex.SiteSymmetrySymbols[o] {
			return fmt.Errorf("%w: atom %d labelled differently from its orbit", ErrInconsistent, i)
		}
		if ex.EquivalentAtoms[o] != e {
			return fmt.Errorf("%w: orbit of atom %d straddles equivalence classes", ErrInconsistent, i)
		}
	}
	for k, e := range ex.InputEquivalentAtoms {
		if e < 0 || e > k || ex.InputEquivalentAtoms[e] != e {
			return fmt.Errorf("%w: input_equivalent_atoms[%d] = %d", ErrInconsistent, k, e)
		}
	}

	return nil
}

// WyckoffLetter returns the letter of atom i.
func (ex *ExactStructure) WyckoffLetter(i int) string {
	return string(rune('a' + ex.Wyckoffs[i]))
}
