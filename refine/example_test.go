// SPDX-License-Identifier: MIT

package refine_test

import (
	"fmt"

	"github.com/katalvlaran/lvsym/cell"
	"github.com/katalvlaran/lvsym/mat3"
	"github.com/katalvlaran/lvsym/refine"
	"github.com/katalvlaran/lvsym/symmetry"
)

// ExampleRefine expands primitive CsCl into its conventional cell and labels
// both sites.
func ExampleRefine() {
	lattice := mat3.Diag(4.12, 4.12, 4.12)
	prim, err := cell.NewFromParts(lattice, []mat3.Vec{{0, 0, 0}, {0.5, 0.5, 0.5}}, []int{55, 17}, cell.Periodic)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sg := &symmetry.Spacegroup{Number: 221, BravaisLattice: lattice}
	ex, err := refine.Refine(sg, prim, prim, []int{0, 1}, 1e-5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := range ex.Bravais.Types {
		fmt.Printf("%d %s %s\n", ex.Bravais.Types[i], ex.WyckoffLetter(i), ex.SiteSymmetrySymbols[i])
	}
	// Output:
	// 55 a m-3m
	// 17 b m-3m
}
