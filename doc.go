// SPDX-License-Identifier: MIT

// Package lvsym is a crystal symmetry refinement core: given approximate
// atomic coordinates, a lattice and a tolerance, it checks atomic
// coincidence under periodic boundaries, trims redundant cells, refines a
// known space group into an idealized conventional cell, and extends the
// search to spin-decorated structures with time reversal.
//
// Under the hood, everything is organized in leaf-first subpackages:
//
//	mat3/        fixed 3×3 float and integer linear algebra
//	cell/        periodic and layer cells, overlap predicates, Trim
//	symmetry/    operations, Jones symbols, group closure, centring
//	pointgroup/  rotation types, the 32 crystal classes, site symbols
//	refdata/     embedded reference space groups and Wyckoff positions
//	orbit/       breadth-first orbits of permutation actions
//	refine/      Refine, ConventionalLattice, FindSimilarBravaisLattice
//	spin/        magnetic operations, pure translations, idealization
//	sweep/       parallel retries over tolerance lists
//	telemetry/   Prometheus recorder for engine outcomes
//
// Quick example (rock salt, space group 225):
//
//	mapping := make([]int, conv.Size())
//	prim, _ := cell.Trim(mapping, primitiveLattice, conv, 1e-5)
//	ex, _ := refine.Refine(sg, prim, conv, mapping, 1e-5)
//	fmt.Println(ex.WyckoffLetter(0), ex.SiteSymmetrySymbols[0]) // a m-3m
//
// The cmd/symcheck binary exposes the same pipeline over YAML structure
// files.
package lvsym
