// SPDX-License-Identifier: MIT

// Package refine turns a space group found on a primitive cell into an
// idealized structure in the standardized conventional setting.
//
// What
//
//   - Refine builds the conventional (Bravais) cell from the primitive cell
//     and the space group's basis change and origin shift, checks the
//     reference operations against it, computes orbits and site-symmetry
//     groups, idealizes positions, assigns Wyckoff letters and oriented
//     site-symmetry symbols, and maps everything back to the primitive and
//     original cells.
//   - ConventionalLattice derives the ideal conventional lattice for the
//     group's lattice system in the standard orientation.
//   - FindSimilarBravaisLattice looks for an equivalent conventional basis
//     that matches the ideal lattice more closely.
//
// Failure
//
//	Every stage either succeeds completely or Refine returns (nil, err) with
//	a sentinel from this package (or refdata.ErrUnknownSpacegroup). Callers
//	typically retry with a different tolerance.
//
// Determinism
//
//	Ties are broken by reference-table order: operations in their closed
//	order, Wyckoff positions in letter order.
package refine
