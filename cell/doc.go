// SPDX-License-Identifier: MIT

// Package cell holds the periodic cell and the two tolerance-sensitive
// primitives built directly on it: the overlap detector and the cell trimmer.
//
// A Cell is a lattice (basis vectors as columns), a list of integer species
// labels and fractional positions. A cell may be periodic along all three axes
// (AperiodicAxis == -1) or along two of them ("layer" mode), in which case the
// coordinate along AperiodicAxis is never wrapped.
//
// Overlap predicates use an absolute Cartesian tolerance (symprec) and the
// minimum-image convention: the fractional difference is rounded per periodic
// axis, mapped through the lattice and compared inclusively to symprec.
//
// Trim reduces a redundant cell (e.g. a supercell) onto a smaller lattice,
// keeping one representative per class of coinciding atoms.
//
//	c, _ := cell.NewFromParts(lattice, positions, types, cell.Periodic)
//	mapping := make([]int, c.Size())
//	prim, err := cell.Trim(mapping, primitiveLattice, c, 1e-5)
package cell
