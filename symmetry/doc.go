// SPDX-License-Identifier: MIT

// Package symmetry defines space-group operations and the containers passed
// between the engines:
//
//   - Operation: a (rotation, translation) pair acting on fractional
//     coordinates as x' = R·x + t.
//   - Symmetry: an ordered list of operations in a fixed basis.
//   - MagneticSymmetry: operations tagged with a time-reversal flag.
//   - Spacegroup: the result of an (external) space-group search, consumed by
//     the refinement engine.
//
// It also parses Jones-faithful symbols ("-y,x-y,z+1/3"), closes generator
// sets into groups modulo lattice translations, and computes the permutation
// an operation induces on the atoms of a cell.
package symmetry
