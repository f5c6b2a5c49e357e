// SPDX-License-Identifier: MIT

// Package spin extends symmetry search to structures whose atoms carry a
// site tensor: a collinear moment (rank 0) or a three-component vector
// (rank 1), the latter either polar or axial.
//
// What
//
//   - Operations filters an ordinary space group down to the operations,
//     each optionally combined with time reversal, that leave both the
//     geometry and the tensor field invariant. It also reports the atom
//     permutations, the orbits, and the primitive lattice of the magnetic
//     structure.
//   - PureTranslations extracts the lattice-like operations that do not
//     reverse time.
//   - IdealizedCell symmetrizes positions and tensors over a found
//     magnetic group.
//
// Tensor action
//
//	For an operation (R, t) with Cartesian rotation R_c = L·R·L⁻¹ the image
//	of a tensor m is s·m for rank 0 and s·d·R_c·m for rank 1, where s = -1
//	under time reversal and d = det R for axial tensors (1 otherwise).
//
// Tolerances
//
//	symprec bounds Cartesian position mismatch; magSymprec bounds the
//	component-wise tensor mismatch. The two are independent.
package spin
