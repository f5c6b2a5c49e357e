// SPDX-License-Identifier: MIT

// Package mat3 is the fixed-size linear algebra used by the symmetry engines.
//
// Purpose:
//   - Provide value types for 3-vectors (Vec), real 3×3 matrices (Mat) and
//     integer 3×3 matrices (IMat) so that lattice and rotation arithmetic never
//     allocates and never fails on shape.
//   - Keep one numeric policy (DefaultEpsilon) for singularity and integer
//     snapping checks.
//
// Conventions:
//   - Mat and IMat are row-major: m[i][j] is row i, column j.
//   - A lattice is stored with its basis vectors as COLUMNS, so the Cartesian
//     position of fractional coordinates f is MulVec(lattice, f).
//   - Rotations act on fractional column vectors: f' = R·f.
//
// Determinism:
//   - Every routine uses fixed loop orders and closed-form expressions; no
//     pivot search, no randomness.
//
// AI-Hints:
//   - Prefer Inverse over solving ad hoc systems: 3×3 adjugate inversion is
//     exact enough for lattice work and reports ErrSingular on degenerate input.
//   - Use SnapToInt before converting transformation matrices to IMat.
package mat3
