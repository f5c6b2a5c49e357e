// SPDX-License-Identifier: MIT

// Package pointgroup classifies sets of integer rotations into the 32
// crystallographic point groups (crystal classes) and handles the oriented
// site-symmetry symbols of the International Tables ("4/mm.m", ".3m").
//
// Rotations are classified by (det, trace) alone, so the result does not
// depend on the basis the rotations are written in.
package pointgroup
