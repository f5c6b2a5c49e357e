// SPDX-License-Identifier: MIT

// Package refdata holds the space-group reference table consumed by the
// refinement engine: for each group in its standard setting, the symmetry
// operations (closed from generators plus centering), and the Wyckoff
// positions with multiplicity, oriented site-symmetry symbol and
// representative coordinate triplet.
//
// The default table is embedded YAML parsed once on first use. Callers with
// settings beyond the bundled ones load their own table with Load and pass it
// to the engines through their WithTable option.
package refdata
