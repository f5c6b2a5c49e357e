// SPDX-License-Identifier: MIT

package pointgroup

import "errors"

var (
	// ErrNotCrystallographic is returned for a matrix that is not a
	// crystallographic rotation (order 1, 2, 3, 4 or 6, det ±1).
	ErrNotCrystallographic = errors.New("pointgroup: not a crystallographic rotation")

	// ErrUnknownClass is returned when a rotation set or a symbol matches
	// none of the 32 crystal classes.
	ErrUnknownClass = errors.New("pointgroup: unknown crystal class")

	// ErrSymbolTooLong is returned for site symbols longer than SiteSymbolLen.
	ErrSymbolTooLong = errors.New("pointgroup: site symbol too long")
)
