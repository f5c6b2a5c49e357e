// SPDX-License-Identifier: MIT

package refdata

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSpacegroup is returned by Lookup for numbers absent from the table.
	ErrUnknownSpacegroup = errors.New("refdata: space group not in table")

	// ErrInvalidEntry is returned for structurally malformed table entries.
	ErrInvalidEntry = errors.New("refdata: invalid table entry")

	// ErrDuplicateGroup is returned when a space-group number appears twice.
	ErrDuplicateGroup = errors.New("refdata: duplicate space group")

	// ErrInconsistentTable is returned when a Wyckoff multiplicity times its
	// site-symmetry order does not equal the group order.
	ErrInconsistentTable = errors.New("refdata: multiplicity inconsistent with site symmetry")

	// ErrTableTooLarge is returned when the input exceeds MaxTableSize bytes.
	ErrTableTooLarge = errors.New("refdata: table exceeds size limit")
)

func entryErrorf(number int, format string, args ...any) error {
	return fmt.Errorf("refdata: space group %d: "+format, append([]any{number}, args...)...)
}
