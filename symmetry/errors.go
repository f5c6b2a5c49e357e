// SPDX-License-Identifier: MIT
// Package symmetry: sentinel errors, matched with errors.Is.

package symmetry

import (
	"errors"
	"fmt"
)

var (
	// ErrJonesSyntax is returned for malformed Jones-faithful symbols.
	ErrJonesSyntax = errors.New("symmetry: malformed Jones symbol")

	// ErrNotInteger is returned when a parsed rotation part is not integral.
	ErrNotInteger = errors.New("symmetry: rotation part is not integral")

	// ErrNotInvertible is returned for operations whose rotation is not unimodular.
	ErrNotInvertible = errors.New("symmetry: rotation is not invertible over the integers")

	// ErrGroupTooLarge is returned when closing a generator set exceeds
	// MaxGroupOrder operations modulo lattice translations.
	ErrGroupTooLarge = errors.New("symmetry: generated group exceeds maximal order")

	// ErrUnknownCentering is returned for an unrecognised centering symbol.
	ErrUnknownCentering = errors.New("symmetry: unknown centering")

	// ErrNoImage is returned when an operation maps an atom onto no atom of
	// the same type.
	ErrNoImage = errors.New("symmetry: operation maps an atom onto no atom")
)

func symErrorf(tag string, err error) error {
	return fmt.Errorf("symmetry.%s: %w", tag, err)
}
