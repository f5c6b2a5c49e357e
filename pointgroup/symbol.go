// SPDX-License-Identifier: MIT

package pointgroup

import (
	"fmt"
	"strings"
)

// SiteSymbolLen is the capacity of a SiteSymbol.
const SiteSymbolLen = 6

// SiteSymbol is an oriented site-symmetry symbol stored in a fixed buffer,
// so per-atom symbol arrays are flat values. Unused bytes are zero.
type SiteSymbol [SiteSymbolLen]byte

// NewSiteSymbol copies s into a SiteSymbol.
func NewSiteSymbol(s string) (SiteSymbol, error) {
	var sym SiteSymbol
	if len(s) > SiteSymbolLen {
		return sym, fmt.Errorf("pointgroup.NewSiteSymbol: %q: %w", s, ErrSymbolTooLong)
	}
	copy(sym[:], s)

	return sym, nil
}

// String returns the symbol without trailing zero bytes.
func (s SiteSymbol) String() string {
	n := 0
	for n < len(s) && s[n] != 0 {
		n++
	}

	return string(s[:n])
}

// MarshalText implements encoding.TextMarshaler.
func (s SiteSymbol) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Class returns the crystal class named by the oriented symbol.
func (s SiteSymbol) Class() (Class, error) { return ClassOfSymbol(s.String()) }

// aliases maps orientation variants onto the class symbol used by ClassOf.
var aliases = map[string]Class{
	"2mm": "mm2", "m2m": "mm2",
	"-4m2": "-42m",
	"-62m": "-6m2",
	"321":  "32", "312": "32",
	"3m1": "3m", "31m": "3m",
	"-3m1": "-3m", "-31m": "-3m",
	"m3m": "m-3m", "m3": "m-3",
}

// ClassOfSymbol strips the orientation dots from an oriented site symbol
// and returns its crystal class: ".-3m" → -3m, "m.m2" → mm2, "-4m.2" → -42m.
func ClassOfSymbol(s string) (Class, error) {
	plain := strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	if c, ok := aliases[plain]; ok {
		return c, nil
	}
	if c := Class(plain); c.Valid() {
		return c, nil
	}

	return "", fmt.Errorf("pointgroup.ClassOfSymbol: %q: %w", s, ErrUnknownClass)
}
