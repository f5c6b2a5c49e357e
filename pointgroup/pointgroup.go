// SPDX-License-Identifier: MIT

package pointgroup

import (
	"fmt"

	"github.com/katalvlaran/lvsym/mat3"
)

// RotationType is the Hermann-Mauguin type of a single rotation: 1, 2, 3, 4,
// 6 for proper rotations and -1, -2 (mirror), -3, -4, -6 for improper ones.
type RotationType int

// TypeOf returns the rotation type of r.
func TypeOf(r mat3.IMat) (RotationType, error) {
	det, tr := mat3.IDet(r), mat3.ITrace(r)
	switch det {
	case 1:
		switch tr {
		case 3:
			return 1, nil
		case -1:
			return 2, nil
		case 0:
			return 3, nil
		case 1:
			return 4, nil
		case 2:
			return 6, nil
		}
	case -1:
		switch tr {
		case -3:
			return -1, nil
		case 1:
			return -2, nil
		case 0:
			return -3, nil
		case -1:
			return -4, nil
		case -2:
			return -6, nil
		}
	}

	return 0, fmt.Errorf("pointgroup.TypeOf: det %d trace %d: %w", det, tr, ErrNotCrystallographic)
}

// Class is one of the 32 crystal classes, identified by its international
// short symbol.
type Class string

// typeOrder fixes the column order of the signature counts below.
var typeOrder = [...]RotationType{-6, -4, -3, -2, -1, 1, 2, 3, 4, 6}

type signature [len(typeOrder)]int

// classes lists each crystal class by how many rotations of every type it
// contains, in typeOrder.
var classes = []struct {
	class Class
	sig   signature
}{
	{"1", signature{0, 0, 0, 0, 0, 1, 0, 0, 0, 0}},
	{"-1", signature{0, 0, 0, 0, 1, 1, 0, 0, 0, 0}},
	{"2", signature{0, 0, 0, 0, 0, 1, 1, 0, 0, 0}},
	{"m", signature{0, 0, 0, 1, 0, 1, 0, 0, 0, 0}},
	{"2/m", signature{0, 0, 0, 1, 1, 1, 1, 0, 0, 0}},
	{"222", signature{0, 0, 0, 0, 0, 1, 3, 0, 0, 0}},
	{"mm2", signature{0, 0, 0, 2, 0, 1, 1, 0, 0, 0}},
	{"mmm", signature{0, 0, 0, 3, 1, 1, 3, 0, 0, 0}},
	{"4", signature{0, 0, 0, 0, 0, 1, 1, 0, 2, 0}},
	{"-4", signature{0, 2, 0, 0, 0, 1, 1, 0, 0, 0}},
	{"4/m", signature{0, 2, 0, 1, 1, 1, 1, 0, 2, 0}},
	{"422", signature{0, 0, 0, 0, 0, 1, 5, 0, 2, 0}},
	{"4mm", signature{0, 0, 0, 4, 0, 1, 1, 0, 2, 0}},
	{"-42m", signature{0, 2, 0, 2, 0, 1, 3, 0, 0, 0}},
	{"4/mmm", signature{0, 2, 0, 5, 1, 1, 5, 0, 2, 0}},
	{"3", signature{0, 0, 0, 0, 0, 1, 0, 2, 0, 0}},
	{"-3", signature{0, 0, 2, 0, 1, 1, 0, 2, 0, 0}},
	{"32", signature{0, 0, 0, 0, 0, 1, 3, 2, 0, 0}},
	{"3m", signature{0, 0, 0, 3, 0, 1, 0, 2, 0, 0}},
	{"-3m", signature{0, 0, 2, 3, 1, 1, 3, 2, 0, 0}},
	{"6", signature{0, 0, 0, 0, 0, 1, 1, 2, 0, 2}},
	{"-6", signature{2, 0, 0, 1, 0, 1, 0, 2, 0, 0}},
	{"6/m", signature{2, 0, 2, 1, 1, 1, 1, 2, 0, 2}},
	{"622", signature{0, 0, 0, 0, 0, 1, 7, 2, 0, 2}},
	{"6mm", signature{0, 0, 0, 6, 0, 1, 1, 2, 0, 2}},
	{"-6m2", signature{2, 0, 0, 4, 0, 1, 3, 2, 0, 0}},
	{"6/mmm", signature{2, 0, 2, 7, 1, 1, 7, 2, 0, 2}},
	{"23", signature{0, 0, 0, 0, 0, 1, 3, 8, 0, 0}},
	{"m-3", signature{0, 0, 8, 3, 1, 1, 3, 8, 0, 0}},
	{"432", signature{0, 0, 0, 0, 0, 1, 9, 8, 6, 0}},
	{"-43m", signature{0, 6, 0, 6, 0, 1, 3, 8, 0, 0}},
	{"m-3m", signature{0, 6, 8, 9, 1, 1, 9, 8, 6, 0}},
}

// ClassOf returns the crystal class of a set of rotations. Duplicate
// rotations (the same matrix paired with different translations) are counted
// once.
func ClassOf(rotations []mat3.IMat) (Class, error) {
	var sig signature
	seen := make(map[mat3.IMat]struct{}, len(rotations))
	for _, r := range rotations {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		t, err := TypeOf(r)
		if err != nil {
			return "", err
		}
		for i, want := range typeOrder {
			if want == t {
				sig[i]++
			}
		}
	}
	for _, c := range classes {
		if c.sig == sig {
			return c.class, nil
		}
	}

	return "", fmt.Errorf("pointgroup.ClassOf: %d rotations: %w", len(seen), ErrUnknownClass)
}

// Order returns the number of rotations in the class, or 0 when c is not one
// of the 32 classes.
func (c Class) Order() int {
	for _, e := range classes {
		if e.class == c {
			n := 0
			for _, k := range e.sig {
				n += k
			}

			return n
		}
	}

	return 0
}

// Valid reports whether c names one of the 32 crystal classes.
func (c Class) Valid() bool { return c.Order() > 0 }
