// SPDX-License-Identifier: MIT

package pointgroup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsym/mat3"
	"github.com/katalvlaran/lvsym/pointgroup"
	"github.com/katalvlaran/lvsym/symmetry"
)

func rotationsOf(t *testing.T, gens ...string) []mat3.IMat {
	t.Helper()
	ops := make([]symmetry.Operation, len(gens))
	for i, g := range gens {
		ops[i] = symmetry.MustParseJones(g)
	}
	g, err := symmetry.Generate(ops, nil)
	require.NoError(t, err)
	out := make([]mat3.IMat, g.Size())
	for i, op := range g.Operations {
		out[i] = op.Rotation
	}

	return out
}

func TestTypeOf(t *testing.T) {
	cases := map[string]pointgroup.RotationType{
		"x,y,z":      1,
		"-x,-y,z":    2,
		"z,x,y":      3,
		"-y,x,z":     4,
		"x-y,x,z":    6,
		"-x,-y,-z":   -1,
		"x,y,-z":     -2,
		"-z,-x,-y":   -3,
		"y,-x,-z":    -4,
		"-x+y,-x,-z": -6,
	}
	for jones, want := range cases {
		got, err := pointgroup.TypeOf(symmetry.MustParseJones(jones).Rotation)
		require.NoError(t, err, jones)
		assert.Equal(t, want, got, jones)
	}

	_, err := pointgroup.TypeOf(mat3.IMat{{1, 1, 0}, {0, 1, 0}, {0, 0, 1}})
	assert.ErrorIs(t, err, pointgroup.ErrNotCrystallographic)
}

func TestClassOf(t *testing.T) {
	cases := []struct {
		gens []string
		want pointgroup.Class
	}{
		{nil, "1"},
		{[]string{"-x,-y,-z"}, "-1"},
		{[]string{"-x,y,-z"}, "2"},
		{[]string{"x,-y,z"}, "m"},
		{[]string{"-x,-y,z", "x,-y,z"}, "mm2"},
		{[]string{"-x,-y,z", "-x,y,-z", "-x,-y,-z"}, "mmm"},
		{[]string{"-y,x,z", "x,-y,-z", "-x,-y,-z"}, "4/mmm"},
		{[]string{"y,-x,-z", "-x,y,-z"}, "-42m"},
		{[]string{"-y,x-y,z", "-x,-y,-z", "-y,-x,z"}, "-3m"},
		{[]string{"x-y,x,z", "y,x,-z", "-x,-y,-z"}, "6/mmm"},
		{[]string{"-x+y,-x,-z", "-y,-x,z"}, "-6m2"},
		{[]string{"z,x,y", "-x,-y,z", "-x,y,-z"}, "23"},
		{[]string{"-x,-y,z", "-x,y,-z", "z,x,y", "y,x,-z", "-x,-y,-z"}, "m-3m"},
		{[]string{"-x,-y,z", "-x,y,-z", "z,x,y", "y,x,z"}, "-43m"},
	}
	for _, tc := range cases {
		t.Run(string(tc.want), func(t *testing.T) {
			rots := rotationsOf(t, tc.gens...)
			got, err := pointgroup.ClassOf(rots)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, len(rots), got.Order())
		})
	}
}

func TestClassOf_DuplicatesAndUnknown(t *testing.T) {
	id := mat3.IIdentity()
	c, err := pointgroup.ClassOf([]mat3.IMat{id, id, id})
	require.NoError(t, err)
	assert.Equal(t, pointgroup.Class("1"), c)

	// A lone 4-fold without its square is not closed.
	_, err = pointgroup.ClassOf([]mat3.IMat{id, symmetry.MustParseJones("-y,x,z").Rotation})
	assert.ErrorIs(t, err, pointgroup.ErrUnknownClass)
}

func TestClassOfSymbol(t *testing.T) {
	cases := map[string]pointgroup.Class{
		"m-3m":   "m-3m",
		"4/mm.m": "4/mmm",
		"4m.m":   "4mm",
		".3m":    "3m",
		"mm2..":  "mm2",
		"m.m2":   "mm2",
		"m..":    "m",
		"..m":    "m",
		".-3m":   "-3m",
		"-4m.2":  "-42m",
		"..2":    "2",
		"m.mm":   "mmm",
		"-6m2":   "-6m2",
		"3m.":    "3m",
		"2mm":    "mm2",
		"m2m":    "mm2",
		".2/m.":  "2/m",
		"-3m.":   "-3m",
		"1":      "1",
	}
	for sym, want := range cases {
		got, err := pointgroup.ClassOfSymbol(sym)
		require.NoError(t, err, sym)
		assert.Equal(t, want, got, sym)
	}
	_, err := pointgroup.ClassOfSymbol("5m")
	assert.ErrorIs(t, err, pointgroup.ErrUnknownClass)
}

func TestSiteSymbol(t *testing.T) {
	s, err := pointgroup.NewSiteSymbol("4/mm.m")
	require.NoError(t, err)
	assert.Equal(t, "4/mm.m", s.String())
	c, err := s.Class()
	require.NoError(t, err)
	assert.Equal(t, 16, c.Order())

	short, err := pointgroup.NewSiteSymbol(".3m")
	require.NoError(t, err)
	assert.Equal(t, ".3m", short.String())
	assert.Equal(t, byte(0), short[3])

	_, err = pointgroup.NewSiteSymbol("4/mmm.mm")
	assert.ErrorIs(t, err, pointgroup.ErrSymbolTooLong)
}
