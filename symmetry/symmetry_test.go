// SPDX-License-Identifier: MIT

package symmetry_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsym/cell"
	"github.com/katalvlaran/lvsym/mat3"
	"github.com/katalvlaran/lvsym/symmetry"
)

var cubicGenerators = []string{"-x,-y,z", "-x,y,-z", "z,x,y", "y,x,-z", "-x,-y,-z"}

func parseAll(t *testing.T, symbols []string) []symmetry.Operation {
	t.Helper()
	ops := make([]symmetry.Operation, len(symbols))
	for i, s := range symbols {
		op, err := symmetry.ParseJones(s)
		require.NoError(t, err, s)
		ops[i] = op
	}

	return ops
}

func TestParseJones(t *testing.T) {
	op, err := symmetry.ParseJones(" x-y , x , z+1/2 ")
	require.NoError(t, err)
	assert.Equal(t, mat3.IMat{{1, -1, 0}, {1, 0, 0}, {0, 0, 1}}, op.Rotation)
	assert.Equal(t, mat3.Vec{0, 0, 0.5}, op.Translation)

	op, err = symmetry.ParseJones("-Y+1/4,X+0.75,-z-1/3")
	require.NoError(t, err)
	assert.Equal(t, mat3.IMat{{0, -1, 0}, {1, 0, 0}, {0, 0, -1}}, op.Rotation)
	assert.InDeltaSlice(t, []float64{0.25, 0.75, -1.0 / 3}, op.Translation[:], 1e-15)
}

func TestParseJones_Errors(t *testing.T) {
	for _, s := range []string{"", "x,y", "x,y,z,x", "x,,z", "x,y,q", "x,y,1/0", "x,y,z+"} {
		_, err := symmetry.ParseJones(s)
		assert.ErrorIs(t, err, symmetry.ErrJonesSyntax, "%q", s)
	}
	_, err := symmetry.ParseJones("0.5x,y,z")
	assert.ErrorIs(t, err, symmetry.ErrNotInteger)
}

func TestParseAffine_WyckoffTriplets(t *testing.T) {
	w, off, err := symmetry.ParseAffine("x,2x,1/2")
	require.NoError(t, err)
	assert.Equal(t, mat3.Mat{{1, 0, 0}, {2, 0, 0}, {0, 0, 0}}, w)
	assert.Equal(t, mat3.Vec{0, 0, 0.5}, off)

	w, off, err = symmetry.ParseAffine("1/4,y,-y+1/2")
	require.NoError(t, err)
	assert.Equal(t, mat3.Mat{{0, 0, 0}, {0, 1, 0}, {0, -1, 0}}, w)
	assert.Equal(t, mat3.Vec{0.25, 0, 0.5}, off)
}

func TestJones_RoundTrip(t *testing.T) {
	for _, s := range []string{"x,y,z", "-y,x-y,z+1/3", "x-y,x,z+1/2", "-x+1/2,y+1/4,-z+3/4", "0,0,0"} {
		op, err := symmetry.ParseJones(s)
		require.NoError(t, err)
		back, err := symmetry.ParseJones(op.Jones())
		require.NoError(t, err)
		assert.True(t, op.Equal(back, 1e-12), "%s -> %s", s, op.Jones())
	}
	assert.Equal(t, "-2x+y,z,-x+1/2", symmetry.Operation{
		Rotation:    mat3.IMat{{-2, 1, 0}, {0, 0, 1}, {-1, 0, 0}},
		Translation: mat3.Vec{0, 0, 0.5},
	}.Jones())
}

func TestOperation_ComposeInverse(t *testing.T) {
	a := symmetry.MustParseJones("-y,x-y,z+1/3")
	b := symmetry.MustParseJones("-x+1/2,-y,z+1/2")
	p := mat3.Vec{0.1, 0.2, 0.3}

	ab := a.Compose(b)
	got, want := a.Apply(b.Apply(p)), ab.Apply(p)
	assert.InDeltaSlice(t, got[:], want[:], 1e-15)

	inv, err := a.Inverse()
	require.NoError(t, err)
	assert.True(t, a.Compose(inv).IsIdentity(1e-12))
	assert.True(t, inv.Compose(a).IsIdentity(1e-12))

	_, err = symmetry.Operation{Rotation: mat3.IMat{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}}.Inverse()
	assert.ErrorIs(t, err, symmetry.ErrNotInvertible)
}

func TestOperation_EqualModuloLattice(t *testing.T) {
	a := symmetry.MustParseJones("x,y,z+1/2")
	b := symmetry.MustParseJones("x,y,z-1/2")
	assert.True(t, a.Equal(b, 1e-12))
	assert.False(t, a.Equal(symmetry.MustParseJones("-x,y,z+1/2"), 1e-12))

	n := symmetry.Operation{Rotation: mat3.IIdentity(), Translation: mat3.Vec{-1e-12, 1, 2.25}}.Normalize()
	assert.Equal(t, mat3.Vec{0, 0, 0.25}, n.Translation)
}

func TestGenerate_CubicOrders(t *testing.T) {
	gens := parseAll(t, cubicGenerators)
	cases := []struct {
		centering symmetry.Centering
		order     int
	}{
		{symmetry.Primitive, 48},
		{symmetry.BodyCentered, 96},
		{symmetry.FaceCentered, 192},
	}
	for _, tc := range cases {
		t.Run(tc.centering.String(), func(t *testing.T) {
			g, err := symmetry.Generate(gens, tc.centering.Translations())
			require.NoError(t, err)
			assert.Equal(t, tc.order, g.Size())
			assert.True(t, g.Operations[0].IsIdentity(0), "identity first")
			assert.True(t, symmetry.IsGroup(g, 1e-8))
			assert.Len(t, g.PureTranslations(), tc.centering.Multiplicity())
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	gens := parseAll(t, []string{"x-y,x,z+1/2", "y,x,-z", "-x,-y,-z"})
	a, err := symmetry.Generate(gens, nil)
	require.NoError(t, err)
	b, err := symmetry.Generate(gens, nil)
	require.NoError(t, err)
	assert.Equal(t, 24, a.Size())
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("closure not deterministic (-a +b):\n%s", diff)
	}
}

func TestGenerate_TooLarge(t *testing.T) {
	step := symmetry.Translation(mat3.Vec{math.Sqrt2 - 1, 0, 0})
	_, err := symmetry.Generate([]symmetry.Operation{step}, nil)
	assert.ErrorIs(t, err, symmetry.ErrGroupTooLarge)
}

func TestIsGroup_MissingElement(t *testing.T) {
	gens := parseAll(t, []string{"-y,x,z"})
	g, err := symmetry.Generate(gens, nil)
	require.NoError(t, err)
	require.Equal(t, 4, g.Size())

	broken := symmetry.New(g.Operations[:3])
	assert.False(t, symmetry.IsGroup(broken, 1e-8))
	assert.False(t, symmetry.IsGroup(symmetry.New(nil), 1e-8))
}

func TestCentering(t *testing.T) {
	for _, sym := range []string{"P", "A", "B", "C", "I", "F", "R"} {
		c, err := symmetry.ParseCentering(sym)
		require.NoError(t, err)
		assert.Equal(t, sym, c.String())

		p := c.PrimitiveTransform()
		assert.InDelta(t, 1/float64(c.Multiplicity()), mat3.Det(p), 1e-12, sym)
	}
	_, err := symmetry.ParseCentering("X")
	assert.ErrorIs(t, err, symmetry.ErrUnknownCentering)

	var c symmetry.Centering
	require.NoError(t, c.UnmarshalText([]byte("F")))
	assert.Equal(t, symmetry.FaceCentered, c)
}

func TestMagneticSymmetry_NonMagnetic(t *testing.T) {
	id := symmetry.Identity()
	inv := symmetry.MustParseJones("-x,-y,-z")
	m := symmetry.NewMagnetic([]symmetry.MagneticOperation{
		{Operation: id},
		{Operation: inv, TimeReversal: true},
		{Operation: id, TimeReversal: true},
		{Operation: inv},
	})
	assert.Equal(t, 2, m.CountTimeReversal())
	plain := m.NonMagnetic()
	assert.Equal(t, []symmetry.Operation{id, inv}, plain.Operations)

	clone := m.Clone()
	clone.Operations[0].TimeReversal = true
	assert.False(t, m.Operations[0].TimeReversal)
}

func TestPermutation_RockSalt(t *testing.T) {
	c, err := cell.NewFromParts(mat3.Diag(5.6, 5.6, 5.6), []mat3.Vec{
		{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0},
		{0.5, 0.5, 0.5}, {0.5, 0, 0}, {0, 0.5, 0}, {0, 0, 0.5},
	}, []int{11, 11, 11, 11, 17, 17, 17, 17}, cell.Periodic)
	require.NoError(t, err)

	shift := symmetry.MustParseJones("x,y+1/2,z+1/2")
	perm, err := symmetry.Permutation(shift, c, 1e-5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 3, 2, 5, 4, 7, 6}, perm)

	g, err := symmetry.Generate(parseAll(t, cubicGenerators), symmetry.FaceCentered.Translations())
	require.NoError(t, err)
	perms, err := symmetry.Permutations(g, c, 1e-5)
	require.NoError(t, err)
	assert.Len(t, perms, 192)

	_, err = symmetry.Permutation(symmetry.MustParseJones("x+1/4,y,z"), c, 1e-5)
	assert.ErrorIs(t, err, symmetry.ErrNoImage)
}
