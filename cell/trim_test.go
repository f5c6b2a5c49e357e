// SPDX-License-Identifier: MIT

package cell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsym/cell"
	"github.com/katalvlaran/lvsym/mat3"
)

// rockSaltSupercell returns a 2×1×1 supercell of a two-atom simple cubic
// cell with a little positional noise.
func rockSaltSupercell(t *testing.T) *cell.Cell {
	t.Helper()
	positions := []mat3.Vec{
		{0, 0, 0},
		{0.25, 0.5, 0.5},
		{0.5 + 1e-7, 0, 0},
		{0.75, 0.5, 0.5 - 1e-7},
	}
	c, err := cell.NewFromParts(mat3.Diag(8, 4, 4), positions, []int{11, 17, 11, 17}, cell.Periodic)
	require.NoError(t, err)

	return c
}

func TestTrim_Supercell(t *testing.T) {
	c := rockSaltSupercell(t)
	mapping := make([]int, c.Size())

	trimmed, err := cell.Trim(mapping, mat3.Diag(4, 4, 4), c, 1e-3)
	require.NoError(t, err)

	require.Equal(t, 2, trimmed.Size())
	assert.Equal(t, []int{11, 17}, trimmed.Types)
	assert.Equal(t, []int{0, 1, 0, 1}, mapping)
	assert.InDelta(t, 0.5, trimmed.Positions[1][0], 1e-6)
	assert.InDelta(t, 0.5, trimmed.Positions[1][2], 1e-6)
	assert.False(t, cell.AnyOverlap(trimmed, 1e-3), "trimmed cell must be overlap-free")
}

func TestTrim_Idempotent(t *testing.T) {
	c := rockSaltSupercell(t)
	first := make([]int, c.Size())
	trimmed, err := cell.Trim(first, mat3.Diag(4, 4, 4), c, 1e-3)
	require.NoError(t, err)

	second := make([]int, trimmed.Size())
	again, err := cell.Trim(second, trimmed.Lattice, trimmed, 1e-3)
	require.NoError(t, err)

	assert.Equal(t, trimmed.Types, again.Types)
	for i := range trimmed.Positions {
		for k := 0; k < 3; k++ {
			assert.InDelta(t, trimmed.Positions[i][k], again.Positions[i][k], 1e-12)
		}
	}
	assert.Equal(t, []int{0, 1}, second, "identity mapping")
}

func TestTrim_Deterministic(t *testing.T) {
	c := rockSaltSupercell(t)
	a := make([]int, c.Size())
	b := make([]int, c.Size())

	ta, err := cell.Trim(a, mat3.Diag(4, 4, 4), c, 1e-3)
	require.NoError(t, err)
	tb, err := cell.Trim(b, mat3.Diag(4, 4, 4), c, 1e-3)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, ta, tb)
}

func TestTrim_MappingSurjective(t *testing.T) {
	c := rockSaltSupercell(t)
	mapping := make([]int, c.Size())
	trimmed, err := cell.Trim(mapping, mat3.Diag(4, 4, 4), c, 1e-3)
	require.NoError(t, err)

	seen := make([]bool, trimmed.Size())
	for _, m := range mapping {
		require.GreaterOrEqual(t, m, 0)
		require.Less(t, m, trimmed.Size())
		seen[m] = true
	}
	for i, ok := range seen {
		assert.True(t, ok, "trimmed atom %d has no preimage", i)
	}
}

func TestTrim_LayerKeepsAperiodicCoordinate(t *testing.T) {
	positions := []mat3.Vec{{0, 0, 0.1}, {0.5, 0, 0.1}, {0, 0, 0.9}, {0.5, 0, 0.9}}
	c, err := cell.NewFromParts(mat3.Diag(8, 4, 20), positions, []int{1, 1, 1, 1}, 2)
	require.NoError(t, err)

	mapping := make([]int, c.Size())
	trimmed, err := cell.Trim(mapping, mat3.Diag(4, 4, 20), c, 1e-3)
	require.NoError(t, err)

	require.Equal(t, 2, trimmed.Size())
	assert.Equal(t, 2, trimmed.AperiodicAxis)
	assert.Equal(t, []int{0, 0, 1, 1}, mapping)
	assert.InDelta(t, 0.1, trimmed.Positions[0][2], 1e-12)
	assert.InDelta(t, 0.9, trimmed.Positions[1][2], 1e-12)
}

func TestTrim_FailsWhenOverlapRemains(t *testing.T) {
	// x = 0, 1, 2 Å along a 10 Å axis: at 1.5 Å the overlap relation is not
	// transitive; after reduction every atom is alone but 1.5 Å still sees
	// neighbours, so the trimmed cell is rejected.
	positions := []mat3.Vec{{0, 0, 0}, {0.1, 0, 0}, {0.2, 0, 0}}
	c, err := cell.NewFromParts(mat3.Diag(10, 10, 10), positions, []int{1, 1, 1}, cell.Periodic)
	require.NoError(t, err)

	mapping := []int{-1, -1, -1}
	out, err := cell.Trim(mapping, c.Lattice, c, 1.5)
	assert.ErrorIs(t, err, cell.ErrTrimOverlap)
	assert.Nil(t, out)
	assert.Equal(t, []int{-1, -1, -1}, mapping, "mapping untouched on failure")
}

func TestTrim_OverlapInconsistent(t *testing.T) {
	positions := []mat3.Vec{{0, 0, 0}, {0.1, 0, 0}, {0.2, 0, 0}}
	c, err := cell.NewFromParts(mat3.Diag(10, 10, 10), positions, []int{1, 1, 1}, cell.Periodic)
	require.NoError(t, err)

	_, err = cell.Trim(make([]int, 3), c.Lattice, c, 1.5, cell.WithMaxAttempts(1))
	assert.ErrorIs(t, err, cell.ErrOverlapInconsistent)
}

func TestTrim_DifferentTypesOnOneSite(t *testing.T) {
	c, err := cell.NewFromParts(mat3.Diag(4, 4, 4), []mat3.Vec{{0, 0, 0}, {0, 0, 0}}, []int{1, 2}, cell.Periodic)
	require.NoError(t, err)

	_, err = cell.Trim(make([]int, 2), c.Lattice, c, 1e-5)
	assert.ErrorIs(t, err, cell.ErrTrimOverlap)
}

func TestTrim_InputValidation(t *testing.T) {
	c := rockSaltSupercell(t)

	_, err := cell.Trim(make([]int, 4), mat3.Diag(4, 4, 4), nil, 1e-3)
	assert.ErrorIs(t, err, cell.ErrNilCell)

	_, err = cell.Trim(make([]int, 3), mat3.Diag(4, 4, 4), c, 1e-3)
	assert.ErrorIs(t, err, cell.ErrSizeMismatch)

	_, err = cell.Trim(make([]int, 4), mat3.Diag(4, 4, 4), c, 0)
	assert.ErrorIs(t, err, cell.ErrTolerance)

	_, err = cell.Trim(make([]int, 4), mat3.Diag(4, 0, 4), c, 1e-3)
	assert.ErrorIs(t, err, cell.ErrDegenerateLattice)

	_, err = cell.Trim(make([]int, 4), mat3.Diag(16, 4, 4), c, 1e-3)
	assert.ErrorIs(t, err, cell.ErrLatticeNotSubmultiple)
}

func TestTrim_TargetIsNotATranslation(t *testing.T) {
	// halving a along x is only a period when every atom has an image at x+0.5
	positions := []mat3.Vec{{0, 0, 0}, {0.3, 0, 0}}
	c, err := cell.NewFromParts(mat3.Diag(8, 4, 4), positions, []int{1, 1}, cell.Periodic)
	require.NoError(t, err)

	mapping := []int{-1, -1}
	out, err := cell.Trim(mapping, mat3.Diag(4, 4, 4), c, 1e-3)
	assert.ErrorIs(t, err, cell.ErrLatticeNotSubmultiple)
	assert.Nil(t, out)
	assert.Equal(t, []int{-1, -1}, mapping, "mapping untouched on failure")
}

func TestTrim_VolumeRatio(t *testing.T) {
	tests := []struct {
		name      string
		positions []mat3.Vec
		target    mat3.Mat
	}{
		{
			name:      "non-integer ratio",
			positions: []mat3.Vec{{0, 0, 0}, {0.5, 0, 0}},
			target:    mat3.Diag(6, 4, 4),
		},
		{
			name:      "atom count not divisible",
			positions: []mat3.Vec{{0, 0, 0}, {0.5, 0, 0}, {0.25, 0.5, 0.5}},
			target:    mat3.Diag(4, 4, 4),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			types := make([]int, len(tc.positions))
			c, err := cell.NewFromParts(mat3.Diag(8, 4, 4), tc.positions, types, cell.Periodic)
			require.NoError(t, err)

			mapping := make([]int, c.Size())
			for i := range mapping {
				mapping[i] = -1
			}
			out, err := cell.Trim(mapping, tc.target, c, 1e-3)
			assert.ErrorIs(t, err, cell.ErrLatticeNotSubmultiple)
			assert.Nil(t, out)
			for _, m := range mapping {
				assert.Equal(t, -1, m)
			}
		})
	}
}

func TestTrim_DuplicatesCollapseOnSupercellTarget(t *testing.T) {
	// x = 0 and x = 0.5 both doubly occupied: one class of size 2N in the half cell
	positions := []mat3.Vec{{0, 0, 0}, {0.5, 0, 0}, {0.5, 0, 0}, {0, 0, 0}}
	c, err := cell.NewFromParts(mat3.Diag(8, 4, 4), positions, []int{1, 1, 1, 1}, cell.Periodic)
	require.NoError(t, err)

	mapping := make([]int, c.Size())
	out, err := cell.Trim(mapping, mat3.Diag(4, 4, 4), c, 1e-3)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Size())
	assert.Equal(t, []int{0, 0, 0, 0}, mapping)
}

func TestWithReduceRate_PanicsOnNonsense(t *testing.T) {
	assert.Panics(t, func() { cell.WithReduceRate(1.5) })
	assert.Panics(t, func() { cell.WithMaxAttempts(0) })
}
