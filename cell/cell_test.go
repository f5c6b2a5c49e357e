// SPDX-License-Identifier: MIT

package cell_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsym/cell"
	"github.com/katalvlaran/lvsym/mat3"
)

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := cell.New(0)
	assert.ErrorIs(t, err, cell.ErrEmptyCell)
}

func TestSet_Validation(t *testing.T) {
	c, err := cell.New(2)
	require.NoError(t, err)

	err = c.Set(mat3.Diag(4, 4, 4), []mat3.Vec{{0, 0, 0}}, []int{1, 1})
	assert.ErrorIs(t, err, cell.ErrSizeMismatch)

	err = c.Set(mat3.Diag(4, 4, 0), []mat3.Vec{{0, 0, 0}, {0.5, 0, 0}}, []int{1, 1})
	assert.ErrorIs(t, err, cell.ErrDegenerateLattice)

	err = c.Set(mat3.Diag(4, 4, 4), []mat3.Vec{{0, 0, 0}, {math.Inf(1), 0, 0}}, []int{1, 1})
	assert.ErrorIs(t, err, cell.ErrNonFinite)

	err = c.SetLayer(mat3.Diag(4, 4, 4), []mat3.Vec{{0, 0, 0}, {0.5, 0, 0}}, []int{1, 1}, 3)
	assert.ErrorIs(t, err, cell.ErrAperiodicAxis)

	require.NoError(t, c.SetLayer(mat3.Diag(4, 4, 20), []mat3.Vec{{0, 0, 0}, {0.5, 0, 0}}, []int{1, 1}, 2))
	assert.True(t, c.IsLayer())
	assert.Equal(t, [2]int{0, 1}, c.PeriodicAxes())
}

func TestClone_IsIndependent(t *testing.T) {
	c, err := cell.NewFromParts(mat3.Diag(4, 4, 4), []mat3.Vec{{0, 0, 0}, {0.5, 0.5, 0.5}}, []int{1, 2}, cell.Periodic)
	require.NoError(t, err)

	cp := c.Clone()
	cp.Positions[0][0] = 0.25
	cp.Types[1] = 7

	assert.Equal(t, 0.0, c.Positions[0][0])
	assert.Equal(t, 2, c.Types[1])
	assert.Equal(t, c.Lattice, cp.Lattice)
}

func TestPeriodicAxesOf(t *testing.T) {
	assert.Equal(t, [2]int{1, 2}, cell.PeriodicAxesOf(0))
	assert.Equal(t, [2]int{0, 2}, cell.PeriodicAxesOf(1))
	assert.Equal(t, [2]int{0, 1}, cell.PeriodicAxesOf(2))
}
