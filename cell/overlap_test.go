// SPDX-License-Identifier: MIT

package cell_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsym/cell"
	"github.com/katalvlaran/lvsym/mat3"
)

const symprec = 1e-5

var samplePoints = []mat3.Vec{
	{0, 0, 0},
	{1, 0, 0},
	{0.5, 0.5, 0.5},
	{0.4999999, 0.5, -0.5},
	{0.123, 0.877, 0.25},
	{-0.3, 1.7, 0.0001},
	{0.999999999, 0, 0},
}

func TestIsOverlap_Reflexive(t *testing.T) {
	lattice := mat3.Mat{{4, 1, 0}, {0, 4, 0.5}, {0, 0, 6}}
	for _, p := range samplePoints {
		assert.True(t, cell.IsOverlap(p, p, lattice, symprec), "overlap(p,p) for %v", p)
		assert.True(t, cell.LayerIsOverlap(p, p, lattice, [2]int{0, 1}, symprec))
	}
}

func TestIsOverlap_Symmetric(t *testing.T) {
	lattice := mat3.Diag(4, 4, 4)
	for i, a := range samplePoints {
		for j, b := range samplePoints {
			t.Run(fmt.Sprintf("%d_%d", i, j), func(t *testing.T) {
				assert.Equal(t,
					cell.IsOverlap(a, b, lattice, symprec),
					cell.IsOverlap(b, a, lattice, symprec))
				assert.Equal(t,
					cell.LayerIsOverlap(a, b, lattice, [2]int{0, 1}, symprec),
					cell.LayerIsOverlap(b, a, lattice, [2]int{0, 1}, symprec))
			})
		}
	}
}

func TestIsOverlap_InclusiveBoundary(t *testing.T) {
	lattice := mat3.Diag(1, 1, 1)
	a := mat3.Vec{0, 0, 0}
	b := mat3.Vec{0.25, 0, 0}
	assert.True(t, cell.IsOverlap(a, b, lattice, 0.25), "distance == symprec counts as overlap")
	assert.False(t, cell.IsOverlap(a, b, lattice, 0.2499))
}

func TestIsOverlapWithSameType_TypeGate(t *testing.T) {
	lattice := mat3.Diag(4, 4, 4)
	for _, a := range samplePoints {
		for _, b := range samplePoints {
			assert.False(t, cell.IsOverlapWithSameType(a, b, 1, 2, lattice, 1e3), "different types never overlap")
			assert.False(t, cell.LayerIsOverlapWithSameType(a, b, 1, 2, lattice, [2]int{0, 1}, 1e3))
		}
	}
	assert.True(t, cell.IsOverlapWithSameType(mat3.Vec{0, 0, 0}, mat3.Vec{1, 0, 0}, 3, 3, lattice, symprec))
}

func TestScenario_SingleAtomCubic(t *testing.T) {
	c, err := cell.NewFromParts(mat3.Diag(4, 4, 4), []mat3.Vec{{0, 0, 0}}, []int{1}, cell.Periodic)
	require.NoError(t, err)

	assert.False(t, cell.AnyOverlap(c, symprec))

	mapping := make([]int, 1)
	trimmed, err := cell.Trim(mapping, c.Lattice, c, symprec)
	require.NoError(t, err)
	assert.Equal(t, c.Types, trimmed.Types)
	assert.Equal(t, c.Positions, trimmed.Positions)
	assert.Equal(t, c.Lattice, trimmed.Lattice)
	assert.Equal(t, []int{0}, mapping)
}

func TestScenario_PeriodicImage(t *testing.T) {
	c, err := cell.NewFromParts(mat3.Diag(4, 4, 4), []mat3.Vec{{0, 0, 0}, {1, 0, 0}}, []int{1, 1}, cell.Periodic)
	require.NoError(t, err)

	assert.True(t, cell.IsOverlap(c.Positions[0], c.Positions[1], c.Lattice, symprec))
	assert.True(t, cell.AnyOverlap(c, symprec))
	assert.True(t, cell.AnyOverlapWithSameType(c, symprec))

	mapping := make([]int, 2)
	trimmed, err := cell.Trim(mapping, c.Lattice, c, symprec)
	require.NoError(t, err)
	assert.Equal(t, 1, trimmed.Size())
	assert.Equal(t, []int{0, 0}, mapping)
	assert.False(t, cell.AnyOverlap(trimmed, symprec))
}

func TestScenario_LayerAperiodicAxis(t *testing.T) {
	lattice := mat3.Diag(4, 4, 4)
	a := mat3.Vec{0, 0, 0.1}
	b := mat3.Vec{0, 0, 0.9}

	assert.False(t, cell.LayerIsOverlap(a, b, lattice, [2]int{0, 1}, symprec),
		"axis 2 is not periodic, so 0.1 and 0.9 stay 0.8 apart")
	assert.True(t, cell.IsOverlap(a, b, lattice, 0.81),
		"fully periodic: 0.1 and 0.9 are 0.2 apart (0.8 Å)")

	c, err := cell.NewFromParts(lattice, []mat3.Vec{a, b}, []int{1, 1}, 2)
	require.NoError(t, err)
	assert.False(t, cell.AnyOverlap(c, symprec))
	assert.False(t, cell.LayerAnyOverlapWithSameType(c, [2]int{0, 1}, symprec))
}

func TestAnyOverlap_MixedTypes(t *testing.T) {
	c, err := cell.NewFromParts(mat3.Diag(4, 4, 4), []mat3.Vec{{0, 0, 0}, {0, 0, 1e-7}}, []int{1, 2}, cell.Periodic)
	require.NoError(t, err)

	assert.True(t, cell.AnyOverlap(c, symprec), "type-agnostic scan sees the coincidence")
	assert.False(t, cell.AnyOverlapWithSameType(c, symprec), "same-type scan skips it")
}

func TestFindOverlap(t *testing.T) {
	c, err := cell.NewFromParts(mat3.Diag(4, 4, 4),
		[]mat3.Vec{{0, 0, 0}, {0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}}, []int{1, 1, 2}, cell.Periodic)
	require.NoError(t, err)

	assert.Equal(t, 1, cell.FindOverlap(c, mat3.Vec{-0.5, 1.5, 0.5}, 1, symprec))
	assert.Equal(t, 2, cell.FindOverlap(c, mat3.Vec{0.5, 0.5, 0.5}, 2, symprec))
	assert.Equal(t, -1, cell.FindOverlap(c, mat3.Vec{0.25, 0, 0}, 1, symprec))
}
