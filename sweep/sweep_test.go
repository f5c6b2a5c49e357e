// SPDX-License-Identifier: MIT

package sweep_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/lvsym/cell"
	"github.com/katalvlaran/lvsym/mat3"
	"github.com/katalvlaran/lvsym/refine"
	"github.com/katalvlaran/lvsym/sweep"
	"github.com/katalvlaran/lvsym/symmetry"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const a = 5.64

var (
	conventional = mat3.Diag(a, a, a)
	primitive    = mat3.Mul(conventional, symmetry.FaceCentered.PrimitiveTransform())
)

func rockSaltConventional(t *testing.T) *cell.Cell {
	t.Helper()
	c, err := cell.NewFromParts(conventional, []mat3.Vec{
		{0, 0, 0}, {0, 0.5, 0.5}, {0.5, 0, 0.5}, {0.5, 0.5, 0},
		{0.5, 0.5, 0.5}, {0.5, 0, 0}, {0, 0.5, 0}, {0, 0, 0.5},
	}, []int{11, 11, 11, 11, 17, 17, 17, 17}, cell.Periodic)
	require.NoError(t, err)

	return c
}

func TestTrim_ResultsInToleranceOrder(t *testing.T) {
	tolerances := []float64{1e-5, 1e-3, 1e-1, 5}
	results, err := sweep.Trim(context.Background(), rockSaltConventional(t), primitive, tolerances,
		sweep.WithConcurrency(2))
	require.NoError(t, err)
	require.Len(t, results, len(tolerances))

	for i, r := range results[:3] {
		assert.Equal(t, tolerances[i], r.Tolerance)
		require.NoError(t, r.Err)
		assert.Equal(t, 2, r.Cell.Size())
		assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1}, r.Mapping)
	}
	// at 5 Å the two sublattices of the trimmed cell collide
	assert.Nil(t, results[3].Cell)
	assert.ErrorIs(t, results[3].Err, cell.ErrTrimOverlap)
}

func TestRefine_FirstRefinement(t *testing.T) {
	conv := rockSaltConventional(t)
	mapping := make([]int, conv.Size())
	prim, err := cell.Trim(mapping, primitive, conv, 1e-5)
	require.NoError(t, err)

	req := sweep.RefineRequest{
		Spacegroup: &symmetry.Spacegroup{Number: 225, Centering: symmetry.FaceCentered, BravaisLattice: conventional},
		Primitive:  prim,
		Original:   conv,
		Mapping:    mapping,
	}
	results, err := sweep.Refine(context.Background(), req, []float64{1e-5, 1e-3, 1e-1})
	require.NoError(t, err)
	require.Len(t, results, 3)

	best, err := sweep.FirstRefinement(results)
	require.NoError(t, err)
	assert.Equal(t, 1e-5, best.Tolerance)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1}, best.Structure.InputWyckoffs)
}

func TestRefine_NoToleranceSucceeds(t *testing.T) {
	prim, err := cell.NewFromParts(primitive, []mat3.Vec{{0, 0, 0}, {0.25, 0.25, 0.25}}, []int{30, 16}, cell.Periodic)
	require.NoError(t, err)

	req := sweep.RefineRequest{
		Spacegroup: &symmetry.Spacegroup{Number: 225, BravaisLattice: conventional},
		Primitive:  prim,
		Original:   prim,
		Mapping:    []int{0, 1},
	}
	results, err := sweep.Refine(context.Background(), req, []float64{1e-5, 1e-3})
	require.NoError(t, err)
	for _, r := range results {
		assert.Nil(t, r.Structure)
		assert.True(t, refine.IsRetryable(r.Err))
	}

	best, err := sweep.FirstRefinement(results)
	assert.Nil(t, best)
	assert.ErrorIs(t, err, sweep.ErrNoTolerance)
	assert.ErrorIs(t, err, refine.ErrSymmetryMismatch)
}

func TestSweep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sweep.Trim(ctx, rockSaltConventional(t), primitive, []float64{1e-5, 1e-3})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSweep_InvalidArguments(t *testing.T) {
	ctx := context.Background()

	_, err := sweep.Trim(ctx, nil, primitive, []float64{1e-5})
	assert.ErrorIs(t, err, sweep.ErrNilCell)

	_, err = sweep.Trim(ctx, rockSaltConventional(t), primitive, nil)
	assert.ErrorIs(t, err, sweep.ErrNoTolerance)

	_, err = sweep.Refine(ctx, sweep.RefineRequest{}, []float64{1e-5})
	assert.ErrorIs(t, err, sweep.ErrNilRequest)

	assert.Panics(t, func() { sweep.WithConcurrency(0) })
}
