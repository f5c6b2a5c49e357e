// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsym/cell"
	"github.com/katalvlaran/lvsym/mat3"
	"github.com/katalvlaran/lvsym/refine"
	"github.com/katalvlaran/lvsym/symmetry"
)

// TrimResult is the outcome of cell.Trim at one tolerance. Exactly one of
// Cell and Err is set.
type TrimResult struct {
	Tolerance float64
	Cell      *cell.Cell
	Mapping   []int
	Err       error
}

// RefineRequest bundles the inputs of refine.Refine shared by all
// tolerances.
type RefineRequest struct {
	Spacegroup *symmetry.Spacegroup
	Primitive  *cell.Cell
	Original   *cell.Cell
	Mapping    []int
}

// RefineResult is the outcome of refine.Refine at one tolerance. Exactly one
// of Structure and Err is set.
type RefineResult struct {
	Tolerance float64
	Structure *refine.ExactStructure
	Err       error
}

// Trim runs cell.Trim(c → lattice) once per tolerance. The returned error is
// non-nil only for invalid arguments or cancellation.
func Trim(ctx context.Context, c *cell.Cell, lattice mat3.Mat, tolerances []float64, opts ...Option) ([]TrimResult, error) {
	if c == nil {
		return nil, fmt.Errorf("sweep.Trim: %w", ErrNilCell)
	}
	if len(tolerances) == 0 {
		return nil, fmt.Errorf("sweep.Trim: empty tolerance list: %w", ErrNoTolerance)
	}
	o := gatherOptions(opts)

	out := make([]TrimResult, len(tolerances))
	err := fanOut(ctx, o, tolerances, func(i int, tol float64) {
		mapping := make([]int, c.Size())
		trimmed, err := cell.Trim(mapping, lattice, c, tol, o.Cell...)
		out[i] = TrimResult{Tolerance: tol, Err: err}
		if err == nil {
			out[i].Cell, out[i].Mapping = trimmed, mapping
		}
		o.Logger.Debug("sweep: trim", zap.Float64("tolerance", tol), zap.Error(err))
	})
	if err != nil {
		return nil, fmt.Errorf("sweep.Trim: %w", err)
	}

	return out, nil
}

// Refine runs refine.Refine once per tolerance. The space group is shared
// read-only by all invocations.
func Refine(ctx context.Context, req RefineRequest, tolerances []float64, opts ...Option) ([]RefineResult, error) {
	if req.Spacegroup == nil {
		return nil, fmt.Errorf("sweep.Refine: %w", ErrNilRequest)
	}
	if len(tolerances) == 0 {
		return nil, fmt.Errorf("sweep.Refine: empty tolerance list: %w", ErrNoTolerance)
	}
	o := gatherOptions(opts)

	out := make([]RefineResult, len(tolerances))
	err := fanOut(ctx, o, tolerances, func(i int, tol float64) {
		ex, err := refine.Refine(req.Spacegroup, req.Primitive, req.Original, req.Mapping, tol, o.Refine...)
		out[i] = RefineResult{Tolerance: tol, Structure: ex, Err: err}
		o.Logger.Debug("sweep: refine",
			zap.Int("spacegroup", req.Spacegroup.Number),
			zap.Float64("tolerance", tol),
			zap.Error(err))
	})
	if err != nil {
		return nil, fmt.Errorf("sweep.Refine: %w", err)
	}

	return out, nil
}

// FirstRefinement returns the first successful result in tolerance order.
// When none succeeded the error wraps ErrNoTolerance and every failure.
func FirstRefinement(results []RefineResult) (*RefineResult, error) {
	errs := []error{ErrNoTolerance}
	for i := range results {
		if results[i].Err == nil {
			return &results[i], nil
		}
		errs = append(errs, fmt.Errorf("symprec %g: %w", results[i].Tolerance, results[i].Err))
	}

	return nil, errors.Join(errs...)
}

// fanOut calls run(i, tolerances[i]) for every index with at most
// o.Concurrency calls in flight, and returns the context error if the sweep
// was cancelled before all calls started.
func fanOut(ctx context.Context, o Options, tolerances []float64, run func(i int, tol float64)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)
	for i, tol := range tolerances {
		i, tol := i, tol
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			run(i, tol)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}
