// SPDX-License-Identifier: MIT

package cell

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsym/mat3"
	"github.com/katalvlaran/lvsym/telemetry"
)

const ctxTrim = "Trim"

// Trim reduces c onto the smaller lattice trimmed.
// MAIN DESCRIPTION:
//   - Express every atom in the trimmed basis, group coinciding same-type atoms
//     into classes and keep one averaged representative per class.
//
// Implementation:
//   - Stage 1: validate inputs; N = |det c.Lattice| / |det trimmed| must be
//     a positive integer dividing c.Size(). T = trimmed⁻¹·c.Lattice, snapped
//     to integers when it is integral within snapEpsilon.
//   - Stage 2: positions p' = T·p wrapped into [0,1) on periodic axes.
//   - Stage 3: build overlap classes at tolerance symprec, reducing it by
//     ReduceRate until the classes form a uniform partition whose class size
//     is a multiple of N. Every atom must see its N translation images, so a
//     class smaller than N fails at once.
//   - Stage 4: representatives are the first members in original order; the
//     output keeps that order; positions are class means.
//   - Stage 5: reject the result when AnyOverlap still fires at symprec.
//
// Inputs:
//   - mapping: length c.Size(); receives, for every original atom, the index
//     of its representative in the returned cell. Written only on success.
//
// Errors:
//   - ErrNilCell, ErrSizeMismatch, ErrTolerance, ErrDegenerateLattice,
//     ErrLatticeNotSubmultiple, ErrOverlapInconsistent, ErrTrimOverlap.
//
// Determinism:
//   - Identical input yields identical output and mapping.
//
// Complexity:
//   - Time O(attempts·n²), Space O(n²) for the overlap table.
func Trim(mapping []int, trimmed mat3.Mat, c *Cell, symprec float64, opts ...Option) (out *Cell, err error) {
	o := gatherOptions(opts)
	start := time.Now()
	defer func() { o.Recorder.Observe(telemetry.OpTrim, telemetry.Outcome(err), time.Since(start)) }()

	if c == nil {
		return nil, cellErrorf(ctxTrim, ErrNilCell)
	}
	if len(mapping) != c.Size() {
		return nil, cellErrorf(ctxTrim, ErrSizeMismatch)
	}
	if math.IsNaN(symprec) || math.IsInf(symprec, 0) || symprec <= 0 {
		return nil, cellErrorf(ctxTrim, ErrTolerance)
	}
	if err := mat3.ValidateNonDegenerate(trimmed); err != nil {
		return nil, cellErrorf(ctxTrim, ErrDegenerateLattice)
	}
	ratio, ok := volumeRatio(c.Lattice, trimmed)
	if !ok || c.Size()%ratio != 0 {
		return nil, cellErrorf(ctxTrim, ErrLatticeNotSubmultiple)
	}

	inv, err := mat3.Inverse(trimmed)
	if err != nil {
		return nil, cellErrorf(ctxTrim, ErrDegenerateLattice)
	}
	tmat := mat3.Mul(inv, c.Lattice)
	if it, snapErr := mat3.SnapToInt(tmat, snapEpsilon); snapErr == nil {
		tmat = it.Float()
	}

	n := c.Size()
	axis := c.AperiodicAxis
	pos := make([]mat3.Vec, n)
	for i, p := range c.Positions {
		pos[i] = wrapAxes(mat3.MulVec(tmat, p), axis)
	}

	var (
		rep    []int
		status classStatus
		tol    = symprec
	)
	for attempt := 0; attempt < o.MaxAttempts; attempt++ {
		rep, status = overlapClasses(c.Types, pos, trimmed, axis, tol, ratio)
		if status != classesRetry {
			break
		}
		o.Logger.Debug("trim: overlap classes inconsistent, reducing tolerance",
			zap.Int("attempt", attempt),
			zap.Float64("tolerance", tol),
			zap.Float64("next", tol*o.ReduceRate))
		tol *= o.ReduceRate
	}
	switch status {
	case classesShort:
		return nil, cellErrorf(ctxTrim, ErrLatticeNotSubmultiple)
	case classesRetry:
		return nil, cellErrorf(ctxTrim, ErrOverlapInconsistent)
	}

	// assign output indices in order of first appearance
	index := make([]int, n)
	count := make([]int, n)
	var reps []int
	for i := 0; i < n; i++ {
		if rep[i] == i {
			index[i] = len(reps)
			reps = append(reps, i)
		}
		count[rep[i]]++
	}

	// class means, each member unwrapped to the nearest image of its representative
	sums := make([]mat3.Vec, n)
	for i := 0; i < n; i++ {
		r := rep[i]
		sums[r] = sums[r].Add(MinimumImage(pos[i].Sub(pos[r]), axis))
	}

	out, err = New(len(reps))
	if err != nil {
		return nil, cellErrorf(ctxTrim, err)
	}
	positions := make([]mat3.Vec, len(reps))
	types := make([]int, len(reps))
	for k, r := range reps {
		mean := pos[r].Add(sums[r].Scale(1 / float64(count[r])))
		positions[k] = wrapAxes(mean, axis)
		types[k] = c.Types[r]
	}
	if err := out.fill(trimmed, positions, types, axis); err != nil {
		return nil, cellErrorf(ctxTrim, err)
	}

	if AnyOverlap(out, symprec) {
		return nil, cellErrorf(ctxTrim, ErrTrimOverlap)
	}

	for i := 0; i < n; i++ {
		mapping[i] = index[rep[i]]
	}
	o.Logger.Debug("trim: done",
		zap.Int("atoms_in", n),
		zap.Int("atoms_out", out.Size()),
		zap.Float64("tolerance", tol))

	return out, nil
}

type classStatus int

const (
	classesOK classStatus = iota
	classesRetry
	classesShort
)

// volumeRatio returns N = |det lattice| / |det trimmed| when it is a positive
// integer within volumeRatioEpsilon.
func volumeRatio(lattice, trimmed mat3.Mat) (int, bool) {
	r := mat3.Volume(lattice) / mat3.Volume(trimmed)
	n := math.Round(r)
	if n < 1 || math.Abs(r-n) > volumeRatioEpsilon {
		return 0, false
	}

	return int(n), true
}

// overlapClasses groups same-type atoms that coincide at tolerance tol.
// On classesOK rep[i] is the smallest index of i's class. classesRetry means
// the overlap relation is not transitive, or class sizes differ or are not
// multiples of ratio. classesShort means some atom overlaps fewer than ratio
// atoms; a smaller tolerance cannot fix that.
func overlapClasses(types []int, pos []mat3.Vec, lattice mat3.Mat, axis int, tol float64, ratio int) ([]int, classStatus) {
	n := len(types)
	neighbors := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if types[i] != types[j] {
				continue
			}
			if i == j || overlapsIn(pos[i], pos[j], lattice, axis, tol) {
				neighbors[i] = append(neighbors[i], j)
			}
		}
		if len(neighbors[i]) < ratio {
			return nil, classesShort
		}
	}

	size := len(neighbors[0])
	if size%ratio != 0 {
		return nil, classesRetry
	}
	rep := make([]int, n)
	for i := 0; i < n; i++ {
		if len(neighbors[i]) != size {
			return nil, classesRetry
		}
		// neighbours are collected in ascending order, so the first is the minimum
		rep[i] = neighbors[i][0]
		for _, j := range neighbors[i] {
			if !sameInts(neighbors[i], neighbors[j]) {
				return nil, classesRetry
			}
		}
	}

	return rep, classesOK
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
