// SPDX-License-Identifier: MIT

package spin

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsym/cell"
	"github.com/katalvlaran/lvsym/mat3"
	"github.com/katalvlaran/lvsym/orbit"
	"github.com/katalvlaran/lvsym/symmetry"
	"github.com/katalvlaran/lvsym/telemetry"
)

const (
	ctxOperations = "Operations"

	// volumeEpsilon is the slack when matching a candidate basis volume
	// against 1/N for N pure translations.
	volumeEpsilon = 1e-6
)

// Result is the outcome of Operations. Permutations[k] is the atom mapping
// of Symmetry.Operations[k].
type Result struct {
	Symmetry         *symmetry.MagneticSymmetry
	Permutations     [][]int
	EquivalentAtoms  []int
	PrimitiveLattice mat3.Mat
}

// Operations returns the magnetic symmetry of c decorated with tensors.
//
// Implementation:
//   - Stage 1: every operation of nonspin is applied to the atoms; an
//     operation without a same-type image for some atom is dropped.
//   - Stage 2: the surviving geometric operations are tested against the
//     tensor field, first without and then (withTimeReversal) with time
//     reversal; each passing combination is kept.
//   - Stage 3: orbits come from a BFS over the kept permutations; the
//     primitive lattice is spanned by the pure translations.
//
// Errors:
//   - ErrNilSymmetry, ErrNilCell, ErrTensorRank, ErrTensorSize, ErrTolerance,
//     ErrNoMagneticSymmetry, ErrPrimitiveLattice.
//
// Complexity:
//   - Time O(|G|·n²) for n atoms and |G| operations.
func Operations(nonspin *symmetry.Symmetry, c *cell.Cell, tensors SiteTensors, withTimeReversal, isAxial bool,
	symprec, magSymprec float64, opts ...Option) (res *Result, err error) {
	o := gatherOptions(opts)
	start := time.Now()
	defer func() { o.Recorder.Observe(telemetry.OpMagnetic, telemetry.Outcome(err), time.Since(start)) }()

	switch {
	case nonspin == nil:
		return nil, spinErrorf(ctxOperations, ErrNilSymmetry)
	case c == nil:
		return nil, spinErrorf(ctxOperations, ErrNilCell)
	case !validTolerance(symprec) || !validTolerance(magSymprec):
		return nil, spinErrorf(ctxOperations, ErrTolerance)
	}
	if err := tensors.validate(c.Size()); err != nil {
		return nil, spinErrorf(ctxOperations, err)
	}

	flags := []bool{false}
	if withTimeReversal {
		flags = append(flags, true)
	}

	var (
		ops   []symmetry.MagneticOperation
		perms [][]int
	)
	for k, op := range nonspin.Operations {
		perm, err := symmetry.Permutation(op, c, symprec)
		if err != nil {
			o.Logger.Debug("spin: operation dropped, no geometric image",
				zap.Int("op", k), zap.String("jones", op.Jones()))
			continue
		}
		rot, err := op.CartesianRotation(c.Lattice)
		if err != nil {
			return nil, spinErrorf(ctxOperations, err)
		}
		det := mat3.IDet(op.Rotation)
		kept := false
		for _, tr := range flags {
			if newAction(tensors.Rank, rot, det, tr, isAxial).matches(tensors, perm, magSymprec) {
				ops = append(ops, symmetry.MagneticOperation{Operation: op, TimeReversal: tr})
				perms = append(perms, perm)
				kept = true
			}
		}
		if !kept {
			o.Logger.Debug("spin: operation dropped, tensor mismatch",
				zap.Int("op", k), zap.String("jones", op.Jones()))
		}
	}

	ms := symmetry.NewMagnetic(ops)
	if !hasIdentity(ms) {
		return nil, spinErrorf(ctxOperations, ErrNoMagneticSymmetry)
	}

	equiv, err := orbit.Partition(c.Size(), perms)
	if err != nil {
		return nil, spinErrorf(ctxOperations, err)
	}
	prim, err := primitiveLattice(c.Lattice, PureTranslations(ms))
	if err != nil {
		return nil, spinErrorf(ctxOperations, err)
	}
	o.Logger.Debug("spin: operations found",
		zap.Int("candidates", nonspin.Size()),
		zap.Int("kept", ms.Size()),
		zap.Int("time_reversed", ms.CountTimeReversal()))

	return &Result{
		Symmetry:         ms,
		Permutations:     perms,
		EquivalentAtoms:  equiv,
		PrimitiveLattice: prim,
	}, nil
}

// PureTranslations returns the translations of ms's identity-rotation
// operations that do not reverse time, in operation order.
func PureTranslations(ms *symmetry.MagneticSymmetry) []mat3.Vec {
	if ms == nil {
		return nil
	}
	var out []mat3.Vec
	for _, op := range ms.Operations {
		if op.IsIdentityRotation() && !op.TimeReversal {
			out = append(out, op.Translation)
		}
	}

	return out
}

func hasIdentity(ms *symmetry.MagneticSymmetry) bool {
	for _, op := range ms.Operations {
		if !op.TimeReversal && op.IsIdentity(symmetry.DefaultEpsilon) {
			return true
		}
	}

	return false
}

// primitiveLattice finds, among the nonzero pure translations and the unit
// vectors, the first triple whose volume is 1/N of the cell for N pure
// translations, and returns the reduced Cartesian basis it spans.
func primitiveLattice(lattice mat3.Mat, pure []mat3.Vec) (mat3.Mat, error) {
	if len(pure) == 0 {
		return mat3.Mat{}, ErrPrimitiveLattice
	}
	want := 1 / float64(len(pure))

	var cands []mat3.Vec
	for _, t := range pure {
		d := cell.MinimumImage(t, cell.Periodic)
		if d.MaxAbs() > symmetry.DefaultEpsilon {
			cands = append(cands, d)
		}
	}
	cands = append(cands, mat3.Vec{1, 0, 0}, mat3.Vec{0, 1, 0}, mat3.Vec{0, 0, 1})

	for i := 0; i < len(cands); i++ {
		for j := i + 1; j < len(cands); j++ {
			for k := j + 1; k < len(cands); k++ {
				m := mat3.FromColumns(cands[i], cands[j], cands[k])
				if math.Abs(math.Abs(mat3.Det(m))-want) < volumeEpsilon {
					return mat3.ReduceBasis(mat3.Mul(lattice, m)), nil
				}
			}
		}
	}

	return mat3.Mat{}, ErrPrimitiveLattice
}

func validTolerance(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
