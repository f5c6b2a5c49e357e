// SPDX-License-Identifier: MIT

package spin

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvsym/cell"
	"github.com/katalvlaran/lvsym/mat3"
	"github.com/katalvlaran/lvsym/symmetry"
	"github.com/katalvlaran/lvsym/telemetry"
)

const ctxIdealized = "IdealizedCell"

// IdealizedCell symmetrizes c and tensors over the magnetic group ms, whose
// operation k maps atom i onto atom perms[k][i] (as returned by Operations).
//
// Positions: x_j ← x_j + mean_k MinimumImage(g_k(x_i) − x_j) over the
// operations without time reversal, i being the preimage of j under g_k.
// Tensors: m_j ← mean_k g_k·m_i with the tensor action of the package doc.
// Time-reversed operations take part only when withTimeReversal is set.
//
// The inputs are not modified.
func IdealizedCell(perms [][]int, c *cell.Cell, tensors SiteTensors, ms *symmetry.MagneticSymmetry,
	withTimeReversal, isAxial bool, opts ...Option) (out *cell.Cell, ideal SiteTensors, err error) {
	o := gatherOptions(opts)
	start := time.Now()
	defer func() { o.Recorder.Observe(telemetry.OpIdealize, telemetry.Outcome(err), time.Since(start)) }()

	switch {
	case ms == nil:
		return nil, SiteTensors{}, spinErrorf(ctxIdealized, ErrNilSymmetry)
	case c == nil:
		return nil, SiteTensors{}, spinErrorf(ctxIdealized, ErrNilCell)
	case len(perms) != ms.Size():
		return nil, SiteTensors{}, spinErrorf(ctxIdealized,
			fmt.Errorf("%w: %d permutations for %d operations", ErrPermutationSize, len(perms), ms.Size()))
	}
	if err := tensors.validate(c.Size()); err != nil {
		return nil, SiteTensors{}, spinErrorf(ctxIdealized, err)
	}
	n := c.Size()
	for k, p := range perms {
		if !isPermutation(p, n) {
			return nil, SiteTensors{}, spinErrorf(ctxIdealized,
				fmt.Errorf("%w: entry %d is not a permutation of %d atoms", ErrPermutationSize, k, n))
		}
	}

	var (
		shift    = make([]mat3.Vec, n)
		moments  = make([]float64, len(tensors.Values))
		buf      = make([]float64, tensors.Components())
		geometry int
		magnetic int
	)
	for k, op := range ms.Operations {
		if op.TimeReversal && !withTimeReversal {
			continue
		}
		rot, err := op.CartesianRotation(c.Lattice)
		if err != nil {
			return nil, SiteTensors{}, spinErrorf(ctxIdealized, err)
		}
		act := newAction(tensors.Rank, rot, mat3.IDet(op.Rotation), op.TimeReversal, isAxial)
		for i, j := range perms[k] {
			if !op.TimeReversal {
				d := op.Apply(c.Positions[i]).Sub(c.Positions[j])
				shift[j] = shift[j].Add(cell.MinimumImage(d, c.AperiodicAxis))
			}
			act.apply(buf, tensors.At(i))
			dst := moments[j*len(buf) : (j+1)*len(buf)]
			for q := range buf {
				dst[q] += buf[q]
			}
		}
		if !op.TimeReversal {
			geometry++
		}
		magnetic++
	}
	if geometry == 0 {
		return nil, SiteTensors{}, spinErrorf(ctxIdealized, ErrNoMagneticSymmetry)
	}

	out = c.Clone()
	for j := range out.Positions {
		out.Positions[j] = out.Wrap(c.Positions[j].Add(shift[j].Scale(1 / float64(geometry))))
	}
	for q := range moments {
		moments[q] /= float64(magnetic)
	}

	return out, SiteTensors{Rank: tensors.Rank, Values: moments}, nil
}

func isPermutation(p []int, n int) bool {
	if len(p) != n {
		return false
	}
	seen := make([]bool, n)
	for _, j := range p {
		if j < 0 || j >= n || seen[j] {
			return false
		}
		seen[j] = true
	}

	return true
}
