// SPDX-License-Identifier: MIT

package symmetry

import (
	"fmt"

	"github.com/katalvlaran/lvsym/cell"
)

// Permutation returns perm with op(atom i) overlapping atom perm[i] of the
// same type within symprec. It fails with ErrNoImage when some image has no
// partner, and with ErrNoImage as well when two atoms share an image, since
// the action of a symmetry operation is a bijection.
func Permutation(op Operation, c *cell.Cell, symprec float64) ([]int, error) {
	n := c.Size()
	perm := make([]int, n)
	taken := make([]bool, n)
	for i := 0; i < n; i++ {
		j := cell.FindOverlap(c, op.Apply(c.Positions[i]), c.Types[i], symprec)
		if j < 0 || taken[j] {
			return nil, fmt.Errorf("symmetry.Permutation: atom %d under %s: %w", i, op.Jones(), ErrNoImage)
		}
		taken[j] = true
		perm[i] = j
	}

	return perm, nil
}

// Permutations applies Permutation to every operation of s.
func Permutations(s *Symmetry, c *cell.Cell, symprec float64) ([][]int, error) {
	out := make([][]int, s.Size())
	for k, op := range s.Operations {
		p, err := Permutation(op, c, symprec)
		if err != nil {
			return nil, err
		}
		out[k] = p
	}

	return out, nil
}
