// SPDX-License-Identifier: MIT

package symmetry

import "github.com/katalvlaran/lvsym/mat3"

// MaxGroupOrder bounds the closure: the largest crystallographic space group
// has 192 operations per conventional cell (Fm-3m family).
const MaxGroupOrder = 192

// Generate closes generators together with the centering translations into
// a group modulo lattice translations. The identity comes first and the
// remaining operations follow in breadth-first discovery order, so the
// result is deterministic for a given generator order.
//
// Complexity: O(|G|·k) compositions plus O(|G|) lookups each, k = #generators.
func Generate(generators []Operation, centering []mat3.Vec) (*Symmetry, error) {
	gens := make([]Operation, 0, len(generators)+len(centering))
	for _, t := range centering {
		if op := Translation(t).Normalize(); !op.IsIdentity(DefaultEpsilon) {
			gens = append(gens, op)
		}
	}
	for _, g := range generators {
		if _, err := g.Inverse(); err != nil {
			return nil, symErrorf("Generate", err)
		}
		gens = append(gens, g.Normalize())
	}

	group := &Symmetry{Operations: []Operation{Identity()}}
	for head := 0; head < len(group.Operations); head++ {
		cur := group.Operations[head]
		for _, g := range gens {
			next := g.Compose(cur).Normalize()
			if group.Contains(next, DefaultEpsilon) {
				continue
			}
			if len(group.Operations) == MaxGroupOrder {
				return nil, symErrorf("Generate", ErrGroupTooLarge)
			}
			group.Operations = append(group.Operations, next)
		}
	}

	return group, nil
}
