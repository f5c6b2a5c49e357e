// SPDX-License-Identifier: MIT

package refine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsym/cell"
	"github.com/katalvlaran/lvsym/mat3"
	"github.com/katalvlaran/lvsym/orbit"
	"github.com/katalvlaran/lvsym/pointgroup"
	"github.com/katalvlaran/lvsym/refdata"
	"github.com/katalvlaran/lvsym/symmetry"
	"github.com/katalvlaran/lvsym/telemetry"
)

const ctxRefine = "Refine"

// Refine builds the exact structure for space group sg found on primitive.
//
// Implementation:
//   - Stage 1: T = B⁻¹·L_p with B = sg.BravaisLattice; every primitive atom
//     x_p yields one conventional atom per centering translation c at
//     T·x_p + sg.OriginShift + c (primitive-atom-major, centering-minor).
//   - Stage 2: every reference operation must permute the conventional atoms;
//     orbits come from a BFS over these permutations, and the site-symmetry
//     group of an atom is the set of operations fixing it.
//   - Stage 3: positions are idealized per orbit and matched against the
//     Wyckoff table in letter order.
//   - Stage 4: the idealized cell is re-expressed on ConventionalLattice(sg)
//     and labels are mapped back onto the original cell through mapping.
//
// Inputs:
//   - original, mapping: mapping[k] is the primitive atom of original atom k,
//     as produced by cell.Trim.
//
// Errors:
//   - ErrNilSpacegroup, ErrNilCell, ErrAperiodicCell, ErrMappingSize,
//     ErrMappingRange, ErrTolerance, ErrDegenerateLattice, ErrCentering,
//     ErrSymmetryMismatch, ErrOrderMismatch, ErrWyckoffMismatch,
//     ErrInconsistent and refdata.ErrUnknownSpacegroup.
//
// Complexity:
//   - Time O(|G|·n²) for n conventional atoms and |G| operations.
func Refine(sg *symmetry.Spacegroup, primitive, original *cell.Cell, mapping []int, symprec float64, opts ...Option) (ex *ExactStructure, err error) {
	o := gatherOptions(opts)
	start := time.Now()
	defer func() { o.Recorder.Observe(telemetry.OpRefine, telemetry.Outcome(err), time.Since(start)) }()

	if err := validateInputs(sg, primitive, original, mapping, symprec); err != nil {
		return nil, refineErrorf(ctxRefine, err)
	}
	group, err := o.lookup(sg.Number)
	if err != nil {
		return nil, refineErrorf(ctxRefine, err)
	}

	conv, src, tmat, err := conventionalCell(sg, group, primitive)
	if err != nil {
		return nil, refineErrorf(ctxRefine, err)
	}
	ops := group.Operations.Operations
	perms, err := symmetry.Permutations(group.Operations, conv, symprec)
	if err != nil {
		return nil, refineErrorf(ctxRefine, fmt.Errorf("%w: %v", ErrSymmetryMismatch, err))
	}

	n := conv.Size()
	equiv, err := orbit.Partition(n, perms)
	if err != nil {
		return nil, refineErrorf(ctxRefine, err)
	}
	cosets := cosetRepresentatives(ops)
	crystOrbits, err := orbit.Partition(n, perms, orbit.WithFilterPermutation(func(k int) bool { return cosets[k] }))
	if err != nil {
		return nil, refineErrorf(ctxRefine, err)
	}

	classes := orbit.Classes(equiv)
	sites := siteOperations(perms, n)
	for _, class := range classes {
		if len(class)*len(sites[class[0]]) != len(ops) {
			return nil, refineErrorf(ctxRefine, fmt.Errorf("%w: orbit of atom %d has %d members and %d site operations, group order %d",
				ErrOrderMismatch, class[0], len(class), len(sites[class[0]]), len(ops)))
		}
	}

	ideal := idealize(conv.Positions, ops, perms, classes, sites)
	wyckoffs, symbols, err := assignWyckoff(group, conv.Lattice, ideal, ops, classes, sites, symprec, o.Logger)
	if err != nil {
		return nil, refineErrorf(ctxRefine, err)
	}

	stdLattice, err := ConventionalLattice(sg)
	if err != nil {
		return nil, refineErrorf(ctxRefine, err)
	}
	bravais, err := cell.NewFromParts(stdLattice, ideal, conv.Types, cell.Periodic)
	if err != nil {
		return nil, refineErrorf(ctxRefine, err)
	}
	binv, err := mat3.Inverse(sg.BravaisLattice)
	if err != nil {
		return nil, refineErrorf(ctxRefine, ErrDegenerateLattice)
	}

	inputEquiv, inputWyckoffs := backMap(mapping, primitive.Size(), len(group.CenteringTranslations()), src, equiv, wyckoffs)
	ex = &ExactStructure{
		Bravais:                bravais,
		Symmetry:               group.Operations.Clone(),
		Wyckoffs:               wyckoffs,
		SiteSymmetrySymbols:    symbols,
		EquivalentAtoms:        equiv,
		CrystallographicOrbits: crystOrbits,
		StdMappingToPrimitive:  src,
		Rotation:               mat3.Mul(stdLattice, binv),
		Transformation:         tmat,
		OriginShift:            sg.OriginShift,
		InputEquivalentAtoms:   inputEquiv,
		InputWyckoffs:          inputWyckoffs,
		SpacegroupNumber:       sg.Number,
	}
	if err := ex.Validate(); err != nil {
		return nil, refineErrorf(ctxRefine, err)
	}
	o.Logger.Debug("refine: done",
		zap.Int("spacegroup", sg.Number),
		zap.Int("primitive_atoms", primitive.Size()),
		zap.Int("bravais_atoms", n),
		zap.Int("orbits", len(classes)))

	return ex, nil
}

func validateInputs(sg *symmetry.Spacegroup, primitive, original *cell.Cell, mapping []int, symprec float64) error {
	switch {
	case sg == nil:
		return ErrNilSpacegroup
	case primitive == nil || original == nil:
		return ErrNilCell
	case primitive.IsLayer() || original.IsLayer():
		return ErrAperiodicCell
	case len(mapping) != original.Size():
		return ErrMappingSize
	case !validTolerance(symprec):
		return ErrTolerance
	}
	for _, p := range mapping {
		if p < 0 || p >= primitive.Size() {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrMappingRange, p, primitive.Size())
		}
	}
	if err := mat3.ValidateNonDegenerate(sg.BravaisLattice); err != nil {
		return ErrDegenerateLattice
	}

	return nil
}

// conventionalCell expands primitive into the conventional cell of sg. It
// returns the cell (on sg.BravaisLattice), the source primitive atom of
// every conventional atom, and the coordinate transformation T.
func conventionalCell(sg *symmetry.Spacegroup, group *refdata.Group, primitive *cell.Cell) (*cell.Cell, []int, mat3.Mat, error) {
	binv, err := mat3.Inverse(sg.BravaisLattice)
	if err != nil {
		return nil, nil, mat3.Mat{}, ErrDegenerateLattice
	}
	tmat := mat3.Mul(binv, primitive.Lattice)

	centering := group.CenteringTranslations()
	points := 1 / math.Abs(mat3.Det(tmat))
	if math.Abs(points-math.Round(points)) > 1e-3 || int(math.Round(points)) != len(centering) {
		return nil, nil, mat3.Mat{}, fmt.Errorf("%w: %.4f lattice points per cell, %s centering has %d",
			ErrCentering, points, group.Centering, len(centering))
	}

	n := primitive.Size() * len(centering)
	positions := make([]mat3.Vec, 0, n)
	types := make([]int, 0, n)
	src := make([]int, 0, n)
	for ip, xp := range primitive.Positions {
		xc := mat3.MulVec(tmat, xp).Add(sg.OriginShift)
		for _, t := range centering {
			positions = append(positions, xc.Add(t).Wrap())
			types = append(types, primitive.Types[ip])
			src = append(src, ip)
		}
	}
	conv, err := cell.NewFromParts(sg.BravaisLattice, positions, types, cell.Periodic)
	if err != nil {
		return nil, nil, mat3.Mat{}, err
	}

	return conv, src, tmat, nil
}

// cosetRepresentatives marks the first operation of each distinct rotation.
func cosetRepresentatives(ops []symmetry.Operation) []bool {
	seen := make(map[mat3.IMat]bool, len(ops))
	out := make([]bool, len(ops))
	for k, op := range ops {
		if !seen[op.Rotation] {
			seen[op.Rotation] = true
			out[k] = true
		}
	}

	return out
}

// siteOperations lists, per atom, the operations fixing it.
func siteOperations(perms [][]int, n int) [][]int {
	sites := make([][]int, n)
	for k, p := range perms {
		for i, j := range p {
			if i == j {
				sites[i] = append(sites[i], k)
			}
		}
	}

	return sites
}

// idealize averages each orbit representative over its site-symmetry group
// and regenerates the other members from it.
func idealize(pos []mat3.Vec, ops []symmetry.Operation, perms [][]int, classes [][]int, sites [][]int) []mat3.Vec {
	out := make([]mat3.Vec, len(pos))
	for _, class := range classes {
		r := class[0]
		x := pos[r]
		var acc mat3.Vec
		for _, k := range sites[r] {
			acc = acc.Add(cell.MinimumImage(ops[k].Apply(x).Sub(x), cell.Periodic))
		}
		xr := x.Add(acc.Scale(1 / float64(len(sites[r])))).Wrap()
		out[r] = xr

		for _, j := range class[1:] {
			for k, p := range perms {
				if p[r] == j {
					out[j] = ops[k].Apply(xr).Wrap()
					break
				}
			}
		}
	}

	return out
}

// assignWyckoff labels each orbit with the first Wyckoff position (in letter
// order) of equal multiplicity and crystal class on which some member lies.
func assignWyckoff(group *refdata.Group, lattice mat3.Mat, pos []mat3.Vec, ops []symmetry.Operation,
	classes [][]int, sites [][]int, symprec float64, log *zap.Logger) ([]int, []pointgroup.SiteSymbol, error) {
	wyckoffs := make([]int, len(pos))
	symbols := make([]pointgroup.SiteSymbol, len(pos))
	for _, class := range classes {
		r := class[0]
		rots := make([]mat3.IMat, len(sites[r]))
		for i, k := range sites[r] {
			rots[i] = ops[k].Rotation
		}
		site, err := pointgroup.ClassOf(rots)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: atom %d: %v", ErrWyckoffMismatch, r, err)
		}

		found := -1
		for wi, w := range group.Wyckoffs {
			if w.Multiplicity != len(class) {
				continue
			}
			if w.Class != site {
				log.Debug("refine: wyckoff candidate rejected",
					zap.String("letter", w.Letter),
					zap.String("table_class", string(w.Class)),
					zap.String("site_class", string(site)))
				continue
			}
			if onTriplet(w, class, pos, lattice, symprec) {
				found = wi
				break
			}
			log.Debug("refine: wyckoff coordinates rejected",
				zap.String("letter", w.Letter),
				zap.String("triplet", w.Coordinates))
		}
		if found < 0 {
			return nil, nil, fmt.Errorf("%w: atom %d, multiplicity %d, site class %s",
				ErrWyckoffMismatch, r, len(class), site)
		}
		for _, j := range class {
			wyckoffs[j] = found
			symbols[j] = group.Wyckoffs[found].SiteSymmetry
		}
	}

	return wyckoffs, symbols, nil
}

func onTriplet(w refdata.WyckoffPosition, class []int, pos []mat3.Vec, lattice mat3.Mat, symprec float64) bool {
	for _, j := range class {
		if w.Contains(pos[j], lattice, symprec) {
			return true
		}
	}

	return false
}

// backMap labels the atoms of the original cell: each original atom inherits
// the orbit of its primitive atom, represented by the lowest original index.
func backMap(mapping []int, nPrim, nCentering int, src, equiv, wyckoffs []int) ([]int, []int) {
	primOrbit := make([]int, nPrim)
	for ip := 0; ip < nPrim; ip++ {
		primOrbit[ip] = src[equiv[ip*nCentering]]
	}

	first := make(map[int]int, nPrim)
	inputEquiv := make([]int, len(mapping))
	inputWyckoffs := make([]int, len(mapping))
	for k, ip := range mapping {
		key := primOrbit[ip]
		if f, ok := first[key]; ok {
			inputEquiv[k] = f
		} else {
			first[key] = k
			inputEquiv[k] = k
		}
		inputWyckoffs[k] = wyckoffs[ip*nCentering]
	}

	return inputEquiv, inputWyckoffs
}

// IsRetryable reports whether err is a tolerance-related refinement failure
// that may succeed at a different symprec.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrSymmetryMismatch) ||
		errors.Is(err, ErrOrderMismatch) ||
		errors.Is(err, ErrWyckoffMismatch) ||
		errors.Is(err, ErrInconsistent)
}
