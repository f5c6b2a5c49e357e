// SPDX-License-Identifier: MIT

package refine

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsym/mat3"
	"github.com/katalvlaran/lvsym/symmetry"
)

// LatticeSystem is one of the seven lattice systems.
type LatticeSystem int

const (
	Triclinic LatticeSystem = iota
	Monoclinic
	Orthorhombic
	Tetragonal
	Rhombohedral
	Hexagonal
	Cubic
)

var latticeSystemNames = [...]string{
	"triclinic", "monoclinic", "orthorhombic", "tetragonal", "rhombohedral", "hexagonal", "cubic",
}

func (s LatticeSystem) String() string {
	if s < 0 || int(s) >= len(latticeSystemNames) {
		return fmt.Sprintf("LatticeSystem(%d)", int(s))
	}

	return latticeSystemNames[s]
}

// SystemOf returns the lattice system of a space group. Trigonal groups are
// hexagonal unless choice is "R" (rhombohedral axes).
func SystemOf(number int, choice string) (LatticeSystem, error) {
	if number < 1 || number > 230 {
		return Triclinic, fmt.Errorf("refine.SystemOf: %d: %w", number, ErrLatticeSystem)
	}
	switch {
	case number <= 2:
		return Triclinic, nil
	case number <= 15:
		return Monoclinic, nil
	case number <= 74:
		return Orthorhombic, nil
	case number <= 142:
		return Tetragonal, nil
	case number <= 167 && choice == "R":
		return Rhombohedral, nil
	case number <= 194:
		return Hexagonal, nil
	}

	return Cubic, nil
}

// ConventionalLattice returns the ideal conventional lattice of sg: lattice
// parameters are read from the metric of sg.BravaisLattice, the constraints
// of the lattice system are imposed by averaging, and the basis is rebuilt
// with a along x and b in the xy plane. Columns are basis vectors.
func ConventionalLattice(sg *symmetry.Spacegroup) (mat3.Mat, error) {
	const ctx = "ConventionalLattice"
	if sg == nil {
		return mat3.Mat{}, refineErrorf(ctx, ErrNilSpacegroup)
	}
	system, err := SystemOf(sg.Number, sg.Choice)
	if err != nil {
		return mat3.Mat{}, err
	}
	if err := mat3.ValidateNonDegenerate(sg.BravaisLattice); err != nil {
		return mat3.Mat{}, refineErrorf(ctx, ErrDegenerateLattice)
	}

	g := mat3.Metric(sg.BravaisLattice)
	a, b, c := math.Sqrt(g[0][0]), math.Sqrt(g[1][1]), math.Sqrt(g[2][2])
	cosA := g[1][2] / (b * c)
	cosB := g[0][2] / (a * c)
	cosG := g[0][1] / (a * b)

	switch system {
	case Cubic:
		m := (a + b + c) / 3
		a, b, c = m, m, m
		cosA, cosB, cosG = 0, 0, 0
	case Tetragonal:
		m := (a + b) / 2
		a, b = m, m
		cosA, cosB, cosG = 0, 0, 0
	case Orthorhombic:
		cosA, cosB, cosG = 0, 0, 0
	case Hexagonal:
		m := (a + b) / 2
		a, b = m, m
		cosA, cosB, cosG = 0, 0, -0.5
	case Rhombohedral:
		m := (a + b + c) / 3
		k := (cosA + cosB + cosG) / 3
		a, b, c = m, m, m
		cosA, cosB, cosG = k, k, k
	case Monoclinic:
		cosA, cosG = 0, 0
	}

	l, err := fromParameters(a, b, c, cosA, cosB, cosG)
	if err != nil {
		return mat3.Mat{}, refineErrorf(ctx, err)
	}

	return l, nil
}

// fromParameters builds the standard-orientation basis from lengths and
// inter-axial angle cosines.
func fromParameters(a, b, c, cosA, cosB, cosG float64) (mat3.Mat, error) {
	sinG := math.Sqrt(1 - cosG*cosG)
	if sinG < mat3.DefaultEpsilon {
		return mat3.Mat{}, ErrDegenerateLattice
	}
	cx := cosB
	cy := (cosA - cosB*cosG) / sinG
	cz2 := 1 - cx*cx - cy*cy
	if cz2 <= mat3.DefaultEpsilon {
		return mat3.Mat{}, ErrDegenerateLattice
	}

	return mat3.FromColumns(
		mat3.Vec{a, 0, 0},
		mat3.Vec{b * cosG, b * sinG, 0},
		mat3.Vec{c * cx, c * cy, c * math.Sqrt(cz2)},
	), nil
}

// FindSimilarBravaisLattice searches the proper rotations W of the group's
// point group for the basis B·W closest (Frobenius norm) to the ideal
// lattice ConventionalLattice(sg). When every basis vector of the best
// candidate lies within symprec of its ideal counterpart, sg.BravaisLattice
// becomes B·W, sg.OriginShift is expressed in the new basis, and true is
// returned. Otherwise sg is left untouched. The identity is a candidate, so
// an already ideal basis reports true unchanged.
func FindSimilarBravaisLattice(sg *symmetry.Spacegroup, symprec float64, opts ...Option) (bool, error) {
	const ctx = "FindSimilarBravaisLattice"
	o := gatherOptions(opts)
	if sg == nil {
		return false, refineErrorf(ctx, ErrNilSpacegroup)
	}
	if !validTolerance(symprec) {
		return false, refineErrorf(ctx, ErrTolerance)
	}
	group, err := o.lookup(sg.Number)
	if err != nil {
		return false, refineErrorf(ctx, err)
	}
	ideal, err := ConventionalLattice(sg)
	if err != nil {
		return false, refineErrorf(ctx, err)
	}

	var (
		best     mat3.IMat
		bestNorm = math.Inf(1)
		seen     = make(map[mat3.IMat]bool)
	)
	for _, op := range group.Operations.Operations {
		w := op.Rotation
		if mat3.IDet(w) != 1 || seen[w] {
			continue
		}
		seen[w] = true
		if d := mat3.FrobeniusNorm(mat3.Sub(mat3.Mul(sg.BravaisLattice, w.Float()), ideal)); d < bestNorm {
			best, bestNorm = w, d
		}
	}

	candidate := mat3.Mul(sg.BravaisLattice, best.Float())
	diff := mat3.Sub(candidate, ideal)
	for j := 0; j < 3; j++ {
		if diff.Column(j).Norm() > symprec {
			o.Logger.Debug("refine: no similar bravais lattice",
				zap.Int("spacegroup", sg.Number),
				zap.Float64("residual", bestNorm))

			return false, nil
		}
	}

	inv, err := mat3.IInverse(best)
	if err != nil {
		return false, refineErrorf(ctx, err)
	}
	sg.BravaisLattice = candidate
	sg.OriginShift = mat3.IMulVec(inv, sg.OriginShift)

	return true, nil
}

func validTolerance(symprec float64) bool {
	return !math.IsNaN(symprec) && !math.IsInf(symprec, 0) && symprec > 0
}
