// SPDX-License-Identifier: MIT

package cell

import (
	"github.com/katalvlaran/lvsym/mat3"
)

// Periodic marks a cell that is periodic along all three lattice axes.
const Periodic = -1

const (
	ctxNew      = "New"
	ctxSet      = "Set"
	ctxSetLayer = "SetLayer"
)

// Cell is a periodic (or layer) atomic structure.
//   - Lattice holds the three basis vectors as columns.
//   - Types and Positions are parallel arrays of length Size().
//   - AperiodicAxis is Periodic (-1) or the index of the non-periodic axis.
//
// A Cell owns its slices; Clone returns a fully independent copy.
type Cell struct {
	Lattice       mat3.Mat
	Types         []int
	Positions     []mat3.Vec
	AperiodicAxis int
}

// New allocates a cell for size atoms. The content is zero until Set is called.
func New(size int) (*Cell, error) {
	if size < 1 {
		return nil, cellErrorf(ctxNew, ErrEmptyCell)
	}

	return &Cell{
		Types:         make([]int, size),
		Positions:     make([]mat3.Vec, size),
		AperiodicAxis: Periodic,
	}, nil
}

// NewFromParts allocates and fills a cell in one call. aperiodicAxis is
// Periodic for bulk crystals or 0/1/2 for layers.
func NewFromParts(lattice mat3.Mat, positions []mat3.Vec, types []int, aperiodicAxis int) (*Cell, error) {
	c, err := New(len(types))
	if err != nil {
		return nil, err
	}
	if aperiodicAxis == Periodic {
		err = c.Set(lattice, positions, types)
	} else {
		err = c.SetLayer(lattice, positions, types, aperiodicAxis)
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Size returns the number of atoms.
func (c *Cell) Size() int { return len(c.Types) }

// Set fills a fully periodic cell. positions and types are copied.
func (c *Cell) Set(lattice mat3.Mat, positions []mat3.Vec, types []int) error {
	if err := c.fill(lattice, positions, types, Periodic); err != nil {
		return cellErrorf(ctxSet, err)
	}

	return nil
}

// SetLayer fills a layer cell whose lattice direction aperiodicAxis is not
// periodic.
func (c *Cell) SetLayer(lattice mat3.Mat, positions []mat3.Vec, types []int, aperiodicAxis int) error {
	if err := c.fill(lattice, positions, types, aperiodicAxis); err != nil {
		return cellErrorf(ctxSetLayer, err)
	}

	return nil
}

func (c *Cell) fill(lattice mat3.Mat, positions []mat3.Vec, types []int, axis int) error {
	if c == nil {
		return ErrNilCell
	}
	if len(positions) != c.Size() || len(types) != c.Size() {
		return ErrSizeMismatch
	}
	if axis < Periodic || axis > 2 {
		return ErrAperiodicAxis
	}
	if err := mat3.ValidateNonDegenerate(lattice); err != nil {
		return ErrDegenerateLattice
	}
	for _, p := range positions {
		if !p.IsFinite() {
			return ErrNonFinite
		}
	}

	c.Lattice = lattice
	copy(c.Positions, positions)
	copy(c.Types, types)
	c.AperiodicAxis = axis

	return nil
}

// Clone returns a deep copy of c.
func (c *Cell) Clone() *Cell {
	if c == nil {
		return nil
	}
	out := &Cell{
		Lattice:       c.Lattice,
		Types:         make([]int, len(c.Types)),
		Positions:     make([]mat3.Vec, len(c.Positions)),
		AperiodicAxis: c.AperiodicAxis,
	}
	copy(out.Types, c.Types)
	copy(out.Positions, c.Positions)

	return out
}

// IsLayer reports whether the cell has an aperiodic axis.
func (c *Cell) IsLayer() bool { return c.AperiodicAxis != Periodic }

// PeriodicAxes returns the two periodic axes of a layer cell in ascending
// order. For fully periodic cells it returns {0, 1}; use IsLayer first.
func (c *Cell) PeriodicAxes() [2]int {
	return PeriodicAxesOf(c.AperiodicAxis)
}

// PeriodicAxesOf returns the two axes other than aperiodicAxis.
func PeriodicAxesOf(aperiodicAxis int) [2]int {
	switch aperiodicAxis {
	case 0:
		return [2]int{1, 2}
	case 1:
		return [2]int{0, 2}
	default:
		return [2]int{0, 1}
	}
}

// Wrap maps a fractional position into [0,1) along the periodic axes of c,
// leaving the aperiodic coordinate untouched.
func (c *Cell) Wrap(p mat3.Vec) mat3.Vec {
	return wrapAxes(p, c.AperiodicAxis)
}

func wrapAxes(p mat3.Vec, aperiodicAxis int) mat3.Vec {
	w := p.Wrap()
	if aperiodicAxis != Periodic {
		w[aperiodicAxis] = p[aperiodicAxis]
	}

	return w
}
