// SPDX-License-Identifier: MIT

package symmetry

import (
	"fmt"

	"github.com/katalvlaran/lvsym/mat3"
)

// Centering identifies the lattice centering of a conventional cell.
type Centering int

const (
	Primitive Centering = iota // P
	ACentered                  // A
	BCentered                  // B
	CCentered                  // C
	BodyCentered               // I
	FaceCentered               // F
	Rhombohedral               // R, obverse setting on hexagonal axes
)

var centeringSymbols = [...]string{"P", "A", "B", "C", "I", "F", "R"}

// String returns the one-letter symbol.
func (c Centering) String() string {
	if c < 0 || int(c) >= len(centeringSymbols) {
		return fmt.Sprintf("Centering(%d)", int(c))
	}

	return centeringSymbols[c]
}

// ParseCentering converts a one-letter symbol into a Centering.
func ParseCentering(s string) (Centering, error) {
	for i, sym := range centeringSymbols {
		if s == sym {
			return Centering(i), nil
		}
	}

	return Primitive, fmt.Errorf("symmetry.ParseCentering: %q: %w", s, ErrUnknownCentering)
}

// MarshalText implements encoding.TextMarshaler.
func (c Centering) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Centering) UnmarshalText(b []byte) error {
	v, err := ParseCentering(string(b))
	if err != nil {
		return err
	}
	*c = v

	return nil
}

// Translations returns the centering translations of the conventional cell,
// the zero vector first.
func (c Centering) Translations() []mat3.Vec {
	const h, t1, t2 = 0.5, 1.0 / 3, 2.0 / 3
	out := []mat3.Vec{{}}
	switch c {
	case ACentered:
		out = append(out, mat3.Vec{0, h, h})
	case BCentered:
		out = append(out, mat3.Vec{h, 0, h})
	case CCentered:
		out = append(out, mat3.Vec{h, h, 0})
	case BodyCentered:
		out = append(out, mat3.Vec{h, h, h})
	case FaceCentered:
		out = append(out, mat3.Vec{0, h, h}, mat3.Vec{h, 0, h}, mat3.Vec{h, h, 0})
	case Rhombohedral:
		out = append(out, mat3.Vec{t2, t1, t1}, mat3.Vec{t1, t2, t2})
	}

	return out
}

// Multiplicity returns the number of lattice points per conventional cell.
func (c Centering) Multiplicity() int { return len(c.Translations()) }

// PrimitiveTransform returns P such that B·P is a primitive basis of the
// lattice whose conventional basis is B.
func (c Centering) PrimitiveTransform() mat3.Mat {
	const h, t1, t2 = 0.5, 1.0 / 3, 2.0 / 3
	switch c {
	case ACentered:
		return mat3.FromColumns(mat3.Vec{1, 0, 0}, mat3.Vec{0, h, h}, mat3.Vec{0, -h, h})
	case BCentered:
		return mat3.FromColumns(mat3.Vec{h, 0, h}, mat3.Vec{0, 1, 0}, mat3.Vec{-h, 0, h})
	case CCentered:
		return mat3.FromColumns(mat3.Vec{h, h, 0}, mat3.Vec{-h, h, 0}, mat3.Vec{0, 0, 1})
	case BodyCentered:
		return mat3.FromColumns(mat3.Vec{-h, h, h}, mat3.Vec{h, -h, h}, mat3.Vec{h, h, -h})
	case FaceCentered:
		return mat3.FromColumns(mat3.Vec{0, h, h}, mat3.Vec{h, 0, h}, mat3.Vec{h, h, 0})
	case Rhombohedral:
		return mat3.FromColumns(mat3.Vec{t2, t1, t1}, mat3.Vec{-t1, t1, t1}, mat3.Vec{-t1, -t2, t1})
	}

	return mat3.Identity()
}
