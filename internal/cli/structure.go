// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsym/cell"
	"github.com/katalvlaran/lvsym/mat3"
	"github.com/katalvlaran/lvsym/spin"
)

// ErrStructure is returned for malformed structure files.
var ErrStructure = errors.New("cli: malformed structure file")

// StructureFile is the YAML structure layout. Lattice rows are the basis
// vectors a, b, c; positions are fractional.
type StructureFile struct {
	Lattice       [][]float64 `yaml:"lattice"`
	Positions     [][]float64 `yaml:"positions"`
	Types         []int       `yaml:"types"`
	AperiodicAxis *int        `yaml:"aperiodic_axis,omitempty"`
	// Magmoms holds one entry per atom: [m] for collinear moments or
	// [mx, my, mz] for vectors.
	Magmoms [][]float64 `yaml:"magmoms,omitempty"`
}

// ReadStructure loads a structure file.
func ReadStructure(path string) (*StructureFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sf StructureFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrStructure, err)
	}

	return &sf, nil
}

// Cell converts the file into a cell.
func (sf *StructureFile) Cell() (*cell.Cell, error) {
	if len(sf.Lattice) != 3 {
		return nil, fmt.Errorf("%w: lattice needs 3 rows", ErrStructure)
	}
	var rows [3]mat3.Vec
	for i, r := range sf.Lattice {
		v, err := vec3(r)
		if err != nil {
			return nil, fmt.Errorf("lattice row %d: %w", i, err)
		}
		rows[i] = v
	}
	positions := make([]mat3.Vec, len(sf.Positions))
	for i, p := range sf.Positions {
		v, err := vec3(p)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		positions[i] = v
	}
	axis := cell.Periodic
	if sf.AperiodicAxis != nil {
		axis = *sf.AperiodicAxis
	}

	return cell.NewFromParts(mat3.FromColumns(rows[0], rows[1], rows[2]), positions, sf.Types, axis)
}

// Tensors converts magmoms into a site-tensor field. The rank follows the
// length of the first entry.
func (sf *StructureFile) Tensors() (spin.SiteTensors, error) {
	if len(sf.Magmoms) == 0 {
		return spin.SiteTensors{}, fmt.Errorf("%w: no magmoms", ErrStructure)
	}
	rank := 0
	if len(sf.Magmoms[0]) == 3 {
		rank = 1
	}
	st, err := spin.NewSiteTensors(len(sf.Magmoms), rank)
	if err != nil {
		return spin.SiteTensors{}, err
	}
	for i, m := range sf.Magmoms {
		if len(m) != st.Components() {
			return spin.SiteTensors{}, fmt.Errorf("%w: magmom %d has %d components, want %d",
				ErrStructure, i, len(m), st.Components())
		}
		st.Set(i, m...)
	}

	return st, nil
}

func vec3(s []float64) (mat3.Vec, error) {
	if len(s) != 3 {
		return mat3.Vec{}, fmt.Errorf("%w: want 3 components, got %d", ErrStructure, len(s))
	}

	return mat3.Vec{s[0], s[1], s[2]}, nil
}

// rows returns the basis vectors (columns of m) as YAML rows.
func rows(m mat3.Mat) [][]float64 {
	out := make([][]float64, 3)
	for j := 0; j < 3; j++ {
		c := m.Column(j)
		out[j] = []float64{c[0], c[1], c[2]}
	}

	return out
}

func vecs(vs []mat3.Vec) [][]float64 {
	out := make([][]float64, len(vs))
	for i, v := range vs {
		out[i] = []float64{v[0], v[1], v[2]}
	}

	return out
}
