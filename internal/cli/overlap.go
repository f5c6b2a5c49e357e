// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsym/cell"
)

type overlapReport struct {
	Symprec            float64  `yaml:"symprec"`
	Atoms              int      `yaml:"atoms"`
	Layer              bool     `yaml:"layer"`
	AnyOverlap         bool     `yaml:"any_overlap"`
	AnyOverlapSameType bool     `yaml:"any_overlap_same_type"`
	Pairs              [][2]int `yaml:"pairs,omitempty"`
}

func newOverlapCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "overlap <structure.yaml>",
		Short: "Report coinciding atoms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(cmd)
			if err != nil {
				return err
			}
			sf, err := ReadStructure(args[0])
			if err != nil {
				return err
			}
			c, err := sf.Cell()
			if err != nil {
				return err
			}

			return s.emit(overlapOf(c, s.cfg.Symprec))
		},
	}
}

func overlapOf(c *cell.Cell, symprec float64) overlapReport {
	r := overlapReport{
		Symprec:            symprec,
		Atoms:              c.Size(),
		Layer:              c.IsLayer(),
		AnyOverlap:         cell.AnyOverlap(c, symprec),
		AnyOverlapSameType: cell.AnyOverlapWithSameType(c, symprec),
	}
	for i := 0; i < c.Size(); i++ {
		for j := i + 1; j < c.Size(); j++ {
			var hit bool
			if c.IsLayer() {
				hit = cell.LayerIsOverlap(c.Positions[i], c.Positions[j], c.Lattice, c.PeriodicAxes(), symprec)
			} else {
				hit = cell.IsOverlap(c.Positions[i], c.Positions[j], c.Lattice, symprec)
			}
			if hit {
				r.Pairs = append(r.Pairs, [2]int{i, j})
			}
		}
	}

	return r
}
