// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvsym/spin"
)

type magneticReport struct {
	Spacegroup       int         `yaml:"spacegroup"`
	TimeReversal     bool        `yaml:"time_reversal"`
	Axial            bool        `yaml:"axial"`
	Operations       []string    `yaml:"operations"`
	TimeReversed     int         `yaml:"time_reversed"`
	EquivalentAtoms  []int       `yaml:"equivalent_atoms"`
	PrimitiveLattice [][]float64 `yaml:"primitive_lattice"`
	Positions        [][]float64 `yaml:"positions"`
	Magmoms          [][]float64 `yaml:"magmoms"`
}

func newMagneticCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "magnetic <structure.yaml>",
		Short: "Find the magnetic group of a spin-decorated structure",
		Long: `magnetic filters the operations of the run file's space group, in the
structure's basis, down to those that also preserve the magmoms, and
reports them together with the idealized structure. Time-reversed
operations are marked with a trailing prime.`,
		Args: cobra.ExactArgs(1),
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
			tensors, err := sf.Tensors()
			if err != nil {
				return err
			}
			group, _, err := s.referenceGroup()
			if err != nil {
				return err
			}

			mc := s.cfg.Magnetic
			opts := []spin.Option{spin.WithLogger(s.log), spin.WithRecorder(s.recorder)}
			res, err := spin.Operations(group.Operations, c, tensors, mc.TimeReversal, mc.Axial,
				s.cfg.Symprec, s.cfg.MagSymprec, opts...)
			if err != nil {
				return err
			}
			ideal, idealTensors, err := spin.IdealizedCell(res.Permutations, c, tensors, res.Symmetry,
				mc.TimeReversal, mc.Axial, opts...)
			if err != nil {
				return err
			}

			rep := magneticReport{
				Spacegroup:       group.Number,
				TimeReversal:     mc.TimeReversal,
				Axial:            mc.Axial,
				TimeReversed:     res.Symmetry.CountTimeReversal(),
				EquivalentAtoms:  res.EquivalentAtoms,
				PrimitiveLattice: rows(res.PrimitiveLattice),
				Positions:        vecs(ideal.Positions),
			}
			for _, op := range res.Symmetry.Operations {
				j := op.Jones()
				if op.TimeReversal {
					j += "'"
				}
				rep.Operations = append(rep.Operations, j)
			}
			for i := 0; i < idealTensors.Len(); i++ {
				rep.Magmoms = append(rep.Magmoms, idealTensors.At(i))
			}
			s.log.Info("magnetic symmetry",
				zap.Int("operations", res.Symmetry.Size()),
				zap.Int("time_reversed", rep.TimeReversed))

			return s.emit(rep)
		},
	}
}
