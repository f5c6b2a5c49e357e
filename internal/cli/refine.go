// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvsym/cell"
	"github.com/katalvlaran/lvsym/mat3"
	"github.com/katalvlaran/lvsym/refdata"
	"github.com/katalvlaran/lvsym/refine"
	"github.com/katalvlaran/lvsym/sweep"
	"github.com/katalvlaran/lvsym/symmetry"
)

type refineReport struct {
	Spacegroup             int         `yaml:"spacegroup"`
	Symbol                 string      `yaml:"symbol"`
	Symprec                float64     `yaml:"symprec"`
	Lattice                [][]float64 `yaml:"lattice"`
	Positions              [][]float64 `yaml:"positions"`
	Types                  []int       `yaml:"types"`
	Wyckoffs               []string    `yaml:"wyckoffs"`
	SiteSymmetry           []string    `yaml:"site_symmetry"`
	EquivalentAtoms        []int       `yaml:"equivalent_atoms"`
	CrystallographicOrbits []int       `yaml:"crystallographic_orbits"`
	StdMappingToPrimitive  []int       `yaml:"std_mapping_to_primitive"`
	InputEquivalentAtoms   []int       `yaml:"input_equivalent_atoms"`
	InputWyckoffs          []string    `yaml:"input_wyckoffs"`
	Rotation               [][]float64 `yaml:"rotation"`
}

func newRefineCommand(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "refine <structure.yaml>",
		Short: "Idealize a structure for a known space group",
		Long: `refine takes a structure in the conventional setting of the space group
named in the run file, trims it to the primitive cell, and reports the
idealized conventional cell with Wyckoff letters and orbits. Tolerances
are tried in order and the first success is reported.`,
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
			original, err := sf.Cell()
			if err != nil {
				return err
			}
			group, opts, err := s.referenceGroup()
			if err != nil {
				return err
			}

			sg := s.spacegroup(group, original.Lattice)
			similar, err := refine.FindSimilarBravaisLattice(sg, s.cfg.Symprec, opts...)
			if err != nil {
				return err
			}
			s.log.Debug("bravais lattice", zap.Bool("similar_basis_applied", similar))

			mapping := make([]int, original.Size())
			prim, err := cell.Trim(mapping, mat3.Mul(sg.BravaisLattice, group.Centering.PrimitiveTransform()), original,
				s.cfg.Symprec, cell.WithLogger(s.log), cell.WithRecorder(s.recorder))
			if err != nil {
				return err
			}

			req := sweep.RefineRequest{Spacegroup: sg, Primitive: prim, Original: original, Mapping: mapping}
			results, err := sweep.Refine(cmd.Context(), req, s.cfg.SweepTolerances(),
				append(s.sweepOptions(), sweep.WithRefineOptions(opts...))...)
			if err != nil {
				return err
			}
			best, err := sweep.FirstRefinement(results)
			if err != nil {
				return err
			}
			s.log.Info("refined",
				zap.Int("spacegroup", sg.Number),
				zap.Float64("symprec", best.Tolerance),
				zap.Int("atoms", best.Structure.Bravais.Size()))

			return s.emit(refineReportOf(group, best))
		},
	}
}

// referenceGroup resolves the run file's space group and the refine options
// shared by all invocations.
func (s *session) referenceGroup() (*refdata.Group, []refine.Option, error) {
	if s.cfg.Spacegroup.Number == 0 {
		return nil, nil, ErrNoSpacegroup
	}
	opts := []refine.Option{refine.WithLogger(s.log), refine.WithRecorder(s.recorder)}
	var (
		table *refdata.Table
		err   error
	)
	if s.cfg.Spacegroup.Table != "" {
		table, err = refdata.LoadFile(s.cfg.Spacegroup.Table)
		opts = append(opts, refine.WithTable(table))
	} else {
		table, err = refdata.Default()
	}
	if err != nil {
		return nil, nil, err
	}
	group, err := table.Lookup(s.cfg.Spacegroup.Number)
	if err != nil {
		return nil, nil, err
	}

	return group, opts, nil
}

func (s *session) spacegroup(group *refdata.Group, lattice mat3.Mat) *symmetry.Spacegroup {
	sg := &symmetry.Spacegroup{
		Number:         group.Number,
		HallNumber:     group.HallNumber,
		Symbol:         group.Symbol,
		Choice:         group.Choice,
		Centering:      group.Centering,
		BravaisLattice: lattice,
	}
	if s.cfg.Spacegroup.Choice != "" {
		sg.Choice = s.cfg.Spacegroup.Choice
	}
	if o := s.cfg.Spacegroup.OriginShift; len(o) == 3 {
		sg.OriginShift = mat3.Vec{o[0], o[1], o[2]}
	}

	return sg
}

func refineReportOf(group *refdata.Group, r *sweep.RefineResult) refineReport {
	ex := r.Structure
	rep := refineReport{
		Spacegroup:             ex.SpacegroupNumber,
		Symbol:                 group.Symbol,
		Symprec:                r.Tolerance,
		Lattice:                rows(ex.Bravais.Lattice),
		Positions:              vecs(ex.Bravais.Positions),
		Types:                  ex.Bravais.Types,
		EquivalentAtoms:        ex.EquivalentAtoms,
		CrystallographicOrbits: ex.CrystallographicOrbits,
		StdMappingToPrimitive:  ex.StdMappingToPrimitive,
		InputEquivalentAtoms:   ex.InputEquivalentAtoms,
		Rotation:               rows(mat3.Transpose(ex.Rotation)),
	}
	for i := range ex.Wyckoffs {
		rep.Wyckoffs = append(rep.Wyckoffs, ex.WyckoffLetter(i))
		rep.SiteSymmetry = append(rep.SiteSymmetry, ex.SiteSymmetrySymbols[i].String())
	}
	for _, w := range ex.InputWyckoffs {
		rep.InputWyckoffs = append(rep.InputWyckoffs, letter(w))
	}

	return rep
}

func letter(index int) string { return fmt.Sprintf("%c", 'a'+rune(index)) }
