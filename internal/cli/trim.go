// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvsym/cell"
	"github.com/katalvlaran/lvsym/mat3"
	"github.com/katalvlaran/lvsym/sweep"
	"github.com/katalvlaran/lvsym/symmetry"
)

type trimReport struct {
	Centering string        `yaml:"centering"`
	Results   []trimOutcome `yaml:"results"`
}

type trimOutcome struct {
	Symprec   float64     `yaml:"symprec"`
	Error     string      `yaml:"error,omitempty"`
	Lattice   [][]float64 `yaml:"lattice,omitempty"`
	Positions [][]float64 `yaml:"positions,omitempty"`
	Types     []int       `yaml:"types,omitempty"`
	Mapping   []int       `yaml:"mapping,omitempty"`
}

func newTrimCommand(load loader) *cobra.Command {
	var centering string
	cmd := &cobra.Command{
		Use:   "trim <structure.yaml>",
		Short: "Reduce a centred cell onto its primitive lattice",
		Long: `trim removes the atoms repeated by the centring translations of the
structure's lattice, once per tolerance of the run file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(cmd)
			if err != nil {
				return err
			}
			cen, err := symmetry.ParseCentering(centering)
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

			target := mat3.Mul(c.Lattice, cen.PrimitiveTransform())
			results, err := sweep.Trim(cmd.Context(), c, target, s.cfg.SweepTolerances(), s.sweepOptions()...)
			if err != nil {
				return err
			}
			report := trimReport{Centering: cen.String()}
			for _, r := range results {
				report.Results = append(report.Results, trimOutcomeOf(r))
			}
			s.log.Info("trim finished", zap.String("centering", cen.String()), zap.Int("tolerances", len(results)))

			return s.emit(report)
		},
	}
	cmd.Flags().StringVar(&centering, "centering", "P", "centring of the input lattice (P, A, B, C, I, F, R)")

	return cmd
}

func trimOutcomeOf(r sweep.TrimResult) trimOutcome {
	if r.Err != nil {
		return trimOutcome{Symprec: r.Tolerance, Error: r.Err.Error()}
	}

	return trimOutcome{
		Symprec:   r.Tolerance,
		Lattice:   rows(r.Cell.Lattice),
		Positions: vecs(r.Cell.Positions),
		Types:     r.Cell.Types,
		Mapping:   r.Mapping,
	}
}

// sweepOptions forwards the session's logger, recorder and concurrency.
func (s *session) sweepOptions() []sweep.Option {
	opts := []sweep.Option{
		sweep.WithLogger(s.log),
		sweep.WithCellOptions(cell.WithLogger(s.log), cell.WithRecorder(s.recorder)),
	}
	if s.cfg.Concurrency > 0 {
		opts = append(opts, sweep.WithConcurrency(s.cfg.Concurrency))
	}

	return opts
}
