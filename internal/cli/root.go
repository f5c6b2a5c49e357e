// SPDX-License-Identifier: MIT

// Package cli implements the symcheck commands.
package cli

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsym/telemetry"
)

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		return 1
	}

	return 0
}

// NewRootCommand builds the symcheck command tree.
func NewRootCommand() *cobra.Command {
	var (
		configPath string
		symprec    float64
		logLevel   string
	)
	root := &cobra.Command{
		Use:   "symcheck",
		Short: "Inspect crystal structures with the lvsym symmetry core",
		Long: `symcheck reads a YAML structure file and reports overlaps, trims centred
cells, refines structures for a known space group, and finds magnetic
symmetry of spin-decorated structures.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML run file")
	root.PersistentFlags().Float64Var(&symprec, "symprec", 0, "override the run file's symprec")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the run file's log level")

	load := func(cmd *cobra.Command) (*session, error) {
		cfg, err := LoadRunConfig(configPath)
		if err != nil {
			return nil, err
		}
		if cmd.Flags().Changed("symprec") {
			cfg.Symprec = symprec
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		return newSession(cfg, cmd.OutOrStdout())
	}

	root.AddCommand(
		newOverlapCommand(load),
		newTrimCommand(load),
		newRefineCommand(load),
		newMagneticCommand(load),
	)

	return root
}

// session carries the per-invocation logger, metrics and output.
type session struct {
	cfg      RunConfig
	log      *zap.Logger
	out      io.Writer
	registry *prometheus.Registry
	recorder telemetry.Recorder
}

type loader func(cmd *cobra.Command) (*session, error)

func newSession(cfg RunConfig, out io.Writer) (*session, error) {
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, log: log, out: out, recorder: telemetry.Nop{}}
	if cfg.Metrics {
		s.registry = prometheus.NewRegistry()
		s.recorder = telemetry.NewPrometheus(s.registry)
	}

	return s, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

// emit writes v as YAML, followed by a metrics document when enabled.
func (s *session) emit(v any) error {
	defer func() { _ = s.log.Sync() }()

	enc := yaml.NewEncoder(s.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	if s.registry != nil {
		counts, err := s.metrics()
		if err != nil {
			return err
		}
		if err := enc.Encode(map[string]any{"metrics": counts}); err != nil {
			return err
		}
	}

	return enc.Close()
}

// metrics flattens lvsym_operations_total into "op/outcome" counts.
func (s *session) metrics() (map[string]float64, error) {
	families, err := s.registry.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != "lvsym_operations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := make(map[string]string, 2)
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			out[labels["op"]+"/"+labels["outcome"]] = m.GetCounter().GetValue()
		}
	}

	return out, nil
}
