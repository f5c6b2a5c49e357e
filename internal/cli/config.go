// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Run-file defaults.
const (
	DefaultSymprec    = 1e-5
	DefaultMagSymprec = 1e-5
	DefaultLogLevel   = "info"
)

// ErrNoSpacegroup is returned by commands that need [spacegroup].number.
var ErrNoSpacegroup = errors.New("cli: run file has no spacegroup number")

var validate = validator.New()

// RunConfig is the TOML run file.
type RunConfig struct {
	Symprec     float64          `toml:"symprec" validate:"gt=0"`
	MagSymprec  float64          `toml:"mag_symprec" validate:"gt=0"`
	LogLevel    string           `toml:"log_level" validate:"oneof=debug info warn error"`
	Tolerances  []float64        `toml:"tolerances" validate:"dive,gt=0"`
	Concurrency int              `toml:"concurrency" validate:"gte=0"`
	Metrics     bool             `toml:"metrics"`
	Spacegroup  SpacegroupConfig `toml:"spacegroup"`
	Magnetic    MagneticConfig   `toml:"magnetic"`
}

// SpacegroupConfig names the space group found by an external search.
type SpacegroupConfig struct {
	Number      int       `toml:"number" validate:"omitempty,min=1,max=230"`
	Choice      string    `toml:"choice" validate:"omitempty,oneof=H R"`
	OriginShift []float64 `toml:"origin_shift" validate:"omitempty,len=3"`
	// Table is an optional reference-table YAML replacing the embedded one.
	Table string `toml:"table"`
}

// MagneticConfig selects the magnetic search mode.
type MagneticConfig struct {
	TimeReversal bool `toml:"time_reversal"`
	Axial        bool `toml:"axial"`
}

// DefaultRunConfig returns the configuration used without a run file.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Symprec:    DefaultSymprec,
		MagSymprec: DefaultMagSymprec,
		LogLevel:   DefaultLogLevel,
		Magnetic:   MagneticConfig{TimeReversal: true},
	}
}

// LoadRunConfig decodes path over the defaults and validates the result.
// An empty path yields the defaults.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return RunConfig{}, fmt.Errorf("run file %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return RunConfig{}, fmt.Errorf("run file %s: unknown key %q", path, undecoded[0].String())
		}
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c RunConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid run configuration: %w", err)
	}

	return nil
}

// SweepTolerances returns the tolerance list, defaulting to [Symprec].
func (c RunConfig) SweepTolerances() []float64 {
	if len(c.Tolerances) == 0 {
		return []float64{c.Symprec}
	}

	return c.Tolerances
}
