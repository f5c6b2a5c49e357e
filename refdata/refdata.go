// SPDX-License-Identifier: MIT

package refdata

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsym/mat3"
	"github.com/katalvlaran/lvsym/symmetry"
)

// MaxTableSize bounds the YAML accepted by Load (1 MiB).
const MaxTableSize = 1 << 20

//go:embed spacegroups.yaml
var defaultTableYAML []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// tableYAML mirrors the on-disk layout.
type tableYAML struct {
	Spacegroups []groupYAML `yaml:"spacegroups"`
}

type groupYAML struct {
	Number     int           `yaml:"number"`
	HallNumber int           `yaml:"hall_number"`
	Symbol     string        `yaml:"symbol"`
	Choice     string        `yaml:"choice"`
	Centering  string        `yaml:"centering"`
	Generators []string      `yaml:"generators"`
	Wyckoff    []wyckoffYAML `yaml:"wyckoff"`
}

type wyckoffYAML struct {
	Letter       string `yaml:"letter"`
	Multiplicity int    `yaml:"multiplicity"`
	SiteSymmetry string `yaml:"site_symmetry"`
	Coordinates  string `yaml:"coordinates"`
}

// Table is an immutable set of reference groups keyed by number. It is safe
// for concurrent use.
type Table struct {
	groups map[int]*Group
}

// Group is one reference space group in its standard setting.
type Group struct {
	Number     int
	HallNumber int
	Symbol     string
	Choice     string
	Centering  symmetry.Centering
	// Operations is the full group per conventional cell, identity first.
	Operations *symmetry.Symmetry
	// Wyckoffs is ordered by letter, most special position first.
	Wyckoffs []WyckoffPosition
}

// Order returns the number of operations per conventional cell.
func (g *Group) Order() int { return g.Operations.Size() }

// CenteringTranslations returns the lattice-point translations of the
// conventional cell, the zero vector first.
func (g *Group) CenteringTranslations() []mat3.Vec { return g.Centering.Translations() }

// Default returns the embedded table, parsing it on first call.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Parse(defaultTableYAML)
	})

	return defaultTable, defaultErr
}

// Load reads a table from r, rejecting inputs above MaxTableSize.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxTableSize+1))
	if err != nil {
		return nil, fmt.Errorf("refdata.Load: %w", err)
	}
	if len(data) > MaxTableSize {
		return nil, fmt.Errorf("refdata.Load: %w", ErrTableTooLarge)
	}

	return Parse(data)
}

// LoadFile is Load on the named file.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("refdata.LoadFile: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Parse decodes and validates a YAML table: generators are closed into
// groups and every Wyckoff entry is checked against the group order.
func Parse(data []byte) (*Table, error) {
	var raw tableYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("refdata.Parse: %w: %v", ErrInvalidEntry, err)
	}

	t := &Table{groups: make(map[int]*Group, len(raw.Spacegroups))}
	for _, gy := range raw.Spacegroups {
		g, err := buildGroup(gy)
		if err != nil {
			return nil, err
		}
		if _, dup := t.groups[g.Number]; dup {
			return nil, entryErrorf(g.Number, "%w", ErrDuplicateGroup)
		}
		t.groups[g.Number] = g
	}

	return t, nil
}

func buildGroup(gy groupYAML) (*Group, error) {
	if gy.Number < 1 || gy.Number > 230 {
		return nil, entryErrorf(gy.Number, "number out of range: %w", ErrInvalidEntry)
	}
	centering, err := symmetry.ParseCentering(gy.Centering)
	if err != nil {
		return nil, entryErrorf(gy.Number, "%w: %v", ErrInvalidEntry, err)
	}
	gens := make([]symmetry.Operation, len(gy.Generators))
	for i, s := range gy.Generators {
		if gens[i], err = symmetry.ParseJones(s); err != nil {
			return nil, entryErrorf(gy.Number, "%w: %v", ErrInvalidEntry, err)
		}
	}
	ops, err := symmetry.Generate(gens, centering.Translations())
	if err != nil {
		return nil, entryErrorf(gy.Number, "%w: %v", ErrInvalidEntry, err)
	}

	g := &Group{
		Number:     gy.Number,
		HallNumber: gy.HallNumber,
		Symbol:     gy.Symbol,
		Choice:     gy.Choice,
		Centering:  centering,
		Operations: ops,
	}
	for _, wy := range gy.Wyckoff {
		wp, err := buildWyckoff(wy)
		if err != nil {
			return nil, entryErrorf(gy.Number, "wyckoff %q: %w", wy.Letter, err)
		}
		if wp.Multiplicity*wp.Class.Order() != g.Order() {
			return nil, entryErrorf(gy.Number, "wyckoff %s: %d×%d != %d: %w",
				wp.Letter, wp.Multiplicity, wp.Class.Order(), g.Order(), ErrInconsistentTable)
		}
		g.Wyckoffs = append(g.Wyckoffs, wp)
	}
	if len(g.Wyckoffs) == 0 {
		return nil, entryErrorf(gy.Number, "no wyckoff positions: %w", ErrInvalidEntry)
	}
	sort.SliceStable(g.Wyckoffs, func(i, j int) bool { return g.Wyckoffs[i].Letter < g.Wyckoffs[j].Letter })

	return g, nil
}

// Lookup returns the group with the given number.
func (t *Table) Lookup(number int) (*Group, error) {
	g, ok := t.groups[number]
	if !ok {
		return nil, fmt.Errorf("refdata.Lookup: %d: %w", number, ErrUnknownSpacegroup)
	}

	return g, nil
}

// Numbers returns the space-group numbers present, ascending.
func (t *Table) Numbers() []int {
	out := make([]int, 0, len(t.groups))
	for n := range t.groups {
		out = append(out, n)
	}
	sort.Ints(out)

	return out
}

// Len returns the number of groups in the table.
func (t *Table) Len() int { return len(t.groups) }
