// SPDX-License-Identifier: MIT

/*
symcheck inspects crystal structures with the lvsym symmetry core.

Usage:

	symcheck <command> [flags] <structure.yaml>

Commands:

	symcheck overlap     Report coinciding atoms
	symcheck trim        Reduce a centred cell onto its primitive lattice
	symcheck refine      Idealize a structure for a known space group
	symcheck magnetic    Find the magnetic group of a spin-decorated structure

Tolerances, the space group and logging are read from an optional TOML run
file given with --config. Results are written to stdout as YAML.
*/
package main

import (
	"os"

	"github.com/katalvlaran/lvsym/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
