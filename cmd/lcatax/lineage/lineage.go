// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package lineage implements a command to print
// the lineage of a taxon
// in the tree of life.
package lineage

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/lcatax/refdata"
)

var Command = &command.Command{
	Usage: "lineage [-d|--datafile <file>] <taxon>...",
	Short: "print the lineage of a taxon",
	Long: `
Command lineage reads the tree of life of a reference file, and prints the
lineage of one or more taxa, from the taxon to the root. Each line of the
output contains the rank and the name of a taxon in the lineage. A blank line
separates the lineage of each taxon.

The arguments of the command are the names of the taxa.

The flag --datafile, or -d, defines the reference file. By default it will use
'uniref50-tol-lca.dat.gz'.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var dataFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&dataFile, "datafile", refdata.DefaultFile, "")
	c.Flags().StringVar(&dataFile, "d", refdata.DefaultFile, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting taxon name")
	}

	d, err := readData(dataFile)
	if err != nil {
		return err
	}

	for i, name := range args {
		if _, ok := d.Tree.Taxon(name); !ok {
			fmt.Fprintf(c.Stderr(), "WARNING: taxon %q not in the tree of life\n", name)
		}
		if i > 0 {
			fmt.Fprintf(c.Stdout(), "\n")
		}
		for _, s := range d.Tree.Lineage(name) {
			fmt.Fprintf(c.Stdout(), "%s\t%s\n", s.Rank, s.Name)
		}
	}
	return nil
}

func readData(name string) (*refdata.Data, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// the LCA section is not used
	d, err := refdata.Read(f, func(string) bool { return false })
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return d, nil
}
