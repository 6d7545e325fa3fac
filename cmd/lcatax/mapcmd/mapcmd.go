// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package mapcmd implements a command to print
// the taxonomic labels inferred
// for the features of a functional profile table.
package mapcmd

import (
	"encoding/csv"
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/lcatax/feature"
	"github.com/js-arias/lcatax/rank"
	"github.com/js-arias/lcatax/refdata"
	"github.com/js-arias/lcatax/table"
	"github.com/js-arias/lcatax/taxmap"
)

var Command = &command.Command{
	Usage: `map [-l|--level <rank>] [-d|--datafile <file>]
	[-t|--threshold <value>] [--labels]
	<table-file>`,
	Short: "print the taxa inferred for the features of a table",
	Long: `
Command map reads a functional profile table, and prints the taxonomic label
inferred for each UniRef cluster and genus stratum of the table, at a target
rank. Clusters and strata without an inferred taxon are not printed.

The argument of the command is the name of the table file.

The output is a tab-delimited table printed in the standard output, with the
following columns:

	- key    the UniRef cluster ID or the genus stratum
	- label  the inferred taxonomic label

If the flag --labels is defined, it will print the number of keys assigned to
each label, instead of the keys.

The flags --level (-l), --datafile (-d), and --threshold (-t) are the same as
in the command "lcatax infer".
	`,
	SetFlags: setFlags,
	Run:      run,
}

var levelFlag string
var dataFile string
var threshold float64
var labelsFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&levelFlag, "level", rank.Family.String(), "")
	c.Flags().StringVar(&levelFlag, "l", rank.Family.String(), "")
	c.Flags().StringVar(&dataFile, "datafile", refdata.DefaultFile, "")
	c.Flags().StringVar(&dataFile, "d", refdata.DefaultFile, "")
	c.Flags().Float64Var(&threshold, "threshold", taxmap.DefaultThreshold, "")
	c.Flags().Float64Var(&threshold, "t", taxmap.DefaultThreshold, "")
	c.Flags().BoolVar(&labelsFlag, "labels", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting table file")
	}
	rk, err := rank.Parse(levelFlag)
	if err != nil {
		return c.UsageError(fmt.Sprintf("flag --level: %v", err))
	}

	tb, err := table.ReadFile(args[0])
	if err != nil {
		return err
	}

	cfg := taxmap.Config{
		Rank:   rk,
		Format: feature.Default,
	}
	m, d, err := taxmap.ReadFile(dataFile, tb.Rows, cfg)
	if err != nil {
		return err
	}
	for _, tx := range d.Dups {
		fmt.Fprintf(c.Stderr(), "WARNING: taxon %q already defined\n", tx)
	}
	m = m.Filter(threshold)

	tab := csv.NewWriter(c.Stdout())
	tab.Comma = '\t'

	if labelsFlag {
		if err := tab.Write([]string{"label", "keys"}); err != nil {
			return err
		}
		for _, l := range m.Labels() {
			if err := tab.Write([]string{l.Name, fmt.Sprintf("%d", l.Count)}); err != nil {
				return err
			}
		}
	} else {
		if err := tab.Write([]string{"key", "label"}); err != nil {
			return err
		}
		for _, k := range m.Keys() {
			if err := tab.Write([]string{k, m[k]}); err != nil {
				return err
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
