// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package infer implements a command to infer
// the taxonomy of the features
// of a functional profile table.
package infer

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/lcatax/feature"
	"github.com/js-arias/lcatax/rank"
	"github.com/js-arias/lcatax/refdata"
	"github.com/js-arias/lcatax/reindex"
	"github.com/js-arias/lcatax/table"
	"github.com/js-arias/lcatax/taxmap"
	"gopkg.in/cheggaaa/pb.v1"
)

var Command = &command.Command{
	Usage: `infer [-o|--output <file>] [-l|--level <rank>]
	[-d|--datafile <file>] [-m|--mode <mode>]
	[-t|--threshold <value>] [--plot <file>] [--progress]
	<table-file>`,
	Short: "infer the taxonomy of unclassified features",
	Long: `
Command infer reads a functional profile table, and based on the lowest common
ancestor (LCA) of each UniRef cluster, infers an approximate taxonomy for the
unclassified features at a target rank. Features of a known genus are
modified to match the target rank.

The argument of the command is the name of the table file. See "lcatax help
table-file" for a description of the table format.

By default the new table will be printed in the standard output. Use the flag
--output, or -o, to define an output file.

The flag --level, or -l, defines the target rank. Valid values are Root,
Kingdom, Phylum, Class, Order, Family, and Genus. The default is Family.

The flag --datafile, or -d, defines the reference file with the tree of life
and the LCA of the UniRef clusters. By default it will use
'uniref50-tol-lca.dat.gz'. See "lcatax help reference-file" for a description
of the file format.

The flag --mode, or -m, defines which rows are used in the new table. Valid
values are:

	totals        keeps the totals of each feature and adds a new row
	              with the inferred taxon. This is the default.
	unclassified  replaces the unclassified stratum of each feature with
	              the inferred taxon and keeps a new row with the total.
	stratified    reassigns all stratified rows to the inferred taxon.

The flag --threshold, or -t, defines the minimum frequency of an inferred
taxon, as the proportion of features assigned to it. Features assigned to less
frequent taxa are unclassified. The default value is 0.001.

If the flag --plot is defined, a bar chart with the abundance of the most
abundant inferred taxa will be saved in the indicated file. The format of the
image is defined by the file extension (e.g., png, svg, or pdf).

If the flag --progress is defined, a progress bar will be printed in the
standard error while the table is rebuilt.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var levelFlag string
var dataFile string
var modeFlag string
var threshold float64
var plotFile string
var progressFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&levelFlag, "level", rank.Family.String(), "")
	c.Flags().StringVar(&levelFlag, "l", rank.Family.String(), "")
	c.Flags().StringVar(&dataFile, "datafile", refdata.DefaultFile, "")
	c.Flags().StringVar(&dataFile, "d", refdata.DefaultFile, "")
	c.Flags().StringVar(&modeFlag, "mode", reindex.Totals.String(), "")
	c.Flags().StringVar(&modeFlag, "m", reindex.Totals.String(), "")
	c.Flags().Float64Var(&threshold, "threshold", taxmap.DefaultThreshold, "")
	c.Flags().Float64Var(&threshold, "t", taxmap.DefaultThreshold, "")
	c.Flags().StringVar(&plotFile, "plot", "", "")
	c.Flags().BoolVar(&progressFlag, "progress", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting table file")
	}
	rk, err := rank.Parse(levelFlag)
	if err != nil {
		return c.UsageError(fmt.Sprintf("flag --level: %v", err))
	}
	mode, err := reindex.ParseMode(modeFlag)
	if err != nil {
		return c.UsageError(fmt.Sprintf("flag --mode: %v", err))
	}

	return inferTable(c.Stdout(), c.Stderr(), args[0], rk, mode)
}

func inferTable(stdout, stderr io.Writer, name string, rk rank.Rank, mode reindex.Mode) error {
	tb, err := table.ReadFile(name)
	if err != nil {
		return err
	}

	fmt.Fprintf(stderr, "Building taxonomic map for input table\n")
	cfg := taxmap.Config{
		Rank:   rk,
		Format: feature.Default,
	}
	m, err := readMap(stderr, tb.Rows, cfg)
	if err != nil {
		return err
	}
	m = m.Filter(threshold)

	fmt.Fprintf(stderr, "Reindexing the input table\n")
	rCfg := reindex.Config{
		Mode:   mode,
		Format: feature.Default,
	}
	bar := newProgress(stderr, len(tb.Rows))
	idx := reindex.New(tb.Rows, m, rCfg, bar)
	bar.done()

	fmt.Fprintf(stderr, "Rebuilding the input table\n")
	bar = newProgress(stderr, idx.Len())
	nt := reindex.Rebuild(tb, idx, bar)
	bar.done()

	fmt.Fprintf(stderr, "Writing new table\n")
	if err := writeTable(stdout, nt); err != nil {
		return err
	}

	s := reindex.Summarize(nt.Rows, feature.Default)
	if p, ok := s.Percent(); ok {
		fmt.Fprintf(stderr, "Summary: Of %d stratifications, %d mapped at %s level (%.1f%%)\n", s.Total, s.Mapped, rk, p)
	} else {
		fmt.Fprintf(stderr, "Summary: no stratified rows\n")
	}

	if plotFile != "" {
		st := reindex.Strata(nt, feature.Default)
		if len(st) == 0 {
			fmt.Fprintf(stderr, "WARNING: no inferred taxa: plot %q not created\n", plotFile)
			return nil
		}
		if err := makePlot(st, rk); err != nil {
			return fmt.Errorf("when writing plot %q: %v", plotFile, err)
		}
	}
	return nil
}

func readMap(w io.Writer, keys []string, cfg taxmap.Config) (taxmap.Map, error) {
	fmt.Fprintf(w, "Loading taxonomic data from: %s\n", dataFile)
	m, d, err := taxmap.ReadFile(dataFile, keys, cfg)
	if err != nil {
		return nil, err
	}
	for _, tx := range d.Dups {
		fmt.Fprintf(w, "WARNING: taxon %q already defined\n", tx)
	}
	fmt.Fprintf(w, "  Loaded %d taxa and %d LCA assignments\n", d.Tree.Len(), len(d.LCA))
	return m, nil
}

func writeTable(stdout io.Writer, t *table.Table) (err error) {
	if output == "" {
		return t.Write(stdout)
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := t.Write(f); err != nil {
		return fmt.Errorf("while writing %q: %v", output, err)
	}
	return nil
}

// progress wraps a progress bar,
// that is only shown if the --progress flag is set.
type progress struct {
	bar *pb.ProgressBar
}

func newProgress(w io.Writer, n int) progress {
	if !progressFlag || n == 0 {
		return progress{}
	}
	bar := pb.New(n)
	bar.Output = w
	bar.ShowSpeed = false
	bar.Start()
	return progress{bar: bar}
}

func (p progress) Increment() int {
	if p.bar == nil {
		return 0
	}
	return p.bar.Increment()
}

func (p progress) done() {
	if p.bar == nil {
		return
	}
	p.bar.Finish()
}
