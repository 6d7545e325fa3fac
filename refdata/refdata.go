// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package refdata reads the reference data
// of a tree of life
// and the lowest common ancestor
// of UniRef clusters.
package refdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/js-arias/lcatax/rank"
	"github.com/js-arias/lcatax/tol"
	"github.com/js-arias/lcatax/zipped"
)

// Section markers.
const (
	TOLHeader = "# TOL"
	LCAHeader = "# LCA"
)

// DefaultFile is the conventional name
// of the reference file for UniRef50 clusters.
const DefaultFile = "uniref50-tol-lca.dat.gz"

// An LCA is the lowest common ancestor
// of a UniRef cluster.
type LCA struct {
	UniRef string
	Taxon  string
}

// Data is the reference data.
type Data struct {
	// Tree is the tree of life.
	Tree *tol.Tree

	// LCA are the lowest common ancestor assignments,
	// in file order.
	LCA []LCA

	// Dups are the taxon names
	// defined more than once in the tree of life section.
	// Only the first definition is used.
	Dups []string

	// Unranked are the taxon names
	// with a rank not recognized.
	Unranked []string
}

type section int

const (
	none section = iota
	tolSection
	lcaSection
)

// Read reads the reference data from a tab-delimited file.
// The file can be gzip compressed.
//
// The file has two sections.
// The first section starts with the line "# TOL"
// and contains the tree of life,
// with the following fields:
//
//   - name, the name of the taxon
//   - rank, the rank of the taxon
//   - parent, the name of the parent taxon
//
// The second section starts with the line "# LCA"
// and contains the lowest common ancestor of each UniRef cluster,
// with the following fields:
//
//   - uniref, the UniRef cluster ID
//   - lca, the name of the lowest common ancestor
//
// Here is an example file:
//
//	# TOL
//	Bacteria	Kingdom	Root
//	Bacteroidetes	Phylum	Bacteria
//	Bacteroidia	Class	Bacteroidetes
//	Bacteroidales	Order	Bacteroidia
//	Bacteroidaceae	Family	Bacteroidales
//	Bacteroides	Genus	Bacteroidaceae
//	# LCA
//	UniRef50_A0A015	Bacteroides
//	UniRef50_B0B016	Bacteroidales
//
// If keep is not nil,
// only the LCA assignments of the UniRef clusters
// for which keep returns true
// will be stored.
// Lines before the first section are ignored.
// A line with a wrong number of fields is an error.
func Read(r io.Reader, keep func(uniref string) bool) (*Data, error) {
	zr, err := zipped.NewReader(r)
	if err != nil {
		return nil, err
	}

	tab := csv.NewReader(zr)
	tab.Comma = '\t'
	tab.LazyQuotes = true
	tab.FieldsPerRecord = -1
	tab.ReuseRecord = true

	d := &Data{
		Tree: tol.New(),
	}
	sec := none
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on line %d: %v", ln, err)
		}

		switch strings.TrimSpace(row[0]) {
		case TOLHeader:
			sec = tolSection
			continue
		case LCAHeader:
			sec = lcaSection
			continue
		}

		switch sec {
		case tolSection:
			if len(row) != 3 {
				return nil, fmt.Errorf("on line %d: tree of life: got %d fields, want 3", ln, len(row))
			}
			rk, err := rank.Parse(row[1])
			if err != nil {
				d.Unranked = append(d.Unranked, row[0])
			}
			tx := tol.Taxon{
				Name:   row[0],
				Rank:   rk,
				Parent: row[2],
			}
			if err := d.Tree.Attach(tx); err != nil {
				d.Dups = append(d.Dups, tx.Name)
			}
		case lcaSection:
			if len(row) != 2 {
				return nil, fmt.Errorf("on line %d: lca: got %d fields, want 2", ln, len(row))
			}
			if keep != nil && !keep(row[0]) {
				continue
			}
			d.LCA = append(d.LCA, LCA{
				UniRef: row[0],
				Taxon:  row[1],
			})
		}
	}
	return d, nil
}
