// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package reindex rebuilds a functional profile table
// using the taxonomic labels
// inferred for its features.
package reindex

import (
	"fmt"
	"strings"

	"github.com/js-arias/lcatax/feature"
	"github.com/js-arias/lcatax/table"
	"github.com/js-arias/lcatax/taxmap"
	"gonum.org/v1/gonum/floats"
)

// A Mode defines which rows of a table
// are used to build the new rows.
type Mode int

// Valid modes.
const (
	// Totals keeps the un-stratified rows
	// and adds a new stratified row
	// with the inferred taxon
	// for each one of them.
	Totals Mode = iota

	// Unclassified replaces the "unclassified" stratum
	// with the inferred taxon,
	// and adds a new un-stratified row
	// with the total of the unclassified stratum.
	Unclassified

	// Stratified reassigns all stratified rows
	// to the inferred taxon.
	Stratified
)

var modeNames = []string{
	Totals:       "totals",
	Unclassified: "unclassified",
	Stratified:   "stratified",
}

// ParseMode returns the mode with the given name.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == s {
			return Mode(i), nil
		}
	}
	return Totals, fmt.Errorf("unknown mode %q", s)
}

func (m Mode) String() string {
	if m < Totals || m > Stratified {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// Config is the configuration
// used to reindex a table.
type Config struct {
	Mode   Mode
	Format feature.Format
}

// A Progress is used to report the progress
// of a long operation.
type Progress interface {
	Increment() int
}

// Index is a map of the new row keys
// to the rows of the original table
// that contribute to it.
type Index struct {
	f    feature.Format
	rows map[string][]int
}

// New creates a new index
// for a set of row keys.
// If p is not nil,
// it will be incremented after each row key.
func New(keys []string, m taxmap.Map, cfg Config, p Progress) *Index {
	idx := &Index{
		f:    cfg.Format,
		rows: make(map[string][]int),
	}

	for i, k := range keys {
		if p != nil {
			p.Increment()
		}

		id, name, stratum := cfg.Format.Split(k)

		// unmapped is never stratified
		if id == feature.Unmapped {
			idx.add(k, i)
			continue
		}

		nk := m.Connect(k, cfg.Format)
		switch {
		case stratum == "" && cfg.Mode != Unclassified:
			idx.add(k, i)
			if cfg.Mode == Totals {
				idx.add(nk, i)
			}
		case stratum == feature.Unclassified && cfg.Mode == Unclassified:
			idx.add(cfg.Format.Join(id, name, ""), i)
			idx.add(nk, i)
		case stratum != "" && cfg.Mode == Stratified:
			idx.add(nk, i)
		}
	}
	return idx
}

func (idx *Index) add(key string, row int) {
	idx.rows[key] = append(idx.rows[key], row)
}

// Keys returns the sorted row keys of the index.
func (idx *Index) Keys() []string {
	keys := make([]string, 0, len(idx.rows))
	for k := range idx.rows {
		keys = append(keys, k)
	}
	idx.f.Sort(keys)
	return keys
}

// Len returns the number of row keys in the index.
func (idx *Index) Len() int {
	return len(idx.rows)
}

// Rows returns the rows of the original table
// assigned to a row key.
func (idx *Index) Rows(key string) []int {
	return idx.rows[key]
}

// Rebuild returns a new table
// in which each row is the sum of the rows
// of the original table
// assigned to it in the index.
// If p is not nil,
// it will be incremented after each new row.
func Rebuild(t *table.Table, idx *Index, p Progress) *table.Table {
	nt := &table.Table{
		Head: t.Head,
		Cols: append([]string(nil), t.Cols...),
	}

	for _, k := range idx.Keys() {
		row := make([]float64, len(t.Cols))
		for _, i := range idx.rows[k] {
			floats.Add(row, t.Data[i])
		}
		nt.Rows = append(nt.Rows, k)
		nt.Data = append(nt.Data, row)

		if p != nil {
			p.Increment()
		}
	}
	return nt
}
