// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package reindex

import (
	"cmp"
	"slices"

	"github.com/js-arias/lcatax/feature"
	"github.com/js-arias/lcatax/table"
	"gonum.org/v1/gonum/floats"
)

// Summary is the number of stratified rows
// of a table,
// and how many of them are assigned to a taxon.
type Summary struct {
	Total  int
	Mapped int
}

// Summarize counts the stratified rows
// in a set of row keys.
func Summarize(keys []string, f feature.Format) Summary {
	var s Summary
	for _, k := range keys {
		_, _, stratum := f.Split(k)
		if stratum == "" {
			continue
		}
		s.Total++
		if stratum != feature.Unclassified {
			s.Mapped++
		}
	}
	return s
}

// Percent returns the percentage of mapped rows.
// It returns false if there are no stratified rows.
func (s Summary) Percent() (float64, bool) {
	if s.Total == 0 {
		return 0, false
	}
	return 100 * float64(s.Mapped) / float64(s.Total), true
}

// A Stratum is a taxonomic stratum
// and its total abundance in a table.
type Stratum struct {
	Name  string
	Total float64
}

// Strata returns the total abundance of each stratum
// in a table,
// sorted by decreasing abundance.
// The "unclassified" stratum is ignored.
func Strata(t *table.Table, f feature.Format) []Stratum {
	sum := make(map[string]float64)
	for i, k := range t.Rows {
		_, _, stratum := f.Split(k)
		if stratum == "" || stratum == feature.Unclassified {
			continue
		}
		sum[stratum] += floats.Sum(t.Data[i])
	}

	st := make([]Stratum, 0, len(sum))
	for s, v := range sum {
		st = append(st, Stratum{Name: s, Total: v})
	}
	slices.SortFunc(st, func(a, b Stratum) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return st
}
