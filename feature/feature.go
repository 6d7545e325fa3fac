// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package feature implements the row keys
// of a functional profile table.
//
// A row key is made of a feature ID,
// an optional human readable name,
// and an optional taxonomic stratum,
// for example:
//
//	UniRef50_A0A015: Putative membrane protein|g__Bacteroides.s__Bacteroides_fragilis
package feature

import (
	"cmp"
	"slices"
	"strings"
)

// Special features and strata.
const (
	Unmapped     = "UNMAPPED"
	Ungrouped    = "UNGROUPED"
	Unintegrated = "UNINTEGRATED"
	Unclassified = "unclassified"
)

// GenusPrefix is the prefix of a genus level stratum.
const GenusPrefix = "g__"

// A Format defines the delimiters
// used to build row keys.
type Format struct {
	// Strat separates the feature
	// from its taxonomic stratum.
	Strat string

	// Name separates the feature ID
	// from its name.
	Name string

	// Taxon separates the levels
	// of a stratum
	// (e.g., genus and species).
	Taxon string
}

// Default is the format used in HUMAnN tables.
var Default = Format{
	Strat: "|",
	Name:  ": ",
	Taxon: ".",
}

// Split returns the parts of a row key.
// Absent parts are returned as empty strings.
func (f Format) Split(key string) (id, name, stratum string) {
	key, stratum, _ = strings.Cut(key, f.Strat)
	id, name, _ = strings.Cut(key, f.Name)
	return id, name, stratum
}

// Join builds a row key.
// Empty parts are ignored.
func (f Format) Join(id, name, stratum string) string {
	key := id
	if name != "" {
		key += f.Name + name
	}
	if stratum != "" {
		key += f.Strat + stratum
	}
	return key
}

// Genus returns the genus token of a stratum
// (e.g., "g__Bacteroides" from "g__Bacteroides.s__Bacteroides_fragilis").
func (f Format) Genus(stratum string) string {
	g, _, _ := strings.Cut(stratum, f.Taxon)
	return g
}

// top are the features
// always sorted at the top of a table.
var top = map[string]int{
	Unmapped:           0,
	Ungrouped:          1,
	Unintegrated:       2,
	"UniRef50_unknown": 3,
	"UniRef90_unknown": 4,
}

// Sort sorts a list of row keys.
// Special features are placed at the top,
// and the rest is sorted by its stratum delimited parts
// (so "1|A" is placed before "11").
func (f Format) Sort(keys []string) {
	rank := func(k string) int {
		id, _, _ := f.Split(k)
		if r, ok := top[id]; ok {
			return r
		}
		return len(top)
	}
	slices.SortStableFunc(keys, func(a, b string) int {
		if c := cmp.Compare(rank(a), rank(b)); c != 0 {
			return c
		}
		return slices.Compare(strings.Split(a, f.Strat), strings.Split(b, f.Strat))
	})
}
