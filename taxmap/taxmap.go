// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxmap implements a map
// from UniRef clusters and genus strata
// to a taxonomic label at a target rank,
// inferred from the lowest common ancestor
// of each UniRef cluster
// in a tree of life.
package taxmap

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/js-arias/lcatax/feature"
	"github.com/js-arias/lcatax/rank"
	"github.com/js-arias/lcatax/refdata"
)

// DefaultThreshold is the default minimum frequency
// of a label.
const DefaultThreshold = 1e-3

// Config is the configuration
// used to build a map.
type Config struct {
	// Rank is the target rank.
	Rank rank.Rank

	// Format is the format of the row keys.
	Format feature.Format
}

// DefaultConfig is the default configuration.
var DefaultConfig = Config{
	Rank:   rank.Family,
	Format: feature.Default,
}

// Map is a map of UniRef IDs,
// or genus strata,
// to a taxonomic label.
type Map map[string]string

// UniRefs returns the UniRef IDs
// in a set of row keys.
func UniRefs(keys []string, f feature.Format) map[string]bool {
	ids := make(map[string]bool)
	for _, k := range keys {
		id, _, _ := f.Split(k)
		if !strings.Contains(id, "UniRef") {
			continue
		}
		ids[id] = true
	}
	return ids
}

// Read reads a reference file
// and builds the map
// for the given row keys.
func Read(r io.Reader, keys []string, cfg Config) (Map, *refdata.Data, error) {
	ids := UniRefs(keys, cfg.Format)
	d, err := refdata.Read(r, func(id string) bool {
		return ids[id]
	})
	if err != nil {
		return nil, nil, err
	}
	return Build(keys, d, cfg), d, nil
}

// Build builds a map for the given row keys.
//
// Each UniRef ID in the keys
// is mapped to the taxon at the target rank
// in the lineage of its lowest common ancestor.
// Each genus stratum in the keys
// is mapped to the taxon at the target rank
// in the lineage of the genus.
// Keys without a taxon at the target rank
// are not mapped.
func Build(keys []string, d *refdata.Data, cfg Config) Map {
	ids := UniRefs(keys, cfg.Format)

	m := make(Map)
	for _, a := range d.LCA {
		if !ids[a.UniRef] {
			continue
		}
		s, ok := d.Tree.At(a.Taxon, cfg.Rank)
		if !ok {
			continue
		}
		m[a.UniRef] = s.Rank.Label(s.Name)
	}

	for _, k := range keys {
		_, _, stratum := cfg.Format.Split(k)
		if !strings.Contains(stratum, feature.GenusPrefix) {
			continue
		}
		genus := cfg.Format.Genus(stratum)
		if cfg.Rank == rank.Genus {
			m[stratum] = genus
			continue
		}
		genus = strings.ReplaceAll(genus, feature.GenusPrefix, "")
		s, ok := d.Tree.At(genus, cfg.Rank)
		if !ok {
			continue
		}
		m[stratum] = s.Rank.Label(s.Name)
	}
	return m
}

// Connect returns the row key
// with its stratum replaced by the label in the map.
// If the key is not stratified,
// or its stratum is "unclassified",
// the label of the feature ID is used.
// Keys without a label are assigned to the "unclassified" stratum.
func (m Map) Connect(key string, f feature.Format) string {
	id, name, stratum := f.Split(key)
	q := stratum
	if stratum == "" || stratum == feature.Unclassified {
		q = id
	}
	label, ok := m[q]
	if !ok {
		label = feature.Unclassified
	}
	return f.Join(id, name, label)
}

// Filter returns a new map
// without the labels with a relative frequency
// (the number of keys with the label,
// divided by the size of the map)
// smaller than the threshold.
func (m Map) Filter(threshold float64) Map {
	count := make(map[string]int)
	for _, l := range m {
		count[l]++
	}
	total := float64(len(m))

	nm := make(Map, len(m))
	for k, l := range m {
		if float64(count[l])/total < threshold {
			continue
		}
		nm[k] = l
	}
	return nm
}

// A Label is a taxonomic label
// and the number of keys mapped to it.
type Label struct {
	Name  string
	Count int
}

// Labels returns the labels in the map
// sorted by decreasing number of keys.
func (m Map) Labels() []Label {
	count := make(map[string]int)
	for _, l := range m {
		count[l]++
	}

	ls := make([]Label, 0, len(count))
	for l, c := range count {
		ls = append(ls, Label{Name: l, Count: c})
	}
	slices.SortFunc(ls, func(a, b Label) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return ls
}

// Keys returns the sorted keys of the map.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ReadFile reads a reference file
// and builds the map
// for the given row keys.
func ReadFile(name string, keys []string, cfg Config) (Map, *refdata.Data, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	m, d, err := Read(f, keys, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return m, d, nil
}
