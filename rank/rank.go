// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package rank implements the taxonomic ranks
// used by the tree of life reference.
package rank

import (
	"fmt"
	"strings"
)

// A Rank is a taxonomic rank.
// Ranks are ordered from the coarsest
// (Root)
// to the finest
// (Genus).
type Rank int

// Valid ranks.
const (
	// Unranked is used for taxa
	// with a rank not recognized by the package.
	Unranked Rank = iota - 1

	Root
	Kingdom
	Phylum
	Class
	Order
	Family
	Genus
)

var names = []string{
	Root:    "Root",
	Kingdom: "Kingdom",
	Phylum:  "Phylum",
	Class:   "Class",
	Order:   "Order",
	Family:  "Family",
	Genus:   "Genus",
}

// Ranks returns the valid ranks
// ordered from Root to Genus.
func Ranks() []Rank {
	return []Rank{Root, Kingdom, Phylum, Class, Order, Family, Genus}
}

// Parse returns the rank with the given name.
// Names are case insensitive.
func Parse(s string) (Rank, error) {
	s = strings.TrimSpace(s)
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return Rank(i), nil
		}
	}
	return Unranked, fmt.Errorf("unknown rank %q", s)
}

// String returns the canonical name of a rank.
func (r Rank) String() string {
	if r < Root || r > Genus {
		return "unranked"
	}
	return names[r]
}

// Initial returns the lower case initial of the rank,
// as used in the taxonomic labels
// (e.g., "f" for Family).
func (r Rank) Initial() string {
	return strings.ToLower(r.String()[:1])
}

// Label returns a taxonomic label of a taxon name
// at the given rank,
// for example "f__Bacteroidaceae".
func (r Rank) Label(name string) string {
	return r.Initial() + "__" + name
}
