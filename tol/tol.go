// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tol implements a tree of life
// as a set of taxa linked to their parents by name.
package tol

import (
	"errors"
	"fmt"
	"slices"

	"github.com/js-arias/lcatax/rank"
)

// RootName is the name of the root of any tree of life.
const RootName = "Root"

// ErrDuplicate is returned when a taxon is already defined
// in a tree.
var ErrDuplicate = errors.New("taxon already defined")

// A Taxon is a node of the tree of life.
type Taxon struct {
	Name string
	Rank rank.Rank

	// Parent is the name of the parent taxon.
	// An empty name,
	// or the name of a taxon not in the tree,
	// ends the lineage at the root.
	Parent string
}

// A Step is an element of a lineage.
type Step struct {
	Rank rank.Rank
	Name string
}

// Tree is a tree of life.
type Tree struct {
	taxa map[string]Taxon
}

// New returns a new tree
// that only contains the root.
func New() *Tree {
	return &Tree{
		taxa: map[string]Taxon{
			RootName: {Name: RootName, Rank: rank.Root},
		},
	}
}

// Attach adds a taxon to the tree.
// If a taxon with the same name is already defined,
// the tree is not modified
// and an error wrapping ErrDuplicate is returned.
func (t *Tree) Attach(tx Taxon) error {
	if _, ok := t.taxa[tx.Name]; ok {
		return fmt.Errorf("taxon %q: %w", tx.Name, ErrDuplicate)
	}
	t.taxa[tx.Name] = tx
	return nil
}

// Len returns the number of taxa in the tree,
// including the root.
func (t *Tree) Len() int {
	return len(t.taxa)
}

// Taxon returns a taxon with a given name.
func (t *Tree) Taxon(name string) (Taxon, bool) {
	tx, ok := t.taxa[name]
	return tx, ok
}

// Lineage returns the lineage of a taxon,
// starting at the taxon
// and ending at the root.
// If the name is not in the tree,
// the lineage only contains the root.
//
// The parent chain is assumed to be acyclic.
func (t *Tree) Lineage(name string) []Step {
	var ln []Step
	for name != RootName {
		tx, ok := t.taxa[name]
		if !ok {
			break
		}
		ln = append(ln, Step{Rank: tx.Rank, Name: tx.Name})
		name = tx.Parent
	}
	return append(ln, Step{Rank: rank.Root, Name: RootName})
}

// At returns the first taxon
// in the lineage of the given taxon
// with the indicated rank.
func (t *Tree) At(name string, r rank.Rank) (Step, bool) {
	ln := t.Lineage(name)
	i := slices.IndexFunc(ln, func(s Step) bool {
		return s.Rank == r
	})
	if i < 0 {
		return Step{}, false
	}
	return ln[i], true
}
