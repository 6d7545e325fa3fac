// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(referenceFileGuide)
	app.Add(tableFileGuide)
}

var referenceFileGuide = &command.Command{
	Usage: "reference-file",
	Short: "about the tree of life and LCA reference file",
	Long: `
LCATax infers the taxonomy of a feature using the lowest common ancestor
(LCA) of its UniRef cluster in a tree of life (TOL). Both the tree of life and
the LCA of the clusters are stored in a single reference file. There is a
reference file for UniRef50 clusters (uniref50-tol-lca.dat.gz) and one for
UniRef90 clusters (uniref90-tol-lca.dat.gz). The reference file can be
compressed with gzip.

The reference file is a tab-delimited file with two sections. The first
section starts with the line "# TOL" and contains the tree of life, with the
following fields:

	- name    the name of the taxon
	- rank    the rank of the taxon, one of Kingdom, Phylum, Class,
	          Order, Family, or Genus
	- parent  the name of the parent taxon

The second section starts with the line "# LCA" and contains the lowest common
ancestor of each UniRef cluster, with the following fields:

	- uniref  the ID of the UniRef cluster
	- lca     the name of the lowest common ancestor of the cluster

Here is an example file:

	# TOL
	Bacteria	Kingdom	Root
	Bacteroidetes	Phylum	Bacteria
	Bacteroidia	Class	Bacteroidetes
	Bacteroidales	Order	Bacteroidia
	Bacteroidaceae	Family	Bacteroidales
	Bacteroides	Genus	Bacteroidaceae
	# LCA
	UniRef50_A0A015	Bacteroides
	UniRef50_B0B016	Bacteroidales

A taxon defined more than once is reported, and only its first definition is
used. A line with a wrong number of fields is an error.
	`,
}

var tableFileGuide = &command.Command{
	Usage: "table-file",
	Short: "about functional profile tables",
	Long: `
A functional profile table is a tab-delimited file with the abundance of each
feature (usually a gene family) in a set of samples. The table can be
compressed with gzip.

The first line of the table is the header. Its first field is the name of the
feature column, and the other fields are the names of the samples. Each other
line is a feature, with the feature key and the abundance in each sample.

A feature key is made of the feature ID, an optional name separated by ": ",
and an optional taxonomic stratum separated by "|". A stratum is either the
genus and species of the feature, separated by ".", or "unclassified".

Here is an example file:

	# Gene Family	sample1	sample2
	UNMAPPED	10	12
	UniRef50_A0A015: Membrane protein	5.5	3
	UniRef50_A0A015: Membrane protein|g__Bacteroides.s__Bacteroides_fragilis	2.5	3
	UniRef50_A0A015: Membrane protein|unclassified	3	0

When a table is written, values without a fractional part are written as
integers.
	`,
}
