// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package reindex_test

import (
	"reflect"
	"testing"

	"github.com/js-arias/lcatax/feature"
	"github.com/js-arias/lcatax/reindex"
	"github.com/js-arias/lcatax/table"
	"github.com/js-arias/lcatax/taxmap"
)

func newTable() *table.Table {
	return &table.Table{
		Head: "# Gene Family",
		Cols: []string{"s1", "s2"},
		Rows: []string{
			"UNMAPPED",
			"UniRef50_A",
			"UniRef50_A|g__Genus1.s__Species1",
			"UniRef50_A|unclassified",
			"UniRef50_B: Kinase",
			"UniRef50_B: Kinase|unclassified",
			"UniRef50_C",
			"UniRef50_C|g__Genus2",
		},
		Data: [][]float64{
			{10, 20},
			{5, 4},
			{2, 1},
			{3, 3},
			{1.5, 0},
			{1.5, 0},
			{7, 7},
			{7, 7},
		},
	}
}

var testMap = taxmap.Map{
	"UniRef50_A":            "f__FamilyX",
	"UniRef50_B":            "f__FamilyY",
	"g__Genus1.s__Species1": "f__FamilyX",
	"g__Genus2":             "f__FamilyZ",
}

type counter int

func (c *counter) Increment() int {
	*c++
	return int(*c)
}

func TestParseMode(t *testing.T) {
	for _, m := range []reindex.Mode{reindex.Totals, reindex.Unclassified, reindex.Stratified} {
		got, err := reindex.ParseMode(m.String())
		if err != nil {
			t.Errorf("parse %q: unexpected error: %v", m, err)
		}
		if got != m {
			t.Errorf("parse %q: got %v", m, got)
		}
	}
	if _, err := reindex.ParseMode("all"); err == nil {
		t.Errorf("parse %q: expecting error", "all")
	}
}

func TestTotals(t *testing.T) {
	tb := newTable()
	cfg := reindex.Config{Mode: reindex.Totals, Format: feature.Default}

	var c counter
	idx := reindex.New(tb.Rows, testMap, cfg, &c)
	if int(c) != len(tb.Rows) {
		t.Errorf("progress: got %d, want %d", c, len(tb.Rows))
	}
	nt := reindex.Rebuild(tb, idx, nil)

	want := &table.Table{
		Head: "# Gene Family",
		Cols: []string{"s1", "s2"},
		Rows: []string{
			"UNMAPPED",
			"UniRef50_A",
			"UniRef50_A|f__FamilyX",
			"UniRef50_B: Kinase",
			"UniRef50_B: Kinase|f__FamilyY",
			"UniRef50_C",
			"UniRef50_C|unclassified",
		},
		Data: [][]float64{
			{10, 20},
			{5, 4},
			{5, 4},
			{1.5, 0},
			{1.5, 0},
			{7, 7},
			{7, 7},
		},
	}
	testTable(t, "totals", nt, want)

	// original table is unchanged
	if !reflect.DeepEqual(tb, newTable()) {
		t.Errorf("totals: original table modified")
	}
}

func TestUnclassified(t *testing.T) {
	tb := newTable()
	cfg := reindex.Config{Mode: reindex.Unclassified, Format: feature.Default}
	idx := reindex.New(tb.Rows, testMap, cfg, nil)
	nt := reindex.Rebuild(tb, idx, nil)

	want := &table.Table{
		Head: "# Gene Family",
		Cols: []string{"s1", "s2"},
		Rows: []string{
			"UNMAPPED",
			"UniRef50_A",
			"UniRef50_A|f__FamilyX",
			"UniRef50_B: Kinase",
			"UniRef50_B: Kinase|f__FamilyY",
		},
		Data: [][]float64{
			{10, 20},
			{3, 3},
			{3, 3},
			{1.5, 0},
			{1.5, 0},
		},
	}
	testTable(t, "unclassified", nt, want)
}

func TestStratified(t *testing.T) {
	tb := newTable()
	cfg := reindex.Config{Mode: reindex.Stratified, Format: feature.Default}
	idx := reindex.New(tb.Rows, testMap, cfg, nil)

	var c counter
	nt := reindex.Rebuild(tb, idx, &c)
	if int(c) != idx.Len() {
		t.Errorf("progress: got %d, want %d", c, idx.Len())
	}

	want := &table.Table{
		Head: "# Gene Family",
		Cols: []string{"s1", "s2"},
		Rows: []string{
			"UNMAPPED",
			"UniRef50_A",
			"UniRef50_A|f__FamilyX",
			"UniRef50_B: Kinase",
			"UniRef50_B: Kinase|f__FamilyY",
			"UniRef50_C",
			"UniRef50_C|f__FamilyZ",
		},
		Data: [][]float64{
			{10, 20},
			{5, 4},
			{5, 4},
			{1.5, 0},
			{1.5, 0},
			{7, 7},
			{7, 7},
		},
	}
	testTable(t, "stratified", nt, want)

	rows := idx.Rows("UniRef50_A|f__FamilyX")
	if !reflect.DeepEqual(rows, []int{2, 3}) {
		t.Errorf("stratified: rows of %q: got %v, want %v", "UniRef50_A|f__FamilyX", rows, []int{2, 3})
	}
}

func TestTotalsExample(t *testing.T) {
	tb := &table.Table{
		Head: "# Gene Family",
		Cols: []string{"s1"},
		Rows: []string{"UniRef50_A", "UniRef50_A|g__Genus1"},
		Data: [][]float64{{4}, {1}},
	}
	m := taxmap.Map{
		"UniRef50_A": "f__FamilyX",
		"g__Genus1":  "f__FamilyX",
	}
	cfg := reindex.Config{Mode: reindex.Totals, Format: feature.Default}
	nt := reindex.Rebuild(tb, reindex.New(tb.Rows, m.Filter(0), cfg, nil), nil)

	want := &table.Table{
		Head: "# Gene Family",
		Cols: []string{"s1"},
		Rows: []string{"UniRef50_A", "UniRef50_A|f__FamilyX"},
		Data: [][]float64{{4}, {4}},
	}
	testTable(t, "totals example", nt, want)
}

func TestUnclassifiedExample(t *testing.T) {
	tb := &table.Table{
		Head: "# Gene Family",
		Cols: []string{"s1", "s2"},
		Rows: []string{"UniRef50_B|unclassified"},
		Data: [][]float64{{2, 0.5}},
	}
	m := taxmap.Map{
		"UniRef50_B": "f__FamilyY",
	}
	cfg := reindex.Config{Mode: reindex.Unclassified, Format: feature.Default}
	nt := reindex.Rebuild(tb, reindex.New(tb.Rows, m, cfg, nil), nil)

	want := &table.Table{
		Head: "# Gene Family",
		Cols: []string{"s1", "s2"},
		Rows: []string{"UniRef50_B", "UniRef50_B|f__FamilyY"},
		Data: [][]float64{{2, 0.5}, {2, 0.5}},
	}
	testTable(t, "unclassified example", nt, want)
}

func testTable(t testing.TB, name string, got, want *table.Table) {
	t.Helper()

	if got.Head != want.Head {
		t.Errorf("%s: head: got %q, want %q", name, got.Head, want.Head)
	}
	if !reflect.DeepEqual(got.Cols, want.Cols) {
		t.Errorf("%s: columns: got %v, want %v", name, got.Cols, want.Cols)
	}
	if !reflect.DeepEqual(got.Rows, want.Rows) {
		t.Errorf("%s: rows: got %v, want %v", name, got.Rows, want.Rows)
	}
	if !reflect.DeepEqual(got.Data, want.Data) {
		t.Errorf("%s: data: got %v, want %v", name, got.Data, want.Data)
	}
}

func TestUnmapped(t *testing.T) {
	tb := &table.Table{
		Head: "# Gene Family",
		Cols: []string{"s1"},
		Rows: []string{"UNMAPPED"},
		Data: [][]float64{{10}},
	}
	want := &table.Table{
		Head: "# Gene Family",
		Cols: []string{"s1"},
		Rows: []string{"UNMAPPED"},
		Data: [][]float64{{10}},
	}

	for _, mode := range []reindex.Mode{reindex.Totals, reindex.Unclassified, reindex.Stratified} {
		cfg := reindex.Config{Mode: mode, Format: feature.Default}
		nt := reindex.Rebuild(tb, reindex.New(tb.Rows, testMap, cfg, nil), nil)
		testTable(t, "unmapped "+mode.String(), nt, want)
	}
}
