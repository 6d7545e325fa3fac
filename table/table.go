// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package table implements a functional profile table,
// a matrix of feature abundances
// (rows)
// by samples
// (columns).
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/js-arias/lcatax/zipped"
)

// Table is a functional profile table.
type Table struct {
	// Head is the name of the row key column
	// (e.g., "# Gene Family").
	Head string

	// Cols are the sample names.
	Cols []string

	// Rows are the row keys.
	Rows []string

	// Data stores the values of each row.
	Data [][]float64
}

// Read reads a table from a tab-delimited file.
// The file can be gzip compressed.
//
// The first line of the file is the header,
// the first field is the name of the row key column,
// and the rest the sample names.
// Each following line is a row,
// with the row key,
// and one value for each sample.
//
// Here is an example file:
//
//	# Gene Family	sample1	sample2
//	UNMAPPED	10	12
//	UniRef50_A	5.5	3
//	UniRef50_A|g__Bacteroides.s__Bacteroides_fragilis	2.5	3
//	UniRef50_A|unclassified	3	0
func Read(r io.Reader) (*Table, error) {
	zr, err := zipped.NewReader(r)
	if err != nil {
		return nil, err
	}

	tab := csv.NewReader(zr)
	tab.Comma = '\t'
	tab.LazyQuotes = true
	tab.FieldsPerRecord = -1

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	if len(head) < 1 {
		return nil, errors.New("empty header")
	}

	t := &Table{
		Head: head[0],
		Cols: head[1:],
	}
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
		if len(row) != len(t.Cols)+1 {
			return nil, fmt.Errorf("on row %d: got %d fields, want %d", ln, len(row), len(t.Cols)+1)
		}

		vals := make([]float64, len(t.Cols))
		for i, s := range row[1:] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d: field %q: %v", ln, t.Cols[i], err)
			}
			vals[i] = v
		}
		t.Rows = append(t.Rows, row[0])
		t.Data = append(t.Data, vals)
	}
	return t, nil
}

// Write writes a table as a tab-delimited file.
// Integral values are written as integers.
func (t *Table) Write(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'

	head := append([]string{t.Head}, t.Cols...)
	if err := tab.Write(head); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for i, k := range t.Rows {
		row := make([]string, 0, len(t.Cols)+1)
		row = append(row, k)
		for _, v := range t.Data[i] {
			row = append(row, formatValue(v))
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// maxInt is the largest float
// that is written as an integer.
const maxInt = 1 << 53

func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < maxInt {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ReadFile reads a table from a file.
func ReadFile(name string) (*Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return t, nil
}
