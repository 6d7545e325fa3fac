// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package zipped reads content
// that can be either gzip compressed or plain.
package zipped

import (
	"bufio"
	"compress/gzip"
	"io"
)

var magic = []byte{0x1f, 0x8b}

// NewReader returns a reader
// that decompresses the content of r
// if it is gzip compressed.
// Otherwise the content is returned as is.
func NewReader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(magic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(head) < len(magic) || head[0] != magic[0] || head[1] != magic[1] {
		return br, nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, err
	}
	return zr, nil
}
