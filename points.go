// Copyright 2023 The pointset Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pointset

import (
	"io"
	"strings"
)

// Points is a slice of Point values which implements sort.Interface.
// The sort.Sort function will sort Points in ascending Point order.
type Points []Point

// Len returns the length of the slice. It implements the
// corresponding method of sort.Interface.
func (ps Points) Len() int {
	return len(ps)
}

// Less establishes an absolute ordering by ascending Point order. It
// implements the corresponding method of sort.Interface.
func (ps Points) Less(i, j int) bool {
	return ps[i].Less(ps[j])
}

// Swap swaps two elements of the slice. It implements the
// corresponding method of sort.Interface.
func (ps Points) Swap(i, j int) {
	ps[i], ps[j] = ps[j], ps[i]
}

// WriteTo writes the points to w as text, one "x y" line per point,
// returning the number of bytes written.
func (ps Points) WriteTo(w io.Writer) (n int64, err error) {
	var b strings.Builder
	for i := range ps {
		b.WriteString(formatCoord(ps[i].X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(ps[i].Y))
		b.WriteByte('\n')
	}
	m, err := io.WriteString(w, b.String())
	return int64(m), err
}
