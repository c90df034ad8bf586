// Copyright 2023 The pointset Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pointset

import (
	"math"
	"strconv"
)

// A Point is a location in the plane. Points are ordered by X, then
// by Y, and two points are equal when both coordinates are exactly
// equal, so the == operator may be used to compare them.
//
// NaN coordinates are not supported.
type Point struct {
	X float64
	Y float64
}

// Less reports whether p sorts before q: either p.X < q.X, or the X
// coordinates are equal and p.Y < q.Y.
func (p Point) Less(q Point) bool {
	if p.X == q.X {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

func (p Point) String() string {
	return "[" + formatCoord(p.X) + "," + formatCoord(p.Y) + "]"
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
