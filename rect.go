// Copyright 2023 The pointset Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pointset

import (
	"math"
)

// A Rect is a closed axis-aligned rectangle. A valid Rect satisfies
// XMin <= XMax and YMin <= YMax. Degenerate rectangles, having zero
// width or height, are valid, as are rectangles with infinite
// bounds.
type Rect struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// Plane is the unbounded rectangle covering the whole plane.
var Plane = Rect{
	XMin: math.Inf(-1),
	YMin: math.Inf(-1),
	XMax: math.Inf(1),
	YMax: math.Inf(1),
}

// NewRect returns the rectangle whose lower-left corner is low and
// whose upper-right corner is high.
func NewRect(low, high Point) Rect {
	return Rect{XMin: low.X, YMin: low.Y, XMax: high.X, YMax: high.Y}
}

// Min returns the lower-left corner of the rectangle.
func (r *Rect) Min() Point {
	return Point{r.XMin, r.YMin}
}

// Max returns the upper-right corner of the rectangle.
func (r *Rect) Max() Point {
	return Point{r.XMax, r.YMax}
}

func (r *Rect) Width() float64 {
	return r.XMax - r.XMin
}

func (r *Rect) Height() float64 {
	return r.YMax - r.YMin
}

// Contains reports whether p lies inside or on the boundary of r.
func (r *Rect) Contains(p Point) bool {
	return r.XMin <= p.X && p.X <= r.XMax &&
		r.YMin <= p.Y && p.Y <= r.YMax
}

// Intersects reports whether r and o share at least one point, which
// is the case when their projections onto both axes overlap.
// Rectangles which merely touch along an edge or at a corner
// intersect.
func (r *Rect) Intersects(o *Rect) bool {
	if r.XMax < o.XMin || o.XMax < r.XMin {
		return false
	}
	if r.YMax < o.YMin || o.YMax < r.YMin {
		return false
	}
	return true
}

// Distance returns the Euclidean distance from p to the nearest point
// of r, which is zero if r contains p.
func (r *Rect) Distance(p Point) float64 {
	if r.Contains(p) {
		return 0
	}
	if r.XMin <= p.X && p.X <= r.XMax {
		return math.Min(math.Abs(r.YMin-p.Y), math.Abs(r.YMax-p.Y))
	}
	if r.YMin <= p.Y && p.Y <= r.YMax {
		return math.Min(math.Abs(r.XMin-p.X), math.Abs(r.XMax-p.X))
	}
	d := p.Distance(Point{r.XMin, r.YMin})
	d = math.Min(d, p.Distance(Point{r.XMin, r.YMax}))
	d = math.Min(d, p.Distance(Point{r.XMax, r.YMin}))
	return math.Min(d, p.Distance(Point{r.XMax, r.YMax}))
}

func (r Rect) String() string {
	return "[" + formatCoord(r.XMin) + "," + formatCoord(r.YMin) + "," +
		formatCoord(r.XMax) + "," + formatCoord(r.YMax) + "]"
}
