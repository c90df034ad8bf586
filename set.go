// Copyright 2023 The pointset Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pointset

// An Inserter is anything points can be added to one at a time.
type Inserter interface {
	// Insert adds p, returning false if an equal point was already
	// present, in which case nothing changes.
	Insert(p Point) bool
}

// Set is the contract shared by every point set implementation.
type Set interface {
	Inserter

	// Empty reports whether the set holds no points.
	Empty() bool
	// Size returns the number of distinct points in the set.
	Size() int
	// Contains reports whether a point exactly equal to p is in the
	// set.
	Contains(p Point) bool
	// Range returns every point contained in r, in ascending order.
	Range(r Rect) Points
	// Nearest returns the point closest to p. The boolean result is
	// false only if the set is empty.
	Nearest(p Point) (Point, bool)
	// NearestK returns the k points closest to p, in ascending order.
	// If k exceeds the size of the set, every point is returned; if k
	// is not positive, the result is empty.
	NearestK(p Point, k int) Points
	// Points returns every point in the set, in ascending order.
	Points() Points
}
