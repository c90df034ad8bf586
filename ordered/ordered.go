// Copyright 2023 The pointset Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ordered

import (
	"io"
	"math"
	"strings"

	"github.com/gogama/pointset"
	"github.com/google/btree"
)

// DefaultDegree is the B-tree degree used by New.
const DefaultDegree = 32

var _ pointset.Set = (*PointSet)(nil)

// PointSet is a set of distinct points kept in ascending Point order.
// The zero value is not usable; create a PointSet with New or
// NewDegree.
type PointSet struct {
	tree *btree.BTreeG[pointset.Point]
}

// New returns an empty PointSet using DefaultDegree.
func New() *PointSet {
	return NewDegree(DefaultDegree)
}

// NewDegree returns an empty PointSet whose underlying B-tree has the
// given degree. Panics if degree is less than 2.
func NewDegree(degree int) *PointSet {
	if degree < 2 {
		fmtPanic("degree must be at least 2, got %d", degree)
	}
	return &PointSet{tree: btree.NewG(degree, less)}
}

func less(a, b pointset.Point) bool {
	return a.Less(b)
}

// Empty reports whether the set holds no points.
func (s *PointSet) Empty() bool {
	return s.tree.Len() == 0
}

// Size returns the number of distinct points in the set.
func (s *PointSet) Size() int {
	return s.tree.Len()
}

// Insert adds p to the set, returning false if p was already present.
func (s *PointSet) Insert(p pointset.Point) bool {
	if s.tree.Has(p) {
		return false
	}
	s.tree.ReplaceOrInsert(p)
	return true
}

// Contains reports whether a point exactly equal to p is in the set.
func (s *PointSet) Contains(p pointset.Point) bool {
	return s.tree.Has(p)
}

// Range returns every point in the set which r contains, in ascending
// Point order.
func (s *PointSet) Range(r pointset.Rect) pointset.Points {
	ps := make(pointset.Points, 0)
	start := pointset.Point{X: r.XMin, Y: math.Inf(-1)}
	s.tree.AscendGreaterOrEqual(start, func(p pointset.Point) bool {
		if p.X > r.XMax {
			return false
		}
		if r.Contains(p) {
			ps = append(ps, p)
		}
		return true
	})
	return ps
}

// Nearest returns the point in the set closest to p. The boolean
// result is false only if the set is empty. Every point is examined,
// and among points equally close to p the smallest in Point order
// wins.
func (s *PointSet) Nearest(p pointset.Point) (pointset.Point, bool) {
	return s.scan(p, nil)
}

// NearestK returns the k points in the set closest to p, in ascending
// Point order. The value of k is clamped to the size of the set, and
// if k is not positive the result is empty.
//
// Each of the k points is found by a full scan of the set that skips
// the points already picked, so NearestK costs O(k·n).
func (s *PointSet) NearestK(p pointset.Point, k int) pointset.Points {
	if k > s.Size() {
		k = s.Size()
	}
	if k <= 0 {
		return pointset.Points{}
	}
	picked := make(map[pointset.Point]struct{}, k)
	for i := 0; i < k; i++ {
		q, ok := s.scan(p, picked)
		if !ok {
			break
		}
		picked[q] = struct{}{}
	}
	// Walk the tree rather than sorting the picked points; the tree
	// is already in order.
	ps := make(pointset.Points, 0, len(picked))
	s.tree.Ascend(func(q pointset.Point) bool {
		if _, ok := picked[q]; ok {
			ps = append(ps, q)
		}
		return len(ps) < len(picked)
	})
	return ps
}

// scan returns the point closest to p which is not in exclude.
func (s *PointSet) scan(p pointset.Point, exclude map[pointset.Point]struct{}) (best pointset.Point, found bool) {
	dist := math.Inf(1)
	s.tree.Ascend(func(q pointset.Point) bool {
		if _, ok := exclude[q]; ok {
			return true
		}
		if d := q.Distance(p); d < dist {
			best, dist, found = q, d, true
		}
		return true
	})
	return
}

// Points returns every point in the set in ascending Point order.
func (s *PointSet) Points() pointset.Points {
	ps := make(pointset.Points, 0, s.tree.Len())
	s.tree.Ascend(func(p pointset.Point) bool {
		ps = append(ps, p)
		return true
	})
	return ps
}

// WriteTo writes the set's points to w, one "x y" line per point in
// ascending order.
func (s *PointSet) WriteTo(w io.Writer) (int64, error) {
	return s.Points().WriteTo(w)
}

// String returns the set's points, one "x y" line per point in
// ascending order.
func (s *PointSet) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}
