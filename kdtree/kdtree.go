// Copyright 2023 The pointset Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"sort"
	"strconv"

	"github.com/gogama/pointset"
)

var _ pointset.Set = (*PointSet)(nil)

// PointSet is a set of distinct points stored in a 2d-tree. The zero
// value is an empty set ready to use.
type PointSet struct {
	root *node
}

// New returns an empty PointSet.
func New() *PointSet {
	return &PointSet{}
}

// Empty reports whether the set holds no points.
func (s *PointSet) Empty() bool {
	return s.root == nil
}

// Size returns the number of distinct points in the set.
func (s *PointSet) Size() int {
	if s.root == nil {
		return 0
	}
	return s.root.size
}

// Height returns the number of nodes on the longest path from the root
// to a leaf, or zero if the set is empty.
func (s *PointSet) Height() int {
	return s.root.height()
}

// Insert adds p to the set. If a point equal to p is already present,
// the tree is left exactly as it was and Insert returns false.
func (s *PointSet) Insert(p pointset.Point) bool {
	if s.root == nil {
		s.root = newNode(p, xAxis)
		return true
	}

	// Walk down to the empty slot p belongs in, remembering the path
	// so that subtree sizes are only bumped once we know p is new.
	var path []*node
	n := s.root
	for {
		if n.value == p {
			return false
		}
		path = append(path, n)
		slot := n.child(p)
		if *slot == nil {
			*slot = newNode(p, n.axis.other())
			break
		}
		n = *slot
	}
	for _, a := range path {
		a.size++
	}
	return true
}

// Contains reports whether a point exactly equal to p is in the set.
// It costs time proportional to the height of the tree.
func (s *PointSet) Contains(p pointset.Point) bool {
	n := s.root
	for n != nil {
		if n.value == p {
			return true
		}
		n = *n.child(p)
	}
	return false
}

// Range returns every point in the set which r contains, in ascending
// Point order.
func (s *PointSet) Range(r pointset.Rect) pointset.Points {
	rs := rangeSearch{query: r, found: make(pointset.Points, 0)}
	rs.visit(s.root, pointset.Plane)
	sort.Sort(rs.found)
	return rs.found
}

// Points returns every point in the set in ascending Point order.
func (s *PointSet) Points() pointset.Points {
	return s.Range(pointset.Plane)
}

// String returns the number of points in the set. Unlike the ordered
// implementation, a PointSet does not print its contents.
func (s *PointSet) String() string {
	return strconv.Itoa(s.Size())
}
