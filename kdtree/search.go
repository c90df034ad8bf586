// Copyright 2023 The pointset Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import (
	"math"
	"sort"

	"github.com/gogama/pointset"
)

// A rangeSearch collects the points of a subtree which lie in a query
// rectangle.
type rangeSearch struct {
	query  pointset.Rect
	found  pointset.Points
	visits int
}

// visit adds to rs.found every point in the subtree rooted at n which
// the query contains. b is the implicit bounding rectangle of the
// subtree.
func (rs *rangeSearch) visit(n *node, b pointset.Rect) {
	if n == nil || !rs.query.Intersects(&b) {
		return
	}
	rs.visits++
	if rs.query.Contains(n.value) {
		rs.found = append(rs.found, n.value)
	}
	// n's own point falling outside the query says nothing about its
	// descendants, so both children are always visited.
	rs.visit(n.left, n.leftBounds(b))
	rs.visit(n.right, n.rightBounds(b))
}

// A nearestSearch is the running state of one branch-and-bound
// nearest-neighbour descent.
type nearestSearch struct {
	// target is the query point.
	target pointset.Point
	// exclude holds points chosen by earlier rounds of a k-nearest
	// search. They can't become the best point again.
	exclude map[pointset.Point]struct{}
	// best is the closest point found so far, and dist its distance
	// from target. dist is +Inf until a point is found.
	best  pointset.Point
	dist  float64
	found bool
	// visits counts the nodes examined, across all rounds.
	visits int
}

func (ns *nearestSearch) reset() {
	ns.best = pointset.Point{}
	ns.dist = math.Inf(1)
	ns.found = false
}

func (ns *nearestSearch) visit(n *node, b pointset.Rect) {
	if n == nil || b.Distance(ns.target) >= ns.dist {
		return
	}
	ns.visits++
	if _, excluded := ns.exclude[n.value]; !excluded {
		// Ties keep the point found first.
		if d := n.value.Distance(ns.target); d < ns.dist {
			ns.best, ns.dist, ns.found = n.value, d, true
		}
	}
	ns.visit(n.left, n.leftBounds(b))
	ns.visit(n.right, n.rightBounds(b))
}

// Nearest returns the point in the set closest to p. The boolean
// result is false only if the set is empty.
//
// When several points are equally close to p, the one reached first
// in the tree's depth-first, left-before-right traversal is returned.
func (s *PointSet) Nearest(p pointset.Point) (pointset.Point, bool) {
	ns := nearestSearch{target: p}
	ns.reset()
	ns.visit(s.root, pointset.Plane)
	return ns.best, ns.found
}

// NearestK returns the k points in the set closest to p, in ascending
// Point order. The value of k is clamped to the size of the set, and
// if k is not positive the result is empty.
//
// NearestK runs k rounds of the same pruned search used by Nearest,
// each round excluding the points picked by the rounds before it, so
// ties are resolved the same way as in Nearest.
func (s *PointSet) NearestK(p pointset.Point, k int) pointset.Points {
	if k > s.Size() {
		k = s.Size()
	}
	if k <= 0 {
		return pointset.Points{}
	}
	ns := nearestSearch{
		target:  p,
		exclude: make(map[pointset.Point]struct{}, k),
	}
	ps := make(pointset.Points, 0, k)
	for i := 0; i < k; i++ {
		ns.reset()
		ns.visit(s.root, pointset.Plane)
		if !ns.found {
			break
		}
		ns.exclude[ns.best] = struct{}{}
		ps = append(ps, ns.best)
	}
	sort.Sort(ps)
	return ps
}
