// Copyright 2023 The pointset Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kdtree

import "github.com/gogama/pointset"

// An axis identifies the coordinate a node discriminates on.
type axis uint8

const (
	xAxis axis = iota
	yAxis
)

func (a axis) other() axis {
	return a ^ 1
}

// coord returns p's coordinate on axis a.
func (a axis) coord(p pointset.Point) float64 {
	if a == xAxis {
		return p.X
	}
	return p.Y
}

// A node is a single point in the tree. Each node exclusively owns its
// children. A node's axis is always the opposite of its parent's, and
// size counts the node plus all of its descendants.
type node struct {
	value pointset.Point
	left  *node
	right *node
	axis  axis
	size  int
}

func newNode(p pointset.Point, a axis) *node {
	return &node{value: p, axis: a, size: 1}
}

// goesRight reports whether p belongs in n's right subtree. Points
// whose coordinate on n's axis ties with n's own go right.
func (n *node) goesRight(p pointset.Point) bool {
	return n.axis.coord(p) >= n.axis.coord(n.value)
}

// child returns a pointer to the child slot that p descends into.
func (n *node) child(p pointset.Point) **node {
	if n.goesRight(p) {
		return &n.right
	}
	return &n.left
}

// leftBounds returns the implicit bounding rectangle of n's left
// subtree given n's own bounding rectangle b: b with its upper bound
// on n's axis clipped to n's coordinate.
func (n *node) leftBounds(b pointset.Rect) pointset.Rect {
	if n.axis == xAxis {
		b.XMax = n.value.X
	} else {
		b.YMax = n.value.Y
	}
	return b
}

// rightBounds returns the implicit bounding rectangle of n's right
// subtree given n's own bounding rectangle b.
func (n *node) rightBounds(b pointset.Rect) pointset.Rect {
	if n.axis == xAxis {
		b.XMin = n.value.X
	} else {
		b.YMin = n.value.Y
	}
	return b
}

func (n *node) height() int {
	if n == nil {
		return 0
	}
	l, r := n.left.height(), n.right.height()
	if l > r {
		return l + 1
	}
	return r + 1
}
