// Copyright 2023 The pointset Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package kdtree provides a point set backed by a 2-dimensional
// binary space-partitioning tree (a 2d-tree).
//
// Each node of the tree splits the plane on one axis, alternating
// between X and Y with depth. Range and nearest-neighbour searches
// carry each subtree's implicit bounding rectangle down the tree and
// use it to skip subtrees which can't contribute to the answer.
//
// The tree is never rebalanced, so its shape depends entirely on the
// order in which points are inserted. Inserting points in sorted
// order degenerates the tree into a list.
package kdtree
