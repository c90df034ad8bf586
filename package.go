// Copyright 2023 The pointset Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package pointset defines the planar geometry primitives and the
// common contract shared by the point set implementations in the
// kdtree and ordered sub-packages.
//
// A point set holds distinct points in the plane and answers three
// kinds of query: membership, axis-aligned range, and nearest (or
// k-nearest) neighbour. Query results are always freshly allocated
// Points slices in ascending Point order, so a caller may keep
// mutating the set after a query without disturbing results it has
// already received.
//
// None of the types in this module are safe for concurrent use.
// Callers must serialize insertions against each other and against
// any in-flight query on the same set.
package pointset
