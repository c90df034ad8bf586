// Copyright 2023 The pointset Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package ordered provides a point set backed by a balanced ordered
// tree of points. It answers nearest-neighbour queries by scanning
// every point, and serves as the reference implementation the kdtree
// package is checked against.
package ordered
