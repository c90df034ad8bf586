// Copyright 2023 The pointset Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command pointset loads a file of x y coordinate pairs into a point
// set and runs a single query against it.
//
// Usage:
//
//	pointset [-backend kdtree|ordered] -file FILE COMMAND [ARGS...]
//
// The commands are:
//
//	print                       print the set
//	size                        print the number of points
//	contains X Y                print whether the point is in the set
//	range XMIN YMIN XMAX YMAX   print the points inside a rectangle
//	nearest X Y                 print the point closest to (X, Y)
//	nearestk X Y K              print the K points closest to (X, Y)
//	check                       load both backends and compare them
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
