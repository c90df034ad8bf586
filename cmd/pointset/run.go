// Copyright 2023 The pointset Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/gogama/pointset"
	"github.com/gogama/pointset/kdtree"
	"github.com/gogama/pointset/ordered"
	"golang.org/x/sync/errgroup"
)

var errUsage = errors.New("usage: pointset [-backend kdtree|ordered] -file FILE COMMAND [ARGS...]")

// run executes the command line in args and returns the process exit
// code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pointset", flag.ContinueOnError)
	fs.SetOutput(stderr)
	backend := fs.String("backend", "kdtree", "point set implementation: kdtree or ordered")
	file := fs.String("file", "", "file of whitespace-separated x y pairs")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *file == "" || fs.NArg() == 0 {
		fmt.Fprintln(stderr, errUsage)
		return 2
	}

	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]
	var err error
	if cmd == "check" {
		err = check(*file, stdout)
	} else {
		err = query(*backend, *file, cmd, cmdArgs, stdout)
	}
	if err != nil {
		fmt.Fprintln(stderr, "pointset:", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

func newSet(backend string) (pointset.Set, error) {
	switch backend {
	case "kdtree":
		return kdtree.New(), nil
	case "ordered":
		return ordered.New(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q: %w", backend, errUsage)
	}
}

func query(backend, file, cmd string, args []string, w io.Writer) error {
	s, err := newSet(backend)
	if err != nil {
		return err
	}
	if _, err = pointset.LoadFile(file, s); err != nil {
		return err
	}

	switch cmd {
	case "print":
		_, err = fmt.Fprint(w, s)
		if _, ok := s.(*kdtree.PointSet); ok && err == nil {
			_, err = fmt.Fprintln(w)
		}
		return err
	case "size":
		_, err = fmt.Fprintln(w, s.Size())
		return err
	case "contains":
		p, err := parsePoint(cmd, args, 2)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s.Contains(p))
		return err
	case "range":
		v, err := parseFloats(cmd, args, 4)
		if err != nil {
			return err
		}
		_, err = s.Range(pointset.Rect{XMin: v[0], YMin: v[1], XMax: v[2], YMax: v[3]}).WriteTo(w)
		return err
	case "nearest":
		p, err := parsePoint(cmd, args, 2)
		if err != nil {
			return err
		}
		q, ok := s.Nearest(p)
		if !ok {
			return errors.New("nearest: set is empty")
		}
		_, err = pointset.Points{q}.WriteTo(w)
		return err
	case "nearestk":
		p, err := parsePoint(cmd, args, 3)
		if err != nil {
			return err
		}
		k, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("nearestk: bad k %q: %w", args[2], errUsage)
		}
		_, err = s.NearestK(p, k).WriteTo(w)
		return err
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

// check loads file into both backends concurrently and reports
// whether they hold the same points.
func check(file string, w io.Writer) error {
	kd, od := kdtree.New(), ordered.New()
	var g errgroup.Group
	g.Go(func() error {
		_, err := pointset.LoadFile(file, kd)
		return err
	})
	g.Go(func() error {
		_, err := pointset.LoadFile(file, od)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if kd.Size() != od.Size() {
		return fmt.Errorf("check: kdtree has %d points, ordered has %d", kd.Size(), od.Size())
	}
	kp, op := kd.Points(), od.Points()
	for i := range kp {
		if kp[i] != op[i] {
			return fmt.Errorf("check: point %d differs: kdtree %s, ordered %s", i, kp[i], op[i])
		}
	}
	_, err := fmt.Fprintf(w, "ok: %d points, kdtree height %d\n", kd.Size(), kd.Height())
	return err
}

// parsePoint checks there are exactly n arguments and parses the
// first two of them as a point.
func parsePoint(cmd string, args []string, n int) (pointset.Point, error) {
	if len(args) != n {
		return pointset.Point{}, fmt.Errorf("%s: want %d arguments, got %d: %w", cmd, n, len(args), errUsage)
	}
	v, err := parseFloats(cmd, args[:2], 2)
	if err != nil {
		return pointset.Point{}, err
	}
	return pointset.Point{X: v[0], Y: v[1]}, nil
}

func parseFloats(cmd string, args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s: want %d arguments, got %d: %w", cmd, n, len(args), errUsage)
	}
	v := make([]float64, n)
	for i := range args {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad number %q: %w", cmd, args[i], errUsage)
		}
		v[i] = f
	}
	return v, nil
}
