// Copyright 2023 The pointset Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pointset

import (
	"bufio"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Load reads whitespace-separated numbers from r as a sequence of x y
// coordinate pairs and inserts each pair into s in the order read.
//
// Loading stops, without error, at the first token which isn't a
// finite decimal number, and an x coordinate with no parsable y after
// it is discarded. A token too long to buffer also ends loading. The returned count is the number of pairs read,
// including any that were already present in s. An error is only
// returned if r itself fails.
func Load(r io.Reader, s Inserter) (n int, err error) {
	if r == nil {
		textPanic("nil reader")
	} else if s == nil {
		textPanic("nil set")
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for {
		var x, y float64
		var ok bool
		if x, ok = scanFloat(sc); !ok {
			break
		}
		if y, ok = scanFloat(sc); !ok {
			break
		}
		s.Insert(Point{x, y})
		n++
	}

	if err = sc.Err(); errors.Is(err, bufio.ErrTooLong) {
		err = nil
	} else if err != nil {
		err = wrapErr("failed to read point %d", err, n)
	}
	return
}

// LoadFile opens the named file and loads its contents into s with
// Load.
func LoadFile(name string, s Inserter) (int, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, wrapErr("failed to open %q", err, name)
	}
	defer f.Close()
	return Load(f, s)
}

func scanFloat(sc *bufio.Scanner) (float64, bool) {
	if !sc.Scan() {
		return 0, false
	}
	tok := sc.Text()
	if strings.ContainsAny(tok, "xX_") {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
