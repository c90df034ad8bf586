// Copyright 2023 The pointset Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ordered

import (
	"bytes"
	"math"
	"testing"

	"github.com/gogama/pointset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenario = []pointset.Point{{X: 2, Y: 3}, {X: 4, Y: 2}, {X: 4, Y: 5}, {X: 1, Y: 1}}

func newSet(ps ...pointset.Point) *PointSet {
	s := New()
	for _, p := range ps {
		s.Insert(p)
	}
	return s
}

func TestNewDegree(t *testing.T) {
	t.Run("Panic", func(t *testing.T) {
		testCases := []struct {
			name     string
			degree   int
			expected string
		}{
			{"Negative", -1, "ordered: degree must be at least 2, got -1"},
			{"Zero", 0, "ordered: degree must be at least 2, got 0"},
			{"One", 1, "ordered: degree must be at least 2, got 1"},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				assert.PanicsWithValue(t, testCase.expected, func() {
					_ = NewDegree(testCase.degree)
				})
			})
		}
	})

	t.Run("Success", func(t *testing.T) {
		// A small degree forces the B-tree to split nodes early.
		s := NewDegree(2)

		for i := 100; i > 0; i-- {
			assert.True(t, s.Insert(pointset.Point{X: float64(i % 10), Y: float64(i)}))
		}

		assert.Equal(t, 100, s.Size())
		ps := s.Points()
		for i := 1; i < len(ps); i++ {
			assert.True(t, ps[i-1].Less(ps[i]), "%s >= %s", ps[i-1], ps[i])
		}
	})
}

func TestPointSet_Insert(t *testing.T) {
	s := New()

	assert.True(t, s.Empty())
	for _, p := range scenario {
		assert.True(t, s.Insert(p))
	}
	for _, p := range scenario {
		assert.False(t, s.Insert(p))
	}

	assert.False(t, s.Empty())
	assert.Equal(t, 4, s.Size())
	assert.Equal(t, pointset.Points{{X: 1, Y: 1}, {X: 2, Y: 3}, {X: 4, Y: 2}, {X: 4, Y: 5}}, s.Points())
}

func TestPointSet_Insert_SignedZero(t *testing.T) {
	s := newSet(pointset.Point{})

	assert.False(t, s.Insert(pointset.Point{X: math.Copysign(0, -1), Y: 0}))
	assert.Equal(t, 1, s.Size())
}

func TestPointSet_Contains(t *testing.T) {
	s := newSet(scenario...)

	for _, p := range scenario {
		assert.True(t, s.Contains(p), "Contains(%s)", p)
	}
	assert.False(t, s.Contains(pointset.Point{X: 2, Y: 2}))
	assert.False(t, s.Contains(pointset.Point{X: 3, Y: 2}))
	assert.False(t, New().Contains(pointset.Point{}))
}

func TestPointSet_Range(t *testing.T) {
	s := newSet(scenario...)

	testCases := []struct {
		name     string
		r        pointset.Rect
		expected pointset.Points
	}{
		{"Scenario", pointset.Rect{XMin: 0, YMin: 0, XMax: 4, YMax: 4}, pointset.Points{{X: 1, Y: 1}, {X: 2, Y: 3}, {X: 4, Y: 2}}},
		{"Plane", pointset.Plane, pointset.Points{{X: 1, Y: 1}, {X: 2, Y: 3}, {X: 4, Y: 2}, {X: 4, Y: 5}}},
		{"Nothing", pointset.Rect{XMin: 10, YMin: 10, XMax: 20, YMax: 20}, pointset.Points{}},
		{"StartsAtMinX", pointset.Rect{XMin: 4, YMin: 3, XMax: 4, YMax: 9}, pointset.Points{{X: 4, Y: 5}}},
		{"StopsAtMaxX", pointset.Rect{XMin: 0, YMin: 0, XMax: 2, YMax: 10}, pointset.Points{{X: 1, Y: 1}, {X: 2, Y: 3}}},
		{"Degenerate", pointset.Rect{XMin: 2, YMin: 3, XMax: 2, YMax: 3}, pointset.Points{{X: 2, Y: 3}}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := s.Range(testCase.r)

			assert.Equal(t, testCase.expected, actual)
		})
	}

	t.Run("Snapshot", func(t *testing.T) {
		s := newSet(scenario...)

		ps := s.Range(pointset.Plane)
		s.Insert(pointset.Point{})

		assert.Len(t, ps, 4)
		assert.Len(t, s.Range(pointset.Plane), 5)
	})
}

func TestPointSet_Nearest(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		p, ok := New().Nearest(pointset.Point{})

		assert.False(t, ok)
		assert.Equal(t, pointset.Point{}, p)
	})

	t.Run("Scenario", func(t *testing.T) {
		p, ok := newSet(scenario...).Nearest(pointset.Point{X: 3, Y: 3})

		require.True(t, ok)
		assert.Equal(t, pointset.Point{X: 2, Y: 3}, p)
	})

	t.Run("TieKeepsSmallest", func(t *testing.T) {
		s := newSet(
			pointset.Point{X: 1, Y: 0},
			pointset.Point{X: 0, Y: 1},
			pointset.Point{X: -1, Y: 0},
			pointset.Point{X: 0, Y: -1},
		)

		p, ok := s.Nearest(pointset.Point{})

		require.True(t, ok)
		assert.Equal(t, pointset.Point{X: -1, Y: 0}, p)
	})
}

func TestPointSet_NearestK(t *testing.T) {
	s := newSet(scenario...)

	testCases := []struct {
		name     string
		q        pointset.Point
		k        int
		expected pointset.Points
	}{
		{"Scenario", pointset.Point{}, 2, pointset.Points{{X: 1, Y: 1}, {X: 2, Y: 3}}},
		{"Three", pointset.Point{X: 5, Y: 5}, 3, pointset.Points{{X: 2, Y: 3}, {X: 4, Y: 2}, {X: 4, Y: 5}}},
		{"Clamped", pointset.Point{}, 10, pointset.Points{{X: 1, Y: 1}, {X: 2, Y: 3}, {X: 4, Y: 2}, {X: 4, Y: 5}}},
		{"Zero", pointset.Point{}, 0, pointset.Points{}},
		{"Negative", pointset.Point{}, -1, pointset.Points{}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := s.NearestK(testCase.q, testCase.k)

			assert.Equal(t, testCase.expected, actual)
		})
	}

	t.Run("TieKeepsSmallest", func(t *testing.T) {
		s := newSet(
			pointset.Point{X: 1, Y: 0},
			pointset.Point{X: 0, Y: 1},
			pointset.Point{X: -1, Y: 0},
			pointset.Point{X: 0, Y: -1},
			pointset.Point{X: 5, Y: 5},
		)

		actual := s.NearestK(pointset.Point{}, 3)

		assert.Equal(t, pointset.Points{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}}, actual)
	})
}

func TestPointSet_String(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", New().String())
	})

	t.Run("Scenario", func(t *testing.T) {
		assert.Equal(t, "1 1\n2 3\n4 2\n4 5\n", newSet(scenario...).String())
	})

	t.Run("WriteTo", func(t *testing.T) {
		var b bytes.Buffer

		n, err := newSet(pointset.Point{X: 0.5, Y: -2}).WriteTo(&b)

		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
		assert.Equal(t, "0.5 -2\n", b.String())
	})
}
