// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wispengine/geom/math32"
	"gopkg.in/yaml.v3"
)

func square() Path {
	return FromFloats([]float32{0, 0, 4, 0, 4, 4, 0, 4})
}

func TestPathBasics(t *testing.T) {
	p := square()
	assert.Equal(t, 4, p.Len())
	assert.True(t, p.Closed)
	for i := 0; i < 4; i++ {
		assert.True(t, p.IsCorner(i))
	}

	p.ClearCorner(2)
	assert.False(t, p.IsCorner(2))
	p.SetCorner(2)
	assert.True(t, p.IsCorner(2))

	b := p.Bounds()
	assert.Equal(t, math32.Vec2(0, 0), b.Min)
	assert.Equal(t, math32.Vec2(4, 4), b.Max)

	assert.True(t, math32.B2Empty().IsEmpty())
	assert.True(t, Path{}.Bounds().IsEmpty())
}

func TestPathSquareQueries(t *testing.T) {
	p := square()
	assert.Equal(t, float32(16), p.Area())
	assert.Equal(t, -1, p.Orientation())
	assert.Equal(t, 4, p.LeftTurns())
	assert.True(t, p.IsConvex())

	r := p.Reverse()
	assert.Equal(t, float32(-16), r.Area())
	assert.Equal(t, 1, r.Orientation())
	assert.Equal(t, 0, r.LeftTurns())
	assert.False(t, r.IsConvex())
}

func TestPathOpenTent(t *testing.T) {
	p := FromPoints([]math32.Vector2{math32.Vec2(0, 0), math32.Vec2(1, 1), math32.Vec2(2, 0)}, false)
	assert.Equal(t, float32(-1), p.Area())
	assert.False(t, p.Contains(math32.Vec2(1, 0.5)))
	assert.False(t, p.Contains(math32.Vec2(1, 1)))
	assert.False(t, p.IsConvex())
	assert.Equal(t, 0, p.LeftTurns()) // single interior vertex turns right
}

func TestPathIndexShift(t *testing.T) {
	p := square() // corners 0,1,2,3
	p.Insert(2, math32.Vec2(4, 2))
	assert.Equal(t, []int{0, 1, 3, 4}, p.Corners)
	assert.False(t, p.IsCorner(2))
	assert.Equal(t, math32.Vec2(4, 2), p.Vertices[2])

	pt := p.Remove(2)
	assert.Equal(t, math32.Vec2(4, 2), pt)
	assert.Equal(t, []int{0, 1, 2, 3}, p.Corners)

	// removing a corner vertex drops its flag and shifts the rest
	p.Remove(1)
	assert.Equal(t, []int{0, 1, 2}, p.Corners)
	assert.Equal(t, 3, p.Len())

	assert.Panics(t, func() { p.Remove(7) })
	assert.Panics(t, func() { p.Insert(-1, math32.Vector2{}) })
}

func TestPathPushPop(t *testing.T) {
	p := New(4)
	p.Push(math32.Vec2(0, 0), math32.Vec2(1, 0))
	p.PushCorner(math32.Vec2(1, 1))
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []int{2}, p.Corners)

	assert.Equal(t, math32.Vec2(1, 1), p.Pop())
	assert.Empty(t, p.Corners)
	assert.Equal(t, math32.Vector2{}, New(0).Pop())
}

func TestPathSlice(t *testing.T) {
	p := square()
	s := p.Slice(1, 3)
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Closed)
	assert.Equal(t, []int{0, 1}, s.Corners)
	assert.Equal(t, math32.Vec2(4, 0), s.Vertices[0])

	assert.Panics(t, func() { p.Slice(3, 1) })
	assert.Panics(t, func() { p.Slice(0, 9) })
}

func TestPathContains(t *testing.T) {
	p := square()
	assert.True(t, p.Contains(math32.Vec2(2, 2)))
	assert.False(t, p.Contains(math32.Vec2(5, 2)))
	assert.False(t, p.Contains(math32.Vec2(-1, -1)))

	// boundary and vertices count as contained
	assert.True(t, p.Contains(math32.Vec2(0, 0)))
	assert.True(t, p.Contains(math32.Vec2(4, 2)))
	assert.True(t, p.Contains(math32.Vec2(2, 4)))

	// concave loop: a notch cut into the square's top edge
	notch := FromPoints([]math32.Vector2{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 2, Y: 1}, {X: 0, Y: 4},
	}, true)
	assert.True(t, notch.Contains(math32.Vec2(1, 1)))
	assert.False(t, notch.Contains(math32.Vec2(2, 3)))
}

func TestPathOrientationConcave(t *testing.T) {
	// non-convex CCW loop: the extreme-vertex rule must not be fooled
	// by the reflex turn at (2,1)
	p := FromPoints([]math32.Vector2{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 2, Y: 1}, {X: 0, Y: 4},
	}, true)
	assert.Equal(t, -1, p.Orientation())
	assert.Positive(t, p.Area())
	assert.Equal(t, 1, p.Reverse().Orientation())

	colinear := FromPoints([]math32.Vector2{math32.Vec2(0, 0), math32.Vec2(1, 1), math32.Vec2(2, 2)}, true)
	assert.Equal(t, 0, colinear.Orientation())
	assert.Equal(t, float32(0), colinear.Area())
}

func TestConvexHull(t *testing.T) {
	// 5 points with one strictly interior
	p := FromPoints([]math32.Vector2{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 2}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}, false)
	hull := p.ConvexHull()
	require.NotNil(t, hull)
	assert.LessOrEqual(t, len(hull), 4)
	assert.NotContains(t, hull, 2)

	// hull loop is CCW and contains every original point
	hp := Path{Closed: true}
	for _, i := range hull {
		hp.Push(p.Vertices[i])
	}
	assert.Equal(t, -1, hp.Orientation())
	assert.True(t, hp.IsConvex())
	for _, v := range p.Vertices {
		assert.True(t, hp.Contains(v), "hull must cover %v", v)
	}
}

func TestConvexHullDegenerate(t *testing.T) {
	assert.Nil(t, Path{}.ConvexHull())
	assert.Nil(t, FromPoints([]math32.Vector2{math32.Vec2(0, 0), math32.Vec2(1, 1)}, false).ConvexHull())

	// all points colinear: no polygon to return
	line := FromPoints([]math32.Vector2{math32.Vec2(0, 0), math32.Vec2(1, 1), math32.Vec2(2, 2), math32.Vec2(3, 3)}, false)
	assert.Nil(t, line.ConvexHull())

	// duplicates keep the lowest index and never repeat in the hull
	dup := FromPoints([]math32.Vector2{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0},
	}, false)
	hull := dup.ConvexHull()
	require.Len(t, hull, 4)
	seen := map[int]bool{}
	for _, i := range hull {
		assert.False(t, seen[i])
		seen[i] = true
		assert.NotEqual(t, 2, i)
		assert.NotEqual(t, 5, i)
	}
}

func TestConvexHullColinearEdge(t *testing.T) {
	// midpoint on the bottom edge must be dropped
	p := FromPoints([]math32.Vector2{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}, false)
	hull := p.ConvexHull()
	require.Len(t, hull, 4)
	assert.NotContains(t, hull, 1)
}

func TestPathTransform(t *testing.T) {
	p := square()
	q := p.Transform(math32.Translate2D(1, 2))
	assert.Equal(t, math32.Vec2(1, 2), q.Vertices[0])
	assert.Equal(t, float32(16), q.Area())

	s := p.Transform(math32.Scale2D(2, 2))
	assert.Equal(t, float32(64), s.Area())

	// original untouched
	assert.Equal(t, math32.Vec2(0, 0), p.Vertices[0])
}

func TestPathReverseCorners(t *testing.T) {
	p := square()
	p.ClearCorner(1)
	r := p.Reverse()
	assert.Equal(t, []int{0, 1, 3}, r.Corners) // corner 1 maps to 2, and 2 is absent
	assert.False(t, r.IsCorner(2))
}

func TestFromFloatsPanics(t *testing.T) {
	assert.Panics(t, func() { FromFloats([]float32{1, 2, 3}) })
}

func TestDataCornerRange(t *testing.T) {
	var p Path
	assert.Error(t, json.Unmarshal([]byte(`{"vertices":[0,0, 4,0, 4,4],"corners":[0,99]}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"vertices":[0,0, 4,0, 4,4],"corners":[-1]}`), &p))
	assert.Error(t, yaml.Unmarshal([]byte("vertices: [0, 0, 4, 0, 4, 4]\ncorners: [3]\n"), &p))

	require.NoError(t, json.Unmarshal([]byte(`{"vertices":[0,0, 4,0, 4,4],"corners":[0,2]}`), &p))
	assert.Equal(t, []int{0, 2}, p.Corners)

	assert.Panics(t, func() {
		FromData(Data{Vertices: []float32{0, 0, 4, 0}, Corners: []int{2}})
	})
}

func TestPathJSON(t *testing.T) {
	p := square()
	p.ClearCorner(3)
	b, err := json.Marshal(p)
	require.NoError(t, err)

	var q Path
	require.NoError(t, json.Unmarshal(b, &q))
	assert.Equal(t, p, q)

	// flat-array form: closed, all corners
	var f Path
	require.NoError(t, json.Unmarshal([]byte(`[0,0, 4,0, 4,4, 0,4]`), &f))
	assert.Equal(t, square(), f)

	assert.Error(t, json.Unmarshal([]byte(`[0,0,4]`), &f))
}

func TestPathYAML(t *testing.T) {
	p := square()
	p.ClearCorner(0)
	b, err := yaml.Marshal(p)
	require.NoError(t, err)

	var q Path
	require.NoError(t, yaml.Unmarshal(b, &q))
	assert.Equal(t, p, q)

	var f Path
	require.NoError(t, yaml.Unmarshal([]byte("[0, 0, 4, 0, 4, 4, 0, 4]"), &f))
	assert.Equal(t, square(), f)
}

func TestPathFiles(t *testing.T) {
	dir := t.TempDir()
	p := square()
	p.ClearCorner(2)

	jf := filepath.Join(dir, "path.json")
	require.NoError(t, p.Save(jf))
	q, err := Open(jf)
	require.NoError(t, err)
	assert.Equal(t, p, q)

	yf := filepath.Join(dir, "path.yaml")
	require.NoError(t, p.Save(yf))
	q, err = Open(yf)
	require.NoError(t, err)
	assert.Equal(t, p, q)

	_, err = Open(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestShapes(t *testing.T) {
	c := Circle(math32.Vec2(1, 1), 2, 0.05)
	assert.True(t, c.Closed)
	assert.Empty(t, c.Corners)
	assert.GreaterOrEqual(t, c.Len(), 8)
	assert.Equal(t, -1, c.Orientation())
	for _, v := range c.Vertices {
		assert.InDelta(t, 2, v.DistanceTo(math32.Vec2(1, 1)), 1.0e-5)
	}
	assert.True(t, Circle(math32.Vector2{}, 0, 0.1).Empty())

	hex := RegularPolygon(math32.Vector2{}, 1, 6, 0)
	assert.Equal(t, 6, hex.Len())
	assert.Len(t, hex.Corners, 6)
	assert.True(t, hex.IsConvex())
	assert.Panics(t, func() { RegularPolygon(math32.Vector2{}, 1, 2, 0) })

	r := FromRect(math32.B2(0, 0, 4, 4))
	assert.Equal(t, float32(16), r.Area())
	assert.True(t, r.IsConvex())
}

func TestArcSegments(t *testing.T) {
	assert.Equal(t, 2, ArcSegments(1, 0.01, 0.25)) // floor of 2
	n := ArcSegments(10, 2*math32.Pi, 0.25)
	assert.Greater(t, n, 8)
	coarse := ArcSegments(10, 2*math32.Pi, 2)
	assert.Less(t, coarse, n) // looser tolerance, fewer segments
}
