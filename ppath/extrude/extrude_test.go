// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extrude

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wispengine/geom/math32"
	"github.com/wispengine/geom/ppath"
)

func line2() ppath.Path {
	return ppath.FromPoints([]math32.Vector2{math32.Vec2(0, 0), math32.Vec2(4, 0)}, false)
}

func ccwSquare() ppath.Path {
	return ppath.FromFloats([]float32{0, 0, 4, 0, 4, 4, 0, 4})
}

// assertCCW checks that every triangle of the mesh has non-negative
// signed area.
func assertCCW(t *testing.T, m Mesh) {
	t.Helper()
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]]
		b := m.Vertices[m.Indices[i+1]]
		c := m.Vertices[m.Indices[i+2]]
		area := b.Sub(a).Cross(c.Sub(a))
		// inner-joint pinch triangles are degenerate, allow a little
		// negative noise
		assert.GreaterOrEqual(t, area, float32(-1.0e-4), "triangle %d winds clockwise", i/3)
	}
}

func TestStraightButt(t *testing.T) {
	m := Stroke(line2(), 2, DefaultOptions())
	require.Len(t, m.Vertices, 4)
	require.Len(t, m.Indices, 6)
	assertCCW(t, m)

	assert.Equal(t, math32.Vec2(0, 1), m.Vertices[0])
	assert.Equal(t, math32.Vec2(0, -1), m.Vertices[1])
	assert.Equal(t, math32.Vec2(4, 1), m.Vertices[2])
	assert.Equal(t, math32.Vec2(4, -1), m.Vertices[3])

	assert.Equal(t, []math32.Vector2i{
		math32.Vec2i(-1, 0), math32.Vec2i(1, 0), math32.Vec2i(-1, 0), math32.Vec2i(1, 0),
	}, m.Sides)
}

func TestSquareCap(t *testing.T) {
	opts := DefaultOptions()
	opts.Cap = CapSquare
	m := Stroke(line2(), 2, opts)
	require.Len(t, m.Vertices, 4)
	require.Len(t, m.Indices, 6)
	assertCCW(t, m)

	// extended by half the stroke width on both ends
	assert.Equal(t, math32.Vec2(-1, 1), m.Vertices[0])
	assert.Equal(t, math32.Vec2(5, -1), m.Vertices[3])
}

func TestRoundCap(t *testing.T) {
	opts := DefaultOptions()
	opts.Cap = CapRound
	ex := New(line2(), opts)
	ex.Calculate(1, 1)
	m := ex.Mesh()

	ncap := ppath.ArcSegments(1, math32.Pi, opts.Tolerance)
	require.Len(t, m.Vertices, 2*(ncap+2))
	require.Len(t, m.Indices, 3*(2+2*ncap))
	assertCCW(t, m)

	// cap centers and arc vertices carry the head/tail tag
	heads, tails := 0, 0
	for _, s := range m.Sides {
		switch s.Y {
		case -1:
			heads++
		case 1:
			tails++
		}
	}
	assert.Equal(t, ncap, heads)
	assert.Equal(t, ncap, tails)

	// every vertex is either a cap center or on the stroke circle
	// around its endpoint
	for i, v := range m.Vertices {
		d := math32.Min(v.DistanceTo(math32.Vec2(0, 0)), v.DistanceTo(math32.Vec2(4, 0)))
		if d > 1.0e-5 {
			assert.InDelta(t, 1, d, 1.0e-5, "vertex %d off the cap circle", i)
		}
	}
}

func TestClosedMiterSquare(t *testing.T) {
	ex := New(ccwSquare(), DefaultOptions())
	assert.Equal(t, 0, ex.Analyze(0.5))
	assert.True(t, ex.Convex)

	ex.Calculate(0.5, 0.5)
	m := ex.Mesh()
	require.Len(t, m.Vertices, 8)
	require.Len(t, m.Indices, 24)
	assertCCW(t, m)

	// miter points sit on the 45s: left offsets inside, right outside
	assert.Equal(t, math32.Vec2(0.5, 0.5), m.Vertices[0])
	assert.Equal(t, math32.Vec2(-0.5, -0.5), m.Vertices[1])
}

func TestClosedBevelSquare(t *testing.T) {
	opts := DefaultOptions()
	opts.Join = JoinBevel
	ex := New(ccwSquare(), opts)
	assert.Equal(t, 4, ex.Analyze(0.5))

	ex.Calculate(0.5, 0.5)
	m := ex.Mesh()
	require.Len(t, m.Vertices, 12) // 3 per beveled corner
	require.Len(t, m.Indices, 36)
	assertCCW(t, m)
}

func TestMiterLimitFallsBackToBevel(t *testing.T) {
	opts := DefaultOptions()
	opts.MiterLimit = 1
	ex := New(ccwSquare(), opts)
	// a 90 degree miter has magnitude sqrt(2), past a limit of 1
	assert.Equal(t, 4, ex.Analyze(0.5))
}

func TestRoundJoinSquare(t *testing.T) {
	opts := DefaultOptions()
	opts.Join = JoinRound
	ex := New(ccwSquare(), opts)
	ex.Calculate(0.5, 0.5)
	m := ex.Mesh()
	require.Len(t, m.Vertices, 16) // ncap+2 = 4 per corner at this width
	assertCCW(t, m)
}

func TestInnerJoin(t *testing.T) {
	// sharp hairpin: the miter at (4,0) would reach past the short
	// return segment
	p := ppath.FromPoints([]math32.Vector2{math32.Vec2(0, 0), math32.Vec2(4, 0), math32.Vec2(0, 1)}, false)
	ex := New(p, DefaultOptions())
	assert.Equal(t, 1, ex.Analyze(1))

	ex.Calculate(0.5, 0.5)
	m := ex.Mesh()
	assert.False(t, m.Empty())
	assertCCW(t, m)

	// overlap mode skips the inner treatment entirely
	fast := DefaultOptions()
	fast.Overlap = true
	exf := New(p, fast)
	assert.Equal(t, 0, exf.Analyze(1))
}

func TestVertexCountFormula(t *testing.T) {
	paths := map[string]ppath.Path{
		"line":    line2(),
		"square":  ccwSquare(),
		"hairpin": ppath.FromPoints([]math32.Vector2{math32.Vec2(0, 0), math32.Vec2(8, 0), math32.Vec2(0, 1.5)}, false),
		"hex":     ppath.RegularPolygon(math32.Vector2{}, 4, 6, 0),
	}
	for _, join := range []Joins{JoinMiter, JoinRound, JoinBevel} {
		for _, cp := range []Caps{CapButt, CapRound, CapSquare} {
			for name, p := range paths {
				opts := DefaultOptions()
				opts.Join = join
				opts.Cap = cp
				ex := New(p, opts)
				ex.Calculate(0.5, 0.5)
				est := ex.estimateVerts()
				assert.LessOrEqual(t, len(ex.verts), est,
					"%s join=%d cap=%d overflows the size formula", name, join, cp)
				assert.Equal(t, est, cap(ex.verts),
					"%s join=%d cap=%d reallocated mid-walk", name, join, cp)
			}
		}
	}
}

func TestCalculateIdempotent(t *testing.T) {
	ex := New(ccwSquare(), DefaultOptions())
	ex.Calculate(0.5, 0.5)
	m1 := ex.Mesh()
	ex.Calculate(0.5, 0.5)
	m2 := ex.Mesh()
	assert.Same(t, &m1.Vertices[0], &m2.Vertices[0])

	// a width change recomputes
	ex.Calculate(1, 1)
	m3 := ex.Mesh()
	require.Len(t, m3.Vertices, 8)
	assert.Equal(t, math32.Vec2(1, 1), m3.Vertices[0])
}

func TestDegenerate(t *testing.T) {
	assert.True(t, Stroke(ppath.Path{}, 2, DefaultOptions()).Empty())

	single := ppath.FromPoints([]math32.Vector2{math32.Vec2(1, 1)}, false)
	assert.True(t, Stroke(single, 2, DefaultOptions()).Empty())

	// zero total width is legal and empty
	ex := New(line2(), DefaultOptions())
	ex.Calculate(0, 0)
	assert.True(t, ex.Mesh().Empty())

	// consecutive duplicate points collapse
	dup := ppath.FromPoints([]math32.Vector2{math32.Vec2(0, 0), math32.Vec2(0, 0), math32.Vec2(4, 0)}, false)
	m := Stroke(dup, 2, DefaultOptions())
	require.Len(t, m.Vertices, 4)
}

func TestCalculatePanics(t *testing.T) {
	assert.Panics(t, func() { Stroke(line2(), 10, DefaultOptions()) }) // radius past half the bounds
	assert.Panics(t, func() {
		ex := New(line2(), DefaultOptions())
		ex.Calculate(-1, 1)
	})
}

func TestBoundaryOpen(t *testing.T) {
	ex := New(line2(), DefaultOptions())
	ex.Calculate(1, 1)
	bs := ex.Boundary()
	require.Len(t, bs, 1)
	b := bs[0]
	assert.True(t, b.Closed)
	assert.Equal(t, 4, b.Len())
	assert.InDelta(t, 8, math32.Abs(b.Area()), 1.0e-5)

	assert.Equal(t, b, ex.Polygon())
}

func TestBoundaryClosed(t *testing.T) {
	ex := New(ccwSquare(), DefaultOptions())
	ex.Calculate(0.5, 0.5)
	bs := ex.Boundary()
	require.Len(t, bs, 2)
	inner, outer := bs[0], bs[1]
	assert.InDelta(t, 9, math32.Abs(inner.Area()), 1.0e-5)
	assert.InDelta(t, 25, math32.Abs(outer.Area()), 1.0e-5)

	// the outer loop for a counterclockwise path is the right side
	assert.InDelta(t, 25, math32.Abs(ex.Polygon().Area()), 1.0e-5)
}

func TestConvexAnalysis(t *testing.T) {
	notch := ppath.FromPoints([]math32.Vector2{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 2, Y: 1}, {X: 0, Y: 4},
	}, true)
	ex := New(notch, DefaultOptions())
	ex.Analyze(0.25)
	assert.False(t, ex.Convex)

	ex = New(ccwSquare(), DefaultOptions())
	ex.Analyze(0.25)
	assert.True(t, ex.Convex)

	// orientation does not matter for convexity
	ex = New(ccwSquare().Reverse(), DefaultOptions())
	ex.Analyze(0.25)
	assert.True(t, ex.Convex)
}
