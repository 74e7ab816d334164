// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"fmt"

	"github.com/wispengine/geom/math32"
)

// Circle returns a closed counterclockwise path approximating a
// circle with the given center and radius, flattened to the given
// tolerance via [ArcSegments]. No vertex is flagged as a corner, so a
// stroked circle gets smooth joints everywhere. A non-positive radius
// yields an empty path.
func Circle(center math32.Vector2, radius, tolerance float32) Path {
	return Ellipse(center, math32.Vec2(radius, radius), tolerance)
}

// Ellipse returns a closed counterclockwise path approximating an
// axis-aligned ellipse with the given center and radii, flattened to
// the given tolerance. Segment count follows the smaller radius.
// A non-positive radius yields an empty path.
func Ellipse(center, radii math32.Vector2, tolerance float32) Path {
	if radii.X <= 0 || radii.Y <= 0 {
		return Path{}
	}
	n := ArcSegments(math32.Min(radii.X, radii.Y), 2*math32.Pi, tolerance)
	p := Path{Vertices: make([]math32.Vector2, n), Closed: true}
	for i := 0; i < n; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(n)
		sin, cos := math32.Sincos(theta)
		p.Vertices[i] = math32.Vec2(center.X+radii.X*cos, center.Y+radii.Y*sin)
	}
	return p
}

// RegularPolygon returns a closed counterclockwise path tracing a
// regular polygon with n sides inscribed in the circle of the given
// center and radius, with the first vertex at the given start angle
// in radians. Every vertex is flagged as a corner. n must be at
// least 3.
func RegularPolygon(center math32.Vector2, radius float32, n int, startAngle float32) Path {
	if n < 3 {
		panic(fmt.Sprintf("ppath.RegularPolygon: need at least 3 sides, got %d", n))
	}
	p := Path{
		Vertices: make([]math32.Vector2, n),
		Corners:  make([]int, n),
		Closed:   true,
	}
	for i := 0; i < n; i++ {
		theta := startAngle + 2*math32.Pi*float32(i)/float32(n)
		p.Vertices[i] = center.Add(math32.Vector2Polar(theta, radius))
		p.Corners[i] = i
	}
	return p
}
