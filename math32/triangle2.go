// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Triangle2 represents a 2D triangle made of three vertices.
type Triangle2 struct {
	A Vector2
	B Vector2
	C Vector2
}

// Tri2 returns a new [Triangle2] from the given vertices.
func Tri2(a, b, c Vector2) Triangle2 {
	return Triangle2{a, b, c}
}

// Area returns the signed area of the triangle: positive when
// A, B, C wind counterclockwise (y-up).
func (t Triangle2) Area() float32 {
	return 0.5 * t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

// Barycoord returns the barycentric coordinates (u, v) of the
// specified point for this triangle, such that
// point = A + u*(C-A) + v*(B-A).
// A degenerate (zero-area) triangle yields coordinates outside
// the triangle.
func (t Triangle2) Barycoord(point Vector2) (u, v float32) {
	v0 := t.C.Sub(t.A)
	v1 := t.B.Sub(t.A)
	v2 := point.Sub(t.A)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01

	// colinear or singular triangle
	if denom == 0 {
		return -2, -1
	}

	invDenom := 1 / denom
	u = (dot11*dot02 - dot01*dot12) * invDenom
	v = (dot00*dot12 - dot01*dot02) * invDenom
	return u, v
}

// ContainsPoint returns whether the triangle contains the specified
// point, within the given epsilon tolerance at the edges.
// Points on an edge count as contained.
func (t Triangle2) ContainsPoint(point Vector2, epsilon float32) bool {
	u, v := t.Barycoord(point)
	return u >= -epsilon && v >= -epsilon && u+v <= 1+epsilon
}
