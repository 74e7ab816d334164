// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import "github.com/wispengine/geom/math32"

var (
	// Epsilon is the tolerance below which a coordinate difference or a
	// cross product is assumed to be zero, in path units. It is an
	// implementation constant: triangulated output depends on it
	// numerically, so it should not be changed per call.
	Epsilon = float32(1e-6)

	// Tolerance is the default maximum deviation from an ideal circular
	// arc when flattening round shapes, joints, and caps.
	Tolerance = float32(0.25)
)

// Equal returns true if a and b are equal within an absolute
// tolerance of [Epsilon].
func Equal(a, b float32) bool {
	// avoid math32.Abs
	if a < b {
		return b-a <= Epsilon
	}
	return a-b <= Epsilon
}

// EqualPoint returns true if the points a and b are equal within an
// absolute tolerance of [Epsilon] on each coordinate.
func EqualPoint(a, b math32.Vector2) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// Turn returns the cross product of the edges (b-a) and (c-b):
// positive when the triple makes a left (counterclockwise, y-up) turn,
// negative for a right turn, and near zero when colinear.
func Turn(a, b, c math32.Vector2) float32 {
	return b.Sub(a).Cross(c.Sub(b))
}

// IsLeftTurn returns whether the triple a, b, c makes a strict left
// turn, using [Epsilon] as the colinearity threshold.
func IsLeftTurn(a, b, c math32.Vector2) bool {
	return Turn(a, b, c) > Epsilon
}

// ArcSegments returns the number of line segments needed to
// approximate a circular arc of the given radius and angular extent
// (radians) such that the segments deviate from the arc by at most
// tolerance. The result is always at least 2.
func ArcSegments(radius, arc, tolerance float32) int {
	if radius <= 0 || tolerance <= 0 {
		return 2
	}
	da := 2 * math32.Acos(radius/(radius+tolerance))
	n := int(math32.Ceil(math32.Abs(arc) / da))
	return max(n, 2)
}

// AngleNorm returns the angle theta normalized to the range [0, 2PI).
func AngleNorm(theta float32) float32 {
	theta = math32.Mod(theta, 2*math32.Pi)
	if theta < 0 {
		theta += 2 * math32.Pi
	}
	return theta
}

// onSegment returns whether point p lies on the segment from a to b,
// within [Epsilon].
func onSegment(a, b, p math32.Vector2) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)
	segLen := ab.Length()
	if segLen <= Epsilon {
		return EqualPoint(a, p)
	}
	// perpendicular distance from the segment's line
	if math32.Abs(ab.Cross(ap))/segLen > Epsilon {
		return false
	}
	t := ab.Dot(ap) / (segLen * segLen)
	return t >= -Epsilon && t <= 1+Epsilon
}
