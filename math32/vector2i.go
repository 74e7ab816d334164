// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "image"

// Vector2i is a 2D vector/point with int32 X and Y components.
type Vector2i struct {
	X int32
	Y int32
}

// Vec2i returns a new [Vector2i] with the given x and y components.
func Vec2i(x, y int32) Vector2i {
	return Vector2i{x, y}
}

// Vector2iScalar returns a new [Vector2i] with all components set to
// the given scalar value.
func Vector2iScalar(scalar int32) Vector2i {
	return Vector2i{scalar, scalar}
}

// Set sets this vector's X and Y components.
func (v *Vector2i) Set(x, y int32) {
	v.X = x
	v.Y = y
}

// ToVector2 returns the float32 [Vector2] version of this vector.
func (v Vector2i) ToVector2() Vector2 {
	return Vec2(float32(v.X), float32(v.Y))
}

// ToPoint returns this vector as an [image.Point].
func (v Vector2i) ToPoint() image.Point {
	return image.Pt(int(v.X), int(v.Y))
}

// Add returns the vector sum of this vector and other.
func (v Vector2i) Add(other Vector2i) Vector2i {
	return Vec2i(v.X+other.X, v.Y+other.Y)
}

// Sub returns the vector difference of this vector and other.
func (v Vector2i) Sub(other Vector2i) Vector2i {
	return Vec2i(v.X-other.X, v.Y-other.Y)
}

// Negate returns the vector with each component negated.
func (v Vector2i) Negate() Vector2i {
	return Vec2i(-v.X, -v.Y)
}
