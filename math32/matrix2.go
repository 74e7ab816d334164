// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix2 is a 3x2 affine transformation matrix for 2D points,
// stored column-major: the transformed point is
// (XX*x + XY*y + X0, YX*x + YY*y + Y0).
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{XX: 1, YY: 1}
}

// Translate2D returns a [Matrix2] translating by (x, y).
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{XX: 1, YY: 1, X0: x, Y0: y}
}

// Scale2D returns a [Matrix2] scaling by (x, y).
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{XX: x, YY: y}
}

// Rotate2D returns a [Matrix2] rotating counterclockwise (y-up) by
// the angle in radians.
func Rotate2D(angle float32) Matrix2 {
	sin, cos := Sincos(angle)
	return Matrix2{XX: cos, YX: sin, XY: -sin, YY: cos}
}

// IsIdentity returns whether this matrix is the identity.
func (m Matrix2) IsIdentity() bool {
	return m == Identity2()
}

// Mul returns this matrix times the other matrix; the resulting
// transform applies other first, then this matrix.
func (m Matrix2) Mul(other Matrix2) Matrix2 {
	return Matrix2{
		XX: m.XX*other.XX + m.XY*other.YX,
		YX: m.YX*other.XX + m.YY*other.YX,
		XY: m.XX*other.XY + m.XY*other.YY,
		YY: m.YX*other.XY + m.YY*other.YY,
		X0: m.XX*other.X0 + m.XY*other.Y0 + m.X0,
		Y0: m.YX*other.X0 + m.YY*other.Y0 + m.Y0,
	}
}

// MulVector2AsPoint returns the given point transformed by this matrix,
// including the translation component.
func (m Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vec2(m.XX*v.X+m.XY*v.Y+m.X0, m.YX*v.X+m.YY*v.Y+m.Y0)
}

// MulVector2AsVector returns the given vector transformed by this matrix,
// without the translation component.
func (m Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vec2(m.XX*v.X+m.XY*v.Y, m.YX*v.X+m.YY*v.Y)
}

// Translate returns this matrix composed with a translation by (x, y).
func (m Matrix2) Translate(x, y float32) Matrix2 {
	return m.Mul(Translate2D(x, y))
}

// Scale returns this matrix composed with a scale by (x, y).
func (m Matrix2) Scale(x, y float32) Matrix2 {
	return m.Mul(Scale2D(x, y))
}

// Rotate returns this matrix composed with a rotation by the angle
// in radians.
func (m Matrix2) Rotate(angle float32) Matrix2 {
	return m.Mul(Rotate2D(angle))
}

// Determinant returns the determinant of the linear part of this matrix.
func (m Matrix2) Determinant() float32 {
	return m.XX*m.YY - m.XY*m.YX
}

// Inverse returns the inverse of this matrix.
// A singular matrix yields the identity.
func (m Matrix2) Inverse() Matrix2 {
	det := m.Determinant()
	if det == 0 {
		return Identity2()
	}
	inv := 1 / det
	return Matrix2{
		XX: m.YY * inv,
		YX: -m.YX * inv,
		XY: -m.XY * inv,
		YY: m.XX * inv,
		X0: (m.XY*m.Y0 - m.YY*m.X0) * inv,
		Y0: (m.YX*m.X0 - m.XX*m.Y0) * inv,
	}
}

// ExtractRot extracts the rotation angle in radians from this matrix.
func (m Matrix2) ExtractRot() float32 {
	return Atan2(m.YX, m.XX)
}
