// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ppath provides the flattened polyline path type underlying
// the Wisp engine's 2D rendering layer, with per-vertex corner
// annotations and orientation, hull, and containment queries.
//
// A Path is a plain value: it owns its vertex and corner storage,
// copies deeply via [Path.Clone], and has no internal pointers, so a
// computed path may be shared across goroutines once mutation stops.
package ppath

import (
	"fmt"
	"slices"

	"github.com/wispengine/geom/base/slicesx"
	"github.com/wispengine/geom/math32"
)

// Path is an ordered sequence of 2D vertices with a set of corner
// annotations and a closed flag. Corners mark vertices that receive a
// sharp joint during stroke extrusion instead of a smooth one; the set
// is membership-only, with no ordering guarantees beyond the sorted
// storage. Every corner index is < len(Vertices).
type Path struct {

	// Vertices is the ordered vertex sequence.
	Vertices []math32.Vector2

	// Corners is the sorted set of vertex indices flagged as corners.
	Corners []int

	// Closed indicates that the last vertex connects back to the first.
	Closed bool
}

// New returns a new empty open path with capacity for n vertices.
func New(n int) *Path {
	return &Path{Vertices: make([]math32.Vector2, 0, n)}
}

// FromPoints returns a new path over the given points, copied.
// No vertices are flagged as corners.
func FromPoints(points []math32.Vector2, closed bool) Path {
	return Path{Vertices: slices.Clone(points), Closed: closed}
}

// FromRect returns a new closed path tracing the given box
// counterclockwise (y-up) from its minimum point, with every vertex
// flagged as a corner.
func FromRect(b math32.Box2) Path {
	return Path{
		Vertices: []math32.Vector2{
			b.Min,
			{X: b.Max.X, Y: b.Min.Y},
			b.Max,
			{X: b.Min.X, Y: b.Max.Y},
		},
		Corners: []int{0, 1, 2, 3},
		Closed:  true,
	}
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	return Path{
		Vertices: slices.Clone(p.Vertices),
		Corners:  slices.Clone(p.Corners),
		Closed:   p.Closed,
	}
}

// Len returns the number of vertices.
func (p Path) Len() int {
	return len(p.Vertices)
}

// Empty returns whether the path has no vertices.
func (p Path) Empty() bool {
	return len(p.Vertices) == 0
}

func (p Path) String() string {
	return fmt.Sprintf("Path{%d vertices, %d corners, closed: %v}", len(p.Vertices), len(p.Corners), p.Closed)
}

// IsCorner returns whether the vertex at the given index is flagged
// as a corner.
func (p Path) IsCorner(i int) bool {
	_, ok := slices.BinarySearch(p.Corners, i)
	return ok
}

// SetCorner flags the vertex at the given index as a corner.
// The index must be in range.
func (p *Path) SetCorner(i int) {
	p.boundsCheck(i)
	p.Corners = slicesx.InsertOrdered(p.Corners, i)
}

// ClearCorner removes the corner flag from the vertex at the given
// index, if set.
func (p *Path) ClearCorner(i int) {
	if j, ok := slices.BinarySearch(p.Corners, i); ok {
		p.Corners = slices.Delete(p.Corners, j, j+1)
	}
}

// Push appends the given vertices to the path.
func (p *Path) Push(points ...math32.Vector2) {
	p.Vertices = append(p.Vertices, points...)
}

// PushCorner appends the given vertex and flags it as a corner.
func (p *Path) PushCorner(pt math32.Vector2) {
	p.Vertices = append(p.Vertices, pt)
	p.Corners = append(p.Corners, len(p.Vertices)-1)
}

// Insert inserts the given vertex at the given index, shifting every
// corner index >= i up by one and leaving lower indices untouched.
// The index may be len(Vertices), which is equivalent to [Path.Push].
func (p *Path) Insert(i int, pt math32.Vector2) {
	if i < 0 || i > len(p.Vertices) {
		panic(fmt.Sprintf("ppath.Path.Insert: index %d out of range [0,%d]", i, len(p.Vertices)))
	}
	p.Vertices = slices.Insert(p.Vertices, i, pt)
	p.shiftCorners(i, 1)
}

// Remove removes and returns the vertex at the given index, dropping
// its corner flag and shifting every corner index > i down by one.
// Lower indices are untouched.
func (p *Path) Remove(i int) math32.Vector2 {
	p.boundsCheck(i)
	pt := p.Vertices[i]
	p.Vertices = slices.Delete(p.Vertices, i, i+1)
	p.ClearCorner(i)
	p.shiftCorners(i+1, -1)
	return pt
}

// Pop removes and returns the last vertex, dropping its corner flag.
// An empty path yields the zero vector.
func (p *Path) Pop() math32.Vector2 {
	if len(p.Vertices) == 0 {
		return math32.Vector2{}
	}
	return p.Remove(len(p.Vertices) - 1)
}

// shiftCorners shifts every corner index >= from by delta,
// preserving the sorted order.
func (p *Path) shiftCorners(from, delta int) {
	for j := len(p.Corners) - 1; j >= 0; j-- {
		if p.Corners[j] < from {
			break
		}
		p.Corners[j] += delta
	}
}

// Slice returns a new open sub-path over the vertex range
// [start, end), with corner indices remapped relative to start.
// The range must satisfy 0 <= start <= end <= Len.
func (p Path) Slice(start, end int) Path {
	if start < 0 || end < start || end > len(p.Vertices) {
		panic(fmt.Sprintf("ppath.Path.Slice: range [%d,%d) out of range [0,%d)", start, end, len(p.Vertices)))
	}
	sub := Path{Vertices: slices.Clone(p.Vertices[start:end])}
	for _, c := range p.Corners {
		if c >= start && c < end {
			sub.Corners = append(sub.Corners, c-start)
		}
	}
	return sub
}

// Reverse returns the path with its vertex order reversed, corner
// flags following their vertices. Orientation flips accordingly.
func (p Path) Reverse() Path {
	n := len(p.Vertices)
	r := Path{Vertices: make([]math32.Vector2, n), Closed: p.Closed}
	for i, v := range p.Vertices {
		r.Vertices[n-1-i] = v
	}
	for j := len(p.Corners) - 1; j >= 0; j-- {
		r.Corners = append(r.Corners, n-1-p.Corners[j])
	}
	return r
}

// Transform returns the path with every vertex transformed by the
// given matrix.
func (p Path) Transform(m math32.Matrix2) Path {
	r := p.Clone()
	for i, v := range r.Vertices {
		r.Vertices[i] = m.MulVector2AsPoint(v)
	}
	return r
}

// Bounds returns the bounding box of the path's vertices.
// An empty path yields the empty box ([math32.B2Empty]).
func (p Path) Bounds() math32.Box2 {
	b := math32.B2Empty()
	b.SetFromPoints(p.Vertices)
	return b
}

func (p Path) boundsCheck(i int) {
	if i < 0 || i >= len(p.Vertices) {
		panic(fmt.Sprintf("ppath.Path: index %d out of range [0,%d)", i, len(p.Vertices)))
	}
}
