// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tripoly provides the triangulated polygon: a vertex sequence
// plus a flat triangle index buffer, as produced by an external
// triangulator, with containment queries and boundary extraction
// (detriangulation) over the triangle adjacency graph.
package tripoly

import (
	"fmt"

	"github.com/wispengine/geom/math32"
	"github.com/wispengine/geom/ppath"
)

// Triangulator is the contract for external triangulation algorithms
// (ear clipping, Delaunay). Given a vertex sequence and an optional
// list of hole start offsets into it, it returns a flat triangle
// index buffer: length a multiple of 3, each consecutive triple one
// triangle, wound counterclockwise (y-up) for filled area.
type Triangulator interface {
	Triangulate(vertices []math32.Vector2, holes []int) []int32
}

// TriPoly is a triangulated polygon: vertices plus a flat triangle
// index buffer whose length is a multiple of 3. Winding order and
// manifoldness are not enforced; triangulators are trusted. Plain
// value semantics: copy deeply via [TriPoly.Clone].
type TriPoly struct {

	// Vertices is the vertex sequence.
	Vertices []math32.Vector2

	// Indices is the flat triangle index buffer; each consecutive
	// triple names one triangle by vertex index.
	Indices []int32
}

// New returns a new triangulated polygon over the given vertices and
// index buffer. The index buffer length must be a multiple of 3 and
// every index must be in range.
func New(vertices []math32.Vector2, indices []int32) TriPoly {
	if len(indices)%3 != 0 {
		panic(fmt.Sprintf("tripoly.New: index count %d not a multiple of 3", len(indices)))
	}
	for _, ix := range indices {
		if ix < 0 || int(ix) >= len(vertices) {
			panic(fmt.Sprintf("tripoly.New: index %d out of range [0,%d)", ix, len(vertices)))
		}
	}
	return TriPoly{Vertices: vertices, Indices: indices}
}

// FromPath returns a new triangulated polygon over the given path's
// vertices, with the index buffer produced by the given triangulator.
func FromPath(p ppath.Path, tr Triangulator) TriPoly {
	return New(p.Vertices, tr.Triangulate(p.Vertices, nil))
}

// Clone returns a deep copy.
func (tp TriPoly) Clone() TriPoly {
	vs := make([]math32.Vector2, len(tp.Vertices))
	copy(vs, tp.Vertices)
	ix := make([]int32, len(tp.Indices))
	copy(ix, tp.Indices)
	return TriPoly{Vertices: vs, Indices: ix}
}

// NumTriangles returns the number of triangles.
func (tp TriPoly) NumTriangles() int {
	return len(tp.Indices) / 3
}

// Triangle returns triangle i as a [math32.Triangle2].
// The index must be in range.
func (tp TriPoly) Triangle(i int) math32.Triangle2 {
	if i < 0 || i >= tp.NumTriangles() {
		panic(fmt.Sprintf("tripoly.TriPoly.Triangle: index %d out of range [0,%d)", i, tp.NumTriangles()))
	}
	return math32.Tri2(
		tp.Vertices[tp.Indices[3*i]],
		tp.Vertices[tp.Indices[3*i+1]],
		tp.Vertices[tp.Indices[3*i+2]],
	)
}

// Bounds returns the bounding box of the vertices, including any the
// index buffer does not reference.
func (tp TriPoly) Bounds() math32.Box2 {
	b := math32.B2Empty()
	b.SetFromPoints(tp.Vertices)
	return b
}

// Contains returns whether the given point lies inside any triangle
// of the mesh, by barycentric test. Note that this rule can disagree
// with [ppath.Path.Contains] (even-odd over the path boundary) when
// the mesh is not a faithful triangulation of the path; both rules
// are kept as-is.
func (tp TriPoly) Contains(pt math32.Vector2) bool {
	for i := 0; i < tp.NumTriangles(); i++ {
		if tp.Triangle(i).ContainsPoint(pt, ppath.Epsilon) {
			return true
		}
	}
	return false
}
