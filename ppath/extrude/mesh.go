// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extrude

import (
	"slices"

	"github.com/wispengine/geom/math32"
	"github.com/wispengine/geom/ppath"
)

// Mesh is an indexed triangle mesh in a renderer-consumable layout:
// counterclockwise (y-up) triangles over a flat vertex buffer, with a
// parallel side tag per vertex. The tag's X is -1/0/+1 for
// left/interior/right of the stroke, supporting single-tint or
// separate inner/outer (fringe) coloring; Y is -1/+1 on the head/tail
// vertices of round caps and 0 elsewhere.
type Mesh struct {
	Vertices []math32.Vector2
	Indices  []int32
	Sides    []math32.Vector2i
}

// Empty returns whether the mesh has no triangles.
func (m Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// Mesh returns the calculated stroke mesh. The buffers are views of
// the extruder's own, valid until the next calculation.
func (ex *Extruder) Mesh() Mesh {
	return Mesh{Vertices: ex.verts, Indices: ex.indices, Sides: ex.sides}
}

// Boundary returns the stroke outline as raw boundary paths: for a
// closed path the left and right offset loops, each closed; for an
// open path one closed loop of the left side stitched to the reversed
// right side. Round cap and joint arc vertices interior to the mesh
// are part of the mesh only, not the outline. An empty result yields
// nil.
func (ex *Extruder) Boundary() []ppath.Path {
	if len(ex.verts) == 0 {
		return nil
	}
	if ex.path.Closed {
		left := ppath.FromPoints(ex.left, true)
		right := ppath.FromPoints(ex.right, true)
		return []ppath.Path{left, right.Reverse()}
	}
	return []ppath.Path{ex.outline()}
}

// Polygon returns the stroke outline as a single combined path: the
// stitched loop for an open path, or the outer offset loop for a
// closed one. A counterclockwise path keeps its interior on the left
// of travel, so its outer loop is the right side.
func (ex *Extruder) Polygon() ppath.Path {
	if len(ex.verts) == 0 {
		return ppath.Path{}
	}
	if !ex.path.Closed {
		return ex.outline()
	}
	if ex.path.Orientation() > 0 {
		return ppath.FromPoints(ex.left, true)
	}
	return ppath.FromPoints(ex.right, true).Reverse()
}

func (ex *Extruder) outline() ppath.Path {
	pts := slices.Clone(ex.left)
	for i := len(ex.right) - 1; i >= 0; i-- {
		pts = append(pts, ex.right[i])
	}
	return ppath.Path{Vertices: pts, Closed: true}
}

// Stroke extrudes the path with the given total stroke width and
// returns the mesh, running one full analyze and calculate pass.
func Stroke(p ppath.Path, width float32, opts Options) Mesh {
	ex := New(p, opts)
	ex.Calculate(width/2, width/2)
	return ex.Mesh()
}
