// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extrude converts a path plus a stroke width into an indexed
// triangle mesh with configurable joint and cap styles. One
// [Extruder] runs a single analyze/calculate pass over its path and
// exposes the resulting vertex, index, and side-tag buffers; results
// are plain data, safe to share once calculation completes, but a
// fresh calculation must not run concurrently with one in progress.
package extrude

import (
	"fmt"

	"github.com/wispengine/geom/math32"
	"github.com/wispengine/geom/ppath"
)

// Caps specifies the end-cap style closing an open stroke.
type Caps int32

const (

	// CapButt cuts the stroke flat at the path endpoint.
	CapButt Caps = iota

	// CapRound closes the stroke with a half circle.
	CapRound

	// CapSquare extends the stroke past the endpoint by half the
	// stroke width before cutting it flat.
	CapSquare
)

// Joins specifies the joint style at path corners.
type Joins int32

const (

	// JoinMiter extends the edges to a sharp point, falling back to a
	// bevel past the miter limit.
	JoinMiter Joins = iota

	// JoinRound sweeps an arc around the outside of the corner.
	JoinRound

	// JoinBevel cuts the corner with a flat edge.
	JoinBevel
)

// Options configure one extrusion pass.
type Options struct {

	// Join is the joint style at corner-flagged path vertices.
	Join Joins

	// Cap is the end-cap style for open paths.
	Cap Caps

	// Tolerance is the maximum deviation of round joints and caps
	// from a true circle; 0 uses [ppath.Tolerance].
	Tolerance float32

	// MiterLimit is the miter magnitude, relative to the stroke
	// width, beyond which a miter degrades to a bevel; 0 uses 4.
	MiterLimit float32

	// Overlap skips the self-intersection treatment of inner corners,
	// producing the mesh faster but allowing triangles to overlap at
	// sharp inside turns.
	Overlap bool
}

// DefaultOptions returns the default extrusion options: miter joints,
// butt caps.
func DefaultOptions() Options {
	return Options{Tolerance: ppath.Tolerance, MiterLimit: 4}
}

// miterScaleLimit clamps the miter offset scale at near-180 degree
// turns, where the averaged perpendicular collapses toward zero.
const miterScaleLimit = 600

// point flags
const (
	ptCorner uint8 = 1 << iota // sharp joint per the path's corner set
	ptLeft                     // the left side is the outside of the turn
	ptBevel                    // joint needs bevel or round treatment
	ptInnerBevel               // miter would cross the opposite side
)

// point is one path vertex annotated for extrusion: the unit
// direction and length to the next point, the scale-limited averaged
// perpendicular (miter) direction, and the joint flags.
type point struct {
	pos   math32.Vector2
	dir   math32.Vector2
	len   float32
	dm    math32.Vector2
	flags uint8
}

// Extruder generates a stroke mesh from one path. Construct with
// [New], then call [Extruder.Calculate]; the output accessors return
// views of the internal buffers, valid until the next calculation.
type Extruder struct {

	// Opts are the extrusion options, fixed at construction.
	Opts Options

	// Convex reports, after analysis, whether the closed path turns
	// the same way at every joint. This deliberately accepts either
	// winding rather than left turns only, so a reversed convex path
	// is still convex.
	Convex bool

	path   ppath.Path
	points []point
	nbevel int
	ncap   int

	analyzed   bool
	calculated bool
	lastWL     float32
	lastWR     float32

	verts   []math32.Vector2
	sides   []math32.Vector2i
	indices []int32
	left    []math32.Vector2
	right   []math32.Vector2

	prevL, prevR   int32
	firstL, firstR int32
}

// New returns a new extruder over the given path. Zero option fields
// take their defaults.
func New(p ppath.Path, opts Options) *Extruder {
	if opts.Tolerance <= 0 {
		opts.Tolerance = ppath.Tolerance
	}
	if opts.MiterLimit <= 0 {
		opts.MiterLimit = 4
	}
	return &Extruder{Opts: opts, path: p}
}

// Analyze classifies every joint of the path for the given stroke
// half-width and returns the number of joints needing bevel or round
// treatment, which drives output buffer sizing. [Extruder.Calculate]
// runs it implicitly when needed.
func (ex *Extruder) Analyze(width float32) int {
	ex.buildPoints()
	ex.analyzed = true
	ex.calculated = false
	ex.nbevel = 0
	ex.Convex = false
	np := len(ex.points)
	if np < 2 {
		return 0
	}
	closed := ex.path.Closed

	for i := 0; i < np; i++ {
		j := i + 1
		if j == np {
			if !closed {
				// the final point keeps the incoming direction for
				// the end cap
				ex.points[i].dir = ex.points[i-1].dir
				continue
			}
			j = 0
		}
		d := ex.points[j].pos.Sub(ex.points[i].pos)
		ex.points[i].len = d.Length()
		ex.points[i].dir = d.Normal()
	}

	iw := float32(0)
	if width > 0 {
		iw = 1 / width
	}
	nleft := 0
	start, end := 1, np-1
	if closed {
		start, end = 0, np
	}
	for i := start; i < end; i++ {
		p0 := &ex.points[(i-1+np)%np]
		p1 := &ex.points[i]
		l0 := p0.dir.Rot90CCW()
		l1 := p1.dir.Rot90CCW()

		dm := l0.Add(l1).MulScalar(0.5)
		dmr2 := dm.LengthSquared()
		if dmr2 > ppath.Epsilon {
			scale := math32.Min(1/dmr2, miterScaleLimit)
			dm = dm.MulScalar(scale)
		}
		p1.dm = dm

		p1.flags &= ptCorner
		if p0.dir.Cross(p1.dir) < 0 {
			p1.flags |= ptLeft
			nleft++
		}
		if !ex.Opts.Overlap {
			// an inner joint: the miter offset would cross past the
			// shorter adjacent segment
			limit := math32.Max(1.01, math32.Min(p0.len, p1.len)*iw)
			if dmr2*limit*limit < 1 {
				p1.flags |= ptInnerBevel
			}
		}
		if p1.flags&ptCorner != 0 {
			if ex.Opts.Join != JoinMiter || dmr2*ex.Opts.MiterLimit*ex.Opts.MiterLimit < 1 {
				p1.flags |= ptBevel
			}
		}
		if p1.flags&(ptBevel|ptInnerBevel) != 0 {
			ex.nbevel++
		}
	}
	njoints := end - start
	ex.Convex = closed && (nleft == njoints || nleft == 0)
	return ex.nbevel
}

// buildPoints copies the path vertices into the point buffer,
// collapsing consecutive duplicates and the wrapped duplicate of a
// closed path, and carrying the corner flags over.
func (ex *Extruder) buildPoints() {
	ex.points = ex.points[:0]
	vs := ex.path.Vertices
	for i, v := range vs {
		if len(ex.points) > 0 && ppath.EqualPoint(ex.points[len(ex.points)-1].pos, v) {
			continue
		}
		pt := point{pos: v}
		if ex.path.IsCorner(i) {
			pt.flags = ptCorner
		}
		ex.points = append(ex.points, pt)
	}
	if ex.path.Closed && len(ex.points) > 1 &&
		ppath.EqualPoint(ex.points[0].pos, ex.points[len(ex.points)-1].pos) {
		ex.points = ex.points[:len(ex.points)-1]
	}
}

// Calculate materializes the stroke mesh for the given left and right
// half-widths. It is idempotent: a repeat call with unchanged widths
// is a no-op. A path of fewer than 2 distinct points or a zero total
// width yields an empty result. The widths must be non-negative and
// their maximum must not exceed half the larger dimension of the
// path's bounding box.
func (ex *Extruder) Calculate(leftWidth, rightWidth float32) {
	if leftWidth < 0 || rightWidth < 0 {
		panic(fmt.Sprintf("extrude.Extruder.Calculate: negative width (%v, %v)", leftWidth, rightWidth))
	}
	if ex.calculated && leftWidth == ex.lastWL && rightWidth == ex.lastWR {
		return
	}
	if !ex.analyzed {
		ex.Analyze(math32.Max(leftWidth, rightWidth))
	}
	ex.lastWL, ex.lastWR = leftWidth, rightWidth
	ex.calculated = true
	ex.verts = nil
	ex.sides = nil
	ex.indices = nil
	ex.left = nil
	ex.right = nil

	np := len(ex.points)
	if np < 2 || leftWidth+rightWidth <= 0 {
		return
	}
	r := math32.Max(leftWidth, rightWidth)
	sz := ex.path.Bounds().Size()
	if 2*r > math32.Max(sz.X, sz.Y) {
		panic(fmt.Sprintf("extrude.Extruder.Calculate: stroke radius %v exceeds half the path bounds %v", r, sz))
	}

	ex.ncap = ppath.ArcSegments(0.5*(leftWidth+rightWidth), math32.Pi, ex.Opts.Tolerance)
	cv := ex.estimateVerts()
	ex.verts = make([]math32.Vector2, 0, cv)
	ex.sides = make([]math32.Vector2i, 0, cv)
	ex.indices = make([]int32, 0, 3*(cv+2))
	ex.prevL, ex.prevR = -1, -1
	ex.firstL, ex.firstR = -1, -1

	if ex.path.Closed {
		for i := 0; i < np; i++ {
			ex.joint(i, leftWidth, rightWidth)
		}
		// wrap-around stitch: close the final segment onto the first
		// emitted pair, no back-filling pass needed
		ex.tri(ex.prevL, ex.prevR, ex.firstL)
		ex.tri(ex.prevR, ex.firstR, ex.firstL)
	} else {
		ex.capStart(&ex.points[0], leftWidth, rightWidth)
		for i := 1; i < np-1; i++ {
			ex.joint(i, leftWidth, rightWidth)
		}
		ex.capEnd(&ex.points[np-1], leftWidth, rightWidth)
	}
}

// estimateVerts returns the closed-form output vertex bound used to
// size the buffers: 2 per plain joint, up to 5 per beveled joint
// (ncap+2 when round), and ncap+2 per round cap. The walk must never
// exceed it.
func (ex *Extruder) estimateVerts() int {
	np := len(ex.points)
	jb := 5
	if ex.Opts.Join == JoinRound {
		jb = ex.ncap + 2
	}
	if ex.path.Closed {
		return 2*(np-ex.nbevel) + jb*ex.nbevel
	}
	capCost := 2
	if ex.Opts.Cap == CapRound {
		capCost = ex.ncap + 2
	}
	return 2*capCost + 2*(np-2-ex.nbevel) + jb*ex.nbevel
}

// joint emits the geometry for interior point i: a single offset pair
// for plain miters, or the configured joint treatment for flagged
// corners and inner joints.
func (ex *Extruder) joint(i int, wl, wr float32) {
	np := len(ex.points)
	p0 := &ex.points[(i-1+np)%np]
	p1 := &ex.points[i]
	if p1.flags&(ptBevel|ptInnerBevel) != 0 {
		if ex.Opts.Join == JoinRound {
			ex.joinRound(p0, p1, wl, wr)
		} else {
			ex.joinBevel(p0, p1, wl, wr)
		}
		return
	}
	ex.emitLeft(p1.pos.Add(p1.dm.MulScalar(wl)), 0)
	ex.emitRight(p1.pos.Sub(p1.dm.MulScalar(wr)), 0)
}

// addVert appends one output vertex with its side tag and returns its
// index.
func (ex *Extruder) addVert(pos math32.Vector2, side math32.Vector2i) int32 {
	ex.verts = append(ex.verts, pos)
	ex.sides = append(ex.sides, side)
	return int32(len(ex.verts) - 1)
}

func (ex *Extruder) tri(a, b, c int32) {
	ex.indices = append(ex.indices, a, b, c)
}

// emitLeft appends a left-side vertex and, once a trailing pair
// exists, one triangle connecting it to the running edge. The y tag
// marks head/tail position on round caps.
func (ex *Extruder) emitLeft(pos math32.Vector2, ytag int32) {
	ix := ex.addVert(pos, math32.Vec2i(-1, ytag))
	ex.left = append(ex.left, pos)
	if ex.prevL >= 0 && ex.prevR >= 0 {
		ex.tri(ex.prevL, ex.prevR, ix)
	}
	ex.prevL = ix
	if ex.firstL < 0 {
		ex.firstL = ix
	}
}

// emitRight appends a right-side vertex, mirroring emitLeft.
func (ex *Extruder) emitRight(pos math32.Vector2, ytag int32) {
	ix := ex.addVert(pos, math32.Vec2i(1, ytag))
	ex.right = append(ex.right, pos)
	if ex.prevL >= 0 && ex.prevR >= 0 {
		ex.tri(ex.prevR, ix, ex.prevL)
	}
	ex.prevR = ix
	if ex.firstR < 0 {
		ex.firstR = ix
	}
}

// emitCenter appends an interior vertex on the right-hand running
// edge, used to pinch inner joints so the two sides cannot overlap.
func (ex *Extruder) emitCenter(pos math32.Vector2) {
	ix := ex.addVert(pos, math32.Vector2i{})
	if ex.prevL >= 0 && ex.prevR >= 0 {
		ex.tri(ex.prevR, ix, ex.prevL)
	}
	ex.prevR = ix
	if ex.firstR < 0 {
		ex.firstR = ix
	}
}
