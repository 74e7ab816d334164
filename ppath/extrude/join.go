// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extrude

import (
	"github.com/wispengine/geom/math32"
)

// joinBevel emits a flat bevel joint: two offset vertices along the
// two edge perpendiculars on the outer side, and a single miter
// vertex on the inner side. An inner joint instead gets both edge
// offsets on the inner side with a pinch vertex at the path point
// between them, so the two stroke sides cannot overlap.
func (ex *Extruder) joinBevel(p0, p1 *point, wl, wr float32) {
	l0 := p0.dir.Rot90CCW()
	l1 := p1.dir.Rot90CCW()
	if p1.flags&ptLeft != 0 {
		ex.emitLeft(p1.pos.Add(l0.MulScalar(wl)), 0)
		if p1.flags&ptInnerBevel != 0 {
			ex.emitRight(p1.pos.Sub(l0.MulScalar(wr)), 0)
			ex.emitCenter(p1.pos)
			ex.emitLeft(p1.pos.Add(l1.MulScalar(wl)), 0)
			ex.emitRight(p1.pos.Sub(l1.MulScalar(wr)), 0)
		} else {
			ex.emitRight(p1.pos.Sub(p1.dm.MulScalar(wr)), 0)
			ex.emitLeft(p1.pos.Add(l1.MulScalar(wl)), 0)
		}
		return
	}
	ex.emitRight(p1.pos.Sub(l0.MulScalar(wr)), 0)
	if p1.flags&ptInnerBevel != 0 {
		ex.emitLeft(p1.pos.Add(l0.MulScalar(wl)), 0)
		ex.emitCenterLeft(p1.pos)
		ex.emitRight(p1.pos.Sub(l1.MulScalar(wr)), 0)
		ex.emitLeft(p1.pos.Add(l1.MulScalar(wl)), 0)
	} else {
		ex.emitLeft(p1.pos.Add(p1.dm.MulScalar(wl)), 0)
		ex.emitRight(p1.pos.Sub(l1.MulScalar(wr)), 0)
	}
}

// emitCenterLeft is emitCenter on the left-hand running edge.
func (ex *Extruder) emitCenterLeft(pos math32.Vector2) {
	ix := ex.addVert(pos, math32.Vector2i{})
	if ex.prevL >= 0 && ex.prevR >= 0 {
		ex.tri(ex.prevL, ex.prevR, ix)
	}
	ex.prevL = ix
	if ex.firstL < 0 {
		ex.firstL = ix
	}
}

// joinRound sweeps an arc between the incoming and outgoing
// perpendiculars on the outer side of the joint, fanning against a
// single inner vertex. The arc resolution follows the tolerance
// heuristic, clamped to [2, ncap] segments by the sweep fraction of a
// half turn.
func (ex *Extruder) joinRound(p0, p1 *point, wl, wr float32) {
	l0 := p0.dir.Rot90CCW()
	l1 := p1.dir.Rot90CCW()
	if p1.flags&ptLeft != 0 {
		// left outer side sweeps clockwise
		a0 := l0.Angle()
		delta := l1.Angle() - a0
		if delta > 0 {
			delta -= 2 * math32.Pi
		}
		n := math32.Clamp(int(math32.Ceil(-delta/math32.Pi*float32(ex.ncap))), 2, ex.ncap)
		ex.emitLeft(p1.pos.Add(l0.MulScalar(wl)), 0)
		if p1.flags&ptInnerBevel != 0 {
			ex.emitCenter(p1.pos)
		} else {
			ex.emitRight(p1.pos.Sub(p1.dm.MulScalar(wr)), 0)
		}
		for k := 1; k <= n; k++ {
			a := a0 + delta*float32(k)/float32(n)
			ex.emitLeft(p1.pos.Add(math32.Vector2Polar(a, wl)), 0)
		}
		return
	}
	// right outer side sweeps counterclockwise
	r0 := l0.Negate()
	a0 := r0.Angle()
	delta := l1.Negate().Angle() - a0
	if delta < 0 {
		delta += 2 * math32.Pi
	}
	n := math32.Clamp(int(math32.Ceil(delta/math32.Pi*float32(ex.ncap))), 2, ex.ncap)
	ex.emitRight(p1.pos.Add(r0.MulScalar(wr)), 0)
	if p1.flags&ptInnerBevel != 0 {
		ex.emitCenterLeft(p1.pos)
	} else {
		ex.emitLeft(p1.pos.Add(p1.dm.MulScalar(wl)), 0)
	}
	for k := 1; k <= n; k++ {
		a := a0 + delta*float32(k)/float32(n)
		ex.emitRight(p1.pos.Add(math32.Vector2Polar(a, wr)), 0)
	}
}
