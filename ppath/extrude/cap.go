// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extrude

import (
	"github.com/wispengine/geom/math32"
)

// capStart emits the start cap of an open path: the initial offset
// pair, plus the half-circle fan behind it for round caps. Square
// caps shift the pair backward by half the stroke width first.
func (ex *Extruder) capStart(p *point, wl, wr float32) {
	d := p.dir
	l := d.Rot90CCW()
	pos := p.pos
	if ex.Opts.Cap == CapSquare {
		pos = pos.Sub(d.MulScalar(0.5 * (wl + wr)))
	}
	ex.emitLeft(pos.Add(l.MulScalar(wl)), 0)
	ex.emitRight(pos.Sub(l.MulScalar(wr)), 0)
	if ex.Opts.Cap != CapRound {
		return
	}
	// fan a half circle from the left offset around the back to the
	// right offset; arc and center vertices carry the head tag
	r := 0.5 * (wl + wr)
	c := pos.Add(l.MulScalar(0.5 * (wl - wr)))
	ci := ex.addVert(c, math32.Vec2i(0, -1))
	a0 := l.Angle()
	prev := ex.prevL
	for k := 1; k <= ex.ncap; k++ {
		a := a0 + math32.Pi*float32(k)/float32(ex.ncap)
		ix := ex.prevR
		if k < ex.ncap {
			ix = ex.addVert(c.Add(math32.Vector2Polar(a, r)), math32.Vec2i(0, -1))
		}
		ex.tri(ci, prev, ix)
		prev = ix
	}
}

// capEnd emits the end cap of an open path: the final offset pair
// closing the last segment, plus the forward half-circle fan for
// round caps.
func (ex *Extruder) capEnd(p *point, wl, wr float32) {
	d := p.dir
	l := d.Rot90CCW()
	pos := p.pos
	if ex.Opts.Cap == CapSquare {
		pos = pos.Add(d.MulScalar(0.5 * (wl + wr)))
	}
	ex.emitLeft(pos.Add(l.MulScalar(wl)), 0)
	ex.emitRight(pos.Sub(l.MulScalar(wr)), 0)
	if ex.Opts.Cap != CapRound {
		return
	}
	r := 0.5 * (wl + wr)
	c := pos.Add(l.MulScalar(0.5 * (wl - wr)))
	ci := ex.addVert(c, math32.Vec2i(0, 1))
	a0 := l.Angle()
	prev := ex.prevL
	for k := 1; k <= ex.ncap; k++ {
		a := a0 - math32.Pi*float32(k)/float32(ex.ncap)
		ix := ex.prevR
		if k < ex.ncap {
			ix = ex.addVert(c.Add(math32.Vector2Polar(a, r)), math32.Vec2i(0, 1))
		}
		ex.tri(ci, ix, prev)
		prev = ix
	}
}
