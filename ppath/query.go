// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"slices"

	"github.com/wispengine/geom/math32"
)

// Area returns the signed area of the polygon over the path's
// vertices, positive for counterclockwise winding (y-up). The vertex
// sequence is treated as a closed loop regardless of the Closed flag,
// so an open path measures the polygon its vertices would enclose.
// Fewer than 3 vertices yield 0.
func (p Path) Area() float32 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	// fan from vertex 0; equivalent to the shoelace sum
	a := float32(0)
	v0 := p.Vertices[0]
	for i := 1; i < n-1; i++ {
		a += p.Vertices[i].Sub(v0).Cross(p.Vertices[i+1].Sub(v0))
	}
	return 0.5 * a
}

// Orientation returns the winding orientation of the path's vertex
// loop: -1 for counterclockwise (y-up), 1 for clockwise, and 0 when
// the vertices are colinear or fewer than 3. The result is computed
// at an extreme vertex, so it is robust to non-convex loops, and its
// sign is always opposite to the sign of [Path.Area].
func (p Path) Orientation() int {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	// the turn at the minimal-x (then minimal-y) vertex decides the
	// winding of the whole loop
	ext := 0
	for i := 1; i < n; i++ {
		v := p.Vertices[i]
		e := p.Vertices[ext]
		if v.X < e.X || (v.X == e.X && v.Y < e.Y) {
			ext = i
		}
	}
	pv := p.Vertices[ext]
	// skip neighbors that coincide with the extreme vertex
	var prev, next math32.Vector2
	found := false
	for k := 1; k < n; k++ {
		prev = p.Vertices[(ext-k+n)%n]
		if !EqualPoint(prev, pv) {
			found = true
			break
		}
	}
	if !found {
		return 0
	}
	found = false
	for k := 1; k < n; k++ {
		next = p.Vertices[(ext+k)%n]
		if !EqualPoint(next, pv) {
			found = true
			break
		}
	}
	if !found {
		return 0
	}
	cross := Turn(prev, pv, next)
	switch {
	case cross > Epsilon:
		return -1
	case cross < -Epsilon:
		return 1
	}
	return 0
}

// LeftTurns returns the number of strictly-left turns along the path.
// A closed path tests every vertex, wrapping around the ends; an open
// path tests only the interior vertices 1..Len-2. Colinear triples
// (within [Epsilon]) do not count.
func (p Path) LeftTurns() int {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	count := 0
	if p.Closed {
		for i := 0; i < n; i++ {
			if IsLeftTurn(p.Vertices[(i+n-1)%n], p.Vertices[i], p.Vertices[(i+1)%n]) {
				count++
			}
		}
	} else {
		for i := 1; i < n-1; i++ {
			if IsLeftTurn(p.Vertices[i-1], p.Vertices[i], p.Vertices[i+1]) {
				count++
			}
		}
	}
	return count
}

// IsConvex returns whether the path is a closed convex loop: every
// vertex is a strictly-left turn, which also implies counterclockwise
// winding. Open paths and paths with fewer than 3 vertices are not
// convex.
func (p Path) IsConvex() bool {
	n := len(p.Vertices)
	if !p.Closed || n < 3 {
		return false
	}
	return p.LeftTurns() == n
}

// Contains returns whether the given point lies inside the closed
// path, using the even-odd rule with a horizontal ray cast. Points on
// an edge or vertex count as contained. Open paths contain nothing.
func (p Path) Contains(pt math32.Vector2) bool {
	n := len(p.Vertices)
	if !p.Closed || n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		if onSegment(p.Vertices[i], p.Vertices[(i+1)%n], pt) {
			return true
		}
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := p.Vertices[i]
		vj := p.Vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) {
			x := vi.X + (pt.Y-vi.Y)/(vj.Y-vi.Y)*(vj.X-vi.X)
			if pt.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// ConvexHull returns the indices of the path's vertices on their
// convex hull, in counterclockwise order (y-up) starting from the
// bottom-most (then left-most) vertex, with colinear and duplicate
// points dropped. When a point appears more than once, the lowest
// index is kept. Fewer than 3 distinct vertices yield nil.
func (p Path) ConvexHull() []int {
	n := len(p.Vertices)
	if n < 3 {
		return nil
	}
	idx := make([]int, 0, n)
	for i := 0; i < n; i++ {
		dup := false
		for _, j := range idx {
			if p.Vertices[j] == p.Vertices[i] {
				dup = true
				break
			}
		}
		if !dup {
			idx = append(idx, i)
		}
	}
	if len(idx) < 3 {
		return nil
	}
	// anchor at the bottom-most, then left-most vertex
	a := idx[0]
	for _, i := range idx[1:] {
		v := p.Vertices[i]
		av := p.Vertices[a]
		if v.Y < av.Y || (v.Y == av.Y && v.X < av.X) {
			a = i
		}
	}
	anchor := p.Vertices[a]
	rest := slices.DeleteFunc(slices.Clone(idx), func(i int) bool { return i == a })
	// sort by polar angle about the anchor; ties by distance, then index
	slices.SortFunc(rest, func(i, j int) int {
		cross := p.Vertices[i].Sub(anchor).Cross(p.Vertices[j].Sub(anchor))
		switch {
		case cross > 0:
			return -1
		case cross < 0:
			return 1
		}
		di := p.Vertices[i].DistanceToSquared(anchor)
		dj := p.Vertices[j].DistanceToSquared(anchor)
		switch {
		case di < dj:
			return -1
		case di > dj:
			return 1
		}
		return i - j
	})
	// for a colinear run the farthest point stays; this happens
	// naturally in the stack scan below, which pops on non-left turns
	hull := make([]int, 0, len(rest)+1)
	hull = append(hull, a)
	for _, i := range rest {
		for len(hull) >= 2 {
			b := p.Vertices[hull[len(hull)-2]]
			c := p.Vertices[hull[len(hull)-1]]
			if Turn(b, c, p.Vertices[i]) > Epsilon {
				break
			}
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, i)
	}
	if len(hull) < 3 {
		return nil
	}
	return hull
}
