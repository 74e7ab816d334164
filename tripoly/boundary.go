// Copyright (c) 2026, Wisp Engine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tripoly

import (
	"slices"

	"github.com/wispengine/geom/logx"
	"github.com/wispengine/geom/ppath"
)

// Boundaries recovers the ordered boundary loops of the mesh: the
// inverse of triangulation. Each loop is a cycle of vertex indices
// tracing one connected exterior or hole contour, in boundary-edge
// order. The algorithm is purely structural over the triangle
// adjacency (dual) graph and never inspects coordinates, so a loop's
// winding follows the walk direction, not the triangle winding;
// callers needing a fixed orientation can check with
// [ppath.Path.Orientation] and reverse. A mesh with no boundary
// (every edge shared) yields no loops; indices unreachable from any
// boundary are skipped.
func (tp TriPoly) Boundaries() [][]int32 {
	ex := newExtractor(tp.Indices)
	return ex.extract()
}

// BoundaryPaths returns the boundary loops as closed paths over the
// mesh's vertices, with every loop vertex flagged as a corner.
func (tp TriPoly) BoundaryPaths() []ppath.Path {
	loops := tp.Boundaries()
	if len(loops) == 0 {
		return nil
	}
	paths := make([]ppath.Path, len(loops))
	for li, loop := range loops {
		p := ppath.New(len(loop))
		p.Closed = true
		for _, ix := range loop {
			p.PushCorner(tp.Vertices[ix])
		}
		paths[li] = *p
	}
	return paths
}

// dualNode is one distinct triangle of the mesh: its vertex indices
// in sorted order (structural identity) and the arena handles of the
// triangles sharing exactly 2 of its 3 indices. Traversal state lives
// out-of-band in the extractor, never in the node.
type dualNode struct {
	tri [3]int32
	nbs []int
}

func (n *dualNode) has(ix int32) bool {
	return n.tri[0] == ix || n.tri[1] == ix || n.tri[2] == ix
}

// shared returns how many vertex indices two triangles have in common.
func (n *dualNode) shared(o *dualNode) int {
	c := 0
	for _, ix := range n.tri {
		if o.has(ix) {
			c++
		}
	}
	return c
}

// extractor holds the dual-node arena and the traversal state for one
// extraction pass.
type extractor struct {
	nodes []dualNode

	// used holds every vertex index already emitted into a loop.
	used map[int32]bool

	// total is the number of distinct vertex indices the triangles
	// reference.
	total int
}

func newExtractor(indices []int32) *extractor {
	ex := &extractor{used: make(map[int32]bool)}
	seen := map[[3]int32]bool{}
	all := map[int32]bool{}
	for i := 0; i+2 < len(indices); i += 3 {
		tri := [3]int32{indices[i], indices[i+1], indices[i+2]}
		slices.Sort(tri[:])
		all[tri[0]], all[tri[1]], all[tri[2]] = true, true, true
		if seen[tri] {
			continue
		}
		seen[tri] = true
		ex.nodes = append(ex.nodes, dualNode{tri: tri})
	}
	ex.total = len(all)
	for i := range ex.nodes {
		for j := i + 1; j < len(ex.nodes); j++ {
			if ex.nodes[i].shared(&ex.nodes[j]) == 2 {
				ex.nodes[i].nbs = append(ex.nodes[i].nbs, j)
				ex.nodes[j].nbs = append(ex.nodes[j].nbs, i)
			}
		}
	}
	return ex
}

// neighborCount returns how many of node h's neighbors also contain
// the given index. A boundary index appears in at most one, seen from
// any one of its triangles at the end of its fan.
func (ex *extractor) neighborCount(h int, ix int32) int {
	c := 0
	for _, nb := range ex.nodes[h].nbs {
		if ex.nodes[nb].has(ix) {
			c++
		}
	}
	return c
}

// boundaryEdge returns whether the edge (a, b) of node h lies on the
// mesh boundary: no neighbor of h contains both endpoints.
func (ex *extractor) boundaryEdge(h int, a, b int32) bool {
	for _, nb := range ex.nodes[h].nbs {
		if ex.nodes[nb].has(a) && ex.nodes[nb].has(b) {
			return false
		}
	}
	return true
}

// follow walks from node h along the fan of triangles containing ix,
// never immediately backtracking, and returns the far (transition)
// triangle of the fan. A cyclic fan (ix fully interior) terminates at
// the last unseen node.
func (ex *extractor) follow(h int, ix int32) int {
	seen := map[int]bool{h: true}
	for {
		next := -1
		for _, nb := range ex.nodes[h].nbs {
			if !seen[nb] && ex.nodes[nb].has(ix) {
				next = nb
				break
			}
		}
		if next < 0 {
			return h
		}
		seen[next] = true
		h = next
	}
}

// pick scans all nodes for a startable (node, index) pair: an unused
// index that, among its own node's neighbors, appears at most once.
func (ex *extractor) pick() (int, int32, bool) {
	for h := range ex.nodes {
		for _, ix := range ex.nodes[h].tri {
			if !ex.used[ix] && ex.neighborCount(h, ix) <= 1 {
				return h, ix, true
			}
		}
	}
	return -1, 0, false
}

// next picks the successor boundary index at node h: unvisited,
// unused, forming a boundary edge with the previous index, and itself
// a boundary index of h.
func (ex *extractor) next(h int, prev int32, visited map[int32]bool) (int32, bool) {
	for _, ix := range ex.nodes[h].tri {
		if ix == prev || visited[ix] || ex.used[ix] {
			continue
		}
		if ex.neighborCount(h, ix) <= 1 && ex.boundaryEdge(h, prev, ix) {
			return ix, true
		}
	}
	return 0, false
}

func (ex *extractor) extract() [][]int32 {
	var loops [][]int32
	for len(ex.used) < ex.total {
		h, ix, ok := ex.pick()
		if !ok {
			// the remaining indices are strictly interior
			if len(ex.used) > 0 {
				logx.Debug("boundary extraction stopped with interior indices remaining",
					"used", len(ex.used), "total", ex.total)
			}
			break
		}
		loop := ex.walk(h, ix)
		for _, v := range loop {
			ex.used[v] = true
		}
		// the walk collects indices against the loop's edge order;
		// reverse before returning
		slices.Reverse(loop)
		loops = append(loops, loop)
	}
	return loops
}

// walk traces one boundary loop starting from the picked (node,
// index) pair: append the index, follow its fan to the transition
// triangle, pick the successor there, and repeat until no successor
// remains. The local visited set tolerates self-touching meshes.
func (ex *extractor) walk(h int, ix int32) []int32 {
	visited := map[int32]bool{ix: true}
	loop := []int32{ix}
	for {
		h = ex.follow(h, ix)
		nx, ok := ex.next(h, ix, visited)
		if !ok {
			return loop
		}
		visited[nx] = true
		loop = append(loop, nx)
		ix = nx
	}
}
