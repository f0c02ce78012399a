package earclip

import "github.com/aurelien-rainone/assertgo"

// vertex is one ring position, stored by value in Arena.verts and
// addressed by its slice index. Records are never moved or reused once
// appended; unlink only severs the prev/next/zprev/znext links that
// point at the record, per the arena's lifecycle contract.
type vertex struct {
	src uint32 // offset into the input flat coordinate array
	x, y float64

	prev, next uint32 // geometric ring neighbours
	z          uint32 // Morton code, valid once indexed
	zprev, znext uint32 // z-order chain neighbours

	steiner bool // never filtered out by colinearity/duplicate rules
	zValid  bool // z has been assigned
	removed bool // unlink has already run; guards double removal
}

// Arena owns every vertex record created during one triangulation call.
// Indices are stable for the arena's lifetime: nothing is moved, and
// nothing is reused after unlink.
type Arena struct {
	verts []vertex
}

// newArena returns an empty Arena with room for n vertices.
func newArena(n int) *Arena {
	return &Arena{verts: make([]vertex, 0, n)}
}

// Insert appends a new record and splices it immediately after `after`
// in the geometric ring (or forms a one-element cycle if after is
// nullIdx). It returns the new record's arena index.
func (a *Arena) Insert(src uint32, x, y float64, after uint32) uint32 {
	idx := uint32(len(a.verts))
	a.verts = append(a.verts, vertex{
		src: src, x: x, y: y,
		prev: idx, next: idx,
		zprev: nullIdx, znext: nullIdx,
	})
	if after != nullIdx {
		v := &a.verts[idx]
		an := &a.verts[after]
		v.next = an.next
		v.prev = after
		a.verts[an.next].prev = idx
		an.next = idx
	}
	return idx
}

// Unlink removes idx from the geometric ring and, if present, the
// z-order chain, updating all four neighbour pointers. It is safe to
// call more than once on the same index.
func (a *Arena) Unlink(idx uint32) {
	v := &a.verts[idx]
	if v.removed {
		return
	}
	assert.True(a.verts[v.next].prev == idx, "unlink: ring invariant violated before removal")

	a.verts[v.next].prev = v.prev
	a.verts[v.prev].next = v.next

	if v.zprev != nullIdx {
		a.verts[v.zprev].znext = v.znext
	}
	if v.znext != nullIdx {
		a.verts[v.znext].zprev = v.zprev
	}
	v.removed = true
}

func (a *Arena) Prev(idx uint32) uint32 { return a.verts[idx].prev }
func (a *Arena) Next(idx uint32) uint32 { return a.verts[idx].next }
func (a *Arena) X(idx uint32) float64   { return a.verts[idx].x }
func (a *Arena) Y(idx uint32) float64   { return a.verts[idx].y }
func (a *Arena) Src(idx uint32) uint32  { return a.verts[idx].src }

func (a *Arena) Steiner(idx uint32) bool     { return a.verts[idx].steiner }
func (a *Arena) SetSteiner(idx uint32, v bool) { a.verts[idx].steiner = v }

func (a *Arena) ZPrev(idx uint32) uint32 { return a.verts[idx].zprev }
func (a *Arena) ZNext(idx uint32) uint32 { return a.verts[idx].znext }

func (a *Arena) hasZ(idx uint32) bool { return a.verts[idx].zValid }
func (a *Arena) zCode(idx uint32) uint32 { return a.verts[idx].z }
func (a *Arena) setZCode(idx uint32, z uint32) {
	a.verts[idx].z = z
	a.verts[idx].zValid = true
}

// len reports how many records have ever been appended, including
// unlinked ones.
func (a *Arena) len() int { return len(a.verts) }

// eachRing calls fn once for every live index in the ring starting at
// start, stopping when the walk returns to start.
func (a *Arena) eachRing(start uint32, fn func(idx uint32)) {
	if start == nullIdx {
		return
	}
	p := start
	for {
		fn(p)
		p = a.Next(p)
		if p == start {
			break
		}
	}
}
