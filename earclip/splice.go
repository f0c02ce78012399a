package earclip

import "github.com/aurelien-rainone/assertgo"

// splice links ring vertices av and bv with a bridge, cloning both
// endpoints so the emitted triangle indices still reference the
// original source positions. If av and bv are on the same ring this
// splits it into two; if they belong to different rings it merges them
// into one. It returns the clone of bv (the usual continuation point
// for the caller).
func splice(a *Arena, av, bv uint32) uint32 {
	assert.True(a.verts[a.verts[av].next].prev == av, "splice: ring invariant violated at av")
	assert.True(a.verts[a.verts[bv].next].prev == bv, "splice: ring invariant violated at bv")

	an := a.Next(av) // av's ring successor, before the bridge
	bp := a.Prev(bv) // bv's ring predecessor, before the bridge

	c := a.Insert(a.Src(av), a.X(av), a.Y(av), nullIdx)
	d := a.Insert(a.Src(bv), a.X(bv), a.Y(bv), nullIdx)

	a.verts[av].next = bv
	a.verts[bv].prev = av

	a.verts[c].next = an
	a.verts[an].prev = c

	a.verts[d].next = c
	a.verts[c].prev = d

	a.verts[bp].next = d
	a.verts[d].prev = bp

	return d
}
