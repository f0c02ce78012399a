package earclip

import "testing"

func TestArenaInsertFormsCycle(t *testing.T) {
	a := newArena(1)
	v := a.Insert(0, 1, 2, nullIdx)
	if a.Next(v) != v || a.Prev(v) != v {
		t.Fatalf("single insert should self-cycle, got next=%d prev=%d", a.Next(v), a.Prev(v))
	}
}

func TestArenaInsertAfterSplices(t *testing.T) {
	a := newArena(3)
	v0 := a.Insert(0, 0, 0, nullIdx)
	v1 := a.Insert(1, 1, 0, v0)
	v2 := a.Insert(2, 1, 1, v1)

	order := []uint32{}
	a.eachRing(v0, func(idx uint32) { order = append(order, idx) })
	if len(order) != 3 || order[0] != v0 || order[1] != v1 || order[2] != v2 {
		t.Fatalf("unexpected ring order: %v", order)
	}
}

func TestArenaUnlinkRepairsRing(t *testing.T) {
	a := newArena(3)
	v0 := a.Insert(0, 0, 0, nullIdx)
	v1 := a.Insert(1, 1, 0, v0)
	v2 := a.Insert(2, 1, 1, v1)

	a.Unlink(v1)

	if a.Next(v0) != v2 || a.Prev(v2) != v0 {
		t.Fatalf("unlink did not repair neighbours: next(v0)=%d prev(v2)=%d", a.Next(v0), a.Prev(v2))
	}
}

func TestArenaUnlinkIsIdempotent(t *testing.T) {
	a := newArena(3)
	v0 := a.Insert(0, 0, 0, nullIdx)
	v1 := a.Insert(1, 1, 0, v0)
	_ = a.Insert(2, 1, 1, v1)

	a.Unlink(v1)
	next, prev := a.Next(v0), a.Prev(v0)
	a.Unlink(v1) // must be a no-op the second time
	if a.Next(v0) != next || a.Prev(v0) != prev {
		t.Fatalf("second unlink mutated the ring")
	}
}

func TestArenaSteinerFlag(t *testing.T) {
	a := newArena(1)
	v := a.Insert(0, 0, 0, nullIdx)
	if a.Steiner(v) {
		t.Fatal("steiner should default to false")
	}
	a.SetSteiner(v, true)
	if !a.Steiner(v) {
		t.Fatal("SetSteiner did not stick")
	}
}
