package earclip

import "fmt"

// DumpRing renders the ring starting at start as a table of arena
// fields, one row per vertex. It's meant for diagnosing bad input
// interactively, not for any production code path.
func (a *Arena) DumpRing(start uint32) string {
	if start == nullIdx {
		return "[]"
	}
	s := fmt.Sprintf("%4s %4s %4s %10s %10s %2s\n", "idx", "src", "prev", "x", "y", "st")
	p := start
	for {
		st := " "
		if a.Steiner(p) {
			st = "x"
		}
		s += fmt.Sprintf("%4d %4d %4d %10.4f %10.4f %2s\n", p, a.Src(p), a.Prev(p), a.X(p), a.Y(p), st)
		p = a.Next(p)
		if p == start {
			break
		}
	}
	return s
}

// ringChecksum is a Horner-style rolling hash over a ring's src
// sequence. It is a cheap way for an assertion to notice that a ring
// was corrupted by a bad unlink or splice: comparing a checksum taken
// before and after an operation that should leave membership
// unchanged catches a broken pointer that would otherwise silently
// skip or duplicate a vertex.
func (a *Arena) ringChecksum(start uint32) uint32 {
	if start == nullIdx {
		return 0
	}
	var h uint32
	p := start
	for {
		highOrder := h & 0xf8000000
		h = h << 5
		h = h ^ (highOrder >> 27)
		h = h ^ a.Src(p)
		p = a.Next(p)
		if p == start {
			break
		}
	}
	return h
}
