package earclip

// filterPoints walks the ring from start, dropping any non-steiner
// vertex that coincides with its successor or is colinear with its
// neighbours, until a full loop produces no removal or the ring
// collapses to two or fewer vertices. It returns the (possibly moved)
// end marker, which the caller should treat as its new sweep start.
func filterPoints(a *Arena, start, end uint32) uint32 {
	if start == nullIdx {
		return start
	}
	if end == nullIdx {
		end = start
	}

	p := start
	again := false
	for {
		again = false
		if !a.Steiner(p) && (a.equals(p, a.Next(p)) || a.A(a.Prev(p), p, a.Next(p)) == 0) {
			a.Unlink(p)
			end = a.Prev(p)
			p = a.Prev(p)
			if p == a.Next(p) {
				break
			}
			again = true
		} else {
			p = a.Next(p)
		}
		if !again && p == end {
			break
		}
	}
	return end
}

// cureLocalIntersections scans the ring from start for small
// self-intersecting triples (a=prev(p), p, next(p), b=next(next(p))):
// whenever the pair of segments (a,p) and (next(p),b) pseudo-intersect
// and both endpoints are locally inside toward each other, it emits
// triangle (a,p,b), removes p and next(p), and restarts scanning from
// b. It stops after a complete loop with no change.
func cureLocalIntersections(a *Arena, start uint32, emit func(x, y, z uint32)) uint32 {
	p := start
	for {
		av := a.Prev(p)
		nv := a.Next(p)
		bv := a.Next(nv)

		if !a.equals(av, bv) &&
			a.pseudoIntersects(av, p, nv, bv) &&
			a.locallyInside(av, bv) &&
			a.locallyInside(bv, av) {
			emit(av, p, bv)

			a.Unlink(p)
			a.Unlink(nv)

			p = bv
			start = bv
		}
		p = a.Next(p)
		if p == start {
			break
		}
	}
	return p
}
