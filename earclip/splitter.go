package earclip

// splitEarcut is the last-resort fallback pass: it searches for a valid
// interior diagonal, splices the ring into two along it, filters both
// halves around the cut, and recurses pass 0 into each. It emits no
// triangles itself.
func splitEarcut(ctx *BuildContext, a *Arena, start uint32, emit emitFunc, minX, minY, inv float64) {
	av := start
	for {
		bv := a.Next(a.Next(av))
		for bv != a.Prev(av) {
			if a.Src(av) != a.Src(bv) && isValidDiagonal(a, av, bv) {
				c := splice(a, av, bv)
				av = filterPoints(a, av, a.Next(av))
				c = filterPoints(a, c, a.Next(c))
				earcutLinked(ctx, a, av, emit, minX, minY, inv, 0)
				earcutLinked(ctx, a, c, emit, minX, minY, inv, 0)
				return
			}
			bv = a.Next(bv)
		}
		av = a.Next(av)
		if av == start {
			break
		}
	}
	ctx.Warningf("no valid diagonal found, dropping remaining ring")
}

// isValidDiagonal reports whether (x,y) is a diagonal that lies in the
// polygon's interior: neither endpoint's ring neighbour is the other
// endpoint's source vertex, the diagonal crosses no polygon edge, it
// leaves both endpoints locally inside, and its midpoint falls inside
// the polygon.
func isValidDiagonal(a *Arena, x, y uint32) bool {
	return a.Src(a.Next(x)) != a.Src(y) &&
		a.Src(a.Prev(x)) != a.Src(y) &&
		a.Src(a.Next(y)) != a.Src(x) &&
		a.Src(a.Prev(y)) != a.Src(x) &&
		!intersectsPolygon(a, x, y) &&
		a.locallyInside(x, y) &&
		a.locallyInside(y, x) &&
		a.middleInside(x, y)
}

// intersectsPolygon reports whether diagonal (x,y) pseudo-intersects
// any edge of the ring containing x. Edges with an endpoint whose
// source vertex is x's or y's are skipped.
func intersectsPolygon(a *Arena, x, y uint32) bool {
	p := x
	for {
		n := a.Next(p)
		if a.Src(p) != a.Src(x) && a.Src(n) != a.Src(x) &&
			a.Src(p) != a.Src(y) && a.Src(n) != a.Src(y) &&
			a.pseudoIntersects(p, n, x, y) {
			return true
		}
		p = n
		if p == x {
			break
		}
	}
	return false
}
