package earclip

// emitFunc receives the three arena indices of one emitted triangle, in
// ring order.
type emitFunc func(x, y, z uint32)

// earcutLinked is the main ear-slicing loop, porting mapbox/earcut's
// earcutLinked: it walks the ring starting at ear, emitting triangles
// for every valid ear it finds, and escalates through the fallback
// chain {filter, cure, split} whenever a full sweep produces none.
// pass tracks which stage of the chain is active; it only ever
// increases within one recursion tree, a small state machine with no
// reverse edges.
func earcutLinked(ctx *BuildContext, a *Arena, ear uint32, emit emitFunc, minX, minY, inv float64, pass int) {
	if ear == nullIdx {
		return
	}

	if pass == 0 && inv != 0 && moreThanOneTriangle(a, ear) {
		ctx.StartTimer(TimerIndexCurve)
		indexCurve(a, ear, minX, minY, inv)
		ctx.StopTimer(TimerIndexCurve)
	}

	stop := ear
	for a.Prev(ear) != a.Next(ear) {
		prevV := a.Prev(ear)
		nextV := a.Next(ear)

		var isEarVertex bool
		if inv != 0 {
			isEarVertex = isEarHashed(a, ear, minX, minY, inv)
		} else {
			isEarVertex = isEar(a, ear)
		}

		if isEarVertex {
			emit(prevV, ear, nextV)
			a.Unlink(ear)
			// Skipping the next vertex leads to fewer sliver triangles.
			ear = a.Next(nextV)
			stop = a.Next(nextV)
			continue
		}

		ear = nextV
		if ear == stop {
			switch pass {
			case 0:
				ctx.Progressf("ear sweep stalled, filtering colinear/duplicate points")
				earcutLinked(ctx, a, filterPoints(a, ear, nullIdx), emit, minX, minY, inv, 1)
			case 1:
				ctx.Progressf("filter pass stalled, curing local self-intersections")
				cured := cureLocalIntersections(a, ear, emit)
				earcutLinked(ctx, a, cured, emit, minX, minY, inv, 2)
			case 2:
				ctx.Progressf("local repair stalled, splitting polygon")
				splitEarcut(ctx, a, ear, emit, minX, minY, inv)
			}
			return
		}
	}
}

// moreThanOneTriangle reports whether the ring starting at start has
// more than three vertices.
func moreThanOneTriangle(a *Arena, start uint32) bool {
	p := start
	for i := 0; i < 3; i++ {
		p = a.Next(p)
		if p == start {
			return false
		}
	}
	return true
}

// isEar reports whether ear forms a valid ear by scanning every other
// live ring vertex for containment (the linear ear test).
func isEar(a *Arena, ear uint32) bool {
	prevV, nextV := a.Prev(ear), a.Next(ear)
	if a.A(prevV, ear, nextV) >= 0 {
		return false // reflex, can't be an ear
	}

	ax, ay := a.X(prevV), a.Y(prevV)
	bx, by := a.X(ear), a.Y(ear)
	cx, cy := a.X(nextV), a.Y(nextV)

	p := a.Next(nextV)
	for p != prevV {
		if pointInTriangle(ax, ay, bx, by, cx, cy, a.X(p), a.Y(p)) && a.reflex(p) {
			return false
		}
		p = a.Next(p)
	}
	return true
}

// isEarHashed is the z-order-accelerated ear test: it walks the z-chain
// outward from ear in both directions, bounding the walk to the
// triangle bbox's Morton code range, and must be semantically
// equivalent to isEar on every input the index covers.
func isEarHashed(a *Arena, ear uint32, minX, minY, inv float64) bool {
	prevV, nextV := a.Prev(ear), a.Next(ear)
	if a.A(prevV, ear, nextV) >= 0 {
		return false
	}

	ax, ay := a.X(prevV), a.Y(prevV)
	bx, by := a.X(ear), a.Y(ear)
	cx, cy := a.X(nextV), a.Y(nextV)

	minTX := min3(ax, bx, cx)
	minTY := min3(ay, by, cy)
	maxTX := max3(ax, bx, cx)
	maxTY := max3(ay, by, cy)

	minZ := zOrderOf(minTX, minTY, minX, minY, inv)
	maxZ := zOrderOf(maxTX, maxTY, minX, minY, inv)

	blocks := func(p uint32) bool {
		return p != prevV && p != nextV &&
			pointInTriangle(ax, ay, bx, by, cx, cy, a.X(p), a.Y(p)) && a.reflex(p)
	}

	p := a.ZPrev(ear)
	n := a.ZNext(ear)
	for p != nullIdx && a.zCode(p) >= minZ && n != nullIdx && a.zCode(n) <= maxZ {
		if blocks(p) {
			return false
		}
		p = a.ZPrev(p)
		if blocks(n) {
			return false
		}
		n = a.ZNext(n)
	}
	for p != nullIdx && a.zCode(p) >= minZ {
		if blocks(p) {
			return false
		}
		p = a.ZPrev(p)
	}
	for n != nullIdx && a.zCode(n) <= maxZ {
		if blocks(n) {
			return false
		}
		n = a.ZNext(n)
	}
	return true
}

func min3(a, b, c float64) float64 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c float64) float64 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
