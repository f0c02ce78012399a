package earclip

import (
	"math"
	"sort"
)

// leftmost returns the vertex of the ring starting at start with the
// smallest x, ties broken by whichever is encountered first.
func leftmost(a *Arena, start uint32) uint32 {
	best := start
	a.eachRing(start, func(v uint32) {
		if a.X(v) < a.X(best) {
			best = v
		}
	})
	return best
}

// findHoleBridge implements David Eberly's algorithm for finding a
// bridge vertex on the outer ring for the given hole vertex: cast a
// ray in the -x direction from the hole's point, find the outer edge
// it crosses, then search the triangle formed by that crossing for
// the reflex vertex minimizing the ray angle. It returns nullIdx if
// the hole has no bridge (lies outside the outer ring). The
// intersection x-coordinate is computed from the edge's y-span
// (dividing by the endpoints' y delta, not their x delta), matching
// the upstream mapbox/earcut algorithm.
func findHoleBridge(a *Arena, hole, outerStart uint32) uint32 {
	hx, hy := a.X(hole), a.Y(hole)
	qx := math.Inf(-1)
	m := nullIdx

	// Find the outer edge (p, p.next) a ray cast from H in the -x
	// direction intersects first (smallest qx <= hx).
	p := outerStart
	for {
		n := a.Next(p)
		py, ny := a.Y(p), a.Y(n)
		if hy <= py && hy >= ny && ny != py {
			x := a.X(p) + (hy-py)*(a.X(n)-a.X(p))/(ny-py)
			if x <= hx && x > qx {
				qx = x
				if x == hx {
					if hy == py {
						return p
					}
					if hy == ny {
						return n
					}
				}
				if a.X(p) < a.X(n) {
					m = p
				} else {
					m = n
				}
			}
		}
		p = n
		if p == outerStart {
			break
		}
	}
	if m == nullIdx {
		return nullIdx
	}
	if hx == qx {
		// the hole touches the outer segment; pick the lower endpoint.
		return a.Prev(m)
	}

	// Scan for outer vertices inside the triangle (H_left, M, H_right),
	// wound according to hy vs M.y; among reflex candidates, keep the
	// one minimizing the tangent of the ray angle, breaking ties by
	// larger x.
	stop := m
	mx, my := a.X(m), a.Y(m)
	tanMin := math.Inf(1)

	p = a.Next(m)
	for p != stop {
		px, py := a.X(p), a.Y(p)

		var hex, hfx float64
		if hy < my {
			hex, hfx = hx, qx
		} else {
			hex, hfx = qx, hx
		}

		if hx >= px && px >= mx && hx != px &&
			pointInTriangle(hex, hy, mx, my, hfx, hy, px, py) {
			tan := math.Abs(hy-py) / (hx - px)
			if (tan < tanMin || (tan == tanMin && px > a.X(m))) && a.reflex(p) && a.locallyInside(p, hole) {
				m = p
				tanMin = tan
			}
		}
		p = a.Next(p)
	}
	return m
}

// eliminateHole bridges hole into the outer ring via its bridge vertex
// and re-filters the ring around the cut. It returns outerStart
// unchanged.
func eliminateHole(ctx *BuildContext, a *Arena, hole, outerStart uint32) uint32 {
	bridge := findHoleBridge(a, hole, outerStart)
	if bridge == nullIdx {
		ctx.Warningf("no bridge found for hole starting at vertex src=%d, skipping", a.Src(hole))
		return outerStart
	}
	d := splice(a, bridge, hole)
	filterPoints(a, d, a.Next(d))
	return outerStart
}

// eliminateHoles bridges every hole ring (given by their starting
// vertex) into outerStart, processed in ascending-x order, and returns
// the resulting single-ring outer start.
func eliminateHoles(ctx *BuildContext, a *Arena, holeStarts []uint32, outerStart uint32) uint32 {
	queue := make([]uint32, len(holeStarts))
	for i, h := range holeStarts {
		if a.Next(h) == h {
			a.SetSteiner(h, true)
		}
		queue[i] = leftmost(a, h)
	}
	sort.Slice(queue, func(i, j int) bool { return a.X(queue[i]) < a.X(queue[j]) })

	for _, h := range queue {
		before := outerStart
		outerStart = eliminateHole(ctx, a, h, outerStart)
		outerStart = filterPoints(a, outerStart, a.Next(outerStart))
		if outerStart == nullIdx {
			outerStart = before
		}
	}
	ctx.Progressf("eliminated %d hole(s)", len(holeStarts))
	return outerStart
}
