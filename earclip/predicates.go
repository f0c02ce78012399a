package earclip

// This file implements the half-plane-sign family of geometric tests
// the rest of the package is built on, the same family of tests as
// recast/contour.go's integer predicates (area2, left, leftOn,
// collinear, intersectProp) — same role in the pipeline, different
// scalar type and a different stage.

// A returns twice the signed area of triangle (p, q, r). A negative
// result means p, q, r wind counter-clockwise.
func (a *Arena) A(p, q, r uint32) float64 {
	px, py := a.X(p), a.Y(p)
	qx, qy := a.X(q), a.Y(q)
	rx, ry := a.X(r), a.Y(r)
	return (qy-py)*(rx-qx) - (qx-px)*(ry-qy)
}

// equals reports whether p and q occupy the same point.
func (a *Arena) equals(p, q uint32) bool {
	return a.X(p) == a.X(q) && a.Y(p) == a.Y(q)
}

// pointInTriangle reports whether p lies inside or on the boundary of
// triangle (ax,ay)-(bx,by)-(cx,cy), given in counter-clockwise order
// (negative A). For a clockwise triangle, interior points are reported
// as outside.
func pointInTriangle(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return (cx-px)*(ay-py)-(ax-px)*(cy-py) >= 0 &&
		(ax-px)*(by-py)-(bx-px)*(ay-py) >= 0 &&
		(bx-px)*(cy-py)-(cx-px)*(by-py) >= 0
}

// reflex reports whether v is a reflex vertex of the ring (interior
// angle greater than 180 degrees).
func (a *Arena) reflex(v uint32) bool {
	return a.A(a.Prev(v), v, a.Next(v)) >= 0
}

// pseudoIntersects reports whether segments (p1,q1) and (p2,q2) cross.
// It is true when the two segments have the same pair of endpoints (in
// either order), or when each segment's endpoints fall on different
// sides of the other segment's line, a point on a line counting as the
// non-positive side. Colinear segments, and segments that start at the
// same point or end at the same point, return false; a segment that
// starts where the other ends can return true. Callers throughout this
// package depend on that exact semantics.
func (a *Arena) pseudoIntersects(p1, q1, p2, q2 uint32) bool {
	if (a.equals(p1, p2) && a.equals(q1, q2)) || (a.equals(p1, q2) && a.equals(q1, p2)) {
		return true
	}
	return (a.A(p1, q1, p2) > 0) != (a.A(p1, q1, q2) > 0) &&
		(a.A(p2, q2, p1) > 0) != (a.A(p2, q2, q1) > 0)
}

// locallyInside reports whether the diagonal (a,b) leaves vertex a
// into the polygon's interior, judged from a's local reflex/convex
// status.
func (arena *Arena) locallyInside(a, b uint32) bool {
	if arena.A(arena.Prev(a), a, arena.Next(a)) < 0 {
		return arena.A(a, b, arena.Next(a)) >= 0 && arena.A(a, arena.Prev(a), b) >= 0
	}
	return arena.A(a, b, arena.Prev(a)) < 0 || arena.A(a, arena.Next(a), b) < 0
}

// middleInside reports whether the midpoint of diagonal (a,b) lies
// inside the ring containing a, via an even-odd ray cast along +x.
func (arena *Arena) middleInside(a, b uint32) bool {
	px := (arena.X(a) + arena.X(b)) / 2
	py := (arena.Y(a) + arena.Y(b)) / 2
	inside := false
	p := a
	for {
		n := arena.Next(p)
		py1, py2 := arena.Y(p), arena.Y(n)
		if (py1 > py) != (py2 > py) && py2 != py1 &&
			px < (arena.X(n)-arena.X(p))*(py-py1)/(py2-py1)+arena.X(p) {
			inside = !inside
		}
		p = n
		if p == a {
			break
		}
	}
	return inside
}
