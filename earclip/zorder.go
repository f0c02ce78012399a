package earclip

// bbox returns the axis-aligned bounding box of the ring starting at
// start.
func bbox(a *Arena, start uint32) (minX, minY, maxX, maxY float64) {
	minX, minY = a.X(start), a.Y(start)
	maxX, maxY = minX, minY
	a.eachRing(start, func(v uint32) {
		x, y := a.X(v), a.Y(v)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	})
	return
}

// invSize returns the scale factor that maps the longer bbox side into
// the 15-bit non-negative range zOrderOf expects, or 0 for a degenerate
// (zero-area) bbox.
func invSize(minX, minY, maxX, maxY float64) float64 {
	size := maxX - minX
	if maxY-minY > size {
		size = maxY - minY
	}
	if size == 0 {
		return 0
	}
	return 32767 / size
}

// zOrderOf computes the Morton code of (x,y) after translating by
// (-minX,-minY) and scaling by inv into a non-negative 15-bit-per-axis
// integer range.
func zOrderOf(x, y, minX, minY, inv float64) uint32 {
	ix := uint32(int32((x - minX) * inv))
	iy := uint32(int32((y - minY) * inv))

	ix = (ix | (ix << 8)) & 0x00FF00FF
	ix = (ix | (ix << 4)) & 0x0F0F0F0F
	ix = (ix | (ix << 2)) & 0x33333333
	ix = (ix | (ix << 1)) & 0x55555555

	iy = (iy | (iy << 8)) & 0x00FF00FF
	iy = (iy | (iy << 4)) & 0x0F0F0F0F
	iy = (iy | (iy << 2)) & 0x33333333
	iy = (iy | (iy << 1)) & 0x55555555

	return ix | (iy << 1)
}

// indexCurve assigns a Morton code to every vertex of the ring starting
// at start that doesn't already have one, then rebuilds the z-order
// chain as a sorted, non-circular doubly-linked list over the whole
// ring. It returns the head of the sorted chain.
func indexCurve(a *Arena, start uint32, minX, minY, inv float64) uint32 {
	p := start
	for {
		if !a.hasZ(p) {
			a.setZCode(p, zOrderOf(a.X(p), a.Y(p), minX, minY, inv))
		}
		a.verts[p].zprev = a.Prev(p)
		a.verts[p].znext = a.Next(p)
		p = a.Next(p)
		if p == start {
			break
		}
	}

	// break circularity: the chain is a line, not a ring.
	last := a.verts[start].zprev
	a.verts[last].znext = nullIdx
	a.verts[start].zprev = nullIdx

	return sortByZ(a, start)
}

// sortByZ sorts the z-order chain rooted at list using Simon Tatham's
// bottom-up iterative merge sort on linked lists, doubling run sizes
// until a single merge pass suffices. The sort is stable and moves no
// records; it only relinks zprev/znext.
func sortByZ(a *Arena, list uint32) uint32 {
	inSize := 1
	for {
		p := list
		list = nullIdx
		tail := nullIdx
		numMerges := 0

		for p != nullIdx {
			numMerges++
			q := p
			pSize := 0
			for i := 0; i < inSize && q != nullIdx; i++ {
				pSize++
				q = a.ZNext(q)
			}
			qSize := inSize

			for pSize > 0 || (qSize > 0 && q != nullIdx) {
				var e uint32
				if pSize != 0 && (qSize == 0 || q == nullIdx || a.zCode(p) <= a.zCode(q)) {
					e = p
					p = a.ZNext(p)
					pSize--
				} else {
					e = q
					q = a.ZNext(q)
					qSize--
				}

				if tail != nullIdx {
					a.verts[tail].znext = e
				} else {
					list = e
				}
				a.verts[e].zprev = tail
				tail = e
			}
			p = q
		}
		a.verts[tail].znext = nullIdx
		inSize *= 2

		if numMerges <= 1 {
			break
		}
	}
	return list
}
