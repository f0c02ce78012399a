package earclip

// loadContour converts data[start:end], a flat run of (x,y,...) tuples
// strided by d, into a circular ring in the arena, wound ccw when ccw
// is true and cw otherwise. Where the source winding disagrees with the
// requested one it loads the vertices in reverse order. It drops one of
// the final pair of vertices if they coincide. It returns the
// arena index of an arbitrary ring vertex, or nullIdx if the range is
// empty.
func loadContour(a *Arena, data []float64, start, end, d int, ccw bool) uint32 {
	if end <= start {
		return nullIdx
	}

	last := nullIdx
	if ccw == (signedArea(data, start, end, d) > 0) {
		for i := start; i < end; i += d {
			last = a.Insert(uint32(i), data[i], data[i+1], last)
		}
	} else {
		for i := end - d; i >= start; i -= d {
			last = a.Insert(uint32(i), data[i], data[i+1], last)
		}
	}

	if last != nullIdx && a.Next(last) != last && a.equals(last, a.Next(last)) {
		dup := a.Next(last)
		a.Unlink(dup)
		last = a.Next(last)
	}
	return last
}

// signedArea returns twice the signed area of data[start:end] (strided
// by d), reading only the first two values of each tuple.
func signedArea(data []float64, start, end, d int) float64 {
	var sum float64
	for i, j := start, end-d; i < end; i += d {
		sum += (data[j] - data[i]) * (data[i+1] + data[j+1])
		j = i
	}
	return sum
}
