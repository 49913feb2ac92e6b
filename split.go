package fxcurve

// deCasteljau splits the Bézier segment with control points ctrl at t = 0.5
// by repeated midpoint averaging, writing the halves' control points to left
// and right. All three slices have the same length, at most MaxDegree+1.
//
// The halves share their joint point, and the outer endpoints are copied
// exactly.
func deCasteljau[S Scale](ctrl, left, right []Point[S]) {
	var tmp [MaxDegree + 1]Point[S]
	n := copy(tmp[:], ctrl)
	for i := range n {
		left[i] = tmp[0]
		right[n-1-i] = tmp[n-1-i]
		for j := range n - 1 - i {
			tmp[j] = tmp[j].Midpoint(tmp[j+1])
		}
	}
}

// SubdivideQuadratic splits a quadratic Bézier at t = 0.5.
func SubdivideQuadratic[S Scale](p [3]Point[S]) (l, r [3]Point[S]) {
	deCasteljau(p[:], l[:], r[:])
	return l, r
}

// SubdivideCubic splits a cubic Bézier at t = 0.5.
func SubdivideCubic[S Scale](p [4]Point[S]) (l, r [4]Point[S]) {
	deCasteljau(p[:], l[:], r[:])
	return l, r
}

// SubdivideQuartic splits a quartic Bézier at t = 0.5.
func SubdivideQuartic[S Scale](p [5]Point[S]) (l, r [5]Point[S]) {
	deCasteljau(p[:], l[:], r[:])
	return l, r
}

// Subdivide splits every segment of the curve in half, doubling the number
// of segments. It returns the number of segments that were split.
//
// If the buffer runs out of room, Subdivide returns false. The segments
// that were split before that stay split and the rest are kept as they
// were, so the curve's shape and order are unchanged, but the pass is not
// undone.
func (c *Curve[S]) Subdivide() (int, bool) {
	n := c.NumSegments()
	k := int(c.Degree)
	split := 0
	ok := true
	prev := c.Start
	for range n {
		seg, _ := c.readSegment(prev)
		prev = seg.End()
		if ok && c.buf.CanWrite() >= 2*k {
			l, r := seg.Subdivide()
			c.writeSegment(&l)
			c.writeSegment(&r)
			split++
			continue
		}
		if ok {
			Logger().Debug("subdivision out of room", "split", split, "segments", n, "cap", c.buf.Cap())
			ok = false
		}
		c.writeSegment(&seg)
	}
	return split, ok
}
