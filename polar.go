package fxcurve

// PolarOpts describes options for [Curve.ToPolar].
type PolarOpts struct {
	// SineLimit is the smallest sine of the angle between a segment's start
	// and end tangents, in polar space, for which the middle control point
	// is placed at the tangents' intersection. For more nearly parallel
	// tangents the intersection is unreliable, and the middle control point
	// becomes the midpoint of the polar chord instead.
	SineLimit Fixed[E30]
}

var DefaultPolarOpts = PolarOpts{
	SineLimit: Ratio[E30](1, 64),
}

func (o PolarOpts) WithSineLimit(limit Fixed[E30]) PolarOpts { o.SineLimit = limit; return o }

// ToPolar converts a quadratic curve, in place, from cartesian coordinates
// to polar coordinates about center. Each point's X becomes its distance
// from center and its Y its angle in radians.
//
// Angles are not wrapped: they accumulate across segments, so a curve that
// circles the center n times spans n·2π. Each segment's sweep follows the
// winding of its three control points, which allows single segments of
// more than π. Curves must not pass through center.
//
// ToPolar returns the number of converted segments. It returns false if the
// start point or a segment's end point coincides with center, or if a
// segment's middle control point would get a radius of zero or less. The
// failing segment and all segments after it stay cartesian. If the start
// point or the first segment can't be converted, nothing is, and the
// start point stays cartesian.
//
// The angle is stored at scale S, which must be able to represent the
// accumulated angle. ToPolar panics if the curve isn't quadratic.
func (c *Curve[S]) ToPolar(center Point[S], opts PolarOpts) (int, bool) {
	if c.Degree != Quadratic {
		panic("fxcurve: ToPolar on " + c.Degree.String() + " curve")
	}
	v0 := c.Start.Sub(center)
	a0, r0, ok := vectorize(int64(v0.X), int64(v0.Y))
	if !ok || int64(r0) == 0 {
		Logger().Debug("polar start at center", "start", c.Start, "center", center)
		return 0, false
	}
	n := c.NumSegments()
	origStart := c.Start
	prev := c.Start
	c.Start = Point[S]{X: Fixed[S](sat32(int64(r0))), Y: angleToFixed[S](a0)}

	st := polarState[S]{
		a0:    a0,
		acc:   a0,
		r0:    int64(r0),
		limit: int64(opts.SineLimit),
	}
	converted := 0
	ok = true
	for i := range n {
		seg, _ := c.readSegment(prev)
		prev = seg.End()
		if ok {
			var out [2]Point[S]
			if out, ok = st.segment(&seg, center); ok {
				c.buf.Write(out[0])
				c.buf.Write(out[1])
				converted++
				continue
			}
			Logger().Debug("polar conversion failed", "segment", i, "segments", n)
		}
		c.writeSegment(&seg)
	}
	if converted == 0 && !ok {
		c.Start = origStart
	}
	return converted, ok
}

// polarState carries the previous segment's end across segments.
type polarState[S Scale] struct {
	// a0 is the end angle in (−π, π], acc the same angle accumulated.
	a0, acc angle
	r0      int64
	limit   int64
}

// segment converts one cartesian segment, starting where the previous one
// ended, and returns its two stored polar points.
func (st *polarState[S]) segment(seg *Segment[S], center Point[S]) ([2]Point[S], bool) {
	var out [2]Point[S]
	v1 := seg.P[1].Sub(center)
	v2 := seg.P[2].Sub(center)
	a2, r2u, ok := vectorize(int64(v2.X), int64(v2.Y))
	if !ok || r2u == 0 {
		return out, false
	}
	r0, r2 := st.r0, int64(r2u)

	var sweep angle
	if a1, _, ok := vectorize(int64(v1.X), int64(v1.Y)); ok {
		sweep = wrapAngle(a1-st.a0) + wrapAngle(a2-a1)
	} else {
		sweep = wrapAngle(a2 - st.a0)
	}

	// Work in a frame where x is the radius and y is the angle relative to
	// the segment's start, scaled by the mean radius rho so that both axes
	// have comparable units.
	rho := (r0 + r2) / 2
	y2 := mulShift64(int64(sweep), rho, angleBits)

	cr, cy, ok := st.control(seg, center, r0, r2, rho, y2)
	if !ok {
		Logger().Debug("polar control point at chord midpoint", "start", seg.P[0], "end", seg.P[2])
		cr = (r0 + r2) / 2
		cy = y2 / 2
	}
	if cr <= 0 {
		return out, false
	}
	ca := st.acc + angle(mulDiv(cy, 1<<angleBits, rho))

	st.acc += sweep
	st.a0 = a2
	st.r0 = r2
	out[0] = Point[S]{X: Fixed[S](sat32(cr)), Y: angleToFixed[S](ca)}
	out[1] = Point[S]{X: Fixed[S](sat32(r2)), Y: angleToFixed[S](st.acc)}
	return out, true
}

// control intersects the segment's polar tangent lines and returns the
// middle control point in the scaled frame. It reports false if the
// tangents are degenerate, nearly parallel, or meet on the wrong side of
// either endpoint.
func (st *polarState[S]) control(seg *Segment[S], center Point[S], r0, r2, rho, y2 int64) (int64, int64, bool) {
	d0, d1 := seg.Quad().Tangents()
	u0, ok0 := unitOfVec(d0)
	u1, ok1 := unitOfVec(d1)
	e0, ok2 := unitOfVec(seg.P[0].Sub(center))
	e2, ok3 := unitOfVec(seg.P[2].Sub(center))
	if !ok0 || !ok1 || !ok2 || !ok3 {
		return 0, 0, false
	}
	a, okA := polarDirection(u0, e0, r0, rho)
	b, okB := polarDirection(u1, e2, r2, rho)
	if !okA || !okB {
		return 0, 0, false
	}
	den := a.cross(b)
	if abs64(den) < uint64(st.limit) {
		return 0, 0, false
	}
	dx, dy := r2-r0, y2
	s := mulDiv(mulShift64(dx, b.y, angleBits)-mulShift64(dy, b.x, angleBits), 1<<angleBits, den)
	t := mulDiv(mulShift64(dx, a.y, angleBits)-mulShift64(dy, a.x, angleBits), 1<<angleBits, den)
	// The control point lies ahead of the start and behind the end.
	if s <= 0 || t >= 0 {
		return 0, 0, false
	}
	return r0 + mulShift64(s, a.x, angleBits), mulShift64(s, a.y, angleBits), true
}

// polarDirection maps the cartesian direction u at a point with radial
// direction e and radius r to a direction in the scaled polar frame.
func polarDirection(u, e unit, r, rho int64) (unit, bool) {
	radial := e.dot(u)
	tangential := e.cross(u)
	return unitOf(mulShift64(radial, r, angleBits), mulShift64(tangential, rho, angleBits))
}
