package fxcurve

// OffsetOpts describes options for tool radius compensation.
type OffsetOpts[S Scale] struct {
	// BridgeDistance is the largest distance between the offset points of
	// two adjacent directions at a joint that is closed with a single miter
	// point. Farther apart, the joint gets its own bridging segment.
	BridgeDistance Fixed[S]
	// MiterLimit limits the distance of a miter point from its joint, as a
	// multiple of the radius.
	MiterLimit Fixed[E16]
}

// DefaultOffsetOpts returns options that bridge joints whose offset points
// are more than 1/16 of a unit apart and limit miters to 4 times the
// radius.
func DefaultOffsetOpts[S Scale]() OffsetOpts[S] {
	return OffsetOpts[S]{
		BridgeDistance: Ratio[S](1, 16),
		MiterLimit:     Int[E16](4),
	}
}

func (o OffsetOpts[S]) WithBridgeDistance(d Fixed[S]) OffsetOpts[S] { o.BridgeDistance = d; return o }
func (o OffsetOpts[S]) WithMiterLimit(limit Fixed[E16]) OffsetOpts[S] {
	o.MiterLimit = limit
	return o
}

// Offset displaces a quadratic curve, in place, by radius to the left of
// its direction of travel, or to the right for negative radii. The tool
// approaches the curve's start coming from prev.
//
// Every point is moved along the normal of its adjacent directions. Where
// two directions meet, the shared point becomes the miter point of the two
// offset lines. If the offset points of the two directions are farther
// apart than opts.BridgeDistance, a bridging segment from one to the other
// is inserted instead, with the miter point as its control point. Each
// input segment thus yields one or two output segments.
//
// Closed curves ignore prev and join their last segment to their first, so
// they stay closed.
//
// Offset returns the number of segments it produced. It returns false if
// the buffer ran out of room or the curve has no direction at all. The
// segment that didn't fit and all segments after it are kept as they were.
// Offset panics if the curve isn't quadratic.
func (c *Curve[S]) Offset(radius Fixed[S], prev Point[S], opts OffsetOpts[S]) (int, bool) {
	var in option[unit]
	if u, ok := unitOfVec(c.Start.Sub(prev)); ok {
		in.set(u)
	}
	return c.offset(radius, in, opts)
}

// OffsetOptimistic is like [Curve.Offset] but assumes that the tool
// approaches the curve's start in the direction of its first segment, so
// that no joint is needed there.
func (c *Curve[S]) OffsetOptimistic(radius Fixed[S], opts OffsetOpts[S]) (int, bool) {
	return c.offset(radius, option[unit]{}, opts)
}

func (c *Curve[S]) offset(radius Fixed[S], in option[unit], opts OffsetOpts[S]) (int, bool) {
	if c.Degree != Quadratic {
		panic("fxcurve: Offset on " + c.Degree.String() + " curve")
	}
	n := c.NumSegments()
	if n == 0 {
		return 0, true
	}

	var first, last option[unit]
	for seg := range c.Segments() {
		us, ue, ok := quadDirections(&seg)
		if !ok {
			continue
		}
		if !first.isSet {
			first.set(us)
		}
		last.set(ue)
	}
	if !first.isSet {
		Logger().Debug("offset of curve without direction", "start", c.Start)
		return 0, false
	}
	closed := c.IsClosed()
	if closed {
		in = last
	} else if !in.isSet {
		in = first
	}

	o := newOffsetter(radius, opts)
	cur := in.unwrap()
	bridgeIn := o.bridged(cur, first.value)
	origStart, prev := c.Start, c.Start
	if bridgeIn {
		c.Start = displace(c.Start, o.normal(cur))
	} else {
		c.Start = displace(c.Start, o.miter(cur, first.value))
	}

	emitted := 0
	ok := true
	var next option[unit]
	for i := range n {
		seg, _ := c.readSegment(prev)
		prev = seg.End()
		if !ok {
			c.writeSegment(&seg)
			continue
		}
		us, ue, dirOK := quadDirections(&seg)
		if !dirOK {
			us, ue = cur, cur
		}

		next.clear()
		if i < n-1 {
			// The next segment is still at the front of the buffer.
			p1, _ := c.buf.LookAhead(0)
			p2, _ := c.buf.LookAhead(1)
			ns := Segment[S]{Degree: Quadratic, P: [MaxDegree + 1]Point[S]{seg.P[2], p1, p2}}
			if nus, _, ok := quadDirections(&ns); ok {
				next.set(nus)
			} else {
				next.set(ue)
			}
		} else if closed {
			next.set(first.value)
		}
		bridgeOut := next.isSet && o.bridged(ue, next.value)

		need := 2
		if bridgeIn {
			need = 4
		}
		if c.buf.CanWrite() < need {
			Logger().Debug("offset out of room", "segment", i, "segments", n, "cap", c.buf.Cap())
			ok = false
			if emitted == 0 {
				c.Start = origStart
			}
			c.writeSegment(&seg)
			continue
		}

		j := seg.P[0]
		if bridgeIn {
			c.buf.Write(displace(j, o.miter(cur, us)))
			c.buf.Write(displace(j, o.normal(us)))
			emitted++
		}
		c.buf.Write(displace(seg.P[1], o.miter(us, ue)))
		if !next.isSet || bridgeOut {
			c.buf.Write(displace(seg.P[2], o.normal(ue)))
		} else {
			c.buf.Write(displace(seg.P[2], o.miter(ue, next.value)))
		}
		emitted++

		cur = ue
		bridgeIn = bridgeOut
	}
	return emitted, ok
}

// quadDirections returns the unit directions of a quadratic segment at its
// start and end. It reports false if all three points coincide.
func quadDirections[S Scale](seg *Segment[S]) (unit, unit, bool) {
	d0, d1 := seg.Quad().Tangents()
	us, ok0 := unitOfVec(d0)
	ue, ok1 := unitOfVec(d1)
	return us, ue, ok0 && ok1
}

type offsetter struct {
	// r is the radius, limit the miter limit with angleBits fractional bits.
	r       int64
	limit   int64
	bridge2 uint64
}

func newOffsetter[S Scale](radius Fixed[S], opts OffsetOpts[S]) offsetter {
	bd := abs64(int64(opts.BridgeDistance))
	return offsetter{
		r:       int64(radius),
		limit:   max(int64(opts.MiterLimit)<<(angleBits-16), 1<<angleBits),
		bridge2: bd * bd,
	}
}

// delta is a displacement in the curve's scale.
type delta struct {
	x, y int64
}

func scaled(u unit, l int64) delta {
	x, y := u.scale(l)
	return delta{x, y}
}

// normal returns the offset of a point on a line with direction u.
func (o *offsetter) normal(u unit) delta {
	return scaled(u.perp(), o.r)
}

// bridged reports whether the offset points of directions a and b are too
// far apart to share a miter point.
func (o *offsetter) bridged(a, b unit) bool {
	na, nb := a.perp(), b.perp()
	dx, dy := unit{na.x - nb.x, na.y - nb.y}.scale(o.r)
	return hypot2(dx, dy) > o.bridge2
}

// miter returns the offset of the point where the offset lines of
// directions a and b meet. The distance is limited by the miter limit. For
// opposite directions the lines don't meet and the point is placed ahead
// of the joint, at the radius.
func (o *offsetter) miter(a, b unit) delta {
	na, nb := a.perp(), b.perp()
	h, ok := unitOf(na.x+nb.x, na.y+nb.y)
	if !ok {
		return scaled(a, int64(abs64(o.r)))
	}
	// The miter point is r/cos(θ/2) away from the joint, for a turn by θ.
	cosHalf := h.dot(na)
	f := o.limit
	if cosHalf > 0 && (1<<(2*angleBits))/cosHalf < o.limit {
		f = (1 << (2 * angleBits)) / cosHalf
	}
	return scaled(h, mulShift64(o.r, f, angleBits))
}

func displace[S Scale](pt Point[S], d delta) Point[S] {
	return Point[S]{
		X: Fixed[S](sat32(int64(pt.X) + d.x)),
		Y: Fixed[S](sat32(int64(pt.Y) + d.y)),
	}
}
