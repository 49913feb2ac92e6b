package fxcurve

// Line represents a line segment.
type Line[S Scale] struct {
	// The line's start point.
	P0 Point[S]
	// The line's end point.
	P1 Point[S]
}

// Length returns the length of the line, rounded down.
func (l Line[S]) Length() Fixed[S] {
	return l.P0.Distance(l.P1)
}

// Midpoint returns the point halfway along the line.
func (l Line[S]) Midpoint() Point[S] {
	return l.P0.Midpoint(l.P1)
}

// Computes the point where two lines, if extended to infinity, would cross.
// It reports false for parallel lines and if the point isn't representable.
func (l Line[S]) CrossingPoint(o Line[S]) (Point[S], bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point[S]{}, false
	}
	// h has ParamBits fractional bits.
	h := mulDiv(ab.Cross(l.P0.Sub(o.P0)), 1<<ParamBits, pcd)
	x := int64(o.P0.X) + mulShift64(int64(cd.X), h, ParamBits)
	y := int64(o.P0.Y) + mulShift64(int64(cd.Y), h, ParamBits)
	if x != int64(sat32(x)) || y != int64(sat32(y)) {
		return Point[S]{}, false
	}
	return Point[S]{X: Fixed[S](x), Y: Fixed[S](y)}, true
}

func (l Line[S]) Translate(v Vec2[S]) Line[S] {
	return Line[S]{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line[S]) BoundingBox() Rect[S] {
	return NewRectFromPoints(l.P0, l.P1)
}

// Eval returns the point at parameter t.
func (l Line[S]) Eval(t Param) Point[S] {
	return l.Coeffs().Value(paramPowers(t))
}

// Coeffs returns the power-basis form of the line.
func (l Line[S]) Coeffs() PointPoly[S] {
	return PointPoly[S]{
		X: LineCoeffs(l.P0.X, l.P1.X),
		Y: LineCoeffs(l.P0.Y, l.P1.Y),
	}
}

func (l Line[S]) Start() Point[S] { return l.P0 }
func (l Line[S]) End() Point[S]   { return l.P1 }

// Subdivide splits the line at its midpoint.
func (l Line[S]) Subdivide() (Line[S], Line[S]) {
	m := l.Midpoint()
	return Line[S]{l.P0, m}, Line[S]{m, l.P1}
}

// Raise returns the quadratic Bézier that traces the same line.
func (l Line[S]) Raise() QuadBez[S] {
	return QuadBez[S]{l.P0, l.P0.Midpoint(l.P1), l.P1}
}

func (l Line[S]) Seg() Segment[S] {
	return Segment[S]{Degree: Linear, P: [MaxDegree + 1]Point[S]{l.P0, l.P1}}
}

// fixedPowers holds a single parameter value and its powers, for evaluating
// a polynomial once without an iterator.
type fixedPowers struct {
	t, t2, t3 Param
}

func paramPowers(t Param) fixedPowers {
	t2 := mulParam(t, t)
	return fixedPowers{t, t2, mulParam(t2, t)}
}

func (p fixedPowers) T() Param  { return p.t }
func (p fixedPowers) T2() Param { return p.t2 }
func (p fixedPowers) T3() Param { return p.t3 }
