package fxcurve

type QuadBez[S Scale] struct {
	P0 Point[S]
	P1 Point[S]
	P2 Point[S]
}

func (q QuadBez[S]) BoundingBox() Rect[S] {
	return NewRectFromPoints(q.P0, q.P2).UnionPoint(q.P1)
}

// Raise the order by 1.
//
// Returns a cubic Bézier segment that represents this quadratic, up to the
// rounding of its control points.
func (q QuadBez[S]) Raise() CubicBez[S] {
	return CubicBez[S]{
		q.P0,
		twoThirds(q.P0, q.P1),
		twoThirds(q.P2, q.P1),
		q.P2,
	}
}

// twoThirds returns the point two thirds of the way from a to b.
func twoThirds[S Scale](a, b Point[S]) Point[S] {
	return Point[S]{
		X: Fixed[S](sat32(int64(a.X) + divRound(2*(int64(b.X)-int64(a.X)), 3))),
		Y: Fixed[S](sat32(int64(a.Y) + divRound(2*(int64(b.Y)-int64(a.Y)), 3))),
	}
}

// Eval returns the point at parameter t.
func (q QuadBez[S]) Eval(t Param) Point[S] {
	return q.Coeffs().Value(paramPowers(t))
}

// Coeffs returns the power-basis form of the curve.
func (q QuadBez[S]) Coeffs() PointPoly[S] {
	return PointPoly[S]{
		X: QuadCoeffs(q.P0.X, q.P1.X, q.P2.X),
		Y: QuadCoeffs(q.P0.Y, q.P1.Y, q.P2.Y),
	}
}

// Subdivide splits the curve at t = 0.5.
func (q QuadBez[S]) Subdivide() (QuadBez[S], QuadBez[S]) {
	l, r := SubdivideQuadratic([3]Point[S]{q.P0, q.P1, q.P2})
	return QuadBez[S]{l[0], l[1], l[2]}, QuadBez[S]{r[0], r[1], r[2]}
}

// Differentiate returns the derivative, a line in velocity space.
func (q QuadBez[S]) Differentiate() Line[S] {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	return Line[S]{
		Point[S]{X: d0.X * 2, Y: d0.Y * 2},
		Point[S]{X: d1.X * 2, Y: d1.Y * 2},
	}
}

func (q QuadBez[S]) Start() Point[S] {
	return q.P0
}

func (q QuadBez[S]) End() Point[S] {
	return q.P2
}

// Tangents returns the curve's direction at its start and at its end. A
// tangent that vanishes because two control points coincide is replaced by
// the chord.
func (q QuadBez[S]) Tangents() (Vec2[S], Vec2[S]) {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	if d0.IsZero() {
		d0 = q.P2.Sub(q.P0)
	}
	if d1.IsZero() {
		d1 = q.P2.Sub(q.P0)
	}
	return d0, d1
}

func (q QuadBez[S]) Seg() Segment[S] {
	return Segment[S]{Degree: Quadratic, P: [MaxDegree + 1]Point[S]{q.P0, q.P1, q.P2}}
}
