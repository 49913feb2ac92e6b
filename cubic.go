package fxcurve

type CubicBez[S Scale] struct {
	P0 Point[S]
	P1 Point[S]
	P2 Point[S]
	P3 Point[S]
}

// BoundingBox returns the bounds of the control polygon, which contain the
// curve.
func (c CubicBez[S]) BoundingBox() Rect[S] {
	return NewRectFromPoints(c.P0, c.P3).UnionPoint(c.P1).UnionPoint(c.P2)
}

// Eval returns the point at parameter t.
func (c CubicBez[S]) Eval(t Param) Point[S] {
	return c.Coeffs().Value(paramPowers(t))
}

// Coeffs returns the power-basis form of the curve.
func (c CubicBez[S]) Coeffs() PointPoly[S] {
	return PointPoly[S]{
		X: CubicCoeffs(c.P0.X, c.P1.X, c.P2.X, c.P3.X),
		Y: CubicCoeffs(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y),
	}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez[S]) Subdivide() (CubicBez[S], CubicBez[S]) {
	l, r := SubdivideCubic([4]Point[S]{c.P0, c.P1, c.P2, c.P3})
	return CubicBez[S]{l[0], l[1], l[2], l[3]}, CubicBez[S]{r[0], r[1], r[2], r[3]}
}

func (c CubicBez[S]) Start() Point[S] {
	return c.P0
}

func (c CubicBez[S]) End() Point[S] {
	return c.P3
}

// Tangents returns the curve's direction at its start and at its end,
// falling back to farther control points when nearer ones coincide.
func (c CubicBez[S]) Tangents() (Vec2[S], Vec2[S]) {
	var d0, d1 Vec2[S]
	if d01 := c.P1.Sub(c.P0); !d01.IsZero() {
		d0 = d01
	} else if d02 := c.P2.Sub(c.P0); !d02.IsZero() {
		d0 = d02
	} else {
		d0 = c.P3.Sub(c.P0)
	}
	if d23 := c.P3.Sub(c.P2); !d23.IsZero() {
		d1 = d23
	} else if d13 := c.P3.Sub(c.P1); !d13.IsZero() {
		d1 = d13
	} else {
		d1 = c.P3.Sub(c.P0)
	}
	return d0, d1
}

func (c CubicBez[S]) Seg() Segment[S] {
	return Segment[S]{Degree: Cubic, P: [MaxDegree + 1]Point[S]{c.P0, c.P1, c.P2, c.P3}}
}
