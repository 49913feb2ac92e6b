package fxcurve

// Poly holds the coefficients {a, b, c, d} of the polynomial
// a + b·t + c·t² + d·t³ in one coordinate, as raw values at scale S. Lower
// degrees leave the trailing coefficients zero.
//
// Coefficients are 64 bits wide: for control values spanning the whole
// int32 range they need up to 35 bits. Only evaluated values saturate.
type Poly[S Scale] [4]int64

// PointPoly is a polynomial curve, one Poly per coordinate.
type PointPoly[S Scale] struct {
	X Poly[S]
	Y Poly[S]
}


// LineCoeffs returns the coefficients of the line from p0 to p1.
func LineCoeffs[S Scale](p0, p1 Fixed[S]) Poly[S] {
	return Poly[S]{int64(p0), int64(p1) - int64(p0), 0, 0}
}

// QuadCoeffs returns the coefficients of the quadratic Bézier with control
// values p0, p1, p2.
func QuadCoeffs[S Scale](p0, p1, p2 Fixed[S]) Poly[S] {
	a, b, c := int64(p0), int64(p1), int64(p2)
	return Poly[S]{a, 2 * (b - a), a - 2*b + c, 0}
}

// CubicCoeffs returns the coefficients of the cubic Bézier with control
// values p0, p1, p2, p3.
func CubicCoeffs[S Scale](p0, p1, p2, p3 Fixed[S]) Poly[S] {
	a, b, c, d := int64(p0), int64(p1), int64(p2), int64(p3)
	return Poly[S]{a, 3 * (b - a), 3 * (a - 2*b + c), d - a + 3*(b-c)}
}

// CubicCoeffsStart is CubicCoeffs with the first control value doubled,
// which makes the speed at t = 0 zero.
func CubicCoeffsStart[S Scale](p0, p1, p2 Fixed[S]) Poly[S] {
	return CubicCoeffs(p0, p0, p1, p2)
}

// CubicCoeffsStop is CubicCoeffs with the last control value doubled, which
// makes the speed at t = 1 zero.
func CubicCoeffsStop[S Scale](p0, p1, p2 Fixed[S]) Poly[S] {
	return CubicCoeffs(p0, p1, p2, p2)
}

// Value evaluates the polynomial at the iterator's t.
func (p Poly[S]) Value(it Powers) Fixed[S] {
	v := p[0] +
		mulShift64(p[1], int64(it.T()), ParamBits) +
		mulShift64(p[2], int64(it.T2()), ParamBits) +
		mulShift64(p[3], int64(it.T3()), ParamBits)
	return Fixed[S](sat32(v))
}

// Speed evaluates the first derivative, b + 2c·t + 3d·t², at the iterator's t.
func (p Poly[S]) Speed(it Powers) Fixed[S] {
	v := p[1] +
		mulShift64(2*p[2], int64(it.T()), ParamBits) +
		mulShift64(3*p[3], int64(it.T2()), ParamBits)
	return Fixed[S](sat32(v))
}

// Accel evaluates the second derivative, 2c + 6d·t, at the iterator's t.
func (p Poly[S]) Accel(it Powers) Fixed[S] {
	v := 2*p[2] + mulShift64(6*p[3], int64(it.T()), ParamBits)
	return Fixed[S](sat32(v))
}

// Jerk returns the third derivative, which is constant.
func (p Poly[S]) Jerk() Fixed[S] {
	return Fixed[S](sat32(6 * p[3]))
}

func (p Poly[S]) ValueAt0() Fixed[S] { return Fixed[S](sat32(p[0])) }

func (p Poly[S]) ValueAt1() Fixed[S] {
	return Fixed[S](sat32(p[0] + p[1] + p[2] + p[3]))
}

func (p Poly[S]) SpeedAt0() Fixed[S] { return Fixed[S](sat32(p[1])) }

func (p Poly[S]) SpeedAt1() Fixed[S] {
	return Fixed[S](sat32(p[1] + 2*p[2] + 3*p[3]))
}

func (p Poly[S]) AccelAt0() Fixed[S] {
	return Fixed[S](sat32(2 * p[2]))
}

func (p Poly[S]) AccelAt1() Fixed[S] {
	return Fixed[S](sat32(2*p[2] + 6*p[3]))
}

// Value evaluates the curve at the iterator's t.
func (p PointPoly[S]) Value(it Powers) Point[S] {
	return Point[S]{X: p.X.Value(it), Y: p.Y.Value(it)}
}

// Speed returns the curve's derivative at the iterator's t.
func (p PointPoly[S]) Speed(it Powers) Vec2[S] {
	return Vec2[S]{X: p.X.Speed(it), Y: p.Y.Speed(it)}
}

// At0 returns the curve's start point.
func (p PointPoly[S]) At0() Point[S] {
	return Point[S]{X: p.X.ValueAt0(), Y: p.Y.ValueAt0()}
}

// At1 returns the curve's end point.
func (p PointPoly[S]) At1() Point[S] {
	return Point[S]{X: p.X.ValueAt1(), Y: p.Y.ValueAt1()}
}
