package fxcurve

import (
	"math/bits"
)

// angleBits is the number of fractional bits of angles and unit vectors.
const angleBits = 30

// angle is an angle in radians with angleBits fractional bits. Angles are
// not reduced to a range, so multiple revolutions can accumulate.
type angle int64

const (
	anglePi    angle = 3373259426
	angleTwoPi angle = 6746518852
)

// rotation is a rotation by one of the halving angles π/2, π/4, π/8, …,
// stored as its cosine and sine.
type rotation struct {
	cos, sin int64
	angle    angle
}

// rotations drive both the vectoring (atan2 and magnitude) and the
// rotation (sin and cos) direction of the binary angle search. Unlike
// classic CORDIC the entries are exact rotations, so no gain correction is
// needed.
var rotations = [32]rotation{
	{0, 1073741824, 1686629713}, // π/2
	{759250125, 759250125, 843314857},
	{992008094, 410903207, 421657428},
	{1053110176, 209476638, 210828714},
	{1068571464, 105245103, 105414357},
	{1072448455, 52686014, 52707179},
	{1073418433, 26350943, 26353589},
	{1073660973, 13176464, 13176795},
	{1073721611, 6588356, 6588397},
	{1073736771, 3294193, 3294199},
	{1073740561, 1647099, 1647099},
	{1073741508, 823550, 823550},
	{1073741745, 411775, 411775},
	{1073741804, 205887, 205887},
	{1073741819, 102944, 102944},
	{1073741823, 51472, 51472},
	{1073741824, 25736, 25736},
	{1073741824, 12868, 12868},
	{1073741824, 6434, 6434},
	{1073741824, 3217, 3217},
	{1073741824, 1608, 1608},
	{1073741824, 804, 804},
	{1073741824, 402, 402},
	{1073741824, 201, 201},
	{1073741824, 101, 101},
	{1073741824, 50, 50},
	{1073741824, 25, 25},
	{1073741824, 13, 13},
	{1073741824, 6, 6},
	{1073741824, 3, 3},
	{1073741824, 2, 2},
	{1073741824, 1, 1}, // π/2³²
}

// unit is a direction with angleBits fractional bits per component and a
// magnitude of approximately one.
type unit struct {
	x, y int64
}

func (u unit) dot(o unit) int64   { return (u.x*o.x + u.y*o.y) >> angleBits }
func (u unit) cross(o unit) int64 { return (u.x*o.y - u.y*o.x) >> angleBits }
func (u unit) perp() unit         { return unit{-u.y, u.x} }
func (u unit) negate() unit       { return unit{-u.x, -u.y} }

// scale returns u·l for a length l in any fixed-point scale, in that scale.
func (u unit) scale(l int64) (int64, int64) {
	return shiftRound(u.x*l, angleBits), shiftRound(u.y*l, angleBits)
}

// vectorize returns the angle of (x, y) in (−π, π] and its magnitude, in the
// units of x and y. It reports false for the zero vector.
func vectorize(x, y int64) (angle, uint64, bool) {
	if x == 0 && y == 0 {
		return 0, 0, false
	}
	// The axes are exact.
	switch {
	case y == 0 && x > 0:
		return 0, uint64(x), true
	case y == 0:
		return anglePi, abs64(x), true
	case x == 0 && y > 0:
		return anglePi / 2, uint64(y), true
	case x == 0:
		return -anglePi / 2, abs64(y), true
	}
	// Normalize to 31 significant bits so that products with the table fit
	// in 63 bits, even after the rotations grow a component by √2.
	shift := 31 - bits.Len64(max(abs64(x), abs64(y)))
	if shift >= 0 {
		x <<= shift
		y <<= shift
	} else {
		x >>= -shift
		y >>= -shift
	}
	// Turn the left half-plane by π first. The rotations then only need to
	// cover (−π/2, π/2].
	var a angle
	if x < 0 {
		x, y = -x, -y
		a = anglePi
	}
	for _, r := range rotations {
		if y > 0 {
			x, y = (x*r.cos+y*r.sin)>>angleBits, (y*r.cos-x*r.sin)>>angleBits
			a += r.angle
		} else {
			x, y = (x*r.cos-y*r.sin)>>angleBits, (y*r.cos+x*r.sin)>>angleBits
			a -= r.angle
		}
	}
	var mag int64
	if shift >= 0 {
		mag = shiftRound(x, uint(shift))
	} else {
		mag = x << -shift
	}
	if a > anglePi {
		a -= angleTwoPi
	}
	return a, uint64(max(mag, 0)), true
}

// unitFromAngle returns the unit vector pointing at a.
func unitFromAngle(a angle) unit {
	a = wrapAngle(a)
	x, y := int64(1)<<angleBits, int64(0)
	for _, r := range rotations {
		if a > 0 {
			x, y = (x*r.cos-y*r.sin)>>angleBits, (y*r.cos+x*r.sin)>>angleBits
			a -= r.angle
		} else {
			x, y = (x*r.cos+y*r.sin)>>angleBits, (y*r.cos-x*r.sin)>>angleBits
			a += r.angle
		}
	}
	return unit{x, y}
}

// unitOf returns the direction of (x, y). It reports false for the zero
// vector.
func unitOf(x, y int64) (unit, bool) {
	if x == 0 && y == 0 {
		return unit{}, false
	}
	if shift := bits.Len64(max(abs64(x), abs64(y))) - 31; shift > 0 {
		x >>= shift
		y >>= shift
	}
	l := int64(isqrt(uint64(x*x + y*y)))
	if l == 0 {
		return unit{}, false
	}
	return unit{divRound(x<<angleBits, l), divRound(y<<angleBits, l)}, true
}

func unitOfVec[S Scale](v Vec2[S]) (unit, bool) {
	return unitOf(int64(v.X), int64(v.Y))
}

// wrapAngle reduces a to (−π, π].
func wrapAngle(a angle) angle {
	a %= angleTwoPi
	if a > anglePi {
		a -= angleTwoPi
	} else if a <= -anglePi {
		a += angleTwoPi
	}
	return a
}

func angleToFixed[S Scale](a angle) Fixed[S] {
	return Fixed[S](sat32(rescale(int64(a), angleBits, fracBits[S]())))
}

func angleFromFixed[S Scale](f Fixed[S]) angle {
	return angle(rescale(int64(f), fracBits[S](), angleBits))
}

// Polar returns the magnitude of v and its angle in radians, in (−π, π].
// It reports false for the zero vector.
//
// Both are computed with a table of rotations by halving angles; no
// trigonometric functions are involved.
func (v Vec2[S]) Polar() (r, theta Fixed[S], ok bool) {
	a, m, ok := vectorize(int64(v.X), int64(v.Y))
	if !ok {
		return 0, 0, false
	}
	return Fixed[S](sat32(int64(m))), angleToFixed[S](a), true
}

// FromPolar returns the point at distance r from center, in the direction
// of theta radians.
func FromPolar[S Scale](center Point[S], r, theta Fixed[S]) Point[S] {
	x, y := unitFromAngle(angleFromFixed(theta)).scale(int64(r))
	return Point[S]{
		X: Fixed[S](sat32(int64(center.X) + x)),
		Y: Fixed[S](sat32(int64(center.Y) + y)),
	}
}
