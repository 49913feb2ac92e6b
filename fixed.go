package fxcurve

import (
	"math"
	"math/bits"
	"strconv"
)

// Scale describes the position of the binary point of a fixed-point value,
// that is, its number of fractional bits ("e").
//
// Scales are types rather than values so that arithmetic between values of
// different scales doesn't compile. Use [Rescale] to convert between them.
type Scale interface {
	FracBits() uint
}

// The predefined scales. E16 represents 1.0 as 1<<16.
type (
	E0  struct{}
	E8  struct{}
	E12 struct{}
	E16 struct{}
	E20 struct{}
	E24 struct{}
	E30 struct{}
)

func (E0) FracBits() uint  { return 0 }
func (E8) FracBits() uint  { return 8 }
func (E12) FracBits() uint { return 12 }
func (E16) FracBits() uint { return 16 }
func (E20) FracBits() uint { return 20 }
func (E24) FracBits() uint { return 24 }
func (E30) FracBits() uint { return 30 }

// Fixed is a signed 32-bit fixed-point number with S's number of fractional
// bits.
//
// Arithmetic saturates at the int32 range where noted. Addition and
// subtraction use Go's integer operators and wrap like any int32.
type Fixed[S Scale] int32

func fracBits[S Scale]() uint {
	var s S
	return s.FracBits()
}

// Int returns the fixed-point representation of the integer i.
func Int[S Scale](i int32) Fixed[S] {
	return Fixed[S](sat32(int64(i) << fracBits[S]()))
}

// Ratio returns the fixed-point value closest to num/den.
func Ratio[S Scale](num, den int32) Fixed[S] {
	if den == 0 {
		panic("fxcurve: zero denominator")
	}
	return Fixed[S](sat32(divRound(int64(num)<<fracBits[S](), int64(den))))
}

// FromFloat64 returns the fixed-point value closest to f. It is meant for
// parsing input and for tests; none of the curve math uses floating point.
func FromFloat64[S Scale](f float64) Fixed[S] {
	v := math.Round(math.Ldexp(f, int(fracBits[S]())))
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	if v <= math.MinInt32 {
		return math.MinInt32
	}
	return Fixed[S](v)
}

// Rescale converts f to a different number of fractional bits, rounding to
// nearest when precision is lost and saturating on overflow.
func Rescale[To, From Scale](f Fixed[From]) Fixed[To] {
	return Fixed[To](sat32(rescale(int64(f), fracBits[From](), fracBits[To]())))
}

func rescale(v int64, from, to uint) int64 {
	if to >= from {
		return v << (to - from)
	}
	return shiftRound(v, from-to)
}

// Float64 returns f as a floating-point number.
func (f Fixed[S]) Float64() float64 {
	return math.Ldexp(float64(f), -int(fracBits[S]()))
}

// Floor returns the largest integer not greater than f.
func (f Fixed[S]) Floor() int32 {
	return int32(f) >> fracBits[S]()
}

// Round returns the integer nearest to f, rounding halves up.
func (f Fixed[S]) Round() int32 {
	return int32(shiftRound(int64(f), fracBits[S]()))
}

func (f Fixed[S]) String() string {
	return strconv.FormatFloat(f.Float64(), 'g', -1, 64)
}

// Mul returns f·o, rounded to nearest and saturated.
func (f Fixed[S]) Mul(o Fixed[S]) Fixed[S] {
	return Fixed[S](MulShift(int32(f), int32(o), fracBits[S]()))
}

// Div returns f/o, rounded to nearest and saturated. It panics if o is zero.
func (f Fixed[S]) Div(o Fixed[S]) Fixed[S] {
	if o == 0 {
		panic("fxcurve: division by zero")
	}
	return Fixed[S](sat32(divRound(int64(f)<<fracBits[S](), int64(o))))
}

// Abs returns the absolute value of f, saturating at math.MaxInt32.
func (f Fixed[S]) Abs() Fixed[S] {
	if f < 0 {
		return Fixed[S](sat32(-int64(f)))
	}
	return f
}

// Square returns f², rounded to nearest and saturated.
func Square[S Scale](f Fixed[S]) Fixed[S] {
	return f.Mul(f)
}

// Sqrt returns the square root of f, rounded down. Negative values yield 0.
func Sqrt[S Scale](f Fixed[S]) Fixed[S] {
	if f <= 0 {
		return 0
	}
	return Fixed[S](isqrt(uint64(f) << fracBits[S]()))
}

// MulShift returns (a·b) >> shift with a 64-bit intermediate, rounded to
// nearest and saturated to the int32 range. It is the raw building block for
// callers that keep track of fractional bits themselves.
func MulShift(a, b int32, shift uint) int32 {
	return sat32(shiftRound(int64(a)*int64(b), shift))
}

// SqrtShift returns the square root of x·2^shift, rounded down. The result
// has (e+shift)/2 fractional bits if x has e.
func SqrtShift(x uint32, shift uint) uint32 {
	return uint32(isqrt(uint64(x) << shift))
}

// ISqrt returns the integer square root of x, rounded down.
func ISqrt(x uint64) uint64 {
	return isqrt(x)
}

func isqrt(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	// Newton's method converges monotonically from any r >= sqrt(x).
	r := uint64(1) << ((bits.Len64(x) + 1) / 2)
	for {
		nr := (r + x/r) / 2
		if nr >= r {
			return r
		}
		r = nr
	}
}

// isqrtCeil returns the integer square root of x, rounded up.
func isqrtCeil(x uint64) uint64 {
	r := isqrt(x)
	if r*r < x {
		r++
	}
	return r
}

// shiftRound is v >> shift, rounded to nearest with halves rounded up.
func shiftRound(v int64, shift uint) int64 {
	if shift == 0 {
		return v
	}
	return (v + 1<<(shift-1)) >> shift
}

// divRound is a/b rounded to nearest with halves rounded away from zero.
func divRound(a, b int64) int64 {
	if b < 0 {
		a, b = -a, -b
	}
	if a >= 0 {
		return (a + b/2) / b
	}
	return (a - b/2) / b
}

func sat32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// mulShift64 returns (a·b) >> shift using a 128-bit intermediate, rounded to
// nearest and saturated to the int64 range.
func mulShift64(a, b int64, shift uint) int64 {
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(abs64(a), abs64(b))
	if shift > 0 {
		var carry uint64
		lo, carry = bits.Add64(lo, 1<<(shift-1), 0)
		hi += carry
		lo = lo>>shift | hi<<(64-shift)
		hi >>= shift
	}
	return signSat64(hi, lo, neg)
}

// mulDiv returns a·b/c using a 128-bit intermediate, truncated toward zero
// and saturated to the int64 range. It panics if c is zero.
func mulDiv(a, b, c int64) int64 {
	if c == 0 {
		panic("fxcurve: division by zero")
	}
	neg := ((a < 0) != (b < 0)) != (c < 0)
	hi, lo := bits.Mul64(abs64(a), abs64(b))
	uc := abs64(c)
	if hi >= uc {
		return signSat64(1, 0, neg)
	}
	q, _ := bits.Div64(hi, lo, uc)
	return signSat64(0, q, neg)
}

func signSat64(hi, lo uint64, neg bool) int64 {
	if hi != 0 || lo > math.MaxInt64 {
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	if neg {
		return -int64(lo)
	}
	return int64(lo)
}
