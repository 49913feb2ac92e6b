package fxcurve

import (
	"math"
	"testing"
)

func TestFixedConversions(t *testing.T) {
	if got := Int[E16](3); got != 3<<16 {
		t.Errorf("got %d, want %d", got, 3<<16)
	}
	if got := Ratio[E16](1, 3); got != 21845 {
		t.Errorf("got %d, want 21845", got)
	}
	if got := Ratio[E16](-1, 3); got != -21845 {
		t.Errorf("got %d, want -21845", got)
	}
	if got := FromFloat64[E16](1.5); got != 0x18000 {
		t.Errorf("got %#x, want 0x18000", int32(got))
	}
	if got := FromFloat64[E16](1e9); got != math.MaxInt32 {
		t.Errorf("got %d, want saturation", got)
	}
	if got := Int[E16](40000); got != math.MaxInt32 {
		t.Errorf("got %d, want saturation", got)
	}
	if got := Int[E8](-7).Float64(); got != -7 {
		t.Errorf("got %v, want -7", got)
	}
	if got := FromFloat64[E16](2.25).String(); got != "2.25" {
		t.Errorf("got %q, want %q", got, "2.25")
	}
}

func TestFixedRounding(t *testing.T) {
	tests := []struct {
		in    Fixed[E8]
		floor int32
		round int32
	}{
		{0x180, 1, 2},
		{0x17f, 1, 1},
		{-0x180, -2, -1},
		{-0x181, -2, -2},
	}
	for _, tt := range tests {
		if got := tt.in.Floor(); got != tt.floor {
			t.Errorf("%v.Floor() = %d, want %d", tt.in, got, tt.floor)
		}
		if got := tt.in.Round(); got != tt.round {
			t.Errorf("%v.Round() = %d, want %d", tt.in, got, tt.round)
		}
	}
}

func TestRescale(t *testing.T) {
	x := FromFloat64[E16](1.75)
	if got := Rescale[E8](x); got != FromFloat64[E8](1.75) {
		t.Errorf("got %v, want 1.75", got)
	}
	if got := Rescale[E24](x); got != FromFloat64[E24](1.75) {
		t.Errorf("got %v, want 1.75", got)
	}
	// 1/3 at E16 rounds to the nearest E8 value.
	if got := Rescale[E8](Ratio[E16](1, 3)); got != 85 {
		t.Errorf("got %d, want 85", got)
	}
	if got := Rescale[E30](Int[E16](4)); got != math.MaxInt32 {
		t.Errorf("got %d, want saturation", got)
	}
}

func TestFixedArithmetic(t *testing.T) {
	a := FromFloat64[E16](1.5)
	b := FromFloat64[E16](-2.25)
	if got := a.Mul(b); got != FromFloat64[E16](-3.375) {
		t.Errorf("got %v, want -3.375", got)
	}
	if got := b.Div(a); got != FromFloat64[E16](-1.5) {
		t.Errorf("got %v, want -1.5", got)
	}
	if got := Square(b); got != FromFloat64[E16](5.0625) {
		t.Errorf("got %v, want 5.0625", got)
	}
	if got := Sqrt(Int[E16](2)); got != 92681 {
		t.Errorf("got %d, want 92681", got)
	}
	if got := Sqrt(b); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
	if got := b.Abs(); got != FromFloat64[E16](2.25) {
		t.Errorf("got %v, want 2.25", got)
	}
	if got := Fixed[E16](math.MinInt32).Abs(); got != math.MaxInt32 {
		t.Errorf("got %d, want saturation", got)
	}
	if got := Int[E16](30000).Mul(Int[E16](30000)); got != math.MaxInt32 {
		t.Errorf("got %d, want saturation", got)
	}
}

func TestMulShift(t *testing.T) {
	if got := MulShift(3, 5, 1); got != 8 {
		t.Errorf("got %d, want 8", got)
	}
	if got := MulShift(math.MaxInt32, math.MaxInt32, 0); got != math.MaxInt32 {
		t.Errorf("got %d, want saturation", got)
	}
	if got := MulShift(1<<20, 1<<20, 10); got != 1<<30 {
		t.Errorf("got %d, want %d", got, 1<<30)
	}
	if got := SqrtShift(2, 30); got != 46340 {
		t.Errorf("got %d, want 46340", got)
	}
}

func TestISqrt(t *testing.T) {
	for _, x := range []uint64{0, 1, 2, 3, 4, 15, 16, 17, 1 << 40, 1<<40 - 1, math.MaxUint64} {
		r := ISqrt(x)
		if r*r > x {
			t.Errorf("ISqrt(%d) = %d is too large", x, r)
		}
		if r < math.MaxUint32 && (r+1)*(r+1) <= x {
			t.Errorf("ISqrt(%d) = %d is too small", x, r)
		}
	}
	if got := isqrtCeil(17); got != 5 {
		t.Errorf("got %d, want 5", got)
	}
	if got := isqrtCeil(16); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
}

func TestWideArithmetic(t *testing.T) {
	if got := mulShift64(1<<40, 1<<40, 30); got != 1<<50 {
		t.Errorf("got %d, want %d", got, int64(1)<<50)
	}
	if got := mulShift64(-(1 << 40), 3, 1); got != -(3 << 39) {
		t.Errorf("got %d, want %d", got, -(int64(3) << 39))
	}
	if got := mulShift64(math.MaxInt64, 4, 0); got != math.MaxInt64 {
		t.Errorf("got %d, want saturation", got)
	}
	if got := mulDiv(1<<50, 1<<30, 1<<40); got != 1<<40 {
		t.Errorf("got %d, want %d", got, int64(1)<<40)
	}
	if got := mulDiv(-7, 3, 2); got != -10 {
		t.Errorf("got %d, want -10", got)
	}
	if got := divRound(-5, 2); got != -3 {
		t.Errorf("got %d, want -3", got)
	}
	if got := divRound(5, -2); got != -3 {
		t.Errorf("got %d, want -3", got)
	}
}
