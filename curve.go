package fxcurve

import (
	"fmt"
	"iter"
)

// Degree is the degree of a curve's segments. A segment of degree n has n+1
// control points, n of which are stored; the first is shared with the
// previous segment's end.
type Degree int

const (
	Linear    Degree = 1
	Quadratic Degree = 2
	Cubic     Degree = 3
	Quartic   Degree = 4
)

// MaxDegree is the highest supported segment degree.
const MaxDegree = 4

func (d Degree) String() string {
	switch d {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	case Quartic:
		return "quartic"
	default:
		return fmt.Sprintf("Degree(%d)", int(d))
	}
}

func (d Degree) check() {
	if d < Linear || d > MaxDegree {
		panic(fmt.Sprintf("fxcurve: unsupported degree %d", int(d)))
	}
}

// Curve is a piecewise Bézier curve: a start point followed by segments of
// equal degree, stored in a [PointBuffer]. The buffer holds Degree points
// per segment. A closed curve ends at its start point.
//
// Operations that transform the curve do so in place, reading segments from
// the front of the buffer and writing results to its back. They never
// allocate.
type Curve[S Scale] struct {
	Start  Point[S]
	Degree Degree

	buf *PointBuffer[S]
}

// NewCurve returns an empty curve of the given degree, starting at start and
// using storage for its points.
func NewCurve[S Scale](deg Degree, start Point[S], storage []Point[S]) *Curve[S] {
	deg.check()
	return &Curve[S]{
		Start:  start,
		Degree: deg,
		buf:    NewPointBuffer(storage),
	}
}

// Buffer returns the buffer holding the curve's points.
//
// Writing to the buffer directly must preserve the curve's invariant that
// its length is a multiple of the degree.
func (c *Curve[S]) Buffer() *PointBuffer[S] { return c.buf }

// Len returns the number of stored points, excluding the start point.
func (c *Curve[S]) Len() int { return c.buf.Len() }

func (c *Curve[S]) NumSegments() int { return c.buf.Len() / int(c.Degree) }

// AppendSegment appends a segment, given by its control points after the
// shared start. It returns false if the buffer doesn't have room for it.
//
// AppendSegment panics if the number of points doesn't match the degree.
func (c *Curve[S]) AppendSegment(pts ...Point[S]) bool {
	if len(pts) != int(c.Degree) {
		panic(fmt.Sprintf("fxcurve: %d points for %v segment", len(pts), c.Degree))
	}
	if c.buf.CanWrite() < len(pts) {
		Logger().Debug("curve full", "degree", c.Degree, "len", c.buf.Len())
		return false
	}
	for _, pt := range pts {
		c.buf.Write(pt)
	}
	return true
}

// End returns the curve's end point, which is the start point for an empty
// curve.
func (c *Curve[S]) End() Point[S] {
	if pt, ok := c.buf.LookAhead(-1); ok {
		return pt
	}
	return c.Start
}

// IsClosed reports whether the curve has segments and ends at its start.
func (c *Curve[S]) IsClosed() bool {
	return c.buf.Len() > 0 && c.End() == c.Start
}

// Close appends a straight segment from the curve's end to its start, unless
// the curve is already closed. It returns false if there is no room.
func (c *Curve[S]) Close() bool {
	if c.buf.Len() == 0 || c.IsClosed() {
		return true
	}
	var seg [MaxDegree]Point[S]
	line := chord(c.End(), c.Start, c.Degree)
	copy(seg[:], line.P[1:])
	return c.AppendSegment(seg[:c.Degree]...)
}

// chord returns the straight segment from a to b, with control points
// evenly spaced along it.
func chord[S Scale](a, b Point[S], deg Degree) Segment[S] {
	seg := Segment[S]{Degree: deg}
	n := int64(deg)
	dx := int64(b.X) - int64(a.X)
	dy := int64(b.Y) - int64(a.Y)
	for i := range int64(deg) + 1 {
		seg.P[i] = Point[S]{
			X: Fixed[S](int64(a.X) + divRound(dx*i, n)),
			Y: Fixed[S](int64(a.Y) + divRound(dy*i, n)),
		}
	}
	return seg
}

// Clear removes all segments and moves the start point.
func (c *Curve[S]) Clear(start Point[S]) {
	c.buf.Clear()
	c.Start = start
}

// Segments returns an iterator over the curve's segments without consuming
// them.
func (c *Curve[S]) Segments() iter.Seq[Segment[S]] {
	return func(yield func(Segment[S]) bool) {
		deg := int(c.Degree)
		seg := Segment[S]{Degree: c.Degree}
		seg.P[0] = c.Start
		i := 0
		for pt := range c.buf.All() {
			i++
			seg.P[i] = pt
			if i == deg {
				if !yield(seg) {
					return
				}
				seg.P[0] = pt
				i = 0
			}
		}
	}
}

// Points returns an iterator over all of the curve's points, starting with
// the start point.
func (c *Curve[S]) Points() iter.Seq[Point[S]] {
	return func(yield func(Point[S]) bool) {
		if !yield(c.Start) {
			return
		}
		for pt := range c.buf.All() {
			if !yield(pt) {
				return
			}
		}
	}
}

// Reanchor moves the start of a closed curve forward by n segments, leaving
// its shape unchanged. Negative n moves it backwards. It returns false,
// without changing the curve, if the curve isn't closed.
func (c *Curve[S]) Reanchor(n int) bool {
	if !c.IsClosed() {
		return false
	}
	segs := c.NumSegments()
	n %= segs
	if n < 0 {
		n += segs
	}
	if n == 0 {
		return true
	}
	k := n * int(c.Degree)
	pt, _ := c.buf.LookAhead(k - 1)
	c.buf.Rotate(k)
	c.Start = pt
	return true
}

// Reverse reverses the curve's direction. Its end becomes its start.
func (c *Curve[S]) Reverse() {
	if c.buf.Len() == 0 {
		return
	}
	c.buf.Reverse()
	end, _ := c.buf.Read()
	c.buf.Write(c.Start)
	c.Start = end
}

// BoundingBox returns the bounds of the curve's control points, which
// contain the curve.
func (c *Curve[S]) BoundingBox() Rect[S] {
	r := Rect[S]{X0: c.Start.X, Y0: c.Start.Y, X1: c.Start.X, Y1: c.Start.Y}
	for pt := range c.buf.All() {
		r = r.UnionPoint(pt)
	}
	return r
}

// readSegment consumes the next segment's stored points, completing it with
// start.
func (c *Curve[S]) readSegment(start Point[S]) (Segment[S], bool) {
	seg := Segment[S]{Degree: c.Degree}
	if c.buf.CanRead() < int(c.Degree) {
		return seg, false
	}
	seg.P[0] = start
	for i := 1; i <= int(c.Degree); i++ {
		seg.P[i], _ = c.buf.Read()
	}
	return seg, true
}

// writeSegment appends the stored points of seg. The caller checks for
// room.
func (c *Curve[S]) writeSegment(seg *Segment[S]) {
	for _, pt := range seg.P[1 : seg.Degree+1] {
		c.buf.Write(pt)
	}
}

// Segment is a single Bézier segment of up to MaxDegree.
type Segment[S Scale] struct {
	Degree Degree
	P      [MaxDegree + 1]Point[S]
}

func (s Segment[S]) Start() Point[S] { return s.P[0] }
func (s Segment[S]) End() Point[S]   { return s.P[s.Degree] }

// Ctrl returns the segment's control points.
func (s *Segment[S]) Ctrl() []Point[S] { return s.P[:s.Degree+1] }

// Line returns the segment's chord.
func (s Segment[S]) Line() Line[S] { return Line[S]{s.P[0], s.P[s.Degree]} }

// Quad returns a quadratic segment. It panics for other degrees.
func (s Segment[S]) Quad() QuadBez[S] {
	if s.Degree != Quadratic {
		panic(fmt.Sprintf("fxcurve: %v segment isn't quadratic", s.Degree))
	}
	return QuadBez[S]{s.P[0], s.P[1], s.P[2]}
}

// Cubic returns a cubic segment. It panics for other degrees.
func (s Segment[S]) Cubic() CubicBez[S] {
	if s.Degree != Cubic {
		panic(fmt.Sprintf("fxcurve: %v segment isn't cubic", s.Degree))
	}
	return CubicBez[S]{s.P[0], s.P[1], s.P[2], s.P[3]}
}

// Subdivide splits the segment at t = 0.5.
func (s Segment[S]) Subdivide() (Segment[S], Segment[S]) {
	l := Segment[S]{Degree: s.Degree}
	r := Segment[S]{Degree: s.Degree}
	deCasteljau(s.P[:s.Degree+1], l.P[:s.Degree+1], r.P[:s.Degree+1])
	return l, r
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) clear() {
	opt.isSet = false
	opt.value = *new(T)
}

func (opt *option[T]) unwrap() T {
	if !opt.isSet {
		panic("option isn't set")
	}
	return opt.value
}
