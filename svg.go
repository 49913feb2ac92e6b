package fxcurve

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [Curve.SVG] and
// [Curve.WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts the curve to a string of SVG path commands.
//
// See [Curve.WriteSVG] for a version that writes to an [io.Writer] instead
// of returning a string.
func (c *Curve[S]) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	c.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG converts the curve to a string of SVG path commands and writes
// it to w. Coordinates are written as they are stored, so a polar curve
// comes out with radius and angle as x and y.
//
// SVG has no quartic command. Quartic segments are written as four lines
// through the curve at t = ¼, ½, ¾ and 1.
func (c *Curve[S]) WriteSVG(w io.Writer, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n Fixed[S]) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n.Float64(), 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n.Float64(), 'f', maxPrec, 64)
			return strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
	}
	pt := func(p Point[S]) string {
		return format(p.X) + "," + format(p.Y)
	}

	writef("M%s", pt(c.Start))
	for seg := range c.Segments() {
		if err != nil {
			return err
		}
		switch seg.Degree {
		case Linear:
			writef(" L%s", pt(seg.P[1]))
		case Quadratic:
			writef(" Q%s %s", pt(seg.P[1]), pt(seg.P[2]))
		case Cubic:
			writef(" C%s %s %s", pt(seg.P[1]), pt(seg.P[2]), pt(seg.P[3]))
		case Quartic:
			l, r := seg.Subdivide()
			_, lr := l.Subdivide()
			_, rr := r.Subdivide()
			writef(" L%s L%s L%s L%s", pt(lr.Start()), pt(l.End()), pt(rr.Start()), pt(r.End()))
		default:
			panic("unreachable")
		}
	}
	if c.IsClosed() {
		writef(" Z")
	}
	return err
}
