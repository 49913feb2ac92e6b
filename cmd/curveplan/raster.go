package main

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"honnef.co/go/fxcurve"
)

const (
	previewMargin = 8
	previewSteps  = 16
)

// rasterize draws the curve as a black line on a white size×size image,
// scaled to fit. The y axis points up.
func rasterize(c *curve, size int, width float32) *image.Gray {
	bounds := c.BoundingBox()
	extent := max(bounds.Width(), bounds.Height(), fxcurve.Int[fxcurve.E16](1))
	// Pixels per millimetre.
	scale := fxcurve.Int[fxcurve.E16](int32(size - 2*previewMargin)).Div(extent)
	margin := fxcurve.Int[fxcurve.E16](previewMargin)
	toPixel := func(p fxcurve.Point[fxcurve.E16]) fixed.Point26_6 {
		return fxcurve.Pt(
			(p.X-bounds.X0).Mul(scale)+margin,
			(bounds.Y1-p.Y).Mul(scale)+margin,
		).Fixed26_6()
	}

	r := vector.NewRasterizer(size, size)
	prev := toPixel(c.Start)
	for seg := range c.Segments() {
		sampleSegment(seg, func(p fxcurve.Point[fxcurve.E16]) {
			next := toPixel(p)
			strokeLine(r, prev, next, width)
			prev = next
		})
	}

	dst := image.NewGray(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	r.DrawOp = draw.Over
	r.Draw(dst, dst.Bounds(), image.Black, image.Point{})
	return dst
}

// sampleSegment calls fn with points along seg, ending with its end point.
func sampleSegment(seg fxcurve.Segment[fxcurve.E16], fn func(fxcurve.Point[fxcurve.E16])) {
	switch seg.Degree {
	case fxcurve.Quadratic:
		poly := seg.Quad().Coeffs()
		it := fxcurve.NewQuadIter(fxcurve.Steps(previewSteps))
		for it.Next() {
			fn(poly.Value(&it))
		}
	case fxcurve.Cubic:
		poly := seg.Cubic().Coeffs()
		it := fxcurve.NewIncCubicIter(fxcurve.Steps(previewSteps))
		for it.Next() {
			fn(poly.Value(&it))
		}
	case fxcurve.Quartic:
		// Close enough for a preview.
		l, r := seg.Subdivide()
		for _, p := range l.Ctrl()[1:] {
			fn(p)
		}
		for _, p := range r.Ctrl()[1:] {
			fn(p)
		}
	default:
		fn(seg.End())
	}
}

// strokeLine adds a w pixels wide quadrilateral from a to b.
func strokeLine(r *vector.Rasterizer, a, b fixed.Point26_6, w float32) {
	ax, ay := float32(a.X)/64, float32(a.Y)/64
	bx, by := float32(b.X)/64, float32(b.Y)/64
	dx, dy := bx-ax, by-ay
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*w/2, dx/l*w/2
	r.MoveTo(ax+nx, ay+ny)
	r.LineTo(bx+nx, by+ny)
	r.LineTo(bx-nx, by-ny)
	r.LineTo(ax-nx, ay-ny)
	r.ClosePath()
}
