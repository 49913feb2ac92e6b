// Command curveplan plans a tool path from Bézier control points.
//
// It reads points in millimetres, one "x y" pair per line: the start point
// followed by each segment's control points. The curve is offset by the
// tool radius, flattened, and optionally converted to polar coordinates.
// The resulting points are written to standard output in the same format,
// with polar points as "radius angle".
//
// Usage:
//
//	curveplan [flags] [file]
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/golang/glog"

	"honnef.co/go/fxcurve"
)

// pointFlag is an optional point given as "x,y".
type pointFlag struct {
	p *fxcurve.Point[fxcurve.E16]
}

func (f *pointFlag) String() string {
	if f.p == nil {
		return ""
	}
	return fmt.Sprintf("%v,%v", f.p.X, f.p.Y)
}

func (f *pointFlag) Set(s string) error {
	p, err := parsePoint(s)
	if err != nil {
		return err
	}
	f.p = &p
	return nil
}

var (
	degree    = flag.Int("degree", 2, "Degree of the curve's segments, 1 to 4.")
	capacity  = flag.Int("cap", 4096, "Number of points the curve can hold.")
	closeFlag = flag.Bool("close", false, "Close the curve with a straight segment.")
	metric    = flag.String("metric", fxcurve.Unflatness.String(), "Flattening metric, unflatness or chord.")
	threshold = flag.Float64("threshold", 0.01, "Flattening threshold in mm. Zero disables flattening.")
	passes    = flag.Int("passes", 16, "Maximum number of flattening passes.")

	radius     = flag.Float64("radius", 0, "Tool radius in mm, positive for the left side.")
	bridge     = flag.Float64("bridge", fxcurve.DefaultOffsetOpts[fxcurve.E16]().BridgeDistance.Float64(), "Largest joint gap in mm closed without a bridging segment.")
	miterLimit = flag.Float64("miter-limit", fxcurve.DefaultOffsetOpts[fxcurve.E16]().MiterLimit.Float64(), "Miter limit as a multiple of the radius.")
	approach   pointFlag

	center    pointFlag
	sineLimit = flag.Float64("sine-limit", fxcurve.DefaultPolarOpts.SineLimit.Float64(), "Smallest tangent sine for polar control points.")

	svgOut  = flag.String("svg", "", "Write the cartesian path as SVG to this file.")
	pngOut  = flag.String("png", "", "Write a preview of the cartesian path as PNG to this file.")
	pngSize = flag.Int("png-size", 512, "Size of the PNG preview in pixels.")
)

func init() {
	flag.Var(&approach, "approach", "Point \"x,y\" the tool comes from. Defaults to the curve's own direction.")
	flag.Var(&center, "polar", "Convert to polar coordinates about the point \"x,y\".")
}

func main() {
	flag.Parse()
	defer glog.Flush()
	fxcurve.SetLogger(slog.New(glogHandler{}))

	m, err := parseMetric(*metric)
	if err != nil {
		glog.Exitf("curveplan: %v", err)
	}
	cfg := config{
		degree:    *degree,
		capacity:  *capacity,
		close:     *closeFlag,
		metric:    m,
		threshold: *threshold,
		passes:    *passes,
		radius:    *radius,
		approach:  approach.p,
		offsetOpts: fxcurve.DefaultOffsetOpts[fxcurve.E16]().
			WithBridgeDistance(fxcurve.FromFloat64[fxcurve.E16](*bridge)).
			WithMiterLimit(fxcurve.FromFloat64[fxcurve.E16](*miterLimit)),
		center:    center.p,
		polarOpts: fxcurve.DefaultPolarOpts.WithSineLimit(fxcurve.FromFloat64[fxcurve.E30](*sineLimit)),
		svgPath:   *svgOut,
		pngPath:   *pngOut,
		pngSize:   *pngSize,
	}

	in := io.Reader(os.Stdin)
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			glog.Exitf("curveplan: %v", err)
		}
		defer f.Close()
		in = f
	}
	if err := run(cfg, in, os.Stdout); err != nil {
		glog.Exitf("curveplan: %v", err)
	}
}

func run(cfg config, in io.Reader, out io.Writer) error {
	pts, err := readPoints(in)
	if err != nil {
		return err
	}
	c, err := build(cfg, pts)
	if err != nil {
		return err
	}
	glog.V(1).Infof("read %d %v segments", c.NumSegments(), c.Degree)
	if err := compensate(c, cfg); err != nil {
		return err
	}
	if err := flatten(c, cfg); err != nil {
		return err
	}
	glog.V(1).Infof("planned %d segments, %d points lost to wrapping", c.NumSegments(), c.Buffer().Lost())

	if cfg.svgPath != "" {
		if err := writeSVG(cfg.svgPath, c); err != nil {
			return err
		}
	}
	if cfg.pngPath != "" {
		if err := writePNG(cfg.pngPath, c, cfg.pngSize); err != nil {
			return err
		}
	}

	if err := polar(c, cfg); err != nil {
		return err
	}
	return writePoints(out, c)
}

func writeSVG(name string, c *curve) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := writeSVGDocument(f, c); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// writeSVGDocument writes a standalone SVG document showing the curve.
func writeSVGDocument(w io.Writer, c *curve) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	b := c.BoundingBox()
	writef("<svg viewBox=\"%v %v %v %v\" xmlns=\"http://www.w3.org/2000/svg\">\n", b.X0, b.Y0, b.Width(), b.Height())
	writef(`<path fill="none" stroke="black" stroke-width="0.1" d="`)
	if err != nil {
		return err
	}
	if err := c.WriteSVG(w, fxcurve.SVGOptions{MaxPrecision: 4}); err != nil {
		return err
	}
	writef("\" />\n</svg>\n")
	return err
}

func writePNG(name string, c *curve, size int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, rasterize(c, size, 1.5)); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
