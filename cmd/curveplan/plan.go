package main

import (
	"errors"
	"fmt"
	"io"

	"honnef.co/go/fxcurve"
)

var (
	errCapacity   = errors.New("out of buffer capacity")
	errDegenerate = errors.New("degenerate geometry")
	errDegree     = errors.New("unsupported degree")
)

type curve = fxcurve.Curve[fxcurve.E16]

// config holds the planning parameters. Lengths are in millimetres.
type config struct {
	degree    int
	capacity  int
	close     bool
	metric    fxcurve.Metric
	threshold float64
	passes    int

	radius     float64
	approach   *fxcurve.Point[fxcurve.E16]
	offsetOpts fxcurve.OffsetOpts[fxcurve.E16]

	center    *fxcurve.Point[fxcurve.E16]
	polarOpts fxcurve.PolarOpts

	svgPath string
	pngPath string
	pngSize int
}

func parseMetric(s string) (fxcurve.Metric, error) {
	for _, m := range []fxcurve.Metric{fxcurve.Unflatness, fxcurve.ChordLength} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}

// build creates the curve from its start point and the control points of
// its segments.
func build(cfg config, pts []fxcurve.Point[fxcurve.E16]) (*curve, error) {
	deg := fxcurve.Degree(cfg.degree)
	if deg < fxcurve.Linear || deg > fxcurve.MaxDegree {
		return nil, fmt.Errorf("degree %d: %w", cfg.degree, errDegree)
	}
	if len(pts) < 1+int(deg) || (len(pts)-1)%int(deg) != 0 {
		return nil, fmt.Errorf("%d points don't form %v segments", len(pts), deg)
	}
	if cfg.capacity < len(pts) {
		return nil, fmt.Errorf("%d points need a capacity of at least %d: %w", len(pts), len(pts), errCapacity)
	}
	c := fxcurve.NewCurve(deg, pts[0], make([]fxcurve.Point[fxcurve.E16], cfg.capacity))
	for i := 1; i < len(pts); i += int(deg) {
		if !c.AppendSegment(pts[i : i+int(deg)]...) {
			return nil, fmt.Errorf("appending segment %d: %w", i/int(deg), errCapacity)
		}
	}
	if cfg.close && !c.Close() {
		return nil, fmt.Errorf("closing curve: %w", errCapacity)
	}
	return c, nil
}

// compensate offsets the curve by the tool radius.
func compensate(c *curve, cfg config) error {
	if cfg.radius == 0 {
		return nil
	}
	if c.Degree != fxcurve.Quadratic {
		return fmt.Errorf("radius compensation of %v curve: %w", c.Degree, errDegree)
	}
	r := fxcurve.FromFloat64[fxcurve.E16](cfg.radius)
	var n int
	var ok bool
	if cfg.approach != nil {
		n, ok = c.Offset(r, *cfg.approach, cfg.offsetOpts)
	} else {
		n, ok = c.OffsetOptimistic(r, cfg.offsetOpts)
	}
	if !ok {
		// A bridged segment needs room for four points.
		if c.Buffer().CanWrite() < 4 {
			return fmt.Errorf("radius compensation after %d segments: %w", n, errCapacity)
		}
		return fmt.Errorf("radius compensation: %w", errDegenerate)
	}
	return nil
}

// flatten splits the curve until it satisfies the metric's threshold.
func flatten(c *curve, cfg config) error {
	if cfg.threshold <= 0 {
		return nil
	}
	thr := fxcurve.FromFloat64[fxcurve.E16](cfg.threshold)
	passes, ok := c.FlattenTo(cfg.metric, thr, cfg.passes)
	if ok {
		return nil
	}
	if c.Buffer().CanWrite() < 2*int(c.Degree) {
		return fmt.Errorf("flattening pass %d: %w", passes, errCapacity)
	}
	return fmt.Errorf("%v still above %v mm after %d passes", cfg.metric, cfg.threshold, passes)
}

// polar converts the curve to polar coordinates about the configured
// center, if any.
func polar(c *curve, cfg config) error {
	if cfg.center == nil {
		return nil
	}
	if c.Degree != fxcurve.Quadratic {
		return fmt.Errorf("polar conversion of %v curve: %w", c.Degree, errDegree)
	}
	if n, ok := c.ToPolar(*cfg.center, cfg.polarOpts); !ok {
		return fmt.Errorf("polar conversion of segment %d: %w", n, errDegenerate)
	}
	return nil
}

// writePoints writes the curve's points, start point first, one per line.
func writePoints(w io.Writer, c *curve) error {
	for p := range c.Points() {
		if _, err := fmt.Fprintf(w, "%v %v\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}
