package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/fxcurve"
)

// readPoints reads one point per line, as two decimal numbers in
// millimetres separated by spaces or a comma. Blank lines and lines
// starting with # are skipped.
func readPoints(r io.Reader) ([]fxcurve.Point[fxcurve.E16], error) {
	var pts []fxcurve.Point[fxcurve.E16]
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		pt, err := parsePoint(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts = append(pts, pt)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading points: %w", err)
	}
	return pts, nil
}

func parsePoint(s string) (fxcurve.Point[fxcurve.E16], error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return fxcurve.Point[fxcurve.E16]{}, fmt.Errorf("want 2 coordinates, got %d", len(fields))
	}
	var xy [2]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fxcurve.Point[fxcurve.E16]{}, err
		}
		// Fixed[E16] holds ±32767.
		if v <= -32768 || v >= 32768 {
			return fxcurve.Point[fxcurve.E16]{}, fmt.Errorf("coordinate %v out of range", v)
		}
		xy[i] = v
	}
	return fxcurve.PtFloat[fxcurve.E16](xy[0], xy[1]), nil
}
