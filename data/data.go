// Package data contains various data interfaces and prototypical
// implementations.
package data

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot/plotter"
)

// XYUVer wraps the Len and XYUV methods.
type XYUVer interface {
	// Len returns the number of x, y, u, v quadruples.
	Len() int

	// XYUV returns an x, y, u, v quadruple.
	XYUV(int) (x, y, u, v float64)
}

// XYUVRange returns the minimum and maximum x, y, u and v values.
func XYUVRange(xyuvs XYUVer) (xmin, xmax, ymin, ymax, umin, umax, vmin, vmax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	umin, umax = math.Inf(1), math.Inf(-1)
	vmin, vmax = math.Inf(1), math.Inf(-1)
	for i := 0; i < xyuvs.Len(); i++ {
		x, y, u, v := xyuvs.XYUV(i)
		xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
		umin, umax = math.Min(umin, u), math.Max(umax, u)
		vmin, vmax = math.Min(vmin, v), math.Max(vmax, v)
	}
	return xmin, xmax, ymin, ymax, umin, umax, vmin, vmax
}

// XYUVs implements the XYUVer interface.
type XYUVs []struct{ X, Y, U, V float64 }

func (d XYUVs) Len() int                        { return len(d) }
func (d XYUVs) XYUV(i int) (x, y, u, v float64) { return d[i].X, d[i].Y, d[i].U, d[i].V }

// ErrNoBins is returned by Histogram for a bin count < 1.
var ErrNoBins = errors.New("histogram needs at least one bin")

// Histogram sorts the finite values of vals into n bins of equal width
// spanning the range of the values. Each bin is returned as the rectangle
// from (low,0) to (high,count). The last bin includes its upper edge.
// If all values are equal a single bin of width 1 centered on the value
// is used.
func Histogram(vals plotter.Valuer, n int) (XYUVs, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoBins, n)
	}

	min, max := math.Inf(1), math.Inf(-1)
	for i := 0; i < vals.Len(); i++ {
		v := vals.Value(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		min, max = math.Min(min, v), math.Max(max, v)
	}
	if min > max {
		return XYUVs{}, nil
	}
	if min == max {
		n = 1
		min, max = min-0.5, max+0.5
	}

	width := (max - min) / float64(n)
	bins := make(XYUVs, n)
	for i := range bins {
		bins[i].X = min + float64(i)*width
		bins[i].U = min + float64(i+1)*width
	}
	bins[n-1].U = max

	for i := 0; i < vals.Len(); i++ {
		v := vals.Value(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		k := int((v - min) / width)
		if k >= n {
			k = n - 1
		}
		bins[k].V++
	}
	return bins, nil
}
