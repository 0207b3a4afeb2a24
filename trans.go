// Axis Transformations
//
// An axis transformation maps the data range of an axis onto some target
// interval, typically [0,1] or a length on the drawing surface.
package plotview

import (
	"math"

	"gonum.org/v1/plot"
)

// A Transformation bundles two functions Trans and Inverse together with
// an appropiate Ticker. The two functions map two intervals.
type Transformation struct {
	Name    string
	Trans   func(from, to Range, x float64) float64
	Inverse func(from, to Range, y float64) float64
	Ticker  plot.Ticker

	// Domain reports whether a range can be used with this transformation.
	Domain func(r Range) bool
}

// LinearTrans implements a linear mapping of from to to.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Range, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
	Inverse: func(from, to Range, y float64) float64 {
		return from.Min + (from.Max-from.Min)*(y-to.Min)/(to.Max-to.Min)
	},
	Ticker: plot.DefaultTicks{},
	Domain: func(r Range) bool { return r.IsValid() },
}

// Log10Trans maps from to to logarithmically. Ranges must be strictly
// positive.
var Log10Trans = Transformation{
	Name: "Log10",
	Trans: func(from, to Range, x float64) float64 {
		t := math.Log10(x/from.Min) / math.Log10(from.Max/from.Min)
		return to.Min + t*(to.Max-to.Min)
	},
	Inverse: func(from, to Range, y float64) float64 {
		t := (y - to.Min) / (to.Max - to.Min)
		return from.Min * math.Pow(10, t*math.Log10(from.Max/from.Min))
	},
	Ticker: plot.LogTicks{},
	Domain: func(r Range) bool { return r.IsValid() && r.Min > 0 },
}
