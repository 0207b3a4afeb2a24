package plotview

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
)

// Axis maps the data range of one dimension of a view onto the face.
// An Axis is derived from a Range for the duration of one render and is
// never modified while rendering.
type Axis struct {
	// Range is the data interval covered by the axis.
	Range

	// Label is the axis title. It may be empty.
	Label string

	// Trans determines how data values are mapped. Defaults to LinearTrans.
	Trans Transformation

	// Ticker generates the tick marks. Defaults to Trans.Ticker.
	Ticker plot.Ticker
}

// NewAxis returns a linear axis covering r. It fails with ErrInvalidRange
// if r is inverted or not finite.
func NewAxis(r Range) (*Axis, error) {
	return NewAxisTrans(r, LinearTrans)
}

// NewAxisTrans returns an axis covering r mapped by trans.
func NewAxisTrans(r Range, trans Transformation) (*Axis, error) {
	if trans.Domain != nil && !trans.Domain(r) {
		return nil, fmt.Errorf("%w: %s for %s axis", ErrInvalidRange, r, trans.Name)
	}
	return &Axis{Range: r, Trans: trans, Ticker: trans.Ticker}, nil
}

// Map maps x to the unit interval: the axis minimum maps to 0 and the
// maximum to 1. Values outside of the range map to values < 0 or > 1.
// A zero width axis maps every value to 0.5.
func (a *Axis) Map(x float64) float64 {
	if a.Span() == 0 {
		return 0.5
	}
	return a.Trans.Trans(a.Range, Range{0, 1}, x)
}

// Unmap is the inverse of Map.
func (a *Axis) Unmap(u float64) float64 {
	if a.Span() == 0 {
		return a.Min
	}
	return a.Trans.Inverse(a.Range, Range{0, 1}, u)
}

// Ticks returns the tick marks of a which lie inside the axis range
// sorted by value.
func (a *Axis) Ticks() []plot.Tick {
	if a.Span() == 0 {
		// The tickers cannot deal with an empty interval.
		return []plot.Tick{{Value: a.Min, Label: strconv.FormatFloat(a.Min, 'g', 4, 64)}}
	}
	ticker := a.Ticker
	if ticker == nil {
		ticker = plot.DefaultTicks{}
	}
	var ticks []plot.Tick
	for _, t := range ticker.Ticks(a.Min, a.Max) {
		if !a.Contains(t.Value) {
			continue
		}
		ticks = append(ticks, t)
	}
	sort.SliceStable(ticks, func(i, j int) bool { return ticks[i].Value < ticks[j].Value })
	return ticks
}

// MajorTicks returns only the labeled ticks of a.
func (a *Axis) MajorTicks() []plot.Tick {
	var major []plot.Tick
	for _, t := range a.Ticks() {
		if t.IsMinor() {
			continue
		}
		major = append(major, t)
	}
	return major
}

func (a *Axis) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=%s %s %q", a.Range, a.Trans.Name, a.Label)
}
