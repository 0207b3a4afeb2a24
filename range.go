package plotview

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Range

// Range represents a closed real interval [Min, Max].
//
// A Range produced by reducing the extents of zero representations is the
// inverted interval [+Inf, -Inf]; it is not valid and no Axis can be built
// from it.
type Range struct {
	Min, Max float64
}

// EmptyRange returns the inverted range [+Inf, -Inf] which is the neutral
// element of the min/max reduction done by Update.
func EmptyRange() Range {
	return Range{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Update expands r to include all x. NaN values are ignored.
func (r *Range) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
	}
}

// IsEmpty reports whether r covers no value at all, e.g. the result of
// EmptyRange or an inverted interval.
func (r Range) IsEmpty() bool {
	return !(r.Min <= r.Max)
}

// IsValid reports whether both edges of r are finite and r is not inverted.
// A degenerate range with Min == Max is valid.
func (r Range) IsValid() bool {
	if math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return false
	}
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return false
	}
	return r.Min <= r.Max
}

// Span returns the width of r.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Contains reports whether x lies in r.
func (r Range) Contains(x float64) bool {
	return x >= r.Min && x <= r.Max
}

// Equal reports whether r and s have the same edges. NaN edges compare
// equal to each other.
func (r Range) Equal(s Range) bool {
	same := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return same(r.Min, s.Min) && same(r.Max, s.Max)
}

func (r Range) String() string {
	return fmt.Sprintf("[%g:%g]", r.Min, r.Max)
}
