package geom

import (
	"sort"
)

// ----------------------------------------------------------------------------
// BarGroups helps determing bar sizes for Bar

// BarGroups collects the bars drawn at the same x value.
type BarGroups struct {
	Group    map[float64][]int
	Position string  // "dodge" or something else
	Ggap     float64 // between groups
	Dgap     float64 // between bars inside a group if dodged
	Same     bool    // Same width for all bars?

	xs []float64
	md float64
	lg int
}

// NewBarGroups creates a BarGroups for dodged bar positioning with
// sensible gaps between bars.
func NewBarGroups(position string, groupGap, barGap float64, sameWidth bool) *BarGroups {
	if groupGap == 0 {
		groupGap = 0.2
	}
	return &BarGroups{
		Group:    make(map[float64][]int),
		Position: position,
		Ggap:     groupGap,
		Dgap:     barGap,
		Same:     sameWidth,
	}
}

// Record the point i with the given x coordinate.
func (bg *BarGroups) Record(x float64, i int) {
	bg.Group[x] = append(bg.Group[x], i)
	bg.xs = nil
}

// Width returns the center and the halfwidth for the bar i at x.
// Bars not recorded at x get the full group width.
func (bg *BarGroups) Width(x float64, i int) (center float64, halfwidth float64) {
	minDelta := bg.MinDelta()
	nonGapWidth := minDelta * (1 - bg.Ggap)

	if bg.Position != "dodge" {
		return x, nonGapWidth / 2
	}

	n := len(bg.Group[x])
	if bg.Same {
		n = bg.MaxGroupSize()
	}
	if n == 0 {
		return x, nonGapWidth / 2
	}
	halfwidth = nonGapWidth / float64(2*n)

	g := -1
	for j, k := range bg.Group[x] {
		if k == i {
			g = j
			break
		}
	}
	if g == -1 {
		return x, nonGapWidth / 2
	}

	center = x
	m := len(bg.Group[x])
	center += float64(2*g-m+1) * halfwidth

	halfwidth -= minDelta * bg.Dgap

	return center, halfwidth
}

// Xs returns the sorted list of recorded x values.
func (bg *BarGroups) Xs() []float64 {
	bg.recalc()
	return bg.xs
}

// MinDelta returns the smallest difference between recorded x-values.
// It is 1 if less than two different x-values have been recorded.
func (bg *BarGroups) MinDelta() float64 {
	bg.recalc()
	return bg.md
}

// MaxGroupSize determines the maximum number of values recorded per x-values.
func (bg *BarGroups) MaxGroupSize() int {
	bg.recalc()
	return bg.lg
}

func (bg *BarGroups) recalc() {
	if bg.xs != nil {
		return
	}

	// xs: all x-valuses in sorted order
	bg.xs = make([]float64, 0, len(bg.Group))
	for x := range bg.Group {
		bg.xs = append(bg.xs, x)
	}
	sort.Float64s(bg.xs)

	// md: minumum distance between two x-valuse
	bg.md = 1
	if len(bg.xs) > 1 {
		bg.md = bg.xs[1] - bg.xs[0]
		for i := 2; i < len(bg.xs); i++ {
			if m := bg.xs[i] - bg.xs[i-1]; m < bg.md {
				bg.md = m
			}
		}
	}

	// lg: largest groups size
	bg.lg = 0
	for _, is := range bg.Group {
		if len(is) > bg.lg {
			bg.lg = len(is)
		}
	}
}
