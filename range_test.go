package plotview

import (
	"math"
	"strconv"
	"testing"
)

var (
	nan  = math.NaN()
	pinf = math.Inf(1)
	ninf = math.Inf(-1)
)

var rangeUpdateTests = []struct {
	old  Range
	x    float64
	want Range
}{
	{Range{3, 6}, 4, Range{3, 6}},
	{Range{3, 6}, 2, Range{2, 6}},
	{Range{3, 6}, 7, Range{3, 7}},
	{Range{pinf, ninf}, nan, Range{pinf, ninf}},
	{Range{pinf, ninf}, 5, Range{5, 5}},
	{Range{5, 5}, nan, Range{5, 5}},
}

func TestRangeUpdate(t *testing.T) {
	for i, tc := range rangeUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestRangeValidity(t *testing.T) {
	for i, tc := range []struct {
		r            Range
		empty, valid bool
	}{
		{Range{0, 1}, false, true},
		{Range{1, 1}, false, true},
		{Range{2, 1}, true, false},
		{EmptyRange(), true, false},
		{Range{nan, 1}, true, false},
		{Range{0, pinf}, false, false},
	} {
		if got := tc.r.IsEmpty(); got != tc.empty {
			t.Errorf("%d: %s.IsEmpty() = %t, want %t", i, tc.r, got, tc.empty)
		}
		if got := tc.r.IsValid(); got != tc.valid {
			t.Errorf("%d: %s.IsValid() = %t, want %t", i, tc.r, got, tc.valid)
		}
	}
}
