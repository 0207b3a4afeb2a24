package plotview

import (
	"fmt"
	"math"
	"testing"
)

var transformationTests = []struct {
	trans   Transformation
	a, b    float64 // from
	u, v    float64 // to
	x, want float64
}{
	{LinearTrans, 10, 20, 10, 20, 12, 12},
	{LinearTrans, 10, 20, 100, 200, 12, 120},
	{LinearTrans, 3, 5, 0, 1, 3, 0},
	{LinearTrans, 3, 5, 0, 1, 4, 0.5},
	{LinearTrans, 3, 5, 0, 1, 5, 1},
	{LinearTrans, 3, 5, 0, 1, 7, 2},

	{Log10Trans, 1, 100, 0, 1, 1, 0},
	{Log10Trans, 1, 100, 0, 1, 10, 0.5},
	{Log10Trans, 1, 100, 0, 1, 100, 1},
	{Log10Trans, 1, 1000, 0, 3, 10, 1},
}

func equal64(a, b float64) bool {
	ai, af := math.Modf(a)
	bi, bf := math.Modf(b)
	if af == 0 && bf == 0 {
		return ai == bi
	}
	return math.Abs(a-b) < 0.006
}

func TestTransform(t *testing.T) {
	for i, tc := range transformationTests {
		t.Run(fmt.Sprintf("%s/%d", tc.trans.Name, i), func(t *testing.T) {
			from, to := Range{tc.a, tc.b}, Range{tc.u, tc.v}
			got := tc.trans.Trans(from, to, tc.x)
			if !equal64(got, tc.want) {
				t.Errorf("%s.Trans(%v,%v,%f) = %f, want %f",
					tc.trans.Name, from, to, tc.x, got, tc.want)
			}
			back := tc.trans.Inverse(from, to, got)
			if !equal64(back, tc.x) {
				t.Errorf("%s.Inverse(%v,%v,%f) = %f, want %f",
					tc.trans.Name, from, to, got, back, tc.x)
			}
		})
	}
}

func TestTransformDomain(t *testing.T) {
	for _, tc := range []struct {
		trans Transformation
		r     Range
		want  bool
	}{
		{LinearTrans, Range{-1, 1}, true},
		{LinearTrans, Range{2, 2}, true},
		{LinearTrans, Range{2, 1}, false},
		{LinearTrans, EmptyRange(), false},
		{Log10Trans, Range{1, 10}, true},
		{Log10Trans, Range{0, 10}, false},
		{Log10Trans, Range{-5, 10}, false},
	} {
		if got := tc.trans.Domain(tc.r); got != tc.want {
			t.Errorf("%s.Domain(%s) = %t, want %t", tc.trans.Name, tc.r, got, tc.want)
		}
	}
}
