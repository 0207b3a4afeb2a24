package data

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/plot/plotter"
)

func TestHistogram(t *testing.T) {
	for _, tc := range []struct {
		name string
		vals plotter.Values
		n    int
		want XYUVs
	}{
		{
			name: "two bins",
			vals: plotter.Values{0, 1, 2, 3, 4},
			n:    2,
			want: XYUVs{{0, 0, 2, 2}, {2, 0, 4, 3}},
		},
		{
			name: "skip non finite",
			vals: plotter.Values{1, math.NaN(), 3, math.Inf(1)},
			n:    1,
			want: XYUVs{{1, 0, 3, 2}},
		},
		{
			name: "equal values",
			vals: plotter.Values{3, 3},
			n:    5,
			want: XYUVs{{2.5, 0, 3.5, 2}},
		},
		{
			name: "no values",
			vals: plotter.Values{},
			n:    3,
			want: XYUVs{},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Histogram(tc.vals, tc.n)
			if err != nil {
				t.Fatalf("Unexpected error %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("Got %d bins, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("bin %d = %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}

	if _, err := Histogram(plotter.Values{1}, 0); !errors.Is(err, ErrNoBins) {
		t.Errorf("Got error %v, want ErrNoBins", err)
	}
}

func TestXYUVRange(t *testing.T) {
	d := XYUVs{{1, 2, 3, 4}, {-1, 5, 0, 2}}
	xmin, xmax, ymin, ymax, umin, umax, vmin, vmax := XYUVRange(d)
	if xmin != -1 || xmax != 1 || ymin != 2 || ymax != 5 ||
		umin != 0 || umax != 3 || vmin != 2 || vmax != 4 {
		t.Errorf("Got %v %v %v %v %v %v %v %v",
			xmin, xmax, ymin, ymax, umin, umax, vmin, vmax)
	}
}
