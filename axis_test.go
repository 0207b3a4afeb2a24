package plotview

import (
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/plot"
)

func TestNewAxis(t *testing.T) {
	if _, err := NewAxis(Range{2, 1}); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("inverted range: got error %v", err)
	}
	if _, err := NewAxis(Range{0, pinf}); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("infinite range: got error %v", err)
	}
	if _, err := NewAxisTrans(Range{0, 10}, Log10Trans); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("log axis containing 0: got error %v", err)
	}

	a, err := NewAxis(Range{-5, 15})
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	for _, tc := range []struct{ x, u float64 }{
		{-5, 0}, {15, 1}, {5, 0.5}, {0, 0.25}, {25, 1.5},
	} {
		if got := a.Map(tc.x); !equal64(got, tc.u) {
			t.Errorf("Map(%g) = %g, want %g", tc.x, got, tc.u)
		}
		if got := a.Unmap(tc.u); !equal64(got, tc.x) {
			t.Errorf("Unmap(%g) = %g, want %g", tc.u, got, tc.x)
		}
	}
}

func TestZeroSpanAxis(t *testing.T) {
	a, err := NewAxis(Range{3, 3})
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	for _, x := range []float64{-100, 3, 100} {
		if got := a.Map(x); got != 0.5 {
			t.Errorf("Map(%g) = %g, want 0.5", x, got)
		}
	}
	ticks := a.Ticks()
	if len(ticks) != 1 || ticks[0].Value != 3 || ticks[0].Label != "3" {
		t.Errorf("Got ticks %v", ticks)
	}
}

func TestAxisTicks(t *testing.T) {
	a, _ := NewAxis(Range{0, 10})
	a.Ticker = fixedTicks{
		{Value: 5, Label: "5"},
		{Value: -1, Label: "-1"},
		{Value: 7},
		{Value: 2, Label: "2"},
		{Value: 12, Label: "12"},
	}
	var got []float64
	for _, tick := range a.Ticks() {
		got = append(got, tick.Value)
	}
	if len(got) != 3 || got[0] != 2 || got[1] != 5 || got[2] != 7 {
		t.Errorf("Ticks() = %v, want [2 5 7]", got)
	}
	if major := a.MajorTicks(); len(major) != 2 || major[1].Label != "5" {
		t.Errorf("MajorTicks() = %v", major)
	}

	// The default ticker produces labeled ticks inside the range.
	a.Ticker = nil
	major := a.MajorTicks()
	if len(major) < 2 {
		t.Fatalf("Got only %d major ticks", len(major))
	}
	for i, tick := range major {
		if !a.Contains(tick.Value) {
			t.Errorf("tick %v outside %s", tick, a.Range)
		}
		if i > 0 && tick.Value <= major[i-1].Value {
			t.Errorf("ticks not sorted: %v", major)
		}
	}
}

func mustAxis(t *testing.T, r Range, ticker plot.Ticker) *Axis {
	t.Helper()
	a, err := NewAxis(r)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	a.Ticker = ticker
	return a
}

func TestRenderYAxisStrings(t *testing.T) {
	a := mustAxis(t, Range{0, 1}, ticks("0", "0", "0.5", "half", "1", "1"))
	got, longest := RenderYAxisStrings(a, 5)
	want := strings.Join([]string{
		"   1 +",
		"     |",
		"half +",
		"     |",
		"   0 +",
		"     +",
	}, "\n")
	if got != want || longest != 4 {
		t.Errorf("Got (longest=%d)\n%s\nWant\n%s", longest, got, want)
	}

	// Two ticks on the same row: the first one wins.
	a = mustAxis(t, Range{0, 1}, ticks("0", "a", "0.01", "bbb"))
	got, longest = RenderYAxisStrings(a, 2)
	if got != "  |\na +\n  +" || longest != 1 {
		t.Errorf("Got (longest=%d)\n%s", longest, got)
	}

	a = mustAxis(t, Range{0, 1}, nil)
	if got, longest = RenderYAxisStrings(a, 2); got != " |\n |\n +" || longest != 0 {
		t.Errorf("Got (longest=%d)\n%q", longest, got)
	}
}

func TestRenderXAxisStrings(t *testing.T) {
	for _, tc := range []struct {
		name   string
		ticker fixedTicks
		w      int
		want   string
		start  int
	}{
		{
			name:   "simple",
			ticker: ticks("0", "0", "10", "10"),
			w:      11,
			want:   "++---------+\n 0        10",
		},
		{
			name:   "left overhang",
			ticker: ticks("0", "-10000000"),
			w:      20,
			want:   "   ++-------------------\n-10000000",
			start:  -3,
		},
		{
			name:   "collision",
			ticker: ticks("0", "aaa", "1", "bbb", "9", "ccc"),
			w:      10,
			want:   "+++-------+\naaa      ccc",
		},
		{
			name:   "no ticks",
			ticker: nil,
			w:      4,
			want:   "+----\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := mustAxis(t, Range{0, 10}, tc.ticker)
			got, start := RenderXAxisStrings(a, tc.w)
			if got != tc.want || start != tc.start {
				t.Errorf("Got (start=%d)\n%q\nWant (start=%d)\n%q", start, got, tc.start, tc.want)
			}
		})
	}
}
