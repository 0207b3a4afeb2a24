package geom

import "testing"

func TestBarGroups(t *testing.T) {
	bg := NewBarGroups("dodge", 0, 0, false)
	bg.Record(3, 2)
	bg.Record(1, 0)
	bg.Record(1, 1)

	if xs := bg.Xs(); len(xs) != 2 || xs[0] != 1 || xs[1] != 3 {
		t.Errorf("Xs() = %v", xs)
	}
	if got := bg.MinDelta(); got != 2 {
		t.Errorf("MinDelta() = %g, want 2", got)
	}
	if got := bg.MaxGroupSize(); got != 2 {
		t.Errorf("MaxGroupSize() = %d, want 2", got)
	}

	for _, tc := range []struct {
		x         float64
		i         int
		center, w float64
	}{
		{1, 0, 0.6, 0.4},
		{1, 1, 1.4, 0.4},
		{3, 2, 3, 0.8},
		{3, 7, 3, 0.8}, // not recorded
	} {
		c, hw := bg.Width(tc.x, tc.i)
		if !near(c, tc.center) || !near(hw, tc.w) {
			t.Errorf("Width(%g,%d) = %g,%g, want %g,%g", tc.x, tc.i, c, hw, tc.center, tc.w)
		}
	}

	// Recording invalidates the cached values.
	bg.Record(2, 3)
	if got := bg.MinDelta(); got != 1 {
		t.Errorf("MinDelta() after Record = %g, want 1", got)
	}
}

func TestBarGroupsDegenerate(t *testing.T) {
	bg := NewBarGroups("stack", 0, 0, true)
	if xs := bg.Xs(); len(xs) != 0 || bg.MaxGroupSize() != 0 {
		t.Errorf("empty groups: Xs() = %v, MaxGroupSize() = %d", xs, bg.MaxGroupSize())
	}

	bg.Record(5, 0)
	if got := bg.MinDelta(); got != 1 {
		t.Errorf("MinDelta() = %g, want 1", got)
	}
	if c, hw := bg.Width(5, 0); c != 5 || !near(hw, 0.4) {
		t.Errorf("Width(5,0) = %g,%g", c, hw)
	}
}
