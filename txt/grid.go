package txt

import (
	"strings"
)

// Grid is a fixed size rectangle of cells. All drawing operations clip
// silently at the grid border.
type Grid struct {
	W, H  int
	cells [][]rune
}

// NewGrid returns a blank grid of w columns and h rows.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid{W: w, H: h, cells: make([][]rune, h)}
	for y := range g.cells {
		g.cells[y] = []rune(strings.Repeat(string(Blank), w))
	}
	return g
}

// Put sets cell (x,y) to r. Row 0 is the top row. A wide rune covers
// (x,y) and (x+1,y) and is dropped if it does not fit.
func (g *Grid) Put(x, y int, r rune) {
	if y < 0 || y >= g.H {
		return
	}
	set(g.cells[y], x, r)
}

// Text writes s in row y. Align -1 starts s at column x, 1 ends s at x
// and 0 centers s on x. Columns are counted in cells.
func (g *Grid) Text(x, y int, s string, align int) {
	w := Width(s)
	switch align {
	case 0:
		x -= w / 2
	case 1:
		x -= w - 1
	}
	for _, r := range s {
		g.Put(x, y, r)
		x += RuneWidth(r)
	}
}

// Line draws a straight line from (x0,y0) to (x1,y1) with Bresenham's
// algorithm. Both end points are drawn.
func (g *Grid) Line(x0, y0, x1, y1 int, r rune) {
	dx, sx := abs(x1-x0), sign(x1-x0)
	dy, sy := -abs(y1-y0), sign(y1-y0)
	e := dx + dy
	for {
		g.Put(x0, y0, r)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Rect draws the rectangle with top left corner (x,y) and size w x h.
// The border is drawn with border and the interior filled with fill; a
// Blank fill leaves the interior untouched.
func (g *Grid) Rect(x, y, w, h int, border, fill rune) {
	if w <= 0 || h <= 0 {
		return
	}
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			edge := i == 0 || j == 0 || i == w-1 || j == h-1
			switch {
			case edge:
				g.Put(x+i, y+j, border)
			case fill != Blank:
				g.Put(x+i, y+j, fill)
			}
		}
	}
}

// Lines returns the rows of g.
func (g *Grid) Lines() []string {
	lines := make([]string, g.H)
	for y, row := range g.cells {
		lines[y] = line(row)
	}
	return lines
}

// String returns g as a text block.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func sign(a int) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}
	return 0
}
