package geom

import (
	"image/color"
	"math"

	"github.com/vdobler/plotview"
	"github.com/vdobler/plotview/txt"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BoxStyle combines a line style for the border with a fill color for
// the interior of a geom.
type BoxStyle struct {
	Fill   color.Color
	Border draw.LineStyle
}

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// clipRect clips rect to canvas. The returned rectangle is in the canonical form.
func clipRect(rect vg.Rectangle, canvas draw.Canvas) vg.Rectangle {
	rect = CanonicRectangle(rect)
	limit := CanonicRectangle(canvas.Rectangle)

	if rect.Min.X < limit.Min.X {
		rect.Min.X = limit.Min.X
	}
	if rect.Min.Y < limit.Min.Y {
		rect.Min.Y = limit.Min.Y
	}
	if rect.Max.X > limit.Max.X {
		rect.Max.X = limit.Max.X
	}
	if rect.Max.Y > limit.Max.Y {
		rect.Max.Y = limit.Max.Y
	}
	return rect
}

func lineStyle(sty draw.LineStyle) draw.LineStyle {
	if sty.Color == nil {
		sty.Color = plotter.DefaultLineStyle.Color
	}
	if sty.Width == 0 {
		sty.Width = plotter.DefaultLineStyle.Width
	}
	return sty
}

func glyphStyle(sty draw.GlyphStyle) draw.GlyphStyle {
	if sty.Color == nil {
		sty.Color = plotter.DefaultGlyphStyle.Color
	}
	if sty.Radius == 0 {
		sty.Radius = plotter.DefaultGlyphStyle.Radius
	}
	if sty.Shape == nil {
		sty.Shape = plotter.DefaultGlyphStyle.Shape
	}
	return sty
}

func boxStyle(sty BoxStyle) BoxStyle {
	if sty.Fill == nil && sty.Border.Color == nil {
		sty.Fill = color.Gray{0x80}
	}
	return sty
}

func runeOr(r, def rune) rune {
	if r == 0 {
		return def
	}
	return r
}

// ----------------------------------------------------------------------------
// Text helpers

// unit maps the data point (x,y) to unit coordinates of the face.
func unit(xa, ya *plotview.Axis, x, y float64) (u, v float64) {
	return xa.Map(x), ya.Map(y)
}

// clipUnit clips the segment (u0,v0)-(u1,v1) to the unit square with the
// Liang-Barsky algorithm. It reports false if nothing of the segment is
// visible.
func clipUnit(u0, v0, u1, v1 float64) (float64, float64, float64, float64, bool) {
	for _, z := range []float64{u0, v0, u1, v1} {
		if math.IsNaN(z) || math.IsInf(z, 0) {
			return 0, 0, 0, 0, false
		}
	}
	du, dv := u1-u0, v1-v0
	t0, t1 := 0.0, 1.0
	p := []float64{-du, du, -dv, dv}
	q := []float64{u0, 1 - u0, v0, 1 - v0}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return u0 + t0*du, v0 + t0*dv, u0 + t1*du, v0 + t1*dv, true
}

// textLine draws the data segment (x0,y0)-(x1,y1) onto g.
func textLine(g *txt.Grid, xa, ya *plotview.Axis, x0, y0, x1, y1 float64, r rune) {
	u0, v0 := unit(xa, ya, x0, y0)
	u1, v1 := unit(xa, ya, x1, y1)
	u0, v0, u1, v1, ok := clipUnit(u0, v0, u1, v1)
	if !ok {
		return
	}
	c0, r0 := txt.Pos(u0, g.W), g.H-1-txt.Pos(v0, g.H)
	c1, r1 := txt.Pos(u1, g.W), g.H-1-txt.Pos(v1, g.H)
	g.Line(c0, r0, c1, r1, r)
}

// textPoint returns the cell of the data point (x,y) and whether it lies
// inside the face.
func textPoint(g *txt.Grid, xa, ya *plotview.Axis, x, y float64) (col, row int, ok bool) {
	u, v := unit(xa, ya, x, y)
	col, okx := txt.Cell(u, g.W)
	row, oky := txt.Row(v, g.H)
	return col, row, okx && oky
}

// textRect fills the cells covered by the data rectangle (x,y)-(u,v).
// Degenerate rectangles are not drawn, rectangles thinner than a cell
// cover one cell.
func textRect(g *txt.Grid, xa, ya *plotview.Axis, x, y, u, v float64, r rune) {
	u0, v0 := unit(xa, ya, x, y)
	u1, v1 := unit(xa, ya, u, v)
	if u0 == u1 || v0 == v1 {
		return
	}
	if u0 > u1 {
		u0, u1 = u1, u0
	}
	if v0 > v1 {
		v0, v1 = v1, v0
	}
	if u1 < 0 || u0 > 1 || v1 < 0 || v0 > 1 {
		return
	}
	u0, u1 = math.Max(u0, 0), math.Min(u1, 1)
	v0, v1 = math.Max(v0, 0), math.Min(v1, 1)

	left, right := span(u0, u1, g.W)
	bottom, top := span(v0, v1, g.H)
	g.Rect(left, g.H-1-top, right-left+1, top-bottom+1, r, r)
}

// span returns the first and last of n cells covered by [a,b].
func span(a, b float64, n int) (lo, hi int) {
	lo = txt.Pos(a, n)
	hi = int(math.Ceil(b*float64(n))) - 1
	if hi < lo {
		hi = lo
	}
	if hi > n-1 {
		hi = n - 1
	}
	return lo, hi
}

// xyRange returns the extent of xy along d.
func xyRange(xy plotter.XYer, d plotview.Dimension) (min, max float64) {
	r := plotview.EmptyRange()
	for i := 0; i < xy.Len(); i++ {
		x, y := xy.XY(i)
		if d == plotview.XDim {
			r.Update(x)
		} else {
			r.Update(y)
		}
	}
	return r.Min, r.Max
}
