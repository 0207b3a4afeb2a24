package plotview

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DrawXAxis returns a Drawable which draws the axis line, the ticks, the
// tick labels and the title of the x-axis a below a face of width w.
func DrawXAxis(a *Axis, w vg.Length, sty AxisStyle) Drawable {
	return DrawableFunc(func(c draw.Canvas) {
		x0, y0 := c.Min.X, c.Min.Y
		stroke(c, sty.Line, x0, y0, x0+w, y0)

		for _, tick := range a.Ticks() {
			x := x0 + vg.Length(a.Map(tick.Value))*w
			if tick.IsMinor() {
				stroke(c, sty.MinorTick.LineStyle, x, y0, x, y0-sty.MinorTick.Length)
				continue
			}
			length := sty.MajorTick.Length
			stroke(c, sty.MajorTick.LineStyle, x, y0, x, y0-length)
			c.FillText(sty.MajorTick.Label,
				vg.Point{X: x, Y: y0 - length - sty.MajorTick.Pad}, tick.Label)
		}

		if a.Label != "" {
			c.FillText(sty.Title,
				vg.Point{X: x0 + w/2, Y: y0 - sty.xExtent(a)}, a.Label)
		}
	})
}

// DrawYAxis returns a Drawable which draws the axis line, the ticks, the
// tick labels and the title of the y-axis a left of a face of height h.
func DrawYAxis(a *Axis, h vg.Length, sty AxisStyle) Drawable {
	return DrawableFunc(func(c draw.Canvas) {
		x0, y0 := c.Min.X, c.Min.Y
		stroke(c, sty.Line, x0, y0, x0, y0+h)

		for _, tick := range a.Ticks() {
			y := y0 + vg.Length(a.Map(tick.Value))*h
			if tick.IsMinor() {
				stroke(c, sty.MinorTick.LineStyle, x0-sty.MinorTick.Length, y, x0, y)
				continue
			}
			length := sty.MajorTick.Length
			stroke(c, sty.MajorTick.LineStyle, x0-length, y, x0, y)
			c.FillText(sty.MajorTick.Label,
				vg.Point{X: x0 - length - sty.MajorTick.Pad, Y: y}, tick.Label)
		}

		if a.Label != "" {
			c.FillText(sty.Title,
				vg.Point{X: x0 - sty.yExtent(a), Y: y0 + h/2}, a.Label)
		}
	})
}

// stroke draws a single line unless sty is invisible.
func stroke(c draw.Canvas, sty draw.LineStyle, x0, y0, x1, y1 vg.Length) {
	if sty.Color == nil || sty.Width <= 0 {
		return
	}
	c.StrokeLine2(sty, x0, y0, x1, y1)
}
