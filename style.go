package plotview

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// AxisStyle controls how one axis is drawn in vector output.
type AxisStyle struct {
	Title     draw.TextStyle
	TitleSize vg.Length // Space reserved for the title.
	Line      draw.LineStyle
	MajorTick struct {
		draw.LineStyle
		Length vg.Length
		Label  draw.TextStyle
		Pad    vg.Length // Space between tick and label.
	}
	MinorTick struct {
		draw.LineStyle
		Length vg.Length
	}
}

// A Style controls how a View is drawn as vector graphics.
type Style struct {
	Background color.Color
	Padding    vg.Length // Blank border around a whole document.

	XAxis AxisStyle
	YAxis AxisStyle
}

// DefaultStyle returns a Style with black axes. The baseFontSize is the
// font size for axis titles, tick labels are a bit smaller.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}
	tickFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}

	s := Style{}
	s.Background = color.White
	s.Padding = scale(baseFontSize, 0.5)

	s.XAxis.Title.Color = color.Black
	s.XAxis.Title.Font = baseFont
	s.XAxis.Title.XAlign = draw.XCenter
	s.XAxis.Title.YAlign = draw.YBottom
	s.XAxis.TitleSize = scale(baseFontSize, 1.5)

	s.XAxis.Line.Color = color.Black
	s.XAxis.Line.Width = vg.Length(1)

	s.XAxis.MajorTick.Color = color.Black
	s.XAxis.MajorTick.Width = vg.Length(1)
	s.XAxis.MajorTick.Length = vg.Length(5)
	s.XAxis.MajorTick.Pad = vg.Length(2)
	s.XAxis.MajorTick.Label.Color = color.Black
	s.XAxis.MajorTick.Label.Font = tickFont
	s.XAxis.MajorTick.Label.XAlign = draw.XCenter
	s.XAxis.MajorTick.Label.YAlign = draw.YTop

	s.XAxis.MinorTick.Color = color.Black
	s.XAxis.MinorTick.Width = vg.Length(0.5)
	s.XAxis.MinorTick.Length = vg.Length(2.5)

	s.YAxis.Title.Color = color.Black
	s.YAxis.Title.Font = baseFont
	s.YAxis.Title.Rotation = math.Pi / 2
	s.YAxis.Title.XAlign = draw.XCenter
	s.YAxis.Title.YAlign = draw.YTop
	s.YAxis.TitleSize = scale(baseFontSize, 1.5)

	s.YAxis.Line.Color = color.Black
	s.YAxis.Line.Width = vg.Length(1)

	s.YAxis.MajorTick.Color = color.Black
	s.YAxis.MajorTick.Width = vg.Length(1)
	s.YAxis.MajorTick.Length = vg.Length(5)
	s.YAxis.MajorTick.Pad = vg.Length(2)
	s.YAxis.MajorTick.Label.Color = color.Black
	s.YAxis.MajorTick.Label.Font = tickFont
	s.YAxis.MajorTick.Label.XAlign = draw.XRight
	s.YAxis.MajorTick.Label.YAlign = -0.3 // draw.YCenter

	s.YAxis.MinorTick.Color = color.Black
	s.YAxis.MinorTick.Width = vg.Length(0.5)
	s.YAxis.MinorTick.Length = vg.Length(2.5)

	return s
}

// xExtent returns the space needed below the face by the x-axis a.
func (s AxisStyle) xExtent(a *Axis) vg.Length {
	h := s.MajorTick.Length + s.MajorTick.Pad + s.MajorTick.Label.Height("0")
	if a.Label != "" {
		h += s.TitleSize
	}
	return h
}

// yExtent returns the space needed left of the face by the y-axis a.
func (s AxisStyle) yExtent(a *Axis) vg.Length {
	var w vg.Length
	for _, t := range a.MajorTicks() {
		if lw := s.MajorTick.Label.Width(t.Label); lw > w {
			w = lw
		}
	}
	w += s.MajorTick.Length + s.MajorTick.Pad
	if a.Label != "" {
		w += s.TitleSize
	}
	return w
}
