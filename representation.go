package plotview

import (
	"strconv"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Dimension selects one of the two axes of a view.
type Dimension int

const (
	XDim Dimension = iota
	YDim
)

func (d Dimension) String() string {
	switch d {
	case XDim:
		return "x"
	case YDim:
		return "y"
	}
	return "dimension(" + strconv.Itoa(int(d)) + ")"
}

// A Representation is one plotted series or shape. It reports the extent
// of its data and renders itself against a pair of axes.
//
// Representations are owned by the caller. A View only keeps references
// and reads them during a render, so a Representation must not be
// modified while a render is in progress.
type Representation interface {
	// DataRange returns the minimum and maximum data value along d.
	// Representations without data return (+Inf, -Inf).
	DataRange(d Dimension) (min, max float64)

	// DrawVector returns a Drawable which draws the representation into
	// a face of size w x h whose lower left corner is the canvas' Min.
	DrawVector(x, y *Axis, w, h vg.Length) (Drawable, error)

	// DrawText renders the representation into a text block of exactly
	// w columns and h rows. Blank cells are transparent.
	DrawText(x, y *Axis, w, h int) (string, error)
}

// A Drawable draws itself onto a canvas. The origin of the drawing is
// c.Min.
type Drawable interface {
	Draw(c draw.Canvas)
}

// DrawableFunc adapts an ordinary function to a Drawable.
type DrawableFunc func(c draw.Canvas)

// Draw calls f(c).
func (f DrawableFunc) Draw(c draw.Canvas) { f(c) }

// Group is an ordered collection of Drawables. Later elements are drawn
// on top of earlier ones.
type Group []Drawable

// Draw draws all elements of g in order.
func (g Group) Draw(c draw.Canvas) {
	for _, d := range g {
		d.Draw(c)
	}
}

// ----------------------------------------------------------------------------
// Face

// A Face is the plotting area of a view on some vector canvas.
type Face struct {
	Canvas draw.Canvas
	X, Y   *Axis
}

// NewFace returns the face of size w x h located at c.Min.
func NewFace(c draw.Canvas, x, y *Axis, w, h vg.Length) Face {
	c.Rectangle = vg.Rectangle{
		Min: c.Min,
		Max: vg.Point{X: c.Min.X + w, Y: c.Min.Y + h},
	}
	return Face{Canvas: c, X: x, Y: y}
}

// InRangeXY reports whether (x,y) lies inside both axis ranges.
func (f Face) InRangeXY(x, y float64) bool {
	return f.X.Contains(x) && f.Y.Contains(y)
}

// MapXY maps the data coordinate (x,y) to a canvas point. The boolean
// reports whether the point lies inside the face.
func (f Face) MapXY(x, y float64) (vg.Point, bool) {
	size := f.Canvas.Size()
	p := vg.Point{
		X: f.Canvas.Min.X + vg.Length(f.X.Map(x))*size.X,
		Y: f.Canvas.Min.Y + vg.Length(f.Y.Map(y))*size.Y,
	}
	return p, f.Canvas.Contains(p)
}
