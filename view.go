package plotview

import (
	"fmt"
	"log"

	"github.com/vdobler/plotview/txt"
	"gonum.org/v1/plot/vg"
)

// Debug enables logging of range resolution and text layout.
var Debug = false

func debugf(format string, args ...interface{}) {
	if !Debug {
		return
	}
	log.Printf("plotview: "+format, args...)
}

// ----------------------------------------------------------------------------
// View

// View is a single chart: several representations plotted against one
// shared x- and y-axis.
//
// A View keeps references to its representations, it does not copy them.
// The representations must stay valid and unmodified while the view is
// rendered. A View caches nothing; every render resolves ranges and builds
// axes from scratch.
type View struct {
	representations []Representation

	xRange, yRange *Range
	xTrans, yTrans Transformation
	xLabel, yLabel string

	style *Style
}

// New returns an empty view.
func New() *View {
	return &View{
		xTrans: LinearTrans,
		yTrans: LinearTrans,
	}
}

// Add appends r to the representations of v. Representations are drawn in
// the order they were added, later ones on top.
func (v *View) Add(r Representation) *View {
	v.representations = append(v.representations, r)
	return v
}

// XRange fixes the x range of v to [min, max]. The range is used as is,
// regardless of the data.
func (v *View) XRange(min, max float64) *View {
	v.xRange = &Range{Min: min, Max: max}
	return v
}

// YRange fixes the y range of v to [min, max]. The range is used as is,
// regardless of the data.
func (v *View) YRange(min, max float64) *View {
	v.yRange = &Range{Min: min, Max: max}
	return v
}

// XLabel sets the title of the x-axis.
func (v *View) XLabel(label string) *View {
	v.xLabel = label
	return v
}

// YLabel sets the title of the y-axis.
func (v *View) YLabel(label string) *View {
	v.yLabel = label
	return v
}

// XTransform sets the transformation of the x-axis, e.g. Log10Trans.
func (v *View) XTransform(t Transformation) *View {
	v.xTrans = t
	return v
}

// YTransform sets the transformation of the y-axis.
func (v *View) YTransform(t Transformation) *View {
	v.yTrans = t
	return v
}

// WithStyle sets the style used for vector output.
func (v *View) WithStyle(s Style) *View {
	v.style = &s
	return v
}

// Style returns the style used for vector output, DefaultStyle(12)
// unless one was set with WithStyle.
func (v *View) Style() Style {
	if v.style == nil {
		return DefaultStyle(12)
	}
	return *v.style
}

// Representations returns the representations of v in drawing order.
func (v *View) Representations() []Representation {
	return v.representations
}

// Range returns the effective range of v along d: the explicit range if
// one was set and the union of the data ranges of all representations
// otherwise. Without representations and without explicit range the
// result is the inverted range [+Inf, -Inf].
func (v *View) Range(d Dimension) Range {
	override := v.xRange
	if d == YDim {
		override = v.yRange
	}
	if override != nil {
		return *override
	}

	r := EmptyRange()
	for _, repr := range v.representations {
		min, max := repr.DataRange(d)
		r.Update(min, max)
	}
	return r
}

// Axes builds the x- and y-axis of v from the effective ranges.
func (v *View) Axes() (x, y *Axis, err error) {
	x, err = v.axis(XDim, v.xTrans, v.xLabel)
	if err != nil {
		return nil, nil, err
	}
	y, err = v.axis(YDim, v.yTrans, v.yLabel)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

func (v *View) axis(d Dimension, trans Transformation, label string) (*Axis, error) {
	r := v.Range(d)
	debugf("%s range %s", d, r)
	if r.IsEmpty() && len(v.representations) == 0 {
		return nil, emptyViewError{dim: d, r: r}
	}
	a, err := NewAxisTrans(r, trans)
	if err != nil {
		return nil, fmt.Errorf("%s axis: %w", d, err)
	}
	a.Label = label
	return a, nil
}

// RenderVector draws v onto a face of size w x h. The returned group
// contains the drawings of all representations in insertion order followed
// by the x-axis and the y-axis, so the axes are drawn on top of the data.
// The group draws the face with its lower left corner at the canvas' Min.
func (v *View) RenderVector(w, h vg.Length) (Group, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %v x %v", ErrFaceSize, w, h)
	}
	x, y, err := v.Axes()
	if err != nil {
		return nil, err
	}

	group := make(Group, 0, len(v.representations)+2)
	for i, repr := range v.representations {
		d, err := repr.DrawVector(x, y, w, h)
		if err != nil {
			return nil, &RenderError{Index: i, Mode: "vector", Err: err}
		}
		group = append(group, d)
	}

	style := v.Style()
	group = append(group, DrawXAxis(x, w, style.XAxis))
	group = append(group, DrawYAxis(y, h, style.YAxis))
	return group, nil
}

// RenderText draws v as text with a face of w columns and h rows.
//
// The left gutter holds the y-axis labels and is wide enough for x-axis
// labels reaching left of the corner. The result has w+2+gutter columns
// and h+3 rows: the face rows, the x-axis line, the x-axis labels and a
// bottom row which shows the x-axis title if there is one.
func (v *View) RenderText(w, h int) (string, error) {
	if w < 1 || h < 1 {
		return "", fmt.Errorf("%w: %d x %d", ErrFaceSize, w, h)
	}
	x, y, err := v.Axes()
	if err != nil {
		return "", err
	}

	yBlock, longest := RenderYAxisStrings(y, h)
	xBlock, startOffset := RenderXAxisStrings(x, w)

	gutter := longest + 1
	if -startOffset > gutter {
		gutter = -startOffset
	}
	width, height := w+1+gutter+1, h+3
	debugf("text layout: longest y label %d, x start offset %d, gutter %d, canvas %dx%d",
		longest, startOffset, gutter, width, height)

	canvas := txt.BlankBlock(width, height)
	for i, repr := range v.representations {
		face, err := repr.DrawText(x, y, w, h)
		if err != nil {
			return "", &RenderError{Index: i, Mode: "text", Err: err}
		}
		if !txt.IsRect(face, w, h) {
			fw, fh := txt.Size(face)
			return "", &RenderError{Index: i, Mode: "text",
				Err: fmt.Errorf("%w: face is %d x %d, want %d x %d", ErrFaceSize, fw, fh, w, h)}
		}
		canvas = txt.Overlay(canvas, face, gutter+1, 0)
	}

	canvas = txt.Overlay(canvas, yBlock, gutter-1-longest, 0)
	canvas = txt.Overlay(canvas, xBlock, gutter+startOffset, h)

	if x.Label != "" {
		title := txt.NewGrid(width, 1)
		title.Text(gutter+1+w/2, 0, x.Label, 0)
		canvas = txt.Overlay(canvas, title.String(), 0, h+2)
	}

	return canvas, nil
}
