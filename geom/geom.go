// Package geom provides basic geometric objects to display data in a view.
//
// Each geom is a plotview.Representation: it reports the range of its
// data and draws itself either onto a vector canvas or into a block of
// text. The styling fields (Line, Glyph, Default) are used for vector
// output, the Rune fields for text output; zero values select defaults.
//
// The different geoms have singular names like Rectangle or Point even if
// they may draw several rectangles or points.
package geom

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/vdobler/plotview"
	"github.com/vdobler/plotview/data"
	"github.com/vdobler/plotview/txt"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	_ plotview.Representation = Point{}
	_ plotview.Representation = Path{}
	_ plotview.Representation = Line{}
	_ plotview.Representation = Step{}
	_ plotview.Representation = Segment{}
	_ plotview.Representation = Rectangle{}
	_ plotview.Representation = Bar{}
	_ plotview.Representation = Histogram{}
	_ plotview.Representation = HLine{}
	_ plotview.Representation = VLine{}
	_ plotview.Representation = Function{}
)

// ----------------------------------------------------------------------------
// Point

// Point draws points / symbols.
type Point struct {
	XY plotter.XYer

	Glyph draw.GlyphStyle
	Rune  rune // Defaults to 'o'.
}

// DataRange implements plotview.Representation.
func (p Point) DataRange(d plotview.Dimension) (min, max float64) {
	return xyRange(p.XY, d)
}

// DrawVector implements plotview.Representation.
func (p Point) DrawVector(x, y *plotview.Axis, w, h vg.Length) (plotview.Drawable, error) {
	sty := glyphStyle(p.Glyph)
	return plotview.DrawableFunc(func(c draw.Canvas) {
		face := plotview.NewFace(c, x, y, w, h)
		for i := 0; i < p.XY.Len(); i++ {
			center, ok := face.MapXY(p.XY.XY(i))
			if !ok {
				continue
			}
			face.Canvas.DrawGlyph(sty, center)
		}
	}), nil
}

// DrawText implements plotview.Representation.
func (p Point) DrawText(x, y *plotview.Axis, w, h int) (string, error) {
	r := runeOr(p.Rune, 'o')
	g := txt.NewGrid(w, h)
	for i := 0; i < p.XY.Len(); i++ {
		xv, yv := p.XY.XY(i)
		if col, row, ok := textPoint(g, x, y, xv, yv); ok {
			g.Put(col, row, r)
		}
	}
	return g.String(), nil
}

// ----------------------------------------------------------------------------
// Path

// Path connects the given points in data order through straight line segments.
//
// (To draw them in order of x values see Line.)
type Path struct {
	XY plotter.XYer

	Line draw.LineStyle
	Rune rune // Defaults to '*'.
}

// DataRange implements plotview.Representation.
func (p Path) DataRange(d plotview.Dimension) (min, max float64) {
	return xyRange(p.XY, d)
}

// DrawVector implements plotview.Representation.
func (p Path) DrawVector(x, y *plotview.Axis, w, h vg.Length) (plotview.Drawable, error) {
	sty := lineStyle(p.Line)
	return plotview.DrawableFunc(func(c draw.Canvas) {
		face := plotview.NewFace(c, x, y, w, h)
		if p.XY.Len() < 2 {
			return
		}
		line := make([]vg.Point, p.XY.Len())
		for i := range line {
			line[i], _ = face.MapXY(p.XY.XY(i)) // Clipping done below.
		}
		canvas := face.Canvas
		canvas.StrokeLines(sty, canvas.ClipLinesXY(line)...)
	}), nil
}

// DrawText implements plotview.Representation.
func (p Path) DrawText(x, y *plotview.Axis, w, h int) (string, error) {
	r := runeOr(p.Rune, '*')
	g := txt.NewGrid(w, h)
	for i := 0; i < p.XY.Len()-1; i++ {
		x0, y0 := p.XY.XY(i)
		x1, y1 := p.XY.XY(i + 1)
		textLine(g, x, y, x0, y0, x1, y1, r)
	}
	return g.String(), nil
}

// ----------------------------------------------------------------------------
// Line

// Line connects the given points in order of the x values by straight line segments.
//
// (To draw them in data order see Path.)
type Line struct {
	XY plotter.XYer

	Line draw.LineStyle
	Rune rune // Defaults to '*'.
}

func (l Line) toPath() Path {
	path := Path(l)

	xy := make(plotter.XYs, l.XY.Len())
	for i := range xy {
		xy[i].X, xy[i].Y = l.XY.XY(i)
	}
	sort.SliceStable(xy, func(i, j int) bool { return xy[i].X < xy[j].X })
	path.XY = xy

	return path
}

// DataRange implements plotview.Representation.
func (l Line) DataRange(d plotview.Dimension) (min, max float64) {
	return xyRange(l.XY, d) // no need to sort
}

// DrawVector implements plotview.Representation.
func (l Line) DrawVector(x, y *plotview.Axis, w, h vg.Length) (plotview.Drawable, error) {
	return l.toPath().DrawVector(x, y, w, h)
}

// DrawText implements plotview.Representation.
func (l Line) DrawText(x, y *plotview.Axis, w, h int) (string, error) {
	return l.toPath().DrawText(x, y, w, h)
}

// ----------------------------------------------------------------------------
// Step

// Step produces a stairstep plot of the given data.
type Step struct {
	XY plotter.XYer

	// Vertical changes the step to "vertical then horizontal".
	Vertical bool

	Line draw.LineStyle
	Rune rune // Defaults to '*'.
}

func (s Step) toPath() Path {
	path := Path{Line: s.Line, Rune: s.Rune}

	N := s.XY.Len()
	if N == 0 {
		path.XY = plotter.XYs{}
		return path
	}
	xy := make(plotter.XYs, 2*N-1)
	for i := 0; i < N; i++ {
		xy[i].X, xy[i].Y = s.XY.XY(i)
	}
	sort.SliceStable(xy[:N], func(i, j int) bool { return xy[i].X < xy[j].X })

	for i := len(xy) - 1; i > 0; i -= 2 {
		xy[i] = xy[i/2]
	}

	for i := 1; i < len(xy); i += 2 {
		if s.Vertical {
			xy[i].X, xy[i].Y = xy[i-1].X, xy[i+1].Y
		} else {
			xy[i].X, xy[i].Y = xy[i+1].X, xy[i-1].Y
		}
	}

	path.XY = xy

	return path
}

// DataRange implements plotview.Representation.
func (s Step) DataRange(d plotview.Dimension) (min, max float64) {
	// all additional points lie inside the range spaned by the original data points.
	return xyRange(s.XY, d)
}

// DrawVector implements plotview.Representation.
func (s Step) DrawVector(x, y *plotview.Axis, w, h vg.Length) (plotview.Drawable, error) {
	return s.toPath().DrawVector(x, y, w, h)
}

// DrawText implements plotview.Representation.
func (s Step) DrawText(x, y *plotview.Axis, w, h int) (string, error) {
	return s.toPath().DrawText(x, y, w, h)
}

// ----------------------------------------------------------------------------
// Segment

// Segment draws line segments between two points (X,Y) and (U,V).
type Segment struct {
	XYUV data.XYUVer

	Line draw.LineStyle
	Rune rune // Defaults to '*'.
}

// DataRange implements plotview.Representation.
func (s Segment) DataRange(d plotview.Dimension) (min, max float64) {
	r := plotview.EmptyRange()
	for i := 0; i < s.XYUV.Len(); i++ {
		x, y, u, v := s.XYUV.XYUV(i)
		if d == plotview.XDim {
			r.Update(x, u)
		} else {
			r.Update(y, v)
		}
	}
	return r.Min, r.Max
}

// DrawVector implements plotview.Representation.
func (s Segment) DrawVector(x, y *plotview.Axis, w, h vg.Length) (plotview.Drawable, error) {
	sty := lineStyle(s.Line)
	return plotview.DrawableFunc(func(c draw.Canvas) {
		face := plotview.NewFace(c, x, y, w, h)
		canvas := face.Canvas
		for i := 0; i < s.XYUV.Len(); i++ {
			x, y, u, v := s.XYUV.XYUV(i)
			left, _ := face.MapXY(x, y)  // Clipping done below.
			right, _ := face.MapXY(u, v) // Clipping done below.
			canvas.StrokeLines(sty, canvas.ClipLinesXY([]vg.Point{left, right})...)
		}
	}), nil
}

// DrawText implements plotview.Representation.
func (s Segment) DrawText(x, y *plotview.Axis, w, h int) (string, error) {
	r := runeOr(s.Rune, '*')
	g := txt.NewGrid(w, h)
	for i := 0; i < s.XYUV.Len(); i++ {
		x0, y0, x1, y1 := s.XYUV.XYUV(i)
		textLine(g, x, y, x0, y0, x1, y1, r)
	}
	return g.String(), nil
}

// ----------------------------------------------------------------------------
// Rectangle

// Rectangle draws rectangles.
// The coordinates are the outside coordinates, i.e. if the border is drawn for
// the rectangle then this border is drawn inside the rectangle given by the
// coordinates.
type Rectangle struct {
	XYUV data.XYUVer

	Default BoxStyle
	Rune    rune // Defaults to '#'.
}

// DataRange implements plotview.Representation.
func (r Rectangle) DataRange(d plotview.Dimension) (min, max float64) {
	xmin, xmax, ymin, ymax, umin, umax, vmin, vmax := data.XYUVRange(r.XYUV)
	if d == plotview.XDim {
		return math.Min(xmin, umin), math.Max(xmax, umax)
	}
	return math.Min(ymin, vmin), math.Max(ymax, vmax)
}

// DrawVector implements plotview.Representation.
func (r Rectangle) DrawVector(x, y *plotview.Axis, w, h vg.Length) (plotview.Drawable, error) {
	sty := boxStyle(r.Default)
	return plotview.DrawableFunc(func(c draw.Canvas) {
		face := plotview.NewFace(c, x, y, w, h)
		canvas := face.Canvas
		for i := 0; i < r.XYUV.Len(); i++ {
			x, y, u, v := r.XYUV.XYUV(i)
			min, minok := face.MapXY(x, y)
			max, maxok := face.MapXY(u, v)
			if !minok && !maxok && !face.InRangeXY((x+u)/2, (y+v)/2) {
				continue // both corners and center outside of face
			}
			rect := clipRect(vg.Rectangle{Min: min, Max: max}, canvas)

			if sty.Fill != nil {
				canvas.SetColor(sty.Fill)
				canvas.Fill(rect.Path())
			}
			border := sty.Border
			if border.Color == nil || border.Width <= 0 {
				continue
			}
			bw := 0.499 * border.Width
			rect.Min.X += bw
			rect.Min.Y += bw
			rect.Max.X -= bw
			rect.Max.Y -= bw
			canvas.SetColor(border.Color)
			canvas.SetLineWidth(border.Width)
			canvas.SetLineDash(border.Dashes, border.DashOffs)
			canvas.Stroke(rect.Path())
		}
	}), nil
}

// DrawText implements plotview.Representation.
func (r Rectangle) DrawText(x, y *plotview.Axis, w, h int) (string, error) {
	ch := runeOr(r.Rune, '#')
	g := txt.NewGrid(w, h)
	for i := 0; i < r.XYUV.Len(); i++ {
		x0, y0, x1, y1 := r.XYUV.XYUV(i)
		textRect(g, x, y, x0, y0, x1, y1, ch)
	}
	return g.String(), nil
}

// ----------------------------------------------------------------------------
// Bar

// Bar draws rectangles standing/hanging from y=0.
type Bar struct {
	XY plotter.XYer

	Position string  // "stack" (default), "dodge" or "fill"
	GGap     float64 // Gap between groups as fraction of sample distance.
	BGap     float64 // Gap inside a group as fraction of sample distance.

	Default BoxStyle
	Rune    rune // Defaults to '#'.
}

// DataRange implements plotview.Representation.
func (b Bar) DataRange(d plotview.Dimension) (min, max float64) {
	rect, err := b.rects()
	if err != nil {
		return math.Inf(1), math.Inf(-1)
	}
	return rect.DataRange(d)
}

// DrawVector implements plotview.Representation.
func (b Bar) DrawVector(x, y *plotview.Axis, w, h vg.Length) (plotview.Drawable, error) {
	rect, err := b.rects()
	if err != nil {
		return nil, err
	}
	return rect.DrawVector(x, y, w, h)
}

// DrawText implements plotview.Representation.
func (b Bar) DrawText(x, y *plotview.Axis, w, h int) (string, error) {
	rect, err := b.rects()
	if err != nil {
		return "", err
	}
	return rect.DrawText(x, y, w, h)
}

func (b Bar) rects() (Rectangle, error) {
	if b.Position == "" {
		b.Position = "stack"
	}
	XYUV := make(data.XYUVs, b.XY.Len())

	g := b.groups()

	for _, x := range g.Xs() {
		is := g.Group[x] // indices of all bars to draw at x
		switch b.Position {
		case "stack", "fill":
			ymin, ymax := 0.0, 0.0
			Y, V := 0.0, 0.0
			for _, i := range is {
				center, halfwidth := g.Width(x, i)
				_, y := b.XY.XY(i)
				if y < 0 {
					Y, V = ymin, ymin+y
					ymin += y
				} else {
					Y, V = ymax, ymax+y
					ymax += y
				}
				XYUV[i].X, XYUV[i].Y = center-halfwidth, Y
				XYUV[i].U, XYUV[i].V = center+halfwidth, V
			}
			if b.Position == "fill" {
				ymin *= -1
				for _, i := range is {
					if XYUV[i].V < 0 {
						XYUV[i].Y /= ymin
						XYUV[i].V /= ymin
					} else if ymax > 0 {
						XYUV[i].Y /= ymax
						XYUV[i].V /= ymax
					}
				}
			}
		case "dodge":
			for _, i := range is {
				center, halfwidth := g.Width(x, i)
				_, y := b.XY.XY(i)
				XYUV[i].X, XYUV[i].Y = center-halfwidth, 0
				XYUV[i].U, XYUV[i].V = center+halfwidth, y
			}
		default:
			return Rectangle{}, fmt.Errorf("geom.Bar: unknown value for Position: %q", b.Position)
		}
	}

	return Rectangle{XYUV: XYUV, Default: b.Default, Rune: b.Rune}, nil
}

func (b Bar) groups() *BarGroups {
	g := NewBarGroups(b.Position, b.GGap, b.BGap, true)
	for i := 0; i < b.XY.Len(); i++ {
		x, _ := b.XY.XY(i)
		g.Record(x, i)
	}
	return g
}

// ----------------------------------------------------------------------------
// Histogram

// Histogram draws the counts of Values sorted into Bins bins of equal
// width as bars.
type Histogram struct {
	Values plotter.Valuer
	Bins   int

	Default BoxStyle
	Rune    rune // Defaults to '#'.
}

func (hg Histogram) rects() (Rectangle, error) {
	bins, err := data.Histogram(hg.Values, hg.Bins)
	if err != nil {
		return Rectangle{}, fmt.Errorf("geom.Histogram: %w", err)
	}
	return Rectangle{XYUV: bins, Default: hg.Default, Rune: hg.Rune}, nil
}

// DataRange implements plotview.Representation.
func (hg Histogram) DataRange(d plotview.Dimension) (min, max float64) {
	rect, err := hg.rects()
	if err != nil {
		return math.Inf(1), math.Inf(-1)
	}
	return rect.DataRange(d)
}

// DrawVector implements plotview.Representation.
func (hg Histogram) DrawVector(x, y *plotview.Axis, w, h vg.Length) (plotview.Drawable, error) {
	rect, err := hg.rects()
	if err != nil {
		return nil, err
	}
	return rect.DrawVector(x, y, w, h)
}

// DrawText implements plotview.Representation.
func (hg Histogram) DrawText(x, y *plotview.Axis, w, h int) (string, error) {
	rect, err := hg.rects()
	if err != nil {
		return "", err
	}
	return rect.DrawText(x, y, w, h)
}

// ----------------------------------------------------------------------------
// HLine

// HLine draws horizontal reference (or rule) lines at the given Y values.
type HLine struct {
	Y plotter.Valuer

	Line draw.LineStyle
	Rune rune // Defaults to '-'.
}

// DataRange implements plotview.Representation. A HLine has no extent
// in x.
func (hl HLine) DataRange(d plotview.Dimension) (min, max float64) {
	r := plotview.EmptyRange()
	if d == plotview.YDim {
		for i := 0; i < hl.Y.Len(); i++ {
			r.Update(hl.Y.Value(i))
		}
	}
	return r.Min, r.Max
}

func (hl HLine) segment(x *plotview.Axis) Segment {
	N := hl.Y.Len()
	xyuv := make(data.XYUVs, N)
	for i := 0; i < N; i++ {
		y := hl.Y.Value(i)
		xyuv[i].X, xyuv[i].Y, xyuv[i].U, xyuv[i].V = x.Min, y, x.Max, y
	}
	return Segment{XYUV: xyuv, Line: hl.Line, Rune: runeOr(hl.Rune, '-')}
}

// DrawVector implements plotview.Representation.
func (hl HLine) DrawVector(x, y *plotview.Axis, w, h vg.Length) (plotview.Drawable, error) {
	return hl.segment(x).DrawVector(x, y, w, h)
}

// DrawText implements plotview.Representation.
func (hl HLine) DrawText(x, y *plotview.Axis, w, h int) (string, error) {
	return hl.segment(x).DrawText(x, y, w, h)
}

// ----------------------------------------------------------------------------
// VLine

// VLine draws vertical reference (or rule) lines at the given X values.
type VLine struct {
	X plotter.Valuer

	Line draw.LineStyle
	Rune rune // Defaults to '|'.
}

// DataRange implements plotview.Representation. A VLine has no extent
// in y.
func (vl VLine) DataRange(d plotview.Dimension) (min, max float64) {
	r := plotview.EmptyRange()
	if d == plotview.XDim {
		for i := 0; i < vl.X.Len(); i++ {
			r.Update(vl.X.Value(i))
		}
	}
	return r.Min, r.Max
}

func (vl VLine) segment(y *plotview.Axis) Segment {
	N := vl.X.Len()
	xyuv := make(data.XYUVs, N)
	for i := 0; i < N; i++ {
		x := vl.X.Value(i)
		xyuv[i].X, xyuv[i].Y, xyuv[i].U, xyuv[i].V = x, y.Min, x, y.Max
	}
	return Segment{XYUV: xyuv, Line: vl.Line, Rune: runeOr(vl.Rune, '|')}
}

// DrawVector implements plotview.Representation.
func (vl VLine) DrawVector(x, y *plotview.Axis, w, h vg.Length) (plotview.Drawable, error) {
	return vl.segment(y).DrawVector(x, y, w, h)
}

// DrawText implements plotview.Representation.
func (vl VLine) DrawText(x, y *plotview.Axis, w, h int) (string, error) {
	return vl.segment(y).DrawText(x, y, w, h)
}

// ----------------------------------------------------------------------------
// Function

// ErrDomain is returned by Function for an empty or inverted domain.
var ErrDomain = errors.New("bad function domain")

// Function draws the graph of F over the domain [Min, Max].
type Function struct {
	F        func(x float64) float64
	Min, Max float64
	Samples  int // Number of samples for vector output. Defaults to 50.

	Line draw.LineStyle
	Rune rune // Defaults to '*'.
}

func (f Function) domain() (plotview.Range, error) {
	r := plotview.Range{Min: f.Min, Max: f.Max}
	if f.F == nil || !r.IsValid() || r.Span() == 0 {
		return r, fmt.Errorf("geom.Function: %w %s", ErrDomain, r)
	}
	return r, nil
}

func (f Function) samples() int {
	if f.Samples < 2 {
		return 50
	}
	return f.Samples
}

// sample evaluates F at n equidistant points in r.
func (f Function) sample(r plotview.Range, n int) plotter.XYs {
	xy := make(plotter.XYs, n)
	for i := range xy {
		x := r.Min + r.Span()*float64(i)/float64(n-1)
		xy[i].X, xy[i].Y = x, f.F(x)
	}
	return xy
}

// DataRange implements plotview.Representation.
func (f Function) DataRange(d plotview.Dimension) (min, max float64) {
	r, err := f.domain()
	if err != nil {
		return math.Inf(1), math.Inf(-1)
	}
	if d == plotview.XDim {
		return r.Min, r.Max
	}
	return xyRange(f.sample(r, f.samples()), d)
}

// DrawVector implements plotview.Representation.
func (f Function) DrawVector(x, y *plotview.Axis, w, h vg.Length) (plotview.Drawable, error) {
	r, err := f.domain()
	if err != nil {
		return nil, err
	}
	path := Path{XY: f.sample(r, f.samples()), Line: f.Line}
	return path.DrawVector(x, y, w, h)
}

// DrawText implements plotview.Representation. F is evaluated once at the
// center of every column inside the domain.
func (f Function) DrawText(x, y *plotview.Axis, w, h int) (string, error) {
	r, err := f.domain()
	if err != nil {
		return "", err
	}
	ch := runeOr(f.Rune, '*')
	g := txt.NewGrid(w, h)
	for col := 0; col < w; col++ {
		xv := x.Unmap((float64(col) + 0.5) / float64(w))
		if !r.Contains(xv) {
			continue
		}
		if row, ok := txt.Row(y.Map(f.F(xv)), h); ok {
			g.Put(col, row, ch)
		}
	}
	return g.String(), nil
}
