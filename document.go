package plotview

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
	"gonum.org/v1/plot/vg/vgtex"
)

type canvasWriterTo interface {
	vg.CanvasSizer
	io.WriterTo
}

// newCanvas returns a canvas of size w x h for the given format.
func newCanvas(w, h vg.Length, format string) (canvasWriterTo, error) {
	switch strings.ToLower(format) {
	case "svg":
		return vgsvg.New(w, h), nil
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.New(w, h)}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: vgimg.New(w, h)}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: vgimg.New(w, h)}, nil
	case "pdf":
		return vgpdf.New(w, h), nil
	case "eps":
		return vgeps.New(w, h), nil
	case "tex":
		return vgtex.NewDocument(w, h), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Layout returns the position and size of the face when v is drawn onto a
// document of size w x h: the face leaves room for the padding and the
// axis furniture.
func (v *View) Layout(w, h vg.Length) (vg.Rectangle, error) {
	x, y, err := v.Axes()
	if err != nil {
		return vg.Rectangle{}, err
	}
	style := v.Style()

	// Tick labels are centered on the outermost ticks and may stick out
	// of the face by half their size.
	right := style.XAxis.MajorTick.Label.Font.Size
	top := style.YAxis.MajorTick.Label.Font.Size / 2

	face := vg.Rectangle{
		Min: vg.Point{
			X: style.Padding + style.YAxis.yExtent(y),
			Y: style.Padding + style.XAxis.xExtent(x),
		},
		Max: vg.Point{X: w - style.Padding - right, Y: h - style.Padding - top},
	}
	if face.Max.X <= face.Min.X || face.Max.Y <= face.Min.Y {
		return face, fmt.Errorf("%w: document %v x %v too small", ErrFaceSize, w, h)
	}
	return face, nil
}

// Draw draws v onto c. The face is laid out to fill c.
func (v *View) Draw(c draw.Canvas) error {
	size := c.Size()
	face, err := v.Layout(size.X, size.Y)
	if err != nil {
		return err
	}
	fs := face.Size()
	group, err := v.RenderVector(fs.X, fs.Y)
	if err != nil {
		return err
	}

	if bg := v.Style().Background; bg != nil {
		c.SetColor(bg)
		c.Fill(c.Rectangle.Path())
	}
	fc := c
	fc.Rectangle = vg.Rectangle{
		Min: vg.Point{X: c.Min.X + face.Min.X, Y: c.Min.Y + face.Min.Y},
		Max: vg.Point{X: c.Min.X + face.Max.X, Y: c.Min.Y + face.Max.Y},
	}
	group.Draw(fc)
	return nil
}

// WriterTo returns an io.WriterTo which writes v as a document of size
// w x h in the given format. Supported formats are svg, png, jpg, tiff,
// pdf, eps and tex.
func (v *View) WriterTo(w, h vg.Length, format string) (io.WriterTo, error) {
	c, err := newCanvas(w, h, format)
	if err != nil {
		return nil, err
	}
	if err := v.Draw(draw.New(c)); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes v to file as a document of size w x h. The format is
// determined by the file extension; the extension .txt produces the text
// rendering with w and h interpreted as number of columns and rows of the
// face.
func (v *View) Save(w, h vg.Length, file string) (err error) {
	format := strings.TrimPrefix(filepath.Ext(file), ".")

	var wt io.WriterTo
	if strings.ToLower(format) == "txt" {
		wt = textWriterTo{v, int(w), int(h)}
	} else {
		wt, err = v.WriterTo(w, h, format)
		if err != nil {
			return err
		}
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()

	_, err = wt.WriteTo(f)
	return err
}

// WriteText writes the text rendering of v with a face of w x h cells
// followed by a newline to out.
func (v *View) WriteText(out io.Writer, w, h int) error {
	_, err := textWriterTo{v, w, h}.WriteTo(out)
	return err
}

type textWriterTo struct {
	v    *View
	w, h int
}

func (t textWriterTo) WriteTo(out io.Writer) (int64, error) {
	s, err := t.v.RenderText(t.w, t.h)
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(out, s+"\n")
	return int64(n), err
}
