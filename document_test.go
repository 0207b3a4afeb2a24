package plotview

import (
	"bytes"
	"errors"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"
)

func documentView() *View {
	a := &fake{name: "a", x: Range{0, 4}, y: Range{-1, 1}}
	return New().Add(a).XLabel("x").YLabel("y")
}

func TestWriterTo(t *testing.T) {
	v := documentView()
	for _, tc := range []struct {
		format string
		magic  string
	}{
		{"svg", "<svg"},
		{"SVG", "<svg"},
		{"png", "\x89PNG"},
		{"pdf", "%PDF"},
		{"eps", "%!PS"},
	} {
		t.Run(tc.format, func(t *testing.T) {
			wt, err := v.WriterTo(10*vg.Centimeter, 6*vg.Centimeter, tc.format)
			if err != nil {
				t.Fatalf("Unexpected error %v", err)
			}
			buf := &bytes.Buffer{}
			if _, err := wt.WriteTo(buf); err != nil {
				t.Fatalf("Unexpected error %v", err)
			}
			if !strings.Contains(buf.String(), tc.magic) {
				t.Errorf("%d bytes of output without %q", buf.Len(), tc.magic)
			}
		})
	}
}

func TestWriterToErrors(t *testing.T) {
	v := documentView()
	if _, err := v.WriterTo(10*vg.Centimeter, 6*vg.Centimeter, "bmp"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("unknown format: got error %v", err)
	}
	if _, err := v.WriterTo(10, 10, "svg"); !errors.Is(err, ErrFaceSize) {
		t.Errorf("tiny document: got error %v", err)
	}
	if _, err := New().WriterTo(10*vg.Centimeter, 6*vg.Centimeter, "svg"); !errors.Is(err, ErrEmptyView) {
		t.Errorf("empty view: got error %v", err)
	}
}

func TestLayout(t *testing.T) {
	v := documentView()
	w, h := 10*vg.Centimeter, 6*vg.Centimeter
	face, err := v.Layout(w, h)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if face.Min.X <= 0 || face.Min.Y <= 0 || face.Max.X >= w || face.Max.Y >= h {
		t.Errorf("face %v does not leave room for the axes in %v x %v", face, w, h)
	}
}

func TestWriteText(t *testing.T) {
	v := documentView()
	want, err := v.RenderText(20, 5)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	buf := &bytes.Buffer{}
	if err := v.WriteText(buf, 20, 5); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if buf.String() != want+"\n" {
		t.Errorf("Got\n%s\nWant\n%s", buf.String(), want)
	}

	if err := New().WriteText(buf, 20, 5); !errors.Is(err, ErrEmptyView) {
		t.Errorf("empty view: got error %v", err)
	}
}

func TestSave(t *testing.T) {
	v := documentView()
	dir := t.TempDir()

	file := filepath.Join(dir, "view.txt")
	if err := v.Save(20, 5, file); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	got, err := ioutil.ReadFile(file)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	want, _ := v.RenderText(20, 5)
	if string(got) != want+"\n" {
		t.Errorf("Got\n%s\nWant\n%s", got, want)
	}

	file = filepath.Join(dir, "view.svg")
	if err := v.Save(8*vg.Centimeter, 6*vg.Centimeter, file); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if got, err := ioutil.ReadFile(file); err != nil || !bytes.Contains(got, []byte("<svg")) {
		t.Errorf("Got %d bytes of svg, error %v", len(got), err)
	}

	if err := v.Save(8*vg.Centimeter, 6*vg.Centimeter, filepath.Join(dir, "view.xyz")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("unknown extension: got error %v", err)
	}
}
