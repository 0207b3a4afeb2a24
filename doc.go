// Package plotview draws a single chart view either as vector graphics
// or as plain text.
//
// It tries to use or enhance gonum.org/v1/plot.
//
// Views
//
// A View combines several Representations (see package geom) which are
// plotted against one shared x- and y-axis. The ranges of the axes are
// the union of the data ranges of all representations unless they are
// fixed with XRange and YRange:
//
//     v := plotview.New().Add(points).Add(line).YRange(-1, 1)
//
// Representations are drawn in the order they were added, later ones on
// top of earlier ones. The axes are drawn last.
//
// Vector Output
//
// RenderVector produces a Group of Drawables for a face of a given size
// which can be drawn onto any gonum vg canvas. WriterTo and Save lay out
// the face inside a document and write it as SVG, PNG, JPEG, TIFF, PDF,
// EPS or TeX.
//
// Text Output
//
// RenderText draws the view into a character grid. Each representation
// renders a block of exactly the face size; the blocks, the y-axis labels
// and the x-axis labels are overlaid onto one canvas. Blank cells are
// transparent during overlay, so several representations can share the
// face:
//
//      1 +            o
//        |   ****
//        |***    ***
//      0 +          ***
//        +-----+-----+-
//        0     5     10
//
// Empty Views
//
// A view without representations and without explicit ranges has no
// sensible axes: Range returns the inverted interval [+Inf,-Inf] and both
// render methods fail with an error matching ErrEmptyView and
// ErrInvalidRange.
package plotview
