// Package txt provides the primitives to draw charts as plain text: a
// character grid, blank canvases and the overlay operation used to
// composite several text blocks into one.
//
// A text block is a string of newline separated lines made of cells.
// A rune occupies one cell, East Asian wide runes like 零 occupy two;
// the space character is the blank cell. All functions in this package
// measure and place text in cells.
package txt

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Blank is the rune of an empty cell.
const Blank = ' '

// cont marks the second cell of a wide rune.
const cont = rune(-1)

// Ambiguous runes count as narrow regardless of the locale so that a
// block has the same shape everywhere.
var cond = &runewidth.Condition{StrictEmojiNeutral: true}

// RuneWidth returns the number of cells r occupies: 2 for wide runes and
// 1 for everything else.
func RuneWidth(r rune) int {
	if cond.RuneWidth(r) == 2 {
		return 2
	}
	return 1
}

// Width returns the number of cells of s.
func Width(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}

// PadLeft pads s with blanks on the left to a width of w cells.
func PadLeft(s string, w int) string {
	if n := w - Width(s); n > 0 {
		return strings.Repeat(string(Blank), n) + s
	}
	return s
}

// BlankBlock returns a block of w columns and h rows of blanks.
func BlankBlock(w, h int) string {
	if w < 0 {
		w = 0
	}
	if h <= 0 {
		return ""
	}
	line := strings.Repeat(string(Blank), w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Overlay places the block over onto under with its top left corner at
// column x and row y of under and returns the result.
//
// Non-blank cells of over replace the cells of under, blank cells are
// transparent. Cells which fall outside of under are dropped, so x and y
// may be negative or larger than under; a wide rune which does not fit
// completely is dropped too. A wide rune of under which is partly
// overwritten is replaced by blanks. Neither input is modified.
func Overlay(under, over string, x, y int) string {
	rows := split(under)
	for j, line := range strings.Split(over, "\n") {
		row := y + j
		if row < 0 || row >= len(rows) {
			continue
		}
		col := x
		for _, r := range line {
			if r != Blank {
				set(rows[row], col, r)
			}
			col += RuneWidth(r)
		}
	}
	return join(rows)
}

// Size returns the number of columns of the widest line and the number of
// lines of block.
func Size(block string) (w, h int) {
	if block == "" {
		return 0, 0
	}
	lines := strings.Split(block, "\n")
	for _, l := range lines {
		if n := Width(l); n > w {
			w = n
		}
	}
	return w, len(lines)
}

// IsRect reports whether block consists of exactly h lines of exactly w
// cells each.
func IsRect(block string, w, h int) bool {
	if h == 0 {
		return block == ""
	}
	lines := strings.Split(block, "\n")
	if len(lines) != h {
		return false
	}
	for _, l := range lines {
		if Width(l) != w {
			return false
		}
	}
	return true
}

// Pos maps the unit value u to a cell index in [0,n): the interval [0,1]
// is divided into n cells of equal width, u == 1 belongs to the last cell.
// Values outside [0,1] yield indices outside [0,n).
func Pos(u float64, n int) int {
	if u == 1 {
		return n - 1
	}
	return int(math.Floor(u * float64(n)))
}

// Cell is like Pos but reports whether u lies inside [0,1].
func Cell(u float64, n int) (int, bool) {
	if math.IsNaN(u) || u < 0 || u > 1 {
		return 0, false
	}
	return Pos(u, n), true
}

// Row maps u to a row index of a block with n rows. Row 0 is the top
// row, so u == 1 maps to row 0.
func Row(u float64, n int) (int, bool) {
	c, ok := Cell(u, n)
	return n - 1 - c, ok
}

// cells converts a line to its cells.
func cells(line string) []rune {
	row := make([]rune, 0, len(line))
	for _, r := range line {
		row = append(row, r)
		if RuneWidth(r) == 2 {
			row = append(row, cont)
		}
	}
	return row
}

// set writes r at column col of row.
func set(row []rune, col int, r rune) {
	w := RuneWidth(r)
	if col < 0 || col+w > len(row) {
		return
	}
	for i := col; i < col+w; i++ {
		erase(row, i)
	}
	row[col] = r
	if w == 2 {
		row[col+1] = cont
	}
}

// erase blanks cell col and the other half of a wide rune covering it.
func erase(row []rune, col int) {
	if row[col] == cont && col > 0 {
		row[col-1] = Blank
	}
	if col+1 < len(row) && row[col+1] == cont {
		row[col+1] = Blank
	}
	row[col] = Blank
}

func line(row []rune) string {
	var b strings.Builder
	for _, r := range row {
		if r != cont {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func split(block string) [][]rune {
	if block == "" {
		return nil
	}
	lines := strings.Split(block, "\n")
	rows := make([][]rune, len(lines))
	for i, l := range lines {
		rows[i] = cells(l)
	}
	return rows
}

func join(rows [][]rune) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = line(r)
	}
	return strings.Join(lines, "\n")
}
