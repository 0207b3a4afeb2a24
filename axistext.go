package plotview

import (
	"strings"

	"github.com/vdobler/plotview/txt"
)

// RenderYAxisStrings renders the tick labels and the axis line of the
// y-axis a for a text face of h rows.
//
// The block has h+1 lines: one per face row plus the corner row where the
// x-axis line runs. Each line holds the right aligned tick label, a blank
// and the axis column which shows '+' at ticks and '|' elsewhere. The
// second return value is the width of the longest label.
func RenderYAxisStrings(a *Axis, h int) (string, int) {
	labels := make(map[int]string)
	longest := 0
	for _, tick := range a.MajorTicks() {
		row, ok := txt.Row(a.Map(tick.Value), h)
		if !ok {
			continue
		}
		if _, taken := labels[row]; taken {
			continue
		}
		labels[row] = tick.Label
		if w := txt.Width(tick.Label); w > longest {
			longest = w
		}
	}

	lines := make([]string, h+1)
	for row := 0; row < h; row++ {
		if label, ok := labels[row]; ok {
			lines[row] = txt.PadLeft(label, longest) + " +"
		} else {
			lines[row] = strings.Repeat(" ", longest) + " |"
		}
	}
	lines[h] = strings.Repeat(" ", longest) + " +"
	return strings.Join(lines, "\n"), longest
}

// RenderXAxisStrings renders the axis line and the tick labels of the
// x-axis a for a text face of w columns.
//
// The block has two lines. The axis line starts with the corner '+' and
// shows '+' at ticks and '-' elsewhere; below it every label is centered
// on its tick. Labels which would touch their left neighbour are dropped.
//
// The second return value is the column of the block's first cell
// relative to the corner. It is negative if a label extends to the left
// of the corner and zero otherwise.
func RenderXAxisStrings(a *Axis, w int) (string, int) {
	type label struct {
		center int // cell of the tick, the corner is cell 0
		text   string
	}
	var ticks []int
	var labels []label
	start, end := 0, 0
	for _, tick := range a.MajorTicks() {
		c, ok := txt.Cell(a.Map(tick.Value), w)
		if !ok {
			continue
		}
		ticks = append(ticks, c+1)
		width := txt.Width(tick.Label)
		s := c + 1 - width/2
		if len(labels) > 0 && s <= end+1 {
			continue
		}
		labels = append(labels, label{c + 1, tick.Label})
		if s < start {
			start = s
		}
		end = s + width - 1
	}

	shift := -start
	n := shift + w + 1
	if len(labels) > 0 && shift+end+1 > n {
		n = shift + end + 1
	}
	g := txt.NewGrid(n, 2)
	g.Put(shift, 0, '+')
	for i := 1; i <= w; i++ {
		g.Put(shift+i, 0, '-')
	}
	for _, c := range ticks {
		g.Put(shift+c, 0, '+')
	}
	for _, l := range labels {
		g.Text(shift+l.center, 1, l.text, 0)
	}

	lines := g.Lines()
	return strings.TrimRight(lines[0], " ") + "\n" + strings.TrimRight(lines[1], " "), start
}
