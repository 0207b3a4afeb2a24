// +build ignore

package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/vdobler/plotview"
	"github.com/vdobler/plotview/geom"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func main() {
	xy := make(plotter.XYs, 40)
	for i := range xy {
		x := float64(i) / 4
		xy[i].X, xy[i].Y = x, math.Sin(x)+rand.NormFloat64()/5
	}
	vals := make(plotter.Values, 200)
	for i := range vals {
		vals[i] = rand.NormFloat64()
	}

	scatter := geom.Point{XY: xy}
	sine := geom.Function{F: math.Sin, Min: 0, Max: 10}
	zero := geom.HLine{Y: plotter.Values{0}}

	view := plotview.New().
		Add(zero).
		Add(sine).
		Add(scatter).
		XLabel("x").
		YLabel("sin(x)")

	if err := view.WriteText(os.Stdout, 60, 15); err != nil {
		panic(err)
	}
	for _, file := range []string{"testdata/view.svg", "testdata/view.png"} {
		if err := view.Save(15*vg.Centimeter, 10*vg.Centimeter, file); err != nil {
			fmt.Println(err)
		}
	}

	hist := plotview.New().Add(geom.Histogram{Values: vals, Bins: 12})
	if err := hist.WriteText(os.Stdout, 48, 10); err != nil {
		panic(err)
	}
	if err := hist.Save(12*vg.Centimeter, 8*vg.Centimeter, "testdata/hist.pdf"); err != nil {
		fmt.Println(err)
	}
}
