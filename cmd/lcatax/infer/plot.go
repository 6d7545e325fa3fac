// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package infer

import (
	"fmt"
	"math"

	"github.com/js-arias/blind"
	"github.com/js-arias/lcatax/rank"
	"github.com/js-arias/lcatax/reindex"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// maxBars is the maximum number of taxa
// in the plot.
const maxBars = 20

func makePlot(st []reindex.Stratum, rk rank.Rank) error {
	if len(st) > maxBars {
		st = st[:maxBars]
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("inferred taxa at %s level", rk)
	p.Y.Label.Text = "abundance"
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	w := vg.Points(12)
	names := make([]string, 0, len(st))
	for i, s := range st {
		bars, err := plotter.NewBarChart(plotter.Values{s.Total}, w)
		if err != nil {
			return fmt.Errorf("while building chart: %v", err)
		}
		bars.XMin = float64(i)
		bars.LineStyle.Width = vg.Length(0)

		v := 0.0
		if len(st) > 1 {
			v = float64(i) / float64(len(st)-1)
		}
		bars.Color = blind.Sequential(blind.Iridescent, 1-v)

		p.Add(bars)
		names = append(names, s.Name)
	}
	p.NominalX(names...)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, plotFile); err != nil {
		return err
	}
	return nil
}
