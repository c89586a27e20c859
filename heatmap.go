package fgclust

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WriteHeatmap renders the forest-guided clustering explanation as a heatmap
// image at path (format chosen by extension, e.g. .png). Rows are the target
// followed by the significant features in ascending p-value order; columns
// are the samples grouped by cluster. Every row is min-max scaled to [0, 1].
func WriteHeatmap(res *Result, ds *Dataset, path string) error {
	if len(res.Labels) != ds.NumSamples() {
		return fmt.Errorf("fgclust: result has %d labels, dataset has %d samples", len(res.Labels), ds.NumSamples())
	}

	// Samples ordered by cluster, then by original index.
	order := make([]int, len(res.Labels))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return res.Labels[order[a]] < res.Labels[order[b]]
	})

	names := append([]string{ds.TargetName()}, res.Features...)
	rows := make([][]float64, len(names))
	for r, name := range names {
		var column []float64
		if r == 0 {
			column = ds.TargetValues()
		} else {
			var err error
			column, err = ds.FeatureColumn(name)
			if err != nil {
				return err
			}
		}
		scaled := minMaxVector(column)
		row := make([]float64, len(order))
		for c, sample := range order {
			row[c] = scaled[sample]
		}
		rows[r] = row
	}

	grid := &heatGrid{rows: rows}

	colors := moreland.SmoothBlueRed()
	colors.SetMin(0)
	colors.SetMax(1)

	p := plot.New()
	p.Title.Text = "Forest-guided clustering"
	p.Add(plotter.NewHeatMap(grid, colors.Palette(255)))

	// Row 0 renders at the bottom; list names bottom-to-top so the target
	// ends up on top.
	labels := make([]string, len(names))
	for i, name := range names {
		labels[len(names)-1-i] = name
	}
	p.NominalY(labels...)
	p.X.Tick.Marker = plot.ConstantTicks(nil)
	p.X.Label.Text = "samples by cluster"

	height := vg.Length(len(names))*0.4*vg.Inch + 1.5*vg.Inch
	return p.Save(10*vg.Inch, height, path)
}

// heatGrid adapts row-major explanation rows to the plotter grid interface,
// flipping rows so the first row draws on top.
type heatGrid struct {
	rows [][]float64
}

func (g *heatGrid) Dims() (c, r int) { return len(g.rows[0]), len(g.rows) }

func (g *heatGrid) Z(c, r int) float64 { return g.rows[len(g.rows)-1-r][c] }

func (g *heatGrid) X(c int) float64 { return float64(c) }

func (g *heatGrid) Y(r int) float64 { return float64(r) }
