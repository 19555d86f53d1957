package readfiles

import (
	"fmt"
	"image/color"

	"github.com/notargets/avs/chart2d"
	graphics2D "github.com/notargets/avs/geometry"

	"github.com/notargets/meshgrad/ferguson"
	"github.com/notargets/meshgrad/tessellate"
	"github.com/notargets/meshgrad/utils"
)

// Series is one named polyline or point set of a chart, in output space
type Series struct {
	Name  string
	X, Y  []float64
	Color color.RGBA
}

func newSeries(name string, samples []ferguson.Sample) (s Series) {
	s.Name = name
	s.X = make([]float64, len(samples))
	s.Y = make([]float64, len(samples))
	var mean utils.Vec3
	for i, smp := range samples {
		p := tessellate.ToOutputSpace(smp.Position)
		s.X[i], s.Y[i] = p[0], p[1]
		mean = mean.Add(smp.Color)
	}
	if len(samples) != 0 {
		mean = mean.Scale(1 / float64(len(samples)))
	}
	s.Color = mean.RGBA8()
	return
}

/*
PreviewSeries flattens patch previews into chart series. Each patch gives four edge curves,
drawn as lines, and one dot lattice colored by the average color of its samples.
*/
func PreviewSeries(previews []ferguson.PatchPreview) (edges, dots []Series) {
	edges = make([]Series, 0, len(ferguson.Edges)*len(previews))
	dots = make([]Series, 0, len(previews))
	for _, pp := range previews {
		for _, e := range ferguson.Edges {
			edges = append(edges, newSeries(fmt.Sprintf("Edge[%d,%d,%d]", pp.W, pp.H, e), pp.Edges[e]))
		}
		dots = append(dots, newSeries(fmt.Sprintf("Dots[%d,%d]", pp.W, pp.H), pp.Dots))
	}
	return
}

func PlotPreview(previews []ferguson.PatchPreview) (chart *chart2d.Chart2D, err error) {
	var (
		edges, dots = PreviewSeries(previews)
		x, y        []float64
	)
	for _, s := range edges {
		x = append(x, s.X...)
		y = append(y, s.Y...)
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("nothing to plot, the preview is empty")
	}
	box := graphics2D.NewBoundingBox(utils.ArraysToPoints(x, y))
	box = box.Scale(1.5)
	chart = chart2d.NewChart2D(1024, 1024, box.XMin[0], box.XMax[0], box.XMin[1], box.XMax[1])
	go chart.Plot()
	for _, s := range edges {
		if err = chart.AddSeries(s.Name, s.X, s.Y,
			chart2d.NoGlyph, chart2d.Solid, utils.GetColor(utils.Blue)); err != nil {
			return nil, fmt.Errorf("unable to add %s to chart: %w", s.Name, err)
		}
	}
	for _, s := range dots {
		if err = chart.AddSeries(s.Name, s.X, s.Y,
			chart2d.CircleGlyph, chart2d.NoLine, s.Color); err != nil {
			return nil, fmt.Errorf("unable to add %s to chart: %w", s.Name, err)
		}
	}
	return
}
