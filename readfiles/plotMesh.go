package readfiles

import (
	"fmt"

	"github.com/notargets/avs/chart2d"
	graphics2D "github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/meshgrad/mesh"
	"github.com/notargets/meshgrad/utils"
)

// Luminance is the Rec. 601 weighted gray level of a color, used as the scalar a chart colormap shades by
func Luminance(c [3]float32) float32 {
	return 0.299*c[0] + 0.587*c[1] + 0.114*c[2]
}

/*
MeshToTriMesh converts a mesh artifact to the chart's triangle mesh. The vertex colors are
carried as one luminance attribute per triangle node, read against a [0,1] colormap.
*/
func MeshToTriMesh(m *mesh.Mesh) (trimesh graphics2D.TriMesh) {
	var (
		points = make([]graphics2D.Point, m.NumVertices())
		K      = m.NumTriangles()
	)
	for i, p := range m.Positions {
		points[i].X[0] = p[0]
		points[i].X[1] = p[1]
	}
	trimesh.Triangles = make([]graphics2D.Triangle, K)
	trimesh.Attributes = make([][]float32, K)
	for k := 0; k < K; k++ {
		tri := m.Triangle(k)
		trimesh.Attributes[k] = make([]float32, 3)
		for i := 0; i < 3; i++ {
			trimesh.Triangles[k].Nodes[i] = int32(tri[i])
			trimesh.Attributes[k][i] = Luminance(m.Colors[tri[i]])
		}
	}
	trimesh.Geometry = points
	return
}

func PlotMesh(m *mesh.Mesh, plotPoints bool) (chart *chart2d.Chart2D, err error) {
	if err = m.Validate(); err != nil {
		return
	}
	var (
		trimesh  = MeshToTriMesh(m)
		colorMap = utils2.NewColorMap(0, 1, 1)
	)
	box := graphics2D.NewBoundingBox(trimesh.GetGeometry())
	box = box.Scale(1.5)
	chart = chart2d.NewChart2D(1920, 1920, box.XMin[0], box.XMax[0], box.XMin[1], box.XMax[1])
	chart.AddColorMap(colorMap)
	go chart.Plot()
	if err = chart.AddTriMesh("TriMesh", trimesh,
		chart2d.CrossGlyph, chart2d.Solid, utils.GetColor(utils.White)); err != nil {
		return nil, fmt.Errorf("unable to add mesh to chart: %w", err)
	}
	if plotPoints {
		x := make([]float64, m.NumVertices())
		y := make([]float64, m.NumVertices())
		for i, p := range m.Positions {
			x[i], y[i] = float64(p[0]), float64(p[1])
		}
		if err = chart.AddSeries("Vertices", x, y,
			chart2d.CircleGlyph, chart2d.NoLine, utils.GetColor(utils.Black)); err != nil {
			return nil, fmt.Errorf("unable to add vertices to chart: %w", err)
		}
	}
	return
}
