package ferguson

import (
	"fmt"

	"github.com/notargets/meshgrad/grid"
	"github.com/notargets/meshgrad/types"
	"github.com/notargets/meshgrad/utils"
)

const (
	DefaultEdgeSteps = 100
	DefaultDots      = 20
)

type Sample struct {
	U, V     float64
	Position utils.Vec2
	Color    utils.Vec3
}

// Edge names one boundary curve of a patch by the parameter held constant along it
type Edge uint8

const (
	EdgeU0 Edge = iota // u = 0, v varies
	EdgeU1             // u = 1, v varies
	EdgeV0             // v = 0, u varies
	EdgeV1             // v = 1, u varies
)

var Edges = [4]Edge{EdgeU0, EdgeU1, EdgeV0, EdgeV1}

func (p *Patch) Sample(u, v float64) Sample {
	return Sample{U: u, V: v, Position: p.Position(u, v), Color: p.Color(u, v)}
}

// EdgeCurve samples a boundary curve at steps+1 evenly spaced parameters, both ends included
func (p *Patch) EdgeCurve(edge Edge, steps int) (samples []Sample, err error) {
	if steps < 1 {
		err = fmt.Errorf("an edge curve needs at least one step, have %d: %w", steps, types.ErrInvalidInput)
		return
	}
	var uv func(t float64) (u, v float64)
	switch edge {
	case EdgeU0:
		uv = func(t float64) (float64, float64) { return 0, t }
	case EdgeU1:
		uv = func(t float64) (float64, float64) { return 1, t }
	case EdgeV0:
		uv = func(t float64) (float64, float64) { return t, 0 }
	case EdgeV1:
		uv = func(t float64) (float64, float64) { return t, 1 }
	default:
		err = fmt.Errorf("unknown patch edge %d: %w", edge, types.ErrInvalidInput)
		return
	}
	samples = make([]Sample, steps+1)
	for i := 0; i <= steps; i++ {
		samples[i] = p.Sample(uv(float64(i) / float64(steps)))
	}
	return
}

// SampleGrid samples an n x n lattice at u,v = i/n, j/n for i,j in [0,n), u major
func (p *Patch) SampleGrid(n int) (samples []Sample, err error) {
	if n < 1 {
		err = fmt.Errorf("a sample grid needs at least one sample per side, have %d: %w", n, types.ErrInvalidInput)
		return
	}
	samples = make([]Sample, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			samples = append(samples, p.Sample(float64(i)/float64(n), float64(j)/float64(n)))
		}
	}
	return
}

type PatchPreview struct {
	W, H  int
	Edges [len(Edges)][]Sample // Indexed by Edge
	Dots  []Sample
}

/*
Preview evaluates what an editor draws for each patch of the grid: the four boundary
curves with edgeSteps segments each and a dots x dots lattice of interior samples.
*/
func Preview(g *grid.ControlGrid, edgeSteps, dots int) (previews []PatchPreview, err error) {
	patches := Patches(g)
	previews = make([]PatchPreview, len(patches))
	for i, p := range patches {
		previews[i].W, previews[i].H = p.W, p.H
		for _, e := range Edges {
			if previews[i].Edges[e], err = p.EdgeCurve(e, edgeSteps); err != nil {
				return nil, err
			}
		}
		if previews[i].Dots, err = p.SampleGrid(dots); err != nil {
			return nil, err
		}
	}
	return
}
