package ferguson

import (
	"fmt"

	"github.com/notargets/meshgrad/grid"
	"github.com/notargets/meshgrad/types"
	"github.com/notargets/meshgrad/utils"
)

/*
Patch is the surface between grid points (W,H), (W,H+1), (W+1,H) and (W+1,H+1).
The corners are copied when the patch is built, so a patch stays valid while the grid is edited.

Parameter u runs from P00 toward P01 and v from P00 toward P10:
	(u,v) = (0,0) -> P00, (1,0) -> P01, (0,1) -> P10, (1,1) -> P11
*/
type Patch struct {
	W, H               int
	P00, P01, P10, P11 grid.ControlPoint
	Coefficients       [len(types.AllFields)]utils.Mat4 // Indexed by FIELD
	blend              [len(types.AllFields)]utils.Mat4
}

func NewPatch(g *grid.ControlGrid, w, h int) (p *Patch, err error) {
	if w < 0 || w >= g.Width-1 || h < 0 || h >= g.Height-1 {
		err = fmt.Errorf("patch (%d,%d) is outside the %dx%d patches of the grid: %w",
			w, h, g.Width-1, g.Height-1, types.ErrIndexOutOfRange)
		return
	}
	p = &Patch{
		W:   w,
		H:   h,
		P00: *g.Point(w, h),
		P01: *g.Point(w, h+1),
		P10: *g.Point(w+1, h),
		P11: *g.Point(w+1, h+1),
	}
	for _, f := range types.AllFields {
		p.Coefficients[f] = Coefficients(&p.P00, &p.P01, &p.P10, &p.P11, f)
		p.blend[f] = BlendMatrix(p.Coefficients[f])
	}
	return
}

// Patches returns every patch of the grid, w major, h minor
func Patches(g *grid.ControlGrid) (patches []*Patch) {
	patches = make([]*Patch, 0, g.NumPatches())
	for w := 0; w < g.Width-1; w++ {
		for h := 0; h < g.Height-1; h++ {
			p, err := NewPatch(g, w, h)
			if err != nil {
				panic(err)
			}
			patches = append(patches, p)
		}
	}
	return
}

func (p *Patch) Field(field types.FIELD, u, v float64) float64 {
	return Evaluate(p.blend[field], u, v)
}

func (p *Patch) Position(u, v float64) (pos utils.Vec2) {
	for _, f := range types.PositionFields {
		pos[f.Component()] = p.Field(f, u, v)
	}
	return
}

func (p *Patch) Color(u, v float64) (c utils.Vec3) {
	for _, f := range types.ColorFields {
		c[f.Component()] = p.Field(f, u, v)
	}
	return
}

// Corner returns the control point the patch interpolates at (u,v), u and v each 0 or 1
func (p *Patch) Corner(u, v int) *grid.ControlPoint {
	switch {
	case u == 0 && v == 0:
		return &p.P00
	case u == 1 && v == 0:
		return &p.P01
	case u == 0 && v == 1:
		return &p.P10
	case u == 1 && v == 1:
		return &p.P11
	}
	panic(fmt.Errorf("corner (%d,%d) is not a unit square corner: %w", u, v, types.ErrIndexOutOfRange))
}
