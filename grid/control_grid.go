// Package grid holds the control points a gradient mesh is fitted to.
package grid

import (
	"fmt"

	"github.com/notargets/meshgrad/types"
	"github.com/notargets/meshgrad/utils"
)

// ControlPoint is an anchor of the gradient. Only Position and Color are editable,
// the tangents are fixed when the grid is built.
type ControlPoint struct {
	Position utils.Vec2
	Color    utils.Vec3
	uTangent utils.Vec2
	vTangent utils.Vec2
}

func (cp *ControlPoint) UTangent() utils.Vec2 { return cp.uTangent }
func (cp *ControlPoint) VTangent() utils.Vec2 { return cp.vTangent }

// Value returns the scalar of the point selected by field
func (cp *ControlPoint) Value(field types.FIELD) float64 {
	if field.IsPosition() {
		return cp.Position[field.Component()]
	}
	return cp.Color[field.Component()]
}

/*
ControlGrid is a row-major Width x Height grid of control points, point (w,h) is column w, row h.
The grid has a single owner, edits and tessellation must not overlap in time.
*/
type ControlGrid struct {
	Width, Height int
	Points        []ControlPoint
}

/*
New lays out Width x Height points evenly over the unit square, point (i,j) sits at
(i/(width-1), j/(height-1)), and assigns the row-major colors.
*/
func New(width, height int, colors []utils.Vec3) (g *ControlGrid, err error) {
	if width < 2 || height < 2 {
		err = fmt.Errorf("grid dimensions must be at least 2x2, have %dx%d: %w",
			width, height, types.ErrInvalidInput)
		return
	}
	if len(colors) != width*height {
		err = fmt.Errorf("a %dx%d grid needs %d colors, have %d: %w",
			width, height, width*height, len(colors), types.ErrInvalidInput)
		return
	}
	for i, c := range colors {
		if !c.InUnitRange() {
			err = fmt.Errorf("color %d = %v has components outside [0,1]: %w", i, c, types.ErrInvalidInput)
			return
		}
	}
	var (
		xStep    = 1. / float64(width-1)
		yStep    = 1. / float64(height-1)
		uTangent = Tangent(width, height, U)
		vTangent = Tangent(width, height, V)
	)
	g = &ControlGrid{
		Width:  width,
		Height: height,
		Points: make([]ControlPoint, width*height),
	}
	for n := range g.Points {
		g.Points[n] = ControlPoint{
			Position: utils.Vec2{float64(n%width) * xStep, float64(n/width) * yStep},
			Color:    colors[n],
			uTangent: uTangent,
			vTangent: vTangent,
		}
	}
	return
}

// Uniform builds a grid with every point the same color
func Uniform(width, height int, c utils.Vec3) (g *ControlGrid, err error) {
	var colors []utils.Vec3
	if width > 0 && height > 0 {
		colors = make([]utils.Vec3, width*height)
		for i := range colors {
			colors[i] = c
		}
	}
	return New(width, height, colors)
}

func (g *ControlGrid) NumPatches() int { return (g.Width - 1) * (g.Height - 1) }

// Index is the row-major offset of point (w,h)
func (g *ControlGrid) Index(w, h int) (ind int, err error) {
	if w < 0 || w >= g.Width || h < 0 || h >= g.Height {
		err = fmt.Errorf("point (%d,%d) is outside the %dx%d grid: %w",
			w, h, g.Width, g.Height, types.ErrIndexOutOfRange)
		return
	}
	ind = h*g.Width + w
	return
}

func (g *ControlGrid) PointAt(w, h int) (cp *ControlPoint, err error) {
	var ind int
	if ind, err = g.Index(w, h); err != nil {
		return
	}
	cp = &g.Points[ind]
	return
}

// Point is PointAt for callers that have already range checked (w,h)
func (g *ControlGrid) Point(w, h int) *ControlPoint {
	cp, err := g.PointAt(w, h)
	if err != nil {
		panic(err)
	}
	return cp
}

func (g *ControlGrid) SetPosition(w, h int, pos utils.Vec2) (err error) {
	var cp *ControlPoint
	if cp, err = g.PointAt(w, h); err != nil {
		return
	}
	cp.Position = pos
	return
}

func (g *ControlGrid) SetColor(w, h int, c utils.Vec3) (err error) {
	var cp *ControlPoint
	if cp, err = g.PointAt(w, h); err != nil {
		return
	}
	if !c.InUnitRange() {
		return fmt.Errorf("color %v has components outside [0,1]: %w", c, types.ErrInvalidInput)
	}
	cp.Color = c
	return
}

// MovePoint displaces the point at row-major index by delta, as a drag in grid space
func (g *ControlGrid) MovePoint(index int, delta utils.Vec2) (err error) {
	if index < 0 || index >= len(g.Points) {
		return fmt.Errorf("point index %d is outside [0,%d): %w", index, len(g.Points), types.ErrIndexOutOfRange)
	}
	g.Points[index].Position = g.Points[index].Position.Add(delta)
	return
}

// Snapshot returns an independent copy that can be tessellated while the original is edited
func (g *ControlGrid) Snapshot() (s *ControlGrid) {
	s = &ControlGrid{
		Width:  g.Width,
		Height: g.Height,
		Points: make([]ControlPoint, len(g.Points)),
	}
	copy(s.Points, g.Points)
	return
}
