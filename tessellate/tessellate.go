// Package tessellate samples every patch of a control grid on a regular lattice and
// connects the samples into a triangle mesh.
package tessellate

import (
	"fmt"
	"math"

	"github.com/notargets/meshgrad/ferguson"
	"github.com/notargets/meshgrad/grid"
	"github.com/notargets/meshgrad/mesh"
	"github.com/notargets/meshgrad/types"
	"github.com/notargets/meshgrad/utils"
)

// Counts returns the vertex and index counts of a tessellation, patches do not share vertices
func Counts(width, height, subdivisions int) (nVerts, nIndices int) {
	var (
		nPatches = (width - 1) * (height - 1)
		steps    = subdivisions + 1
	)
	nVerts = nPatches * (steps + 1) * (steps + 1)
	nIndices = nPatches * steps * steps * 6
	return
}

// ToOutputSpace maps a unit square position to [-1,1]² with the vertical axis flipped, z = 0
func ToOutputSpace(p utils.Vec2) utils.Vec3 {
	p = p.Scale(2).Sub(utils.Vec2{1, 1})
	return utils.Vec3{p[0], -p[1], 0}
}

/*
Tessellate samples each patch at u = i/steps, v = j/steps for i,j in [0,steps], steps = subdivisions+1,
and emits two triangles per lattice cell. Samples are stored u major, the local index of sample (r,c)
is r*(steps+1) + c, and each cell contributes

	(r+1,c) (r,c+1) (r,c)
	(r+1,c) (r+1,c+1) (r,c+1)

The grid must not be edited while Tessellate runs, hand it a Snapshot if that can happen.
*/
func Tessellate(g *grid.ControlGrid, subdivisions int) (m *mesh.Mesh, err error) {
	if g == nil {
		err = fmt.Errorf("nil control grid: %w", types.ErrInvalidInput)
		return
	}
	if subdivisions < 0 {
		err = fmt.Errorf("subdivisions must be non negative, have %d: %w", subdivisions, types.ErrInvalidInput)
		return
	}
	// Checked before Counts multiplies, (S+2)² alone can wrap an int
	var (
		nPatches = uint64(g.NumPatches())
		side     = uint64(subdivisions) + 2
	)
	if nPatches == 0 {
		err = fmt.Errorf("%dx%d grid has no patches: %w", g.Width, g.Height, types.ErrInvalidInput)
		return
	}
	if side > math.MaxUint32 || side*side > math.MaxUint32/nPatches {
		err = fmt.Errorf("%d patches at %d subdivisions overflow 32 bit indices: %w",
			nPatches, subdivisions, types.ErrInvalidInput)
		return
	}
	var (
		nVerts, nIndices = Counts(g.Width, g.Height, subdivisions)
		steps            = subdivisions + 1
		rowLen           = steps + 1
	)
	m = &mesh.Mesh{
		Positions: make([][3]float32, 0, nVerts),
		Colors:    make([][3]float32, 0, nVerts),
		Indexes:   make([]uint32, 0, nIndices),
	}
	for _, p := range ferguson.Patches(g) {
		indexStart := len(m.Positions)
		for i := 0; i <= steps; i++ {
			for j := 0; j <= steps; j++ {
				u := float64(i) / float64(steps)
				v := float64(j) / float64(steps)
				m.Positions = append(m.Positions, ToOutputSpace(p.Position(u, v)).Float32())
				m.Colors = append(m.Colors, p.Color(u, v).Float32())
			}
		}
		idx := func(r, c int) uint32 { return uint32(indexStart + r*rowLen + c) }
		for r := 0; r < steps; r++ {
			for c := 0; c < steps; c++ {
				m.Indexes = append(m.Indexes,
					idx(r+1, c), idx(r, c+1), idx(r, c),
					idx(r+1, c), idx(r+1, c+1), idx(r, c+1),
				)
			}
		}
	}
	return
}
