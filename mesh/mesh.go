// Package mesh holds the triangulated, vertex colored output of a tessellation and
// reads and writes it in the formats viewers consume.
package mesh

import (
	"fmt"

	"github.com/notargets/meshgrad/types"
)

/*
Mesh is a vertex colored triangle list. Positions and Colors run in parallel, every three
Indexes form one triangle. A Mesh is built once by the tessellator and not modified afterwards.
*/
type Mesh struct {
	Positions [][3]float32 `json:"positions"`
	Colors    [][3]float32 `json:"colors"`
	Indexes   []uint32     `json:"indexes"`
}

func (m *Mesh) NumVertices() int  { return len(m.Positions) }
func (m *Mesh) NumTriangles() int { return len(m.Indexes) / 3 }

func (m *Mesh) Validate() (err error) {
	if len(m.Positions) != len(m.Colors) {
		return fmt.Errorf("mesh has %d positions and %d colors: %w",
			len(m.Positions), len(m.Colors), types.ErrInvalidInput)
	}
	if len(m.Indexes)%3 != 0 {
		return fmt.Errorf("mesh index count %d is not a multiple of 3: %w", len(m.Indexes), types.ErrInvalidInput)
	}
	for i, ind := range m.Indexes {
		if uint64(ind) >= uint64(len(m.Positions)) {
			return fmt.Errorf("index[%d] = %d, mesh has %d vertices: %w",
				i, ind, len(m.Positions), types.ErrInvalidInput)
		}
	}
	return
}

// Bounds returns the componentwise minimum and maximum position
func (m *Mesh) Bounds() (lo, hi [3]float32) {
	if len(m.Positions) == 0 {
		return
	}
	lo, hi = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < lo[k] {
				lo[k] = p[k]
			}
			if p[k] > hi[k] {
				hi[k] = p[k]
			}
		}
	}
	return
}

// FieldRange returns the smallest and largest value of one position axis or color channel
func (m *Mesh) FieldRange(f types.FIELD) (lo, hi float32) {
	var (
		c    = f.Component()
		vals = m.Colors
	)
	if f.IsPosition() {
		vals = m.Positions
	}
	for i, v := range vals {
		if i == 0 || v[c] < lo {
			lo = v[c]
		}
		if i == 0 || v[c] > hi {
			hi = v[c]
		}
	}
	return
}

// Triangle returns the three vertex indices of triangle n
func (m *Mesh) Triangle(n int) (tri [3]uint32) {
	copy(tri[:], m.Indexes[3*n:3*n+3])
	return
}

/*
Interleave packs the vertices the way a GPU vertex buffer expects them, six floats per vertex:
	x, y, z, r, g, b
*/
func (m *Mesh) Interleave() (buf []float32) {
	buf = make([]float32, 0, 6*len(m.Positions))
	for i, p := range m.Positions {
		c := m.Colors[i]
		buf = append(buf, p[0], p[1], p[2], c[0], c[1], c[2])
	}
	return
}
