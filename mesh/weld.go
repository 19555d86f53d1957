package mesh

import (
	"fmt"
	"math"

	"github.com/notargets/meshgrad/types"
)

type cellKey [3]int64

func newCellKey(p [3]float32, tolerance float64) (key cellKey) {
	for k := 0; k < 3; k++ {
		key[k] = int64(math.Floor(float64(p[k]) / tolerance))
	}
	return
}

func within(a, b [3]float32, tolerance float64) bool {
	for k := 0; k < 3; k++ {
		if math.Abs(float64(a[k])-float64(b[k])) > tolerance {
			return false
		}
	}
	return true
}

/*
Weld returns a new mesh where vertices that agree in position and color to within tolerance
are merged into the lowest indexed of them. Triangles are kept as they are, with their indices remapped.
Welding changes the vertex count of a tessellation, it is never applied implicitly.
*/
func (m *Mesh) Weld(tolerance float64) (w *Mesh, err error) {
	if !(tolerance > 0) {
		err = fmt.Errorf("weld tolerance must be positive, have %v: %w", tolerance, types.ErrInvalidInput)
		return
	}
	if err = m.Validate(); err != nil {
		return
	}
	var (
		cells = make(map[cellKey][]uint32)
		remap = make([]uint32, len(m.Positions))
	)
	w = &Mesh{
		Positions: make([][3]float32, 0, len(m.Positions)),
		Colors:    make([][3]float32, 0, len(m.Colors)),
		Indexes:   make([]uint32, len(m.Indexes)),
	}
	find := func(p, c [3]float32) (ind uint32, found bool) {
		key := newCellKey(p, tolerance)
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					for _, cand := range cells[cellKey{key[0] + dx, key[1] + dy, key[2] + dz}] {
						if (!found || cand < ind) &&
							within(w.Positions[cand], p, tolerance) && within(w.Colors[cand], c, tolerance) {
							ind, found = cand, true
						}
					}
				}
			}
		}
		return
	}
	for i, p := range m.Positions {
		c := m.Colors[i]
		ind, found := find(p, c)
		if !found {
			ind = uint32(len(w.Positions))
			w.Positions = append(w.Positions, p)
			w.Colors = append(w.Colors, c)
			key := newCellKey(p, tolerance)
			cells[key] = append(cells[key], ind)
		}
		remap[i] = ind
	}
	for i, ind := range m.Indexes {
		w.Indexes[i] = remap[ind]
	}
	return
}
