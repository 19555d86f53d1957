package grid

import (
	"fmt"

	"github.com/notargets/meshgrad/utils"
)

type Direction uint8

const (
	U Direction = iota // along the grid columns, x
	V                  // along the grid rows, y
)

/*
Tangent is the shared tangent for every point of a width x height grid. It spans one grid
cell in its direction and depends on nothing but the grid shape:
	U: (1/(width-1), 0)
	V: (0, 1/(height-1))
*/
func Tangent(width, height int, dir Direction) (t utils.Vec2) {
	switch dir {
	case U:
		t = utils.Vec2{1. / float64(width-1), 0}
	case V:
		t = utils.Vec2{0, 1. / float64(height-1)}
	default:
		panic(fmt.Errorf("unknown tangent direction %d", dir))
	}
	return
}
