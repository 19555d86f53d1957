package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/meshgrad/types"
	"github.com/notargets/meshgrad/utils"
)

func testColors(n int) (colors []utils.Vec3) {
	colors = make([]utils.Vec3, n)
	for i := range colors {
		f := float64(i) / float64(n)
		colors[i] = utils.Vec3{f, 1 - f, 0.5}
	}
	return
}

func TestNewGrid(t *testing.T) {
	{ // Layout over the unit square, row-major
		g, err := New(3, 4, testColors(12))
		require.NoError(t, err)
		assert.Equal(t, 3, g.Width)
		assert.Equal(t, 4, g.Height)
		assert.Len(t, g.Points, 12)
		assert.Equal(t, 6, g.NumPatches())
		for j := 0; j < 4; j++ {
			for i := 0; i < 3; i++ {
				cp, err := g.PointAt(i, j)
				require.NoError(t, err)
				assert.InDelta(t, float64(i)/2, cp.Position[0], utils.NODETOL)
				assert.InDelta(t, float64(j)/3, cp.Position[1], utils.NODETOL)
				assert.Equal(t, testColors(12)[j*3+i], cp.Color)
			}
		}
		assert.True(t, g.Point(2, 3).Position.Equal(utils.Vec2{1, 1}, utils.NODETOL))
	}
	{ // Dimensions below 2 are rejected
		for _, dims := range [][2]int{{1, 3}, {3, 1}, {0, 0}, {-1, 4}} {
			_, err := New(dims[0], dims[1], testColors(3))
			assert.ErrorIs(t, err, types.ErrInvalidInput)
		}
		_, err := Uniform(1, 2, utils.Vec3{})
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	}
	{ // Color count must match the grid
		_, err := New(3, 3, testColors(8))
		assert.ErrorIs(t, err, types.ErrInvalidInput)
		_, err = New(3, 3, testColors(10))
		assert.ErrorIs(t, err, types.ErrInvalidInput)
		_, err = New(3, 3, nil)
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	}
	{ // Colors must be in [0,1]
		colors := testColors(4)
		colors[2] = utils.Vec3{0, 1.5, 0}
		_, err := New(2, 2, colors)
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	}
}

func TestGridAccess(t *testing.T) {
	g, err := Uniform(4, 3, utils.Vec3{0, 0, 1})
	require.NoError(t, err)
	{ // Index is row-major
		ind, err := g.Index(1, 2)
		require.NoError(t, err)
		assert.Equal(t, 9, ind)
	}
	{ // Out of range access fails instead of clamping
		for _, wh := range [][2]int{{-1, 0}, {4, 0}, {0, 3}, {0, -1}} {
			_, err := g.PointAt(wh[0], wh[1])
			assert.ErrorIs(t, err, types.ErrIndexOutOfRange)
			assert.ErrorIs(t, g.SetPosition(wh[0], wh[1], utils.Vec2{}), types.ErrIndexOutOfRange)
			assert.ErrorIs(t, g.SetColor(wh[0], wh[1], utils.Vec3{}), types.ErrIndexOutOfRange)
		}
		assert.ErrorIs(t, g.MovePoint(12, utils.Vec2{}), types.ErrIndexOutOfRange)
		assert.ErrorIs(t, g.MovePoint(-1, utils.Vec2{}), types.ErrIndexOutOfRange)
		assert.Panics(t, func() { g.Point(4, 4) })
	}
	{ // Edits
		require.NoError(t, g.SetPosition(1, 1, utils.Vec2{0.4, 0.6}))
		assert.Equal(t, utils.Vec2{0.4, 0.6}, g.Point(1, 1).Position)
		require.NoError(t, g.MovePoint(5, utils.Vec2{0.1, -0.1}))
		assert.True(t, g.Point(1, 1).Position.Equal(utils.Vec2{0.5, 0.5}, utils.NODETOL))
		require.NoError(t, g.SetColor(1, 1, utils.Vec3{1, 0, 0}))
		assert.Equal(t, utils.Vec3{1, 0, 0}, g.Point(1, 1).Color)
		assert.ErrorIs(t, g.SetColor(1, 1, utils.Vec3{2, 0, 0}), types.ErrInvalidInput)
		assert.Equal(t, 1., g.Point(1, 1).Value(types.FIELD_R))
		assert.InDelta(t, 0.5, g.Point(1, 1).Value(types.FIELD_Y), utils.NODETOL)
	}
	{ // Snapshots are independent of later edits
		s := g.Snapshot()
		require.NoError(t, g.SetPosition(0, 0, utils.Vec2{0.2, 0.2}))
		assert.Equal(t, utils.Vec2{0, 0}, s.Point(0, 0).Position)
		assert.Equal(t, utils.Vec2{0.2, 0.2}, g.Point(0, 0).Position)
	}
}

func TestTangents(t *testing.T) {
	{ // Magnitudes follow the grid shape only
		assert.Equal(t, utils.Vec2{0.5, 0}, Tangent(3, 5, U))
		assert.Equal(t, utils.Vec2{0, 0.25}, Tangent(3, 5, V))
		assert.Equal(t, utils.Vec2{1, 0}, Tangent(2, 2, U))
		assert.Panics(t, func() { Tangent(2, 2, Direction(7)) })
	}
	{ // Every point of a grid shares the same tangents
		g, err := New(4, 3, testColors(12))
		require.NoError(t, err)
		for _, cp := range g.Points {
			assert.Equal(t, utils.Vec2{1. / 3, 0}, cp.UTangent())
			assert.Equal(t, utils.Vec2{0, 0.5}, cp.VTangent())
		}
	}
	{ // Moving and recoloring points never changes a tangent
		g, err := New(3, 3, testColors(9))
		require.NoError(t, err)
		before := make([][2]utils.Vec2, len(g.Points))
		for i := range g.Points {
			before[i] = [2]utils.Vec2{g.Points[i].UTangent(), g.Points[i].VTangent()}
		}
		require.NoError(t, g.SetPosition(1, 1, utils.Vec2{0.9, 0.1}))
		require.NoError(t, g.MovePoint(0, utils.Vec2{0.3, 0.3}))
		require.NoError(t, g.SetColor(2, 2, utils.Vec3{0.3, 0.3, 0.3}))
		for i := range g.Points {
			assert.Equal(t, before[i], [2]utils.Vec2{g.Points[i].UTangent(), g.Points[i].VTangent()})
		}
	}
}
