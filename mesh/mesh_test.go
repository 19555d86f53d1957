package mesh

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/meshgrad/types"
)

// quad is two triangles over [-1,1]², corners colored black, red, green, blue
func quad() *Mesh {
	return &Mesh{
		Positions: [][3]float32{{-1, 1, 0}, {1, 1, 0}, {-1, -1, 0}, {1, -1, 0}},
		Colors:    [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		Indexes:   []uint32{2, 1, 0, 2, 3, 1},
	}
}

func TestMeshValidate(t *testing.T) {
	m := quad()
	require.NoError(t, m.Validate())
	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, 2, m.NumTriangles())
	assert.Equal(t, [3]uint32{2, 3, 1}, m.Triangle(1))
	{ // Mismatched colors
		bad := quad()
		bad.Colors = bad.Colors[:3]
		assert.ErrorIs(t, bad.Validate(), types.ErrInvalidInput)
	}
	{ // Partial triangle
		bad := quad()
		bad.Indexes = append(bad.Indexes, 0)
		assert.ErrorIs(t, bad.Validate(), types.ErrInvalidInput)
	}
	{ // Index past the vertices
		bad := quad()
		bad.Indexes[4] = 4
		assert.ErrorIs(t, bad.Validate(), types.ErrInvalidInput)
	}
	{ // Empty mesh is valid
		assert.NoError(t, (&Mesh{}).Validate())
	}
}

func TestMeshBoundsInterleave(t *testing.T) {
	m := quad()
	lo, hi := m.Bounds()
	assert.Equal(t, [3]float32{-1, -1, 0}, lo)
	assert.Equal(t, [3]float32{1, 1, 0}, hi)
	lo, hi = (&Mesh{}).Bounds()
	assert.Equal(t, [3]float32{}, lo)
	assert.Equal(t, [3]float32{}, hi)

	for _, f := range types.AllFields {
		flo, fhi := m.FieldRange(f)
		if f.IsPosition() {
			assert.Equal(t, float32(-1), flo, f.String())
		} else {
			assert.Equal(t, float32(0), flo, f.String())
		}
		assert.Equal(t, float32(1), fhi, f.String())
	}
	m.Colors[1] = [3]float32{0.5, 0, 0}
	flo, fhi := m.FieldRange(types.FIELD_R)
	assert.Equal(t, float32(0), flo)
	assert.Equal(t, float32(0.5), fhi)
	m.Colors[1] = [3]float32{1, 0, 0}

	buf := m.Interleave()
	require.Len(t, buf, 24)
	assert.Equal(t, []float32{1, 1, 0, 1, 0, 0}, buf[6:12])
	assert.Equal(t, []float32{1, -1, 0, 0, 0, 1}, buf[18:24])
}

func TestMeshJSON(t *testing.T) {
	{ // Field names and round trip
		m := quad()
		m.Positions[0] = [3]float32{0.1, -0.3333333, 0}
		var buf bytes.Buffer
		require.NoError(t, m.Encode(&buf))
		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
		assert.Contains(t, raw, "positions")
		assert.Contains(t, raw, "colors")
		assert.Contains(t, raw, "indexes")
		assert.JSONEq(t, `[2,1,0,2,3,1]`, string(raw["indexes"]))

		m2, err := Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, m, m2)
	}
	{ // Reads what the viewer reads
		m, err := Decode(strings.NewReader(`{"positions":[[0,0,0],[1,0,0],[0,1,0]],
			"colors":[[1,0,0],[0,1,0],[0,0,1]],"indexes":[0,1,2]}`))
		require.NoError(t, err)
		assert.Equal(t, 1, m.NumTriangles())
	}
	{ // Invalid meshes are rejected both ways
		bad := quad()
		bad.Indexes = bad.Indexes[:4]
		assert.ErrorIs(t, bad.Encode(&bytes.Buffer{}), types.ErrInvalidInput)
		_, err := Decode(strings.NewReader(`{"positions":[[0,0,0]],"colors":[],"indexes":[]}`))
		assert.ErrorIs(t, err, types.ErrInvalidInput)
		_, err = Decode(strings.NewReader(`{"positions":`))
		assert.Error(t, err)
	}
	{
		ts := time.Unix(1700000000, 0)
		assert.Equal(t, "mesh-1700000000-subdiv3.json", ArtifactName(ts, 3, JSONExt))
		assert.Equal(t, "mesh-1700000000-subdiv0.glb", ArtifactName(ts, 0, GLBExt))
	}
}

func TestMeshGLTF(t *testing.T) {
	m := quad()
	m.Colors[0] = [3]float32{0.25, 0.5, 0.75}
	for _, binary := range []bool{true, false} {
		var buf bytes.Buffer
		require.NoError(t, m.EncodeGLTF(&buf, "quad", binary))
		if binary {
			assert.Equal(t, "glTF", string(buf.Bytes()[:4]))
		} else {
			doc := new(gltf.Document)
			require.NoError(t, gltf.NewDecoder(bytes.NewReader(buf.Bytes())).Decode(doc))
			require.Len(t, doc.Buffers, 1)
			assert.True(t, doc.Buffers[0].IsEmbeddedResource())
			assert.True(t, strings.HasPrefix(doc.Buffers[0].URI, "data:application/octet-stream;base64,"))
		}
		m2, err := DecodeGLTF(&buf)
		require.NoError(t, err)
		assert.Equal(t, m.Positions, m2.Positions)
		assert.Equal(t, m.Colors, m2.Colors)
		assert.Equal(t, m.Indexes, m2.Indexes)
	}
	{
		doc, err := m.GLTFDocument("quad")
		require.NoError(t, err)
		require.Len(t, doc.Meshes, 1)
		assert.Equal(t, "quad", doc.Meshes[0].Name)
		assert.Equal(t, 6, doc.Accessors[*doc.Meshes[0].Primitives[0].Indices].Count)
	}
	{
		bad := quad()
		bad.Colors = nil
		assert.ErrorIs(t, bad.EncodeGLTF(&bytes.Buffer{}, "bad", true), types.ErrInvalidInput)
		_, err := DecodeGLTF(strings.NewReader(`{"asset":{"version":"2.0"}}`))
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	}
}

func TestMeshWeld(t *testing.T) {
	{ // Two quads sharing an edge, the shared vertices are duplicated
		m := &Mesh{
			Positions: [][3]float32{
				{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
				{1, 0, 0}, {2, 0, 0}, {1.0000001, 1, 0}, {2, 1, 0},
			},
			Colors: [][3]float32{
				{0, 0, 0}, {1, 1, 1}, {0, 0, 0}, {1, 1, 1},
				{1, 1, 1}, {0, 0, 0}, {1, 1, 1}, {0, 0, 0},
			},
			Indexes: []uint32{2, 1, 0, 2, 3, 1, 6, 5, 4, 6, 7, 5},
		}
		w, err := m.Weld(1e-5)
		require.NoError(t, err)
		assert.Equal(t, 6, w.NumVertices())
		assert.Equal(t, []uint32{2, 1, 0, 2, 3, 1, 3, 4, 1, 3, 5, 4}, w.Indexes)
		require.NoError(t, w.Validate())
		// The input is untouched
		assert.Equal(t, 8, m.NumVertices())
	}
	{ // Same place, different color stays separate
		m := &Mesh{
			Positions: [][3]float32{{0, 0, 0}, {0, 0, 0}, {1, 0, 0}},
			Colors:    [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 0, 0}},
			Indexes:   []uint32{0, 1, 2},
		}
		w, err := m.Weld(1e-5)
		require.NoError(t, err)
		assert.Equal(t, 3, w.NumVertices())
	}
	{ // A vertex in reach of two kept vertices merges into the earlier one
		const tol = 1e-2
		m := &Mesh{
			Positions: [][3]float32{{1.8 * tol, 0, 0}, {0, 0, 0}, {0.9 * tol, 0, 0}},
			Colors:    [][3]float32{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
			Indexes:   []uint32{0, 1, 2},
		}
		w, err := m.Weld(tol)
		require.NoError(t, err)
		assert.Equal(t, 2, w.NumVertices())
		assert.Equal(t, []uint32{0, 1, 0}, w.Indexes)
	}
	{
		_, err := quad().Weld(0)
		assert.ErrorIs(t, err, types.ErrInvalidInput)
	}
}
