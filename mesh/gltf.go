package mesh

import (
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/notargets/meshgrad/types"
)

/*
GLTFDocument builds a single node, single primitive glTF scene from the mesh. Colors go to
COLOR_0 as float triples, the primitive uses triangle list mode with 32 bit indices.
*/
func (m *Mesh) GLTFDocument(name string) (doc *gltf.Document, err error) {
	if err = m.Validate(); err != nil {
		return
	}
	doc = gltf.NewDocument()
	var (
		positionAccessor = modeler.WritePosition(doc, m.Positions)
		colorAccessor    = modeler.WriteColor(doc, m.Colors)
		indexAccessor    = modeler.WriteIndices(doc, m.Indexes)
	)
	doc.Meshes = []*gltf.Mesh{{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(indexAccessor),
			Attributes: map[string]int{
				gltf.POSITION: positionAccessor,
				gltf.COLOR_0:  colorAccessor,
			},
			Mode: gltf.PrimitiveTriangles,
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return
}

// EncodeGLTF writes a .glb when binary is set, otherwise a .gltf, the encoder embeds the buffer as a data URI
func (m *Mesh) EncodeGLTF(w io.Writer, name string, binary bool) (err error) {
	var doc *gltf.Document
	if doc, err = m.GLTFDocument(name); err != nil {
		return
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = binary
	return enc.Encode(doc)
}

// DecodeGLTF reads the first primitive of the first mesh of a glTF or glb stream
func DecodeGLTF(r io.Reader) (m *Mesh, err error) {
	doc := new(gltf.Document)
	if err = gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("unable to parse gltf: %w", err)
	}
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, fmt.Errorf("gltf document has no mesh primitive: %w", types.ErrInvalidInput)
	}
	var (
		prim             = doc.Meshes[0].Primitives[0]
		posInd, hasPos   = prim.Attributes[gltf.POSITION]
		colorInd, hasCol = prim.Attributes[gltf.COLOR_0]
		colorData        any
		ok               bool
	)
	if !hasPos || !hasCol || prim.Indices == nil {
		return nil, fmt.Errorf("gltf primitive needs POSITION, COLOR_0 and indices: %w", types.ErrInvalidInput)
	}
	for _, ind := range []int{posInd, colorInd, *prim.Indices} {
		if ind < 0 || ind >= len(doc.Accessors) {
			return nil, fmt.Errorf("gltf accessor %d does not exist: %w", ind, types.ErrIndexOutOfRange)
		}
	}
	m = &Mesh{}
	if m.Positions, err = modeler.ReadPosition(doc, doc.Accessors[posInd], nil); err != nil {
		return nil, err
	}
	if colorData, err = modeler.ReadAccessor(doc, doc.Accessors[colorInd], nil); err != nil {
		return nil, err
	}
	if m.Colors, ok = colorData.([][3]float32); !ok {
		return nil, fmt.Errorf("gltf COLOR_0 must be float RGB, have %T: %w", colorData, types.ErrInvalidInput)
	}
	if m.Indexes, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil); err != nil {
		return nil, err
	}
	if err = m.Validate(); err != nil {
		return nil, err
	}
	return
}
