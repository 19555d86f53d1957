package mesh

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

const (
	JSONExt = "json"
	GLTFExt = "gltf"
	GLBExt  = "glb"
)

// ArtifactName is the file name a mesh is saved under: mesh-<unix seconds>-subdiv<N>.<ext>
func ArtifactName(t time.Time, subdivisions int, ext string) string {
	return fmt.Sprintf("mesh-%d-subdiv%d.%s", t.Unix(), subdivisions, ext)
}

// Encode writes the mesh as a JSON record with "positions", "colors" and "indexes" fields
func (m *Mesh) Encode(w io.Writer) (err error) {
	if err = m.Validate(); err != nil {
		return
	}
	return json.NewEncoder(w).Encode(m)
}

func Decode(r io.Reader) (m *Mesh, err error) {
	m = &Mesh{}
	if err = json.NewDecoder(r).Decode(m); err != nil {
		return nil, fmt.Errorf("unable to parse mesh: %w", err)
	}
	if err = m.Validate(); err != nil {
		return nil, err
	}
	return
}
