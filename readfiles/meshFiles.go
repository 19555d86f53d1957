package readfiles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/notargets/meshgrad/InputParameters"
	"github.com/notargets/meshgrad/mesh"
	"github.com/notargets/meshgrad/types"
)

type Format uint8

const (
	FormatJSON Format = iota
	FormatGLTF
	FormatBoth
)

var FormatNames = map[string]Format{
	"json": FormatJSON,
	"gltf": FormatGLTF,
	"both": FormatBoth,
}

func NewFormat(name string) (f Format, err error) {
	var ok bool
	if f, ok = FormatNames[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = fmt.Errorf("unknown mesh format \"%s\", use json, gltf or both: %w", name, types.ErrInvalidInput)
	}
	return
}

// Extensions lists the file extensions written for the format
func (f Format) Extensions() []string {
	switch f {
	case FormatGLTF:
		return []string{mesh.GLBExt}
	case FormatBoth:
		return []string{mesh.JSONExt, mesh.GLBExt}
	default:
		return []string{mesh.JSONExt}
	}
}

func ReadGridFile(filename string) (gp *InputParameters.GridParameters, err error) {
	var data []byte
	if data, err = os.ReadFile(filename); err != nil {
		return
	}
	gp = &InputParameters.GridParameters{}
	if err = gp.Parse(data); err != nil {
		return nil, fmt.Errorf("unable to parse grid file %s: %w", filename, err)
	}
	return
}

func extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// ReadMeshFile reads a .json, .gltf or .glb mesh artifact, chosen by extension
func ReadMeshFile(filename string) (m *mesh.Mesh, err error) {
	var file *os.File
	if file, err = os.Open(filename); err != nil {
		return
	}
	defer file.Close()
	switch ext := extension(filename); ext {
	case mesh.JSONExt:
		m, err = mesh.Decode(file)
	case mesh.GLTFExt, mesh.GLBExt:
		m, err = mesh.DecodeGLTF(file)
	default:
		err = fmt.Errorf("unknown mesh file extension \"%s\": %w", ext, types.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return
}

// WriteMeshFile checks the mesh and the extension before the file is created, a bad mesh leaves nothing behind
func WriteMeshFile(filename string, m *mesh.Mesh) (err error) {
	var (
		ext  = extension(filename)
		name = strings.TrimSuffix(filepath.Base(filename), "."+ext)
		file *os.File
	)
	switch ext {
	case mesh.JSONExt, mesh.GLTFExt, mesh.GLBExt:
	default:
		return fmt.Errorf("unknown mesh file extension \"%s\": %w", ext, types.ErrInvalidInput)
	}
	if err = m.Validate(); err != nil {
		return
	}
	if file, err = os.Create(filename); err != nil {
		return
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	switch ext {
	case mesh.JSONExt:
		err = m.Encode(file)
	case mesh.GLTFExt:
		err = m.EncodeGLTF(file, name, false)
	case mesh.GLBExt:
		err = m.EncodeGLTF(file, name, true)
	}
	return
}

/*
WriteMesh saves the mesh into dir under its artifact name, once per extension of the format.
The directory is created if needed. The written paths are returned in extension order.
*/
func WriteMesh(dir string, m *mesh.Mesh, t time.Time, subdivisions int, format Format) (paths []string, err error) {
	if err = os.MkdirAll(dir, 0755); err != nil {
		return
	}
	for _, ext := range format.Extensions() {
		path := filepath.Join(dir, mesh.ArtifactName(t, subdivisions, ext))
		if err = WriteMeshFile(path, m); err != nil {
			return
		}
		paths = append(paths, path)
	}
	return
}
