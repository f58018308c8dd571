package writer

import (
	"fmt"
	"strings"

	"github.com/Pluggiyaki/Triangulator/mesh"
)

// The Writer interface is implemented by all mesh writers.
type Writer interface {
	// Write mesh definition
	Write(*mesh.Mesh) error
}

// Write mesh to a file. The output format is selected based on the file
// extension: .obj files receive the wavefront text representation and .zip
// files receive an archive containing it. The mesh is not validated.
func WriteMesh(m *mesh.Mesh, filename string) error {
	var writer Writer
	switch lower := strings.ToLower(filename); {
	case strings.HasSuffix(lower, ".obj"):
		writer = newWavefrontWriter(filename)
	case strings.HasSuffix(lower, ".zip"):
		writer = newZipMeshWriter(filename)
	default:
		return fmt.Errorf("writeMesh: unsupported file format")
	}
	return writer.Write(m)
}
