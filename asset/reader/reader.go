package reader

import (
	"fmt"
	"io"
	"strings"

	"github.com/Pluggiyaki/Triangulator/asset"
	"github.com/Pluggiyaki/Triangulator/mesh"
)

// The Reader interface is implemented by all mesh readers.
type Reader interface {
	// Read mesh definition from a resource.
	Read(*asset.Resource) (*mesh.Mesh, error)
}

// Read mesh from a local file or http(s) URL. The reader is selected based on
// the file extension.
func ReadMesh(filename string) (*mesh.Mesh, error) {
	var reader Reader
	switch lower := strings.ToLower(filename); {
	case strings.HasSuffix(lower, ".obj"):
		reader = newWavefrontReader()
	case strings.HasSuffix(lower, ".zip"):
		reader = newZipMeshReader()
	default:
		return nil, fmt.Errorf("readMesh: unsupported file format")
	}

	res, err := asset.NewResource(filename)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return reader.Read(res)
}

// Parse a wavefront mesh from a stream.
func Parse(src io.Reader) (*mesh.Mesh, error) {
	return newWavefrontReader().Read(asset.NewResourceFromStream("stream", src))
}

// ParseError is returned when a line of a mesh file cannot be parsed.
type ParseError struct {
	File string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[%s: %d] error: %s; line: %q", e.File, e.Line, e.Err.Error(), e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
