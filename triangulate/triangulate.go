// Package triangulate converts meshes with arbitrary polygonal faces into
// meshes made up only of triangles.
//
// Faces are split using a fan anchored at the first vertex of each face. The
// split is purely combinatorial: it does not check for convexity, planarity
// or winding and only yields a correct tessellation for convex, planar,
// consistently wound polygons.
package triangulate

import (
	"errors"
	"fmt"
	"time"

	"github.com/Pluggiyaki/Triangulator/log"
	"github.com/Pluggiyaki/Triangulator/mesh"
)

var (
	ErrNilMesh = errors.New("triangulate: mesh is nil")
	ErrNoFaces = errors.New("triangulate: mesh has no faces")
)

var logger = log.New("triangulator")

// A TriangulatedMesh wraps a mesh whose faces all have exactly 3 vertices.
// Values are only created by Triangulate and TriangulateWithValidation.
type TriangulatedMesh struct {
	*mesh.Mesh
}

// Triangulate all faces of m. The vertex, texture and normal lists are copied
// so the result never shares storage with m. Faces with fewer than 3 vertices
// cause an error wrapping mesh.ErrInvalidFace.
func Triangulate(m *mesh.Mesh) (*TriangulatedMesh, error) {
	start := time.Now()

	out := mesh.New()
	out.Vertices = append(out.Vertices, m.Vertices...)
	out.TextureVertices = append(out.TextureVertices, m.TextureVertices...)
	out.Normals = append(out.Normals, m.Normals...)
	out.Faces = make([]*mesh.Face, 0, CountTriangles(m))

	for faceIndex, f := range m.Faces {
		triangles, err := TriangulateFace(f)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", faceIndex, err)
		}
		out.Faces = append(out.Faces, triangles...)
	}

	logger.Infof("split %d faces into %d triangles in %d ms", len(m.Faces), len(out.Faces), time.Since(start).Nanoseconds()/1e6)
	return &TriangulatedMesh{Mesh: out}, nil
}

// Triangulate m after ensuring that it is non-nil and defines at least one face.
func TriangulateWithValidation(m *mesh.Mesh) (*TriangulatedMesh, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if len(m.Faces) == 0 {
		return nil, ErrNoFaces
	}
	return Triangulate(m)
}

// Split a single face into triangles. A face with N vertices yields N-2
// triangles connecting face-local vertices {0, i, i+1} for i in [1, N-2].
// Triangles are returned as copies of the input face.
//
// Texture and normal indices are carried over using the same pattern but only
// when their count matches the vertex count; otherwise the generated triangles
// have no binding for that attribute.
func TriangulateFace(f *mesh.Face) ([]*mesh.Face, error) {
	vertexIndices := f.VertexIndices()
	vertexCount := len(vertexIndices)

	if vertexCount < 3 {
		return nil, fmt.Errorf("%w: face must have at least 3 vertices; got %d", mesh.ErrInvalidFace, vertexCount)
	}

	if vertexCount == 3 {
		return []*mesh.Face{f.Clone()}, nil
	}

	var textureIndices, normalIndices []int
	if f.TextureIndicesMatch() {
		textureIndices = f.TextureIndices()
	} else if f.HasTextureCoordinates() {
		logger.Debugf("dropping texture indices for %s; expected %d indices; got %d", f, vertexCount, len(f.TextureIndices()))
	}
	if f.NormalIndicesMatch() {
		normalIndices = f.NormalIndices()
	} else if f.HasNormals() {
		logger.Debugf("dropping normal indices for %s; expected %d indices; got %d", f, vertexCount, len(f.NormalIndices()))
	}

	triangles := make([]*mesh.Face, 0, vertexCount-2)
	for i := 1; i < vertexCount-1; i++ {
		tri := mesh.NewTriangle(vertexIndices[0], vertexIndices[i], vertexIndices[i+1])
		if textureIndices != nil {
			if err := tri.SetTextureIndices(textureIndices[0], textureIndices[i], textureIndices[i+1]); err != nil {
				return nil, err
			}
		}
		if normalIndices != nil {
			if err := tri.SetNormalIndices(normalIndices[0], normalIndices[i], normalIndices[i+1]); err != nil {
				return nil, err
			}
		}
		triangles = append(triangles, tri)
	}

	return triangles, nil
}

// Calculate the number of triangles that Triangulate would generate for m.
// Unlike Triangulate, faces with fewer than 3 vertices are skipped.
func CountTriangles(m *mesh.Mesh) int {
	total := 0
	for _, f := range m.Faces {
		if n := f.Arity(); n >= 3 {
			total += n - 2
		}
	}
	return total
}
