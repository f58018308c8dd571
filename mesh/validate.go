package mesh

import "github.com/Pluggiyaki/Triangulator/log"

var logger = log.New("mesh")

// Check the indices of every face against the mesh attribute lists and return
// an *IndexError describing the first violation or nil if all indices are in
// range. Texture and normal indices are only checked for faces that define
// them; when defined, their count must match the vertex count.
func CheckIndices(m *Mesh) error {
	vertexCount := len(m.Vertices)
	textureCount := len(m.TextureVertices)
	normalCount := len(m.Normals)

	for faceIndex, f := range m.Faces {
		if err := checkRange(faceIndex, VertexIndex, f.vertexIndices, vertexCount); err != nil {
			return err
		}

		if f.HasTextureCoordinates() {
			if len(f.textureIndices) != len(f.vertexIndices) {
				return &IndexError{Face: faceIndex, Kind: TextureIndex, Max: textureCount - 1, Mismatch: true}
			}
			if err := checkRange(faceIndex, TextureIndex, f.textureIndices, textureCount); err != nil {
				return err
			}
		}

		if f.HasNormals() {
			if len(f.normalIndices) != len(f.vertexIndices) {
				return &IndexError{Face: faceIndex, Kind: NormalIndex, Max: normalCount - 1, Mismatch: true}
			}
			if err := checkRange(faceIndex, NormalIndex, f.normalIndices, normalCount); err != nil {
				return err
			}
		}
	}

	return nil
}

// Returns true if all face indices are valid. Violations are logged but not
// returned; callers decide whether an invalid mesh may still be used.
func Validate(m *Mesh) bool {
	if err := CheckIndices(m); err != nil {
		logger.Warning(err.Error())
		return false
	}
	return true
}

func checkRange(faceIndex int, kind IndexKind, indices []int, count int) error {
	for _, index := range indices {
		if index < 0 || index >= count {
			return &IndexError{Face: faceIndex, Kind: kind, Index: index, Max: count - 1}
		}
	}
	return nil
}
