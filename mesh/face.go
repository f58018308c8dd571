package mesh

import "fmt"

// A Face is a polygon described by an ordered list of vertex indices. Texture
// and normal index lists are either empty or bound one-to-one to the vertex
// indices. Indices are 0-based and are not checked against any mesh until
// the mesh is validated.
type Face struct {
	vertexIndices  []int
	textureIndices []int
	normalIndices  []int
}

// Create a face with no indices.
func NewFace() *Face {
	return &Face{
		vertexIndices:  make([]int, 0),
		textureIndices: make([]int, 0),
		normalIndices:  make([]int, 0),
	}
}

// Create a triangle with no texture or normal bindings.
func NewTriangle(v1, v2, v3 int) *Face {
	f := NewFace()
	f.vertexIndices = append(f.vertexIndices, v1, v2, v3)
	return f
}

// Create a triangle with texture and normal bindings.
func NewTexturedTriangle(v1, v2, v3, t1, t2, t3, n1, n2, n3 int) *Face {
	f := NewTriangle(v1, v2, v3)
	f.textureIndices = append(f.textureIndices, t1, t2, t3)
	f.normalIndices = append(f.normalIndices, n1, n2, n3)
	return f
}

// Replace the vertex indices. At least 3 indices are required.
func (f *Face) SetVertexIndices(indices ...int) error {
	if len(indices) < 3 {
		return fmt.Errorf("%w: face must have at least 3 vertices; got %d", ErrInvalidFace, len(indices))
	}
	f.vertexIndices = copyIndices(indices)
	return nil
}

// Replace the texture indices. An empty list clears the texture binding.
func (f *Face) SetTextureIndices(indices ...int) error {
	if len(indices) != 0 && len(indices) < 3 {
		return fmt.Errorf("%w: texture indices must be empty or have at least 3 elements; got %d", ErrInvalidFace, len(indices))
	}
	f.textureIndices = copyIndices(indices)
	return nil
}

// Replace the normal indices. An empty list clears the normal binding.
func (f *Face) SetNormalIndices(indices ...int) error {
	if len(indices) != 0 && len(indices) < 3 {
		return fmt.Errorf("%w: normal indices must be empty or have at least 3 elements; got %d", ErrInvalidFace, len(indices))
	}
	f.normalIndices = copyIndices(indices)
	return nil
}

// Get a copy of the vertex indices.
func (f *Face) VertexIndices() []int {
	return copyIndices(f.vertexIndices)
}

// Get a copy of the texture indices.
func (f *Face) TextureIndices() []int {
	return copyIndices(f.textureIndices)
}

// Get a copy of the normal indices.
func (f *Face) NormalIndices() []int {
	return copyIndices(f.normalIndices)
}

// Number of vertices in this face.
func (f *Face) Arity() int {
	return len(f.vertexIndices)
}

func (f *Face) IsTriangle() bool {
	return len(f.vertexIndices) == 3
}

func (f *Face) HasTextureCoordinates() bool {
	return len(f.textureIndices) != 0
}

func (f *Face) HasNormals() bool {
	return len(f.normalIndices) != 0
}

// Returns true if the texture indices are bound one-to-one to the vertex indices.
func (f *Face) TextureIndicesMatch() bool {
	return len(f.textureIndices) != 0 && len(f.textureIndices) == len(f.vertexIndices)
}

// Returns true if the normal indices are bound one-to-one to the vertex indices.
func (f *Face) NormalIndicesMatch() bool {
	return len(f.normalIndices) != 0 && len(f.normalIndices) == len(f.vertexIndices)
}

// Create a deep copy of this face.
func (f *Face) Clone() *Face {
	return &Face{
		vertexIndices:  copyIndices(f.vertexIndices),
		textureIndices: copyIndices(f.textureIndices),
		normalIndices:  copyIndices(f.normalIndices),
	}
}

// Compare two faces by value.
func (f *Face) Equal(other *Face) bool {
	if f == nil || other == nil {
		return f == other
	}
	return equalIndices(f.vertexIndices, other.vertexIndices) &&
		equalIndices(f.textureIndices, other.textureIndices) &&
		equalIndices(f.normalIndices, other.normalIndices)
}

func (f *Face) String() string {
	return fmt.Sprintf("Face[%d vertices]", len(f.vertexIndices))
}

func copyIndices(indices []int) []int {
	out := make([]int, len(indices))
	copy(out, indices)
	return out
}

func equalIndices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
