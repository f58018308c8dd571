package mesh

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFace = errors.New("mesh: invalid face")
)

// The kind of attribute index that failed validation.
type IndexKind uint8

const (
	VertexIndex IndexKind = iota
	TextureIndex
	NormalIndex
)

func (k IndexKind) String() string {
	switch k {
	case VertexIndex:
		return "vertex"
	case TextureIndex:
		return "texture"
	case NormalIndex:
		return "normal"
	}
	return "unknown"
}

// IndexError describes the first index validation failure for a mesh. If
// Mismatch is set, the face's attribute index count differs from its vertex
// count and Index is not meaningful.
type IndexError struct {
	Face     int
	Kind     IndexKind
	Index    int
	Max      int
	Mismatch bool
}

func (e *IndexError) Error() string {
	if e.Mismatch {
		return fmt.Sprintf("face %d: %s indices count doesn't match vertex indices count", e.Face, e.Kind)
	}
	return fmt.Sprintf("face %d: invalid %s index: %d (max: %d)", e.Face, e.Kind, e.Index, e.Max)
}
