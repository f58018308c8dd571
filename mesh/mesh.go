package mesh

import (
	"bytes"
	"fmt"

	"github.com/Pluggiyaki/Triangulator/types"
	"github.com/olekukonko/tablewriter"
)

// A Mesh holds vertex positions, texture coordinates and normals together with
// the faces that reference them by index. Faces are not checked against the
// attribute lists when they are added; see CheckIndices.
type Mesh struct {
	Vertices        []types.Vec3
	TextureVertices []types.Vec2
	Normals         []types.Vec3
	Faces           []*Face
}

// Create an empty mesh.
func New() *Mesh {
	return &Mesh{
		Vertices:        make([]types.Vec3, 0),
		TextureVertices: make([]types.Vec2, 0),
		Normals:         make([]types.Vec3, 0),
		Faces:           make([]*Face, 0),
	}
}

// Create a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Vertices:        append(make([]types.Vec3, 0, len(m.Vertices)), m.Vertices...),
		TextureVertices: append(make([]types.Vec2, 0, len(m.TextureVertices)), m.TextureVertices...),
		Normals:         append(make([]types.Vec3, 0, len(m.Normals)), m.Normals...),
		Faces:           make([]*Face, len(m.Faces)),
	}
	for i, f := range m.Faces {
		out.Faces[i] = f.Clone()
	}
	return out
}

// Returns true if every face in the mesh has exactly 3 vertices.
func (m *Mesh) AllFacesAreTriangles() bool {
	for _, f := range m.Faces {
		if !f.IsTriangle() {
			return false
		}
	}
	return true
}

// Calculate the axis-aligned bounds of the mesh vertices. An empty mesh
// yields zero bounds.
func (m *Mesh) Bounds() [2]types.Vec3 {
	if len(m.Vertices) == 0 {
		return [2]types.Vec3{}
	}

	bounds := [2]types.Vec3{m.Vertices[0], m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		bounds[0] = types.MinVec3(bounds[0], v)
		bounds[1] = types.MaxVec3(bounds[1], v)
	}
	return bounds
}

// Count faces by arity; returns the number of triangles, quads and faces
// with any other vertex count.
func (m *Mesh) FaceCounts() (triangles, quads, other int) {
	for _, f := range m.Faces {
		switch f.Arity() {
		case 3:
			triangles++
		case 4:
			quads++
		default:
			other++
		}
	}
	return triangles, quads, other
}

// Generate a table with mesh statistics.
func (m *Mesh) Stats() string {
	var buf bytes.Buffer

	triangles, quads, other := m.FaceCounts()
	bounds := m.Bounds()

	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Element", "Type", "Count"})
	table.Append([]string{"Attributes", "---", fmt.Sprint(len(m.Vertices) + len(m.TextureVertices) + len(m.Normals))})
	table.Append([]string{"", "Vertices", fmt.Sprint(len(m.Vertices))})
	table.Append([]string{"", "Texture vertices", fmt.Sprint(len(m.TextureVertices))})
	table.Append([]string{"", "Normals", fmt.Sprint(len(m.Normals))})
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Faces", "---", fmt.Sprint(len(m.Faces))})
	table.Append([]string{"", "Triangles", fmt.Sprint(triangles)})
	table.Append([]string{"", "Quads", fmt.Sprint(quads)})
	table.Append([]string{"", "Other (n>4)", fmt.Sprint(other)})
	table.SetFooter([]string{"Bounds", bounds[0].String(), bounds[1].String()})

	table.Render()
	return buf.String()
}
