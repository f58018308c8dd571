package triangulate

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Pluggiyaki/Triangulator/mesh"
	"github.com/Pluggiyaki/Triangulator/types"
)

func polygon(t *testing.T, indices ...int) *mesh.Face {
	f := mesh.NewFace()
	if err := f.SetVertexIndices(indices...); err != nil {
		t.Fatal(err)
	}
	return f
}

func bindTextures(t *testing.T, f *mesh.Face, indices ...int) {
	if err := f.SetTextureIndices(indices...); err != nil {
		t.Fatal(err)
	}
}

func bindNormals(t *testing.T, f *mesh.Face, indices ...int) {
	if err := f.SetNormalIndices(indices...); err != nil {
		t.Fatal(err)
	}
}

func vertexIndices(faces []*mesh.Face) [][]int {
	out := make([][]int, len(faces))
	for i, f := range faces {
		out[i] = f.VertexIndices()
	}
	return out
}

func TestTriangulateQuad(t *testing.T) {
	m := mesh.New()
	m.Vertices = append(m.Vertices,
		types.XYZ(0, 0, 0),
		types.XYZ(1, 0, 0),
		types.XYZ(1, 1, 0),
		types.XYZ(0, 1, 0),
	)
	m.Faces = append(m.Faces, polygon(t, 0, 1, 2, 3))

	tm, err := Triangulate(m)
	if err != nil {
		t.Fatal(err)
	}

	exp := [][]int{{0, 1, 2}, {0, 2, 3}}
	if got := vertexIndices(tm.Faces); !reflect.DeepEqual(got, exp) {
		t.Fatalf("expected faces %v; got %v", exp, got)
	}
	if !tm.AllFacesAreTriangles() {
		t.Fatal("expected all faces to be triangles")
	}
}

func TestTriangulatePentagon(t *testing.T) {
	tris, err := TriangulateFace(polygon(t, 0, 1, 2, 3, 4))
	if err != nil {
		t.Fatal(err)
	}

	exp := [][]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}
	if got := vertexIndices(tris); !reflect.DeepEqual(got, exp) {
		t.Fatalf("expected faces %v; got %v", exp, got)
	}
}

func TestFanAnchoredAtFirstFaceVertex(t *testing.T) {
	tris, err := TriangulateFace(polygon(t, 7, 3, 9, 5))
	if err != nil {
		t.Fatal(err)
	}

	exp := [][]int{{7, 3, 9}, {7, 9, 5}}
	if got := vertexIndices(tris); !reflect.DeepEqual(got, exp) {
		t.Fatalf("expected faces %v; got %v", exp, got)
	}
}

func TestTriangleCountLaw(t *testing.T) {
	m := mesh.New()
	expTotal := 0
	for n := 3; n <= 12; n++ {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}

		f := polygon(t, indices...)
		tris, err := TriangulateFace(f)
		if err != nil {
			t.Fatal(err)
		}
		if len(tris) != n-2 {
			t.Fatalf("expected %d-gon to yield %d triangles; got %d", n, n-2, len(tris))
		}

		m.Faces = append(m.Faces, f)
		expTotal += n - 2
	}

	tm, err := Triangulate(m)
	if err != nil {
		t.Fatal(err)
	}
	if len(tm.Faces) != expTotal {
		t.Fatalf("expected %d triangles; got %d", expTotal, len(tm.Faces))
	}
	if got := CountTriangles(m); got != expTotal {
		t.Fatalf("expected dry count to be %d; got %d", expTotal, got)
	}
}

func TestTrianglePassThrough(t *testing.T) {
	m := mesh.New()
	m.Faces = append(m.Faces,
		mesh.NewTexturedTriangle(0, 1, 2, 0, 1, 2, 0, 0, 0),
		mesh.NewTriangle(2, 3, 0),
	)

	tm, err := Triangulate(m)
	if err != nil {
		t.Fatal(err)
	}
	if len(tm.Faces) != len(m.Faces) {
		t.Fatalf("expected %d faces; got %d", len(m.Faces), len(tm.Faces))
	}
	for i := range m.Faces {
		if !tm.Faces[i].Equal(m.Faces[i]) {
			t.Fatalf("expected face %d to be carried through unchanged", i)
		}
		if tm.Faces[i] == m.Faces[i] {
			t.Fatalf("expected face %d to be copied", i)
		}
	}
}

func TestDegenerateFaceRejection(t *testing.T) {
	m := mesh.New()
	m.Faces = append(m.Faces, polygon(t, 0, 1, 2, 3), mesh.NewFace())

	_, err := Triangulate(m)
	if !errors.Is(err, mesh.ErrInvalidFace) {
		t.Fatalf("expected ErrInvalidFace; got %v", err)
	}

	if got := CountTriangles(m); got != 2 {
		t.Fatalf("expected dry count to skip the degenerate face and return 2; got %d", got)
	}
}

func TestAttributePropagation(t *testing.T) {
	f := polygon(t, 0, 1, 2, 3)
	bindTextures(t, f, 10, 11, 12, 13)
	bindNormals(t, f, 20, 21, 22, 23)

	tris, err := TriangulateFace(f)
	if err != nil {
		t.Fatal(err)
	}

	expTex := [][]int{{10, 11, 12}, {10, 12, 13}}
	expNorm := [][]int{{20, 21, 22}, {20, 22, 23}}
	for i, tri := range tris {
		if !reflect.DeepEqual(tri.TextureIndices(), expTex[i]) {
			t.Fatalf("[tri %d] expected texture indices %v; got %v", i, expTex[i], tri.TextureIndices())
		}
		if !reflect.DeepEqual(tri.NormalIndices(), expNorm[i]) {
			t.Fatalf("[tri %d] expected normal indices %v; got %v", i, expNorm[i], tri.NormalIndices())
		}
	}
}

// Mismatched attribute lists are dropped silently rather than reported. This
// test pins that behavior so any change to it is deliberate.
func TestMismatchedAttributesAreDropped(t *testing.T) {
	f := polygon(t, 0, 1, 2, 3, 4)
	bindTextures(t, f, 0, 1, 2)
	bindNormals(t, f, 0, 1, 2, 3, 4)

	tris, err := TriangulateFace(f)
	if err != nil {
		t.Fatal(err)
	}

	for i, tri := range tris {
		if tri.HasTextureCoordinates() {
			t.Fatalf("[tri %d] expected mismatched texture indices to be dropped; got %v", i, tri.TextureIndices())
		}
		if n := len(tri.NormalIndices()); n != 3 {
			t.Fatalf("[tri %d] expected 3 normal indices; got %d", i, n)
		}
	}
}

func TestAttributeParallelism(t *testing.T) {
	m := mesh.New()
	for n := 3; n <= 8; n++ {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		f := polygon(t, indices...)
		if n%2 == 0 {
			bindTextures(t, f, indices...)
		} else {
			bindTextures(t, f, indices[:n-1]...)
		}
		bindNormals(t, f, 0, 0, 0)
		m.Faces = append(m.Faces, f)
	}

	tm, err := Triangulate(m)
	if err != nil {
		t.Fatal(err)
	}
	for i, tri := range tm.Faces {
		if n := len(tri.TextureIndices()); n != 0 && n != 3 {
			t.Fatalf("[tri %d] expected 0 or 3 texture indices; got %d", i, n)
		}
		if n := len(tri.NormalIndices()); n != 0 && n != 3 {
			t.Fatalf("[tri %d] expected 0 or 3 normal indices; got %d", i, n)
		}
	}
}

func TestOutputOrdering(t *testing.T) {
	m := mesh.New()
	m.Faces = append(m.Faces,
		polygon(t, 0, 1, 2, 3),
		mesh.NewTriangle(4, 5, 6),
		polygon(t, 7, 8, 9, 10, 11),
	)

	tm, err := Triangulate(m)
	if err != nil {
		t.Fatal(err)
	}

	exp := [][]int{{0, 1, 2}, {0, 2, 3}, {4, 5, 6}, {7, 8, 9}, {7, 9, 10}, {7, 10, 11}}
	if got := vertexIndices(tm.Faces); !reflect.DeepEqual(got, exp) {
		t.Fatalf("expected faces %v; got %v", exp, got)
	}
}

func TestNoAliasing(t *testing.T) {
	m := mesh.New()
	m.Vertices = append(m.Vertices, types.XYZ(0, 0, 0), types.XYZ(1, 0, 0), types.XYZ(0, 1, 0))
	m.TextureVertices = append(m.TextureVertices, types.XY(0, 0))
	m.Normals = append(m.Normals, types.XYZ(0, 0, 1))
	m.Faces = append(m.Faces, mesh.NewTriangle(0, 1, 2))

	tm, err := Triangulate(m)
	if err != nil {
		t.Fatal(err)
	}

	tm.Vertices[0] = types.XYZ(5, 5, 5)
	tm.TextureVertices[0] = types.XY(5, 5)
	tm.Normals[0] = types.XYZ(5, 5, 5)
	tm.Faces[0].SetVertexIndices(2, 1, 0)

	if m.Vertices[0] != types.XYZ(0, 0, 0) || m.TextureVertices[0] != types.XY(0, 0) || m.Normals[0] != types.XYZ(0, 0, 1) {
		t.Fatal("expected triangulated mesh attributes not to alias the source mesh")
	}
	if !reflect.DeepEqual(m.Faces[0].VertexIndices(), []int{0, 1, 2}) {
		t.Fatal("expected triangulated faces not to alias the source faces")
	}
}

func TestTriangulateWithValidation(t *testing.T) {
	if _, err := TriangulateWithValidation(nil); err != ErrNilMesh {
		t.Fatalf("expected ErrNilMesh; got %v", err)
	}
	if _, err := TriangulateWithValidation(mesh.New()); err != ErrNoFaces {
		t.Fatalf("expected ErrNoFaces; got %v", err)
	}

	m := mesh.New()
	m.Faces = append(m.Faces, polygon(t, 0, 1, 2, 3))
	tm, err := TriangulateWithValidation(m)
	if err != nil {
		t.Fatal(err)
	}
	if len(tm.Faces) != 2 {
		t.Fatalf("expected 2 triangles; got %d", len(tm.Faces))
	}
}
