package reader

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Pluggiyaki/Triangulator/asset"
	"github.com/Pluggiyaki/Triangulator/log"
	"github.com/Pluggiyaki/Triangulator/mesh"
	"github.com/Pluggiyaki/Triangulator/types"
)

// Longest line accepted by the scanner; faces with many corners can easily
// exceed bufio's default token size.
const maxLineLen = 1 << 20

type wavefrontMeshReader struct {
	logger log.Logger

	// The parsed mesh.
	mesh *mesh.Mesh

	// Record types that were skipped; each one is only logged once.
	skipped map[string]bool
}

// Create a new wavefront mesh reader.
func newWavefrontReader() *wavefrontMeshReader {
	return &wavefrontMeshReader{
		logger:  log.New("wavefront reader"),
		mesh:    mesh.New(),
		skipped: make(map[string]bool),
	}
}

// Read mesh definition.
func (r *wavefrontMeshReader) Read(res *asset.Resource) (*mesh.Mesh, error) {
	r.logger.Noticef(`parsing mesh from "%s"`, res.Path())
	start := time.Now()

	err := r.parse(res)
	if err != nil {
		return nil, err
	}

	r.logger.Noticef("parsed mesh in %d ms", time.Since(start).Nanoseconds()/1e6)
	return r.mesh, nil
}

// Parse wavefront object format.
func (r *wavefrontMeshReader) parse(res *asset.Resource) error {
	var lineNum int = 0

	scanner := bufio.NewScanner(res)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		lineTokens := stripComment(strings.Fields(line))
		if len(lineTokens) == 0 {
			continue
		}

		switch lineTokens[0] {
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(res, lineNum, line, err)
			}
			r.mesh.Vertices = append(r.mesh.Vertices, v)
		case "vt":
			v, err := parseVec2(lineTokens)
			if err != nil {
				return r.emitError(res, lineNum, line, err)
			}
			r.mesh.TextureVertices = append(r.mesh.TextureVertices, v)
		case "vn":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(res, lineNum, line, err)
			}
			r.mesh.Normals = append(r.mesh.Normals, v)
		case "f":
			face, err := r.parseFace(lineTokens)
			if err != nil {
				return r.emitError(res, lineNum, line, err)
			}
			r.mesh.Faces = append(r.mesh.Faces, face)
		default:
			if !r.skipped[lineTokens[0]] {
				r.skipped[lineTokens[0]] = true
				r.logger.Debugf(`skipping unsupported record "%s" (first seen at line %d)`, lineTokens[0], lineNum)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("wavefront reader: could not read %s: %w", res.Path(), err)
	}

	return nil
}

// Drop the tokens of a trailing comment. A comment starts at the first token
// beginning with '#'.
func stripComment(lineTokens []string) []string {
	for i, tok := range lineTokens {
		if strings.HasPrefix(tok, "#") {
			return lineTokens[:i]
		}
	}
	return lineTokens
}

// Wrap a line-level error into a ParseError.
func (r *wavefrontMeshReader) emitError(res *asset.Resource, line int, text string, err error) error {
	return &ParseError{
		File: res.Path(),
		Line: line,
		Text: text,
		Err:  err,
	}
}

// Parse face definition. Each face definition consists of at least 3
// arguments, one for each vertex. Each one of the vertex arguments is
// comprised of 1, 2 or 3 indices separated by a slash character. The
// following formats are supported:
// - vertexIndex
// - vertexIndex/uvIndex
// - vertexIndex//normalIndex
// - vertexIndex/uvIndex/normalIndex
//
// All arguments must use the same format. Indices start from 1 and may be
// negative to indicate an offset off the end of the list parsed so far.
func (r *wavefrontMeshReader) parseFace(lineTokens []string) (*mesh.Face, error) {
	argCount := len(lineTokens) - 1

	vertexIndices := make([]int, 0, argCount)
	uvIndices := make([]int, 0, argCount)
	normalIndices := make([]int, 0, argCount)

	var hasUV, hasNormal bool
	for arg := 0; arg < argCount; arg++ {
		vTokens := strings.Split(lineTokens[arg+1], "/")
		if len(vTokens) > 3 {
			return nil, fmt.Errorf("face argument %d contains %d indices; expected at most 3", arg, len(vTokens))
		}

		// Faces must at least define a vertex coord
		if vTokens[0] == "" {
			return nil, fmt.Errorf("face argument %d does not include a vertex index", arg)
		}

		argHasUV := len(vTokens) > 1 && vTokens[1] != ""
		argHasNormal := len(vTokens) > 2 && vTokens[2] != ""

		// The first arg defines the format for the following args
		if arg == 0 {
			hasUV, hasNormal = argHasUV, argHasNormal
		} else if argHasUV != hasUV || argHasNormal != hasNormal {
			return nil, fmt.Errorf("face argument %d does not match the format of the first argument", arg)
		}

		index, err := selectFaceCoordIndex(vTokens[0], len(r.mesh.Vertices))
		if err != nil {
			return nil, fmt.Errorf("could not parse vertex coord for face argument %d: %s", arg, err.Error())
		}
		vertexIndices = append(vertexIndices, index)

		if argHasUV {
			index, err = selectFaceCoordIndex(vTokens[1], len(r.mesh.TextureVertices))
			if err != nil {
				return nil, fmt.Errorf("could not parse tex coord for face argument %d: %s", arg, err.Error())
			}
			uvIndices = append(uvIndices, index)
		}

		if argHasNormal {
			index, err = selectFaceCoordIndex(vTokens[2], len(r.mesh.Normals))
			if err != nil {
				return nil, fmt.Errorf("could not parse normal coord for face argument %d: %s", arg, err.Error())
			}
			normalIndices = append(normalIndices, index)
		}
	}

	face := mesh.NewFace()
	if err := face.SetVertexIndices(vertexIndices...); err != nil {
		return nil, err
	}
	if err := face.SetTextureIndices(uvIndices...); err != nil {
		return nil, err
	}
	if err := face.SetNormalIndices(normalIndices...); err != nil {
		return nil, err
	}

	return face, nil
}

// Given a 1-based index for a face coord type (vertex, normal, tex) calculate
// the 0-based offset into the coord list. Negative indices reference elements
// from the end of the list parsed so far. Positive indices are not checked
// against the list length; that is left to mesh validation.
func selectFaceCoordIndex(indexToken string, coordListLen int) (int, error) {
	index, err := strconv.ParseInt(indexToken, 10, 32)
	if err != nil {
		return -1, err
	}

	switch {
	case index == 0:
		return -1, fmt.Errorf("index 0 is not valid; indices start from 1")
	case index < 0:
		offset := coordListLen + int(index)
		if offset < 0 {
			return -1, fmt.Errorf("index out of bounds")
		}
		return offset, nil
	}
	return int(index - 1), nil
}

// Parse a Vec3 row. Any components after the third one are ignored.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, fmt.Errorf(`unsupported syntax for "%s"; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec3{}
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 32)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = float32(coord)
	}
	return v, nil
}

// Parse a Vec2 row. Any components after the second one are ignored.
func parseVec2(lineTokens []string) (types.Vec2, error) {
	if len(lineTokens) < 3 {
		return types.Vec2{}, fmt.Errorf(`unsupported syntax for "%s"; expected 2 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec2{}
	for tokIdx := 1; tokIdx <= 2; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 32)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = float32(coord)
	}
	return v, nil
}
