package writer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Pluggiyaki/Triangulator/log"
	"github.com/Pluggiyaki/Triangulator/mesh"
	"github.com/Pluggiyaki/Triangulator/types"
)

type wavefrontMeshWriter struct {
	logger log.Logger

	// The file where the mesh will be written.
	filename string
}

// Create a new wavefront mesh writer.
func newWavefrontWriter(filename string) *wavefrontMeshWriter {
	return &wavefrontMeshWriter{
		logger:   log.New("wavefront writer"),
		filename: filename,
	}
}

// Write mesh to the writer's output file. The file is always closed; a close
// error is only reported if the mesh was otherwise written successfully.
func (w *wavefrontMeshWriter) Write(m *mesh.Mesh) (err error) {
	w.logger.Noticef(`writing mesh to "%s"`, w.filename)
	start := time.Now()

	f, err := os.Create(w.filename)
	if err != nil {
		return fmt.Errorf("wavefront writer: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("wavefront writer: %w", closeErr)
		}
	}()

	if err = Encode(f, m); err != nil {
		return err
	}

	w.logger.Noticef("wrote mesh in %d ms", time.Since(start).Nanoseconds()/1e6)
	return nil
}

// Encode the wavefront text representation of m to dst. Output is buffered
// and flushed once after the whole mesh has been written. Face indices are
// written 1-based. Texture and normal indices are only written for faces
// whose index lists match their vertex count.
func Encode(dst io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(dst)

	// bufio.Writer errors are sticky; the Flush call below reports
	// the first error encountered by any of the writes.
	writeVec3List(bw, "v", m.Vertices)
	writeVec2List(bw, "vt", m.TextureVertices)
	writeVec3List(bw, "vn", m.Normals)
	writeFaces(bw, m.Faces)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("wavefront writer: %w", err)
	}
	return nil
}

// Write a list of Vec3 records followed by an empty line. Nothing is written
// for empty lists.
func writeVec3List(bw *bufio.Writer, record string, list []types.Vec3) {
	if len(list) == 0 {
		return
	}

	var line []byte
	for _, v := range list {
		line = append(line[:0], record...)
		for i := 0; i < 3; i++ {
			line = append(line, ' ')
			line = appendFloat(line, v[i])
		}
		line = append(line, '\n')
		bw.Write(line)
	}
	bw.WriteByte('\n')
}

// Write a list of Vec2 records followed by an empty line.
func writeVec2List(bw *bufio.Writer, record string, list []types.Vec2) {
	if len(list) == 0 {
		return
	}

	var line []byte
	for _, v := range list {
		line = append(line[:0], record...)
		for i := 0; i < 2; i++ {
			line = append(line, ' ')
			line = appendFloat(line, v[i])
		}
		line = append(line, '\n')
		bw.Write(line)
	}
	bw.WriteByte('\n')
}

// Write face records using the v, v/vt, v//vn or v/vt/vn argument format
// depending on the attributes bound to each face.
func writeFaces(bw *bufio.Writer, faces []*mesh.Face) {
	var line []byte
	for _, f := range faces {
		vertexIndices := f.VertexIndices()
		textureIndices := f.TextureIndices()
		normalIndices := f.NormalIndices()

		hasTextures := f.TextureIndicesMatch()
		hasNormals := f.NormalIndicesMatch()

		line = append(line[:0], 'f', ' ')
		for i, vertexIndex := range vertexIndices {
			if i > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendInt(line, int64(vertexIndex+1), 10)

			switch {
			case hasTextures && hasNormals:
				line = append(line, '/')
				line = strconv.AppendInt(line, int64(textureIndices[i]+1), 10)
				line = append(line, '/')
				line = strconv.AppendInt(line, int64(normalIndices[i]+1), 10)
			case hasTextures:
				line = append(line, '/')
				line = strconv.AppendInt(line, int64(textureIndices[i]+1), 10)
			case hasNormals:
				line = append(line, '/', '/')
				line = strconv.AppendInt(line, int64(normalIndices[i]+1), 10)
			}
		}
		line = append(line, '\n')
		bw.Write(line)
	}
}

// Format a coordinate using 6 fixed decimals. strconv always uses '.' as the
// decimal separator.
func appendFloat(dst []byte, v float32) []byte {
	return strconv.AppendFloat(dst, float64(v), 'f', 6, 32)
}
