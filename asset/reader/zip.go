package reader

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/Pluggiyaki/Triangulator/asset"
	"github.com/Pluggiyaki/Triangulator/log"
	"github.com/Pluggiyaki/Triangulator/mesh"
)

type zipMeshReader struct {
	logger log.Logger
}

// Create a new zip mesh reader.
func newZipMeshReader() *zipMeshReader {
	return &zipMeshReader{
		logger: log.New("zip reader"),
	}
}

// Read the first wavefront mesh stored in a zip archive.
func (p *zipMeshReader) Read(res *asset.Resource) (*mesh.Mesh, error) {
	p.logger.Noticef(`reading mesh archive "%s"`, res.Path())
	start := time.Now()

	// zip package requires a reader implementing ReaderAt. To work around
	// this requirement we read the entire zip file into memory and create
	// a reader from the bytes package that implements ReaderAt
	data, err := io.ReadAll(res)
	if err != nil {
		return nil, fmt.Errorf("zip reader: could not read %s: %w", res.Path(), err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("zip reader: %s: %w", res.Path(), err)
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !strings.HasSuffix(strings.ToLower(f.Name), ".obj") {
			p.logger.Warningf("skipping unsupported file %s in mesh archive", f.Name)
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("zip reader: failed to open %s: %w", f.Name, err)
		}
		m, err := newWavefrontReader().Read(asset.NewResourceFromStream(path.Join(res.Name(), f.Name), rc))
		rc.Close()
		if err != nil {
			return nil, err
		}

		p.logger.Noticef("loaded mesh archive in %d ms", time.Since(start).Nanoseconds()/1e6)
		return m, nil
	}

	return nil, fmt.Errorf("zip reader: archive %s contains no .obj entry", res.Path())
}
