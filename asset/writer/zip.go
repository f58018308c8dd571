package writer

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Pluggiyaki/Triangulator/log"
	"github.com/Pluggiyaki/Triangulator/mesh"
)

type zipMeshWriter struct {
	logger log.Logger

	// The archive file where the mesh will be written.
	zipFile string
}

// Create a new zip mesh writer.
func newZipMeshWriter(zipFile string) *zipMeshWriter {
	return &zipMeshWriter{
		logger:  log.New("zip writer"),
		zipFile: zipFile,
	}
}

// Write mesh to a zip archive containing a single wavefront file named after
// the archive.
func (w *zipMeshWriter) Write(m *mesh.Mesh) (err error) {
	w.logger.Noticef(`writing mesh archive "%s"`, w.zipFile)
	start := time.Now()

	f, err := os.Create(w.zipFile)
	if err != nil {
		return fmt.Errorf("zip writer: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("zip writer: %w", closeErr)
		}
	}()

	zw := zip.NewWriter(f)
	entry, err := zw.Create(w.entryName())
	if err != nil {
		zw.Close()
		return fmt.Errorf("zip writer: %w", err)
	}

	if err = Encode(entry, m); err != nil {
		zw.Close()
		return err
	}

	if err = zw.Close(); err != nil {
		return fmt.Errorf("zip writer: %w", err)
	}

	w.logger.Noticef("wrote mesh archive in %d ms", time.Since(start).Nanoseconds()/1e6)
	return nil
}

// Name of the wavefront entry stored inside the archive.
func (w *zipMeshWriter) entryName() string {
	base := filepath.Base(w.zipFile)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".obj"
}
