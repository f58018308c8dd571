package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/Pluggiyaki/Triangulator/asset/reader"
	"github.com/Pluggiyaki/Triangulator/asset/writer"
	"github.com/Pluggiyaki/Triangulator/mesh"
	"github.com/Pluggiyaki/Triangulator/triangulate"
	"github.com/urfave/cli"
)

// Triangulate a mesh and write the result.
func TriangulateMesh(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing mesh file argument")
	}

	meshFile := ctx.Args().First()
	m, err := reader.ReadMesh(meshFile)
	if err != nil {
		return err
	}
	logger.Infof("source mesh information:\n%s", m.Stats())

	tm, err := triangulate.TriangulateWithValidation(m)
	if err != nil {
		return err
	}

	if ctx.BoolT("validate") && !mesh.Validate(tm.Mesh) {
		if !ctx.Bool("force") {
			return cli.NewExitError("triangulated mesh contains invalid indices; use --force to write it anyway", 2)
		}
		logger.Warning("writing mesh with invalid indices")
	}

	outFile := ctx.String("out")
	if outFile == "" {
		outFile = defaultOutputFile(meshFile)
	}
	if err = writer.WriteMesh(tm.Mesh, outFile); err != nil {
		return err
	}

	logger.Noticef("wrote %d triangles (from %d faces) to %s", len(tm.Faces), len(m.Faces), outFile)
	return nil
}

// Display mesh information.
func ShowMeshInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing mesh file argument")
	}

	m, err := reader.ReadMesh(ctx.Args().First())
	if err != nil {
		return err
	}
	logger.Noticef("mesh information:\n%s", m.Stats())

	if !ctx.Bool("triangulated") {
		return nil
	}

	tm, err := triangulate.Triangulate(m)
	if err != nil {
		return err
	}
	logger.Noticef("triangulated mesh information:\n%s", tm.Stats())
	logger.Noticef("all faces are triangles: %t", tm.AllFacesAreTriangles())
	logger.Noticef("expected triangles: %d", triangulate.CountTriangles(m))
	logger.Noticef("actual triangles: %d", len(tm.Faces))

	return nil
}

// Check mesh face indices.
func ValidateMesh(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing mesh file argument")
	}

	meshFile := ctx.Args().First()
	m, err := reader.ReadMesh(meshFile)
	if err != nil {
		return err
	}

	if err = mesh.CheckIndices(m); err != nil {
		return cli.NewExitError(fmt.Sprintf("%s: %s", meshFile, err.Error()), 2)
	}

	logger.Noticef("%s: all face indices are valid", meshFile)
	return nil
}

// Generate an output filename next to the input file. For remote inputs the
// file is placed in the working directory.
func defaultOutputFile(meshFile string) string {
	if u, err := url.Parse(meshFile); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		meshFile = path.Base(u.Path)
	}

	ext := filepath.Ext(meshFile)
	out := strings.TrimSuffix(meshFile, ext) + "_triangulated"
	if strings.EqualFold(ext, ".zip") {
		return out + ".zip"
	}
	return out + ".obj"
}
