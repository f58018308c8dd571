package main

import (
	"os"

	"github.com/Pluggiyaki/Triangulator/cmd"
	"github.com/Pluggiyaki/Triangulator/log"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	// The default version flag claims -v which is used for verbose logging
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "triangulator"
	app.Usage = "convert wavefront meshes with polygonal faces into triangle meshes"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "set log level (debug, info, notice, warning, error)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "triangulate",
			Usage: "split all mesh faces into triangles",
			Description: `
Parse a mesh from a wavefront obj file (or a zip archive containing one), split
every polygonal face into a fan of triangles anchored at the face's first
vertex and write the result back in wavefront format.

The fan split does not inspect face geometry; it is only correct for convex,
planar faces with a consistent winding order.`,
			ArgsUsage: "mesh.obj|mesh.zip|URL",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output file (.obj or .zip); defaults to <input>_triangulated.obj",
				},
				cli.BoolTFlag{
					Name:  "validate",
					Usage: "check face indices before writing the triangulated mesh",
				},
				cli.BoolFlag{
					Name:  "force",
					Usage: "write the triangulated mesh even if it contains invalid indices",
				},
			},
			Action: cmd.TriangulateMesh,
		},
		{
			Name:      "info",
			Usage:     "display mesh information",
			ArgsUsage: "mesh.obj|mesh.zip|URL",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "triangulated",
					Usage: "also display information about the triangulated mesh",
				},
			},
			Action: cmd.ShowMeshInfo,
		},
		{
			Name:      "validate",
			Usage:     "check that all face indices reference existing mesh attributes",
			ArgsUsage: "mesh.obj|mesh.zip|URL",
			Action:    cmd.ValidateMesh,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New("triangulator").Error(err)
		os.Exit(1)
	}
}
