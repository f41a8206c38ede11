// navforge is a CLI utility that converts triangulated glTF scenes into
// walkable-surface navigation meshes.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/navforge/internal/config"
	"github.com/Faultbox/navforge/internal/logger"
	"github.com/Faultbox/navforge/pkg/extract"
	"github.com/Faultbox/navforge/pkg/navmesh"
	"github.com/Faultbox/navforge/pkg/scene"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "build":
		cmdBuild(args)
	case "info":
		cmdInfo(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`navforge - glTF to navigation mesh converter

Usage:
  navforge <command> [options]

Commands:
  build <scene.gltf|.glb> [flags]   Build a navmesh from a scene
  info <scene.gltf|.glb>            Show scene statistics

Build flags:
  --config <path>      Config file (default ./navforge.yaml if present)
  --cell-size <f>      Voxel size on the xz plane
  --cell-height <f>    Voxel size along the y axis
  --agent-radius <f>   Agent radius in world units
  --agent-height <f>   Agent height in world units
  --agent-climb <f>    Maximum traversable ledge height
  --max-slope <f>      Maximum walkable slope in degrees
  --workers <n>        Goroutines used for geometry flattening
  --format <fmt>       Output format: bin, glb or gltf
  --out <path>         Output file path
  --debug              Enable debug logging

Examples:
  navforge build level.glb
  navforge build level.gltf --agent-radius 0.4 --format glb --out level_nav.glb
  navforge info level.glb`)
}

func cmdBuild(args []string) {
	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		fmt.Fprintln(os.Stderr, "Usage: navforge build <scene.gltf|.glb> [flags]")
		os.Exit(1)
	}
	input := args[0]
	config.ParseFlags(args[1:])

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := runBuild(input, cfg); err != nil {
		logger.Sugar.Errorf("build failed: %v", err)
		os.Exit(1)
	}
}

func runBuild(input string, cfg *config.Config) error {
	doc, err := scene.Open(input)
	if err != nil {
		return err
	}
	sc, err := doc.DefaultScene()
	if err != nil {
		return err
	}

	pairs, err := extract.Collect(sc)
	if err != nil {
		return fmt.Errorf("collecting geometry: %w", err)
	}
	logger.Sugar.Debugf("collected %d triangle primitives", len(pairs))

	geom, err := extract.FlattenParallel(pairs, cfg.Build.Workers)
	if err != nil {
		return fmt.Errorf("flattening geometry: %w", err)
	}
	logger.Sugar.Infof("extracted %d vertices, %d triangles from %s",
		geom.VertexCount(), geom.TriangleCount(), input)

	if geom.TriangleCount() == 0 {
		return fmt.Errorf("%s: scene contains no triangle geometry", input)
	}

	builder := navmesh.NewVoxelBuilder()
	mesh, err := builder.Build(geom.Positions, geom.Indices, cfg.Build.Settings())
	if err != nil {
		return fmt.Errorf("building navmesh: %w", err)
	}
	logger.Sugar.Infof("navmesh: %d vertices, %d triangles",
		mesh.VertexCount(), mesh.TriangleCount())

	out := cfg.Output.Path
	if out == "" {
		out = deriveOutputPath(input, cfg.Output.Format)
	}
	if err := writeMesh(mesh, out, cfg.Output.Format); err != nil {
		return err
	}
	logger.Sugar.Infof("wrote %s", out)
	return nil
}

func writeMesh(mesh *navmesh.Mesh, out, format string) error {
	switch format {
	case "bin":
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		return navmesh.EncodeBinary(f, mesh)
	case "glb", "gltf":
		return navmesh.Save(mesh, out)
	default:
		return fmt.Errorf("unknown output format %q (want bin, glb or gltf)", format)
	}
}

func deriveOutputPath(input, format string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	switch format {
	case "glb":
		return base + "_nav.glb"
	case "gltf":
		return base + "_nav.gltf"
	default:
		return base + ".navmesh"
	}
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: navforge info <scene.gltf|.glb>")
		os.Exit(1)
	}

	doc, err := scene.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	st := doc.Stats()
	fmt.Printf("File:       %s\n", args[0])
	fmt.Printf("Scenes:     %d\n", st.Scenes)
	fmt.Printf("Nodes:      %d\n", st.Nodes)
	fmt.Printf("Meshes:     %d\n", st.Meshes)
	fmt.Printf("Primitives: %d\n", st.Primitives)
	fmt.Printf("Triangles:  %d\n", st.Triangles)

	sc, err := doc.DefaultScene()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	pairs, err := extract.Collect(sc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	geom, err := extract.Flatten(pairs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if geom.VertexCount() == 0 {
		fmt.Println("Bounds:     (empty)")
		return
	}

	bmin := [3]float32{geom.Positions[0], geom.Positions[1], geom.Positions[2]}
	bmax := bmin
	for i := 3; i+2 < len(geom.Positions); i += 3 {
		for c := 0; c < 3; c++ {
			if geom.Positions[i+c] < bmin[c] {
				bmin[c] = geom.Positions[i+c]
			}
			if geom.Positions[i+c] > bmax[c] {
				bmax[c] = geom.Positions[i+c]
			}
		}
	}
	fmt.Printf("Bounds:     min (%.2f, %.2f, %.2f)  max (%.2f, %.2f, %.2f)\n",
		bmin[0], bmin[1], bmin[2], bmax[0], bmax[1], bmax[2])
}
