// meshtool is a CLI utility for building and inspecting runtime mesh
// section files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/runtimemesh/internal/config"
	"github.com/Faultbox/runtimemesh/internal/logger"
	"github.com/Faultbox/runtimemesh/pkg/mesh"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "info":
		cmdInfo(args)
	case "dump":
		cmdDump(args)
	case "make":
		cmdMake(args, cfg)
	case "watch":
		cmdWatch(args, cfg)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - runtime mesh section utility

Usage:
  meshtool [flags] <command> [options]

Commands:
  info <file.rmsb>                 Show section information
  dump <file.rmsb>                 Dump positions and triangles
  make [options] <shape> [output]  Build a box or plane section
  watch <dir>                      Validate section files as they change

Flags (before the command):
  -config path     Path to config file
  -debug           Enable debug logging
  -output dir      Output directory for written sections
  -frequency name  Section update frequency (average, frequent, infrequent)
  -collision       Enable collision on built sections
  -tessellation    Generate tessellation adjacency on build

Examples:
  meshtool info terrain.rmsb
  meshtool dump -n 10 terrain.rmsb
  meshtool -collision make -x 2 -y 1 -z 2 box crate.rmsb
  meshtool make -segx 8 -segz 8 plane ground.rmsb
  meshtool watch ./sections`)
}

// readSection loads a section file into a fresh dual-buffer section so
// the persisted position stream is visible to the inspection commands.
func readSection(path string) (*mesh.TypedSection[mesh.VertexNoPosition], uint32) {
	s := mesh.NewNoPositionSection()
	version, err := mesh.ReadSectionFile(path, s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return s, version
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool info <file.rmsb>")
		os.Exit(1)
	}

	s, version := readSection(args[0])

	fmt.Printf("Section:   %s\n", args[0])
	fmt.Printf("Version:   %d\n", version)
	fmt.Printf("Vertices:  %d\n", len(s.Positions()))
	fmt.Printf("Triangles: %d\n", len(s.Indices())/3)
	fmt.Printf("Bounds:    %v\n", s.Bounds())
	fmt.Printf("Collision: %v\n", s.CollisionEnabled)
	fmt.Printf("Visible:   %v\n", s.Visible)
	fmt.Printf("Frequency: %v\n", s.UpdateFrequency)
}

func cmdDump(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	limit := fs.Int("n", 0, "Limit output to N entries per buffer (0 = all)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool dump [-n limit] <file.rmsb>")
		os.Exit(1)
	}

	s, _ := readSection(fs.Arg(0))

	positions := s.Positions()
	fmt.Printf("Positions (%d):\n", len(positions))
	for i, p := range positions {
		if *limit > 0 && i >= *limit {
			fmt.Printf("  ... %d more\n", len(positions)-i)
			break
		}
		fmt.Printf("  %5d  %9.3f %9.3f %9.3f\n", i, p.X(), p.Y(), p.Z())
	}

	indices := s.Indices()
	fmt.Printf("Triangles (%d):\n", len(indices)/3)
	for t := 0; t*3+2 < len(indices); t++ {
		if *limit > 0 && t >= *limit {
			fmt.Printf("  ... %d more\n", len(indices)/3-t)
			break
		}
		fmt.Printf("  %5d  %d %d %d\n", t, indices[t*3], indices[t*3+1], indices[t*3+2])
	}
}

func cmdMake(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("make", flag.ExitOnError)
	sizeX := fs.Float64("x", 1, "Box half-extent / plane width on X")
	sizeY := fs.Float64("y", 1, "Box half-extent on Y")
	sizeZ := fs.Float64("z", 1, "Box half-extent / plane depth on Z")
	segX := fs.Int("segx", 1, "Plane segments on X")
	segZ := fs.Int("segz", 1, "Plane segments on Z")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool make [options] <box|plane> [output.rmsb]")
		os.Exit(1)
	}

	var verts []mesh.VertexSimple
	var indices []uint32
	shape := fs.Arg(0)
	switch shape {
	case "box":
		verts, indices = mesh.BoxMesh(mgl32.Vec3{float32(*sizeX), float32(*sizeY), float32(*sizeZ)})
	case "plane":
		verts, indices = mesh.PlaneMesh(float32(*sizeX), float32(*sizeZ), *segX, *segZ)
	default:
		fmt.Fprintf(os.Stderr, "Unknown shape: %s\n", shape)
		os.Exit(1)
	}

	// Split the authored records into a position stream and attribute
	// records: only the stream persists, so built files must be
	// dual-buffer to carry their geometry.
	positions := make([]mgl32.Vec3, len(verts))
	arrays := mesh.VertexArrays{
		Normals:  make([]mgl32.Vec3, len(verts)),
		Tangents: make([]mgl32.Vec4, len(verts)),
		Colors:   make([][4]uint8, len(verts)),
		UV0:      make([]mgl32.Vec2, len(verts)),
	}
	for i, v := range verts {
		positions[i] = v.Position
		arrays.Normals[i] = v.Normal
		arrays.Tangents[i] = v.Tangent
		arrays.Colors[i] = v.Color
		arrays.UV0[i] = v.UV0
	}

	s := mesh.NewNoPositionSection()
	s.UpdatePositionBuffer(positions, nil, true)
	s.UpdateVertexBuffer(mesh.BuildVertexBuffer(mesh.NoPositionAPI, arrays), nil, true)
	s.UpdateIndexBuffer(indices, true)
	cfg.Mesh.Apply(s)

	out := filepath.Join(cfg.Tool.OutputDir, shape+".rmsb")
	if fs.NArg() > 1 {
		out = fs.Arg(1)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Fatal("creating output directory", zap.String("dir", dir), zap.Error(err))
		}
	}

	if err := mesh.WriteSectionFile(out, s); err != nil {
		logger.Fatal("writing section", zap.String("path", out), zap.Error(err))
	}

	logger.Info("section written",
		zap.String("path", out),
		zap.String("shape", shape),
		zap.Int("vertices", len(positions)),
		zap.Int("triangles", len(indices)/3))
	fmt.Printf("Wrote %s (%d vertices, %d triangles)\n", out, len(positions), len(indices)/3)
}

func cmdWatch(args []string, cfg *config.Config) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool watch <dir>")
		os.Exit(1)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Fatal("creating watcher", zap.Error(err))
	}
	defer watcher.Close()

	if err := watcher.Add(args[0]); err != nil {
		logger.Fatal("watching directory", zap.String("dir", args[0]), zap.Error(err))
	}
	logger.Info("watching for section changes", zap.String("dir", args[0]))

	// Editors fire several events per save; coalesce them per path.
	timers := make(map[string]*time.Timer)
	for {
		select {
		case e, ok := <-watcher.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !strings.EqualFold(filepath.Ext(e.Name), ".rmsb") {
				continue
			}
			if t, exists := timers[e.Name]; exists {
				t.Reset(cfg.Tool.Debounce())
				continue
			}
			path := e.Name
			timers[path] = time.AfterFunc(cfg.Tool.Debounce(), func() {
				checkSection(path)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Error("watch error", zap.Error(err))
		}
	}
}

func checkSection(path string) {
	s := mesh.NewNoPositionSection()
	version, err := mesh.ReadSectionFile(path, s)
	if err != nil {
		logger.Error("invalid section", zap.String("path", path), zap.Error(err))
		return
	}

	logger.Info("section updated",
		zap.String("path", path),
		zap.Uint32("version", version),
		zap.Int("vertices", len(s.Positions())),
		zap.Int("triangles", len(s.Indices())/3))
}
