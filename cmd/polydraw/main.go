// Command polydraw renders a YAML scene file to a PNG image.
//
// Usage:
//
//	polydraw -scene drawing.yaml -o drawing.png [-workers N] [-v]
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/polydraw"
	"github.com/gogpu/polydraw/scene"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (YAML)")
		output    = flag.String("o", "out.png", "output PNG file")
		workers   = flag.Int("workers", 0, "raster workers (0 = GOMAXPROCS)")
		verbose   = flag.Bool("v", false, "log every draw call to stderr")
	)
	flag.Parse()

	if *scenePath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		polydraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	s, err := scene.LoadFile(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	var opts []polydraw.CanvasOption
	if *workers > 0 {
		opts = append(opts, polydraw.WithParallelism(*workers))
	}

	start := time.Now()
	pm, err := s.Render(opts...)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	elapsed := time.Since(start)

	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Scene saved to %s (%dx%d, %d items, %v)\n", *output, pm.Width(), pm.Height(), len(s.Items), elapsed)
}
