package polydraw

import (
	"image"
	"math"
	"runtime"

	"github.com/gogpu/polydraw/internal/parallel"
)

// Default rasteriser tuning.
const (
	// DefaultAntialiasFactor is the width, in pixels, of the opacity ramp
	// outside a shape's edge.
	DefaultAntialiasFactor = 1.0

	// DefaultAntialiasPadding is how far beyond a shape's bounds pixels are
	// evaluated.
	DefaultAntialiasPadding = 1.0
)

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Single-threaded, with a softer edge
//	c := polydraw.NewCanvas(800, 600,
//		polydraw.WithParallelism(1),
//		polydraw.WithAntialiasFactor(1.5))
//
// Invalid values are ignored and the default is kept.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	parallelism int
	rowsPerTask int
	aaFactor    float64
	aaPadding   float64
	pixmap      *Pixmap
}

func defaultOptions() canvasOptions {
	return canvasOptions{
		parallelism: runtime.GOMAXPROCS(0),
		rowsPerTask: parallel.DefaultRowsPerTask,
		aaFactor:    DefaultAntialiasFactor,
		aaPadding:   DefaultAntialiasPadding,
	}
}

// WithParallelism sets the number of goroutines rows are spread over.
// 1 renders on the calling goroutine. The output is identical for every
// value.
func WithParallelism(n int) CanvasOption {
	return func(o *canvasOptions) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// WithRowsPerTask sets how many consecutive rows form one unit of work.
func WithRowsPerTask(n int) CanvasOption {
	return func(o *canvasOptions) {
		if n > 0 {
			o.rowsPerTask = n
		}
	}
}

// WithAntialiasFactor sets the width of the edge ramp in pixels.
func WithAntialiasFactor(f float64) CanvasOption {
	return func(o *canvasOptions) {
		if f > 0 && !math.IsInf(f, 0) {
			o.aaFactor = f
		}
	}
}

// WithAntialiasPadding sets how far past a shape's bounds pixels are
// evaluated. It is raised to the antialias factor if smaller.
func WithAntialiasPadding(f float64) CanvasOption {
	return func(o *canvasOptions) {
		if f >= 0 && !math.IsInf(f, 0) {
			o.aaPadding = f
		}
	}
}

// WithPixmap draws into an existing pixmap. The canvas takes the
// pixmap's dimensions.
//
// Example:
//
//	pm := polydraw.NewPixmap(800, 600)
//	pm.Clear(polydraw.White)
//	c := polydraw.NewCanvas(0, 0, polydraw.WithPixmap(pm))
func WithPixmap(pm *Pixmap) CanvasOption {
	return func(o *canvasOptions) {
		o.pixmap = pm
	}
}

// DrawOption configures a single draw call.
type DrawOption func(*drawOptions)

type drawOptions struct {
	region    image.Rectangle
	hasRegion bool
}

// WithRegion limits a draw to the given pixel rectangle. Pixels outside it
// are never touched.
func WithRegion(r image.Rectangle) DrawOption {
	return func(o *drawOptions) {
		o.region = r.Canon()
		o.hasRegion = true
	}
}

func resolveDrawOptions(opts []DrawOption) drawOptions {
	var o drawOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
