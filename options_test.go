package polydraw

import (
	"image"
	"runtime"
	"testing"

	"github.com/gogpu/polydraw/internal/parallel"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.parallelism != runtime.GOMAXPROCS(0) {
		t.Errorf("parallelism = %d, want GOMAXPROCS", o.parallelism)
	}
	if o.rowsPerTask != parallel.DefaultRowsPerTask {
		t.Errorf("rowsPerTask = %d", o.rowsPerTask)
	}
	if o.aaFactor != DefaultAntialiasFactor || o.aaPadding != DefaultAntialiasPadding {
		t.Errorf("antialias = %v/%v", o.aaFactor, o.aaPadding)
	}
	if o.pixmap != nil {
		t.Error("default pixmap should be nil")
	}
}

func TestCanvasOptions(t *testing.T) {
	tests := []struct {
		name  string
		opt   CanvasOption
		check func(o canvasOptions) bool
	}{
		{"parallelism", WithParallelism(3), func(o canvasOptions) bool { return o.parallelism == 3 }},
		{"parallelism zero ignored", WithParallelism(0), func(o canvasOptions) bool { return o.parallelism == runtime.GOMAXPROCS(0) }},
		{"rows per task", WithRowsPerTask(16), func(o canvasOptions) bool { return o.rowsPerTask == 16 }},
		{"rows per task negative ignored", WithRowsPerTask(-1), func(o canvasOptions) bool { return o.rowsPerTask == parallel.DefaultRowsPerTask }},
		{"antialias factor", WithAntialiasFactor(2.5), func(o canvasOptions) bool { return o.aaFactor == 2.5 }},
		{"antialias factor zero ignored", WithAntialiasFactor(0), func(o canvasOptions) bool { return o.aaFactor == DefaultAntialiasFactor }},
		{"antialias padding", WithAntialiasPadding(0), func(o canvasOptions) bool { return o.aaPadding == 0 }},
		{"antialias padding negative ignored", WithAntialiasPadding(-1), func(o canvasOptions) bool { return o.aaPadding == DefaultAntialiasPadding }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.opt(&o)
			if !tt.check(o) {
				t.Errorf("options after apply = %+v", o)
			}
		})
	}
}

func TestCanvasPadding(t *testing.T) {
	tests := []struct {
		name string
		opts []CanvasOption
		want float64
	}{
		{"defaults", nil, 1},
		{"padding raised to factor", []CanvasOption{WithAntialiasFactor(3), WithAntialiasPadding(1)}, 3},
		{"larger padding kept", []CanvasOption{WithAntialiasPadding(5)}, 5},
		{"zero padding", []CanvasOption{WithAntialiasPadding(0)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(4, 4, append(tt.opts, WithParallelism(1))...)
			defer c.Close()
			if got := c.padding(); got != tt.want {
				t.Errorf("padding() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveDrawOptions(t *testing.T) {
	if o := resolveDrawOptions(nil); o.hasRegion {
		t.Error("no options should leave the region unset")
	}
	o := resolveDrawOptions([]DrawOption{nil, WithRegion(image.Rectangle{Min: image.Pt(10, 20), Max: image.Pt(0, 5)})})
	if !o.hasRegion || o.region != image.Rect(0, 5, 10, 20) {
		t.Errorf("region = %v (set %v), want canonical rectangle", o.region, o.hasRegion)
	}
}
