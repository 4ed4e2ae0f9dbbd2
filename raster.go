package polydraw

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/polydraw/internal/blend"
	"github.com/gogpu/polydraw/internal/parallel"
)

// FillOpacity maps the signed distance of a pixel centre to its fill
// coverage. Points on or inside the boundary are fully covered; coverage
// falls linearly to 0 over aa pixels outside it. d == aa gives exactly 0.
func FillOpacity(d, aa float64) float64 {
	switch {
	case d <= 0:
		return 1
	case !(d < aa):
		return 0
	default:
		return 1 - d/aa
	}
}

// StrokeOpacity maps the signed distance of a pixel centre to its stroke
// coverage for a band of half-width half around the boundary. Inside the
// band coverage is 1; past either band edge it ramps like FillOpacity.
func StrokeOpacity(d, half, aa float64) float64 {
	if d < 0 {
		d = -d
	}
	if d <= half {
		return 1
	}
	return FillOpacity(d-half, aa)
}

// coverageFunc returns the opacity of the pixel whose centre is (x, y).
// It is called concurrently and must not mutate shared state.
type coverageFunc func(x, y float64) float64

// rasterJob is one validated draw call, ready to hit the pixels.
type rasterJob struct {
	op       string
	brush    Brush
	bounds   Rect
	pad      float64
	coverage coverageFunc
}

// pixelBox resolves the integer pixel rectangle a job may touch: the
// shape bounds grown by the padding, clamped to the pixmap and the
// caller's region of interest.
func (c *Canvas) pixelBox(job *rasterJob, d drawOptions) image.Rectangle {
	box := job.bounds.Inflate(job.pad).ImageRect().Intersect(c.pm.Bounds())
	if d.hasRegion {
		box = box.Intersect(d.region)
	}
	return box
}

// run composites job into the canvas pixmap. All argument checks have
// happened by the time it is called; the only error it returns comes from
// acquiring the applicator, before any pixel is written.
func (c *Canvas) run(job *rasterJob, d drawOptions) error {
	box := c.pixelBox(job, d)
	if box.Empty() {
		Logger().Debug("polydraw: "+job.op+" outside target", slog.Any("bounds", job.bounds))
		return nil
	}

	app, err := job.brush.CreateApplicator(Rect{
		Min: Pt(float64(box.Min.X), float64(box.Min.Y)),
		Max: Pt(float64(box.Max.X), float64(box.Max.Y)),
	})
	if err != nil {
		return fmt.Errorf("polydraw: %s: %w", job.op, err)
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			Logger().Warn("polydraw: applicator close", slog.String("op", job.op), slog.Any("err", cerr))
		}
	}()

	acc := c.pm.Lock()
	defer acc.Release()

	parallel.ForRows(c.pool, box.Min.Y, box.Max.Y, c.opts.rowsPerTask, func(y int) {
		row := acc.Row(y)
		py := float64(y) + 0.5
		for x := box.Min.X; x < box.Max.X; x++ {
			px := float64(x) + 0.5
			o := job.coverage(px, py)
			if o <= blend.Epsilon {
				continue
			}
			col := app.ColorAt(px, py)
			amount := o * col.A
			if amount <= blend.Epsilon {
				continue
			}
			blend.LerpPremultiplied(row[x*4:], col.R, col.G, col.B, amount)
		}
	})

	Logger().Debug("polydraw: "+job.op,
		slog.Any("rect", box),
		slog.Int("rows", box.Dy()),
		slog.Int("workers", c.pool.Workers()),
	)
	return nil
}

// fillJob builds the job for filling s with b.
func (c *Canvas) fillJob(op string, b Brush, s Shape) *rasterJob {
	aa := c.opts.aaFactor
	return &rasterJob{
		op:     op,
		brush:  b,
		bounds: s.Bounds(),
		pad:    c.padding(),
		coverage: func(x, y float64) float64 {
			return FillOpacity(s.SignedDistance(x, y), aa)
		},
	}
}

// strokeJob builds the job for stroking the outline of s with p.
func (c *Canvas) strokeJob(op string, p *Pen, s Shape) *rasterJob {
	aa := c.opts.aaFactor
	return &rasterJob{
		op:     op,
		brush:  p.Brush(),
		bounds: s.Bounds(),
		pad:    c.padding() + p.HalfThickness(),
		coverage: func(x, y float64) float64 {
			return FillOpacity(p.EffectiveDistance(s, x, y), aa)
		},
	}
}

// glyphRunJob builds one job covering every glyph of a string, so the
// whole string is drawn under a single lock and applicator. Overlapping
// glyphs take the larger coverage. dist gives the distance used for the
// ramp; grow is added to the padding of each glyph.
func (c *Canvas) glyphRunJob(op string, b Brush, glyphs []*ComplexPolygon, grow float64, dist func(g Shape, x, y float64) float64) *rasterJob {
	aa := c.opts.aaFactor
	pad := c.padding() + grow
	boxes := make([]Rect, len(glyphs))
	bounds := glyphs[0].Bounds()
	for i, g := range glyphs {
		boxes[i] = g.Bounds().Inflate(pad)
		bounds = bounds.Union(g.Bounds())
	}
	return &rasterJob{
		op:     op,
		brush:  b,
		bounds: bounds,
		pad:    pad,
		coverage: func(x, y float64) float64 {
			best := 0.0
			pt := Pt(x, y)
			for i, g := range glyphs {
				if !boxes[i].Contains(pt) {
					continue
				}
				best = max(best, FillOpacity(dist(g, x, y), aa))
				if best == 1 {
					break
				}
			}
			return best
		},
	}
}

// padding is never smaller than the antialias ramp, so no partly covered
// pixel is cut off.
func (c *Canvas) padding() float64 {
	return max(c.opts.aaPadding, c.opts.aaFactor)
}
