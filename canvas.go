package polydraw

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/polydraw/internal/parallel"
	"github.com/gogpu/polydraw/text"
)

// Canvas draws shapes, polylines and text into a Pixmap.
//
// Every draw call is synchronous: it validates its arguments, locks the
// pixmap, writes the covered pixels and returns. Calls on one Canvas may be
// made from several goroutines; they serialise on the pixmap lock.
//
// Example:
//
//	c := polydraw.NewCanvas(800, 600)
//	defer c.Close()
//	c.Pixmap().Clear(polydraw.White)
//	tri, _ := polydraw.NewPolygonFromPoints(
//		polydraw.Pt(10, 10), polydraw.Pt(550, 50), polydraw.Pt(200, 400))
//	_ = c.Fill(polydraw.Solid(polydraw.HotPink), tri)
//	_ = c.Pixmap().SavePNG("out.png")
type Canvas struct {
	pm   *Pixmap
	opts canvasOptions
	pool *parallel.WorkerPool
}

// NewCanvas creates a canvas backed by a new transparent width×height
// pixmap, or by the pixmap given with WithPixmap.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	pm := o.pixmap
	if pm == nil {
		pm = NewPixmap(width, height)
	}

	c := &Canvas{pm: pm, opts: o}
	if o.parallelism > 1 {
		c.pool = parallel.NewWorkerPool(o.parallelism)
	}
	Logger().Debug("polydraw: canvas created",
		slog.Int("width", pm.Width()),
		slog.Int("height", pm.Height()),
		slog.Int("workers", c.pool.Workers()),
	)
	return c
}

// Pixmap returns the pixel buffer the canvas draws into.
func (c *Canvas) Pixmap() *Pixmap { return c.pm }

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.pm.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.pm.Height() }

// Close stops the canvas workers. The canvas keeps working afterwards,
// drawing on the calling goroutine.
func (c *Canvas) Close() error {
	c.pool.Close()
	return nil
}

// Fill paints the interior of s with b. Pixels within the antialias
// factor outside the boundary get partial coverage. Open polylines have no
// interior and fill nothing.
func (c *Canvas) Fill(b Brush, s Shape, opts ...DrawOption) error {
	if b == nil {
		return invalidArg("Fill", "brush", "brush is nil")
	}
	if s == nil {
		return invalidArg("Fill", "shape", "shape is nil")
	}
	if _, ok := s.(*Polyline); ok {
		Logger().Debug("polydraw: fill of open polyline skipped")
		return nil
	}
	return c.run(c.fillJob("fill", b, s), resolveDrawOptions(opts))
}

// Draw strokes the boundary of s with p. The stroke is centred on the
// boundary, so half of it lies inside a closed shape.
func (c *Canvas) Draw(p *Pen, s Shape, opts ...DrawOption) error {
	if p == nil {
		return invalidArg("Draw", "pen", "pen is nil")
	}
	if s == nil {
		return invalidArg("Draw", "shape", "shape is nil")
	}
	return c.run(c.strokeJob("draw", p, s), resolveDrawOptions(opts))
}

// FillPolygon fills the closed polygon through pts.
func (c *Canvas) FillPolygon(b Brush, pts []Point, opts ...DrawOption) error {
	poly, err := NewPolygonFromPoints(pts...)
	if err != nil {
		return err
	}
	return c.Fill(b, poly, opts...)
}

// DrawPolygon strokes the closed polygon through pts.
func (c *Canvas) DrawPolygon(p *Pen, pts []Point, opts ...DrawOption) error {
	poly, err := NewPolygonFromPoints(pts...)
	if err != nil {
		return err
	}
	return c.Draw(p, poly, opts...)
}

// DrawLines strokes the open polyline through pts.
func (c *Canvas) DrawLines(p *Pen, pts []Point, opts ...DrawOption) error {
	seg, err := NewLinearSegment(pts...)
	if err != nil {
		return err
	}
	line, err := NewPolyline(seg)
	if err != nil {
		return err
	}
	return c.Draw(p, line, opts...)
}

// DrawString renders s with face, starting at the baseline origin pos.
// paint is either a Brush, which fills the glyphs, or a *Pen, which
// strokes their outlines.
//
// The string is shaped as a whole and every glyph becomes one
// ComplexPolygon before any pixel is drawn.
func (c *Canvas) DrawString(s string, face *text.Face, paint Paint, pos Point, opts ...DrawOption) error {
	if face == nil {
		return invalidArg("DrawString", "face", "face is nil")
	}
	if paint == nil {
		return invalidArg("DrawString", "paint", "paint is nil")
	}
	if !pos.IsFinite() {
		return invalidArg("DrawString", "pos", "coordinates must be finite")
	}

	glyphs, err := GlyphShapes(s, face, pos)
	if err != nil {
		return fmt.Errorf("polydraw: draw string: %w", err)
	}

	if len(glyphs) == 0 {
		return nil
	}

	var job *rasterJob
	switch p := paint.(type) {
	case *Pen:
		if p == nil {
			return invalidArg("DrawString", "paint", "pen is nil")
		}
		job = c.glyphRunJob("draw string", p.Brush(), glyphs, p.HalfThickness(), func(g Shape, x, y float64) float64 {
			return p.EffectiveDistance(g, x, y)
		})
	case Brush:
		job = c.glyphRunJob("fill string", p, glyphs, 0, func(g Shape, x, y float64) float64 {
			return g.SignedDistance(x, y)
		})
	default:
		return invalidArg("DrawString", "paint", fmt.Sprintf("unsupported paint %T", paint))
	}
	return c.run(job, resolveDrawOptions(opts))
}
