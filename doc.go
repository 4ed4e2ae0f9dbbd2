// Package polydraw draws antialiased polygons, ellipses, polylines and text
// into an RGBA pixel buffer using signed distance fields.
//
// # Overview
//
// Every shape answers one question: how far is a point from my boundary,
// with a negative sign inside. The rasteriser samples that distance at each
// pixel centre of the shape's padded bounds and turns it into coverage:
//
//   - fills are opaque inside and fade to nothing over the antialias
//     factor outside the edge
//   - strokes are opaque within half the pen thickness of the boundary on
//     either side and fade the same way past the band
//
// Coverage is blended into the destination with premultiplied
// interpolation; the destination alpha is never changed.
//
// # Quick Start
//
//	c := polydraw.NewCanvas(800, 800)
//	defer c.Close()
//	c.Pixmap().Clear(polydraw.White)
//
//	_ = c.FillPolygon(polydraw.Solid(polydraw.HotPink),
//		[]polydraw.Point{polydraw.Pt(10, 10), polydraw.Pt(550, 50), polydraw.Pt(200, 400)})
//
//	pen, _ := polydraw.NewPen(polydraw.Solid(polydraw.Black), 10)
//	rect, _ := polydraw.NewRectangle(100, 500, 200, 200)
//	_ = c.Draw(pen, rect)
//
//	face, _ := text.Default(48)
//	_ = c.DrawString("Hello", face, polydraw.Solid(polydraw.Black), polydraw.Pt(400, 600))
//
//	_ = c.Pixmap().SavePNG("out.png")
//
// # Shapes
//
// Paths are built from LineSegments: LinearSegment for straight runs and
// BezierSegment for cubic (or promoted quadratic) curves, flattened to
// within FlattenTolerance. Polygon closes its path, Polyline leaves it open
// and has no interior, Ellipse is evaluated in closed form, and
// ComplexPolygon subtracts holes from outlines once at construction.
//
// # Brushes
//
// A Brush hands out an Applicator per draw call. SolidBrush,
// LinearGradientBrush and ImageBrush are provided. A *Pen wraps a Brush
// with a thickness for strokes.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel (x, y) is sampled at (x+0.5, y+0.5)
//
// # Concurrency
//
// Rows of a draw call are spread over a worker pool; output is byte for
// byte the same for any number of workers. Draw calls on one canvas may
// come from several goroutines and are serialised by the pixmap lock.
//
// # Logging
//
// The package is silent by default. Install a *slog.Logger with SetLogger
// to see per-draw diagnostics at debug level and skipped degeneracies at
// warn level.
package polydraw
