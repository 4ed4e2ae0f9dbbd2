package polydraw

import (
	"math"
	"slices"
)

// Shape is a region of the plane described by a signed distance function.
// This is a sealed interface; the variants are *Polygon, *Polyline,
// *Ellipse and *ComplexPolygon.
//
// SignedDistance is negative strictly inside, zero on the boundary and
// positive outside. Every rasteriser relies on this sign convention.
//
// Shapes are immutable after construction and safe for concurrent reads.
type Shape interface {
	// Bounds returns the axis-aligned bounding box of the shape.
	Bounds() Rect

	// SignedDistance returns the signed distance from (x, y) to the
	// boundary of the shape.
	SignedDistance(x, y float64) float64

	// Contours returns the boundary as closed point rings whose even-odd
	// combination is the shape's region. Open shapes return their single
	// polyline.
	Contours() [][]Point

	shapeMarker()
}

// Polygon is a simple polygon bounded by a single closed path.
type Polygon struct {
	path *Path
}

// NewPolygon creates a closed polygon from segments.
func NewPolygon(segs ...LineSegment) (*Polygon, error) {
	p, err := NewPath(true, segs...)
	if err != nil {
		return nil, err
	}
	return &Polygon{path: p}, nil
}

// NewPolygonFromPoints creates a closed polygon through pts.
func NewPolygonFromPoints(pts ...Point) (*Polygon, error) {
	seg, err := NewLinearSegment(pts...)
	if err != nil {
		return nil, err
	}
	return NewPolygon(seg)
}

// NewRectangle creates an axis-aligned rectangle polygon.
func NewRectangle(x, y, w, h float64) (*Polygon, error) {
	if !(w > 0) || !(h > 0) {
		return nil, invalidArg("NewRectangle", "size", "width and height must be positive")
	}
	return NewPolygonFromPoints(
		Pt(x, y),
		Pt(x+w, y),
		Pt(x+w, y+h),
		Pt(x, y+h),
	)
}

// NewRegularPolygon creates a regular n-gon inscribed in the circle of
// radius r around (cx, cy). The first vertex sits at angle radians from
// the +X axis.
func NewRegularPolygon(cx, cy, r float64, n int, angle float64) (*Polygon, error) {
	if n < 3 {
		return nil, invalidArg("NewRegularPolygon", "n", "need at least 3 sides")
	}
	if !(r > 0) || math.IsInf(r, 0) {
		return nil, invalidArg("NewRegularPolygon", "r", "must be finite and > 0")
	}
	pts := make([]Point, n)
	for i := range pts {
		a := angle + 2*math.Pi*float64(i)/float64(n)
		pts[i] = Pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return NewPolygonFromPoints(pts...)
}

func (*Polygon) shapeMarker() {}

// Path returns the boundary path.
func (p *Polygon) Path() *Path { return p.path }

// Bounds implements Shape.
func (p *Polygon) Bounds() Rect { return p.path.Bounds() }

// SignedDistance implements Shape. The sign comes from the even-odd
// membership test and the magnitude from the nearest edge.
func (p *Polygon) SignedDistance(x, y float64) float64 {
	pt := Pt(x, y)
	d := p.path.Distance(pt).Distance
	if p.path.Contains(pt) {
		return -d
	}
	return d
}

// Contours implements Shape.
func (p *Polygon) Contours() [][]Point {
	return [][]Point{slices.Clone(p.path.Points())}
}

// Polyline is an open path used as a shape. It encloses no area, so its
// signed distance is never negative; it is meant to be stroked.
type Polyline struct {
	path *Path
}

// NewPolyline creates an open polyline shape from segments.
func NewPolyline(segs ...LineSegment) (*Polyline, error) {
	p, err := NewPath(false, segs...)
	if err != nil {
		return nil, err
	}
	return &Polyline{path: p}, nil
}

func (*Polyline) shapeMarker() {}

// Path returns the underlying open path.
func (l *Polyline) Path() *Path { return l.path }

// Bounds implements Shape.
func (l *Polyline) Bounds() Rect { return l.path.Bounds() }

// SignedDistance implements Shape.
func (l *Polyline) SignedDistance(x, y float64) float64 {
	return l.path.Distance(Pt(x, y)).Distance
}

// Contours implements Shape.
func (l *Polyline) Contours() [][]Point {
	return [][]Point{slices.Clone(l.path.Points())}
}
