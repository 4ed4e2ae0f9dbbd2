package polydraw

import (
	"iter"
	"math"
	"slices"
)

// FlattenTolerance is the maximum distance, in pixels, between a Bézier
// curve and the polyline it is flattened into.
const FlattenTolerance = 0.25

// maxSpanSteps caps the number of line pieces a single cubic span becomes.
const maxSpanSteps = 100

// LineSegment is a parametric primitive that flattens to a polyline.
// Implementations are immutable once constructed.
type LineSegment interface {
	// Simplify yields the flattened points in order. The sequence is
	// finite and may be iterated any number of times.
	Simplify() iter.Seq[Point]

	// Points returns a copy of the control points.
	Points() []Point

	// EndPoint returns the last point of the segment.
	EndPoint() Point

	segmentMarker()
}

// LinearSegment is a polyline through two or more points.
type LinearSegment struct {
	points []Point
}

// NewLinearSegment creates a polyline segment. It requires at least two
// finite points.
func NewLinearSegment(pts ...Point) (*LinearSegment, error) {
	if len(pts) < 2 {
		return nil, invalidArg("NewLinearSegment", "points", "need at least 2 points")
	}
	if err := checkFinite("NewLinearSegment", pts); err != nil {
		return nil, err
	}
	return &LinearSegment{points: slices.Clone(pts)}, nil
}

func (*LinearSegment) segmentMarker() {}

// Simplify yields the control points unchanged.
func (s *LinearSegment) Simplify() iter.Seq[Point] {
	return slices.Values(s.points)
}

// Points implements LineSegment.
func (s *LinearSegment) Points() []Point { return slices.Clone(s.points) }

// EndPoint implements LineSegment.
func (s *LinearSegment) EndPoint() Point {
	return s.points[len(s.points)-1]
}

// BezierSegment is a chain of cubic Bézier spans sharing end points:
// 3n+1 control points describe n spans.
type BezierSegment struct {
	points []Point
}

// NewCubicBezier creates a single cubic span.
func NewCubicBezier(p0, p1, p2, p3 Point) (*BezierSegment, error) {
	return NewBezierSegment(p0, p1, p2, p3)
}

// NewQuadraticBezier creates a quadratic curve promoted to an exact cubic:
// c1 = p0 + 2/3(ctrl-p0), c2 = end + 2/3(ctrl-end).
func NewQuadraticBezier(p0, ctrl, end Point) (*BezierSegment, error) {
	c1, c2 := promoteQuadratic(p0, ctrl, end)
	return NewBezierSegment(p0, c1, c2, end)
}

func promoteQuadratic(p0, ctrl, end Point) (Point, Point) {
	c1 := p0.Add(ctrl.Sub(p0).Mul(2.0 / 3.0))
	c2 := end.Add(ctrl.Sub(end).Mul(2.0 / 3.0))
	return c1, c2
}

// NewBezierSegment creates a chain of cubic spans from 3n+1 points, n >= 1.
func NewBezierSegment(pts ...Point) (*BezierSegment, error) {
	if len(pts) < 4 || (len(pts)-1)%3 != 0 {
		return nil, invalidArg("NewBezierSegment", "points", "need 3n+1 control points with n >= 1")
	}
	if err := checkFinite("NewBezierSegment", pts); err != nil {
		return nil, err
	}
	return &BezierSegment{points: slices.Clone(pts)}, nil
}

func (*BezierSegment) segmentMarker() {}

// Points implements LineSegment. Quadratic curves report their promoted
// cubic control points.
func (s *BezierSegment) Points() []Point { return slices.Clone(s.points) }

// EndPoint implements LineSegment.
func (s *BezierSegment) EndPoint() Point {
	return s.points[len(s.points)-1]
}

// Simplify yields the flattened curve. Each span is sampled at uniform
// parameter steps whose count follows Wang's formula for FlattenTolerance,
// so identical input always produces identical output. Consecutive
// coincident points are dropped.
func (s *BezierSegment) Simplify() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		last := s.points[0]
		if !yield(last) {
			return
		}
		for i := 0; i+3 < len(s.points); i += 3 {
			p0, p1, p2, p3 := s.points[i], s.points[i+1], s.points[i+2], s.points[i+3]
			n := cubicSteps(p0, p1, p2, p3)
			for k := 1; k <= n; k++ {
				var p Point
				if k == n {
					p = p3
				} else {
					p = evalCubic(p0, p1, p2, p3, float64(k)/float64(n))
				}
				if p == last {
					continue
				}
				last = p
				if !yield(p) {
					return
				}
			}
		}
	}
}

// cubicSteps returns the number of line pieces needed to keep a cubic
// within FlattenTolerance of its chords.
func cubicSteps(p0, p1, p2, p3 Point) int {
	dd := math.Max(
		p0.Sub(p1.Mul(2)).Add(p2).Length(),
		p1.Sub(p2.Mul(2)).Add(p3).Length(),
	)
	n := int(math.Ceil(math.Sqrt(0.75 * dd / FlattenTolerance)))
	return min(max(n, 1), maxSpanSteps)
}

func evalCubic(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// Flatten collects the flattened points of a segment.
func Flatten(s LineSegment) []Point {
	return slices.Collect(s.Simplify())
}

// SegmentsFromPoints returns one straight LinearSegment per consecutive
// pair of pts, ready to pass to NewPath.
func SegmentsFromPoints(pts ...Point) ([]LineSegment, error) {
	if len(pts) < 2 {
		return nil, invalidArg("SegmentsFromPoints", "points", "need at least 2 points")
	}
	segs := make([]LineSegment, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		s, err := NewLinearSegment(pts[i-1], pts[i])
		if err != nil {
			return nil, err
		}
		segs = append(segs, s)
	}
	return segs, nil
}

func checkFinite(op string, pts []Point) error {
	for _, p := range pts {
		if !p.IsFinite() {
			return invalidArg(op, "points", "coordinates must be finite")
		}
	}
	return nil
}
