package polydraw

import (
	"math"
)

// Path is an immutable polyline built from one or more LineSegments.
// When closed, the implicit edge from the last point back to the first
// takes part in every query.
type Path struct {
	points []Point
	closed bool
	bounds Rect
	length float64
}

// PointInfo describes the point of a path nearest to a query point.
type PointInfo struct {
	// Distance is the euclidean distance to the nearest edge.
	Distance float64

	// ClosestPoint is the nearest point on the path.
	ClosestPoint Point

	// DistanceAlongPath is the arc length from the first point of the
	// path to ClosestPoint.
	DistanceAlongPath float64
}

// NewPath flattens segs into a path. At least one segment is required.
// Points where one segment ends and the next begins are merged.
func NewPath(closed bool, segs ...LineSegment) (*Path, error) {
	if len(segs) == 0 {
		return nil, invalidArg("NewPath", "segments", "need at least 1 segment")
	}
	var pts []Point
	for i, s := range segs {
		if s == nil {
			return nil, invalidArg("NewPath", "segments", "segment is nil")
		}
		first := i > 0
		for p := range s.Simplify() {
			if first && pts[len(pts)-1] == p {
				first = false
				continue
			}
			first = false
			pts = append(pts, p)
		}
	}
	return newPathFromPoints(pts, closed), nil
}

// newPathFromPoints builds a path from already flattened points.
// pts must not be empty.
func newPathFromPoints(pts []Point, closed bool) *Path {
	if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	p := &Path{
		points: pts,
		closed: closed,
		bounds: RectFromPoints(pts),
	}
	for i := range p.edgeCount() {
		a, b := p.edge(i)
		p.length += a.Distance(b)
	}
	return p
}

// Points returns the flattened points. The slice must not be modified.
func (p *Path) Points() []Point { return p.points }

// Closed reports whether the path has an implicit closing edge.
func (p *Path) Closed() bool { return p.closed }

// Bounds returns the axis-aligned bounding box of all points.
func (p *Path) Bounds() Rect { return p.bounds }

// Length returns the total edge length, closing edge included.
func (p *Path) Length() float64 { return p.length }

func (p *Path) edgeCount() int {
	n := len(p.points)
	switch {
	case n < 2:
		return 0
	case p.closed:
		return n
	default:
		return n - 1
	}
}

func (p *Path) edge(i int) (Point, Point) {
	j := i + 1
	if j == len(p.points) {
		j = 0
	}
	return p.points[i], p.points[j]
}

// Contains reports whether pt is inside the path under the even-odd rule.
// A horizontal ray is cast towards +X; horizontal edges never count as
// crossings.
func (p *Path) Contains(pt Point) bool {
	inside := false
	for i := range p.edgeCount() {
		a, b := p.edge(i)
		if (a.Y > pt.Y) == (b.Y > pt.Y) {
			continue
		}
		x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if pt.X < x {
			inside = !inside
		}
	}
	return inside
}

// Distance returns the nearest point on the path to pt, measured to edge
// segments rather than infinite lines. When several edges are equally
// near, the first one in edge order wins.
func (p *Path) Distance(pt Point) PointInfo {
	if len(p.points) == 1 {
		return PointInfo{Distance: pt.Distance(p.points[0]), ClosestPoint: p.points[0]}
	}

	best := PointInfo{Distance: math.Inf(1)}
	along := 0.0
	for i := range p.edgeCount() {
		a, b := p.edge(i)
		c, t := closestOnSegment(pt, a, b)
		d := pt.Distance(c)
		edgeLen := a.Distance(b)
		if d < best.Distance {
			best = PointInfo{
				Distance:          d,
				ClosestPoint:      c,
				DistanceAlongPath: along + t*edgeLen,
			}
		}
		along += edgeLen
	}
	return best
}

// SignedArea returns the shoelace area of the closed polygon through the
// points. Its sign depends on winding direction.
func (p *Path) SignedArea() float64 {
	return signedArea(p.points)
}

func signedArea(pts []Point) float64 {
	var sum float64
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		sum += a.Cross(b)
	}
	return sum / 2
}

// closestOnSegment returns the point of segment ab nearest to p and its
// parameter in [0, 1]. A zero-length segment yields a.
func closestOnSegment(p, a, b Point) (Point, float64) {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return a, 0
	}
	t := p.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return a.Add(ab.Mul(t)), t
}
