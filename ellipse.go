package polydraw

import "math"

// minEllipseSteps is the smallest number of points an ellipse contour
// is flattened into.
const minEllipseSteps = 16

// Ellipse is an axis-aligned ellipse evaluated in closed form; it stores
// no boundary points.
type Ellipse struct {
	center Point
	rx, ry float64
}

// NewEllipse creates an ellipse centred at (cx, cy) with the given width
// and height.
func NewEllipse(cx, cy, w, h float64) (*Ellipse, error) {
	if !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return nil, invalidArg("NewEllipse", "size", "width and height must be positive and finite")
	}
	c := Pt(cx, cy)
	if !c.IsFinite() {
		return nil, invalidArg("NewEllipse", "center", "coordinates must be finite")
	}
	return &Ellipse{center: c, rx: w / 2, ry: h / 2}, nil
}

// NewCircle creates a circle of radius r.
func NewCircle(cx, cy, r float64) (*Ellipse, error) {
	return NewEllipse(cx, cy, 2*r, 2*r)
}

func (*Ellipse) shapeMarker() {}

// Bounds implements Shape.
func (e *Ellipse) Bounds() Rect {
	return Rect{
		Min: Pt(e.center.X-e.rx, e.center.Y-e.ry),
		Max: Pt(e.center.X+e.rx, e.center.Y+e.ry),
	}
}

// SignedDistance implements Shape. The sign comes from the implicit
// equation; the magnitude is the exact distance to the ellipse found by
// bisection, so results are deterministic.
func (e *Ellipse) SignedDistance(x, y float64) float64 {
	dx := math.Abs(x - e.center.X)
	dy := math.Abs(y - e.center.Y)

	var d float64
	switch {
	case e.rx == e.ry:
		d = math.Abs(math.Hypot(dx, dy) - e.rx)
	case e.rx > e.ry:
		d = distanceToEllipse(e.rx, e.ry, dx, dy)
	default:
		d = distanceToEllipse(e.ry, e.rx, dy, dx)
	}

	nx, ny := dx/e.rx, dy/e.ry
	if nx*nx+ny*ny < 1 {
		return -d
	}
	return d
}

// Contours implements Shape. The ring is sampled at equal angles with a
// chord error below FlattenTolerance.
func (e *Ellipse) Contours() [][]Point {
	r := math.Max(e.rx, e.ry)
	n := minEllipseSteps
	if r > FlattenTolerance {
		n = max(n, int(math.Ceil(math.Pi/math.Acos(1-FlattenTolerance/r))))
	}
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Pt(e.center.X+e.rx*math.Cos(a), e.center.Y+e.ry*math.Sin(a))
	}
	return [][]Point{pts}
}

// distanceToEllipse returns the distance from (y0, y1), in the first
// quadrant, to the ellipse with semi-axes e0 >= e1 > 0.
func distanceToEllipse(e0, e1, y0, y1 float64) float64 {
	if y1 > 0 {
		if y0 > 0 {
			z0, z1 := y0/e0, y1/e1
			g := z0*z0 + z1*z1 - 1
			if g == 0 {
				return 0
			}
			r0 := (e0 / e1) * (e0 / e1)
			s := ellipseRoot(r0, z0, z1, g)
			x0 := r0 * y0 / (s + r0)
			x1 := y1 / (s + 1)
			return math.Hypot(x0-y0, x1-y1)
		}
		return math.Abs(y1 - e1)
	}
	num := e0 * y0
	den := e0*e0 - e1*e1
	if num < den {
		xe := num / den
		x0 := e0 * xe
		x1 := e1 * math.Sqrt(1-xe*xe)
		return math.Hypot(x0-y0, x1)
	}
	return math.Abs(y0 - e0)
}

// ellipseRoot bisects for the root of the distance equation.
func ellipseRoot(r0, z0, z1, g float64) float64 {
	n0 := r0 * z0
	s0 := z1 - 1
	s1 := 0.0
	if g >= 0 {
		s1 = math.Hypot(n0, z1) - 1
	}
	s := 0.0
	for range 160 {
		s = (s0 + s1) / 2
		if s == s0 || s == s1 {
			break
		}
		ratio0 := n0 / (s + r0)
		ratio1 := z1 / (s + 1)
		g = ratio0*ratio0 + ratio1*ratio1 - 1
		switch {
		case g > 0:
			s0 = s
		case g < 0:
			s1 = s
		default:
			return s
		}
	}
	return s
}
