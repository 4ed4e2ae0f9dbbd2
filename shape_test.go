package polydraw

import (
	"errors"
	"math"
	"testing"
)

func TestPolygonSignConvention(t *testing.T) {
	tri, err := NewPolygonFromPoints(Pt(10, 10), Pt(550, 50), Pt(200, 400))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		pt   Point
		sign int
	}{
		{"centroid", Pt(253.33, 153.33), -1},
		{"interior", Pt(300, 150), -1},
		{"near vertex inside", Pt(20, 15), -1},
		{"outside corner", Pt(5, 5), 1},
		{"far outside", Pt(700, 700), 1},
		{"vertex", Pt(10, 10), 0},
		{"edge midpoint", Pt(280, 30), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tri.SignedDistance(tt.pt.X, tt.pt.Y)
			switch tt.sign {
			case -1:
				if !(d < 0) {
					t.Errorf("SignedDistance(%v) = %v, want < 0", tt.pt, d)
				}
			case 1:
				if !(d > 0) {
					t.Errorf("SignedDistance(%v) = %v, want > 0", tt.pt, d)
				}
			default:
				if math.Abs(d) > 1e-9 {
					t.Errorf("SignedDistance(%v) = %v, want 0", tt.pt, d)
				}
			}
		})
	}
}

func TestPolygonSignedDistanceMagnitude(t *testing.T) {
	rect, err := NewRectangle(0, 0, 100, 50)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		x, y, want float64
	}{
		{50, 25, -25},
		{10, 25, -10},
		{50, -5, 5},
		{103, 54, 5},
	}
	for _, tt := range tests {
		if got := rect.SignedDistance(tt.x, tt.y); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("SignedDistance(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	want := Rect{Min: Pt(0, 0), Max: Pt(100, 50)}
	if rect.Bounds() != want {
		t.Errorf("Bounds() = %v, want %v", rect.Bounds(), want)
	}
}

func TestNewRectangleErrors(t *testing.T) {
	for _, size := range [][2]float64{{0, 5}, {5, 0}, {-1, 5}, {math.NaN(), 5}} {
		if _, err := NewRectangle(0, 0, size[0], size[1]); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewRectangle(%v) error = %v, want ErrInvalidArgument", size, err)
		}
	}
}

func TestNewRegularPolygon(t *testing.T) {
	hex, err := NewRegularPolygon(50, 50, 10, 6, 0)
	if err != nil {
		t.Fatal(err)
	}
	pts := hex.Path().Points()
	if len(pts) != 6 {
		t.Fatalf("got %d vertices, want 6", len(pts))
	}
	for _, p := range pts {
		if d := p.Distance(Pt(50, 50)); math.Abs(d-10) > 1e-9 {
			t.Errorf("vertex %v is %v from the centre, want 10", p, d)
		}
	}
	if d := hex.SignedDistance(50, 50); d >= 0 {
		t.Errorf("centre SignedDistance = %v, want < 0", d)
	}

	if _, err := NewRegularPolygon(0, 0, 10, 2, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("n=2 error = %v", err)
	}
	if _, err := NewRegularPolygon(0, 0, 0, 5, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("r=0 error = %v", err)
	}
}

func TestPolylineNeverInside(t *testing.T) {
	line, err := NewPolyline(mustSegment(t, Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		x, y, want float64
	}{
		{5, 5, 5},
		{5, 0, 0},
		{-3, 0, 3},
		{0, 5, 5},
	}
	for _, tt := range tests {
		if got := line.SignedDistance(tt.x, tt.y); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("SignedDistance(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if c := line.Contours(); len(c) != 1 || len(c[0]) != 4 {
		t.Errorf("Contours() = %v", c)
	}
}

func TestEllipseSignedDistance(t *testing.T) {
	circle, err := NewCircle(0, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	wide, err := NewEllipse(0, 0, 40, 20)
	if err != nil {
		t.Fatal(err)
	}
	tall, err := NewEllipse(100, 100, 20, 40)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		e    *Ellipse
		x, y float64
		want float64
	}{
		{"circle centre", circle, 0, 0, -10},
		{"circle outside", circle, 20, 0, 10},
		{"circle boundary", circle, 0, 10, 0},
		{"circle diagonal", circle, 3, 4, -5},
		{"wide centre", wide, 0, 0, -10},
		{"wide on major axis", wide, 30, 0, 10},
		{"wide on minor axis", wide, 0, 15, 5},
		{"wide inside major axis", wide, 15, 0, -5},
		{"tall centre", tall, 100, 100, -10},
		{"tall above", tall, 100, 70, 10},
		{"tall left", tall, 85, 100, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.SignedDistance(tt.x, tt.y); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("SignedDistance(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestEllipseDistanceOffAxis(t *testing.T) {
	e, err := NewEllipse(0, 0, 40, 20)
	if err != nil {
		t.Fatal(err)
	}
	// The distance found must not exceed the distance to any sampled
	// boundary point, and must be close to the best of them.
	for _, q := range []Point{Pt(25, 12), Pt(5, 3), Pt(-18, -2), Pt(14, -14)} {
		d := math.Abs(e.SignedDistance(q.X, q.Y))
		best := math.Inf(1)
		for i := range 20000 {
			a := 2 * math.Pi * float64(i) / 20000
			best = math.Min(best, q.Distance(Pt(20*math.Cos(a), 10*math.Sin(a))))
		}
		if d > best+1e-9 || best-d > 1e-3 {
			t.Errorf("distance at %v = %v, sampled minimum %v", q, d, best)
		}
	}
}

func TestEllipseContours(t *testing.T) {
	e, err := NewEllipse(50, 40, 60, 30)
	if err != nil {
		t.Fatal(err)
	}
	c := e.Contours()
	if len(c) != 1 || len(c[0]) < 16 {
		t.Fatalf("Contours() = %d rings, %d points", len(c), len(c[0]))
	}
	for _, p := range c[0] {
		if d := e.SignedDistance(p.X, p.Y); math.Abs(d) > 1e-6 {
			t.Errorf("contour point %v has distance %v", p, d)
		}
	}
	want := Rect{Min: Pt(20, 25), Max: Pt(80, 55)}
	if e.Bounds() != want {
		t.Errorf("Bounds() = %v, want %v", e.Bounds(), want)
	}
}

func TestNewEllipseErrors(t *testing.T) {
	tests := []struct {
		name       string
		cx, cy     float64
		w, h       float64
	}{
		{"zero width", 0, 0, 0, 10},
		{"negative height", 0, 0, 10, -1},
		{"infinite", 0, 0, math.Inf(1), 10},
		{"NaN centre", math.NaN(), 0, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEllipse(tt.cx, tt.cy, tt.w, tt.h); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("NewEllipse() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}
