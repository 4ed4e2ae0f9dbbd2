package scene

import (
	"fmt"
	"math"

	"github.com/gogpu/polydraw"
)

// Shape types.
const (
	ShapePolygon = "polygon"
	ShapeRect    = "rect"
	ShapeEllipse = "ellipse"
	ShapeCircle  = "circle"
	ShapeRegular = "regular"
	ShapeComplex = "complex"
	ShapeLines   = "lines"
)

// ShapeSpec describes a shape. Which fields apply depends on Type:
//
//   - polygon: Points; with Bezier set they are 3n+1 cubic control points
//   - rect: X, Y, Width, Height
//   - ellipse: Center, Width, Height
//   - circle: Center, Radius
//   - regular: Center, Radius, Sides, Angle in degrees
//   - complex: Outlines and Holes, each a list of shapes
//   - lines: Points, an open polyline
type ShapeSpec struct {
	Type string `yaml:"type"`

	Points []Coord `yaml:"points,omitempty"`
	Bezier bool    `yaml:"bezier,omitempty"`

	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	Center Coord   `yaml:"center,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
	Sides  int     `yaml:"sides,omitempty"`
	Angle  float64 `yaml:"angle,omitempty"`

	Outlines []ShapeSpec `yaml:"outlines,omitempty"`
	Holes    []ShapeSpec `yaml:"holes,omitempty"`
}

func (s *ShapeSpec) build() (polydraw.Shape, error) {
	switch s.Type {
	case ShapePolygon:
		pts, err := points(s.Points)
		if err != nil {
			return nil, err
		}
		if !s.Bezier {
			return polydraw.NewPolygonFromPoints(pts...)
		}
		seg, err := polydraw.NewBezierSegment(pts...)
		if err != nil {
			return nil, err
		}
		return polydraw.NewPolygon(seg)
	case ShapeRect:
		return polydraw.NewRectangle(s.X, s.Y, s.Width, s.Height)
	case ShapeEllipse:
		c, err := s.Center.point()
		if err != nil {
			return nil, err
		}
		return polydraw.NewEllipse(c.X, c.Y, s.Width, s.Height)
	case ShapeCircle:
		c, err := s.Center.point()
		if err != nil {
			return nil, err
		}
		return polydraw.NewCircle(c.X, c.Y, s.Radius)
	case ShapeRegular:
		c, err := s.Center.point()
		if err != nil {
			return nil, err
		}
		return polydraw.NewRegularPolygon(c.X, c.Y, s.Radius, s.Sides, s.Angle*math.Pi/180)
	case ShapeComplex:
		outlines, err := buildAll(s.Outlines)
		if err != nil {
			return nil, fmt.Errorf("outlines: %w", err)
		}
		holes, err := buildAll(s.Holes)
		if err != nil {
			return nil, fmt.Errorf("holes: %w", err)
		}
		return polydraw.NewComplexPolygon(outlines, holes)
	case ShapeLines:
		pts, err := points(s.Points)
		if err != nil {
			return nil, err
		}
		seg, err := polydraw.NewLinearSegment(pts...)
		if err != nil {
			return nil, err
		}
		return polydraw.NewPolyline(seg)
	default:
		return nil, fmt.Errorf("%w: unknown shape type %q", ErrInvalidScene, s.Type)
	}
}

func buildAll(specs []ShapeSpec) ([]polydraw.Shape, error) {
	shapes := make([]polydraw.Shape, len(specs))
	for i := range specs {
		sh, err := specs[i].build()
		if err != nil {
			return nil, err
		}
		shapes[i] = sh
	}
	return shapes, nil
}
