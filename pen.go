package polydraw

import "math"

// Pen strokes the outline of a shape with a brush. The stroke is a band of
// half-width Thickness/2 on both sides of the boundary.
type Pen struct {
	brush     Brush
	thickness float64
}

// NewPen creates a pen. thickness must be finite and positive.
func NewPen(b Brush, thickness float64) (*Pen, error) {
	if b == nil {
		return nil, invalidArg("NewPen", "brush", "brush is nil")
	}
	if !(thickness > 0) || math.IsInf(thickness, 0) {
		return nil, invalidArg("NewPen", "thickness", "must be finite and > 0")
	}
	return &Pen{brush: b, thickness: thickness}, nil
}

func (*Pen) paintMarker() {}

// Brush returns the brush the pen paints with.
func (p *Pen) Brush() Brush { return p.brush }

// Thickness returns the stroke width.
func (p *Pen) Thickness() float64 { return p.thickness }

// HalfThickness returns the band half-width.
func (p *Pen) HalfThickness() float64 { return p.thickness / 2 }

// EffectiveDistance returns how far (x, y) lies outside the stroke band of
// s. Points within the band return 0; beyond it the result is the
// distance past the band edge, on either side of the boundary.
func (p *Pen) EffectiveDistance(s Shape, x, y float64) float64 {
	d := math.Abs(s.SignedDistance(x, y))
	half := p.HalfThickness()
	if d <= half {
		return 0
	}
	return d - half
}
