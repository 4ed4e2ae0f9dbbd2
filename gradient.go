package polydraw

import (
	"math"
	"slices"
	"sort"

	"github.com/gogpu/polydraw/internal/color"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// LinearGradientBrush represents a linear color transition between two
// points.
//
// Example:
//
//	g, err := polydraw.NewLinearGradientBrush(polydraw.Pt(0, 0), polydraw.Pt(100, 0),
//	    polydraw.ColorStop{Offset: 0, Color: polydraw.Red},
//	    polydraw.ColorStop{Offset: 1, Color: polydraw.Blue})
type LinearGradientBrush struct {
	start, end Point
	stops      []ColorStop
	extend     ExtendMode
	linear     bool
}

// NewLinearGradientBrush creates a gradient from start to end. At least one
// stop is required and every offset must lie in [0, 1].
func NewLinearGradientBrush(start, end Point, stops ...ColorStop) (*LinearGradientBrush, error) {
	if len(stops) == 0 {
		return nil, invalidArg("NewLinearGradientBrush", "stops", "need at least 1 color stop")
	}
	if !start.IsFinite() || !end.IsFinite() {
		return nil, invalidArg("NewLinearGradientBrush", "points", "coordinates must be finite")
	}
	for _, s := range stops {
		if !(s.Offset >= 0 && s.Offset <= 1) {
			return nil, invalidArg("NewLinearGradientBrush", "stops", "offset must be in [0, 1]")
		}
	}
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b ColorStop) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return 0
	})
	return &LinearGradientBrush{start: start, end: end, stops: sorted}, nil
}

// WithExtend returns a copy of the gradient using mode outside [0, 1].
func (g *LinearGradientBrush) WithExtend(mode ExtendMode) *LinearGradientBrush {
	c := *g
	c.extend = mode
	return &c
}

// WithLinearInterpolation returns a copy of the gradient that mixes colors
// in linear light instead of sRGB.
func (g *LinearGradientBrush) WithLinearInterpolation() *LinearGradientBrush {
	c := *g
	c.linear = true
	return &c
}

func (*LinearGradientBrush) paintMarker() {}

// CreateApplicator implements Brush. The projection vector is computed
// once per draw call.
func (g *LinearGradientBrush) CreateApplicator(Rect) (Applicator, error) {
	d := g.end.Sub(g.start)
	a := &gradientApplicator{g: g, dir: d}
	if l := d.LengthSquared(); l > 0 {
		a.invLenSq = 1 / l
	}
	return a, nil
}

type gradientApplicator struct {
	g        *LinearGradientBrush
	dir      Point
	invLenSq float64
}

func (a *gradientApplicator) ColorAt(x, y float64) RGBA {
	if a.invLenSq == 0 {
		return a.g.stops[0].Color
	}
	t := Pt(x, y).Sub(a.g.start).Dot(a.dir) * a.invLenSq
	return colorAtOffset(a.g.stops, applyExtendMode(t, a.g.extend), a.g.linear)
}

func (*gradientApplicator) Close() error { return nil }

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = math.Max(0, math.Min(1, t))
	}
	return t
}

// colorAtOffset interpolates sorted stops at t in [0, 1].
func colorAtOffset(stops []ColorStop, t float64, linear bool) RGBA {
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	u := (t - s1.Offset) / (s2.Offset - s1.Offset)
	c := color.Lerp(
		[4]float64{s1.Color.R, s1.Color.G, s1.Color.B, s1.Color.A},
		[4]float64{s2.Color.R, s2.Color.G, s2.Color.B, s2.Color.A},
		u, linear,
	)
	return RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}
