package polydraw

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/polydraw/text"
)

// GlyphBuilder collects glyph outlines from a text.Sink callback stream
// and turns each glyph into one ComplexPolygon.
//
// Contour roles come from nesting: a contour inside an even number of
// other contours is an outline, one inside an odd number is a hole of the
// contour directly around it. Contour winding is ignored, so fonts that
// draw holes with either orientation work the same.
//
// Curves are flattened as they arrive. Contours with fewer than three
// distinct points bound no area and are dropped.
type GlyphBuilder struct {
	glyphs []*ComplexPolygon

	contours [][]Point
	cur      []Point
	open     bool
	err      error
}

var _ text.Sink = (*GlyphBuilder)(nil)

// Glyphs returns the glyphs completed so far. Glyphs without area, like
// the space, are not included.
func (b *GlyphBuilder) Glyphs() []*ComplexPolygon { return slices.Clone(b.glyphs) }

// Err returns the first error met while building.
func (b *GlyphBuilder) Err() error { return b.err }

// BeginContour implements text.Sink. An open contour is closed first.
func (b *GlyphBuilder) BeginContour() {
	if b.open {
		Logger().Warn("polydraw: glyph contour left open, closing it")
		b.CloseContour()
	}
	b.cur = b.cur[:0]
	b.open = true
}

// MoveTo implements text.Sink. It starts a new contour when one is
// already under way.
func (b *GlyphBuilder) MoveTo(x, y float64) {
	if !b.open || len(b.cur) > 0 {
		b.BeginContour()
	}
	b.cur = append(b.cur, Pt(x, y))
}

// LineTo implements text.Sink.
func (b *GlyphBuilder) LineTo(x, y float64) {
	b.add(Pt(x, y))
}

// QuadraticCurveTo implements text.Sink.
func (b *GlyphBuilder) QuadraticCurveTo(cx, cy, x, y float64) {
	start, ok := b.last()
	if !ok {
		return
	}
	seg, err := NewQuadraticBezier(start, Pt(cx, cy), Pt(x, y))
	b.addSegment(seg, err)
}

// CubicCurveTo implements text.Sink.
func (b *GlyphBuilder) CubicCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	start, ok := b.last()
	if !ok {
		return
	}
	seg, err := NewCubicBezier(start, Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y))
	b.addSegment(seg, err)
}

// CloseContour implements text.Sink.
func (b *GlyphBuilder) CloseContour() {
	if !b.open {
		return
	}
	b.open = false
	pts := b.cur
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return
	}
	b.contours = append(b.contours, slices.Clone(pts))
}

// EndGlyph implements text.Sink. It resolves the collected contours into
// a ComplexPolygon.
func (b *GlyphBuilder) EndGlyph() {
	if b.open {
		Logger().Warn("polydraw: glyph contour left open, closing it")
		b.CloseContour()
	}
	contours := b.contours
	b.contours = nil
	if len(contours) == 0 || b.err != nil {
		return
	}

	g, err := nestContours(contours)
	if err != nil {
		b.fail(err)
		return
	}
	if len(g.Outlines()) == 0 {
		return
	}
	b.glyphs = append(b.glyphs, g)
}

func (b *GlyphBuilder) last() (Point, bool) {
	if !b.open || len(b.cur) == 0 {
		b.fail(errors.New("polydraw: glyph curve without a current point"))
		return Point{}, false
	}
	return b.cur[len(b.cur)-1], true
}

func (b *GlyphBuilder) add(p Point) {
	if !b.open || len(b.cur) == 0 {
		b.fail(errors.New("polydraw: glyph line without a current point"))
		return
	}
	if !p.IsFinite() {
		b.fail(invalidArg("GlyphBuilder", "point", "coordinates must be finite"))
		return
	}
	if b.cur[len(b.cur)-1] != p {
		b.cur = append(b.cur, p)
	}
}

func (b *GlyphBuilder) addSegment(seg *BezierSegment, err error) {
	if err != nil {
		b.fail(err)
		return
	}
	first := true
	for p := range seg.Simplify() {
		if first {
			first = false
			continue
		}
		b.add(p)
	}
}

func (b *GlyphBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// nestContours groups contours by containment depth. Every even-depth
// contour and its direct odd-depth children form one group; the groups
// are unioned.
func nestContours(contours [][]Point) (*ComplexPolygon, error) {
	rings := make([]*Polygon, len(contours))
	for i, c := range contours {
		rings[i] = &Polygon{path: newPathFromPoints(c, true)}
	}

	depth := make([]int, len(rings))
	parent := make([]int, len(rings))
	for i := range rings {
		parent[i] = -1
		probe := contours[i][0]
		for j := range rings {
			if i == j || !rings[j].path.Contains(probe) {
				continue
			}
			depth[i]++
			// The direct parent is the smallest container.
			if parent[i] < 0 || math.Abs(rings[j].path.SignedArea()) < math.Abs(rings[parent[i]].path.SignedArea()) {
				parent[i] = j
			}
		}
	}

	holes := make(map[int][]Shape)
	for i := range rings {
		if depth[i]%2 == 1 && parent[i] >= 0 {
			holes[parent[i]] = append(holes[parent[i]], rings[i])
		}
	}

	var groups []Shape
	for i := range rings {
		if depth[i]%2 == 1 {
			continue
		}
		if len(holes[i]) == 0 {
			groups = append(groups, rings[i])
			continue
		}
		g, err := NewComplexPolygon([]Shape{rings[i]}, holes[i])
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	if len(groups) == 0 {
		return nil, errors.New("polydraw: glyph has no outer contour")
	}
	return NewComplexPolygon(groups, nil)
}

// GlyphShapes lays out s with face and returns one shape per visible
// glyph, with the line's baseline origin at pos.
func GlyphShapes(s string, face *text.Face, pos Point) ([]*ComplexPolygon, error) {
	glyphs, err := face.Layout(s)
	if err != nil {
		return nil, err
	}
	var b GlyphBuilder
	for _, g := range glyphs {
		if err := face.Outline(g.ID, pos.X+g.X, pos.Y+g.Y, &b); err != nil {
			return nil, err
		}
		if b.err != nil {
			return nil, fmt.Errorf("glyph %d: %w", g.ID, b.err)
		}
	}
	Logger().Debug("polydraw: glyph shapes",
		"text", s, "glyphs", len(glyphs), "shapes", len(b.glyphs))
	return b.glyphs, nil
}
