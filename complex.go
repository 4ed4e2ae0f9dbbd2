package polydraw

import (
	"math"
	"slices"

	"github.com/gogpu/polydraw/internal/clip"
)

// ComplexPolygon is a region made of outlines with holes subtracted.
//
// The subtraction is done once, at construction, by a polygon difference
// on a fixed-point grid (see internal/clip): the union of the outlines
// minus the union of the holes. The result never has area where an outline
// and a hole overlap, even when the inputs overlap imprecisely.
//
// Coordinates are quantised to 1/clip.Scale of a pixel by the difference.
// That loss is accepted; it is far below what the rasteriser can show.
type ComplexPolygon struct {
	outlines []*Polygon
	holes    []*Polygon
	bounds   Rect
}

// NewComplexPolygon subtracts holes from outlines. At least one outline is
// required, and open polylines cannot take part since they bound no area.
// Any closed Shape may be used, including another ComplexPolygon.
func NewComplexPolygon(outlines, holes []Shape) (*ComplexPolygon, error) {
	if len(outlines) == 0 {
		return nil, invalidArg("NewComplexPolygon", "outlines", "need at least 1 outline")
	}
	subject, err := fixedGroups("outlines", outlines)
	if err != nil {
		return nil, err
	}
	cut, err := fixedGroups("holes", holes)
	if err != nil {
		return nil, err
	}

	tree := clip.Difference(subject, cut)

	c := &ComplexPolygon{}
	c.collect(tree.Children)
	for i, o := range c.outlines {
		if i == 0 {
			c.bounds = o.Bounds()
			continue
		}
		c.bounds = c.bounds.Union(o.Bounds())
	}

	if len(c.outlines) == 0 {
		Logger().Warn("polydraw: complex polygon is empty after subtracting holes",
			"outlines", len(outlines), "holes", len(holes))
	} else {
		Logger().Debug("polydraw: complex polygon resolved",
			"outlines", len(c.outlines), "holes", len(c.holes))
	}
	return c, nil
}

func fixedGroups(arg string, shapes []Shape) ([]clip.Paths, error) {
	groups := make([]clip.Paths, 0, len(shapes))
	for _, s := range shapes {
		switch s.(type) {
		case nil:
			return nil, invalidArg("NewComplexPolygon", arg, "shape is nil")
		case *Polyline:
			return nil, invalidArg("NewComplexPolygon", arg, "open polyline bounds no area")
		}
		var g clip.Paths
		for _, ring := range s.Contours() {
			path := make(clip.Path, len(ring))
			for i, p := range ring {
				path[i] = clip.FromFloat(p.X, p.Y)
			}
			g = append(g, path)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// collect walks the clip tree. Holes may contain further outlines, so the
// walk recurses through every level.
func (c *ComplexPolygon) collect(nodes []*clip.PolyNode) {
	for _, n := range nodes {
		pts := make([]Point, len(n.Contour))
		for i, p := range n.Contour {
			pts[i].X, pts[i].Y = p.Float()
		}
		poly := &Polygon{path: newPathFromPoints(pts, true)}
		if n.IsHole {
			c.holes = append(c.holes, poly)
		} else {
			c.outlines = append(c.outlines, poly)
		}
		c.collect(n.Children)
	}
}

func (*ComplexPolygon) shapeMarker() {}

// Outlines returns the resolved outline polygons.
func (c *ComplexPolygon) Outlines() []*Polygon { return slices.Clone(c.outlines) }

// Holes returns the resolved hole polygons.
func (c *ComplexPolygon) Holes() []*Polygon { return slices.Clone(c.holes) }

// ResolvedPaths would enumerate the input paths as given, before
// differencing. They are not retained, so it always fails with
// ErrUnsupported.
func (c *ComplexPolygon) ResolvedPaths() ([]*Path, error) {
	return nil, unsupported("complex polygon does not keep its paths from before differencing")
}

// Bounds implements Shape. Only outlines contribute; holes never grow the
// bounds.
func (c *ComplexPolygon) Bounds() Rect { return c.bounds }

// SignedDistance implements Shape. The magnitude is the distance to the
// nearest resolved ring. A point is inside when it lies within an odd
// number of rings: inside an outline and in none of its holes gives a
// negative distance, inside a hole gives a positive one, and an outline
// nested in a hole counts as inside again. An empty polygon is infinitely
// far away.
func (c *ComplexPolygon) SignedDistance(x, y float64) float64 {
	inside := false
	d := math.Inf(1)
	for _, rings := range [][]*Polygon{c.outlines, c.holes} {
		for _, r := range rings {
			sd := r.SignedDistance(x, y)
			if sd < 0 {
				inside = !inside
			}
			d = math.Min(d, math.Abs(sd))
		}
	}
	if inside {
		return -d
	}
	return d
}

// Contours implements Shape. Outline and hole rings together describe the
// region under the even-odd rule.
func (c *ComplexPolygon) Contours() [][]Point {
	out := make([][]Point, 0, len(c.outlines)+len(c.holes))
	for _, rings := range [][]*Polygon{c.outlines, c.holes} {
		for _, r := range rings {
			out = append(out, slices.Clone(r.path.Points()))
		}
	}
	return out
}
