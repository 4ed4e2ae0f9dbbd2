package clip

import (
	"cmp"
	"math"
	"slices"

	clipper "github.com/ctessum/go.clipper"
)

// Difference returns the region covered by at least one subject group and
// by no clip group, as a tree of outlines and holes. Each group is
// evaluated with the even-odd rule on its own, so a group may carry holes
// of its own.
//
// The boolean work is done by Clipper on the integer grid. Each group is
// first resolved into consistently oriented rings, so that the groups can
// then be combined with the non-zero rule: any group covering a point
// counts. Rings with fewer than three distinct points, zero-length edges
// and collinear overlaps are resolved by Clipper.
func Difference(subject, clip []Paths) *PolyTree {
	c := clipper.NewClipper(clipper.IoStrictlySimple)
	c.AddPaths(resolveGroups(subject), clipper.PtSubject, true)
	c.AddPaths(resolveGroups(clip), clipper.PtClip, true)
	sol, ok := c.Execute1(clipper.CtDifference, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		return &PolyTree{}
	}
	return buildTree(fromClipper(sol))
}

// resolveGroups runs an even-odd union over each group separately. Clipper
// orients every output outline one way and every hole the other, so the
// concatenated result has a winding number of zero exactly where no group
// covers the plane.
func resolveGroups(groups []Paths) clipper.Paths {
	var out clipper.Paths
	for _, g := range groups {
		c := clipper.NewClipper(0)
		c.AddPaths(toClipper(g), clipper.PtSubject, true)
		sol, ok := c.Execute1(clipper.CtUnion, clipper.PftEvenOdd, clipper.PftEvenOdd)
		if ok {
			out = append(out, sol...)
		}
	}
	return out
}

func toClipper(g Paths) clipper.Paths {
	out := make(clipper.Paths, 0, len(g))
	for _, ring := range g {
		p := make(clipper.Path, len(ring))
		for i, pt := range ring {
			p[i] = &clipper.IntPoint{X: clipper.CInt(pt.X), Y: clipper.CInt(pt.Y)}
		}
		out = append(out, p)
	}
	return out
}

func fromClipper(ps clipper.Paths) []Path {
	out := make([]Path, 0, len(ps))
	for _, p := range ps {
		if len(p) < 3 {
			continue
		}
		ring := make(Path, len(p))
		for i, pt := range p {
			ring[i] = IntPoint{X: int64(pt.X), Y: int64(pt.Y)}
		}
		out = append(out, ring)
	}
	return out
}

// buildTree nests rings by containment. Larger rings are placed first, so
// the most recently placed ring containing a probe point is the nearest
// enclosing one. Output rings are strictly simple, so the midpoint of any
// edge lies strictly inside or strictly outside every other ring.
func buildTree(rings []Path) *PolyTree {
	type placed struct {
		ring Path
		area float64
		node *PolyNode
	}
	items := make([]placed, len(rings))
	for i, r := range rings {
		items[i] = placed{ring: r, area: math.Abs(r.Area())}
	}
	slices.SortStableFunc(items, func(a, b placed) int { return cmp.Compare(b.area, a.area) })

	tree := &PolyTree{}
	for i := range items {
		r := items[i].ring
		px := (float64(r[0].X) + float64(r[1].X)) / 2
		py := (float64(r[0].Y) + float64(r[1].Y)) / 2

		parent := &tree.PolyNode
		for j := i - 1; j >= 0; j-- {
			if evenOdd(Paths{items[j].ring}, px, py) {
				parent = items[j].node
				break
			}
		}

		node := &PolyNode{Contour: r, parent: parent}
		node.IsHole = parent != &tree.PolyNode && !parent.IsHole
		if (r.Area() < 0) != node.IsHole {
			slices.Reverse(node.Contour)
		}
		parent.Children = append(parent.Children, node)
		items[i].node = node
	}
	return tree
}

// evenOdd casts a ray towards +X and counts edge crossings over all rings
// of the group.
func evenOdd(g Paths, x, y float64) bool {
	in := false
	for _, ring := range g {
		for i := range ring {
			a, b := ring[i], ring[(i+1)%len(ring)]
			ay, by := float64(a.Y), float64(b.Y)
			if (ay > y) == (by > y) {
				continue
			}
			ax, bx := float64(a.X), float64(b.X)
			if x < ax+(y-ay)*(bx-ax)/(by-ay) {
				in = !in
			}
		}
	}
	return in
}
