// Package clip computes polygon differences on a fixed-point grid and
// returns them as a tree of outlines and holes.
//
// Coordinates are int64 values obtained by multiplying floating point
// coordinates by Scale and rounding, which is what Clipper works on. The
// price is that geometry is quantised to 1/Scale of a unit.
package clip

import "math"

// Scale is the fixed-point factor applied to floating point coordinates.
const Scale = 100

// IntPoint is a point on the fixed-point grid.
type IntPoint struct {
	X, Y int64
}

// FromFloat quantises a floating point coordinate pair.
func FromFloat(x, y float64) IntPoint {
	return IntPoint{X: int64(math.Round(x * Scale)), Y: int64(math.Round(y * Scale))}
}

// Float converts p back to floating point coordinates.
func (p IntPoint) Float() (x, y float64) {
	return float64(p.X) / Scale, float64(p.Y) / Scale
}

// Path is a closed ring of points; the edge from the last point to the
// first is implicit.
type Path []IntPoint

// Paths is a group of rings combined with the even-odd rule.
type Paths []Path

// Area returns the signed shoelace area of the ring.
func (p Path) Area() float64 {
	var sum float64
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		sum += float64(a.X)*float64(b.Y) - float64(b.X)*float64(a.Y)
	}
	return sum / 2
}

// PolyNode is one ring of a clip tree. Children of an outline are holes
// and children of a hole are outlines.
type PolyNode struct {
	// Contour is the ring. Outlines have positive Area, holes negative.
	Contour Path

	// IsHole is true for rings at odd nesting depth.
	IsHole bool

	// Children are the rings directly nested inside this one.
	Children []*PolyNode

	parent *PolyNode
}

// Parent returns the enclosing node, or nil for the tree root.
func (n *PolyNode) Parent() *PolyNode { return n.parent }

// PolyTree is the root of a clip tree. Its own Contour is empty and its
// children are the outermost outlines.
type PolyTree struct {
	PolyNode
}

// Total returns the number of rings in the tree.
func (t *PolyTree) Total() int {
	var count func(n *PolyNode) int
	count = func(n *PolyNode) int {
		c := len(n.Children)
		for _, ch := range n.Children {
			c += count(ch)
		}
		return c
	}
	return count(&t.PolyNode)
}
