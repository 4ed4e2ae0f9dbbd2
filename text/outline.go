package text

import (
	"fmt"
	"slices"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Sink receives the outline of a glyph as a sequence of contours.
//
// For every glyph Outline calls, in order: zero or more contours, each
// BeginContour, MoveTo, any number of LineTo, QuadraticCurveTo and
// CubicCurveTo, then CloseContour; and finally EndGlyph exactly once.
// Coordinates are in pixels with the Y axis pointing down.
type Sink interface {
	BeginContour()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticCurveTo(cx, cy, x, y float64)
	CubicCurveTo(c1x, c1y, c2x, c2y, x, y float64)
	CloseContour()
	EndGlyph()
}

// Outline replays glyph id into sink, with the glyph origin on the
// baseline at (x, y). Glyphs without an outline, like the space, produce
// only EndGlyph.
func (f *Face) Outline(id GlyphID, x, y float64, sink Sink) error {
	segs, err := f.outlines.GetOrCreate(id, func() (sfnt.Segments, error) {
		var buf sfnt.Buffer
		segs, err := f.sf.LoadGlyph(&buf, sfnt.GlyphIndex(id), f.ppem, nil)
		// The segments alias buf.
		return slices.Clone(segs), err
	})
	if err != nil {
		return fmt.Errorf("text: load glyph %d: %w", id, err)
	}

	at := func(p fixed.Point26_6) (float64, float64) {
		return x + fixedToFloat(p.X), y + fixedToFloat(p.Y)
	}

	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				sink.CloseContour()
			}
			sink.BeginContour()
			open = true
			sink.MoveTo(at(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			sink.LineTo(at(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := at(seg.Args[0])
			px, py := at(seg.Args[1])
			sink.QuadraticCurveTo(cx, cy, px, py)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := at(seg.Args[0])
			c2x, c2y := at(seg.Args[1])
			px, py := at(seg.Args[2])
			sink.CubicCurveTo(c1x, c1y, c2x, c2y, px, py)
		}
	}
	if open {
		sink.CloseContour()
	}
	sink.EndGlyph()
	return nil
}
