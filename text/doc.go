// Package text turns strings into positioned glyph outlines.
//
// A Face pairs a parsed TrueType/OpenType font with a pixel size. Layout
// shapes a line of text with HarfBuzz (kerning, ligatures, marks) after NFC
// normalisation, and Outline replays the outline of one glyph into a Sink
// as contour callbacks in pixel space with the Y axis pointing down.
//
// # Example usage
//
//	face, err := text.Default(32)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	glyphs, err := face.Layout("Hello")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, g := range glyphs {
//	    _ = face.Outline(g.ID, 10+g.X, 50+g.Y, sink)
//	}
//
// The polydraw package provides the Sink that turns outlines into shapes,
// so most callers use polydraw.Canvas.DrawString instead.
package text
