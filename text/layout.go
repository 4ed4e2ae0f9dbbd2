package text

import (
	"math"
	"strings"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// Glyph is one shaped glyph positioned relative to the line origin.
// X grows to the right and Y grows down, so the baseline is Y == 0.
type Glyph struct {
	ID      GlyphID
	X, Y    float64
	Advance float64

	// Cluster is the index of the first rune, in the normalised text, that
	// produced this glyph.
	Cluster int
}

// Layout shapes a single line of text.
//
// The text is NFC-normalised and control characters are removed before
// shaping. The whole line is shaped as one run whose direction is taken
// from the Unicode bidi algorithm: right-to-left only when every level run
// is right-to-left. Glyphs are returned in visual order, left to right.
func (f *Face) Layout(s string) ([]Glyph, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, norm.NFC.String(s))
	if s == "" {
		return nil, nil
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: paragraphDirection(s),
		Face:      font.NewFace(f.gt),
		Size:      fixed.Int26_6(math.Round(f.size * 64)),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := f.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	f.shapers.Put(hb)

	glyphs := make([]Glyph, len(out.Glyphs))
	var x float64
	for i, g := range out.Glyphs {
		adv := fixedToFloat(g.Advance)
		glyphs[i] = Glyph{
			ID:      GlyphID(g.GlyphID), //nolint:gosec // sfnt glyph indices are 16-bit
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: adv,
			Cluster: g.TextIndex(),
		}
		x += adv
	}
	return glyphs, nil
}

// Measure returns the advance width of s as laid out by Layout.
func (f *Face) Measure(s string) (float64, error) {
	glyphs, err := f.Layout(s)
	if err != nil {
		return 0, err
	}
	var w float64
	for _, g := range glyphs {
		w += g.Advance
	}
	return w, nil
}

func paragraphDirection(s string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return di.DirectionLTR
	}
	order, err := p.Order()
	if err != nil || order.NumRuns() == 0 {
		return di.DirectionLTR
	}
	for i := range order.NumRuns() {
		r := order.Run(i)
		if r.Direction() != bidi.RightToLeft {
			return di.DirectionLTR
		}
	}
	return di.DirectionRTL
}

// detectScript returns the script of the first non-space rune.
// Mixed-script text is shaped with that single script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
