package text

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/polydraw/internal/cache"
)

// GlyphID is a glyph index within a font.
type GlyphID uint16

// Metrics are the vertical metrics of a face, in pixels. All values are
// positive distances from the baseline.
type Metrics struct {
	Ascent    float64
	Descent   float64
	LineGap   float64
	XHeight   float64
	CapHeight float64
}

// LineHeight returns the distance between consecutive baselines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Face is a font at a fixed pixel size.
//
// Outlines come from golang.org/x/image/font/sfnt and shaping from
// go-text/typesetting, both reading the same font data. Face is safe for
// concurrent use: the parsed fonts are read-only, the mutable shaper and
// sfnt buffers are taken per call and loaded outlines sit in an LRU cache.
type Face struct {
	sf   *sfnt.Font
	gt   *font.Font
	size float64
	ppem fixed.Int26_6

	shapers  sync.Pool
	outlines *cache.Cache[GlyphID, sfnt.Segments]
}

// outlineCacheSize bounds the number of glyph outlines kept per face.
const outlineCacheSize = 512

// NewFace parses TrueType or OpenType data and returns a face of size
// pixels per em.
func NewFace(data []byte, size float64) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse outlines: %w", err)
	}
	gt, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse for shaping: %w", err)
	}

	return &Face{
		sf:   sf,
		gt:   gt.Font,
		size: size,
		ppem: fixed.Int26_6(math.Round(size * 64)),
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		outlines: cache.New[GlyphID, sfnt.Segments](outlineCacheSize),
	}, nil
}

// Default returns the Go Regular font at the given size.
func Default(size float64) (*Face, error) {
	return NewFace(goregular.TTF, size)
}

// Size returns the face size in pixels per em.
func (f *Face) Size() float64 { return f.size }

// Metrics returns the vertical metrics of the face.
func (f *Face) Metrics() (Metrics, error) {
	var buf sfnt.Buffer
	m, err := f.sf.Metrics(&buf, f.ppem, xfont.HintingNone)
	if err != nil {
		return Metrics{}, fmt.Errorf("text: metrics: %w", err)
	}
	asc, desc := fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
	return Metrics{
		Ascent:    asc,
		Descent:   desc,
		LineGap:   max(fixedToFloat(m.Height)-asc-desc, 0),
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}, nil
}

// GlyphIndex returns the glyph for r. A rune the font cannot show maps to
// glyph 0, the .notdef glyph.
func (f *Face) GlyphIndex(r rune) (GlyphID, error) {
	var buf sfnt.Buffer
	gid, err := f.sf.GlyphIndex(&buf, r)
	if err != nil {
		return 0, fmt.Errorf("text: glyph index %q: %w", r, err)
	}
	return GlyphID(gid), nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
