package polydraw

import "strconv"

// Paint is anything a shape or text can be rendered with: a Brush fills
// the covered area and a *Pen strokes its outline.
// This is a sealed interface.
type Paint interface {
	paintMarker()
}

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: a single color
//   - *LinearGradientBrush: colors interpolated along a line
//   - *ImageBrush: colors sampled from a tiled image
//
// A Brush carries no per-draw state. Each draw call acquires an
// Applicator from it and closes the Applicator when the call ends.
type Brush interface {
	Paint

	// CreateApplicator prepares a color source for one draw call.
	// region is the pixel area that will be sampled; applicators may
	// precompute state for it.
	CreateApplicator(region Rect) (Applicator, error)
}

// Applicator yields the color of a brush at a pixel position.
//
// ColorAt is a pure function of its arguments for the lifetime of the
// Applicator and is called concurrently from several goroutines. Colors
// are straight (non-premultiplied) alpha.
type Applicator interface {
	ColorAt(x, y float64) RGBA

	// Close releases anything held for the draw call.
	Close() error
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color RGBA
}

func (SolidBrush) paintMarker() {}

// CreateApplicator implements Brush.
func (b SolidBrush) CreateApplicator(Rect) (Applicator, error) {
	return solidApplicator(b.Color), nil
}

type solidApplicator RGBA

func (a solidApplicator) ColorAt(_, _ float64) RGBA { return RGBA(a) }

func (solidApplicator) Close() error { return nil }

// Solid creates a SolidBrush from an RGBA color.
//
// Example:
//
//	brush := polydraw.Solid(polydraw.HotPink)
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// SolidRGBA creates a SolidBrush from straight-alpha components in [0, 1].
func SolidRGBA(r, g, b, a float64) SolidBrush {
	return SolidBrush{Color: RGBA{R: r, G: g, B: b, A: a}}
}

// SolidHex creates a SolidBrush from a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#'.
func SolidHex(hex string) SolidBrush {
	return SolidBrush{Color: Hex(hex)}
}

// WithAlpha returns a new SolidBrush with the specified alpha value.
func (b SolidBrush) WithAlpha(alpha float64) SolidBrush {
	return SolidBrush{Color: b.Color.WithAlpha(alpha)}
}

// BrushKind names a family of brushes.
type BrushKind string

// Brush kinds. Only solid, linear and image brushes can be built.
const (
	BrushSolid  BrushKind = "solid"
	BrushLinear BrushKind = "linear"
	BrushImage  BrushKind = "image"
	BrushRadial BrushKind = "radial"
	BrushSweep  BrushKind = "sweep"
)

// ParseBrushKind maps a name to a buildable BrushKind. Radial, sweep and
// unknown kinds fail with ErrUnsupported.
func ParseBrushKind(name string) (BrushKind, error) {
	switch k := BrushKind(name); k {
	case BrushSolid, BrushLinear, BrushImage:
		return k, nil
	case BrushRadial, BrushSweep:
		return "", unsupported(name + " brushes")
	default:
		return "", unsupported("brush kind " + strconv.Quote(name))
	}
}
