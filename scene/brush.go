package scene

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/gogpu/polydraw"
)

// BrushSpec describes a brush.
//
// Solid brushes use Color. Linear gradients use Start, End, Stops and an
// optional Extend of pad, repeat or reflect; Linear interpolates in linear
// light. Image brushes tile the PNG at Src shifted by Offset.
type BrushSpec struct {
	Kind  string   `yaml:"kind"`
	Color string   `yaml:"color,omitempty"`
	Alpha *float64 `yaml:"alpha,omitempty"`

	Start  Coord      `yaml:"start,omitempty"`
	End    Coord      `yaml:"end,omitempty"`
	Stops  []StopSpec `yaml:"stops,omitempty"`
	Extend string     `yaml:"extend,omitempty"`
	Linear bool       `yaml:"linear,omitempty"`

	Src    string `yaml:"src,omitempty"`
	Offset []int  `yaml:"offset,omitempty"`
}

// StopSpec is one gradient colour stop.
type StopSpec struct {
	Offset float64 `yaml:"offset"`
	Color  string  `yaml:"color"`
}

func (b *BrushSpec) build() (polydraw.Brush, error) {
	kind, err := polydraw.ParseBrushKind(b.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case polydraw.BrushSolid:
		c, err := parseColor(b.Color)
		if err != nil {
			return nil, err
		}
		if b.Alpha != nil {
			c = c.WithAlpha(*b.Alpha)
		}
		return polydraw.Solid(c), nil
	case polydraw.BrushLinear:
		return b.linear()
	default:
		return b.image()
	}
}

func (b *BrushSpec) linear() (polydraw.Brush, error) {
	start, err := b.Start.point()
	if err != nil {
		return nil, fmt.Errorf("linear start: %w", err)
	}
	end, err := b.End.point()
	if err != nil {
		return nil, fmt.Errorf("linear end: %w", err)
	}
	stops := make([]polydraw.ColorStop, len(b.Stops))
	for i, s := range b.Stops {
		c, err := parseColor(s.Color)
		if err != nil {
			return nil, err
		}
		stops[i] = polydraw.ColorStop{Offset: s.Offset, Color: c}
	}
	g, err := polydraw.NewLinearGradientBrush(start, end, stops...)
	if err != nil {
		return nil, err
	}

	switch b.Extend {
	case "", "pad":
	case "repeat":
		g = g.WithExtend(polydraw.ExtendRepeat)
	case "reflect":
		g = g.WithExtend(polydraw.ExtendReflect)
	default:
		return nil, fmt.Errorf("%w: unknown extend mode %q", ErrInvalidScene, b.Extend)
	}
	if b.Linear {
		g = g.WithLinearInterpolation()
	}
	return g, nil
}

func (b *BrushSpec) image() (polydraw.Brush, error) {
	if b.Src == "" {
		return nil, fmt.Errorf("%w: image brush needs src", ErrInvalidScene)
	}
	var off image.Point
	switch len(b.Offset) {
	case 0:
	case 2:
		off = image.Pt(b.Offset[0], b.Offset[1])
	default:
		return nil, fmt.Errorf("%w: image offset needs 2 values", ErrInvalidScene)
	}

	f, err := os.Open(b.Src) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", b.Src, err)
	}
	return polydraw.NewImageBrush(img, off)
}

// parseColor accepts a CSS colour name, "transparent" or a hex string
// with a leading '#'.
func parseColor(s string) (polydraw.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return polydraw.Transparent, nil
	}
	if c, ok := polydraw.Named(s); ok {
		return c, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok && validHex(hex) {
		return polydraw.Hex(hex), nil
	}
	return polydraw.RGBA{}, fmt.Errorf("%w: bad color %q", ErrInvalidScene, s)
}

func validHex(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
