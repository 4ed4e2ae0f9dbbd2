package polydraw

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"sync"
)

// Pixmap is a rectangular buffer of straight-alpha RGBA pixels, 4 bytes
// per pixel.
//
// Draw calls take the buffer's lock for their whole duration. GetPixel,
// SetPixel and the image.Image methods do not lock and must not race with
// a draw.
type Pixmap struct {
	mu     sync.Mutex
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new transparent pixmap.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 { return p.data }

// Lock acquires exclusive access to the pixels. The returned accessor must
// be released; until then other Lock calls block.
func (p *Pixmap) Lock() *PixelAccessor {
	p.mu.Lock()
	return &PixelAccessor{pm: p}
}

// PixelAccessor is exclusive, bounds-checked access to a locked Pixmap.
// Distinct rows are disjoint memory, so different goroutines may write
// different rows at the same time without further locking.
type PixelAccessor struct {
	pm   *Pixmap
	once sync.Once
}

// Bounds returns the valid pixel rectangle.
func (a *PixelAccessor) Bounds() image.Rectangle {
	return image.Rect(0, 0, a.pm.width, a.pm.height)
}

// Row returns the bytes of row y. The slice capacity ends at the row end.
func (a *PixelAccessor) Row(y int) []uint8 {
	if y < 0 || y >= a.pm.height {
		panic(fmt.Sprintf("polydraw: row %d out of range [0, %d)", y, a.pm.height))
	}
	stride := a.pm.width * 4
	start := y * stride
	return a.pm.data[start : start+stride : start+stride]
}

// At returns the pixel at (x, y). Out of range reads return Transparent.
func (a *PixelAccessor) At(x, y int) RGBA { return a.pm.GetPixel(x, y) }

// Set writes the pixel at (x, y). Out of range writes are ignored.
func (a *PixelAccessor) Set(x, y int, c RGBA) { a.pm.SetPixel(x, y, c) }

// Release unlocks the pixmap. It is safe to call more than once.
func (a *PixelAccessor) Release() {
	a.once.Do(a.pm.mu.Unlock)
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = to8(c.R)
	p.data[i+1] = to8(c.G)
	p.data[i+2] = to8(c.B)
	p.data[i+3] = to8(c.A)
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGB8(p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3])
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	acc := p.Lock()
	defer acc.Release()

	r, g, b, a := to8(c.R), to8(c.G), to8(c.B), to8(c.A)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			n := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			i := (y*pm.width + x) * 4
			pm.data[i+0], pm.data[i+1], pm.data[i+2], pm.data[i+3] = n.R, n.G, n.B, n.A
		}
	}
	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return fmt.Errorf("polydraw: encode %s: %w", path, err)
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
