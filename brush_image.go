package polydraw

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ImageBrush paints with the pixels of an image, tiled across the plane
// and shifted by Offset.
type ImageBrush struct {
	src    image.Image
	offset image.Point
}

// NewImageBrush creates a brush sampling src. The image must not be empty.
func NewImageBrush(src image.Image, offset image.Point) (*ImageBrush, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, invalidArg("NewImageBrush", "src", "image must not be empty")
	}
	return &ImageBrush{src: src, offset: offset}, nil
}

func (*ImageBrush) paintMarker() {}

// CreateApplicator implements Brush. The source is converted once to
// straight-alpha NRGBA so that sampling is a plain slice lookup.
func (b *ImageBrush) CreateApplicator(Rect) (Applicator, error) {
	sb := b.src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, sb.Dx(), sb.Dy()))
	xdraw.Draw(dst, dst.Bounds(), b.src, sb.Min, xdraw.Src)
	return &imageApplicator{img: dst, offset: b.offset}, nil
}

type imageApplicator struct {
	img    *image.NRGBA
	offset image.Point
}

// ColorAt samples the nearest pixel, wrapping around the image edges.
func (a *imageApplicator) ColorAt(x, y float64) RGBA {
	w, h := a.img.Rect.Dx(), a.img.Rect.Dy()
	ix := mod(int(math.Floor(x))-a.offset.X, w)
	iy := mod(int(math.Floor(y))-a.offset.Y, h)
	i := a.img.PixOffset(ix, iy)
	p := a.img.Pix[i : i+4 : i+4]
	return RGB8(p[0], p[1], p[2], p[3])
}

func (a *imageApplicator) Close() error {
	a.img = nil
	return nil
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
