package scene

import (
	"fmt"
	"image"
	"os"

	"github.com/gogpu/polydraw"
	"github.com/gogpu/polydraw/text"
)

type faceKey struct {
	font string
	size float64
}

// renderer draws the items of one Render call. Faces are cached by font
// file and size.
type renderer struct {
	canvas *polydraw.Canvas
	faces  map[faceKey]*text.Face
}

func (r *renderer) item(it *Item) error {
	brush, err := it.Brush.build()
	if err != nil {
		return err
	}
	var opts []polydraw.DrawOption
	if it.Region != nil {
		opts = append(opts, polydraw.WithRegion(image.Rect(it.Region[0], it.Region[1], it.Region[2], it.Region[3])))
	}

	switch it.Kind {
	case KindFill:
		shape, err := it.Shape.build()
		if err != nil {
			return err
		}
		return r.canvas.Fill(brush, shape, opts...)
	case KindDraw:
		shape, err := it.Shape.build()
		if err != nil {
			return err
		}
		pen, err := polydraw.NewPen(brush, it.Thickness)
		if err != nil {
			return err
		}
		return r.canvas.Draw(pen, shape, opts...)
	default:
		face, err := r.face(it.Font, it.Size)
		if err != nil {
			return err
		}
		pos, err := it.At.point()
		if err != nil {
			return err
		}
		var paint polydraw.Paint = brush
		if it.Thickness > 0 {
			if paint, err = polydraw.NewPen(brush, it.Thickness); err != nil {
				return err
			}
		}
		return r.canvas.DrawString(it.Text, face, paint, pos, opts...)
	}
}

func (r *renderer) face(path string, size float64) (*text.Face, error) {
	key := faceKey{font: path, size: size}
	if f, ok := r.faces[key]; ok {
		return f, nil
	}

	var (
		f   *text.Face
		err error
	)
	if path == "" {
		f, err = text.Default(size)
	} else {
		var data []byte
		data, err = os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return nil, fmt.Errorf("font: %w", err)
		}
		f, err = text.NewFace(data, size)
	}
	if err != nil {
		return nil, err
	}
	r.faces[key] = f
	return f, nil
}
