// Package scene loads drawings described in YAML and renders them with
// polydraw.
//
// A scene file names the canvas size, a background colour and a list of
// items drawn in order:
//
//	width: 400
//	height: 300
//	background: white
//	items:
//	  - kind: fill
//	    shape: {type: polygon, points: [[10, 10], [390, 40], [200, 280]]}
//	    brush: {kind: solid, color: HotPink}
//	  - kind: draw
//	    thickness: 4
//	    shape: {type: circle, center: [200, 150], radius: 60}
//	    brush:
//	      kind: linear
//	      start: [140, 0]
//	      end: [260, 0]
//	      stops:
//	        - {offset: 0, color: "#ff0000"}
//	        - {offset: 1, color: "#0000ff"}
//	  - kind: text
//	    text: Hello
//	    size: 32
//	    at: [20, 50]
//	    brush: {kind: solid, color: black}
//
// Colours are CSS names or #rgb, #rgba, #rrggbb and #rrggbbaa hex strings.
package scene

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/polydraw"
	"github.com/gogpu/polydraw/text"
)

// ErrInvalidScene is returned for scene files that decode but describe
// something that cannot be drawn.
var ErrInvalidScene = errors.New("scene: invalid scene")

// Item kinds.
const (
	KindFill = "fill"
	KindDraw = "draw"
	KindText = "text"
)

// Scene is a decoded scene file.
type Scene struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background,omitempty"`
	Items      []Item `yaml:"items"`
}

// Item is one draw call.
type Item struct {
	Kind      string     `yaml:"kind"`
	Shape     *ShapeSpec `yaml:"shape,omitempty"`
	Brush     *BrushSpec `yaml:"brush,omitempty"`
	Thickness float64    `yaml:"thickness,omitempty"`
	Region    []int      `yaml:"region,omitempty"`

	// Text items.
	Text string  `yaml:"text,omitempty"`
	Size float64 `yaml:"size,omitempty"`
	At   Coord   `yaml:"at,omitempty"`
	Font string  `yaml:"font,omitempty"`
}

// Coord is an [x, y] pair.
type Coord []float64

func (c Coord) point() (polydraw.Point, error) {
	if len(c) != 2 {
		return polydraw.Point{}, fmt.Errorf("%w: coordinate needs 2 values, got %d", ErrInvalidScene, len(c))
	}
	return polydraw.Pt(c[0], c[1]), nil
}

func points(cs []Coord) ([]polydraw.Point, error) {
	pts := make([]polydraw.Point, len(cs))
	for i, c := range cs {
		p, err := c.point()
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}
	return pts, nil
}

// Load decodes a scene from r. Unknown fields are rejected.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScene)
		}
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and decodes the scene file at path.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (s *Scene) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	for i, it := range s.Items {
		switch it.Kind {
		case KindFill, KindDraw:
			if it.Shape == nil {
				return fmt.Errorf("%w: item %d: %s needs a shape", ErrInvalidScene, i, it.Kind)
			}
		case KindText:
			if it.Size <= 0 {
				return fmt.Errorf("%w: item %d: text needs a positive size", ErrInvalidScene, i)
			}
		default:
			return fmt.Errorf("%w: item %d: unknown kind %q", ErrInvalidScene, i, it.Kind)
		}
		if it.Brush == nil {
			return fmt.Errorf("%w: item %d: missing brush", ErrInvalidScene, i)
		}
		if it.Region != nil && len(it.Region) != 4 {
			return fmt.Errorf("%w: item %d: region needs [x0, y0, x1, y1]", ErrInvalidScene, i)
		}
	}
	return nil
}

// Render draws the scene on a new canvas and returns its pixmap. The
// canvas options control workers and antialiasing. Rendering stops at the
// first item that fails.
func (s *Scene) Render(opts ...polydraw.CanvasOption) (*polydraw.Pixmap, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	c := polydraw.NewCanvas(s.Width, s.Height, opts...)
	defer c.Close()

	if s.Background != "" {
		bg, err := parseColor(s.Background)
		if err != nil {
			return nil, err
		}
		c.Pixmap().Clear(bg)
	}

	r := renderer{canvas: c, faces: make(map[faceKey]*text.Face)}
	for i := range s.Items {
		if err := r.item(&s.Items[i]); err != nil {
			return nil, fmt.Errorf("scene: item %d (%s): %w", i, s.Items[i].Kind, err)
		}
	}
	polydraw.Logger().Debug("scene: rendered",
		slog.Int("width", s.Width),
		slog.Int("height", s.Height),
		slog.Int("items", len(s.Items)),
	)
	return c.Pixmap(), nil
}
