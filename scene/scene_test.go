package scene

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/polydraw"
)

func load(t *testing.T, doc string) *Scene {
	t.Helper()
	s, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return s
}

func render(t *testing.T, doc string, opts ...polydraw.CanvasOption) *polydraw.Pixmap {
	t.Helper()
	pm, err := load(t, doc).Render(opts...)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return pm
}

func at(pm *polydraw.Pixmap, x, y int) color.NRGBA {
	return pm.At(x, y).(color.NRGBA)
}

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

func TestLoad(t *testing.T) {
	s := load(t, `
width: 200
height: 100
background: white
items:
  - kind: fill
    shape: {type: rect, x: 10, y: 10, width: 40, height: 40}
    brush: {kind: solid, color: HotPink}
  - kind: draw
    thickness: 2
    shape: {type: circle, center: [100, 50], radius: 20}
    brush: {kind: solid, color: "#000"}
`)
	if s.Width != 200 || s.Height != 100 || s.Background != "white" {
		t.Errorf("header = %dx%d %q", s.Width, s.Height, s.Background)
	}
	if len(s.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(s.Items))
	}
	if it := s.Items[1]; it.Kind != KindDraw || it.Thickness != 2 || it.Shape.Radius != 20 {
		t.Errorf("item 1 = %+v", it)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"empty", "", true},
		{"unknown field", "width: 10\nheight: 10\ncolour: red\n", false},
		{"no size", "items: []\n", true},
		{"negative size", "width: -1\nheight: 10\n", true},
		{"unknown kind", "width: 10\nheight: 10\nitems:\n  - kind: blur\n    brush: {kind: solid, color: red}\n", true},
		{"fill without shape", "width: 10\nheight: 10\nitems:\n  - kind: fill\n    brush: {kind: solid, color: red}\n", true},
		{"missing brush", "width: 10\nheight: 10\nitems:\n  - kind: fill\n    shape: {type: rect, width: 1, height: 1}\n", true},
		{"text without size", "width: 10\nheight: 10\nitems:\n  - kind: text\n    text: a\n    brush: {kind: solid, color: red}\n", true},
		{"short region", "width: 10\nheight: 10\nitems:\n  - kind: fill\n    region: [0, 0, 5]\n    shape: {type: rect, width: 1, height: 1}\n    brush: {kind: solid, color: red}\n", true},
		{"not yaml", "width: [\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("Load() succeeded")
			}
			if got := errors.Is(err, ErrInvalidScene); got != tt.invalid {
				t.Errorf("errors.Is(%v, ErrInvalidScene) = %v, want %v", err, got, tt.invalid)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("width: 4\nheight: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 4 || s.Height != 3 {
		t.Errorf("LoadFile() = %dx%d", s.Width, s.Height)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile(missing) succeeded")
	}
}

func TestRenderShapes(t *testing.T) {
	pm := render(t, `
width: 200
height: 120
background: white
items:
  - kind: fill
    shape: {type: polygon, points: [[10, 10], [60, 10], [35, 50]]}
    brush: {kind: solid, color: HotPink}
  - kind: fill
    shape:
      type: complex
      outlines: [{type: rect, x: 80, y: 10, width: 40, height: 40}]
      holes: [{type: circle, center: [100, 30], radius: 10}]
    brush: {kind: solid, color: black}
  - kind: fill
    shape: {type: ellipse, center: [160, 30], width: 40, height: 20}
    brush: {kind: solid, color: "#0000ff"}
  - kind: fill
    shape: {type: regular, center: [30, 90], radius: 20, sides: 6}
    brush: {kind: solid, color: red}
  - kind: draw
    thickness: 4
    shape: {type: lines, points: [[80, 90], [190, 90]]}
    brush: {kind: solid, color: black}
  - kind: fill
    shape: {type: lines, points: [[80, 100], [190, 100], [190, 110]]}
    brush: {kind: solid, color: black}
`)
	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"triangle", 35, 20, color.NRGBA{R: 255, G: 105, B: 180, A: 255}},
		{"complex outline", 85, 15, black},
		{"complex hole", 100, 30, white},
		{"ellipse", 160, 30, color.NRGBA{B: 255, A: 255}},
		{"ellipse outside", 160, 45, white},
		{"regular", 30, 90, color.NRGBA{R: 255, A: 255}},
		{"lines", 120, 90, black},
		{"filled lines", 185, 105, white},
		{"background", 5, 115, white},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := at(pm, tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRenderBezierPolygon(t *testing.T) {
	pm := render(t, `
width: 40
height: 40
background: white
items:
  - kind: fill
    shape:
      type: polygon
      bezier: true
      points: [[5, 30], [5, 0], [35, 0], [35, 30]]
    brush: {kind: solid, color: black}
`)
	if got := at(pm, 20, 20); got != black {
		t.Errorf("inside curve = %v", got)
	}
	if got := at(pm, 20, 35); got != white {
		t.Errorf("below chord = %v", got)
	}
}

func TestRenderLinearGradient(t *testing.T) {
	pm := render(t, `
width: 100
height: 10
background: white
items:
  - kind: fill
    shape: {type: rect, x: 0, y: 0, width: 100, height: 10}
    brush:
      kind: linear
      start: [0, 0]
      end: [100, 0]
      linear: true
      stops:
        - {offset: 0, color: black}
        - {offset: 1, color: white}
`)
	prev := -1
	for x := 0; x < 100; x += 10 {
		r := int(at(pm, x, 5).R)
		if r < prev {
			t.Fatalf("gradient decreases at x=%d: %d < %d", x, r, prev)
		}
		prev = r
	}
	if l, r := at(pm, 0, 5).R, at(pm, 99, 5).R; !(l < 20 && r > 235) {
		t.Errorf("gradient ends = %d .. %d", l, r)
	}
}

func TestRenderRegion(t *testing.T) {
	pm := render(t, `
width: 20
height: 20
background: white
items:
  - kind: fill
    region: [0, 0, 10, 20]
    shape: {type: rect, x: 0, y: 0, width: 20, height: 20}
    brush: {kind: solid, color: black, alpha: 1}
`)
	if got := at(pm, 5, 10); got != black {
		t.Errorf("inside region = %v", got)
	}
	if got := at(pm, 15, 10); got != white {
		t.Errorf("outside region = %v", got)
	}
}

func TestRenderImageBrush(t *testing.T) {
	tile := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range tile.Pix {
		tile.Pix[i] = 255
	}
	tile.SetNRGBA(0, 0, color.NRGBA{G: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, tile); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "tile.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}

	pm := render(t, `
width: 8
height: 8
background: white
items:
  - kind: fill
    shape: {type: rect, x: 0, y: 0, width: 8, height: 8}
    brush: {kind: image, src: `+path+`}
`)
	if got := at(pm, 2, 4); got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("tiled pixel = %v", got)
	}
	if got := at(pm, 3, 4); got != white {
		t.Errorf("tiled pixel = %v", got)
	}
}

func TestRenderText(t *testing.T) {
	for _, extra := range []string{"", "    thickness: 1\n"} {
		pm := render(t, `
width: 120
height: 50
background: white
items:
  - kind: text
    text: Hello
    size: 24
    at: [5, 35]
    brush: {kind: solid, color: black}
`+extra)
		dark := 0
		for y := range 50 {
			for x := range 120 {
				if at(pm, x, y).R < 128 {
					dark++
				}
			}
		}
		if dark < 20 {
			t.Errorf("thickness %q: %d dark pixels", extra, dark)
		}
	}
}

func TestRenderWorkersAgree(t *testing.T) {
	const doc = `
width: 90
height: 70
background: "#fafafa"
items:
  - kind: fill
    shape: {type: ellipse, center: [45, 35], width: 80, height: 50}
    brush:
      kind: linear
      start: [0, 0]
      end: [90, 70]
      extend: reflect
      stops: [{offset: 0, color: red}, {offset: 0.5, color: "#00ff0080"}, {offset: 1, color: blue}]
  - kind: draw
    thickness: 3.5
    shape: {type: regular, center: [45, 35], radius: 25, sides: 5, angle: 90}
    brush: {kind: solid, color: black}
  - kind: text
    text: Wq
    size: 20
    at: [30, 40]
    brush: {kind: solid, color: navy}
`
	single := render(t, doc, polydraw.WithParallelism(1))
	multi := render(t, doc, polydraw.WithParallelism(6), polydraw.WithRowsPerTask(2))
	if !bytes.Equal(single.Data(), multi.Data()) {
		t.Error("renders differ between 1 and 6 workers")
	}
}

func TestRenderErrors(t *testing.T) {
	const head = "width: 10\nheight: 10\nitems:\n"
	tests := []struct {
		name string
		item string
		want error
	}{
		{"radial brush", "  - kind: fill\n    shape: {type: rect, width: 5, height: 5}\n    brush: {kind: radial}\n", polydraw.ErrUnsupported},
		{"sweep brush", "  - kind: fill\n    shape: {type: rect, width: 5, height: 5}\n    brush: {kind: sweep}\n", polydraw.ErrUnsupported},
		{"bad color", "  - kind: fill\n    shape: {type: rect, width: 5, height: 5}\n    brush: {kind: solid, color: \"#zz0\"}\n", ErrInvalidScene},
		{"unknown shape", "  - kind: fill\n    shape: {type: star}\n    brush: {kind: solid, color: red}\n", ErrInvalidScene},
		{"short coord", "  - kind: fill\n    shape: {type: circle, center: [1], radius: 2}\n    brush: {kind: solid, color: red}\n", ErrInvalidScene},
		{"zero thickness", "  - kind: draw\n    shape: {type: rect, width: 5, height: 5}\n    brush: {kind: solid, color: red}\n", polydraw.ErrInvalidArgument},
		{"empty rect", "  - kind: fill\n    shape: {type: rect, width: 0, height: 5}\n    brush: {kind: solid, color: red}\n", polydraw.ErrInvalidArgument},
		{"bad stop", "  - kind: fill\n    shape: {type: rect, width: 5, height: 5}\n    brush: {kind: linear, start: [0, 0], end: [1, 0], stops: [{offset: 2, color: red}]}\n", polydraw.ErrInvalidArgument},
		{"bad extend", "  - kind: fill\n    shape: {type: rect, width: 5, height: 5}\n    brush: {kind: linear, start: [0, 0], end: [1, 0], extend: mirror, stops: [{offset: 0, color: red}]}\n", ErrInvalidScene},
		{"image without src", "  - kind: fill\n    shape: {type: rect, width: 5, height: 5}\n    brush: {kind: image}\n", ErrInvalidScene},
		{"two sides", "  - kind: fill\n    shape: {type: regular, center: [5, 5], radius: 2, sides: 2}\n    brush: {kind: solid, color: red}\n", polydraw.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, head+tt.item).Render()
			if !errors.Is(err, tt.want) {
				t.Errorf("Render() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    polydraw.RGBA
		wantErr bool
	}{
		{in: "HotPink", want: polydraw.HotPink},
		{in: " red ", want: polydraw.Red},
		{in: "#ff69b4", want: polydraw.HotPink},
		{in: "#0008", want: polydraw.RGB8(0, 0, 0, 0x88)},
		{in: "transparent", want: polydraw.Transparent},
		{in: "ff69b4", wantErr: true},
		{in: "#12345", wantErr: true},
		{in: "#gg0000", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidScene) {
				t.Errorf("parseColor(%q) error = %v, want ErrInvalidScene", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("parseColor(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestRenderDemoFile(t *testing.T) {
	s, err := LoadFile(filepath.Join("testdata", "demo.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	pm, err := s.Render()
	if err != nil {
		t.Fatal(err)
	}
	if got := at(pm, 300, 150); got != (color.NRGBA{R: 255, G: 105, B: 180, A: 255}) {
		t.Errorf("triangle pixel = %v", got)
	}
	if got := at(pm, 600, 600); got != white {
		t.Errorf("hole pixel = %v", got)
	}
	if got := at(pm, 200, 500); got != black {
		t.Errorf("stroke pixel = %v", got)
	}
}
