package blend

import "testing"

func TestLerpPremultiplied(t *testing.T) {
	tests := []struct {
		name    string
		dst     [4]uint8
		r, g, b float64
		amount  float64
		want    [4]uint8
	}{
		{"full cover", [4]uint8{0, 0, 0, 255}, 1, 0, 0, 1, [4]uint8{255, 0, 0, 255}},
		{"no cover", [4]uint8{10, 20, 30, 255}, 1, 1, 1, 0, [4]uint8{10, 20, 30, 255}},
		{"half cover", [4]uint8{0, 0, 0, 255}, 1, 1, 1, 0.5, [4]uint8{128, 128, 128, 255}},
		{"amount clamped", [4]uint8{0, 0, 0, 255}, 0, 1, 0, 3, [4]uint8{0, 255, 0, 255}},
		{"alpha preserved", [4]uint8{0, 0, 255, 128}, 1, 0, 0, 1, [4]uint8{255, 0, 0, 128}},
		{"transparent dst keeps alpha", [4]uint8{0, 0, 0, 0}, 0, 0, 1, 0.5, [4]uint8{0, 0, 255, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px := tt.dst
			LerpPremultiplied(px[:], tt.r, tt.g, tt.b, tt.amount)
			if px != tt.want {
				t.Errorf("got %v, want %v", px, tt.want)
			}
		})
	}
}

func TestLerpPremultipliedSameColorIsIdempotent(t *testing.T) {
	for v := 0; v < 256; v++ {
		for _, a := range []uint8{255, 128, 1} {
			px := [4]uint8{uint8(v), uint8(255 - v), uint8(v / 2), a}
			orig := px
			LerpPremultiplied(px[:], float64(px[0])/255, float64(px[1])/255, float64(px[2])/255, 1)
			if px != orig {
				t.Fatalf("blending a pixel with its own color changed it: %v -> %v", orig, px)
			}
		}
	}
}
