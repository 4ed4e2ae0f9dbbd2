package color

import (
	"math"
	"testing"
)

func TestSRGBRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		s := float64(i) / 255
		got := LinearToSRGB(SRGBToLinear(s))
		if math.Abs(got-s) > 1e-9 {
			t.Errorf("round trip of %v = %v", s, got)
		}
	}
}

func TestSRGBToLinearKnownValues(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{1, 1},
		{0.5, 0.21404114048223255},
		{0.04045, 0.04045 / 12.92},
	}
	for _, tt := range tests {
		if got := SRGBToLinear(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	black := [4]float64{0, 0, 0, 1}
	white := [4]float64{1, 1, 1, 0}

	mid := Lerp(black, white, 0.5, false)
	if mid != [4]float64{0.5, 0.5, 0.5, 0.5} {
		t.Errorf("sRGB Lerp midpoint = %v", mid)
	}

	lin := Lerp(black, white, 0.5, true)
	if lin[0] <= 0.5 {
		t.Errorf("linear Lerp midpoint should be brighter than 0.5 in sRGB, got %v", lin[0])
	}
	if lin[3] != 0.5 {
		t.Errorf("alpha should be mixed directly, got %v", lin[3])
	}

	if got := Lerp(black, white, 0, true); got != black {
		t.Errorf("Lerp at t=0 = %v, want %v", got, black)
	}
}
