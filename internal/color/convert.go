// Package color provides sRGB transfer functions used for interpolation.
package color

import "math"

// SRGBToLinear converts an sRGB-encoded channel in [0, 1] to linear light.
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear light channel in [0, 1] to sRGB encoding.
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// Lerp interpolates two straight-alpha RGBA quadruples. When linear is
// true the color channels are mixed in linear light and re-encoded;
// alpha is always mixed directly.
func Lerp(a, b [4]float64, t float64, linear bool) [4]float64 {
	var out [4]float64
	for i := range 3 {
		if linear {
			la, lb := SRGBToLinear(a[i]), SRGBToLinear(b[i])
			out[i] = LinearToSRGB(la + (lb-la)*t)
		} else {
			out[i] = a[i] + (b[i]-a[i])*t
		}
	}
	out[3] = a[3] + (b[3]-a[3])*t
	return out
}
