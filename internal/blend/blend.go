// Package blend provides the compositing step of the rasteriser.
package blend

// Epsilon is the coverage at or below which a pixel is left untouched.
const Epsilon = 0.001

// LerpPremultiplied moves the straight-alpha RGBA8 pixel dst towards the
// opaque color (r, g, b) by amount in [0, 1].
//
// Both colors are premultiplied, interpolated and divided back by the
// interpolated alpha. The destination alpha byte is left as it was: the
// destination is treated as an opaque canvas, so compositing never changes
// its opacity.
func LerpPremultiplied(dst []uint8, r, g, b, amount float64) {
	dst = dst[:4:4]
	if amount <= 0 {
		return
	}
	amount = min(amount, 1)

	da := float64(dst[3]) / 255
	dr := float64(dst[0]) / 255 * da
	dg := float64(dst[1]) / 255 * da
	db := float64(dst[2]) / 255 * da

	oa := da + (1-da)*amount
	or := dr + (r-dr)*amount
	og := dg + (g-dg)*amount
	ob := db + (b-db)*amount

	if oa <= 0 {
		return
	}
	dst[0] = to8(or / oa)
	dst[1] = to8(og / oa)
	dst[2] = to8(ob / oa)
}

func to8(x float64) uint8 {
	x = x*255 + 0.5
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
