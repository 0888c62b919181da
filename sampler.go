package warp

import "math"

// sampleBilinear fetches the 4 texels enclosing the resolved coordinate
// (u, v) and blends them with standard bilinear weights. Each corner
// coordinate is independently re-clamped to the buffer bounds; edge-mode
// normalization leaves fractional coordinates whose +1 neighbor can land
// one past the last row or column.
func sampleBilinear(src *Pixmap, u, v float64) (r, g, b, a uint8) {
	w := src.Width()
	h := src.Height()

	x0 := int(math.Floor(u))
	y0 := int(math.Floor(v))
	dx := u - float64(x0)
	dy := v - float64(y0)
	x1 := x0 + 1
	y1 := y0 + 1

	x0 = clampInt(x0, 0, w-1)
	y0 = clampInt(y0, 0, h-1)
	x1 = clampInt(x1, 0, w-1)
	y1 = clampInt(y1, 0, h-1)

	r00, g00, b00, a00 := src.RGBA8At(x0, y0)
	r10, g10, b10, a10 := src.RGBA8At(x1, y0)
	r01, g01, b01, a01 := src.RGBA8At(x0, y1)
	r11, g11, b11, a11 := src.RGBA8At(x1, y1)

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	r = roundChannel(float64(r00)*w00 + float64(r10)*w10 + float64(r01)*w01 + float64(r11)*w11)
	g = roundChannel(float64(g00)*w00 + float64(g10)*w10 + float64(g01)*w01 + float64(g11)*w11)
	b = roundChannel(float64(b00)*w00 + float64(b10)*w10 + float64(b01)*w01 + float64(b11)*w11)
	a = roundChannel(float64(a00)*w00 + float64(a10)*w10 + float64(a01)*w01 + float64(a11)*w11)
	return r, g, b, a
}

// sampleNearest fetches the texel closest to (u, v), clamped to bounds.
func sampleNearest(src *Pixmap, u, v float64) (r, g, b, a uint8) {
	x := clampInt(int(math.Floor(u+0.5)), 0, src.Width()-1)
	y := clampInt(int(math.Floor(v+0.5)), 0, src.Height()-1)
	return src.RGBA8At(x, y)
}

// roundChannel rounds a blended channel value into [0, 255].
func roundChannel(v float64) uint8 {
	return uint8(clamp255(v + 0.5))
}

// clampInt restricts v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
