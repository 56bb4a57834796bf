package color

import "math"

// linearToSRGBLUT maps 12-bit linear light to 8-bit sRGB.
// 4096 entries are enough precision for 8-bit output.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := range linearToSRGBLUT {
		linear := float64(i) / 4095.0
		var s float64
		if linear <= 0.0031308 {
			s = linear * 12.92
		} else {
			s = 1.055*math.Pow(linear, 1.0/2.4) - 0.055
		}
		//nolint:gosec // G115: clamped to [0,255]
		linearToSRGBLUT[i] = uint8(min(max(int(s*255.0+0.5), 0), 255))
	}
}

// LinearToSRGB8 converts a linear-light component to an 8-bit sRGB value
// using the lookup table. Input outside [0,1] is clamped.
func LinearToSRGB8(l float32) uint8 {
	if !(l > 0) {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return linearToSRGBLUT[int(l*4095.0+0.5)]
}

// LinearToSRGB8Color quantizes a linear-light color to 8-bit sRGB with
// straight 8-bit alpha.
func LinearToSRGB8Color(c ColorF32) (r, g, b, a uint8) {
	return LinearToSRGB8(c.R), LinearToSRGB8(c.G), LinearToSRGB8(c.B), unorm8(c.A)
}

func unorm8(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
