package color

// Premultiply scales a straight component by alpha with rounding.
func Premultiply(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}

// Unpremultiply recovers the straight component of a premultiplied value.
// Fully transparent pixels yield 0.
func Unpremultiply(c, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	if c >= a {
		return 255
	}
	return uint8((uint32(c)*255 + uint32(a)/2) / uint32(a))
}

// SRGBToLinearPremul converts a premultiplied RGBA buffer from sRGB to
// linearRGB in place.
func SRGBToLinearPremul(pix []uint8) {
	applyPremul(pix, &srgbToLinear8)
}

// LinearToSRGBPremul converts a premultiplied RGBA buffer from linearRGB to
// sRGB in place.
func LinearToSRGBPremul(pix []uint8) {
	applyPremul(pix, &linearToSRGB8)
}

func applyPremul(pix []uint8, lut *[256]uint8) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := pix[i+3]
		switch a {
		case 0:
			pix[i+0], pix[i+1], pix[i+2] = 0, 0, 0
		case 255:
			pix[i+0] = lut[pix[i+0]]
			pix[i+1] = lut[pix[i+1]]
			pix[i+2] = lut[pix[i+2]]
		default:
			pix[i+0] = Premultiply(lut[Unpremultiply(pix[i+0], a)], a)
			pix[i+1] = Premultiply(lut[Unpremultiply(pix[i+1], a)], a)
			pix[i+2] = Premultiply(lut[Unpremultiply(pix[i+2], a)], a)
		}
	}
}
