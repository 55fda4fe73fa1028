package color

// Byte-to-byte transfer tables for straight (non-premultiplied) components.
var (
	srgbToLinear8 [256]uint8
	linearToSRGB8 [256]uint8
)

func init() {
	for i := 0; i < 256; i++ {
		v := float64(i) / 255
		srgbToLinear8[i] = Quantize(ToLinear(v))
		linearToSRGB8[i] = Quantize(ToSRGB(v))
	}
}

// LinearFromSRGB converts a straight sRGB byte to linearRGB.
func LinearFromSRGB(s uint8) uint8 {
	return srgbToLinear8[s]
}

