package blend

// div255 divides x by 255 with rounding to nearest.
//
// Formula: ((x + 128) + ((x + 128) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula. It is exact for x <= 65535, which
// covers every product of two bytes.
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// mul255 multiplies two bytes and scales back to 0-255 with rounding.
func mul255(a, b uint32) uint32 {
	return div255(a * b)
}

func clamp255(x int32) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
