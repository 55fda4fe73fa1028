package blend

// Pixel blends one premultiplied top pixel a over backdrop b.
// The colour channels of the result never exceed its alpha.
func Pixel(mode Mode, a, b [4]uint8) [4]uint8 {
	qa, qb := uint32(a[3]), uint32(b[3])
	qr := qa + qb - mul255(qa, qb)

	var out [4]uint8
	for i := 0; i < 3; i++ {
		ca, cb := uint32(a[i]), uint32(b[i])
		var v int32
		switch mode {
		case Multiply:
			v = int32(div255((255-qa)*cb + (255-qb)*ca + ca*cb))
		case Screen:
			v = int32(ca+cb) - int32(mul255(ca, cb))
		case Darken:
			v = int32(min(ca+mul255(cb, 255-qa), cb+mul255(ca, 255-qb)))
		case Lighten:
			v = int32(max(ca+mul255(cb, 255-qa), cb+mul255(ca, 255-qb)))
		case Difference:
			v = int32(ca+cb) - 2*int32(min(mul255(ca, qb), mul255(cb, qa)))
		case Exclusion:
			v = int32(ca+cb) - 2*int32(mul255(ca, cb))
		default:
			v = int32(ca + mul255(cb, 255-qa))
		}
		out[i] = min(clamp255(v), uint8(qr))
	}
	out[3] = uint8(qr)
	return out
}
