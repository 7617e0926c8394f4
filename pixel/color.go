package pixel

// Color holds channel values in the logical 0..255 range; values outside
// that range saturate when the color is packed into a pixel word.
type Color struct {
	R, G, B, A int32
}

// RGBA constructs a color from four channel values.
func RGBA(r, g, b, a int32) Color { return Color{r, g, b, a} }

// Gray constructs an opaque gray color from a single luma value.
func Gray(v int32) Color { return Color{v, v, v, 255} }

func saturate(v int32) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// Pack encodes the color into a 32-bit word using the given pack order,
// saturating each channel to [0, 255] first.
func (c Color) Pack(order PackOrder) uint32 {
	r, g, b, a := order.Offsets()
	var word [4]byte
	word[r] = saturate(c.R)
	word[g] = saturate(c.G)
	word[b] = saturate(c.B)
	word[a] = saturate(c.A)
	return uint32(word[0]) | uint32(word[1])<<8 | uint32(word[2])<<16 | uint32(word[3])<<24
}

// UnpackColor decodes a packed 32-bit pixel word under the given pack
// order back into a Color.
func UnpackColor(word uint32, order PackOrder) Color {
	r, g, b, a := order.Offsets()
	bytes := [4]byte{byte(word), byte(word >> 8), byte(word >> 16), byte(word >> 24)}
	return Color{int32(bytes[r]), int32(bytes[g]), int32(bytes[b]), int32(bytes[a])}
}

// NormalizedByteMultiply computes (a*b)/255 rounded to nearest using the
// integer identity (a*b*65793 + 8388608) >> 24. This is exact at the
// endpoints and must match bit-for-bit across implementations so
// composited images are reproducible (spec §4.2).
func NormalizedByteMultiply(a, b uint32) uint32 {
	return (a*b*65793 + 8388608) >> 24
}

// isUniformWord reports whether all four bytes of a packed word are equal,
// which qualifies a fill color for the byte-uniform fast path (floating
// point 0.0's bit pattern 0x00000000 also qualifies).
func isUniformWord(word uint32) bool {
	b0 := byte(word)
	return b0 == byte(word>>8) && b0 == byte(word>>16) && b0 == byte(word>>24)
}
