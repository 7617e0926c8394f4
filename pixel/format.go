// Package pixel implements the software pixel engine: image storage, pixel
// primitives, drawing primitives and sampling/resize filters described in
// the core design. Every primitive is defined by the pixels it produces;
// nothing here delegates to a GPU API.
package pixel

// Format identifies one of the four monomorphic pixel formats the engine
// supports.
type Format int

const (
	FormatU8 Format = iota
	FormatU16
	FormatF32
	FormatRGBA8
)

// Size returns the number of bytes one pixel of the format occupies.
func (f Format) Size() int {
	switch f {
	case FormatU8:
		return 1
	case FormatU16:
		return 2
	case FormatF32:
		return 4
	case FormatRGBA8:
		return 4
	default:
		return 0
	}
}

func (f Format) String() string {
	switch f {
	case FormatU8:
		return "U8"
	case FormatU16:
		return "U16"
	case FormatF32:
		return "F32"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return "Unknown"
	}
}

// PackOrder names the byte ordering of the four channels inside an RGBA8
// pixel word. Monochrome formats always report PackOrderRGBA.
type PackOrder int

const (
	PackOrderRGBA PackOrder = iota
	PackOrderBGRA
	PackOrderARGB
	PackOrderABGR
)

// channelIndex[order] gives the byte offset of R, G, B, A within a packed
// 32-bit word for that pack order.
var channelIndex = [4][4]int{
	PackOrderRGBA: {0, 1, 2, 3},
	PackOrderBGRA: {2, 1, 0, 3},
	PackOrderARGB: {1, 2, 3, 0},
	PackOrderABGR: {3, 2, 1, 0},
}

// Offsets returns the byte offsets (r, g, b, a) of each channel within a
// packed pixel word of this order.
func (p PackOrder) Offsets() (r, g, b, a int) {
	idx := channelIndex[p]
	return idx[0], idx[1], idx[2], idx[3]
}
