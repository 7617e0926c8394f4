package pixel

import "math"

// ReadColor reads the pixel at (x, y) as a Color, without bounds checking.
// Monochrome formats replicate luma into R, G, B and report A=255.
func (im Image) ReadColor(x, y int) Color {
	p := im.PixelPointer(x, y)
	switch im.format {
	case FormatU8:
		v := int32(p.Uint8())
		return Color{v, v, v, 255}
	case FormatU16:
		v := int32(p.Uint16())
		if v > 255 {
			v = 255
		}
		return Color{v, v, v, 255}
	case FormatF32:
		v := clampF32ToByte(p.Float32())
		return Color{int32(v), int32(v), int32(v), 255}
	case FormatRGBA8:
		return UnpackColor(p.Uint32(), im.packOrder)
	default:
		return Color{}
	}
}

// WriteColor writes c at (x, y), without bounds checking, saturating
// channels before packing.
func (im Image) WriteColor(x, y int, c Color) {
	p := im.PixelPointer(x, y)
	switch im.format {
	case FormatU8:
		p.SetUint8(saturate(c.R))
	case FormatU16:
		v := c.R
		if v < 0 {
			v = 0
		}
		if v > 65535 {
			v = 65535
		}
		p.SetUint16(uint16(v))
	case FormatF32:
		p.SetFloat32(float32(c.R))
	case FormatRGBA8:
		p.SetUint32(c.Pack(im.packOrder))
	}
}

// ReadBorder returns the pixel at (x, y), or def if the coordinate lies
// outside the image (spec §4.2 addressing modes).
func (im Image) ReadBorder(x, y int, def Color) Color {
	if x < 0 || y < 0 || x >= im.width || y >= im.height {
		return def
	}
	return im.ReadColor(x, y)
}

// ReadClamp clamps (x, y) into [0, w) x [0, h) before reading.
func (im Image) ReadClamp(x, y int) Color {
	x = clampInt(x, 0, im.width-1)
	y = clampInt(y, 0, im.height-1)
	return im.ReadColor(x, y)
}

// ReadTile applies Euclidean modulo to (x, y) before reading, so the image
// behaves as if tiled infinitely in both directions.
func (im Image) ReadTile(x, y int) Color {
	x = euclidMod(x, im.width)
	y = euclidMod(y, im.height)
	return im.ReadColor(x, y)
}

// WriteClip writes c at (x, y) iff the coordinate lies inside the image;
// out-of-bounds writes silently no-op.
func (im Image) WriteClip(x, y int, c Color) {
	if x < 0 || y < 0 || x >= im.width || y >= im.height {
		return
	}
	im.WriteColor(x, y, c)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func euclidMod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// clampF32ToByte implements the NaN-safe F32->U8 saturating round used by
// monochrome format conversion: values not satisfying x >= 0.5 become 0,
// values above 254.5 become 255, otherwise floor(x + 0.5).
func clampF32ToByte(v float32) byte {
	f := float64(v)
	if !(f >= 0.5) { // also catches NaN
		return 0
	}
	if f > 254.5 {
		return 255
	}
	return byte(math.Floor(f + 0.5))
}

// clampF32ToU16 clamps a float sample into the U16 range [0, 65535].
func clampF32ToU16(v float32) uint16 {
	f := float64(v)
	if !(f > 0) {
		return 0
	}
	if f > 65535 {
		return 65535
	}
	return uint16(f)
}

// readSample reads the pixel at (x, y) in the format's own native numeric
// range, unlike ReadColor which clamps U16/F32 samples into the logical
// 0..255 Color range before a caller ever sees them. RGBA8 has no single
// native sample, so it falls back to the red channel for parity with
// ReadColor's own monochrome handling; callers touching RGBA8 color data
// should use ReadColor/WriteColor instead.
func (im Image) readSample(x, y int) float64 {
	p := im.PixelPointer(x, y)
	switch im.format {
	case FormatU8:
		return float64(p.Uint8())
	case FormatU16:
		return float64(p.Uint16())
	case FormatF32:
		return float64(p.Float32())
	default:
		return float64(im.ReadColor(x, y).R)
	}
}

// writeSample writes v, given in the format's own native numeric range,
// saturating it the way WriteColor saturates a Color channel.
func (im Image) writeSample(x, y int, v float64) {
	p := im.PixelPointer(x, y)
	switch im.format {
	case FormatU8:
		p.SetUint8(clampF32ToByte(float32(v)))
	case FormatU16:
		p.SetUint16(clampF32ToU16(float32(v)))
	case FormatF32:
		p.SetFloat32(float32(v))
	default:
		im.WriteColor(x, y, Color{int32(v), int32(v), int32(v), 255})
	}
}

// copySample copies one pixel from src to dst at differing or matching
// coordinates, preserving the source format's full native range for
// monochrome-to-monochrome copies. RGBA8 on either end still goes through
// ReadColor/WriteColor, since a single numeric sample can't carry packed
// color channels.
func copySample(dst Image, dx, dy int, src Image, sx, sy int) {
	if dst.format == FormatRGBA8 || src.format == FormatRGBA8 {
		dst.WriteColor(dx, dy, src.ReadColor(sx, sy))
		return
	}
	dst.writeSample(dx, dy, src.readSample(sx, sy))
}
