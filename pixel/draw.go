package pixel

import (
	"math"

	"github.com/dfpsr-go/softcanvas/internal/workpool"
)

// CopyInto blits src into dst at (dstX, dstY), converting between pixel
// formats as needed. The copied region is clipped to both images' bounds.
// RGBA8 -> RGBA8 copies go through the packed word directly (honoring each
// image's own pack order) rather than unpacking to a Color, which keeps a
// same-order copy a straight byte copy.
func CopyInto(dst, src Image, dstX, dstY int) {
	if !dst.IsValid() || !src.IsValid() {
		return
	}
	region := NewRect(dstX, dstY, src.width, src.height).Intersect(dst.Bounds())
	if region.Empty() {
		return
	}
	srcX0 := region.Left - dstX
	srcY0 := region.Top - dstY
	w := region.Width()
	h := region.Height()

	if dst.format == FormatRGBA8 && src.format == FormatRGBA8 {
		for row := 0; row < h; row++ {
			srcP := src.PixelPointer(srcX0, srcY0+row)
			dstP := dst.PixelPointer(region.Left, region.Top+row)
			if dst.packOrder == src.packOrder {
				copy(dstP.Bytes(w*4), srcP.Bytes(w*4))
				continue
			}
			for col := 0; col < w; col++ {
				c := UnpackColor(srcP.Advance(col).Uint32(), src.packOrder)
				dstP.Advance(col).SetUint32(c.Pack(dst.packOrder))
			}
		}
		return
	}

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			sx, sy := srcX0+col, srcY0+row
			dx, dy := region.Left+col, region.Top+row
			switch {
			case dst.format == src.format:
				copyRawPixel(dst, dx, dy, src, sx, sy)
			default:
				copySample(dst, dx, dy, src, sx, sy)
			}
		}
	}
}

func copyRawPixel(dst Image, dx, dy int, src Image, sx, sy int) {
	n := src.PixelSize()
	copy(dst.PixelPointer(dx, dy).Bytes(n), src.PixelPointer(sx, sy).Bytes(n))
}

// FillRect fills r (clipped to the image bounds) with a solid color. This
// follows the three-tier fast path from the reference rasterizer: a single
// memset spanning the whole allocation (including padding) when the fill
// covers every row exactly and the image owns the whole buffer, a single
// memset per full-width span when rows are contiguous, or a per-row memset
// otherwise; all three require the packed fill word to be byte-uniform
// (e.g. black, white, or transparent-black) to use memset at all, since a
// non-uniform word cannot be expressed as a repeated byte.
func FillRect(im Image, r Rect, c Color) {
	if !im.IsValid() {
		return
	}
	r = r.Intersect(im.Bounds())
	if r.Empty() {
		return
	}
	pixelSize := im.PixelSize()
	rowBytes := r.Width() * pixelSize

	if im.format == FormatRGBA8 {
		word := c.Pack(im.packOrder)
		if isUniformWord(word) {
			fillUniform(im, r, byte(word), rowBytes)
			return
		}
		for y := r.Top; y < r.Bottom; y++ {
			p := im.PixelPointer(r.Left, y)
			for x := 0; x < r.Width(); x++ {
				p.Advance(x).SetUint32(word)
			}
		}
		return
	}

	// Monochrome formats: uniform fill is always expressible since there is
	// exactly one channel.
	switch im.format {
	case FormatU8:
		fillUniform(im, r, saturate(c.R), rowBytes)
	case FormatU16:
		v := c.R
		if v < 0 {
			v = 0
		}
		if v > 65535 && v != 65535 {
			v = 65535
		}
		if lo, hi := byte(v), byte(v>>8); lo == hi {
			fillUniform(im, r, lo, rowBytes)
		} else {
			for y := r.Top; y < r.Bottom; y++ {
				p := im.PixelPointer(r.Left, y)
				for x := 0; x < r.Width(); x++ {
					p.Advance(x).SetUint16(uint16(v))
				}
			}
		}
	case FormatF32:
		fv := float32(c.R)
		if fv == 0 {
			fillUniform(im, r, 0, rowBytes)
		} else {
			for y := r.Top; y < r.Bottom; y++ {
				p := im.PixelPointer(r.Left, y)
				for x := 0; x < r.Width(); x++ {
					p.Advance(x).SetFloat32(fv)
				}
			}
		}
	}
}

// fillUniform memsets a byte-uniform fill, taking the fastest of three
// paths depending on how much of the backing allocation the rectangle
// covers.
func fillUniform(im Image, r Rect, b byte, rowBytes int) {
	fullWidth := r.Left == 0 && r.Right == im.width
	rowCount := r.Height()
	if !im.isSubImage && fullWidth && r.Top == 0 && r.Bottom == im.height {
		span := im.stride*(rowCount-1) + rowBytes
		memset(im.RowPointer(r.Top).Bytes(span), b)
		return
	}
	if fullWidth && rowBytes == im.stride {
		span := rowBytes * rowCount
		memset(im.RowPointer(r.Top).Bytes(span), b)
		return
	}
	for y := r.Top; y < r.Bottom; y++ {
		memset(im.PixelPointer(r.Left, y).Bytes(rowBytes), b)
	}
}

func memset(buf []byte, b byte) {
	if len(buf) == 0 {
		return
	}
	buf[0] = b
	for filled := 1; filled < len(buf); filled *= 2 {
		copy(buf[filled:], buf[:filled])
	}
}

// DrawLine rasterizes a Bresenham line from (x0,y0) to (x1,y1), clipped to
// the image bounds. A line is culled entirely only when both endpoints lie
// outside the image on the SAME side of the same edge (e.g. both above the
// top edge) -- testing each endpoint's out-of-bounds status independently
// would wrongly cull lines that cross the image diagonally from one
// off-screen corner to another.
func DrawLine(im Image, x0, y0, x1, y1 int, c Color) {
	if !im.IsValid() {
		return
	}
	if lineFullyCulled(im.Bounds(), x0, y0, x1, y1) {
		return
	}
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := sign(x1 - x0)
	sy := sign(y1 - y0)
	err := dx + dy
	x, y := x0, y0
	for {
		im.WriteClip(x, y, c)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func lineFullyCulled(b Rect, x0, y0, x1, y1 int) bool {
	return (x0 < b.Left && x1 < b.Left) ||
		(x0 >= b.Right && x1 >= b.Right) ||
		(y0 < b.Top && y1 < b.Top) ||
		(y0 >= b.Bottom && y1 >= b.Bottom)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// AlphaFilter composites src over dst at (dstX, dstY) using src's alpha
// channel, per-channel, via NormalizedByteMultiply; the destination alpha
// becomes nbm(dstA, 255-srcA) + srcA. dst must be RGBA8; src is read
// through ReadColor, so a U8 source reads as opaque gray and is copied
// rather than blended.
func AlphaFilter(dst Image, src Image, dstX, dstY int) {
	if !dst.IsValid() || !src.IsValid() || dst.format != FormatRGBA8 {
		return
	}
	region := NewRect(dstX, dstY, src.width, src.height).Intersect(dst.Bounds())
	if region.Empty() {
		return
	}
	srcX0, srcY0 := region.Left-dstX, region.Top-dstY
	workpool.ByIndex(region.Height(), func(row int) {
		for col := 0; col < region.Width(); col++ {
			sc := src.ReadColor(srcX0+col, srcY0+row)
			if sc.A <= 0 {
				continue
			}
			dx, dy := region.Left+col, region.Top+row
			if sc.A >= 255 {
				dst.WriteColor(dx, dy, sc)
				continue
			}
			dc := dst.ReadColor(dx, dy)
			a := uint32(sc.A)
			inv := 255 - a
			blend := func(s, d int32) int32 {
				return int32(NormalizedByteMultiply(a, uint32(s)) + NormalizedByteMultiply(inv, uint32(d)))
			}
			dst.WriteColor(dx, dy, Color{blend(sc.R, dc.R), blend(sc.G, dc.G), blend(sc.B, dc.B), int32(NormalizedByteMultiply(inv, uint32(dc.A)) + a)})
		}
	})
}

// MaxAlphaFilter overwrites dst with src's color wherever src's alpha plus
// offset exceeds dst's current alpha, saturating the written alpha to
// [0, 255]. Unlike AlphaFilter this never blends: the winning pixel's
// color is copied outright, so repeated compositing onto a transparent
// canvas accumulates whichever layer's (alpha+offset) reaches furthest
// without ever darkening the color channels through partial coverage.
// An offset of zero reduces to a plain per-pixel max of the two alphas.
// source alpha of exactly zero is always treated as transparent, even
// when a positive offset would otherwise push it past dst's alpha.
func MaxAlphaFilter(dst Image, src Image, dstX, dstY int, offset int32) {
	if !dst.IsValid() || !src.IsValid() || dst.format != FormatRGBA8 {
		return
	}
	region := NewRect(dstX, dstY, src.width, src.height).Intersect(dst.Bounds())
	if region.Empty() {
		return
	}
	srcX0, srcY0 := region.Left-dstX, region.Top-dstY
	workpool.ByIndex(region.Height(), func(row int) {
		for col := 0; col < region.Width(); col++ {
			sc := src.ReadColor(srcX0+col, srcY0+row)
			if sc.A <= 0 {
				continue
			}
			dx, dy := region.Left+col, region.Top+row
			dc := dst.ReadColor(dx, dy)
			sourceAlpha := sc.A + offset
			if sourceAlpha <= dc.A {
				continue
			}
			if sourceAlpha < 0 {
				sourceAlpha = 0
			}
			if sourceAlpha > 255 {
				sourceAlpha = 255
			}
			dst.WriteColor(dx, dy, Color{sc.R, sc.G, sc.B, sourceAlpha})
		}
	})
}

// AlphaClip zeroes every dst pixel whose alpha is below threshold and
// leaves the rest untouched, for hard-edged cutout masks.
func AlphaClip(im Image, threshold int32) {
	if !im.IsValid() || im.format != FormatRGBA8 {
		return
	}
	for y := 0; y < im.height; y++ {
		for x := 0; x < im.width; x++ {
			c := im.ReadColor(x, y)
			if c.A < threshold {
				im.WriteColor(x, y, Color{})
			}
		}
	}
}

// Colorize overwrites every non-transparent pixel's RGB with a single
// color while preserving its alpha, producing a flat silhouette (e.g. a
// selection highlight or a disabled-button stencil).
func Colorize(im Image, c Color) {
	if !im.IsValid() || im.format != FormatRGBA8 {
		return
	}
	for y := 0; y < im.height; y++ {
		for x := 0; x < im.width; x++ {
			src := im.ReadColor(x, y)
			if src.A <= 0 {
				continue
			}
			im.WriteColor(x, y, Color{c.R, c.G, c.B, src.A})
		}
	}
}

// Silhouette colorizes src (a U8 coverage/luma image) with color and
// composites it onto dst at (dstX, dstY) using the same alpha-composite
// rule AlphaFilter uses, except the source color is the same constant for
// every pixel and only the per-pixel luma (scaled by color's own alpha)
// varies the coverage. This is how a single-channel mask or rendered glyph
// gets drawn in an arbitrary color without ever materializing an RGBA8
// copy of it. A color with alpha 0 draws nothing.
func Silhouette(dst Image, src Image, color Color, dstX, dstY int) {
	if !dst.IsValid() || !src.IsValid() || dst.format != FormatRGBA8 || src.format != FormatU8 {
		return
	}
	sr, sg, sb, sa := int32(saturate(color.R)), int32(saturate(color.G)), int32(saturate(color.B)), saturate(color.A)
	if sa == 0 {
		return
	}
	region := NewRect(dstX, dstY, src.width, src.height).Intersect(dst.Bounds())
	if region.Empty() {
		return
	}
	srcX0, srcY0 := region.Left-dstX, region.Top-dstY
	fullAlpha := sa == 255
	workpool.ByIndex(region.Height(), func(row int) {
		for col := 0; col < region.Width(); col++ {
			luma := uint32(src.PixelPointer(srcX0+col, srcY0+row).Uint8())
			var sourceRatio uint32
			if fullAlpha {
				sourceRatio = luma
			} else {
				sourceRatio = NormalizedByteMultiply(luma, uint32(sa))
			}
			if sourceRatio == 0 {
				continue
			}
			dx, dy := region.Left+col, region.Top+row
			if sourceRatio == 255 {
				dst.WriteColor(dx, dy, Color{sr, sg, sb, 255})
				continue
			}
			dc := dst.ReadColor(dx, dy)
			targetRatio := 255 - sourceRatio
			blend := func(d, s int32) int32 {
				return int32(NormalizedByteMultiply(uint32(d), targetRatio) + NormalizedByteMultiply(uint32(s), sourceRatio))
			}
			dst.WriteColor(dx, dy, Color{
				blend(dc.R, sr),
				blend(dc.G, sg),
				blend(dc.B, sb),
				int32(NormalizedByteMultiply(uint32(dc.A), targetRatio)) + int32(sourceRatio),
			})
		}
	})
}

// clampHeightU16 saturates a height sum (post-offset) to U16's representable
// range.
func clampHeightU16(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 65535 {
		return 65535
	}
	return v
}

// DrawHigherU16 raises heightBuffer to heightSrc's sample wherever
// heightSrc, after adding sourceHeightOffset and clamping to [0, 65535],
// is strictly greater than the value already stored -- equal heights are
// the identity. sourceHeightOffset is applied after a zero-height source
// sample is treated as "nothing here" and skipped, so an offset can never
// make a genuinely absent sample start drawing. heightSrc must share
// heightBuffer's pixel grid at (dstX, dstY).
func DrawHigherU16(heightBuffer, heightSrc Image, dstX, dstY int, sourceHeightOffset int32) {
	if !heightBuffer.IsValid() || !heightSrc.IsValid() {
		return
	}
	region := NewRect(dstX, dstY, heightSrc.width, heightSrc.height).Intersect(heightBuffer.Bounds())
	if region.Empty() {
		return
	}
	srcX0, srcY0 := region.Left-dstX, region.Top-dstY
	for row := 0; row < region.Height(); row++ {
		for col := 0; col < region.Width(); col++ {
			sx, sy := srcX0+col, srcY0+row
			dx, dy := region.Left+col, region.Top+row
			h := int32(heightSrc.PixelPointer(sx, sy).Uint16())
			if h <= 0 {
				continue
			}
			h = clampHeightU16(h + sourceHeightOffset)
			hp := heightBuffer.PixelPointer(dx, dy)
			if h > 0 && h > int32(hp.Uint16()) {
				hp.SetUint16(uint16(h))
			}
		}
	}
}

// DrawHigherU16Layer is DrawHigherU16 with one attendant RGBA8 layer
// (dst/src) copied alongside the height wherever the height test passes.
func DrawHigherU16Layer(heightBuffer, heightSrc, dst, src Image, dstX, dstY int, sourceHeightOffset int32) {
	if !heightBuffer.IsValid() || !heightSrc.IsValid() || !dst.IsValid() || !src.IsValid() {
		return
	}
	region := NewRect(dstX, dstY, heightSrc.width, heightSrc.height).Intersect(heightBuffer.Bounds())
	if region.Empty() {
		return
	}
	srcX0, srcY0 := region.Left-dstX, region.Top-dstY
	for row := 0; row < region.Height(); row++ {
		for col := 0; col < region.Width(); col++ {
			sx, sy := srcX0+col, srcY0+row
			dx, dy := region.Left+col, region.Top+row
			h := int32(heightSrc.PixelPointer(sx, sy).Uint16())
			if h <= 0 {
				continue
			}
			h = clampHeightU16(h + sourceHeightOffset)
			hp := heightBuffer.PixelPointer(dx, dy)
			if h > int32(hp.Uint16()) {
				hp.SetUint16(uint16(h))
				copyRawPixel(dst, dx, dy, src, sx, sy)
			}
		}
	}
}

// DrawHigherU16Layers is DrawHigherU16Layer with a second attendant RGBA8
// layer, copied under the same height test.
func DrawHigherU16Layers(heightBuffer, heightSrc, dstA, srcA, dstB, srcB Image, dstX, dstY int, sourceHeightOffset int32) {
	if !heightBuffer.IsValid() || !heightSrc.IsValid() || !dstA.IsValid() || !srcA.IsValid() || !dstB.IsValid() || !srcB.IsValid() {
		return
	}
	region := NewRect(dstX, dstY, heightSrc.width, heightSrc.height).Intersect(heightBuffer.Bounds())
	if region.Empty() {
		return
	}
	srcX0, srcY0 := region.Left-dstX, region.Top-dstY
	for row := 0; row < region.Height(); row++ {
		for col := 0; col < region.Width(); col++ {
			sx, sy := srcX0+col, srcY0+row
			dx, dy := region.Left+col, region.Top+row
			h := int32(heightSrc.PixelPointer(sx, sy).Uint16())
			if h <= 0 {
				continue
			}
			h = clampHeightU16(h + sourceHeightOffset)
			hp := heightBuffer.PixelPointer(dx, dy)
			if h > int32(hp.Uint16()) {
				hp.SetUint16(uint16(h))
				copyRawPixel(dstA, dx, dy, srcA, sx, sy)
				copyRawPixel(dstB, dx, dy, srcB, sx, sy)
			}
		}
	}
}

// DrawHigherF32 is DrawHigherU16's counterpart for float height buffers,
// where negative infinity is the conventional "nothing drawn here yet"
// sentinel; unlike U16 there is no upper clamp, since F32 height data is
// not expected to saturate at a fixed maximum.
func DrawHigherF32(heightBuffer, heightSrc Image, dstX, dstY int, sourceHeightOffset float32) {
	if !heightBuffer.IsValid() || !heightSrc.IsValid() {
		return
	}
	region := NewRect(dstX, dstY, heightSrc.width, heightSrc.height).Intersect(heightBuffer.Bounds())
	if region.Empty() {
		return
	}
	srcX0, srcY0 := region.Left-dstX, region.Top-dstY
	for row := 0; row < region.Height(); row++ {
		for col := 0; col < region.Width(); col++ {
			sx, sy := srcX0+col, srcY0+row
			dx, dy := region.Left+col, region.Top+row
			h := heightSrc.PixelPointer(sx, sy).Float32()
			if h <= float32(math.Inf(-1)) {
				continue
			}
			h += sourceHeightOffset
			hp := heightBuffer.PixelPointer(dx, dy)
			if h > hp.Float32() {
				hp.SetFloat32(h)
			}
		}
	}
}

// DrawHigherF32Layer is DrawHigherF32 with one attendant RGBA8 layer
// (dst/src) copied alongside the height wherever the height test passes.
func DrawHigherF32Layer(heightBuffer, heightSrc, dst, src Image, dstX, dstY int, sourceHeightOffset float32) {
	if !heightBuffer.IsValid() || !heightSrc.IsValid() || !dst.IsValid() || !src.IsValid() {
		return
	}
	region := NewRect(dstX, dstY, heightSrc.width, heightSrc.height).Intersect(heightBuffer.Bounds())
	if region.Empty() {
		return
	}
	srcX0, srcY0 := region.Left-dstX, region.Top-dstY
	for row := 0; row < region.Height(); row++ {
		for col := 0; col < region.Width(); col++ {
			sx, sy := srcX0+col, srcY0+row
			dx, dy := region.Left+col, region.Top+row
			h := heightSrc.PixelPointer(sx, sy).Float32()
			if h <= float32(math.Inf(-1)) {
				continue
			}
			h += sourceHeightOffset
			hp := heightBuffer.PixelPointer(dx, dy)
			if h > hp.Float32() {
				hp.SetFloat32(h)
				copyRawPixel(dst, dx, dy, src, sx, sy)
			}
		}
	}
}

// DrawHigherF32Layers is DrawHigherF32Layer with a second attendant RGBA8
// layer, copied under the same height test.
func DrawHigherF32Layers(heightBuffer, heightSrc, dstA, srcA, dstB, srcB Image, dstX, dstY int, sourceHeightOffset float32) {
	if !heightBuffer.IsValid() || !heightSrc.IsValid() || !dstA.IsValid() || !srcA.IsValid() || !dstB.IsValid() || !srcB.IsValid() {
		return
	}
	region := NewRect(dstX, dstY, heightSrc.width, heightSrc.height).Intersect(heightBuffer.Bounds())
	if region.Empty() {
		return
	}
	srcX0, srcY0 := region.Left-dstX, region.Top-dstY
	for row := 0; row < region.Height(); row++ {
		for col := 0; col < region.Width(); col++ {
			sx, sy := srcX0+col, srcY0+row
			dx, dy := region.Left+col, region.Top+row
			h := heightSrc.PixelPointer(sx, sy).Float32()
			if h <= float32(math.Inf(-1)) {
				continue
			}
			h += sourceHeightOffset
			hp := heightBuffer.PixelPointer(dx, dy)
			if h > hp.Float32() {
				hp.SetFloat32(h)
				copyRawPixel(dstA, dx, dy, srcA, sx, sy)
				copyRawPixel(dstB, dx, dy, srcB, sx, sy)
			}
		}
	}
}
