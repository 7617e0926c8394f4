package pixel

// Package-level fixed-point resize and magnification filters. Coordinates
// are carried in Q16.16 fixed point (16 fractional bits) so that nearest
// and bilinear sample positions never depend on floating point rounding
// across platforms, matching the reference rasterizer's resize filters.
// RGBA8 interpolation is integer; monochrome formats interpolate their
// sample values in float64.

const fixedShift = 16
const fixedOne = 1 << fixedShift

// ResizeNearest writes a dst-sized image sampling src with nearest-neighbor
// addressing. dst and src must already be allocated with matching formats.
func ResizeNearest(dst, src Image) {
	if !dst.IsValid() || !src.IsValid() {
		return
	}
	if dst.width == src.width && dst.height == src.height {
		CopyInto(dst, src, 0, 0)
		return
	}
	xStep := fixedRatio(src.width, dst.width)
	yStep := fixedRatio(src.height, dst.height)
	sy := yStep / 2
	for y := 0; y < dst.height; y++ {
		srcY := clampInt(sy>>fixedShift, 0, src.height-1)
		sx := xStep / 2
		for x := 0; x < dst.width; x++ {
			srcX := clampInt(sx>>fixedShift, 0, src.width-1)
			copySample(dst, x, y, src, srcX, srcY)
			sx += xStep
		}
		sy += yStep
	}
}

// ResizeBilinear writes a dst-sized image sampling src with bilinear
// interpolation computed in Q16.16 fixed point. Only meaningful for
// upscaling; downscaling by more than 2x should go through
// ResizeBilinearDownscale to avoid aliasing from unsampled source texels.
func ResizeBilinear(dst, src Image) {
	if !dst.IsValid() || !src.IsValid() {
		return
	}
	// Monochrome formats interpolate in their own native numeric range
	// (bilinearSampleValue) rather than going through Color, which would clamp
	// U16/F32 samples to 0..255 before the lerp ever runs.
	mono := dst.format != FormatRGBA8
	xStep := fixedRatio(src.width, dst.width)
	yStep := fixedRatio(src.height, dst.height)
	sy := yStep/2 - fixedOne/2
	for y := 0; y < dst.height; y++ {
		y0, yFrac := splitFixed(sy, src.height)
		sx := xStep/2 - fixedOne/2
		for x := 0; x < dst.width; x++ {
			x0, xFrac := splitFixed(sx, src.width)
			if mono {
				dst.writeSample(x, y, bilinearSampleValue(src, x0, y0, xFrac, yFrac))
			} else {
				dst.WriteColor(x, y, bilinearSample(src, x0, y0, xFrac, yFrac))
			}
			sx += xStep
		}
		sy += yStep
	}
}

// ResizeBilinearDownscale first box-averages src horizontally into a
// temporary buffer sized to the destination width (matching src's height),
// then resamples that intermediate buffer bilinearly to the destination
// size; the vertical direction is only resampled, not averaged. This two
// pass approach is the reference rasterizer's upscale optimization turned
// around for downscaling: it avoids the O(srcW*srcH) per destination pixel
// cost of box-filtering the whole source footprint.
func ResizeBilinearDownscale(dst, src Image) {
	if !dst.IsValid() || !src.IsValid() {
		return
	}
	if dst.width >= src.width && dst.height >= src.height {
		ResizeBilinear(dst, src)
		return
	}
	temp := New(src.format, dst.width, src.height)
	if !temp.IsValid() {
		return
	}
	defer temp.Release()
	xStep := fixedRatio(src.width, dst.width)
	for x := 0; x < dst.width; x++ {
		left := (x * src.width) / dst.width
		right := ((x + 1) * src.width) / dst.width
		if right <= left {
			right = left + 1
		}
		for y := 0; y < src.height; y++ {
			if src.format == FormatRGBA8 {
				temp.WriteColor(x, y, averageRowSpan(src, left, right, y))
			} else {
				temp.writeSample(x, y, averageRowSpanSample(src, left, right, y))
			}
		}
	}
	_ = xStep
	ResizeBilinear(dst, temp)
}

func averageRowSpan(src Image, left, right, y int) Color {
	var r, g, b, a int64
	n := int64(right - left)
	for x := left; x < right; x++ {
		c := src.ReadColor(x, y)
		r += int64(c.R)
		g += int64(c.G)
		b += int64(c.B)
		a += int64(c.A)
	}
	return Color{int32(r / n), int32(g / n), int32(b / n), int32(a / n)}
}

// averageRowSpanSample is averageRowSpan for monochrome formats, averaging
// in the format's own native numeric range instead of Color's clamped
// 0..255.
func averageRowSpanSample(src Image, left, right, y int) float64 {
	var sum float64
	n := float64(right - left)
	for x := left; x < right; x++ {
		sum += src.readSample(x, y)
	}
	return sum / n
}

func fixedRatio(srcLen, dstLen int) int {
	if dstLen <= 0 {
		return 0
	}
	return (srcLen << fixedShift) / dstLen
}

func splitFixed(v, length int) (whole int, frac int) {
	if v < 0 {
		v = 0
	}
	whole = v >> fixedShift
	frac = v & (fixedOne - 1)
	if whole >= length-1 {
		whole = length - 2
		if whole < 0 {
			whole = 0
		}
		frac = fixedOne
	}
	return
}

func bilinearSample(src Image, x0, y0, xFrac, yFrac int) Color {
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 >= src.width {
		x1 = src.width - 1
	}
	if y1 >= src.height {
		y1 = src.height - 1
	}
	c00 := src.ReadColor(x0, y0)
	c10 := src.ReadColor(x1, y0)
	c01 := src.ReadColor(x0, y1)
	c11 := src.ReadColor(x1, y1)

	lerp := func(a, b int32, t int) int32 {
		return int32((int64(a)*int64(fixedOne-t) + int64(b)*int64(t)) >> fixedShift)
	}
	top := Color{lerp(c00.R, c10.R, xFrac), lerp(c00.G, c10.G, xFrac), lerp(c00.B, c10.B, xFrac), lerp(c00.A, c10.A, xFrac)}
	bot := Color{lerp(c01.R, c11.R, xFrac), lerp(c01.G, c11.G, xFrac), lerp(c01.B, c11.B, xFrac), lerp(c01.A, c11.A, xFrac)}
	return Color{lerp(top.R, bot.R, yFrac), lerp(top.G, bot.G, yFrac), lerp(top.B, bot.B, yFrac), lerp(top.A, bot.A, yFrac)}
}

// bilinearSampleValue is bilinearSample for monochrome formats, reading and
// interpolating in the format's own native numeric range via readSample
// instead of Color.
func bilinearSampleValue(src Image, x0, y0, xFrac, yFrac int) float64 {
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 >= src.width {
		x1 = src.width - 1
	}
	if y1 >= src.height {
		y1 = src.height - 1
	}
	c00 := src.readSample(x0, y0)
	c10 := src.readSample(x1, y0)
	c01 := src.readSample(x0, y1)
	c11 := src.readSample(x1, y1)

	lerp := func(a, b float64, t int) float64 {
		return a + (b-a)*float64(t)/float64(fixedOne)
	}
	top := lerp(c00, c10, xFrac)
	bot := lerp(c01, c11, xFrac)
	return lerp(top, bot, yFrac)
}

// BlockMagnify enlarges src by an exact integer factor, replicating each
// source pixel into a factor x factor block. Every factor, including the
// common small ones, goes through the same general per-pixel loop
// (blockMagnifyN); there are no dedicated per-factor kernels.
func BlockMagnify(dst, src Image, factor int) {
	if !dst.IsValid() || !src.IsValid() || factor < 1 {
		return
	}
	switch factor {
	case 2:
		blockMagnifyN(dst, src, 2)
	case 3:
		blockMagnifyN(dst, src, 3)
	case 4:
		blockMagnifyN(dst, src, 4)
	case 8:
		blockMagnifyN(dst, src, 8)
	default:
		blockMagnifyN(dst, src, factor)
	}
}

func blockMagnifyN(dst, src Image, factor int) {
	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			c := src.ReadColor(sx, sy)
			baseX := sx * factor
			baseY := sy * factor
			for dy := 0; dy < factor; dy++ {
				for dx := 0; dx < factor; dx++ {
					dst.WriteClip(baseX+dx, baseY+dy, c)
				}
			}
		}
	}
}

// BlockMagnifyLetterbox magnifies src by the largest integer factor that
// fits within dst without exceeding it on either axis, then centers the
// result and fills the remaining border with transparent black. Used by
// the windowed canvas driver when the logical resolution doesn't evenly
// divide the physical window size.
func BlockMagnifyLetterbox(dst, src Image) {
	if !dst.IsValid() || !src.IsValid() {
		return
	}
	factor := dst.width / src.width
	if fy := dst.height / src.height; fy < factor {
		factor = fy
	}
	if factor < 1 {
		factor = 1
	}
	FillRect(dst, dst.Bounds(), Color{})
	outW := src.width * factor
	outH := src.height * factor
	offX := (dst.width - outW) / 2
	offY := (dst.height - outH) / 2
	region := dst.Crop(NewRect(offX, offY, outW, outH))
	blockMagnifyN(region, src, factor)
}

// Generate fills every pixel of im by calling f(x, y) for each coordinate.
func Generate(im Image, f func(x, y int) Color) {
	if !im.IsValid() {
		return
	}
	for y := 0; y < im.height; y++ {
		for x := 0; x < im.width; x++ {
			im.WriteColor(x, y, f(x, y))
		}
	}
}

// Map writes dst[x,y] = f(src.ReadColor(x,y), x, y) for every pixel shared
// by dst and src's bounds. dst and src may be the same image.
func Map(dst, src Image, f func(c Color, x, y int) Color) {
	if !dst.IsValid() || !src.IsValid() {
		return
	}
	w, h := dst.width, dst.height
	if src.width < w {
		w = src.width
	}
	if src.height < h {
		h = src.height
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.WriteColor(x, y, f(src.ReadColor(x, y), x, y))
		}
	}
}
