package pixel

// Pyramid holds a chain of progressively half-sized mip levels of a base
// image, each the unweighted 2x2 mean of the level above it, for minified
// texture sampling without aliasing (spec §4.8). Level 0 is the base image
// itself, which the pyramid references but does not own; every further
// level is generated into its own new allocation.
type Pyramid struct {
	levels []Image
}

// BuildPyramid generates mip levels from base, halving each dimension (odd
// sizes round up) until both dimensions reach 1 pixel. The base image is referenced directly as level 0 and
// is not copied.
func BuildPyramid(base Image) Pyramid {
	if !base.IsValid() {
		return Pyramid{}
	}
	levels := []Image{base}
	cur := base
	for cur.width > 1 || cur.height > 1 {
		nextW := (cur.width + 1) / 2
		nextH := (cur.height + 1) / 2
		next := New(cur.format, nextW, nextH)
		if !next.IsValid() {
			break
		}
		downsampleMean(next, cur)
		levels = append(levels, next)
		cur = next
	}
	return Pyramid{levels: levels}
}

// downsampleMean writes each dst pixel as the unweighted mean of the up to
// 2x2 block of src pixels it covers, clamping reads at the odd-sized edge
// so the last row/column of an odd source dimension only averages the
// pixels that exist.
func downsampleMean(dst, src Image) {
	// Monochrome formats average in their own native numeric range
	// (readSample/writeSample) instead of Color, which clamps U16/F32
	// samples to 0..255 and would destroy height/luma data above a byte.
	mono := dst.format != FormatRGBA8
	for y := 0; y < dst.height; y++ {
		sy0 := y * 2
		sy1 := sy0 + 1
		if sy1 >= src.height {
			sy1 = sy0
		}
		for x := 0; x < dst.width; x++ {
			sx0 := x * 2
			sx1 := sx0 + 1
			if sx1 >= src.width {
				sx1 = sx0
			}
			if mono {
				v := (src.readSample(sx0, sy0) + src.readSample(sx1, sy0) + src.readSample(sx0, sy1) + src.readSample(sx1, sy1)) / 4
				dst.writeSample(x, y, v)
				continue
			}
			c00 := src.ReadColor(sx0, sy0)
			c10 := src.ReadColor(sx1, sy0)
			c01 := src.ReadColor(sx0, sy1)
			c11 := src.ReadColor(sx1, sy1)
			dst.WriteColor(x, y, Color{
				R: (c00.R + c10.R + c01.R + c11.R) / 4,
				G: (c00.G + c10.G + c01.G + c11.G) / 4,
				B: (c00.B + c10.B + c01.B + c11.B) / 4,
				A: (c00.A + c10.A + c01.A + c11.A) / 4,
			})
		}
	}
}

// LevelCount returns the number of mip levels, including the base.
func (p Pyramid) LevelCount() int { return len(p.levels) }

// Level returns a non-owning view of mip level n (0 is the base image).
// Returns the zero Image if n is out of range.
func (p Pyramid) Level(n int) Image {
	if n < 0 || n >= len(p.levels) {
		return Image{}
	}
	return p.levels[n]
}

// LevelForScale picks the mip level whose dimensions best match rendering
// the base image at the given scale factor (scale <= 1 selects a smaller
// level; scale >= 1 always selects the base). This is a plain linear scan
// since pyramids are shallow (at most ~17 levels for a 65536px base).
func (p Pyramid) LevelForScale(scale float64) int {
	if len(p.levels) == 0 || scale >= 1 {
		return 0
	}
	target := 1.0 / scale
	best := 0
	for i, lvl := range p.levels {
		ratio := float64(p.levels[0].width) / float64(lvl.width)
		if ratio <= target {
			best = i
		} else {
			break
		}
	}
	return best
}

// Release releases every level's backing allocation except the base image,
// which the caller retains ownership of.
func (p Pyramid) Release() {
	for i := 1; i < len(p.levels); i++ {
		p.levels[i].Release()
	}
}
