package pixel

import "testing"

func TestResizeNearestUpscale(t *testing.T) {
	src := New(FormatRGBA8, 2, 2)
	src.WriteColor(0, 0, RGBA(255, 0, 0, 255))
	src.WriteColor(1, 0, RGBA(0, 255, 0, 255))
	src.WriteColor(0, 1, RGBA(0, 0, 255, 255))
	src.WriteColor(1, 1, RGBA(255, 255, 0, 255))

	dst := New(FormatRGBA8, 4, 4)
	ResizeNearest(dst, src)
	if c := dst.ReadColor(0, 0); c.R != 255 || c.G != 0 {
		t.Fatalf("top-left quadrant mismatch: %+v", c)
	}
	if c := dst.ReadColor(3, 3); c.R != 255 || c.G != 255 {
		t.Fatalf("bottom-right quadrant mismatch: %+v", c)
	}
}

func TestBlockMagnifyReplicatesPixels(t *testing.T) {
	src := New(FormatRGBA8, 2, 1)
	src.WriteColor(0, 0, RGBA(255, 0, 0, 255))
	src.WriteColor(1, 0, RGBA(0, 255, 0, 255))

	dst := New(FormatRGBA8, 6, 3)
	BlockMagnify(dst, src, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if c := dst.ReadColor(x, y); c.R != 255 {
				t.Fatalf("expected red block at (%d,%d), got %+v", x, y, c)
			}
		}
		for x := 3; x < 6; x++ {
			if c := dst.ReadColor(x, y); c.G != 255 {
				t.Fatalf("expected green block at (%d,%d), got %+v", x, y, c)
			}
		}
	}
}

func TestPyramidHalvesEachLevel(t *testing.T) {
	base := New(FormatRGBA8, 8, 8)
	FillRect(base, base.Bounds(), RGBA(100, 100, 100, 255))
	p := BuildPyramid(base)
	if p.LevelCount() < 4 {
		t.Fatalf("expected at least 4 levels for an 8x8 base, got %d", p.LevelCount())
	}
	if w := p.Level(1).Width(); w != 4 {
		t.Fatalf("expected level 1 width 4, got %d", w)
	}
	if w := p.Level(3).Width(); w != 1 {
		t.Fatalf("expected level 3 width 1, got %d", w)
	}
	c := p.Level(2).ReadColor(0, 0)
	if c.R != 100 {
		t.Fatalf("expected uniform color to survive downsampling, got %+v", c)
	}
}

func TestResizeNearestPreservesU16FullRange(t *testing.T) {
	src := New(FormatU16, 1, 1)
	src.PixelPointer(0, 0).SetUint16(40000)
	dst := New(FormatU16, 2, 2)
	ResizeNearest(dst, src)
	if got := dst.PixelPointer(0, 0).Uint16(); got != 40000 {
		t.Fatalf("expected full-range U16 sample to survive resize, got %d", got)
	}
}

func TestResizeBilinearPreservesU16FullRange(t *testing.T) {
	src := New(FormatU16, 2, 1)
	src.PixelPointer(0, 0).SetUint16(60000)
	src.PixelPointer(1, 0).SetUint16(60000)
	dst := New(FormatU16, 4, 1)
	ResizeBilinear(dst, src)
	for x := 0; x < 4; x++ {
		if got := dst.PixelPointer(x, 0).Uint16(); got < 59000 {
			t.Fatalf("expected upscaled U16 sample near 60000 at x=%d, got %d", x, got)
		}
	}
}

func TestPyramidPreservesU16FullRangeAcrossLevels(t *testing.T) {
	base := New(FormatU16, 4, 4)
	FillRect(base, base.Bounds(), Color{R: 50000})
	p := BuildPyramid(base)
	defer p.Release()
	if got := p.Level(1).PixelPointer(0, 0).Uint16(); got < 49000 {
		t.Fatalf("expected mip level to preserve full-range U16 height, got %d", got)
	}
}

func TestBlockMagnifyLetterboxFillsBorderTransparent(t *testing.T) {
	src := New(FormatRGBA8, 2, 2)
	FillRect(src, src.Bounds(), RGBA(255, 0, 0, 255))
	dst := New(FormatRGBA8, 5, 5)
	FillRect(dst, dst.Bounds(), RGBA(9, 9, 9, 255))
	BlockMagnifyLetterbox(dst, src)
	if c := dst.ReadColor(4, 4); c.A != 0 {
		t.Fatalf("expected transparent letterbox border, got %+v", c)
	}
	if c := dst.ReadColor(0, 0); c.R != 255 || c.A != 255 {
		t.Fatalf("expected magnified source at top-left, got %+v", c)
	}
}

func TestGenerateAndMap(t *testing.T) {
	im := New(FormatU8, 4, 1)
	Generate(im, func(x, y int) Color { return Gray(int32(x * 10)) })
	if v := im.ReadColor(2, 0).R; v != 20 {
		t.Fatalf("generate mismatch: got %d", v)
	}
	Map(im, im, func(c Color, x, y int) Color { return Gray(c.R + 1) })
	if v := im.ReadColor(2, 0).R; v != 21 {
		t.Fatalf("map mismatch: got %d", v)
	}
}
