package pixel

import "testing"

func TestFillRectUniform(t *testing.T) {
	im := New(FormatU8, 8, 8)
	FillRect(im, NewRect(2, 2, 4, 4), Gray(200))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := byte(0)
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = 200
			}
			got := im.PixelPointer(x, y).Uint8()
			if got != want {
				t.Fatalf("at (%d,%d): got %d want %d", x, y, got, want)
			}
		}
	}
}

func TestFillRectClipsToBounds(t *testing.T) {
	im := New(FormatRGBA8, 4, 4)
	FillRect(im, NewRect(-2, -2, 4, 4), RGBA(255, 0, 0, 255))
	c := im.ReadColor(0, 0)
	if c.R != 255 || c.A != 255 {
		t.Fatalf("expected red at origin, got %+v", c)
	}
	c = im.ReadColor(2, 2)
	if c.A != 0 {
		t.Fatalf("expected untouched pixel outside clipped rect, got %+v", c)
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	im := New(FormatRGBA8, 8, 8)
	DrawLine(im, 0, 0, 7, 7, RGBA(255, 255, 255, 255))
	for i := 0; i < 8; i++ {
		c := im.ReadColor(i, i)
		if c.A != 255 {
			t.Fatalf("expected diagonal pixel (%d,%d) to be set", i, i)
		}
	}
}

func TestDrawLineCulledWhenFullyOutside(t *testing.T) {
	im := New(FormatRGBA8, 8, 8)
	// Both endpoints left of the image: fully culled, no panic, no writes.
	DrawLine(im, -5, 0, -1, 7, RGBA(255, 0, 0, 255))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if im.ReadColor(x, y).A != 0 {
				t.Fatalf("expected no pixels drawn, found one at (%d,%d)", x, y)
			}
		}
	}
}

func TestDrawLineNotCulledWhenCrossingDiagonally(t *testing.T) {
	im := New(FormatRGBA8, 8, 8)
	// One endpoint above-left, one below-right: must still draw through.
	DrawLine(im, -4, -4, 11, 11, RGBA(255, 255, 255, 255))
	any := false
	for i := 0; i < 8; i++ {
		if im.ReadColor(i, i).A == 255 {
			any = true
		}
	}
	if !any {
		t.Fatal("expected line crossing the image diagonally to draw visible pixels")
	}
}

func TestAlphaFilterBlend(t *testing.T) {
	dst := New(FormatRGBA8, 1, 1)
	dst.WriteColor(0, 0, RGBA(0, 0, 0, 255))
	src := New(FormatRGBA8, 1, 1)
	src.WriteColor(0, 0, RGBA(255, 255, 255, 128))
	AlphaFilter(dst, src, 0, 0)
	c := dst.ReadColor(0, 0)
	if c.R < 120 || c.R > 135 {
		t.Fatalf("expected ~half blend, got %+v", c)
	}
	if c.A != 255 {
		t.Fatalf("expected destination alpha to stay opaque, got %d", c.A)
	}
}

func TestColorizePreservesAlpha(t *testing.T) {
	im := New(FormatRGBA8, 1, 1)
	im.WriteColor(0, 0, RGBA(10, 20, 30, 77))
	Colorize(im, RGBA(255, 0, 0, 255))
	c := im.ReadColor(0, 0)
	if c.R != 255 || c.G != 0 || c.B != 0 {
		t.Fatalf("expected silhouette color, got %+v", c)
	}
	if c.A != 77 {
		t.Fatalf("expected alpha preserved, got %d", c.A)
	}
}

func TestDrawHigherU16RespectsHeight(t *testing.T) {
	dst := New(FormatRGBA8, 1, 1)
	heights := New(FormatU16, 1, 1)
	heights.PixelPointer(0, 0).SetUint16(100)

	low := New(FormatRGBA8, 1, 1)
	low.WriteColor(0, 0, RGBA(1, 1, 1, 255))
	lowH := New(FormatU16, 1, 1)
	lowH.PixelPointer(0, 0).SetUint16(50)
	DrawHigherU16Layer(heights, lowH, dst, low, 0, 0, 0)
	if dst.ReadColor(0, 0).R != 0 {
		t.Fatal("lower height must not overwrite")
	}

	equal := New(FormatRGBA8, 1, 1)
	equal.WriteColor(0, 0, RGBA(5, 5, 5, 255))
	equalH := New(FormatU16, 1, 1)
	equalH.PixelPointer(0, 0).SetUint16(100)
	DrawHigherU16Layer(heights, equalH, dst, equal, 0, 0, 0)
	if dst.ReadColor(0, 0).R != 0 {
		t.Fatal("equal height must be the identity")
	}

	high := New(FormatRGBA8, 1, 1)
	high.WriteColor(0, 0, RGBA(9, 9, 9, 255))
	highH := New(FormatU16, 1, 1)
	highH.PixelPointer(0, 0).SetUint16(200)
	DrawHigherU16Layer(heights, highH, dst, high, 0, 0, 0)
	if dst.ReadColor(0, 0).R != 9 {
		t.Fatal("higher height must overwrite")
	}
	if heights.PixelPointer(0, 0).Uint16() != 200 {
		t.Fatal("height buffer must be raised to the new height")
	}
}

func TestDrawHigherU16ZeroSourceIsSkipped(t *testing.T) {
	heights := New(FormatU16, 1, 1)
	heights.PixelPointer(0, 0).SetUint16(0)
	zeroSrc := New(FormatU16, 1, 1)
	zeroSrc.PixelPointer(0, 0).SetUint16(0)
	DrawHigherU16(heights, zeroSrc, 0, 0, 10)
	if heights.PixelPointer(0, 0).Uint16() != 0 {
		t.Fatal("a zero height sample must never draw, even with a positive offset")
	}
}

func TestDrawHigherU16OffsetShiftsHeight(t *testing.T) {
	heights := New(FormatU16, 1, 1)
	heights.PixelPointer(0, 0).SetUint16(100)
	src := New(FormatU16, 1, 1)
	src.PixelPointer(0, 0).SetUint16(90)
	DrawHigherU16(heights, src, 0, 0, 20)
	if got := heights.PixelPointer(0, 0).Uint16(); got != 110 {
		t.Fatalf("expected offset-adjusted height 110, got %d", got)
	}
}

func TestSilhouetteComposites(t *testing.T) {
	dst := New(FormatRGBA8, 1, 1)
	dst.WriteColor(0, 0, RGBA(0, 0, 0, 255))
	src := New(FormatU8, 1, 1)
	src.PixelPointer(0, 0).SetUint8(255)
	Silhouette(dst, src, RGBA(10, 20, 30, 255), 0, 0)
	c := dst.ReadColor(0, 0)
	if c.R != 10 || c.G != 20 || c.B != 30 {
		t.Fatalf("expected full-coverage silhouette color, got %+v", c)
	}
}

func TestSilhouetteZeroAlphaColorDrawsNothing(t *testing.T) {
	dst := New(FormatRGBA8, 1, 1)
	dst.WriteColor(0, 0, RGBA(1, 2, 3, 255))
	src := New(FormatU8, 1, 1)
	src.PixelPointer(0, 0).SetUint8(255)
	Silhouette(dst, src, RGBA(10, 20, 30, 0), 0, 0)
	c := dst.ReadColor(0, 0)
	if c.R != 1 || c.G != 2 || c.B != 3 {
		t.Fatalf("expected untouched pixel, got %+v", c)
	}
}

func TestCloneRoundTrip(t *testing.T) {
	im := New(FormatRGBA8, 3, 3)
	FillRect(im, im.Bounds(), RGBA(1, 2, 3, 4))
	clone := im.Clone()
	if clone.Width() != 3 || clone.Height() != 3 {
		t.Fatalf("unexpected clone dimensions: %dx%d", clone.Width(), clone.Height())
	}
	if c := clone.ReadColor(1, 1); c.R != 1 || c.G != 2 || c.B != 3 || c.A != 4 {
		t.Fatalf("clone pixel mismatch: %+v", c)
	}
}
