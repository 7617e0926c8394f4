package imageio

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/dfpsr-go/softcanvas/pixel"
)

func makeCheckerboard(w, h int) pixel.Image {
	im := pixel.New(pixel.FormatRGBA8, w, h)
	pixel.Generate(im, func(x, y int) pixel.Color {
		if (x+y)%2 == 0 {
			return pixel.RGBA(255, 0, 0, 255)
		}
		return pixel.RGBA(0, 255, 0, 128)
	})
	return im
}

func TestTGARoundTripUncompressed(t *testing.T) {
	src := makeCheckerboard(6, 4)
	var buf bytes.Buffer
	if err := encodeTGA(&buf, src); err != nil {
		t.Fatalf("encodeTGA: %v", err)
	}
	got, err := decodeTGA(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decodeTGA: %v", err)
	}
	if got.Width() != src.Width() || got.Height() != src.Height() {
		t.Fatalf("dimensions mismatch: got %dx%d want %dx%d", got.Width(), got.Height(), src.Width(), src.Height())
	}
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			want := src.ReadColor(x, y)
			have := got.ReadColor(x, y)
			if want != have {
				t.Fatalf("pixel (%d,%d): got %+v want %+v", x, y, have, want)
			}
		}
	}
}

func TestSaveLoadPNGRoundTrip(t *testing.T) {
	src := makeCheckerboard(5, 3)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := Save(path, src, 0, true); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Width() != src.Width() || got.Height() != src.Height() {
		t.Fatalf("dimensions mismatch")
	}
}

func TestSaveLoadBMPRoundTrip(t *testing.T) {
	src := makeCheckerboard(5, 3)
	path := filepath.Join(t.TempDir(), "out.bmp")
	if err := Save(path, src, 0, true); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			want := src.ReadColor(x, y)
			have := got.ReadColor(x, y)
			if want.R != have.R || want.G != have.G || want.B != have.B {
				t.Fatalf("pixel (%d,%d): got %+v want %+v", x, y, have, want)
			}
		}
	}
}

func TestLoadUnrecognizedExtensionReturnsError(t *testing.T) {
	if _, err := Load("nothing.xyz", false); err == nil {
		t.Fatal("expected error for unrecognized extension")
	}
}

func TestSaveInvalidImageReturnsError(t *testing.T) {
	if err := Save(filepath.Join(t.TempDir(), "x.png"), pixel.Image{}, 0, false); err == nil {
		t.Fatal("expected error saving an invalid image")
	}
}
