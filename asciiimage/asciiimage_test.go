package asciiimage

import (
	"testing"

	"github.com/dfpsr-go/softcanvas/pixel"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	im := pixel.New(pixel.FormatU8, 3, 2)
	im.WriteColor(0, 0, pixel.Gray(0))
	im.WriteColor(1, 0, pixel.Gray(128))
	im.WriteColor(2, 0, pixel.Gray(255))
	im.WriteColor(0, 1, pixel.Gray(255))
	im.WriteColor(1, 1, pixel.Gray(0))
	im.WriteColor(2, 1, pixel.Gray(128))

	text, err := Encode(im, " .#")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Width() != 3 || got.Height() != 2 {
		t.Fatalf("dimensions mismatch: %dx%d", got.Width(), got.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := im.ReadColor(x, y).R
			have := got.ReadColor(x, y).R
			if abs32(want-have) > 1 {
				t.Fatalf("pixel (%d,%d): got %d want %d", x, y, have, want)
			}
		}
	}
}

func TestDecodeLiteral(t *testing.T) {
	text := "< .#>\n<. >\n<#.>\n"
	im, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if im.Width() != 2 || im.Height() != 2 {
		t.Fatalf("dimensions mismatch: %dx%d", im.Width(), im.Height())
	}
	if im.ReadColor(0, 0).R != 128 {
		t.Fatalf("expected (0,0) to decode to 128, got %d", im.ReadColor(0, 0).R)
	}
	if im.ReadColor(0, 1).R != 255 {
		t.Fatalf("expected (0,1) to decode to 255, got %d", im.ReadColor(0, 1).R)
	}
}

func TestDecodeRejectsInconsistentLineLength(t *testing.T) {
	text := "< .#>\n<. >\n<#>\n"
	if _, err := Decode(text); err == nil {
		t.Fatal("expected an error for mismatched row lengths")
	}
}

func TestDecodeRejectsUnknownCharacter(t *testing.T) {
	text := "< .#>\n<.X>\n"
	if _, err := Decode(text); err == nil {
		t.Fatal("expected an error for a character outside the alphabet")
	}
}

func TestValidateAlphabetRejectsForbiddenCharacters(t *testing.T) {
	if err := ValidateAlphabet(" .<#"); err == nil {
		t.Fatal("expected an error for an alphabet containing '<'")
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
