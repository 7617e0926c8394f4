package gui

import (
	"strings"
	"testing"

	"github.com/dfpsr-go/softcanvas/pixel"
)

func TestWrapTextBreaksBetweenWords(t *testing.T) {
	// "AB CD EF" at 5px/char: each word is 10px wide, a space is 5px.
	// A 12px line holds one word; adding a space and the next word (25px)
	// overflows it, so each word lands on its own line.
	lines := WrapText("AB CD EF", 12)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "AB" || lines[1] != "CD" || lines[2] != "EF" {
		t.Fatalf("unexpected wrap result: %q", lines)
	}
}

func TestWrapTextKeepsWordsTogetherWhenTheyFit(t *testing.T) {
	lines := WrapText("AB CD", 100)
	if len(lines) != 1 || lines[0] != "AB CD" {
		t.Fatalf("expected a single unwrapped line, got %q", lines)
	}
}

func TestWrapTextSplitsWordWiderThanLine(t *testing.T) {
	// glyphWidth+1 = 5px/char; a 10px line fits 2 characters at a time.
	lines := WrapText("ABCDEF", 10)
	if len(lines) != 3 {
		t.Fatalf("expected 3 split lines, got %d: %q", len(lines), lines)
	}
	if strings.Join(lines, "") != "ABCDEF" {
		t.Fatalf("expected split lines to reconstruct the original word, got %q", lines)
	}
}

func TestWrapTextHonorsExplicitNewlines(t *testing.T) {
	lines := WrapText("one\ntwo", 1000)
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Fatalf("expected explicit newline to force a break, got %q", lines)
	}
}

func TestDrawTextWrappedStopsAtBoundBottom(t *testing.T) {
	target := pixel.New(pixel.FormatRGBA8, 40, 16)
	bound := pixel.NewRect(0, 0, 40, 8)
	// Three lines of text into a bound tall enough for one line only; this
	// must not panic or write below the bound.
	DrawTextWrapped(target, bound, "AAAA BBBB CCCC", pixel.RGBA(255, 255, 255, 255))
	for y := bound.Bottom; y < target.Height(); y++ {
		for x := 0; x < target.Width(); x++ {
			if c := target.ReadColor(x, y); c.A != 0 {
				t.Fatalf("expected nothing drawn below the bound at (%d,%d), got %+v", x, y, c)
			}
		}
	}
}
