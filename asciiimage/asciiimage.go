// Package asciiimage serializes and parses U8 images to and from inline
// ASCII art. It exists so tests can express an expected image as a
// readable text literal instead of a byte slice, the same role the
// teacher's golden-image fixtures play for RGBA output.
package asciiimage

import (
	"fmt"
	"strings"

	"github.com/dfpsr-go/softcanvas/pixel"
)

// forbiddenChars are excluded from an alphabet because they collide with
// the line-wrapping syntax itself.
const forbiddenChars = "<>\\\""

// ValidateAlphabet reports an error if alphabet contains anything outside
// printable ASCII 32..126, or any of the wrapping delimiter characters.
func ValidateAlphabet(alphabet string) error {
	if len(alphabet) < 2 {
		return fmt.Errorf("asciiimage: alphabet must have at least 2 characters, got %d", len(alphabet))
	}
	for _, r := range alphabet {
		if r < 32 || r > 126 {
			return fmt.Errorf("asciiimage: alphabet character %q is not printable ASCII", r)
		}
		if strings.ContainsRune(forbiddenChars, r) {
			return fmt.Errorf("asciiimage: alphabet character %q conflicts with line syntax", r)
		}
	}
	return nil
}

// valueForIndex returns the U8 sample value character position i in an
// alphabet of the given length decodes to: round(i * 255 / (n-1)).
func valueForIndex(i, n int) int32 {
	return int32((i*255 + (n-1)/2) / (n - 1))
}

// indexForValue finds the alphabet position whose decoded value is
// closest to v, the inverse of valueForIndex used when encoding.
func indexForValue(v int32, n int) int {
	best, bestDiff := 0, int32(1<<30)
	for i := 0; i < n; i++ {
		diff := valueForIndex(i, n) - v
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best
}

// Encode renders a U8 image as ASCII art under alphabet, alphabet[0]
// standing for the darkest samples and alphabet[len-1] the brightest.
// The first output line is the alphabet itself; every line, including
// that first one, is wrapped in angle brackets.
func Encode(im pixel.Image, alphabet string) (string, error) {
	if !im.IsValid() {
		return "", fmt.Errorf("asciiimage: cannot encode an invalid image")
	}
	if im.Format() != pixel.FormatU8 {
		return "", fmt.Errorf("asciiimage: can only encode U8 images, got %s", im.Format())
	}
	if err := ValidateAlphabet(alphabet); err != nil {
		return "", err
	}
	runes := []rune(alphabet)
	n := len(runes)

	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(alphabet)
	sb.WriteString(">\n")
	for y := 0; y < im.Height(); y++ {
		sb.WriteByte('<')
		for x := 0; x < im.Width(); x++ {
			v := im.ReadColor(x, y).R
			sb.WriteRune(runes[indexForValue(v, n)])
		}
		sb.WriteString(">\n")
	}
	return sb.String(), nil
}

// Decode parses ASCII art produced by Encode (or written by hand in the
// same format) back into a U8 image. Every row after the alphabet line
// must be the same length; a mismatch is reported as an error rather than
// silently padding or cropping.
func Decode(text string) (pixel.Image, error) {
	lines, err := unwrapLines(text)
	if err != nil {
		return pixel.Image{}, err
	}
	if len(lines) < 1 {
		return pixel.Image{}, fmt.Errorf("asciiimage: no alphabet line found")
	}
	alphabet := lines[0]
	if err := ValidateAlphabet(alphabet); err != nil {
		return pixel.Image{}, err
	}
	runes := []rune(alphabet)
	n := len(runes)
	index := make(map[rune]int, n)
	for i, r := range runes {
		index[r] = i
	}

	rows := lines[1:]
	height := len(rows)
	if height == 0 {
		return pixel.Image{}, fmt.Errorf("asciiimage: image has no rows")
	}
	width := len([]rune(rows[0]))
	if width == 0 {
		return pixel.Image{}, fmt.Errorf("asciiimage: image rows are empty")
	}
	for i, row := range rows {
		if len([]rune(row)) != width {
			return pixel.Image{}, fmt.Errorf("asciiimage: row %d has length %d, want %d", i, len([]rune(row)), width)
		}
	}

	im := pixel.New(pixel.FormatU8, width, height)
	if !im.IsValid() {
		return im, fmt.Errorf("asciiimage: could not allocate %dx%d image", width, height)
	}
	for y, row := range rows {
		for x, r := range []rune(row) {
			i, ok := index[r]
			if !ok {
				return pixel.Image{}, fmt.Errorf("asciiimage: character %q at row %d col %d is not in the alphabet", r, y, x)
			}
			v := valueForIndex(i, n)
			im.WriteColor(x, y, pixel.Gray(v))
		}
	}
	return im, nil
}

func unwrapLines(text string) ([]string, error) {
	var out []string
	for i, raw := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		line := strings.TrimRight(raw, "\r")
		if len(line) < 2 || line[0] != '<' || line[len(line)-1] != '>' {
			return nil, fmt.Errorf("asciiimage: line %d is not wrapped in <...>: %q", i, line)
		}
		out = append(out, line[1:len(line)-1])
	}
	return out, nil
}
