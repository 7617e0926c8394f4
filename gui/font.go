package gui

import "github.com/dfpsr-go/softcanvas/pixel"

// glyphWidth and glyphHeight describe the built-in monospace bitmap font's
// fixed cell size. A themed, variable-width font loaded from an image
// atlas is a natural follow-up but is not implemented here: this font
// exists so labels and buttons have legible text without pulling in a
// font rendering dependency the example pack doesn't carry.
const (
	glyphWidth  = 4
	glyphHeight = 6
)

// DrawText blits s starting at (x, y) in the built-in monospace font,
// wrapping to the next line on '\n'. Characters outside the font's table
// render as a blank cell rather than failing.
func DrawText(target pixel.Image, x, y int, s string, color pixel.Color) {
	cx, cy := x, y
	for _, r := range s {
		if r == '\n' {
			cx = x
			cy += glyphHeight + 1
			continue
		}
		drawGlyph(target, cx, cy, r, color)
		cx += glyphWidth + 1
	}
}

// MeasureText returns the pixel width and height DrawText would occupy for
// s, for layout code that needs to center or fit text.
func MeasureText(s string) (width, height int) {
	lineWidth, maxWidth, lines := 0, 0, 1
	for _, r := range s {
		if r == '\n' {
			lines++
			if lineWidth > maxWidth {
				maxWidth = lineWidth
			}
			lineWidth = 0
			continue
		}
		lineWidth += glyphWidth + 1
	}
	if lineWidth > maxWidth {
		maxWidth = lineWidth
	}
	return maxWidth, lines * (glyphHeight + 1)
}

// WrapText splits s into lines that each fit within maxWidth pixels,
// breaking between words rather than mid-word wherever a break is
// available. A single word wider than maxWidth on its own is broken
// mid-word, since there is no narrower unit left to break on. Explicit
// '\n' in s always starts a new line, same as DrawText.
func WrapText(s string, maxWidth int) []string {
	charWidth := glyphWidth + 1
	var lines []string
	for _, paragraph := range splitLines(s) {
		lines = append(lines, wrapParagraph(paragraph, maxWidth, charWidth)...)
	}
	return lines
}

func splitLines(s string) []string {
	var out []string
	start := 0
	runes := []rune(s)
	for i, r := range runes {
		if r == '\n' {
			out = append(out, string(runes[start:i]))
			start = i + 1
		}
	}
	return append(out, string(runes[start:]))
}

func wrapParagraph(paragraph string, maxWidth, charWidth int) []string {
	words := splitWords(paragraph)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line, lineWidth := "", 0
	for _, word := range words {
		wordWidth := runeCount(word) * charWidth
		if lineWidth > 0 {
			if lineWidth+charWidth+wordWidth > maxWidth {
				lines = append(lines, line)
				line, lineWidth = "", 0
			} else {
				line += " "
				lineWidth += charWidth
			}
		}
		for wordWidth > maxWidth {
			fitCount := maxWidth / charWidth
			if fitCount < 1 {
				fitCount = 1
			}
			wr := []rune(word)
			if fitCount >= len(wr) {
				break
			}
			lines = append(lines, line+string(wr[:fitCount]))
			word = string(wr[fitCount:])
			wordWidth = runeCount(word) * charWidth
			line, lineWidth = "", 0
		}
		line += word
		lineWidth += wordWidth
	}
	lines = append(lines, line)
	return lines
}

func splitWords(s string) []string {
	var words []string
	start := -1
	runes := []rune(s)
	for i, r := range runes {
		if r == ' ' {
			if start >= 0 {
				words = append(words, string(runes[start:i]))
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, string(runes[start:]))
	}
	return words
}

func runeCount(s string) int { return len([]rune(s)) }

// DrawTextWrapped draws s word-wrapped to fit within bound's width, one
// line per WrapText line, stopping once a line would fall below bound's
// bottom edge.
func DrawTextWrapped(target pixel.Image, bound pixel.Rect, s string, color pixel.Color) {
	lines := WrapText(s, bound.Width())
	y := bound.Top
	for _, line := range lines {
		if y+glyphHeight > bound.Bottom {
			return
		}
		DrawText(target, bound.Left, y, line, color)
		y += glyphHeight + 1
	}
}

// MeasureWrapped returns the pixel size DrawTextWrapped would occupy for s
// wrapped to maxWidth.
func MeasureWrapped(s string, maxWidth int) (width, height int) {
	lines := WrapText(s, maxWidth)
	maxLine := 0
	for _, line := range lines {
		w, _ := MeasureText(line)
		if w > maxLine {
			maxLine = w
		}
	}
	return maxLine, len(lines) * (glyphHeight + 1)
}

func drawGlyph(target pixel.Image, x, y int, r rune, color pixel.Color) {
	rows, ok := glyphTable[r]
	if !ok {
		if r >= 'a' && r <= 'z' {
			rows, ok = glyphTable[r-'a'+'A']
		}
		if !ok {
			return
		}
	}
	for dy, row := range rows {
		for dx := 0; dx < glyphWidth; dx++ {
			if row&(1<<uint(glyphWidth-1-dx)) != 0 {
				target.WriteClip(x+dx, y+dy, color)
			}
		}
	}
}

// glyphTable is a minimal 4x6 bitmap font covering digits, uppercase
// letters and a handful of punctuation marks used by component labels.
// Each entry is glyphHeight rows of glyphWidth bits, MSB first.
var glyphTable = map[rune][]byte{
	' ': {0, 0, 0, 0, 0, 0},
	'.': {0, 0, 0, 0, 0, 0b0100},
	',': {0, 0, 0, 0, 0b0100, 0b1000},
	':': {0, 0b0100, 0, 0, 0b0100, 0},
	'-': {0, 0, 0b1110, 0, 0, 0},
	'0': {0b0110, 0b1001, 0b1001, 0b1001, 0b1001, 0b0110},
	'1': {0b0010, 0b0110, 0b0010, 0b0010, 0b0010, 0b0111},
	'2': {0b0110, 0b1001, 0b0010, 0b0100, 0b1000, 0b1111},
	'3': {0b1110, 0b0001, 0b0110, 0b0001, 0b1001, 0b0110},
	'4': {0b0010, 0b0110, 0b1010, 0b1111, 0b0010, 0b0010},
	'5': {0b1111, 0b1000, 0b1110, 0b0001, 0b1001, 0b0110},
	'6': {0b0110, 0b1000, 0b1110, 0b1001, 0b1001, 0b0110},
	'7': {0b1111, 0b0001, 0b0010, 0b0100, 0b0100, 0b0100},
	'8': {0b0110, 0b1001, 0b0110, 0b1001, 0b1001, 0b0110},
	'9': {0b0110, 0b1001, 0b1001, 0b0111, 0b0001, 0b0110},
	'A': {0b0110, 0b1001, 0b1001, 0b1111, 0b1001, 0b1001},
	'B': {0b1110, 0b1001, 0b1110, 0b1001, 0b1001, 0b1110},
	'C': {0b0110, 0b1001, 0b1000, 0b1000, 0b1001, 0b0110},
	'D': {0b1110, 0b1001, 0b1001, 0b1001, 0b1001, 0b1110},
	'E': {0b1111, 0b1000, 0b1110, 0b1000, 0b1000, 0b1111},
	'F': {0b1111, 0b1000, 0b1110, 0b1000, 0b1000, 0b1000},
	'G': {0b0110, 0b1000, 0b1011, 0b1001, 0b1001, 0b0110},
	'H': {0b1001, 0b1001, 0b1111, 0b1001, 0b1001, 0b1001},
	'I': {0b0111, 0b0010, 0b0010, 0b0010, 0b0010, 0b0111},
	'J': {0b0001, 0b0001, 0b0001, 0b0001, 0b1001, 0b0110},
	'K': {0b1001, 0b1010, 0b1100, 0b1100, 0b1010, 0b1001},
	'L': {0b1000, 0b1000, 0b1000, 0b1000, 0b1000, 0b1111},
	'M': {0b1001, 0b1111, 0b1111, 0b1001, 0b1001, 0b1001},
	'N': {0b1001, 0b1101, 0b1111, 0b1011, 0b1001, 0b1001},
	'O': {0b0110, 0b1001, 0b1001, 0b1001, 0b1001, 0b0110},
	'P': {0b1110, 0b1001, 0b1110, 0b1000, 0b1000, 0b1000},
	'Q': {0b0110, 0b1001, 0b1001, 0b1001, 0b1011, 0b0111},
	'R': {0b1110, 0b1001, 0b1110, 0b1100, 0b1010, 0b1001},
	'S': {0b0111, 0b1000, 0b0110, 0b0001, 0b0001, 0b1110},
	'T': {0b1111, 0b0100, 0b0100, 0b0100, 0b0100, 0b0100},
	'U': {0b1001, 0b1001, 0b1001, 0b1001, 0b1001, 0b0110},
	'V': {0b1001, 0b1001, 0b1001, 0b1001, 0b0110, 0b0110},
	'W': {0b1001, 0b1001, 0b1001, 0b1111, 0b1111, 0b1001},
	'X': {0b1001, 0b1001, 0b0110, 0b0110, 0b1001, 0b1001},
	'Y': {0b1001, 0b1001, 0b0110, 0b0100, 0b0100, 0b0100},
	'Z': {0b1111, 0b0001, 0b0010, 0b0100, 0b1000, 0b1111},
}
