package svg

import (
	"bytes"
	"encoding/xml"
)

// Character width classes as fractions of the font size. These mirror the
// proportions of the Segoe UI / Ubuntu stack the cards render with. The
// estimate only needs to be plausible: downstream sizing clamps against
// per-regime minimums, so a few pixels of error never produce overlap.
const (
	charWidthNarrow  = 0.30 // i l j f t r and punctuation
	charWidthRegular = 0.55 // most lowercase and digits
	charWidthUpper   = 0.70 // uppercase and wide lowercase
	charWidthCJK     = 1.00 // CJK ideographs render as full-width
	spaceWidth       = 0.30
)

// DefaultMeasureFontSize is the font size used for title width estimation.
const DefaultMeasureFontSize = 10

// MeasureText estimates the rendered pixel width of text at fontSize.
func MeasureText(text string, fontSize float64) float64 {
	var units float64
	for _, r := range text {
		switch {
		case r == ' ':
			units += spaceWidth
		case isCJK(r):
			units += charWidthCJK
		case r >= 'A' && r <= 'Z':
			units += charWidthUpper
		case isNarrow(r):
			units += charWidthNarrow
		case r == 'm' || r == 'w':
			units += charWidthUpper
		default:
			units += charWidthRegular
		}
	}
	return units * fontSize
}

func isNarrow(r rune) bool {
	switch r {
	case 'i', 'l', 'j', 'f', 't', 'r', '.', ',', ':', ';', '\'', '|', '!', '(', ')', '[', ']':
		return true
	}
	return false
}

func isCJK(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // CJK unified ideographs
		return true
	case r >= 0x3040 && r <= 0x30FF: // hiragana, katakana
		return true
	case r >= 0xAC00 && r <= 0xD7AF: // hangul syllables
		return true
	}
	return false
}

// EscapeXML escapes a string for safe inclusion in SVG text content
// and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
