package watermark

import "strings"

// Transform maps raw text to display text according to the style. It is
// pure and total: unknown styles return the input unchanged.
func Transform(text string, style Style) string {
	switch style {
	case StyleUpper:
		return strings.ToUpper(text)
	case StyleLower:
		return strings.ToLower(text)
	case StyleSpaced:
		return spaceOut(text)
	case StyleBoxed:
		return "【" + text + "】"
	default:
		return text
	}
}

// spaceOut inserts a single space between every rune of the input.
func spaceOut(text string) string {
	runes := []rune(text)
	if len(runes) < 2 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + len(runes) - 1)
	for i, r := range runes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
