// Package derive computes the layout-specific extra fields appended after the
// schema fields: suffix slices for the subject stream, hour truncation and the
// class letter for the content stream.
package derive

// subjectWidth is the character width the subject text is right-aligned to
// before taking suffixes. It matches the byte width of the TXTT field.
const subjectWidth = 210

// RightAlign pads s on the left with ASCII spaces to width characters.
// Strings already at or past the width are returned unchanged. Width is
// counted in runes, not bytes, because the subject text is double-byte.
func RightAlign(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	padded := make([]rune, width)
	pad := width - len(runes)
	for i := 0; i < pad; i++ {
		padded[i] = ' '
	}
	copy(padded[pad:], runes)
	return string(padded)
}

// Suffixes right-aligns the subject text to 210 characters and returns its
// trailing 2 and trailing 4 characters. These are output fields and also feed
// the classifier's fallback rule.
func Suffixes(subject string) (suffix2, suffix4 string) {
	runes := []rune(RightAlign(subject, subjectWidth))
	return string(runes[len(runes)-2:]), string(runes[len(runes)-4:])
}

// HourComponent drops the seconds from a packed HHMMSS time, e.g.
// 213440 → 2134. Null propagates.
func HourComponent(hhmmss *int64) *int64 {
	if hhmmss == nil {
		return nil
	}
	hm := *hhmmss / 100
	return &hm
}

// ClassLetter returns the first character of a classification code, or the
// empty string when the code is empty.
func ClassLetter(code string) string {
	for _, r := range code {
		return string(r)
	}
	return ""
}
