package clip

import (
	"strings"
	"unicode"
)

// NormalizeKey lowercases a label and strips all whitespace so lookups are
// forgiving about casing and spacing. Used for comparison only, never for
// storage or display.
func NormalizeKey(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// SanitizeLabel reduces a label to its letters and digits so it is safe to
// use in file and directory names. Labels that sanitize to nothing fall back
// to "Unknown".
func SanitizeLabel(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "Unknown"
	}
	return b.String()
}
