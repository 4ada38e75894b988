package internal

import (
	"strings"
	"unicode/utf8"
)

// FormatText applies precision (as a maximum length), width, fill and
// alignment to a text value. Lengths are counted in runes. Width is a minimum:
// longer values are never cut by it.
func FormatText(value string, spec Spec) string {
	if spec.HasPrecision {
		value = truncateRunes(value, spec.Precision)
	}

	length := utf8.RuneCountInString(value)
	if spec.Width <= length {
		return value
	}
	pad := spec.Width - length

	var before, after int
	switch spec.Align {
	case AlignRight:
		before = pad
	case AlignCenter:
		before = pad / 2
		after = pad - before
	default:
		after = pad
	}

	fill := string(spec.FillRune())
	var sb strings.Builder
	sb.Grow(len(value) + pad*len(fill))
	sb.WriteString(strings.Repeat(fill, before))
	sb.WriteString(value)
	sb.WriteString(strings.Repeat(fill, after))
	return sb.String()
}

// truncateRunes keeps at most n runes of s
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
