// Package format turns fortune fields into display lines for narrow
// vertical columns.
package format

import (
	"regexp"
	"strings"
	"unicode"
)

// LineBreak separates display lines in a formatted value.
const LineBreak = "\n"

// itemSeparator matches an ideographic comma together with any whitespace
// around it, full-width spaces included.
var itemSeparator = regexp.MustCompile(`[\s\v\p{Zs}]*、[\s\v\p{Zs}]*`)

// Category formats a category value. Comma-separated items go on their own
// lines unless the value is already split. With forceTwoLines, a single-line
// value longer than two characters is broken at its midpoint, the first half
// taking the extra character.
func Category(value string, forceTwoLines bool) string {
	if value == "" {
		return ""
	}

	base := value
	if !strings.Contains(value, LineBreak) {
		base = itemSeparator.ReplaceAllString(value, LineBreak)
	}
	trimmed := strings.TrimSpace(base)

	if !forceTwoLines || strings.Contains(trimmed, LineBreak) {
		return trimmed
	}

	compact := []rune(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, trimmed))
	if len(compact) <= 2 {
		return string(compact)
	}

	mid := (len(compact) + 1) / 2
	return string(compact[:mid]) + LineBreak + string(compact[mid:])
}

// Lines splits a formatted value into its display lines.
func Lines(formatted string) []string {
	if formatted == "" {
		return nil
	}
	return strings.Split(formatted, LineBreak)
}

// Details joins detail lines into a single formatted block.
func Details(details []string) string {
	return strings.Join(details, LineBreak)
}
