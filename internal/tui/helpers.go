package tui

import (
	"strings"
	"unicode/utf8"
)

// truncate shortens a string to max runes with ellipsis
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= 3 {
		return string([]rune(s)[:max])
	}
	return string([]rune(s)[:max-3]) + "..."
}

// oneLine flattens multi-line text for table cells
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// wrapIndex keeps i inside [0, n) by wrapping around
func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
