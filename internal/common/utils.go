package common

import "strings"

// Pad left-justifies s by appending spaces up to width. Strings already at or
// beyond width are returned unchanged.
func Pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// IndentLines rewrites embedded line breaks in s so every continuation line
// starts at the given column.
func IndentLines(s string, col int) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	return strings.ReplaceAll(s, "\n", "\n"+strings.Repeat(" ", col))
}
