package display

import "github.com/fatih/color"

const (
	ansiBold      = color.Bold
	ansiUnderline = color.Underline
)

// ansiHelp styles s for help output. Styling collapses to plain text when the
// destination is not a terminal or NO_COLOR is set.
func ansiHelp(s string, attrs ...color.Attribute) string {
	return color.New(attrs...).Sprint(s)
}
