package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/pum1k/arg-parser/core"
	"github.com/pum1k/arg-parser/internal/common"
)

const (
	// DefaultMinWidth is the minimum label column width for help entries.
	DefaultMinWidth = 25
	// KeywordMinWidth is a narrower column suited to option sets containing
	// keyword options only, whose labels tend to be short.
	KeywordMinWidth = 15
)

// Fprint writes a usage line and one aligned entry per option to w.
//
// The usage line shows the command name, a generic "<options>" placeholder
// when any keyword option exists, and each positional label in declaration
// order, bracketed when optional. Every option then gets one entry: its label
// left-justified and padded to minWidth, followed by its description. Labels
// that do not fit push the description onto the next line, indented to the
// same column; embedded line breaks in descriptions are re-indented likewise.
//
// Rendering reads option state but never mutates it.
func Fprint(w io.Writer, cmd string, opts []core.Option, minWidth int) {
	var builder strings.Builder

	builder.WriteString(ansiHelp("Usage:", ansiBold, ansiUnderline) + " ")
	builder.WriteString(ansiHelp(cmd, ansiBold))
	if hasKeyword(opts) {
		builder.WriteString(" <options>")
	}
	for _, opt := range opts {
		if opt.Kind() != core.KindPositional {
			continue
		}
		label, _ := opt.Help()
		builder.WriteString(" " + label)
	}
	builder.WriteString("\n")

	col := 2 + minWidth
	for _, opt := range opts {
		label, desc := opt.Help()
		builder.WriteString("  ")
		if len(label) >= minWidth {
			builder.WriteString(label)
			builder.WriteString("\n")
			builder.WriteString(strings.Repeat(" ", col))
		} else {
			builder.WriteString(common.Pad(label, minWidth))
		}
		builder.WriteString(common.IndentLines(desc, col))
		builder.WriteString("\n")
	}

	fmt.Fprint(w, builder.String())
}

// hasKeyword reports whether any option matches by identifier.
func hasKeyword(opts []core.Option) bool {
	for _, opt := range opts {
		if opt.Kind() == core.KindKeyword {
			return true
		}
	}
	return false
}
