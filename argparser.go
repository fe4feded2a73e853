package argparser

import (
	"io"

	"github.com/pum1k/arg-parser/core"
	"github.com/pum1k/arg-parser/display"
)

// NewEngine returns a reusable parsing engine over the caller's option set.
// The engine skips the leading program-name token by default; use SetSkip to
// change that.
var NewEngine = core.NewEngine

// BuildVersion returns a formatted version string for a CLI tool, inferring
// the version from build metadata when none is given.
var BuildVersion = display.BuildVersion

// String declares a positional string option filled verbatim from the token
// that reaches it.
func String(name, help string, required bool, def string) *core.PositionalOption[string] {
	return core.NewPositional(name, help, required, def)
}

// Int declares a positional integer option.
func Int(name, help string, required bool, def int) *core.PositionalOption[int] {
	return core.NewPositional(name, help, required, def)
}

// Float64 declares a positional floating point option.
func Float64(name, help string, required bool, def float64) *core.PositionalOption[float64] {
	return core.NewPositional(name, help, required, def)
}

// StringOpt declares a keyword option taking one value, stored verbatim.
func StringOpt(identifiers []string, help, def string) *core.KeywordOption[string] {
	return core.NewKeyword(identifiers, help, def)
}

// IntOpt declares a keyword option taking one integer value.
func IntOpt(identifiers []string, help string, def int) *core.KeywordOption[int] {
	return core.NewKeyword(identifiers, help, def)
}

// Float64Opt declares a keyword option taking one floating point value.
func Float64Opt(identifiers []string, help string, def float64) *core.KeywordOption[float64] {
	return core.NewKeyword(identifiers, help, def)
}

// Flag declares a presence-only keyword option, false by default.
func Flag(identifiers []string, help string) *core.FlagOption {
	return core.NewFlag(identifiers, help)
}

// Tail declares a keyword option consuming every remaining token verbatim.
func Tail(identifiers []string, help string) *core.VariadicOption[string] {
	return core.NewVariadic[string](identifiers, help)
}

// Parse is a one-shot convenience over NewEngine: it scans argv (skipping the
// leading program-name token), reports whether every token was recognized,
// and returns the unrecognized tokens in input order.
func Parse(argv []string, opts []Option) (bool, []string, error) {
	engine := core.NewEngine(opts)
	ok, err := engine.Parse(argv)
	return ok, engine.Unrecognized(), err
}

// PrintHelp renders usage and option entries for cmd to w, using the
// narrower column width when the option set contains keyword options only.
func PrintHelp(w io.Writer, cmd string, opts []Option) {
	minWidth := display.DefaultMinWidth
	if len(opts) > 0 && !hasPositional(opts) {
		minWidth = display.KeywordMinWidth
	}
	display.Fprint(w, cmd, opts, minWidth)
}

func hasPositional(opts []Option) bool {
	for _, opt := range opts {
		if opt.Kind() == core.KindPositional {
			return true
		}
	}
	return false
}
