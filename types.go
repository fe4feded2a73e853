package argparser

import (
	"github.com/pum1k/arg-parser/core"
	"github.com/pum1k/arg-parser/errors"
)

// Option is the capability every command line option implements. The engine
// holds options by reference and never claims ownership; see core.Option for
// the full contract.
type Option = core.Option

// Engine drives the scan of an argument vector over a borrowed option set,
// accumulating unrecognized tokens across Parse calls.
type Engine = core.Engine

// Kind partitions options into the keyword and positional matching classes.
type Kind = core.Kind

const (
	KindPositional = core.KindPositional
	KindKeyword    = core.KindKeyword
)

// ParamsAll is the sentinel parameter count meaning "consume every remaining
// token".
const ParamsAll = core.ParamsAll

// FlagOption is a presence-only keyword option, false by default.
type FlagOption = core.FlagOption

// ConversionError indicates a token could not convert to the requested type.
type ConversionError = errors.ConversionError

// ArgumentCountError indicates insufficient remaining tokens for an option's
// declared parameter count.
type ArgumentCountError = errors.ArgumentCountError

// IllegalArityError indicates a malformed option reporting a negative
// parameter count other than ParamsAll.
type IllegalArityError = errors.IllegalArityError
