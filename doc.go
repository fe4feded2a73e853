// Package argparser converts a raw argument vector into typed, validated
// values for a caller-declared set of options.
//
// Options come in two kinds: keyword options, matched by exact identifier
// equality (flags, "--name value" pairs, consume-all tails), and positional
// options, filled in declaration order by whatever token reaches them.
// Keyword options always take precedence, so a positional slot never absorbs
// a declared identifier. Tokens claimed by no option are not errors; they are
// collected in order and exposed for the caller to inspect.
//
// The library also renders aligned, wrapped help text from the same option
// declarations. It is consumed by command line tools and reads nothing from
// the operating system itself.
package argparser

//go:generate gomarkdoc ./ -o docs/argparser.md
