package core

import "github.com/pum1k/arg-parser/errors"

// DefaultSkip is the number of leading argument vector tokens ignored by
// default; argv conventionally starts with the invoked program name.
const DefaultSkip = 1

// Engine drives a left-to-right scan of an argument vector against a set of
// options. The option slice is borrowed: the caller keeps ownership and the
// engine must not outlive it. Options are mutated in place during Parse, so
// concurrent Parse calls on the same option set require external
// synchronization.
type Engine struct {
	opts         []Option
	skip         int
	unrecognized []string
}

// NewEngine returns an engine over the caller's option set, skipping
// DefaultSkip leading tokens on each Parse call.
func NewEngine(opts []Option) *Engine {
	return &Engine{opts: opts, skip: DefaultSkip}
}

// SetSkip changes the number of leading tokens ignored by Parse.
func (e *Engine) SetSkip(n int) { e.skip = n }

// Parse scans argv, dispatching each token to the first option claiming it.
// Tokens claimed by no option are collected and the scan continues past
// them; they are not errors. Conversion and argument count failures abort the
// scan immediately, with options applied before the failure left applied.
//
// The returned flag is true iff the cumulative unrecognized list is empty
// after the scan.
func (e *Engine) Parse(argv []string) (bool, error) {
	i := e.skip
	if i < 0 {
		i = 0
	}
	for i < len(argv) {
		opt := matchOption(argv[i], e.opts)
		if opt == nil {
			e.unrecognized = append(e.unrecognized, argv[i])
			i++
			continue
		}

		n := opt.ParamCount()
		switch {
		case n == ParamsAll:
			if err := opt.Parse(argv[i:]); err != nil {
				return false, err
			}
			i = len(argv)
		case n < 0:
			label, _ := opt.Help()
			return false, errors.NewIllegalArity(label, n)
		default:
			if i+n >= len(argv) {
				return false, errors.NewArgumentCount(argv[i], n, len(argv)-i-1)
			}
			if err := opt.Parse(argv[i : i+n+1]); err != nil {
				return false, err
			}
			i += n + 1
		}
	}
	return len(e.unrecognized) == 0, nil
}

// Unrecognized returns the tokens claimed by no option, in input order.
// The list accumulates across Parse calls and is never cleared.
func (e *Engine) Unrecognized() []string { return e.unrecognized }
