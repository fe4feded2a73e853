package core

// ParamsAll is the sentinel parameter count for options that consume every
// remaining token of the argument vector. An option declared after a variadic
// one becomes unreachable once the variadic option fires.
const ParamsAll = -1

// Kind partitions options into the two matching classes. During dispatch all
// keyword options are tried before any positional one.
type Kind int

const (
	KindPositional Kind = iota
	KindKeyword
)

// Option is the capability every command line option implements.
//
// The engine calls Matches to find the option claiming a token, ParamCount to
// learn how many following tokens belong to it, and Parse to convert and
// store the value. Parse is the sole mutator.
type Option interface {
	// Matches reports whether the option claims the given token. It must be a
	// pure predicate and must not mutate the option.
	Matches(token string) bool

	// ParamCount returns the number of tokens following the matched one that
	// belong to this option: 0 for flags, N for fixed parameter counts, or
	// ParamsAll to consume every remaining token.
	ParamCount() int

	// Parse converts the raw tokens and stores the resulting value.
	// tokens[0] is the matched token, included so conversion failures can
	// report which identifier triggered them; the rest are the parameters
	// requested via ParamCount. On success the option is marked set, even
	// when the stored value equals the default.
	Parse(tokens []string) error

	// IsSet reports whether Parse has succeeded at least once. Once true it
	// never reverts.
	IsSet() bool

	// Help returns the option label and a brief description.
	Help() (label, description string)

	// Kind reports whether the option matches by identifier or by position.
	Kind() Kind
}
