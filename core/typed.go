package core

import (
	"slices"
	"strings"

	"github.com/pum1k/arg-parser/errors"
	"github.com/pum1k/arg-parser/internal/common"
)

// ScanFunc converts a single raw token into a value of type T. Supplying one
// is the only step needed to support a new scalar type; matching, parameter
// counting and dispatch are unaffected.
type ScanFunc[T any] func(token string) (T, error)

// scanToken applies fn when present, falling back to the generic converter.
func scanToken[T any](fn ScanFunc[T], token string) (T, error) {
	if fn != nil {
		return fn(token)
	}
	var v T
	err := common.Scan(token, &v)
	return v, err
}

// PositionalOption is an option filled by declaration order, not by token
// content: it claims whatever token reaches it while unset. The matched token
// itself is the value, so no further tokens are consumed.
type PositionalOption[T any] struct {
	name     string
	help     string
	required bool
	set      bool
	val      T
	scan     ScanFunc[T]
}

// NewPositional declares a positional option with the given default value.
// The required flag only affects help rendering; parsing never enforces it.
func NewPositional[T any](name, help string, required bool, def T) *PositionalOption[T] {
	return &PositionalOption[T]{name: name, help: help, required: required, val: def}
}

// WithScan installs a custom converter and returns the option for chaining.
func (o *PositionalOption[T]) WithScan(fn ScanFunc[T]) *PositionalOption[T] {
	o.scan = fn
	return o
}

// Matches claims any token while the option is unset, regardless of content.
// A mistyped keyword-looking token that no keyword option claims will fill a
// positional slot; rejecting dash-prefixed tokens here would forbid
// legitimate values like "-1".
func (o *PositionalOption[T]) Matches(string) bool { return !o.set }

func (o *PositionalOption[T]) ParamCount() int { return 0 }

func (o *PositionalOption[T]) Parse(tokens []string) error {
	v, err := scanToken(o.scan, tokens[0])
	if err != nil {
		return errors.NewConversion(o.name, tokens[0], err)
	}
	o.val = v
	o.set = true
	return nil
}

func (o *PositionalOption[T]) IsSet() bool { return o.set }

func (o *PositionalOption[T]) Help() (string, string) {
	if o.required {
		return o.name, o.help
	}
	return "[" + o.name + "]", o.help
}

func (o *PositionalOption[T]) Kind() Kind { return KindPositional }

// Value returns the converted value, or the default while unset.
func (o *PositionalOption[T]) Value() T { return o.val }

// KeywordOption is an option matched by exact string equality against any of
// its identifiers. It consumes one following token as its value.
type KeywordOption[T any] struct {
	identifiers []string
	help        string
	set         bool
	val         T
	scan        ScanFunc[T]
}

// NewKeyword declares a keyword option with the given default value.
func NewKeyword[T any](identifiers []string, help string, def T) *KeywordOption[T] {
	return &KeywordOption[T]{identifiers: identifiers, help: help, val: def}
}

// WithScan installs a custom converter and returns the option for chaining.
func (o *KeywordOption[T]) WithScan(fn ScanFunc[T]) *KeywordOption[T] {
	o.scan = fn
	return o
}

func (o *KeywordOption[T]) Matches(token string) bool {
	return slices.Contains(o.identifiers, token)
}

func (o *KeywordOption[T]) ParamCount() int { return 1 }

func (o *KeywordOption[T]) Parse(tokens []string) error {
	v, err := scanToken(o.scan, tokens[1])
	if err != nil {
		return errors.NewConversion(tokens[0], tokens[1], err)
	}
	o.val = v
	o.set = true
	return nil
}

func (o *KeywordOption[T]) IsSet() bool { return o.set }

func (o *KeywordOption[T]) Help() (string, string) {
	return strings.Join(o.identifiers, ", "), o.help
}

func (o *KeywordOption[T]) Kind() Kind { return KindKeyword }

// Value returns the converted value, or the default while unset.
func (o *KeywordOption[T]) Value() T { return o.val }

// FlagOption is a presence-only keyword option. It consumes no further tokens
// and becomes true when matched; the default is false.
type FlagOption struct {
	identifiers []string
	help        string
	set         bool
	val         bool
}

// NewFlag declares a boolean flag.
func NewFlag(identifiers []string, help string) *FlagOption {
	return &FlagOption{identifiers: identifiers, help: help}
}

func (o *FlagOption) Matches(token string) bool {
	return slices.Contains(o.identifiers, token)
}

func (o *FlagOption) ParamCount() int { return 0 }

func (o *FlagOption) Parse([]string) error {
	o.val = true
	o.set = true
	return nil
}

func (o *FlagOption) IsSet() bool { return o.set }

func (o *FlagOption) Help() (string, string) {
	return strings.Join(o.identifiers, ", "), o.help
}

func (o *FlagOption) Kind() Kind { return KindKeyword }

// Value reports whether the flag was seen.
func (o *FlagOption) Value() bool { return o.val }

// VariadicOption is a keyword option consuming every remaining token of the
// argument vector. It is intended to be the last reachable option.
type VariadicOption[T any] struct {
	identifiers []string
	help        string
	set         bool
	vals        []T
	scan        ScanFunc[T]
}

// NewVariadic declares a consume-all keyword option.
func NewVariadic[T any](identifiers []string, help string) *VariadicOption[T] {
	return &VariadicOption[T]{identifiers: identifiers, help: help}
}

// WithScan installs a custom converter and returns the option for chaining.
func (o *VariadicOption[T]) WithScan(fn ScanFunc[T]) *VariadicOption[T] {
	o.scan = fn
	return o
}

func (o *VariadicOption[T]) Matches(token string) bool {
	return slices.Contains(o.identifiers, token)
}

func (o *VariadicOption[T]) ParamCount() int { return ParamsAll }

func (o *VariadicOption[T]) Parse(tokens []string) error {
	vals := make([]T, 0, len(tokens)-1)
	for _, tok := range tokens[1:] {
		v, err := scanToken(o.scan, tok)
		if err != nil {
			return errors.NewConversion(tokens[0], tok, err)
		}
		vals = append(vals, v)
	}
	o.vals = vals
	o.set = true
	return nil
}

func (o *VariadicOption[T]) IsSet() bool { return o.set }

func (o *VariadicOption[T]) Help() (string, string) {
	return strings.Join(o.identifiers, ", "), o.help
}

func (o *VariadicOption[T]) Kind() Kind { return KindKeyword }

// Values returns the converted tokens, nil while unset.
func (o *VariadicOption[T]) Values() []T { return o.vals }
