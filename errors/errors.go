package errors

import "fmt"

// ConversionError indicates a raw token could not be converted to the type
// requested by an option. Identifier is the matched identifier (or positional
// name) the token was destined for. The wrapped error carries the underlying
// conversion failure.
type ConversionError struct {
	Identifier string
	Token      string
	Err        error
}

func (e ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q for %s: %v", e.Token, e.Identifier, e.Err)
}

func (e ConversionError) Unwrap() error { return e.Err }

// ArgumentCountError indicates fewer tokens remained in the argument vector
// than an option's declared parameter count requires.
type ArgumentCountError struct {
	Identifier string
	Want       int
	Have       int
}

func (e ArgumentCountError) Error() string {
	return fmt.Sprintf("%s requires %d parameter(s), %d remaining", e.Identifier, e.Want, e.Have)
}

// IllegalArityError indicates an option reported a negative parameter count
// other than the consume-all sentinel. This signals malformed option
// construction and should be unreachable with the built-in option types.
type IllegalArityError struct {
	Identifier string
	Count      int
}

func (e IllegalArityError) Error() string {
	return fmt.Sprintf("option %s reports illegal parameter count %d", e.Identifier, e.Count)
}

// Helper constructors
func NewConversion(identifier, token string, err error) error {
	return ConversionError{Identifier: identifier, Token: token, Err: err}
}
func NewArgumentCount(identifier string, want, have int) error {
	return ArgumentCountError{Identifier: identifier, Want: want, Have: have}
}
func NewIllegalArity(identifier string, count int) error {
	return IllegalArityError{Identifier: identifier, Count: count}
}
