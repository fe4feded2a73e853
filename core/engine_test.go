package core

import (
	stderrs "errors"
	"testing"

	"github.com/chriso345/gore/assert"
	"github.com/google/go-cmp/cmp"

	clierr "github.com/pum1k/arg-parser/errors"
)

func TestParse_AllUnrecognized(t *testing.T) {
	opt := NewKeyword([]string{"--x"}, "", 0)
	engine := NewEngine([]Option{opt})

	ok, err := engine.Parse([]string{"cmd", "a", "b", "c"})
	assert.Nil(t, err)
	assert.Equal(t, ok, false)
	if diff := cmp.Diff([]string{"a", "b", "c"}, engine.Unrecognized()); diff != "" {
		t.Errorf("unrecognized mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, opt.IsSet(), false)
}

func TestParse_KeywordValue(t *testing.T) {
	x := NewKeyword([]string{"--x"}, "", 0)
	other := NewKeyword([]string{"--y"}, "", 0)
	engine := NewEngine([]Option{x, other})

	ok, err := engine.Parse([]string{"cmd", "--x", "5"})
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.True(t, x.IsSet())
	assert.Equal(t, x.Value(), 5)
	assert.Equal(t, other.IsSet(), false)
}

func TestParse_PositionalDeclarationOrder(t *testing.T) {
	p1 := NewPositional("first", "", true, "")
	p2 := NewPositional("second", "", true, "")
	engine := NewEngine([]Option{p1, p2})

	ok, err := engine.Parse([]string{"cmd", "a", "b"})
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, p1.Value(), "a")
	assert.Equal(t, p2.Value(), "b")
}

func TestParse_KeywordBeforePositional(t *testing.T) {
	x := NewKeyword([]string{"--x"}, "", 0)
	pos := NewPositional("value", "", false, "")
	engine := NewEngine([]Option{pos, x})

	ok, err := engine.Parse([]string{"cmd", "--x", "5"})
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.True(t, x.IsSet())
	assert.Equal(t, x.Value(), 5)
	assert.Equal(t, pos.IsSet(), false)
}

func TestParse_PositionalAbsorbsUnknownKeywordLookalike(t *testing.T) {
	x := NewKeyword([]string{"--x"}, "", 0)
	pos := NewPositional("value", "", false, "")
	engine := NewEngine([]Option{x, pos})

	ok, err := engine.Parse([]string{"cmd", "--typo"})
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.True(t, pos.IsSet())
	assert.Equal(t, pos.Value(), "--typo")
}

func TestParse_VariadicConsumesRemainder(t *testing.T) {
	tail := NewVariadic[string]([]string{"--tail"}, "")
	after := NewPositional("after", "", false, "")
	engine := NewEngine([]Option{tail, after})

	ok, err := engine.Parse([]string{"cmd", "--tail", "p", "q", "r"})
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.True(t, tail.IsSet())
	if diff := cmp.Diff([]string{"p", "q", "r"}, tail.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, after.IsSet(), false)
}

func TestParse_ArgumentCountError(t *testing.T) {
	x := NewKeyword([]string{"--x"}, "", 0)
	engine := NewEngine([]Option{x})

	_, err := engine.Parse([]string{"cmd", "--x"})
	assert.NotNil(t, err)
	var ce clierr.ArgumentCountError
	ok := stderrs.As(err, &ce)
	assert.True(t, ok)
	assert.Equal(t, ce.Identifier, "--x")
	assert.Equal(t, ce.Want, 1)
	assert.Equal(t, ce.Have, 0)
	assert.Equal(t, x.IsSet(), false)
}

func TestParse_FlagConsumesNoTokens(t *testing.T) {
	flag := NewFlag([]string{"--flag"}, "")
	pos := NewPositional("next", "", false, "")
	engine := NewEngine([]Option{flag, pos})

	ok, err := engine.Parse([]string{"cmd", "--flag", "next"})
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.True(t, flag.Value())
	assert.Equal(t, pos.Value(), "next")
}

func TestParse_IsSetNeverReverts(t *testing.T) {
	x := NewKeyword([]string{"--x"}, "", 0)
	engine := NewEngine([]Option{x})

	_, err := engine.Parse([]string{"cmd", "--x", "5"})
	assert.Nil(t, err)
	assert.True(t, x.IsSet())

	// A later failing conversion must not clear the set state.
	_, err = engine.Parse([]string{"cmd", "--x", "nope"})
	assert.NotNil(t, err)
	assert.True(t, x.IsSet())
	assert.Equal(t, x.Value(), 5)
}

func TestParse_UnrecognizedAccumulates(t *testing.T) {
	engine := NewEngine([]Option{NewFlag([]string{"-v"}, "")})

	ok, err := engine.Parse([]string{"cmd", "a"})
	assert.Nil(t, err)
	assert.Equal(t, ok, false)
	ok, err = engine.Parse([]string{"cmd", "b"})
	assert.Nil(t, err)
	assert.Equal(t, ok, false)
	if diff := cmp.Diff([]string{"a", "b"}, engine.Unrecognized()); diff != "" {
		t.Errorf("unrecognized mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_NoRollbackOnConversionError(t *testing.T) {
	a := NewKeyword([]string{"--a"}, "", "")
	b := NewKeyword([]string{"--b"}, "", 0)
	engine := NewEngine([]Option{a, b})

	_, err := engine.Parse([]string{"cmd", "--a", "v", "--b", "oops"})
	assert.NotNil(t, err)
	var ce clierr.ConversionError
	ok := stderrs.As(err, &ce)
	assert.True(t, ok)
	assert.Equal(t, ce.Identifier, "--b")
	assert.Equal(t, ce.Token, "oops")
	// --a was applied before the failure and stays applied.
	assert.True(t, a.IsSet())
	assert.Equal(t, a.Value(), "v")
	assert.Equal(t, b.IsSet(), false)
}

func TestParse_SkipOffset(t *testing.T) {
	pos := NewPositional("value", "", true, "")
	engine := NewEngine([]Option{pos})
	engine.SetSkip(0)

	ok, err := engine.Parse([]string{"first"})
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, pos.Value(), "first")
}

func TestParse_DuplicateIdentifierFirstDeclaredWins(t *testing.T) {
	first := NewKeyword([]string{"--x"}, "", 0)
	second := NewKeyword([]string{"--x"}, "", 0)
	engine := NewEngine([]Option{first, second})

	ok, err := engine.Parse([]string{"cmd", "--x", "7"})
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.True(t, first.IsSet())
	assert.Equal(t, second.IsSet(), false)
}

func TestParse_SetEvenWhenValueEqualsDefault(t *testing.T) {
	x := NewKeyword([]string{"--x"}, "", 5)
	engine := NewEngine([]Option{x})

	ok, err := engine.Parse([]string{"cmd", "--x", "5"})
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.True(t, x.IsSet())
}

// brokenOption reports a negative parameter count other than ParamsAll.
type brokenOption struct{}

func (brokenOption) Matches(string) bool    { return true }
func (brokenOption) ParamCount() int        { return -2 }
func (brokenOption) Parse([]string) error   { return nil }
func (brokenOption) IsSet() bool            { return false }
func (brokenOption) Help() (string, string) { return "broken", "" }
func (brokenOption) Kind() Kind             { return KindKeyword }

func TestParse_IllegalArity(t *testing.T) {
	engine := NewEngine([]Option{brokenOption{}})

	_, err := engine.Parse([]string{"cmd", "anything"})
	assert.NotNil(t, err)
	var ie clierr.IllegalArityError
	ok := stderrs.As(err, &ie)
	assert.True(t, ok)
	assert.Equal(t, ie.Count, -2)
}
