package validator

import (
	"context"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BoolValidator parses boolean parameters using a case-insensitive table of
// match strings.
type BoolValidator struct {
	matches              map[string]bool
	acceptInvalidAsFalse bool
}

// Bool returns a boolean validator matching true/false and on/off.
func Bool() *BoolValidator {
	return &BoolValidator{
		matches: map[string]bool{
			"true":  true,
			"false": false,
			"on":    true,
			"off":   false,
		},
	}
}

// MatchStrings replaces the whole match table, dropping the defaults.
func (v *BoolValidator) MatchStrings(matches map[string]bool) *BoolValidator {
	v.matches = make(map[string]bool, len(matches))
	return v.AddMatchStrings(matches)
}

// AddMatchStrings merges matches into the current table.
// Keys differing only in case overwrite each other.
func (v *BoolValidator) AddMatchStrings(matches map[string]bool) *BoolValidator {
	for key, val := range matches {
		v.matches[lower(key)] = val
	}
	return v
}

// AcceptInvalidAsFalse makes unmatched input resolve to false instead of
// failing with KindInvalidBool.
func (v *BoolValidator) AcceptInvalidAsFalse() *BoolValidator {
	v.acceptInvalidAsFalse = true
	return v
}

func (v *BoolValidator) Validate(_ context.Context, p Param) Result {
	if val, ok := v.matches[lower(p.Value)]; ok {
		return Valid(val)
	}
	if v.acceptInvalidAsFalse {
		return Valid(false)
	}
	return Invalid(KindInvalidBool, "The provided value does not represent a boolean")
}

// Casers keep internal state, so a fresh one is built per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
