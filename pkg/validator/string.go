package validator

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Character lists for use with RequiredCharacters and DenyCharacters.
var (
	Letters                   = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	Numbers                   = []rune("0123456789")
	LettersNumbers            = slices.Concat(Letters, Numbers)
	LettersNumbersUnderscores = slices.Concat(LettersNumbers, []rune{'_'})
	LettersNumbersSpaces      = slices.Concat(LettersNumbers, []rune{' '})
	NewlineTabReturn          = []rune{'\n', '\t', '\r'}
)

type caseTransform int

const (
	keepCase caseTransform = iota
	toLower
	toUpper
)

// StringValidator transforms and checks string parameters.
//
// Transforms run first, in this order: trim, then the case transform.
// Checks then run in a fixed order and the first failing one is reported:
// length, required characters, denied characters, uppercase, lowercase,
// blank, pattern, allowed values, denied values.
type StringValidator struct {
	trim      bool
	transform caseTransform
	minLen    *int
	maxLen    *int
	reqChars  []rune
	denyChars []rune
	uppercase bool
	lowercase bool
	notBlank  bool
	pattern   *regexp.Regexp
	in        []string
	notIn     []string
}

// String returns a string validator with no constraints.
func String() *StringValidator {
	return &StringValidator{}
}

// Trim strips leading and trailing whitespace before validation.
func (v *StringValidator) Trim() *StringValidator {
	v.trim = true
	return v
}

// ToLowerCase lower-cases the value before validation.
// It replaces a previous ToUpperCase.
func (v *StringValidator) ToLowerCase() *StringValidator {
	v.transform = toLower
	return v
}

// ToUpperCase upper-cases the value before validation.
// It replaces a previous ToLowerCase.
func (v *StringValidator) ToUpperCase() *StringValidator {
	v.transform = toUpper
	return v
}

// MinLength requires at least n characters.
func (v *StringValidator) MinLength(n int) *StringValidator {
	v.minLen = &n
	return v
}

// MaxLength allows at most n characters.
func (v *StringValidator) MaxLength(n int) *StringValidator {
	v.maxLen = &n
	return v
}

// RequiredCharacters requires every character to be one of chars.
func (v *StringValidator) RequiredCharacters(chars []rune) *StringValidator {
	v.reqChars = chars
	return v
}

// DenyCharacters rejects values containing any of chars.
// It replaces the current deny list.
func (v *StringValidator) DenyCharacters(chars []rune) *StringValidator {
	v.denyChars = chars
	return v
}

// NoNewlinesOrControlChars adds newline, tab and carriage return to the deny
// list. Call it after DenyCharacters, which would otherwise replace them.
func (v *StringValidator) NoNewlinesOrControlChars() *StringValidator {
	v.denyChars = slices.Concat(v.denyChars, NewlineTabReturn)
	return v
}

// RequireUppercase rejects values containing lowercase characters.
func (v *StringValidator) RequireUppercase() *StringValidator {
	v.uppercase = true
	return v
}

// RequireLowercase rejects values containing uppercase characters.
func (v *StringValidator) RequireLowercase() *StringValidator {
	v.lowercase = true
	return v
}

// NotBlank rejects empty and whitespace-only values.
func (v *StringValidator) NotBlank() *StringValidator {
	v.notBlank = true
	return v
}

// Regex requires the whole value to match re.
func (v *StringValidator) Regex(re *regexp.Regexp) *StringValidator {
	v.pattern = regexp.MustCompile(`^(?:` + re.String() + `)$`)
	return v
}

// RegexString is like Regex but compiles expr. It panics if expr is invalid.
func (v *StringValidator) RegexString(expr string) *StringValidator {
	return v.Regex(regexp.MustCompile(expr))
}

// IsIn requires the value to be one of values.
func (v *StringValidator) IsIn(values ...string) *StringValidator {
	v.in = values
	return v
}

// IsNotIn rejects the value if it is one of values.
func (v *StringValidator) IsNotIn(values ...string) *StringValidator {
	v.notIn = values
	return v
}

func (v *StringValidator) Validate(_ context.Context, p Param) Result {
	str := p.Value

	if v.trim {
		str = strings.TrimSpace(str)
	}
	switch v.transform {
	case toLower:
		str = lower(str)
	case toUpper:
		str = upper(str)
	}

	length := utf8.RuneCountInString(str)
	if v.minLen != nil && length < *v.minLen {
		return Invalid(KindInvalidLength, fmt.Sprintf("The provided string is too short (minimum length is %d)", *v.minLen))
	}
	if v.maxLen != nil && length > *v.maxLen {
		return Invalid(KindInvalidLength, fmt.Sprintf("The provided string is too long (maximum length is %d)", *v.maxLen))
	}

	if v.reqChars != nil {
		for _, r := range str {
			if !slices.Contains(v.reqChars, r) {
				return Invalid(KindInvalidChars, "The provided string contains invalid characters")
			}
		}
	}
	if v.denyChars != nil && strings.ContainsFunc(str, func(r rune) bool { return slices.Contains(v.denyChars, r) }) {
		return Invalid(KindInvalidChars, "The provided string contains invalid characters")
	}

	if v.uppercase && strings.ContainsFunc(str, func(r rune) bool { return unicode.ToUpper(r) != r }) {
		return Invalid(KindInvalidCase, "The provided string contains lowercase characters")
	}
	if v.lowercase && strings.ContainsFunc(str, func(r rune) bool { return unicode.ToLower(r) != r }) {
		return Invalid(KindInvalidCase, "The provided string contains uppercase characters")
	}

	if v.notBlank && strings.TrimSpace(str) == "" {
		return Invalid(KindBlankString, "The provided string is blank")
	}

	if v.pattern != nil && !v.pattern.MatchString(str) {
		return Invalid(KindPatternMismatch, "The provided string does not match the required pattern")
	}

	if v.in != nil && !slices.Contains(v.in, str) {
		return Invalid(KindInvalidValue, "The provided string is not one of the following: "+strings.Join(v.in, ", "))
	}
	if v.notIn != nil && slices.Contains(v.notIn, str) {
		return Invalid(KindInvalidValue, "The provided string cannot be any of the following: "+strings.Join(v.notIn, ", "))
	}

	return Valid(str)
}
