package validator

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[\w.]+@[a-zA-Z_0-9\-.]+?\.[a-zA-Z]{2,16}$`)

// EmailValidator checks that a parameter looks like user@domain.tld.
// It does no case normalization and no DNS or mailbox verification.
type EmailValidator struct {
	trim   bool
	minLen *int
	maxLen *int
}

// Email returns an email validator.
func Email() *EmailValidator {
	return &EmailValidator{}
}

// Trim strips leading and trailing whitespace before validation.
func (v *EmailValidator) Trim() *EmailValidator {
	v.trim = true
	return v
}

// MinLength requires at least n characters.
func (v *EmailValidator) MinLength(n int) *EmailValidator {
	v.minLen = &n
	return v
}

// MaxLength allows at most n characters.
func (v *EmailValidator) MaxLength(n int) *EmailValidator {
	v.maxLen = &n
	return v
}

func (v *EmailValidator) Validate(_ context.Context, p Param) Result {
	str := p.Value
	if v.trim {
		str = strings.TrimSpace(str)
	}

	length := utf8.RuneCountInString(str)
	if v.minLen != nil && length < *v.minLen {
		return Invalid(KindInvalidLength, fmt.Sprintf("The provided email is too short (minimum length is %d)", *v.minLen))
	}
	if v.maxLen != nil && length > *v.maxLen {
		return Invalid(KindInvalidLength, fmt.Sprintf("The provided email is too long (maximum length is %d)", *v.maxLen))
	}

	if strings.TrimSpace(str) == "" {
		return Invalid(KindBlankString, "The provided email is blank")
	}

	if !emailPattern.MatchString(str) {
		return Invalid(KindInvalidEmail, "The provided email is not valid")
	}

	return Valid(str)
}
