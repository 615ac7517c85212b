package validator

import "context"

type anyValidator struct{}

// Any returns a validator that accepts every value and yields the raw string.
func Any() Validator {
	return anyValidator{}
}

func (anyValidator) Validate(_ context.Context, p Param) Result {
	return Valid(p.Value)
}

type noneValidator struct{}

// None returns a validator that rejects every value with KindInvalidValue.
func None() Validator {
	return noneValidator{}
}

func (noneValidator) Validate(context.Context, Param) Result {
	return Invalid(KindInvalidValue, "This parameter cannot possibly be valid")
}
