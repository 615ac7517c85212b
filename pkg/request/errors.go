package request

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/paramguard/pkg/validator"
)

// ValidationFailedError is returned by ValidateOrFail when at least one
// parameter failed validation.
type ValidationFailedError struct {
	// Validator is the request validator that produced the failure.
	Validator *Validator
	// Context is the request context handle the validation ran with.
	Context context.Context
	// Result holds the errors and the values that did pass.
	Result *Result
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("request validation failed with %d error(s)", len(e.Result.Errors()))
}

// Errors returns every validation error found.
func (e *ValidationFailedError) Errors() validator.ValidationErrors {
	return e.Result.Errors()
}

// Unwrap exposes the underlying validator.ValidationErrors to errors.As.
func (e *ValidationFailedError) Unwrap() error {
	return e.Result.Errors()
}
