package validator

import "context"

// Param is a single named raw value handed to a Validator.
type Param struct {
	// Field is the parameter name, used for error attribution.
	Field string
	// Value is the raw, unparsed string value.
	Value string
}

// Validator checks and parses a single parameter.
//
// ctx is an opaque request handle. Built-in validators never inspect it and
// structural validators forward it unchanged to their sub-validators, so
// custom validators can rely on it to reach surrounding request state.
//
// Implementations must be safe for concurrent use once configured.
type Validator interface {
	Validate(ctx context.Context, p Param) Result
}

// Func adapts an ordinary function to the Validator interface.
//
// Example:
//
//	even := validator.Func(func(ctx context.Context, p validator.Param) validator.Result {
//		n, err := strconv.Atoi(p.Value)
//		if err != nil || n%2 != 0 {
//			return validator.Invalid(validator.Custom("NOT_EVEN"), "The provided value is not an even number")
//		}
//		return validator.Valid(n)
//	})
type Func func(ctx context.Context, p Param) Result

// Validate calls f(ctx, p).
func (f Func) Validate(ctx context.Context, p Param) Result {
	return f(ctx, p)
}

// Result is the outcome of one Validate call: either a parsed value or an
// error kind with a human-readable message.
type Result struct {
	value   any
	kind    Kind
	message string
	ok      bool
}

// Valid creates a successful result carrying the parsed value.
func Valid(value any) Result {
	return Result{value: value, ok: true}
}

// Invalid creates a failed result.
func Invalid(kind Kind, message string) Result {
	return Result{kind: kind, message: message}
}

// OK reports whether the value passed validation.
func (r Result) OK() bool {
	return r.ok
}

// Value returns the parsed value, or nil for a failed result.
func (r Result) Value() any {
	return r.value
}

// Kind returns the error kind, or an empty Kind for a successful result.
func (r Result) Kind() Kind {
	return r.kind
}

// Message returns the error message, or an empty string for a successful result.
func (r Result) Message() string {
	return r.message
}

// Error converts a failed result into an error record attributed to field.
// It returns nil for a successful result.
func (r Result) Error(field string) *ValidationError {
	if r.ok {
		return nil
	}
	return &ValidationError{
		Kind:    r.kind,
		Field:   field,
		Message: r.message,
	}
}
