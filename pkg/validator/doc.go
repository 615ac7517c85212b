// Package validator provides composable validators that check and parse raw
// string parameters into typed values.
//
// Every validator implements the Validator interface: given a Param (field
// name and raw string value) and an opaque request context, it returns a
// Result that is either OK and carries the parsed value, or failed and
// carries an error Kind and a human-readable message. Bad input is never a Go
// error; it is a failed Result.
//
// # Architecture
//
// Validators are created with a constructor and configured with chained
// methods that mutate and return the same pointer:
//
//	age := validator.Int().Min(0).Max(150)
//	name := validator.String().Trim().NotBlank().MaxLength(64)
//
// Configuration is meant to happen once, before the validator is used.
// After that a validator holds no mutable state and can be shared by any
// number of concurrent validations.
//
// Building blocks:
//   - Validator / Func:  the validator contract and a function adapter
//   - Result:            outcome of one validation (Valid / Invalid)
//   - Kind:              error kind; well-known constants plus Custom
//   - ValidationError:   a failure attributed to a field
//   - ValidationErrors:  slice type that implements the error interface
//
// Primitive validators: Any, None, Bool, Byte, Short, Int, Long, Float,
// Double, String, Email, DateTime, UUID.
//
// Structural validators: Object and Array decode JSON text and may delegate
// fields or nested items to other validators, including each other:
//
//	tags := validator.Array().MaxLength(10).OnlyAllowTypes(validator.TypeString)
//	profile := validator.Object().
//		RequireFieldType("name", validator.TypeString).
//		ValidateFieldWith("tags", tags)
//
// # Bounds and coercion
//
// The numeric validators reject values outside Min/Max before applying
// CoerceMin/CoerceMax. DateTime does it the other way round: it clamps first
// and then checks Min/Max. The two orders are kept as they are; configure
// either hard limits or coercion on a validator, not both.
//
// # Error Handling
//
// ValidationErrors supports errors.As, so callers can detect validation
// problems with ExtractValidationErrors or IsValidationError and inspect
// individual failures with Has, Get, GetErrors, ByKind and Fields.
package validator
