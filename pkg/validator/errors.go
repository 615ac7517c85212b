package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the type of a validation failure.
//
// The well-known kinds are declared below. Custom validators may report any
// other kind, built with Custom.
type Kind string

// Well-known validation error kinds.
const (
	// A parameter is missing from the request body or query.
	KindMissingParam Kind = "MISSING_PARAM"
	// A route parameter is missing.
	KindMissingRouteParam Kind = "MISSING_ROUTE_PARAM"
	// A string or array is too short or too long.
	KindInvalidLength Kind = "INVALID_LENGTH"
	// An invalid boolean value was supplied.
	KindInvalidBool Kind = "INVALID_BOOL"
	// A number is too large or too small.
	KindInvalidSize Kind = "INVALID_SIZE"
	KindInvalidByte Kind = "INVALID_BYTE"
	// A 16-bit integer was malformed.
	KindInvalidShort  Kind = "INVALID_SHORT"
	KindInvalidDouble Kind = "INVALID_DOUBLE"
	KindInvalidFloat  Kind = "INVALID_FLOAT"
	KindInvalidInt    Kind = "INVALID_INT"
	KindInvalidLong   Kind = "INVALID_LONG"
	// A string contains characters that are not allowed.
	KindInvalidChars Kind = "INVALID_CHARS"
	// A string contains characters of the wrong case.
	KindInvalidCase Kind = "INVALID_CASE"
	KindBlankString Kind = "BLANK_STRING"
	// A string does not match the required pattern.
	KindPatternMismatch Kind = "PATTERN_MISMATCH"
	// A value is not one of the allowed values, or is one of the denied ones.
	KindInvalidValue Kind = "INVALID_VALUE"
	KindInvalidEmail Kind = "INVALID_EMAIL"
	KindInvalidUUID  Kind = "INVALID_UUID"
	// An array contains a null or an item of a disallowed type.
	KindInvalidItem Kind = "INVALID_ITEM"
	KindInvalidJSON Kind = "INVALID_JSON"
	// A JSON object is missing a required field.
	KindMissingField Kind = "MISSING_FIELD"
	// A JSON object field has the wrong type.
	KindInvalidField Kind = "INVALID_FIELD"
	// A timestamp is outside the allowed range.
	KindInvalidTime Kind = "INVALID_TIME"
	KindInvalidDate Kind = "INVALID_DATE"
)

var knownKinds = []Kind{
	KindMissingParam,
	KindMissingRouteParam,
	KindInvalidLength,
	KindInvalidBool,
	KindInvalidSize,
	KindInvalidByte,
	KindInvalidShort,
	KindInvalidDouble,
	KindInvalidFloat,
	KindInvalidInt,
	KindInvalidLong,
	KindInvalidChars,
	KindInvalidCase,
	KindBlankString,
	KindPatternMismatch,
	KindInvalidValue,
	KindInvalidEmail,
	KindInvalidUUID,
	KindInvalidItem,
	KindInvalidJSON,
	KindMissingField,
	KindInvalidField,
	KindInvalidTime,
	KindInvalidDate,
}

// Custom returns a Kind for a failure not covered by the well-known set.
func Custom(name string) Kind {
	return Kind(name)
}

// KnownKinds returns all well-known kinds.
func KnownKinds() []Kind {
	out := make([]Kind, len(knownKinds))
	copy(out, knownKinds)
	return out
}

// IsKnown reports whether k is one of the well-known kinds.
func (k Kind) IsKnown() bool {
	for _, known := range knownKinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// TranslationKey returns the i18n key for the kind, e.g. "validation.invalid_int".
func (k Kind) TranslationKey() string {
	return "validation." + strings.ToLower(string(k))
}

// ValidationError is a single named validation failure.
type ValidationError struct {
	Kind    Kind   `json:"kind"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Kind)
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages reported for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// ByKind returns every error of the given kind.
func (ve ValidationErrors) ByKind(kind Kind) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Kind == kind {
			errs = append(errs, err)
		}
	}
	return errs
}

// Fields returns the distinct failing field names in report order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error chain.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
