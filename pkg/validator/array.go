package validator

import (
	"context"
	"fmt"
	"slices"
)

// ArrayValidator checks JSON array parameters: length, nulls, item types,
// and nested arrays and objects through sub-validators.
type ArrayValidator struct {
	minLen       *int
	maxLen       *int
	noNulls      bool
	allowedTypes []JSONType
	subArrays    Validator
	subObjects   Validator
}

// Array returns a JSON array validator with no constraints.
func Array() *ArrayValidator {
	return &ArrayValidator{}
}

// MinLength requires at least n items.
func (v *ArrayValidator) MinLength(n int) *ArrayValidator {
	v.minLen = &n
	return v
}

// MaxLength allows at most n items.
func (v *ArrayValidator) MaxLength(n int) *ArrayValidator {
	v.maxLen = &n
	return v
}

// RequireNoNulls rejects arrays containing null items.
func (v *ArrayValidator) RequireNoNulls() *ArrayValidator {
	v.noNulls = true
	return v
}

// OnlyAllowTypes rejects items whose type is not one of types.
// Nulls are rejected as well.
func (v *ArrayValidator) OnlyAllowTypes(types ...JSONType) *ArrayValidator {
	v.allowedTypes = types
	return v
}

// ValidateSubArraysWith validates every nested array item with validator.
// Items are named parent[index].
func (v *ArrayValidator) ValidateSubArraysWith(validator Validator) *ArrayValidator {
	v.subArrays = validator
	return v
}

// ValidateSubObjectsWith validates every nested object item with validator.
// Items are named parent[index].
func (v *ArrayValidator) ValidateSubObjectsWith(validator Validator) *ArrayValidator {
	v.subObjects = validator
	return v
}

func (v *ArrayValidator) Validate(ctx context.Context, p Param) Result {
	var arr []any
	if err := decodeJSON(p.Value, &arr); err != nil || arr == nil {
		return Invalid(KindInvalidJSON, "The provided value does not represent a JSON array")
	}

	if v.minLen != nil && len(arr) < *v.minLen {
		return Invalid(KindInvalidLength, fmt.Sprintf("The JSON array is too short (minimum length is %d)", *v.minLen))
	}
	if v.maxLen != nil && len(arr) > *v.maxLen {
		return Invalid(KindInvalidLength, fmt.Sprintf("The JSON array is too long (maximum length is %d)", *v.maxLen))
	}

	if v.noNulls || v.allowedTypes != nil {
		for i, item := range arr {
			if item == nil {
				return Invalid(KindInvalidItem, fmt.Sprintf("The JSON array cannot contain any nulls, and the item at index %d is null", i))
			}
		}
	}

	if v.allowedTypes != nil {
		for i, item := range arr {
			matches := func(t JSONType) bool { return t.Matches(item) }
			if !slices.ContainsFunc(v.allowedTypes, matches) {
				return Invalid(KindInvalidItem, fmt.Sprintf("The item at index %d of the JSON array is not the correct type", i))
			}
		}
	}

	if v.subArrays != nil || v.subObjects != nil {
		for i, item := range arr {
			var sub Validator
			switch item.(type) {
			case []any:
				sub = v.subArrays
			case map[string]any:
				sub = v.subObjects
			}
			if sub == nil {
				continue
			}

			param := Param{
				Field: fmt.Sprintf("%s[%d]", p.Field, i),
				Value: encodeJSON(item),
			}
			if res := sub.Validate(ctx, param); !res.OK() {
				return res
			}
		}
	}

	return Valid(arr)
}
