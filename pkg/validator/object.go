package validator

import (
	"context"
	"fmt"
)

type fieldRequirement struct {
	name string
	typ  JSONType // zero when any type is accepted
}

type fieldDelegate struct {
	name      string
	validator Validator
}

// ObjectValidator checks JSON object parameters: required fields, their
// types, and per-field delegation to other validators.
//
// Requirements and delegations are evaluated in registration order and the
// first failure is returned.
type ObjectValidator struct {
	required  []fieldRequirement
	delegates []fieldDelegate
}

// Object returns a JSON object validator with no field constraints.
func Object() *ObjectValidator {
	return &ObjectValidator{}
}

// RequireField requires the object to contain name, of any type.
func (v *ObjectValidator) RequireField(name string) *ObjectValidator {
	return v.require(fieldRequirement{name: name})
}

// RequireFieldType requires the object to contain name with the given type.
func (v *ObjectValidator) RequireFieldType(name string, typ JSONType) *ObjectValidator {
	return v.require(fieldRequirement{name: name, typ: typ})
}

func (v *ObjectValidator) require(req fieldRequirement) *ObjectValidator {
	for i := range v.required {
		if v.required[i].name == req.name {
			v.required[i] = req
			return v
		}
	}
	v.required = append(v.required, req)
	return v
}

// ValidateFieldWith requires the object to contain name and validates its
// value with validator. Nested objects and arrays are handed over as JSON
// text and strings as their raw contents. The sub-parameter is named
// parent["name"].
func (v *ObjectValidator) ValidateFieldWith(name string, validator Validator) *ObjectValidator {
	for i := range v.delegates {
		if v.delegates[i].name == name {
			v.delegates[i].validator = validator
			return v
		}
	}
	v.delegates = append(v.delegates, fieldDelegate{name: name, validator: validator})
	return v
}

func (v *ObjectValidator) Validate(ctx context.Context, p Param) Result {
	var obj map[string]any
	if err := decodeJSON(p.Value, &obj); err != nil || obj == nil {
		return Invalid(KindInvalidJSON, "The provided value does not represent a JSON object")
	}

	for _, req := range v.required {
		val, ok := obj[req.name]
		if !ok {
			return missingField(req.name)
		}
		if req.typ != 0 && !req.typ.Matches(val) {
			return Invalid(KindInvalidField, fmt.Sprintf("The field %s in the provided JSON object is not the correct type", req.name))
		}
	}

	for _, d := range v.delegates {
		val, ok := obj[d.name]
		if !ok {
			return missingField(d.name)
		}

		sub := Param{
			Field: fmt.Sprintf(`%s["%s"]`, p.Field, d.name),
			Value: encodeJSON(val),
		}
		if res := d.validator.Validate(ctx, sub); !res.OK() {
			return res
		}
	}

	return Valid(obj)
}

func missingField(name string) Result {
	return Invalid(KindMissingField, fmt.Sprintf("The provided JSON object does not contain the field %s", name))
}
