package validator_test

import (
	"context"

	"github.com/dmitrymomot/paramguard/pkg/validator"
)

func validate(v validator.Validator, value string) validator.Result {
	return v.Validate(context.Background(), validator.Param{Field: "param", Value: value})
}
