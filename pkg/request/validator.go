package request

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/paramguard/pkg/validator"
)

// Inputs are the raw values of one request. A missing key means the
// parameter was not supplied.
type Inputs struct {
	// Params holds body and query parameters.
	Params map[string]string
	// RouteParams holds path parameters.
	RouteParams map[string]string
}

type fieldSpec struct {
	validator validator.Validator
	required  bool
	def       any
}

// registry is a name to fieldSpec map that remembers registration order, so
// errors are always reported in the same order.
type registry struct {
	names []string
	specs map[string]fieldSpec
}

func (r *registry) set(name string, spec fieldSpec) {
	if r.specs == nil {
		r.specs = make(map[string]fieldSpec)
	}
	if _, exists := r.specs[name]; !exists {
		r.names = append(r.names, name)
	}
	r.specs[name] = spec
}

// Validator validates the parameters of a request against registered field
// validators.
type Validator struct {
	params      registry
	routeParams registry
}

// New returns an empty request validator.
func New() *Validator {
	return &Validator{}
}

// Param registers a required body/query parameter.
// Registering a name again replaces the previous entry.
func (v *Validator) Param(name string, fv validator.Validator) *Validator {
	v.params.set(name, fieldSpec{validator: fv, required: true})
	return v
}

// OptionalParam registers an optional body/query parameter without a default.
func (v *Validator) OptionalParam(name string, fv validator.Validator) *Validator {
	v.params.set(name, fieldSpec{validator: fv})
	return v
}

// OptionalParamWithDefault registers an optional body/query parameter.
// When it is absent, def is stored as its parsed value without running fv.
// A nil def behaves like OptionalParam.
func (v *Validator) OptionalParamWithDefault(name string, fv validator.Validator, def any) *Validator {
	v.params.set(name, fieldSpec{validator: fv, def: def})
	return v
}

// RouteParam registers a required route parameter.
func (v *Validator) RouteParam(name string, fv validator.Validator) *Validator {
	v.routeParams.set(name, fieldSpec{validator: fv, required: true})
	return v
}

// OptionalRouteParam registers an optional route parameter without a default.
func (v *Validator) OptionalRouteParam(name string, fv validator.Validator) *Validator {
	v.routeParams.set(name, fieldSpec{validator: fv})
	return v
}

// OptionalRouteParamWithDefault registers an optional route parameter with a
// default value.
func (v *Validator) OptionalRouteParamWithDefault(name string, fv validator.Validator, def any) *Validator {
	v.routeParams.set(name, fieldSpec{validator: fv, def: def})
	return v
}

// ParamNames returns the registered body/query parameter names in
// registration order.
func (v *Validator) ParamNames() []string {
	return append([]string(nil), v.params.names...)
}

// RouteParamNames returns the registered route parameter names in
// registration order.
func (v *Validator) RouteParamNames() []string {
	return append([]string(nil), v.routeParams.names...)
}

// Validate runs every registered validator against in and returns the
// outcome. All fields are attempted; failures do not stop the pass.
// ctx is handed to each field validator unchanged.
func (v *Validator) Validate(ctx context.Context, in Inputs) *Result {
	res := &Result{
		params:      make(map[string]any, len(v.params.names)),
		routeParams: make(map[string]any, len(v.routeParams.names)),
	}

	res.errors = run(ctx, &v.params, in.Params, res.params, res.errors, validator.KindMissingParam, "Missing parameter %q")
	res.errors = run(ctx, &v.routeParams, in.RouteParams, res.routeParams, res.errors, validator.KindMissingRouteParam, "Missing route parameter %q")

	return res
}

// ValidateOrFail is like Validate but returns a *ValidationFailedError when
// the request is invalid. The Result is returned in both cases.
func (v *Validator) ValidateOrFail(ctx context.Context, in Inputs) (*Result, error) {
	res := v.Validate(ctx, in)
	if !res.Valid() {
		return res, &ValidationFailedError{
			Validator: v,
			Context:   ctx,
			Result:    res,
		}
	}
	return res, nil
}

func run(
	ctx context.Context,
	reg *registry,
	values map[string]string,
	parsed map[string]any,
	errs validator.ValidationErrors,
	missingKind validator.Kind,
	missingFormat string,
) validator.ValidationErrors {
	for _, name := range reg.names {
		spec := reg.specs[name]

		raw, present := values[name]
		switch {
		case present:
			r := spec.validator.Validate(ctx, validator.Param{Field: name, Value: raw})
			if r.OK() {
				parsed[name] = r.Value()
			} else {
				errs.Add(*r.Error(name))
			}
		case !spec.required:
			if spec.def != nil {
				parsed[name] = spec.def
			}
		default:
			errs.Add(validator.ValidationError{
				Kind:    missingKind,
				Field:   name,
				Message: fmt.Sprintf(missingFormat, name),
			})
		}
	}
	return errs
}
