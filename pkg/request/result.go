package request

import (
	"maps"

	"github.com/dmitrymomot/paramguard/pkg/validator"
)

// Result is the outcome of one validation pass.
type Result struct {
	params      map[string]any
	routeParams map[string]any
	errors      validator.ValidationErrors
}

// Valid reports whether every parameter passed.
func (r *Result) Valid() bool {
	return len(r.errors) == 0
}

// Errors returns every validation error, in registration order of the
// failing fields. It is empty for a valid result.
func (r *Result) Errors() validator.ValidationErrors {
	return r.errors
}

// Param returns the parsed value of a body/query parameter, or nil.
func (r *Result) Param(name string) any {
	return r.params[name]
}

// RouteParam returns the parsed value of a route parameter, or nil.
func (r *Result) RouteParam(name string) any {
	return r.routeParams[name]
}

// IsParamParsed reports whether the parameter has a value, either parsed or
// filled from its default.
func (r *Result) IsParamParsed(name string) bool {
	_, ok := r.params[name]
	return ok
}

// IsRouteParamParsed reports whether the route parameter has a value,
// either parsed or filled from its default.
func (r *Result) IsRouteParamParsed(name string) bool {
	_, ok := r.routeParams[name]
	return ok
}

// Params returns a copy of all parsed body/query values.
func (r *Result) Params() map[string]any {
	return maps.Clone(r.params)
}

// RouteParams returns a copy of all parsed route values.
func (r *Result) RouteParams() map[string]any {
	return maps.Clone(r.routeParams)
}

// Get returns the parsed body/query parameter name as T.
// ok is false if the parameter has no value or holds another type.
func Get[T any](r *Result, name string) (T, bool) {
	v, ok := r.params[name].(T)
	return v, ok
}

// GetRoute returns the parsed route parameter name as T.
func GetRoute[T any](r *Result, name string) (T, bool) {
	v, ok := r.routeParams[name].(T)
	return v, ok
}
