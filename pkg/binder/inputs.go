package binder

import (
	"net/http"

	"github.com/dmitrymomot/paramguard/pkg/request"
)

// Inputs builds the validation inputs for r. Route parameters come from
// route; a nil route reads them from chi.
func Inputs(r *http.Request, route RouteExtractor) (request.Inputs, error) {
	params, err := Params(r)
	if err != nil {
		return request.Inputs{}, err
	}

	if route == nil {
		route = ChiRouteParams
	}

	return request.Inputs{
		Params:      params,
		RouteParams: route(r),
	}, nil
}
