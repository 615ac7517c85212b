// Package binder extracts raw request parameters from *http.Request values
// for validation with package request.
//
// Two sources are read:
//
//   - Params: query string plus urlencoded or multipart form bodies
//     (multipart forms are parsed with a 10MB memory limit)
//   - route parameters: chi URL params by default, or any router through
//     Path and RouteParams
//
// Only the first value of a repeated key is kept. Body values take
// precedence over query values.
//
// # Basic Usage
//
//	v := request.New().
//		Param("q", validator.String().NotBlank()).
//		RouteParam("id", validator.UUID())
//
//	in, err := binder.Inputs(r, binder.ChiRouteParams)
//	if err != nil {
//		// malformed body or query
//	}
//	res := v.Validate(r.Context(), in)
//
// # Error Handling
//
//   - ErrInvalidForm: the form body could not be parsed
//   - ErrInvalidQuery: the query string could not be parsed
package binder
