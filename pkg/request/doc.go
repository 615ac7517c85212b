// Package request runs a set of named validators over the parameters of one
// request and collects every failure in a single pass.
//
// A Validator holds two registries: body/query parameters and route
// parameters. Each entry is either required, optional, or optional with a
// default value:
//
//	v := request.New().
//		Param("email", validator.Email().Trim()).
//		OptionalParamWithDefault("limit", validator.Int().Min(1).Max(100), int32(20)).
//		OptionalParam("cursor", validator.String().NotBlank()).
//		RouteParam("id", validator.UUID())
//
//	res := v.Validate(ctx, request.Inputs{Params: params, RouteParams: routeParams})
//	if !res.Valid() {
//		for _, e := range res.Errors() {
//			// e.Kind, e.Field, e.Message
//		}
//	}
//	limit, _ := request.Get[int32](res, "limit")
//
// Validation never stops at the first failure. Fields that passed are still
// available from the Result when others failed.
//
// Every call returns its own Result; the Validator keeps no per-call state.
// Once registration is finished a Validator can be shared and used from
// many goroutines. Registration itself is not synchronized.
//
// ValidateOrFail returns a *ValidationFailedError instead of an invalid
// Result; the handler package translates it to a 400 response.
package request
