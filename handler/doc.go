// Package handler runs request validation as HTTP middleware.
//
// Validate wraps a *request.Validator into standard func(http.Handler)
// http.Handler middleware that works with chi or net/http. Each request is
// read with package binder, validated with every error collected, and then
// either passed on with its *request.Result in the context or rejected.
//
//	v := request.New().
//		Param("email", validator.Email().Trim()).
//		OptionalParamWithDefault("limit", validator.Int().Min(1).Max(100), int32(20)).
//		RouteParam("teamID", validator.UUID())
//
//	r := chi.NewRouter()
//	r.With(handler.Validate(v, handler.WithLogger(log))).
//		Post("/teams/{teamID}/invites", func(w http.ResponseWriter, r *http.Request) {
//			res, _ := handler.ResultFromContext(r.Context())
//			limit, _ := request.Get[int32](res, "limit")
//			// ...
//		})
//
// # Error Handling
//
// The default ErrorHandler logs failures with slog and answers with
//
//	{"error":{"code":"validation_failed","message":"...","errors":[{"kind":"MISSING_PARAM","field":"email","message":"..."}]}}
//
// and Config.FailureStatus (400 unless VALIDATION_FAILURE_STATUS says
// otherwise). Malformed request bodies produce 400 "bad_request" and any
// other error 500 "internal_server_error". WithErrorPage switches the body to
// a templ component and WithErrorHandler replaces the handler entirely.
//
// # Request access
//
// Validators receive a Context, so a custom validator can inspect the request
// it is validating:
//
//	sameOrigin := validator.Func(func(ctx context.Context, p validator.Param) validator.Result {
//		r, ok := handler.RequestFrom(ctx)
//		if !ok || r.Host != p.Value {
//			return validator.Invalid(validator.Custom("HOST_MISMATCH"), "host does not match")
//		}
//		return validator.Valid(p.Value)
//	})
package handler
