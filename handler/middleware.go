package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/paramguard/pkg/binder"
	"github.com/dmitrymomot/paramguard/pkg/request"
)

var resultKey = NewContextKey("validation_result")

// Option configures Validate.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	config       Config
	route        binder.RouteExtractor
	errorHandler ErrorHandler
	errorPage    func(ErrorPageParams) templ.Component
}

// WithLogger sets the logger used by the default error handler.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithRouteParams sets how route parameters are read. The default is
// binder.ChiRouteParams.
func WithRouteParams(route binder.RouteExtractor) Option {
	return func(o *options) {
		if route != nil {
			o.route = route
		}
	}
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) {
		if h != nil {
			o.errorHandler = h
		}
	}
}

// WithErrorPage makes the default error handler render page instead of JSON.
func WithErrorPage(page func(ErrorPageParams) templ.Component) Option {
	return func(o *options) {
		o.errorPage = page
	}
}

// Validate returns middleware that checks every request against v.
//
// Parameters are read with package binder. Validators receive a Context for
// the current request. When validation passes the *request.Result is stored
// in the request context (see ResultFromContext) and next is called; otherwise
// the error handler answers and next is skipped. Malformed bodies or query
// strings are reported as ErrBadRequest.
//
// Validate panics if v is nil.
//
//	r := chi.NewRouter()
//	r.With(handler.Validate(listUsers)).Get("/users", listUsersHandler)
func Validate(v *request.Validator, opts ...Option) func(http.Handler) http.Handler {
	if v == nil {
		panic(ErrNilValidator)
	}

	o := &options{
		logger: slog.Default(),
		config: DefaultConfig(),
		route:  binder.ChiRouteParams,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.errorHandler == nil {
		o.errorHandler = NewErrorHandler(o.logger, ErrorHandlerConfig{
			ErrorPage:     o.errorPage,
			FailureStatus: o.config.FailureStatus,
			LogFailures:   o.config.LogFailures,
		})
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := NewContext(w, r)

			in, err := binder.Inputs(r, o.route)
			if err != nil {
				o.errorHandler(ctx, fmt.Errorf("%w: %w", ErrBadRequest, err))
				return
			}

			res, err := v.ValidateOrFail(ctx, in)
			if err != nil {
				o.errorHandler(ctx, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), resultKey, res)))
		})
	}
}

// ResultFromContext returns the validation result stored by Validate.
func ResultFromContext(ctx context.Context) (*request.Result, bool) {
	return ContextValueOK[*request.Result](ctx, resultKey)
}
