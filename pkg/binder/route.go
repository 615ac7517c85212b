package binder

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RouteExtractor returns the route parameters matched for r.
type RouteExtractor func(r *http.Request) map[string]string

// ChiRouteParams returns every URL parameter chi matched for r.
// Parameters with empty values are treated as absent.
func ChiRouteParams(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return map[string]string{}
	}

	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		if i >= len(rctx.URLParams.Values) {
			break
		}
		if val := rctx.URLParams.Values[i]; val != "" {
			params[key] = val
		}
	}
	return params
}

// RouteParams looks up each of names with extractor and returns the
// non-empty values.
//
// Example with chi router:
//
//	params := binder.RouteParams(r, []string{"id"}, chi.URLParam)
func RouteParams(r *http.Request, names []string, extractor func(r *http.Request, name string) string) map[string]string {
	params := make(map[string]string, len(names))
	if extractor == nil {
		return params
	}
	for _, name := range names {
		if val := extractor(r, name); val != "" {
			params[name] = val
		}
	}
	return params
}

// Path adapts a name-based extractor, such as chi.URLParam or a gorilla/mux
// lookup, into a RouteExtractor for the given names.
//
//	muxExtractor := func(r *http.Request, name string) string {
//		return mux.Vars(r)[name]
//	}
//	route := binder.Path(muxExtractor, validator.RouteParamNames()...)
func Path(extractor func(r *http.Request, name string) string, names ...string) RouteExtractor {
	return func(r *http.Request) map[string]string {
		return RouteParams(r, names, extractor)
	}
}
