package handler

import (
	"context"
	"net/http"
	"time"
)

// Context wraps http.Request and http.ResponseWriter with context.Context.
// The middleware hands it to validators as their request context, so custom
// validators can reach the request through RequestFrom.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

// NewContext creates a Context for w and r.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{w: w, r: r}
}

type httpContext struct {
	w http.ResponseWriter
	r *http.Request
}

func (c *httpContext) Request() *http.Request {
	return c.r
}

func (c *httpContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// context.Context methods delegate to the request's context.
func (c *httpContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *httpContext) Err() error {
	return c.r.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.r.Context().Value(key)
}

// RequestFrom returns the HTTP request behind ctx when ctx is a Context.
func RequestFrom(ctx context.Context) (*http.Request, bool) {
	if c, ok := ctx.(Context); ok && c.Request() != nil {
		return c.Request(), true
	}
	return nil, false
}

// ContextKey is a typed context key. Declare keys as package-level variables.
type ContextKey struct{ name string }

func (c *ContextKey) String() string {
	return c.name
}

// NewContextKey creates a context key. The name is only used for debugging.
func NewContextKey(name string) *ContextKey {
	return &ContextKey{name}
}

// ContextValue returns the value stored under key, or the zero value of T
// when it is missing or of another type.
func ContextValue[T any](ctx context.Context, key any) T {
	val, _ := ctx.Value(key).(T)
	return val
}

// ContextValueOK is like ContextValue but also reports whether a value of
// type T was found.
func ContextValueOK[T any](ctx context.Context, key any) (T, bool) {
	val, ok := ctx.Value(key).(T)
	return val, ok
}
