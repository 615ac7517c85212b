package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramguard/handler"
)

func TestContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(context.WithValue(req.Context(), key{}, "value"))
	w := httptest.NewRecorder()

	ctx := handler.NewContext(w, req)

	assert.Same(t, req, ctx.Request())
	assert.Equal(t, w, ctx.ResponseWriter())
	assert.Equal(t, "value", ctx.Value(key{}))
	assert.NoError(t, ctx.Err())

	got, ok := handler.RequestFrom(ctx)
	require.True(t, ok)
	assert.Same(t, req, got)

	_, ok = handler.RequestFrom(context.Background())
	assert.False(t, ok)
}

func TestContext_Cancellation(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(parent)
	ctx := handler.NewContext(httptest.NewRecorder(), req)

	cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestContextValue(t *testing.T) {
	t.Parallel()

	countKey := handler.NewContextKey("count")
	assert.Equal(t, "count", countKey.String())

	ctx := context.WithValue(context.Background(), countKey, 0)

	n, ok := handler.ContextValueOK[int](ctx, countKey)
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	_, ok = handler.ContextValueOK[string](ctx, countKey)
	assert.False(t, ok)

	assert.Equal(t, "", handler.ContextValue[string](ctx, countKey))
	assert.Equal(t, 0, handler.ContextValue[int](context.Background(), countKey))
}
