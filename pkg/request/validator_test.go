package request_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramguard/pkg/request"
	"github.com/dmitrymomot/paramguard/pkg/validator"
)

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	t.Run("handles params and route params", func(t *testing.T) {
		v := request.New().
			Param("param", validator.Any()).
			RouteParam("routeParam", validator.Any())

		res := v.Validate(context.Background(), request.Inputs{
			Params:      map[string]string{"param": "value"},
			RouteParams: map[string]string{"routeParam": "value"},
		})

		assert.True(t, res.Valid())
		assert.Empty(t, res.Errors())
		assert.Equal(t, "value", res.Param("param"))
		assert.Equal(t, "value", res.RouteParam("routeParam"))
	})

	t.Run("params and route params are separate", func(t *testing.T) {
		v := request.New().
			Param("id", validator.Any()).
			RouteParam("id", validator.Any())

		res := v.Validate(context.Background(), request.Inputs{
			Params:      map[string]string{"id": "query"},
			RouteParams: map[string]string{"id": "route"},
		})

		require.True(t, res.Valid())
		assert.Equal(t, "query", res.Param("id"))
		assert.Equal(t, "route", res.RouteParam("id"))
	})

	t.Run("handles optional params and defaults", func(t *testing.T) {
		v := request.New().
			OptionalParam("param", validator.Any()).
			OptionalParamWithDefault("paramWithValue", validator.Any(), "value").
			OptionalRouteParam("routeParam", validator.Any()).
			OptionalRouteParamWithDefault("routeParamWithValue", validator.Any(), "routeValue")

		res := v.Validate(context.Background(), request.Inputs{})

		require.True(t, res.Valid())

		assert.Nil(t, res.Param("param"))
		assert.False(t, res.IsParamParsed("param"))
		assert.Equal(t, "value", res.Param("paramWithValue"))
		assert.True(t, res.IsParamParsed("paramWithValue"))

		assert.Nil(t, res.RouteParam("routeParam"))
		assert.False(t, res.IsRouteParamParsed("routeParam"))
		assert.Equal(t, "routeValue", res.RouteParam("routeParamWithValue"))
		assert.True(t, res.IsRouteParamParsed("routeParamWithValue"))
	})

	t.Run("defaults do not run the validator", func(t *testing.T) {
		v := request.New().OptionalParamWithDefault("limit", validator.None(), int32(20))

		res := v.Validate(context.Background(), request.Inputs{})
		require.True(t, res.Valid())
		assert.Equal(t, int32(20), res.Param("limit"))
	})

	t.Run("nil default behaves like no default", func(t *testing.T) {
		v := request.New().OptionalParamWithDefault("p", validator.Any(), nil)

		res := v.Validate(context.Background(), request.Inputs{})
		assert.False(t, res.IsParamParsed("p"))
	})

	t.Run("present optional params are validated", func(t *testing.T) {
		v := request.New().OptionalParamWithDefault("limit", validator.Int().Max(100), int32(20))

		res := v.Validate(context.Background(), request.Inputs{Params: map[string]string{"limit": "500"}})
		assert.False(t, res.Valid())
		assert.Equal(t, validator.KindInvalidSize, res.Errors()[0].Kind)
		assert.False(t, res.IsParamParsed("limit"))
	})

	t.Run("parses strings to ints", func(t *testing.T) {
		v := request.New().
			Param("intParam", validator.Int()).
			RouteParam("intRouteParam", validator.Int())

		res := v.Validate(context.Background(), request.Inputs{
			Params:      map[string]string{"intParam": "1"},
			RouteParams: map[string]string{"intRouteParam": "2"},
		})

		require.True(t, res.Valid())
		assert.Equal(t, int32(1), res.Param("intParam"))
		assert.Equal(t, int32(2), res.RouteParam("intRouteParam"))
	})

	t.Run("reports a single missing param", func(t *testing.T) {
		v := request.New().Param("paramName", validator.Any())

		res := v.Validate(context.Background(), request.Inputs{})

		assert.False(t, res.Valid())
		require.Len(t, res.Errors(), 1)
		err := res.Errors()[0]
		assert.Equal(t, validator.KindMissingParam, err.Kind)
		assert.Equal(t, "paramName", err.Field)
		assert.Contains(t, err.Message, "paramName")
	})

	t.Run("reports a missing route param", func(t *testing.T) {
		v := request.New().RouteParam("id", validator.Any())

		res := v.Validate(context.Background(), request.Inputs{Params: map[string]string{"id": "1"}})

		require.Len(t, res.Errors(), 1)
		assert.Equal(t, validator.KindMissingRouteParam, res.Errors()[0].Kind)
		assert.Equal(t, `Missing route parameter "id"`, res.Errors()[0].Message)
	})

	t.Run("reports every missing required field", func(t *testing.T) {
		v := request.New().
			Param("a", validator.Any()).
			Param("b", validator.Any()).
			RouteParam("c", validator.Any()).
			Param("present", validator.Any())

		res := v.Validate(context.Background(), request.Inputs{Params: map[string]string{"present": "x"}})

		assert.False(t, res.Valid())
		assert.Len(t, res.Errors(), 3)
		assert.Len(t, res.Errors().ByKind(validator.KindMissingParam), 2)
		assert.Len(t, res.Errors().ByKind(validator.KindMissingRouteParam), 1)
		assert.Equal(t, "x", res.Param("present"))
	})

	t.Run("reports multiple invalid params", func(t *testing.T) {
		v := request.New().
			Param("param1", validator.None()).
			Param("param2", validator.None()).
			Param("param3", validator.Any())

		res := v.Validate(context.Background(), request.Inputs{Params: map[string]string{
			"param1": "test data",
			"param2": "stuff",
			"param3": "things",
		}})

		assert.False(t, res.Valid())
		assert.Len(t, res.Errors(), 2)
		assert.Equal(t, []string{"param1", "param2"}, res.Errors().Fields())
	})

	t.Run("keeps valid values alongside errors", func(t *testing.T) {
		v := request.New().
			Param("good", validator.Int()).
			Param("bad", validator.Int()).
			Param("missing", validator.Int())

		res := v.Validate(context.Background(), request.Inputs{Params: map[string]string{
			"good": "100",
			"bad":  "abc",
		}})

		assert.False(t, res.Valid())
		require.Len(t, res.Errors(), 2)
		assert.Equal(t, validator.ValidationError{
			Kind:    validator.KindInvalidInt,
			Field:   "bad",
			Message: "The provided value does not represent an integer",
		}, res.Errors()[0])
		assert.Equal(t, validator.KindMissingParam, res.Errors()[1].Kind)

		assert.True(t, res.IsParamParsed("good"))
		assert.Equal(t, int32(100), res.Param("good"))
		assert.False(t, res.IsParamParsed("bad"))
	})

	t.Run("re-registering a name replaces the entry", func(t *testing.T) {
		v := request.New().
			Param("p", validator.None()).
			Param("p", validator.Any())

		res := v.Validate(context.Background(), request.Inputs{Params: map[string]string{"p": "x"}})
		assert.True(t, res.Valid())
		assert.Equal(t, []string{"p"}, v.ParamNames())
	})

	t.Run("context reaches field validators", func(t *testing.T) {
		type ctxKey struct{}
		v := request.New().Param("token", validator.Func(func(ctx context.Context, p validator.Param) validator.Result {
			if p.Value != ctx.Value(ctxKey{}) {
				return validator.Invalid(validator.Custom("TOKEN_MISMATCH"), "token does not match")
			}
			return validator.Valid(p.Value)
		}))

		ctx := context.WithValue(context.Background(), ctxKey{}, "abc")
		assert.True(t, v.Validate(ctx, request.Inputs{Params: map[string]string{"token": "abc"}}).Valid())

		res := v.Validate(ctx, request.Inputs{Params: map[string]string{"token": "xyz"}})
		require.Len(t, res.Errors(), 1)
		assert.Equal(t, validator.Kind("TOKEN_MISMATCH"), res.Errors()[0].Kind)
	})
}

func TestValidator_Idempotent(t *testing.T) {
	t.Parallel()

	v := request.New().
		Param("a", validator.Int()).
		Param("b", validator.Email()).
		Param("c", validator.Any()).
		RouteParam("d", validator.UUID())

	in := request.Inputs{Params: map[string]string{"a": "x", "b": "y"}}

	first := v.Validate(context.Background(), in)
	second := v.Validate(context.Background(), in)

	assert.Equal(t, first.Valid(), second.Valid())
	assert.Equal(t, first.Errors(), second.Errors())
	assert.Len(t, second.Errors(), 4)
}

func TestValidator_Concurrent(t *testing.T) {
	t.Parallel()

	v := request.New().Param("n", validator.Int().Min(0))

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := request.Inputs{Params: map[string]string{"n": "5"}}
			if i%2 == 1 {
				in.Params["n"] = "-5"
			}

			res := v.Validate(context.Background(), in)
			if i%2 == 1 {
				assert.False(t, res.Valid())
				assert.Len(t, res.Errors(), 1)
			} else {
				assert.True(t, res.Valid())
				assert.Equal(t, int32(5), res.Param("n"))
			}
		}(i)
	}
	wg.Wait()
}

func TestValidator_ValidateOrFail(t *testing.T) {
	t.Parallel()

	t.Run("returns an error on bad params", func(t *testing.T) {
		v := request.New().Param("bad", validator.None())
		ctx := context.Background()

		res, err := v.ValidateOrFail(ctx, request.Inputs{Params: map[string]string{"bad": "test data"}})
		require.Error(t, err)
		require.NotNil(t, res)

		var failed *request.ValidationFailedError
		require.ErrorAs(t, err, &failed)
		assert.Same(t, v, failed.Validator)
		assert.Equal(t, ctx, failed.Context)
		assert.Same(t, res, failed.Result)
		assert.Len(t, failed.Errors(), 1)
		assert.Equal(t, "request validation failed with 1 error(s)", err.Error())

		assert.True(t, validator.IsValidationError(err))
		assert.Len(t, validator.ExtractValidationErrors(err), 1)
	})

	t.Run("returns nil error when valid", func(t *testing.T) {
		v := request.New().Param("good", validator.Any())

		res, err := v.ValidateOrFail(context.Background(), request.Inputs{Params: map[string]string{"good": "x"}})
		require.NoError(t, err)
		assert.True(t, res.Valid())
	})

	t.Run("unrelated errors are not validation failures", func(t *testing.T) {
		var failed *request.ValidationFailedError
		assert.False(t, errors.As(errors.New("boom"), &failed))
	})
}

func TestResult_Accessors(t *testing.T) {
	t.Parallel()

	v := request.New().
		Param("limit", validator.Int()).
		OptionalParamWithDefault("sort", validator.String(), "asc").
		RouteParam("id", validator.Long())

	res := v.Validate(context.Background(), request.Inputs{
		Params:      map[string]string{"limit": "10"},
		RouteParams: map[string]string{"id": "42"},
	})
	require.True(t, res.Valid())

	limit, ok := request.Get[int32](res, "limit")
	assert.True(t, ok)
	assert.Equal(t, int32(10), limit)

	_, ok = request.Get[string](res, "limit")
	assert.False(t, ok)

	sort, ok := request.Get[string](res, "sort")
	assert.True(t, ok)
	assert.Equal(t, "asc", sort)

	id, ok := request.GetRoute[int64](res, "id")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	params := res.Params()
	params["limit"] = "changed"
	assert.Equal(t, int32(10), res.Param("limit"))
	assert.Equal(t, map[string]any{"id": int64(42)}, res.RouteParams())

	assert.Equal(t, []string{"limit", "sort"}, v.ParamNames())
	assert.Equal(t, []string{"id"}, v.RouteParamNames())
}
