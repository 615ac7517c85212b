package requestid_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramguard/pkg/logger"
	"github.com/dmitrymomot/paramguard/pkg/requestid"
)

func serve(t *testing.T, header string) (ctxID, respID string) {
	t.Helper()
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates an id when none is sent", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve(t, "")
		assert.Equal(t, ctxID, respID)
		_, err := uuid.Parse(respID)
		assert.NoError(t, err)
	})

	t.Run("keeps valid ids", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{
			"abc123",
			"test-request-id",
			"test_request_id",
			"ABC-123_xyz",
			"550e8400-e29b-41d4-a716-446655440000",
			strings.Repeat("a", 128),
		} {
			ctxID, respID := serve(t, id)
			assert.Equal(t, id, ctxID)
			assert.Equal(t, id, respID)
		}
	})

	t.Run("replaces invalid ids", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{
			"test@request#id",
			"test request id",
			"test/request/id",
			"test<script>alert(1)</script>",
			"идентификатор",
			strings.Repeat("a", 129),
		} {
			ctxID, respID := serve(t, id)
			assert.NotEqual(t, id, ctxID)
			assert.Equal(t, ctxID, respID)
			assert.NotEmpty(t, respID)
		}
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := requestid.WithContext(context.Background(), "test-id")
	assert.Equal(t, "test-id", requestid.FromContext(ctx))
	assert.Empty(t, requestid.FromContext(context.Background()))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	log.InfoContext(requestid.WithContext(context.Background(), "req-1"), "hello")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)

	buf.Reset()
	log.InfoContext(context.Background(), "hello")
	assert.NotContains(t, buf.String(), "request_id")
}
