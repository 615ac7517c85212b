package requestid

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrymomot/paramguard/pkg/logger"
	"github.com/dmitrymomot/paramguard/pkg/validator"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var idValidator = validator.String().
	MinLength(1).
	MaxLength(maxIDLength).
	RequiredCharacters(slices.Concat(validator.LettersNumbers, []rune{'-', '_'}))

// Middleware reuses a well-formed incoming X-Request-ID or generates a UUID,
// stores it in the request context and echoes it in the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !isValid(r.Context(), id) {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

func isValid(ctx context.Context, id string) bool {
	return idValidator.Validate(ctx, validator.Param{Field: Header, Value: id}).OK()
}

// LoggerExtractor adds the request id to log records under "request_id".
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}
