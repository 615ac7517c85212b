package logger

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/paramguard/pkg/validator"
)

// Group bundles attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". A nil err yields an empty Attr,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors records the non-nil errs under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return Group("errors", as...)
}

// RequestID records id under "request_id". Empty ids are dropped.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Field records a parameter name under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Kind records a validation error kind under "kind".
func Kind(kind validator.Kind) slog.Attr {
	return slog.String("kind", kind.String())
}

func ErrorCount(n int) slog.Attr {
	return slog.Int("error_count", n)
}

// ValidationErrors records errs as a "validation_errors" group mapping each
// field to its error kind. Messages are left out since they may echo input.
func ValidationErrors(errs validator.ValidationErrors) slog.Attr {
	if len(errs) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, 0, len(errs))
	for _, e := range errs {
		as = append(as, slog.String(e.Field, e.Kind.String()))
	}
	return Group("validation_errors", as...)
}
