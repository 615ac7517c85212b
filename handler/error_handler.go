package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/paramguard/pkg/logger"
	"github.com/dmitrymomot/paramguard/pkg/request"
	"github.com/dmitrymomot/paramguard/pkg/requestid"
	"github.com/dmitrymomot/paramguard/pkg/validator"
)

// CodeValidationFailed is the error code reported for failed validation.
const CodeValidationFailed = "validation_failed"

// ErrorHandler writes the response for a request the middleware rejected.
type ErrorHandler func(ctx Context, err error)

// ErrorPageParams contains data for rendering error pages.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
	Errors     validator.ValidationErrors
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders an HTML page instead of the JSON body when set.
	ErrorPage func(ErrorPageParams) templ.Component

	// FailureStatus is used for validation failures. Zero means 400.
	FailureStatus int

	// LogFailures logs validation failures. Other errors are always logged.
	LogFailures bool
}

// ErrorInfo is the classified form of an error.
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	Errors     validator.ValidationErrors
	LogLevel   slog.Level
}

func (i ErrorInfo) isValidation() bool {
	return i.Code == CodeValidationFailed
}

func classifyError(err error, failureStatus int) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrInternalServerError.Key,
		Message:    "An error occurred processing your request",
		LogLevel:   slog.LevelError,
	}

	var failed *request.ValidationFailedError
	switch {
	case errors.As(err, &failed):
		info.StatusCode = failureStatus
		info.Code = CodeValidationFailed
		info.Message = failed.Error()
		info.Errors = failed.Errors()
	case validator.IsValidationError(err):
		info.StatusCode = failureStatus
		info.Code = CodeValidationFailed
		info.Errors = validator.ExtractValidationErrors(err)
		info.Message = info.Errors.Error()
	default:
		var httpErr HTTPError
		if errors.As(err, &httpErr) {
			info.StatusCode = httpErr.Code
			info.Code = httpErr.Key
			info.Message = http.StatusText(httpErr.Code)
		}
	}

	if info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler returns the default ErrorHandler. It logs the failure and
// answers with the JSON ErrorResponse, or with cfg.ErrorPage when set.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	if cfg.FailureStatus == 0 {
		cfg.FailureStatus = http.StatusBadRequest
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		reqID := requestid.FromContext(r.Context())
		info := classifyError(err, cfg.FailureStatus)

		if !info.isValidation() || cfg.LogFailures {
			logError(log, r, reqID, err, info)
		}

		if cfg.ErrorPage != nil {
			renderPage(ctx, cfg.ErrorPage, info, reqID, log)
			return
		}

		body := ErrorResponse{Error: ErrorDetail{
			Code:    info.Code,
			Message: info.Message,
			Errors:  info.Errors,
		}}
		if werr := writeJSON(ctx.ResponseWriter(), info.StatusCode, body); werr != nil {
			log.ErrorContext(r.Context(), "failed to write error response",
				logger.RequestID(reqID),
				logger.Error(werr),
				logger.Event("write_error_response"),
			)
		}
	}
}

func logError(log *slog.Logger, r *http.Request, reqID string, err error, info ErrorInfo) {
	msg := "request error"
	if info.isValidation() {
		msg = "request validation failed"
	}

	log.LogAttrs(r.Context(), info.LogLevel, msg,
		logger.Component("validation"),
		logger.RequestID(reqID),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.ErrorCount(len(info.Errors)),
		logger.ValidationErrors(info.Errors),
	)
}

func renderPage(ctx Context, page func(ErrorPageParams) templ.Component, info ErrorInfo, reqID string, log *slog.Logger) {
	r := ctx.Request()
	w := ctx.ResponseWriter()

	component := page(ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  reqID,
		RetryURL:   r.URL.Path,
		Errors:     info.Errors,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(info.StatusCode)
	if err := component.Render(r.Context(), w); err != nil {
		log.ErrorContext(r.Context(), "failed to render error page",
			logger.RequestID(reqID),
			logger.Error(err),
			logger.Event("render_error_page"),
		)
	}
}
