// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers with consistent key names.
//
// New picks a JSON or text handler and wraps it in a LogHandlerDecorator,
// which runs the registered ContextExtractor callbacks on every record. That
// is how request-scoped values such as a request id reach log lines without
// being passed around explicitly:
//
//	log := logger.New(
//		logger.WithEnvironment("production", "orders-api"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
//	log.WarnContext(ctx, "request validation failed",
//		logger.ErrorCount(len(errs)),
//		logger.ValidationErrors(errs),
//	)
//
// Error, RequestID and ValidationErrors return an empty slog.Attr for empty
// input, so they can be passed unconditionally.
package logger
