// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware keeps a client-supplied X-Request-ID when it is 1 to 128
// characters of letters, digits, '-' and '_'; anything else is replaced with
// a new UUID. The id is stored in the request context (FromContext) and
// returned in the response header. LoggerExtractor feeds it to loggers built
// with package logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	http.ListenAndServe(":8080", requestid.Middleware(mux))
package requestid
