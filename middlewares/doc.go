// Package middlewares holds the HTTP middleware the glossary server runs on
// every request.
//
//	app := internal.New(
//		internal.WithLogger("glossary", middlewares.RequestIDExtractor()),
//		internal.WithMiddleware(
//			middlewares.RequestID(),
//			middlewares.RequestLogger("/health/live", "/health/ready"),
//			middlewares.Recover(),
//		),
//	)
//
// RequestID reuses an upstream X-Request-ID or X-Correlation-ID header and
// generates a UUID otherwise. With RequestIDExtractor registered on the
// logger every record written with the request context carries the ID.
//
// Recover converts panics into a 500 [internal.HTTPError] wrapping a
// [PanicError], so the regular error handler renders the error page:
//
//	if pe, ok := middlewares.AsPanicError(err); ok {
//		log.Error("panic", "value", pe.Value)
//	}
//
// RequestLogger writes one record per request with status, size and
// duration.
package middlewares
