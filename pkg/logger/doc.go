// Package logger builds slog loggers with context extraction and optional
// Sentry fan-out.
//
// New returns a JSON logger on stdout at info level. Options change the
// level, switch to the text format, redirect output and add context
// extractors:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//		logger.WithExtractors(middlewares.RequestIDExtractor()),
//	)
//
// A ContextExtractor pulls one attribute out of the context on every log
// call, so request scoped values such as the request id show up without
// passing them around:
//
//	log.InfoContext(ctx, "section rendered", slog.String("letter", "C"))
//	// {"level":"INFO","msg":"section rendered","letter":"C","request_id":"..."}
//
// NewWithSentry also forwards warnings and errors to Sentry; errors create
// issues. With an empty DSN it behaves exactly like New, so the same code
// path works in development.
//
// NewNope discards everything and is the default wherever a logger is
// optional.
package logger
