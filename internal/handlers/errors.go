package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/glossary/internal"
	"github.com/dmitrymomot/glossary/internal/views"
)

// ErrorHandler renders handler errors. htmx swaps get the bare message so
// it lands inside the target; everything else gets a full error page.
// Errors that are not *internal.HTTPError become a 500 without leaking
// their text.
func ErrorHandler(title string) internal.ErrorHandler {
	return func(c internal.Context, err error) error {
		httpErr := internal.AsHTTPError(err)
		if httpErr == nil {
			httpErr = internal.ErrInternal("Something went wrong.", internal.WithError(err))
		}

		attrs := []any{
			slog.Int("status", httpErr.Code),
			slog.String("path", c.Request().URL.Path),
			slog.Any("error", err),
		}
		if httpErr.Code >= http.StatusInternalServerError {
			c.LogError("request failed", attrs...)
		} else {
			c.LogDebug("request rejected", attrs...)
		}

		if c.IsHTMX() {
			return c.Render(httpErr.Code, views.ErrorMessage(httpErr.Code, httpErr.Message))
		}
		return c.Render(httpErr.Code, views.ErrorPage(title, httpErr.Code, httpErr.Message))
	}
}

// NotFound answers unknown routes through the error handler.
func NotFound(c internal.Context) error {
	return internal.ErrNotFound("Page not found.")
}

// MethodNotAllowed answers known routes requested with the wrong method.
func MethodNotAllowed(c internal.Context) error {
	return internal.ErrMethodNotAllowed("Method not allowed.")
}
