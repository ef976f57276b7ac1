package middlewares_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/glossary/internal"
	"github.com/dmitrymomot/glossary/middlewares"
	"github.com/dmitrymomot/glossary/pkg/logger"
)

type routes func(r internal.Router)

func (fn routes) Routes(r internal.Router) { fn(r) }

// newApp mounts h on GET /test behind mw and captures JSON logs in buf.
func newApp(t *testing.T, buf *bytes.Buffer, h internal.HandlerFunc, mw ...internal.Middleware) http.Handler {
	t.Helper()

	log := logger.New(
		logger.WithWriter(buf),
		logger.WithLevel(slog.LevelDebug),
		logger.WithExtractors(middlewares.RequestIDExtractor()),
	)

	return internal.New(
		internal.WithCustomLogger(log),
		internal.WithMiddleware(mw...),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/test", h)
		})),
	)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// logLines decodes every JSON record written to buf.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for line := range strings.Lines(buf.String()) {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func findLog(t *testing.T, buf *bytes.Buffer, msg string) map[string]any {
	t.Helper()

	for _, rec := range logLines(t, buf) {
		if rec["msg"] == msg {
			return rec
		}
	}
	t.Fatalf("no %q record in logs:\n%s", msg, buf.String())
	return nil
}
