package htmx_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/glossary/pkg/htmx"
)

func TestApplyHeaders(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	htmx.NewConfig(htmx.WithReplaceURL("/search?q=loop")).ApplyHeaders(rec)
	assert.Equal(t, "/search?q=loop", rec.Header().Get("HX-Replace-Url"))
}

func TestApplyHeaders_Empty(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	htmx.NewConfig().ApplyHeaders(rec)
	assert.Empty(t, rec.Header())

	var cfg *htmx.Config
	assert.NotPanics(t, func() { cfg.ApplyHeaders(rec) })
}

func TestWithReplaceURL_LastWins(t *testing.T) {
	t.Parallel()

	cfg := htmx.NewConfig(htmx.WithReplaceURL("/search?q=a"), htmx.WithReplaceURL("/search?q=b"))
	assert.Equal(t, "/search?q=b", cfg.ReplaceURL)
}
