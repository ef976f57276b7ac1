package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/glossary/internal"
	"github.com/dmitrymomot/glossary/internal/glossary"
	"github.com/dmitrymomot/glossary/internal/handlers"
	"github.com/dmitrymomot/glossary/internal/reference"
	"github.com/dmitrymomot/glossary/internal/store"
	"github.com/dmitrymomot/glossary/pkg/cache"
)

const title = "Java Glossary"

var consts = reference.Constants{ChapterBaseURL: "https://example.edu/jones/"}

func newStore(t *testing.T) *store.SQLite {
	t.Helper()

	s, err := store.NewSQLite(context.Background(), ":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	seed := []struct {
		term    glossary.Term
		seeAlso []string
	}{
		{glossary.Term{Term: "array", Description: "<p>An indexed collection.</p>"}, []string{"#iterator", "-4"}},
		{glossary.Term{Term: "class", Description: "<p>A blueprint.</p>"}, nil},
		{glossary.Term{Term: "iterator", Description: "<p>Walks a collection.</p>"}, []string{"-"}},
	}
	for _, d := range seed {
		require.NoError(t, s.CreateTerm(context.Background(), &d.term, d.seeAlso))
	}
	return s
}

func newServer(t *testing.T, s *store.SQLite, opts ...handlers.Option) http.Handler {
	t.Helper()

	svc := glossary.NewService(s, consts)
	return internal.New(
		internal.WithErrorHandler(handlers.ErrorHandler(title)),
		internal.WithNotFoundHandler(handlers.NotFound),
		internal.WithHandlers(handlers.NewGlossary(svc, title, opts...)),
	)
}

func get(h http.Handler, target string, hx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if hx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	t.Parallel()

	rec := get(newServer(t, newStore(t)), "/", false)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, "<title>Java Glossary</title>")
	assert.Contains(t, body, `id="letter-A"`)
	assert.Contains(t, body, `id="letter-I"`)
	assert.NotContains(t, body, `id="letter-B"`)
	assert.Contains(t, body, `href="#iterator-term"`)
	assert.Contains(t, body, "Jones, Chapter 04")
	assert.Contains(t, body, `<span class="see-also-invalid" title="unresolvable reference">-</span>`)
	assert.Less(t, strings.Index(body, "array-term"), strings.Index(body, "class-term"))
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestIndex_Standalone(t *testing.T) {
	t.Parallel()

	rec := get(newServer(t, newStore(t)), "/?standalone=true", false)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, rec.Header().Get("Content-Disposition"), "glossary.html")
	assert.Contains(t, rec.Body.String(), "<style>")
	assert.NotContains(t, rec.Body.String(), "hx-get")
}

func TestLetter(t *testing.T) {
	t.Parallel()

	h := newServer(t, newStore(t))

	t.Run("htmx partial", func(t *testing.T) {
		t.Parallel()

		rec := get(h, "/letters/a", true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Body.String(), `<section class="letter-section" id="letter-A"`))
		assert.Contains(t, rec.Body.String(), "array")
		assert.NotContains(t, rec.Body.String(), "class-term")
	})

	t.Run("full page", func(t *testing.T) {
		t.Parallel()

		rec := get(h, "/letters/C", false)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Body.String(), "<!DOCTYPE html>"))
		assert.Contains(t, rec.Body.String(), `id="class-term"`)
	})

	t.Run("empty letter keeps a swap target", func(t *testing.T) {
		t.Parallel()

		rec := get(h, "/letters/Q", true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="letter-Q"`)
		assert.Contains(t, rec.Body.String(), "No terms under Q.")
	})

	t.Run("unknown letter", func(t *testing.T) {
		t.Parallel()

		rec := get(h, "/letters/AB", false)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "404 Not Found")
		assert.Contains(t, rec.Body.String(), "There is no section &#34;AB&#34;.")
	})

	t.Run("unknown letter over htmx", func(t *testing.T) {
		t.Parallel()

		rec := get(h, "/letters/9", true)
		// htmx only swaps 2xx responses.
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Body.String(), `<div class="error"`))
	})
}

func TestSearch(t *testing.T) {
	t.Parallel()

	h := newServer(t, newStore(t))

	t.Run("htmx results", func(t *testing.T) {
		t.Parallel()

		rec := get(h, "/search?q=ator", true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="iterator-term"`)
		assert.NotContains(t, rec.Body.String(), "array-term")
		assert.Equal(t, "/search?q=ator", rec.Header().Get("HX-Replace-Url"))
	})

	t.Run("case insensitive", func(t *testing.T) {
		t.Parallel()

		rec := get(h, "/search?q=ARR", true)
		assert.Contains(t, rec.Body.String(), `id="array-term"`)
	})

	t.Run("full page", func(t *testing.T) {
		t.Parallel()

		rec := get(h, "/search?q=class", false)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Body.String(), "<!DOCTYPE html>"))
		assert.Contains(t, rec.Body.String(), `id="class-term"`)
		assert.Empty(t, rec.Header().Get("HX-Replace-Url"))
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()

		rec := get(h, "/search?q=zzz", true)
		assert.Contains(t, rec.Body.String(), "No matching terms.")
	})

	t.Run("too long", func(t *testing.T) {
		t.Parallel()

		rec := get(h, "/search?q="+strings.Repeat("a", handlers.MaxQueryLength+1), false)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	rec := get(newServer(t, newStore(t)), "/nowhere", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found.")
}

func TestTermPermalink(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	require.NoError(t, s.CreateTerm(context.Background(),
		&glossary.Term{Term: "abstract class", Slug: "abstract_class", Description: "<p>Partial.</p>"}, nil))
	h := newServer(t, s)

	rec := get(h, "/terms/abstract_class", false)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/#abstract_class-term", rec.Header().Get("Location"))

	rec = get(h, "/terms/abstract_class", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/#abstract_class-term", rec.Header().Get("HX-Redirect"))

	// terms without a stored slug have no permalink
	rec = get(h, "/terms/array", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "There is no term")
}

func TestStoreFailure(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	h := newServer(t, s)
	require.NoError(t, s.Close())

	rec := get(h, "/", false)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "The glossary could not be loaded.")
	assert.NotContains(t, rec.Body.String(), "sql")
}

func TestCache(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	pages := cache.NewMemory[string]()
	t.Cleanup(func() { _ = pages.Close() })

	h := newServer(t, s, handlers.WithCache(pages, 0))

	first := get(h, "/", false).Body.String()
	require.NotContains(t, first, "zebra")
	assert.Equal(t, 1, pages.Len())

	require.NoError(t, s.CreateTerm(context.Background(), &glossary.Term{Term: "zebra", Description: "<p>z</p>"}, nil))
	assert.Equal(t, first, get(h, "/", false).Body.String(), "cached page is served until invalidated")

	get(h, "/letters/Z", true)
	get(h, "/?standalone=true", false)
	assert.Equal(t, 3, pages.Len())

	require.NoError(t, pages.Clear(context.Background()))
	assert.Contains(t, get(h, "/", false).Body.String(), "zebra")
}
