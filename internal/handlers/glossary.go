package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/glossary/internal"
	"github.com/dmitrymomot/glossary/internal/glossary"
	"github.com/dmitrymomot/glossary/internal/views"
	"github.com/dmitrymomot/glossary/pkg/cache"
	"github.com/dmitrymomot/glossary/pkg/htmx"
	"github.com/dmitrymomot/glossary/pkg/logger"
)

// MaxQueryLength bounds the search input.
const MaxQueryLength = 100

// Glossary serves the page, letter sections and search.
type Glossary struct {
	svc    *glossary.Service
	pages  cache.Cache[string]
	logger *slog.Logger
	title  string
	ttl    time.Duration
}

// Option configures a Glossary handler.
type Option func(*Glossary)

// WithCache caches rendered HTML in c for ttl. Zero ttl uses the cache default.
func WithCache(c cache.Cache[string], ttl time.Duration) Option {
	return func(g *Glossary) {
		if c != nil {
			g.pages = c
			g.ttl = ttl
		}
	}
}

// WithLogger sets the handler logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Glossary) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGlossary creates the glossary handler. Without WithCache every request
// renders from the store.
func NewGlossary(svc *glossary.Service, title string, opts ...Option) *Glossary {
	g := &Glossary{
		svc:    svc,
		title:  title,
		pages:  cache.NewNoop[string](),
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Routes implements internal.Handler.
func (g *Glossary) Routes(r internal.Router) {
	r.GET("/", g.index)
	r.GET("/letters/{letter}", g.letter)
	r.GET("/search", g.search)
	r.GET("/terms/{slug}", g.term)
}

func (g *Glossary) index(c internal.Context) error {
	standalone := internal.QueryDefault(c, "standalone", false)

	key := "page"
	if standalone {
		key = "page:standalone"
	}

	html, err := cache.GetOrSet(c, g.pages, key, func(ctx context.Context) (string, time.Duration, error) {
		fs, err := g.svc.Fragments(ctx)
		if err != nil {
			return "", 0, err
		}
		return g.render(ctx, views.Page(views.PageData{
			Title:      g.title,
			Fragments:  fs,
			Standalone: standalone,
		}))
	})
	if err != nil {
		return internal.ErrInternal("The glossary could not be loaded.", internal.WithError(err))
	}

	if standalone {
		c.SetHeader("Content-Disposition", `attachment; filename="glossary.html"`)
	}
	return c.Render(http.StatusOK, templ.Raw(html))
}

func (g *Glossary) letter(c internal.Context) error {
	letter, err := glossary.ParseLetter(c.Param("letter"))
	if err != nil {
		return internal.ErrNotFound(fmt.Sprintf("There is no section %q.", c.Param("letter")), internal.WithError(err))
	}

	html, err := cache.GetOrSet(c, g.pages, "section:"+letter, func(ctx context.Context) (string, time.Duration, error) {
		fs, err := g.svc.Section(ctx, letter)
		if err != nil {
			return "", 0, err
		}
		return g.render(ctx, views.Section(letter, fs))
	})
	if err != nil {
		return internal.ErrInternal("The section could not be loaded.", internal.WithError(err))
	}

	section := templ.Raw(html)
	return c.RenderPartial(http.StatusOK, views.Layout(g.title, section), section)
}

func (g *Glossary) search(c internal.Context) error {
	q := strings.TrimSpace(c.Query("q"))
	if utf8.RuneCountInString(q) > MaxQueryLength {
		return internal.ErrBadRequest(fmt.Sprintf("Search text is limited to %d characters.", MaxQueryLength))
	}

	entries, err := g.svc.Search(c, q)
	if err != nil {
		return internal.ErrInternal("Search failed.", internal.WithError(err))
	}

	results := views.SearchResults(q, entries)
	return c.RenderPartial(http.StatusOK, views.Layout(g.title, results), results,
		htmx.WithReplaceURL("/search?q="+url.QueryEscape(q)),
	)
}

// term redirects a permalink to the entry anchor on the full page.
func (g *Glossary) term(c internal.Context) error {
	slug := c.Param("slug")
	e, err := g.svc.EntryBySlug(c, slug)
	if errors.Is(err, glossary.ErrTermNotFound) {
		return internal.ErrNotFound(fmt.Sprintf("There is no term %q.", slug), internal.WithError(err))
	}
	if err != nil {
		return internal.ErrInternal("The term could not be loaded.", internal.WithError(err))
	}
	return c.Redirect(http.StatusFound, "/#"+e.TermAnchor)
}

func (g *Glossary) render(ctx context.Context, c templ.Component) (string, time.Duration, error) {
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		if errors.Is(err, views.ErrUnbalancedFragments) {
			g.logger.ErrorContext(ctx, "glossary produced unbalanced sections", slog.Any("error", err))
		}
		return "", 0, err
	}
	return b.String(), g.ttl, nil
}
