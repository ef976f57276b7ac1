package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/glossary/internal/glossary"
)

// SearchResultsID is the element search results are swapped into.
const SearchResultsID = "search-results"

// SearchForm renders the term search box. With HTMX the results replace
// #search-results; without it the form submits to /search.
func SearchForm(query string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := newWriter(w)
		hw.raw(`<form class="search" action="/search" method="get" role="search"`)
		hw.attr("hx-get", "/search")
		hw.attr("hx-target", "#"+SearchResultsID)
		hw.raw(` hx-trigger="input changed delay:300ms from:input, submit">`)
		hw.raw(`<input type="search" name="q" placeholder="Search terms (SQL LIKE patterns allowed)"`)
		hw.attr("value", query)
		hw.raw(`><button type="submit">Search</button></form><div`)
		hw.attr("id", SearchResultsID)
		hw.raw("></div>")
		return hw.err
	})
}

// SearchResults renders the entries matching query.
func SearchResults(query string, entries []glossary.Entry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(w)
		hw.raw(`<section class="search-results">`)
		if query == "" {
			hw.raw("</section>")
			return hw.err
		}
		hw.raw(`<h2>Results for &ldquo;`)
		hw.text(query)
		hw.raw("&rdquo;</h2>")
		if len(entries) == 0 {
			hw.raw(`<p class="empty-note">No matching terms.</p>`)
		}
		for _, e := range entries {
			hw.component(ctx, EntryBlock(e))
		}
		hw.raw("</section>")
		return hw.err
	})
}
