// Package htmx detects htmx requests and writes htmx response headers.
//
// The glossary pages use htmx to reload a single letter section and to run
// live search. Handlers call [Partial] to decide between a fragment and a
// full page; history restores always get the full page because htmx swaps
// them into the body.
//
//	if htmx.Partial(r) {
//		// render only the section
//	}
//
// Render options are collected into a [Config] and applied by the HTTP
// context just before the status line is written:
//
//	c.RenderPartial(http.StatusOK, views.Layout(title, results), results,
//		htmx.WithReplaceURL("/search?q="+url.QueryEscape(q)),
//	)
//
// [RedirectWithStatus] answers htmx with HX-Redirect and a 200, since htmx
// does not follow 3xx responses for swaps.
package htmx
