package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/glossary/internal/glossary"
)

// HTMXScriptURL is loaded by served pages for the section refresh and search
// affordances.
const HTMXScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// PageData is the input of Page.
type PageData struct {
	Title     string
	Fragments []glossary.Fragment
	// Standalone inlines the stylesheet and script and drops everything that
	// needs the server (search, section refresh).
	Standalone bool
}

// Page renders the full glossary document.
func Page(p PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(w)
		writeHead(hw, p.Title, p.Standalone)
		hw.raw(`<body><header class="page-header"><h1>`)
		hw.text(p.Title)
		hw.raw("</h1>")
		hw.component(ctx, LetterIndex(SectionLetters(p.Fragments)))
		if !p.Standalone {
			hw.component(ctx, SearchForm(""))
		}
		hw.raw(`</header><main id="glossary">`)
		hw.component(ctx, Fragments(p.Fragments, SectionOptions{Refresh: !p.Standalone}))
		hw.raw("</main>")
		writeScripts(hw, p.Standalone)
		hw.raw("</body></html>")
		return hw.err
	})
}

// Layout wraps content in the document shell used by the partial pages
// (single letter, search, errors) when they are requested without HTMX.
func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(w)
		writeHead(hw, title, false)
		hw.raw(`<body><header class="page-header"><h1><a href="/">`)
		hw.text(title)
		hw.raw("</a></h1>")
		hw.component(ctx, SearchForm(""))
		hw.raw(`</header><main id="glossary">`)
		hw.component(ctx, content)
		hw.raw("</main>")
		writeScripts(hw, false)
		hw.raw("</body></html>")
		return hw.err
	})
}

// LetterIndex renders in-page links to the given letter sections.
func LetterIndex(letters []string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(letters) == 0 {
			return nil
		}
		hw := newWriter(w)
		hw.raw(`<nav class="letter-index">`)
		for _, l := range letters {
			hw.raw("<a")
			hw.attr("href", "#"+SectionID(l))
			hw.raw(">")
			hw.text(l)
			hw.raw("</a>")
		}
		hw.raw("</nav>")
		return hw.err
	})
}

// SectionLetters returns the letters that open a section, in order.
func SectionLetters(fs []glossary.Fragment) []string {
	var out []string
	for _, f := range fs {
		if f.Kind == glossary.FragmentOpenSection {
			out = append(out, f.Letter)
		}
	}
	return out
}

func writeHead(hw *htmlWriter, title string, standalone bool) {
	hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
	hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	hw.raw("<title>")
	hw.text(title)
	hw.raw("</title>")
	if standalone {
		hw.raw("<style>")
		hw.raw(stylesheet)
		hw.raw("</style>")
		return
	}
	hw.raw(`<link rel="stylesheet" href="/static/glossary.css">`)
}

func writeScripts(hw *htmlWriter, standalone bool) {
	if standalone {
		hw.raw("<script>")
		hw.raw(script)
		hw.raw("</script>")
		return
	}
	hw.raw(`<script src="` + HTMXScriptURL + `"></script>`)
	hw.raw(`<script src="/static/glossary.js"></script>`)
}
