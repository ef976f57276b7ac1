package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/glossary/internal/glossary"
	"github.com/dmitrymomot/glossary/pkg/sanitizer"
)

// EntryBlock renders one term: a toggle heading carrying the term anchor and
// a hidden definition body carrying the definition anchor.
func EntryBlock(e glossary.Entry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(w)
		hw.raw(`<article class="entry"><h3 class="term"><button type="button" class="term-toggle"`)
		hw.attr("id", e.TermAnchor)
		hw.attr("data-target", e.DefAnchor)
		hw.attr("aria-controls", e.DefAnchor)
		hw.raw(` aria-expanded="false">`)
		hw.text(e.Display)
		hw.raw(`</button></h3><div class="definition"`)
		hw.attr("id", e.DefAnchor)
		hw.raw(" hidden>")
		hw.component(ctx, templ.Raw(sanitizer.SanitizeDescription(e.Term.Description)))
		hw.component(ctx, SeeAlsoList(e.Refs))
		hw.raw("</div></article>")
		return hw.err
	})
}
