package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/glossary/internal/glossary"
	"github.com/dmitrymomot/glossary/internal/reference"
)

// Reference renders a resolved see-also reference: a link for glossary,
// chapter and URL kinds, escaped text for plain references.
func Reference(ref reference.Reference) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := newWriter(w)
		switch ref.Kind {
		case reference.KindGlossary:
			hw.raw(`<a class="ref ref-glossary"`)
			hw.attr("href", ref.Href)
			hw.attr("onclick", "revealTerm('"+ref.Anchor+"')")
			hw.raw(">")
			hw.text(ref.Label)
			hw.raw("</a>")
		case reference.KindChapter:
			hw.raw(`<a class="ref ref-chapter"`)
			hw.attr("href", ref.Href)
			hw.raw(` target="_blank" rel="noopener">`)
			hw.text(ref.Label)
			hw.raw("</a>")
		case reference.KindURL:
			hw.raw(`<a class="ref ref-url"`)
			hw.attr("href", ref.Href)
			hw.raw(` target="_blank" rel="noopener">`)
			hw.text(ref.Label)
			hw.raw("</a>")
		default:
			hw.raw(`<span class="ref ref-plain">`)
			hw.text(ref.Label)
			hw.raw("</span>")
		}
		return hw.err
	})
}

// InvalidReference renders the visible marker for a reference that failed to
// resolve.
func InvalidReference(raw string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := newWriter(w)
		hw.raw(`<span class="see-also-invalid" title="unresolvable reference">`)
		hw.text(raw)
		hw.raw("</span>")
		return hw.err
	})
}

// SeeAlsoList renders the "See also" block of an entry. Nothing is written
// when refs is empty.
func SeeAlsoList(refs []glossary.EntryRef) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(refs) == 0 {
			return nil
		}
		hw := newWriter(w)
		hw.raw(`<div class="see-also"><span class="see-also-title">See also:</span><ul>`)
		for _, r := range refs {
			hw.raw("<li>")
			if r.Valid() {
				hw.component(ctx, Reference(r.Ref))
			} else {
				hw.component(ctx, InvalidReference(r.Raw))
			}
			hw.raw("</li>")
		}
		hw.raw("</ul></div>")
		return hw.err
	})
}
