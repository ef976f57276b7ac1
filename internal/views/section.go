package views

import (
	"context"
	"errors"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/glossary/internal/glossary"
)

// ErrUnbalancedFragments is returned when a fragment stream closes a section
// that is not open or ends with one still open.
var ErrUnbalancedFragments = errors.New("views: unbalanced section fragments")

// SectionID returns the element id of a letter section.
func SectionID(letter string) string {
	return "letter-" + letter
}

func sectionBodyID(letter string) string {
	return SectionID(letter) + "-body"
}

// SectionOptions controls the letter section chrome.
type SectionOptions struct {
	// Refresh adds an HTMX affordance that reloads the section from
	// /letters/{letter}.
	Refresh bool
}

// Fragments renders a fragment stream as letter sections.
func Fragments(fs []glossary.Fragment, opts SectionOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newWriter(w)
		open := ""
		for _, f := range fs {
			switch f.Kind {
			case glossary.FragmentOpenSection:
				if open != "" {
					return ErrUnbalancedFragments
				}
				open = f.Letter
				openSection(hw, f.Letter, opts)
			case glossary.FragmentEntry:
				if f.Entry != nil {
					hw.component(ctx, EntryBlock(*f.Entry))
				}
			case glossary.FragmentCloseSection:
				if open != f.Letter {
					return ErrUnbalancedFragments
				}
				open = ""
				hw.raw("</div></section>")
			}
			if hw.err != nil {
				return hw.err
			}
		}
		if open != "" {
			return ErrUnbalancedFragments
		}
		return hw.err
	})
}

// Section renders the fragments of a single letter. An empty fragment list
// renders an empty placeholder section so HTMX swaps have a target.
func Section(letter string, fs []glossary.Fragment) templ.Component {
	if len(fs) > 0 {
		return Fragments(fs, SectionOptions{Refresh: true})
	}
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := newWriter(w)
		hw.raw(`<section class="letter-section empty"`)
		hw.attr("id", SectionID(letter))
		hw.raw(`><p class="empty-note">No terms under `)
		hw.text(letter)
		hw.raw(".</p></section>")
		return hw.err
	})
}

func openSection(hw *htmlWriter, letter string, opts SectionOptions) {
	hw.raw(`<section class="letter-section"`)
	hw.attr("id", SectionID(letter))
	hw.raw(`><h2 class="letter-heading"><button type="button" class="letter-toggle"`)
	hw.attr("data-target", sectionBodyID(letter))
	hw.attr("aria-controls", sectionBodyID(letter))
	hw.raw(` aria-expanded="true">`)
	hw.text(letter)
	hw.raw("</button>")
	if opts.Refresh {
		hw.raw(`<a class="letter-refresh"`)
		hw.attr("href", "/letters/"+letter)
		hw.attr("hx-get", "/letters/"+letter)
		hw.attr("hx-target", "#"+SectionID(letter))
		hw.raw(` hx-swap="outerHTML" title="Reload section">&#8635;</a>`)
	}
	hw.raw(`</h2><div class="letter-body"`)
	hw.attr("id", sectionBodyID(letter))
	hw.raw(">")
}
