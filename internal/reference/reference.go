package reference

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/glossary/pkg/slug"
)

// Markers recognised as the first character of a raw reference.
const (
	MarkerGlossary = '#'
	MarkerChapter  = '-'
	MarkerURL      = '@'
)

// ChapterLabelPrefix precedes the padded chapter number in chapter labels.
const ChapterLabelPrefix = "Jones, Chapter "

// TermAnchorSuffix is appended to a term name before it is sanitized into the
// anchor id of its heading.
const TermAnchorSuffix = "-term"

// Kind identifies the interpretation of a reference.
type Kind int

const (
	KindPlain Kind = iota
	KindGlossary
	KindChapter
	KindURL
)

func (k Kind) String() string {
	switch k {
	case KindGlossary:
		return "glossary"
	case KindChapter:
		return "chapter"
	case KindURL:
		return "url"
	default:
		return "plain"
	}
}

// Constants holds the fixed values references are resolved against.
type Constants struct {
	// ChapterBaseURL is prefixed to "NN.pdf" for chapter references.
	ChapterBaseURL string
}

// Reference is a classified see-also entry.
// Only the fields relevant to Kind are populated.
type Reference struct {
	Raw      string
	Label    string
	Href     string
	Anchor   string // glossary: sanitized id of the target term heading
	Chapter  string // chapter: zero-padded chapter number
	Fragment string // url: "#part" or empty
	Kind     Kind
}

// IsLink reports whether the reference renders as a hyperlink.
func (r Reference) IsLink() bool {
	return r.Kind != KindPlain
}

// Resolve classifies raw by its first character.
// Errors wrap ErrInvalidInput.
func Resolve(raw string, c Constants) (Reference, error) {
	if raw == "" {
		return Reference{}, invalid(raw, "empty reference")
	}

	switch raw[0] {
	case MarkerGlossary:
		return resolveGlossary(raw)
	case MarkerChapter:
		return resolveChapter(raw, c)
	case MarkerURL:
		return resolveURL(raw), nil
	default:
		return Reference{Kind: KindPlain, Raw: raw, Label: raw}, nil
	}
}

func resolveGlossary(raw string) (Reference, error) {
	target := raw[1:]
	if target == "" {
		return Reference{}, invalid(raw, "glossary reference without a term")
	}

	anchor, err := slug.Sanitize(target + TermAnchorSuffix)
	if err != nil {
		return Reference{}, errors.Join(ErrInvalidInput, err)
	}

	return Reference{
		Kind:   KindGlossary,
		Raw:    raw,
		Label:  target,
		Anchor: anchor,
		Href:   "#" + anchor,
	}, nil
}

func resolveChapter(raw string, c Constants) (Reference, error) {
	chapter := strings.TrimSpace(raw[1:])
	if chapter == "" {
		return Reference{}, invalid(raw, "chapter reference without a number")
	}
	if utf8.RuneCountInString(chapter) == 1 {
		chapter = "0" + chapter
	}

	return Reference{
		Kind:    KindChapter,
		Raw:     raw,
		Label:   ChapterLabelPrefix + chapter,
		Chapter: chapter,
		Href:    c.ChapterBaseURL + chapter + ".pdf",
	}, nil
}

// resolveURL splits "@part label" at the first space. Without a space the
// whole remainder is the label and the fragment is empty.
func resolveURL(raw string) Reference {
	rest := raw[1:]

	var fragment, label string
	if part, text, ok := strings.Cut(rest, " "); ok {
		fragment = "#" + part
		label = strings.TrimSpace(text)
	} else {
		label = rest
	}

	return Reference{
		Kind:     KindURL,
		Raw:      raw,
		Label:    label,
		Fragment: fragment,
		Href:     "https://" + fragment,
	}
}

func invalid(raw, reason string) error {
	return fmt.Errorf("%w: %s: %q", ErrInvalidInput, reason, raw)
}
