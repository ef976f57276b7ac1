package glossary

import (
	"errors"
	"strconv"

	"github.com/dmitrymomot/glossary/internal/reference"
	"github.com/dmitrymomot/glossary/pkg/slug"
)

const (
	termAnchorSuffix = "-term"
	defAnchorSuffix  = "-def"
)

// Entry is a term prepared for rendering.
type Entry struct {
	Term       Term
	Display    string
	TermAnchor string
	DefAnchor  string
	Refs       []EntryRef
}

// EntryRef is one see-also reference of an entry. When the raw text could not
// be resolved Err is set and Ref is zero; the raw text is kept for display.
type EntryRef struct {
	Err error
	Raw string
	Ref reference.Reference
}

// Valid reports whether the reference was resolved.
func (r EntryRef) Valid() bool {
	return r.Err == nil
}

// HasSeeAlso reports whether the entry has at least one see-also row.
func (e Entry) HasSeeAlso() bool {
	return len(e.Refs) > 0
}

// InvalidRefs returns the references that failed to resolve.
func (e Entry) InvalidRefs() []EntryRef {
	var out []EntryRef
	for _, r := range e.Refs {
		if !r.Valid() {
			out = append(out, r)
		}
	}
	return out
}

// NewEntry builds the renderable entry of term.
//
// The anchor base is the stored slug when present, otherwise the term text
// with the sequence number appended. Both anchors are derived from the same
// base so the heading and its definition body always match.
func NewEntry(term Term, seeAlso []SeeAlso, c reference.Constants) (Entry, error) {
	if term.Term == "" {
		return Entry{}, ErrInvalidTerm
	}

	base := term.Slug
	if base == "" {
		base = slug.Derive(term.Term, term.SeqNum)
	}

	termAnchor, err := slug.Sanitize(base + termAnchorSuffix)
	if err != nil {
		return Entry{}, errors.Join(ErrInvalidTerm, err)
	}
	defAnchor, err := slug.Sanitize(base + defAnchorSuffix)
	if err != nil {
		return Entry{}, errors.Join(ErrInvalidTerm, err)
	}

	e := Entry{
		Term:       term,
		Display:    Display(term),
		TermAnchor: termAnchor,
		DefAnchor:  defAnchor,
	}

	if len(seeAlso) > 0 {
		e.Refs = make([]EntryRef, 0, len(seeAlso))
	}
	for _, sa := range seeAlso {
		ref, err := reference.Resolve(sa.URL, c)
		if err != nil {
			e.Refs = append(e.Refs, EntryRef{Err: err, Raw: sa.URL})
			continue
		}
		e.Refs = append(e.Refs, EntryRef{Raw: sa.URL, Ref: ref})
	}

	return e, nil
}

// Display returns the heading text of a term: the term itself, followed by
// the sequence number in parentheses when it is not zero.
func Display(t Term) string {
	if t.SeqNum == 0 {
		return t.Term
	}
	return t.Term + "(" + strconv.Itoa(t.SeqNum) + ")"
}
