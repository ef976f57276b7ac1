package importer

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/glossary/internal/glossary"
)

// Definition is one parsed glossary entry before it is stored.
type Definition struct {
	Term        string
	Slug        string
	Description string
	SeeAlso     []string
	SeqNum      int
}

// ToTerm converts d into the stored representation.
func (d Definition) ToTerm() glossary.Term {
	return glossary.Term{
		Term:        d.Term,
		SeqNum:      d.SeqNum,
		Slug:        d.Slug,
		Description: d.Description,
	}
}

// Draft pairs the stored representation with the see-also urls.
func (d Definition) Draft() glossary.Draft {
	return glossary.Draft{Term: d.ToTerm(), SeeAlso: d.SeeAlso}
}

// rawDefinition collects every occurrence of each field so cardinality can be
// checked before values are picked.
type rawDefinition struct {
	Terms        []string
	SeqNums      []string
	Slugs        []string
	Descriptions []string
	SeeAlso      []string
}

func (r rawDefinition) definition(index int) (Definition, error) {
	var d Definition

	switch len(r.Terms) {
	case 0:
		return d, formatError(index, "term element not found")
	case 1:
	default:
		return d, formatError(index, "multiple term elements found")
	}
	d.Term = norm.NFC.String(strings.TrimSpace(r.Terms[0]))
	if d.Term == "" {
		return d, formatError(index, "invalid term %q", r.Terms[0])
	}

	switch len(r.SeqNums) {
	case 0:
	case 1:
		n, err := strconv.Atoi(strings.TrimSpace(r.SeqNums[0]))
		if err != nil {
			return d, formatError(index, "invalid sequence number %q", r.SeqNums[0])
		}
		d.SeqNum = n
	default:
		return d, formatError(index, "multiple seq_num elements found")
	}

	switch len(r.Slugs) {
	case 0:
	case 1:
		d.Slug = strings.TrimSpace(r.Slugs[0])
		if d.Slug == "" {
			return d, formatError(index, "invalid slug %q", r.Slugs[0])
		}
	default:
		return d, formatError(index, "multiple slug elements found")
	}

	switch len(r.Descriptions) {
	case 0:
		return d, formatError(index, "description element not found")
	case 1:
	default:
		return d, formatError(index, "multiple description elements found")
	}
	d.Description = r.Descriptions[0]
	if strings.TrimSpace(d.Description) == "" {
		return d, formatError(index, "invalid description %q", d.Description)
	}

	for _, sa := range r.SeeAlso {
		sa = strings.TrimSpace(sa)
		if sa == "" {
			return d, formatError(index, "invalid see_also %q", sa)
		}
		d.SeeAlso = append(d.SeeAlso, sa)
	}

	return d, nil
}

func formatError(index int, format string, args ...any) error {
	return fmt.Errorf("%w: definition %d: %s", ErrFormat, index, fmt.Sprintf(format, args...))
}
