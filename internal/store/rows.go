package store

import "github.com/dmitrymomot/glossary/internal/glossary"

const (
	selectTerms = `SELECT id, term, seq_num, slug, description FROM definition`
	orderTerms  = ` ORDER BY term, seq_num`
)

// termRow mirrors the definition table; slug is nullable.
type termRow struct {
	Slug        *string `db:"slug"`
	Term        string  `db:"term"`
	Description string  `db:"description"`
	ID          int64   `db:"id"`
	SeqNum      int     `db:"seq_num"`
}

func (r termRow) toTerm() glossary.Term {
	t := glossary.Term{
		ID:          r.ID,
		Term:        r.Term,
		SeqNum:      r.SeqNum,
		Description: r.Description,
	}
	if r.Slug != nil {
		t.Slug = *r.Slug
	}
	return t
}

func toTerms(rows []termRow) []glossary.Term {
	out := make([]glossary.Term, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toTerm())
	}
	return out
}
