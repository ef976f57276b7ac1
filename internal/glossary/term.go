package glossary

// Term is a stored glossary definition.
type Term struct {
	Term        string `db:"term" json:"term"`
	Slug        string `db:"slug" json:"slug,omitempty"`
	Description string `db:"description" json:"description"`
	ID          int64  `db:"id" json:"id"`
	SeqNum      int    `db:"seq_num" json:"seq_num"`
}

// SeeAlso is a stored cross reference of a term. The first character of URL
// selects how it is interpreted.
type SeeAlso struct {
	URL    string `db:"url" json:"url"`
	ID     int64  `db:"id" json:"id"`
	TermID int64  `db:"term_id" json:"term_id"`
}

// Draft is a term with its see-also urls, not yet stored.
type Draft struct {
	Term    Term
	SeeAlso []string
}
