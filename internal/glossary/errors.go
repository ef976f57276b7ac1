package glossary

import "errors"

var (
	ErrInvalidTerm   = errors.New("glossary: invalid term")
	ErrTermNotFound  = errors.New("glossary: term not found")
	ErrInvalidLetter = errors.New("glossary: invalid letter")
	ErrFetchTerms    = errors.New("glossary: failed to fetch terms")
	ErrFetchSeeAlso  = errors.New("glossary: failed to fetch see also")
)
