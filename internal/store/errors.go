package store

import (
	"errors"

	"github.com/dmitrymomot/glossary/internal/glossary"
)

var (
	// ErrNotFound is glossary.ErrTermNotFound, so the service can tell a
	// missing term from a failed query.
	ErrNotFound          = glossary.ErrTermNotFound
	ErrDuplicateTerm     = errors.New("store: term with this sequence number already exists")
	ErrDuplicateSlug     = errors.New("store: slug already in use")
	ErrConnectionFailed  = errors.New("store: database connection failed")
	ErrMigrationFailed   = errors.New("store: database migration failed")
	ErrUnsupportedDriver = errors.New("store: unsupported driver")
	ErrQueryFailed       = errors.New("store: query failed")
	ErrInvalidTerm       = errors.New("store: invalid term")
)
