package store

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/glossary/internal/glossary"
)

//go:embed migrations
var migrationsFS embed.FS

const migrationsTable = "glossary_migrations"

// Store is the persistence layer of the glossary.
type Store interface {
	glossary.Repository

	// CreateTerm inserts term and its see-also urls in one transaction and
	// sets term.ID.
	CreateTerm(ctx context.Context, term *glossary.Term, seeAlso []string) error
	// ImportTerms inserts every draft in one transaction, first removing all
	// stored terms when replace is set. On error nothing is changed.
	ImportTerms(ctx context.Context, drafts []glossary.Draft, replace bool) error
	// DeleteAll removes every term and see-also row.
	DeleteAll(ctx context.Context) error
	// Count returns the number of stored terms.
	Count(ctx context.Context) (int, error)
	// Healthcheck pings the database.
	Healthcheck(ctx context.Context) error
	Close() error
}

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config selects and configures a Store implementation.
type Config struct {
	Driver   string
	URL      string
	MaxConns int32
	MinConns int32
}

// Open connects to the configured database and applies migrations.
func Open(ctx context.Context, cfg Config, log *slog.Logger) (Store, error) {
	switch cfg.Driver {
	case DriverSQLite, "sqlite3", "":
		return NewSQLite(ctx, cfg.URL, log)
	case DriverPostgres, "postgresql", "pgx":
		return NewPostgres(ctx, cfg, log)
	default:
		return nil, ErrUnsupportedDriver
	}
}

func validateTerm(t *glossary.Term) error {
	if t == nil || t.Term == "" || t.Description == "" {
		return ErrInvalidTerm
	}
	return nil
}

func validateDrafts(drafts []glossary.Draft) error {
	for idx := range drafts {
		if err := validateTerm(&drafts[idx].Term); err != nil {
			return draftError(idx, drafts[idx], err)
		}
	}
	return nil
}

func draftError(idx int, d glossary.Draft, err error) error {
	return fmt.Errorf("definition %d (%s): %w", idx, glossary.Display(d.Term), err)
}

// nullable maps an empty slug to SQL NULL so the partial unique index only
// covers stored slugs.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
