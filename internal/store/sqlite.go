package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/dmitrymomot/glossary/internal/glossary"
	"github.com/dmitrymomot/glossary/pkg/db"
)

// SQLite implements Store on a SQLite database file.
type SQLite struct {
	db *sqlx.DB
}

// NewSQLite opens the database at dsn (a file path or ":memory:"), enables
// foreign keys and applies migrations.
func NewSQLite(ctx context.Context, dsn string, log *slog.Logger) (*SQLite, error) {
	if dsn == "" {
		dsn = ":memory:"
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	conn, err := sqlx.Open("sqlite3", dsn+sep+"_foreign_keys=on")
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}
	// Every connection to :memory: is a separate database.
	if strings.HasPrefix(dsn, ":memory:") {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Join(ErrConnectionFailed, err)
	}

	if err := db.MigrateSQL(ctx, conn.DB, db.DialectSQLite, migrationsFS, "migrations/sqlite", migrationsTable, log); err != nil {
		_ = conn.Close()
		return nil, errors.Join(ErrMigrationFailed, err)
	}

	return &SQLite{db: conn}, nil
}

func (s *SQLite) TermsByLetter(ctx context.Context, letter string) ([]glossary.Term, error) {
	var rows []termRow
	q := selectTerms + ` WHERE upper(substr(term, 1, 1)) = upper(?)` + orderTerms
	if err := s.db.SelectContext(ctx, &rows, q, letter); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return toTerms(rows), nil
}

func (s *SQLite) SeeAlso(ctx context.Context, termID int64) ([]glossary.SeeAlso, error) {
	var rows []glossary.SeeAlso
	q := `SELECT id, term_id, url FROM see_also WHERE term_id = ? ORDER BY url`
	if err := s.db.SelectContext(ctx, &rows, q, termID); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return rows, nil
}

// Search matches pattern with LIKE, which SQLite evaluates case-insensitively
// for ASCII.
func (s *SQLite) Search(ctx context.Context, pattern string) ([]glossary.Term, error) {
	var rows []termRow
	q := selectTerms + ` WHERE term LIKE ?` + orderTerms
	if err := s.db.SelectContext(ctx, &rows, q, pattern); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return toTerms(rows), nil
}

func (s *SQLite) TermBySlug(ctx context.Context, slug string) (glossary.Term, error) {
	var row termRow
	if err := s.db.GetContext(ctx, &row, selectTerms+` WHERE slug = ?`, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return glossary.Term{}, ErrNotFound
		}
		return glossary.Term{}, errors.Join(ErrQueryFailed, err)
	}
	return row.toTerm(), nil
}

func (s *SQLite) CreateTerm(ctx context.Context, term *glossary.Term, seeAlso []string) error {
	if err := validateTerm(term); err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Join(ErrQueryFailed, err)
	}
	defer func() { _ = tx.Rollback() }()

	id, err := insertSQLite(ctx, tx, *term, seeAlso)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Join(ErrQueryFailed, err)
	}
	term.ID = id
	return nil
}

func (s *SQLite) ImportTerms(ctx context.Context, drafts []glossary.Draft, replace bool) error {
	if err := validateDrafts(drafts); err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Join(ErrQueryFailed, err)
	}
	defer func() { _ = tx.Rollback() }()

	if replace {
		if _, err := tx.ExecContext(ctx, `DELETE FROM definition`); err != nil {
			return errors.Join(ErrQueryFailed, err)
		}
	}
	for idx, d := range drafts {
		if _, err := insertSQLite(ctx, tx, d.Term, d.SeeAlso); err != nil {
			return draftError(idx, d, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Join(ErrQueryFailed, err)
	}
	return nil
}

func insertSQLite(ctx context.Context, tx *sqlx.Tx, term glossary.Term, seeAlso []string) (int64, error) {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO definition (term, seq_num, slug, description) VALUES (?, ?, ?, ?)`,
		term.Term, term.SeqNum, nullable(term.Slug), term.Description,
	)
	if err != nil {
		return 0, sqliteError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Join(ErrQueryFailed, err)
	}

	for _, url := range seeAlso {
		if _, err := tx.ExecContext(ctx, `INSERT INTO see_also (term_id, url) VALUES (?, ?)`, id, url); err != nil {
			return 0, errors.Join(ErrQueryFailed, fmt.Errorf("see also %q: %w", url, err))
		}
	}
	return id, nil
}

func (s *SQLite) DeleteAll(ctx context.Context) error {
	// see_also rows go with their definition through ON DELETE CASCADE.
	if _, err := s.db.ExecContext(ctx, `DELETE FROM definition`); err != nil {
		return errors.Join(ErrQueryFailed, err)
	}
	return nil
}

func (s *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT count(*) FROM definition`); err != nil {
		return 0, errors.Join(ErrQueryFailed, err)
	}
	return n, nil
}

func (s *SQLite) Healthcheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return errors.Join(ErrConnectionFailed, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func sqliteError(err error) error {
	var se sqlite3.Error
	if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique {
		if strings.Contains(se.Error(), "definition.slug") {
			return ErrDuplicateSlug
		}
		return ErrDuplicateTerm
	}
	return errors.Join(ErrQueryFailed, err)
}
