package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/glossary/internal/glossary"
	"github.com/dmitrymomot/glossary/pkg/db"
)

const pgUniqueViolation = "23505"

// Postgres implements Store on a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to cfg.URL and applies migrations.
func NewPostgres(ctx context.Context, cfg Config, log *slog.Logger) (*Postgres, error) {
	dbCfg := db.DefaultConfig(cfg.URL)
	if cfg.MaxConns > 0 {
		dbCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		dbCfg.MinConns = cfg.MinConns
	}

	pool, err := db.Connect(ctx, dbCfg)
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}

	if err := db.Migrate(ctx, pool, migrationsFS, "migrations/postgres", migrationsTable, log); err != nil {
		pool.Close()
		return nil, errors.Join(ErrMigrationFailed, err)
	}

	return &Postgres{pool: pool}, nil
}

// NewPostgresFromPool wraps an already migrated pool.
func NewPostgresFromPool(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Pool exposes the underlying pool, shared with the job queue.
func (s *Postgres) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *Postgres) TermsByLetter(ctx context.Context, letter string) ([]glossary.Term, error) {
	q := selectTerms + ` WHERE upper(substr(term, 1, 1)) = upper($1)` + orderTerms
	return s.queryTerms(ctx, q, letter)
}

func (s *Postgres) SeeAlso(ctx context.Context, termID int64) ([]glossary.SeeAlso, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, term_id, url FROM see_also WHERE term_id = $1 ORDER BY url`, termID)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[glossary.SeeAlso])
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return out, nil
}

// Search matches pattern with ILIKE to behave like the SQLite store.
func (s *Postgres) Search(ctx context.Context, pattern string) ([]glossary.Term, error) {
	return s.queryTerms(ctx, selectTerms+` WHERE term ILIKE $1`+orderTerms, pattern)
}

func (s *Postgres) TermBySlug(ctx context.Context, slug string) (glossary.Term, error) {
	rows, err := s.pool.Query(ctx, selectTerms+` WHERE slug = $1`, slug)
	if err != nil {
		return glossary.Term{}, errors.Join(ErrQueryFailed, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[termRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return glossary.Term{}, ErrNotFound
		}
		return glossary.Term{}, errors.Join(ErrQueryFailed, err)
	}
	return row.toTerm(), nil
}

func (s *Postgres) CreateTerm(ctx context.Context, term *glossary.Term, seeAlso []string) error {
	if err := validateTerm(term); err != nil {
		return err
	}

	var id int64
	err := db.WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		var err error
		id, err = insertPostgres(ctx, tx, *term, seeAlso)
		return err
	})
	if err != nil {
		return err
	}

	term.ID = id
	return nil
}

func (s *Postgres) ImportTerms(ctx context.Context, drafts []glossary.Draft, replace bool) error {
	if err := validateDrafts(drafts); err != nil {
		return err
	}

	return db.WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		if replace {
			if _, err := tx.Exec(ctx, `DELETE FROM definition`); err != nil {
				return errors.Join(ErrQueryFailed, err)
			}
		}
		for idx, d := range drafts {
			if _, err := insertPostgres(ctx, tx, d.Term, d.SeeAlso); err != nil {
				return draftError(idx, d, err)
			}
		}
		return nil
	})
}

func insertPostgres(ctx context.Context, tx pgx.Tx, term glossary.Term, seeAlso []string) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx,
		`INSERT INTO definition (term, seq_num, slug, description) VALUES ($1, $2, $3, $4) RETURNING id`,
		term.Term, term.SeqNum, nullable(term.Slug), term.Description,
	).Scan(&id)
	if err != nil {
		return 0, pgError(err)
	}

	for _, url := range seeAlso {
		if _, err := tx.Exec(ctx, `INSERT INTO see_also (term_id, url) VALUES ($1, $2)`, id, url); err != nil {
			return 0, errors.Join(ErrQueryFailed, fmt.Errorf("see also %q: %w", url, err))
		}
	}
	return id, nil
}

func (s *Postgres) DeleteAll(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM definition`); err != nil {
		return errors.Join(ErrQueryFailed, err)
	}
	return nil
}

func (s *Postgres) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM definition`).Scan(&n); err != nil {
		return 0, errors.Join(ErrQueryFailed, err)
	}
	return n, nil
}

func (s *Postgres) Healthcheck(ctx context.Context) error {
	return db.Healthcheck(s.pool)(ctx)
}

func (s *Postgres) Close() error {
	s.pool.Close()
	return nil
}

func (s *Postgres) queryTerms(ctx context.Context, q string, args ...any) ([]glossary.Term, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[termRow])
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	return toTerms(out), nil
}

func pgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		if pgErr.ConstraintName == "definition_slug_idx" {
			return ErrDuplicateSlug
		}
		return ErrDuplicateTerm
	}
	return errors.Join(ErrQueryFailed, err)
}
