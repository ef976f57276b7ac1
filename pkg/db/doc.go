// Package db provides PostgreSQL pool setup, transactions and goose migrations.
//
// It wraps [github.com/jackc/pgx/v5/pgxpool] with startup retries, a readiness
// check and a transaction helper. Migrations run through
// [github.com/pressly/goose/v3] from an embedded filesystem; [MigrateSQL]
// accepts any database/sql handle so the SQLite store shares the same path.
//
// # Usage
//
//	pool, err := db.Connect(ctx, db.DefaultConfig(os.Getenv("GLOSSARY_DATABASE_URL")))
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	//go:embed migrations/postgres/*.sql
//	var migrations embed.FS
//
//	if err := db.Migrate(ctx, pool, migrations, "migrations/postgres", "schema_migrations", log); err != nil {
//		return err
//	}
//
// # Transactions
//
// [WithTx] commits when fn returns nil and rolls back on error or panic:
//
//	err := db.WithTx(ctx, pool, func(tx pgx.Tx) error {
//		_, err := tx.Exec(ctx, "DELETE FROM see_also WHERE term_id = $1", id)
//		return err
//	})
//
// # Errors
//
//   - [ErrFailedToParseDBConfig] - invalid connection string
//   - [ErrFailedToOpenDBConnection] - connection failed after all retries
//   - [ErrHealthcheckFailed] - ping failed
//   - [ErrTransaction] - a transaction could not begin or commit
//   - [ErrSetDialect] - unknown migration dialect
//   - [ErrApplyMigrations] - a migration failed
//
// Errors are wrapped using [errors.Join] to preserve the original error.
package db
