package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrymomot/glossary/pkg/logger"
)

// Goose dialect names accepted by MigrateSQL.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// goose keeps its base FS, dialect and table name in package globals.
var migrateMu sync.Mutex

// Migrate applies the migrations found in dir of fsys to a pgx pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS, dir, migrationTable string, log *slog.Logger) error {
	// The wrapper shares the pool's connections, so it is not closed here.
	db := stdlib.OpenDBFromPool(pool)
	return MigrateSQL(ctx, db, DialectPostgres, fsys, dir, migrationTable, log)
}

// MigrateSQL applies the migrations found in dir of fsys to any database/sql
// handle supported by goose.
func MigrateSQL(ctx context.Context, db *sql.DB, dialect string, fsys fs.FS, dir, migrationTable string, log *slog.Logger) error {
	if log == nil {
		log = logger.NewNope()
	}

	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(&gooseLoggerAdapter{log})
	goose.SetTableName(migrationTable)

	if err := goose.SetDialect(dialect); err != nil {
		return errors.Join(ErrSetDialect, err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return errors.Join(ErrApplyMigrations, err)
	}

	return nil
}

type gooseLoggerAdapter struct {
	log *slog.Logger
}

func (g *gooseLoggerAdapter) Printf(format string, args ...any) {
	g.log.Info(fmt.Sprintf(format, args...))
}

func (g *gooseLoggerAdapter) Fatalf(format string, args ...any) {
	// goose returns the error as well; logging here keeps os.Exit out of the path.
	g.log.Error(fmt.Sprintf(format, args...))
}
