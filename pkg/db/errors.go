package db

import "errors"

var (
	ErrFailedToParseDBConfig    = errors.New("db: invalid postgres connection string")
	ErrFailedToOpenDBConnection = errors.New("db: postgres unreachable after retries")
	ErrHealthcheckFailed        = errors.New("db: postgres ping failed")
	ErrTransaction              = errors.New("db: transaction begin or commit failed")

	ErrSetDialect      = errors.New("db: unknown goose dialect")
	ErrApplyMigrations = errors.New("db: glossary migration failed")
)
