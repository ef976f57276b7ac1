// Package store persists glossary terms and their see-also rows.
//
// Two implementations share the [Store] interface: [SQLite] built on sqlx and
// go-sqlite3 for single-file deployments and tests, and [Postgres] built on a
// pgx pool. Both apply their embedded goose migrations on open.
//
//	s, err := store.Open(ctx, store.Config{Driver: store.DriverSQLite, URL: "glossary.db"}, log)
//	if err != nil {
//		return err
//	}
//	defer s.Close()
package store
