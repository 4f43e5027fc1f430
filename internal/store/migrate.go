package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// dialects maps database/sql driver names to goose dialects and their
// migration directories.
var dialects = map[string]struct{ goose, dir string }{
	DriverSQLite:   {"sqlite3", "migrations/sqlite"},
	DriverPostgres: {"postgres", "migrations/postgres"},
}

func setupGoose(driver string) error {
	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("no migrations for driver %q", driver)
	}
	if err := goose.SetDialect(d.goose); err != nil {
		return fmt.Errorf("setting migration dialect: %w", err)
	}

	sub, err := fs.Sub(migrationsFS, d.dir)
	if err != nil {
		return fmt.Errorf("opening migrations: %w", err)
	}
	goose.SetBaseFS(sub)
	goose.SetLogger(goose.NopLogger())
	return nil
}

// Migrate brings the schema up to date.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if err := setupGoose(driver); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Debug("ledger migrations applied", "driver", driver)
	return nil
}
