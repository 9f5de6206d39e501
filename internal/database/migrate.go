package database

import (
    "context"
    "database/sql"
    "fmt"

    "github.com/pressly/goose/v3"
)

// Migrate applies all pending goose migrations from dir against the
// already-open MySQL connection. The goose version table is created on
// first run.
func Migrate(ctx context.Context, db *sql.DB, dir string) error {
    if err := goose.SetDialect("mysql"); err != nil {
        return fmt.Errorf("set goose dialect: %w", err)
    }
    if err := goose.UpContext(ctx, db, dir); err != nil {
        return fmt.Errorf("apply migrations: %w", err)
    }
    return nil
}

// MigrationVersion returns the current goose migration version.
func MigrationVersion(ctx context.Context, db *sql.DB) (int64, error) {
    version, err := goose.GetDBVersionContext(ctx, db)
    if err != nil {
        return 0, fmt.Errorf("get migration version: %w", err)
    }
    return version, nil
}
