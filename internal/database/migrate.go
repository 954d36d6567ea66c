package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/itemforge/internal/database/migrations"
)

// RunMigrations applies every pending embedded migration to the database at dsn.
func RunMigrations(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open(DriverName, dsn)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToOpenMigrationConn, err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(GooseDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
	}
	return nil
}

// MigrationVersion reports the currently applied migration version.
func MigrationVersion(ctx context.Context, dsn string) (int64, error) {
	sqlDB, err := sql.Open(DriverName, dsn)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToOpenMigrationConn, err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(GooseDialect); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}
	return goose.GetDBVersionContext(ctx, sqlDB)
}
