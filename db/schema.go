// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrations embed.FS

// CreateSchema runs every pending migration for the given database type.
// Safe to call multiple times - goose records applied versions.
func CreateSchema(ctx context.Context, conn *sql.DB, dbType string) error {
	dialect, dir, err := dialectFor(dbType)
	if err != nil {
		return err
	}

	fsys, err := fs.Sub(migrations, dir)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	provider, err := goose.NewProvider(dialect, conn, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	for _, r := range results {
		slog.Info("migration applied", "version", r.Source.Version, "duration_ms", r.Duration.Milliseconds())
	}

	return nil
}

func dialectFor(dbType string) (goose.Dialect, string, error) {
	switch dbType {
	case TypeSQLite:
		return goose.DialectSQLite3, "migrations/sqlite", nil
	case TypePostgres, TypePGX:
		return goose.DialectPostgres, "migrations/postgres", nil
	}
	return "", "", fmt.Errorf("unsupported database type %q", dbType)
}
