// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
	TypePGX      = "pgx"
)

// sqlite pragmas applied to every connection unless the URL sets its own
const sqliteParams = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"

// ValidType reports whether dbType names a supported driver.
func ValidType(dbType string) bool {
	switch dbType {
	case TypeSQLite, TypePostgres, TypePGX:
		return true
	}
	return false
}

// Open connects to the database and verifies the connection.
// SQLite pools are capped at one connection since SQLite allows a single writer.
func Open(ctx context.Context, dbType, url string) (*sql.DB, error) {
	if !ValidType(dbType) {
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	dsn := url
	if dbType == TypeSQLite && !strings.Contains(url, "_pragma=") {
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		dsn = url + sep + sqliteParams
	}

	conn, err := sql.Open(dbType, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	if dbType == TypeSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}

	return conn, nil
}
