// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and manages its schema.

# Drivers

Three database types are supported:

  - sqlite: modernc.org/sqlite (pure Go, the default)
  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5/stdlib

	conn, err := db.Open(ctx, db.TypeSQLite, "database.sqlite")

SQLite connections get foreign keys and a busy timeout, and the pool is
capped at one connection.

# Schema Creation

CreateSchema runs the embedded goose migrations for the dialect:

	if err := db.CreateSchema(ctx, conn, db.TypeSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times.

# Tables

  - users: Accounts, unique lower-cased email
  - features: Feature requests, attributed to a user
  - votes: The vote ledger, UNIQUE (user_id, feature_id)

	users 1──* features
	users 1──* votes *──1 features

# Constraint Errors

IsUniqueViolation recognizes uniqueness failures from every supported driver,
so callers can turn a rejected insert into a domain error without a
check-then-insert race.
*/
package db
