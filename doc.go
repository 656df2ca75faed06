// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Upvote API server.

Upvote is a feature-request voting service: users register, submit
feature requests, and upvote each feature at most once. Listings show
each feature's vote count and whether the caller has voted for it.

# Starting the Server

Configuration comes from flags, environment variables (optionally loaded
from a .env file), or a YAML file:

	JWT_SECRET=change-me go run .

Or with flags:

	go run . -p 3000 -t postgres -d "postgres://..." -jwt-secret change-me

# Configuration

Required settings:

  - JWT_SECRET (-jwt-secret): HMAC key for access tokens
  - DATABASE_URL (-d): connection string, except for SQLite

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite, postgres or pgx (default: sqlite)
  - TOKEN_TTL (-token-ttl): token lifetime (default: 24h)
  - BCRYPT_COST (-bcrypt-cost): password hashing cost (default: 10)
  - CONFIG_FILE (-c): YAML file with the same keys

# Architecture

  - handlers: HTTP request handlers (accounts, features)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, bearer auth, panic recovery, JSON helpers
  - service: validation, error kinds, orchestration
  - store: SQL access (users, features, vote ledger)
  - models: Request/response and domain types
  - auth: Password hashing and token signing
  - db: Connection setup and migrations
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
