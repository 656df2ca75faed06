// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseType: sqlite, postgres or pgx (default: sqlite)
  - DatabaseURL: Connection string (default for sqlite: database.sqlite)
  - JWTSecret: Token signing secret (required)
  - TokenTTL: Token lifetime (default: 24h)
  - BcryptCost: Password hashing cost (default: 10)

# CLI Flags

	-p             Server port
	-d             Database URL
	-t             Database type
	-c             YAML config file
	-jwt-secret    Token signing secret
	-token-ttl     Token lifetime
	-bcrypt-cost   bcrypt cost factor

# Environment Variables

Flags fall back to environment variables:

	PORT, DATABASE_URL, DATABASE_TYPE, CONFIG_FILE,
	JWT_SECRET, TOKEN_TTL, BCRYPT_COST

# Config File

Anything not set by a flag or the environment is read from the YAML file
named by -c or CONFIG_FILE:

	port: 3000
	database_type: postgres
	database_url: postgres://localhost/upvote
	jwt_secret: change-me
	token_ttl: 12h
	bcrypt_cost: 12

Precedence: flag > environment > file > default.
*/
package cliparse
