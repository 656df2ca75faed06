// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/upvote/db"
)

const (
	DefaultPort      = 3000
	DefaultTokenTTL  = 24 * time.Hour
	DefaultSQLiteURL = "database.sqlite"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	JWTSecret    string
	TokenTTL     time.Duration
	BcryptCost   int
	ConfigFile   string
}

// fileConfig mirrors Config for the optional YAML file
type fileConfig struct {
	Port         int    `yaml:"port"`
	DatabaseURL  string `yaml:"database_url"`
	DatabaseType string `yaml:"database_type"`
	JWTSecret    string `yaml:"jwt_secret"`
	TokenTTL     string `yaml:"token_ttl"`
	BcryptCost   int    `yaml:"bcrypt_cost"`
}

// ParseFlags builds the configuration.
// Each setting comes from its flag, then the environment, then the YAML
// config file, then the default.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var tokenTTL string

	fs := flag.NewFlagSet("upvote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or pgx)")
	fs.StringVar(&cfg.ConfigFile, "c", "", "YAML config file")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "Token signing secret (prefer env)")
	fs.StringVar(&tokenTTL, "token-ttl", "", "Token lifetime, e.g. 24h")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", 0, "bcrypt cost factor")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.ConfigFile == "" {
		cfg.ConfigFile = os.Getenv("CONFIG_FILE")
	}
	var file fileConfig
	if cfg.ConfigFile != "" {
		var err error
		file, err = loadFile(cfg.ConfigFile)
		if err != nil {
			return Config{}, err
		}
	}

	port, err := intSetting(cfg.Port, "PORT", file.Port, DefaultPort)
	if err != nil {
		return Config{}, err
	}
	if port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", port)
	}
	cfg.Port = port

	cfg.DatabaseType = firstNonEmpty(cfg.DatabaseType, os.Getenv("DATABASE_TYPE"), file.DatabaseType, db.TypeSQLite)
	if !db.ValidType(cfg.DatabaseType) {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	cfg.DatabaseURL = firstNonEmpty(cfg.DatabaseURL, os.Getenv("DATABASE_URL"), file.DatabaseURL)
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != db.TypeSQLite {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultSQLiteURL
	}

	// Secrets - MUST be provided
	cfg.JWTSecret = firstNonEmpty(cfg.JWTSecret, os.Getenv("JWT_SECRET"), file.JWTSecret)
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	cfg.TokenTTL = DefaultTokenTTL
	if s := firstNonEmpty(tokenTTL, os.Getenv("TOKEN_TTL"), file.TokenTTL); s != "" {
		ttl, err := time.ParseDuration(s)
		if err != nil {
			return Config{}, fmt.Errorf("invalid token TTL %q: %w", s, err)
		}
		if ttl <= 0 {
			return Config{}, errors.New("token TTL must be positive")
		}
		cfg.TokenTTL = ttl
	}

	cost, err := intSetting(cfg.BcryptCost, "BCRYPT_COST", file.BcryptCost, bcrypt.DefaultCost)
	if err != nil {
		return Config{}, err
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return Config{}, fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	cfg.BcryptCost = cost

	return cfg, nil
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

// intSetting resolves an integer from flag, env var, file and default in that order
func intSetting(flagVal int, env string, fileVal, def int) (int, error) {
	if flagVal != 0 {
		return flagVal, nil
	}
	if s := os.Getenv(env); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid %s env variable", env)
		}
		return n, nil
	}
	if fileVal != 0 {
		return fileVal, nil
	}
	return def, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
