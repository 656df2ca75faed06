// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/upvote/cliparse"
	"github.com/danielhkuo/upvote/db"
)

// SetupTestDB creates a fresh SQLite database in a temp dir with the full schema.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "upvote_test.db")

	conn, err := db.Open(ctx, db.TypeSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(ctx, conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseType: db.TypeSQLite,
		DatabaseURL:  ":memory:",
		JWTSecret:    "test-jwt-secret",
		TokenTTL:     time.Hour,
		BcryptCost:   bcrypt.MinCost,
	}
}

// CreateTestUser inserts a user with the given password and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, email, password string) int64 {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	var id int64
	err = conn.QueryRow(`
		INSERT INTO users (email, password_hash, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, email, string(hash), time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestFeature inserts a feature and returns its ID
func CreateTestFeature(t *testing.T, conn *sql.DB, authorID int64, title string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO features (title, description, user_id, created_at)
		VALUES ($1, '', $2, $3)
		RETURNING id
	`, title, authorID, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test feature: %v", err)
	}

	return id
}

// CountVotes returns the number of ledger rows for a (user, feature) pair,
// or for the whole feature when userID is 0
func CountVotes(t *testing.T, conn *sql.DB, userID, featureID int64) int {
	t.Helper()

	var n int
	var err error
	if userID == 0 {
		err = conn.QueryRow(`SELECT COUNT(*) FROM votes WHERE feature_id = $1`, featureID).Scan(&n)
	} else {
		err = conn.QueryRow(`SELECT COUNT(*) FROM votes WHERE user_id = $1 AND feature_id = $2`, userID, featureID).Scan(&n)
	}
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}

	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// BearerHeader builds the Authorization header for a token
func BearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
