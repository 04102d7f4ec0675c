// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/movie-night/auth"
	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/db"
)

// SetupTestDB creates a fresh sqlite database in a per-test temp dir
// with the full schema. No external database server is needed.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "movies.db")
	conn, err := sql.Open("sqlite", db.SQLiteDSN(path))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabaseType:  "sqlite",
		DatabaseURL:   "movies.db",
		SessionSecret: "test-session-secret",
	}
}

// CreateTestUser registers a user directly in the database
func CreateTestUser(t *testing.T, conn *sql.DB, username, password string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
	`, username, hash)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

// CreateTestMovie inserts a movie and returns its assigned id
func CreateTestMovie(t *testing.T, conn *sql.DB, title, description, username string) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO movies (title, description, username, votes)
		VALUES ($1, $2, $3, 0)
	`, title, description, username)
	if err != nil {
		t.Fatalf("Failed to create test movie: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read movie id: %v", err)
	}

	return id
}

// CastTestVote records a vote and bumps the counter, bypassing the handler
func CastTestVote(t *testing.T, conn *sql.DB, username string, movieID int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO votes (username, movie_id)
		VALUES ($1, $2)
	`, username, movieID)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	_, err = conn.Exec(`UPDATE movies SET votes = votes + 1 WHERE id = $1`, movieID)
	if err != nil {
		t.Fatalf("Failed to bump test vote count: %v", err)
	}
}

// GetVoteCount reads a movie's stored vote counter
func GetVoteCount(t *testing.T, conn *sql.DB, movieID int64) int64 {
	t.Helper()

	var votes int64
	err := conn.QueryRow(`SELECT votes FROM movies WHERE id = $1`, movieID).Scan(&votes)
	if err != nil {
		t.Fatalf("Failed to read vote count: %v", err)
	}

	return votes
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
