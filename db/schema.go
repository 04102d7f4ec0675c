// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// driverName is "sqlite" or "postgres" and selects the schema dialect.
func CreateSchema(db *sql.DB, driverName string) error {
	var schema string
	switch driverName {
	case "sqlite":
		schema = schemaSQLite
	case "postgres":
		schema = schemaPostgres
	default:
		return fmt.Errorf("unsupported driver %q", driverName)
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// IsUniqueViolation reports whether err is a unique or primary key
// constraint violation from either supported driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	// Postgres: class 23, code 23505
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	// SQLite (modernc) reports constraint failures by message
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// The foreign keys on movies.username and votes.username are declarative
// only: SQLite does not enforce them without the foreign_keys pragma, and
// the service deliberately accepts unverified usernames (see /register).

const schemaSQLite = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    username TEXT PRIMARY KEY,
    password_hash TEXT NOT NULL
);

-- Movies
CREATE TABLE IF NOT EXISTS movies (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    username TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (username) REFERENCES users (username)
);

CREATE INDEX IF NOT EXISTS idx_movies_votes ON movies(votes DESC);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    username TEXT NOT NULL,
    movie_id INTEGER NOT NULL,
    PRIMARY KEY (username, movie_id),
    FOREIGN KEY (username) REFERENCES users (username),
    FOREIGN KEY (movie_id) REFERENCES movies (id)
);

CREATE INDEX IF NOT EXISTS idx_votes_movie_id ON votes(movie_id);
`

const schemaPostgres = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    username TEXT PRIMARY KEY,
    password_hash TEXT NOT NULL
);

-- Movies
CREATE TABLE IF NOT EXISTS movies (
    id BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    username TEXT NOT NULL,
    votes BIGINT NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_movies_votes ON movies(votes DESC);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    username TEXT NOT NULL,
    movie_id BIGINT NOT NULL,
    PRIMARY KEY (username, movie_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_movie_id ON votes(movie_id);
`
