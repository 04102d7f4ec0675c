// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and driver-level error
classification.

# Schema Creation

CreateSchema initializes all required tables for the configured driver:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: one row per registered account (bcrypt hash, never plaintext)
  - movies: suggestions with a denormalized vote counter
  - votes: one row per (username, movie_id) pair

# Constraints

The votes table has a composite PRIMARY KEY (username, movie_id). This is
the storage-level guarantee that a user votes at most once per movie: even
when two requests race past the application's duplicate check, only one
insert can commit. IsUniqueViolation recognizes the resulting error for
both SQLite and Postgres so handlers can map it to a conflict response.

The username foreign keys are soft references. Neither driver is
configured to enforce them, matching the service's trust model where a
movie or vote may name a username the server never verified.
*/
package db
