// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Movie Night API server.

Movie Night is a small movie-voting service: accounts register and log in,
anyone suggests movies, and each account gets one vote per movie. The list
is ordered by vote count.

# Starting the Server

The server reads configuration from a .env file, environment variables, or
CLI flags:

	SESSION_SECRET=... go run .

Or with flags:

	go run . -p 5000 -d movies.db -session-secret "..."

# Configuration

Required settings:

  - SESSION_SECRET (--session-secret): Secret for session token signing

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): SQLite path (default: movies.db) or Postgres URL
  - REQUIRE_AUTH (--require-auth): Demand session tokens on write endpoints

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (accounts, movies, voting)
  - router: Route definitions using Go 1.22+ routing, embedded web UI
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Password hashing and session tokens
  - db: Schema creation and error classification
  - cliparse: Configuration parsing

The votes table's composite primary key (username, movie_id) is the
load-bearing constraint: vote casting wraps the counter increment and the
vote record in one transaction, and the key guarantees one vote per user
per movie even under concurrent requests.

See package documentation for each component.
*/
package main
