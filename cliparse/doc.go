// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: SQLite file path or PostgreSQL connection string
  - DatabaseType: "sqlite" (default) or "postgres"
  - SessionSecret: Secret for session token signing (required)
  - RequireAuth: Whether write endpoints demand a session token

# CLI Flags

	-p               Server port
	-d               Database URL or file path
	-t               Database type
	--session-secret Session signing secret
	--require-auth   Enforce session tokens on writes

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SESSION_SECRET → --session-secret
	REQUIRE_AUTH   → --require-auth

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - SESSION_SECRET must be provided
  - DATABASE_URL must be provided for postgres (sqlite defaults to movies.db)
  - DATABASE_TYPE must be sqlite or postgres
*/
package cliparse
