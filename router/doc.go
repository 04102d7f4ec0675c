// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Movie Night API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Accounts:

	POST /register - Create an account
	POST /login    - Verify credentials, returns a session token

Movies:

	GET  /movies - List movies, most votes first
	POST /movies - Submit a movie suggestion

Voting:

	POST /movies/{id}/vote - Cast a vote (one per user per movie)

Web UI:

	GET / - Embedded single-page frontend

# Handler Initialization

The router creates handler instances with dependency injection:

	accountHandler := handlers.NewAccountHandler(db, cfg)
	movieHandler := handlers.NewMovieHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
