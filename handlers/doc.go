// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Movie Night API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AccountHandler: Registration and login
  - MovieHandler: Movie listing and submission
  - VotingHandler: Vote casting

Handlers are created via constructor functions that accept *sql.DB and Config:

	accountHandler := handlers.NewAccountHandler(db, cfg)

# Accounts

	POST /register → Register (bcrypt hash, unique username)
	POST /login    → Login (uniform 401, issues a session token)

# Movies

	GET  /movies → ListMovies (votes descending, submission order on ties)
	POST /movies → AddMovie

# Voting

	POST /movies/{id}/vote → CastVote

CastVote runs the count increment and the vote insert in one transaction.
The composite primary key on the votes table guarantees at most one vote
per (username, movie) pair even when concurrent requests race past the
handler; the losing insert is reported as already-voted, not as a server
error.

# Sessions

Login returns a bearer token. When a write request carries one, its
subject must match the username in the body. Without a token the claimed
username is trusted unless the server runs with RequireAuth.
*/
package handlers
