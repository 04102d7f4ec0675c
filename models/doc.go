// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types for the
Movie Night API.

# Domain Types

Three persistent entities mirror the database tables:

  - User: username plus a bcrypt password hash (never serialized)
  - Movie: a suggestion with its denormalized vote count
  - Vote: one (username, movie_id) pair per cast vote

# Request/Response Types

Each endpoint has a matching request struct (RegisterRequest,
LoginRequest, AddMovieRequest, CastVoteRequest). Successful responses
use MessageResponse, or LoginResponse when a session token is issued.
Failures use ErrorResponse with a fixed, generic message.
*/
package models
