// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AddMovieRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Username    string `json:"username"`
}

type CastVoteRequest struct {
	Username string `json:"username"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Domain types

type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose in JSON
}

type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Username    string `json:"username"` // submitter, informational only
	Votes       int64  `json:"votes"`
}

type Vote struct {
	Username string `json:"username"`
	MovieID  int64  `json:"movie_id"`
}

// Error response

type ErrorResponse struct {
	Message string `json:"message"`
}
